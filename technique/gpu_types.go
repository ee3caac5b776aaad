package technique

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMat4Uniform is the GPU-aligned representation of a mat4x4<f32> uniform
// buffer. Size: 64 bytes, column-major.
type GPUMat4Uniform struct {
	M [16]float32
}

// Size returns the size of the GPUMat4Uniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUMat4Uniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMat4Uniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUMat4Uniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.M[i]))
	}
	return buf
}

// GPUVec3Uniform is the GPU-aligned representation of a vec3<f32> uniform
// buffer, padded to the 16-byte alignment WGSL requires for vec3.
type GPUVec3Uniform struct {
	V    [3]float32 // offset 0: the vector value
	_pad float32    // offset 12: padding to 16 bytes
}

// Size returns the size of the GPUVec3Uniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUVec3Uniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVec3Uniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUVec3Uniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.V[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:], 0) // _pad
	return buf
}

// GPUFloatUniform is the GPU-aligned representation of an f32 uniform buffer.
type GPUFloatUniform struct {
	V float32
}

// Size returns the size of the GPUFloatUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (4)
func (g *GPUFloatUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFloatUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUFloatUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf, math.Float32bits(g.V))
	return buf
}
