package geometry

import (
	"encoding/binary"
	"math"

	"github.com/glintgfx/glint/engine/renderer/bind_group_provider"
)

// Mesh holds CPU-side vertex and index data ready for upload to GPU buffers.
// Vertex data is interleaved little-endian float32, matching the attribute
// layout of the technique the mesh is built for. Index data is uint32.
type Mesh struct {
	vertexData []byte
	indexData  []byte
	indexCount int
	layout     []bind_group_provider.VertexLayoutEntry
}

// VertexData returns the raw interleaved vertex bytes.
//
// Returns:
//   - []byte: little-endian float32 vertex data
func (m *Mesh) VertexData() []byte {
	return m.vertexData
}

// IndexData returns the raw index bytes.
//
// Returns:
//   - []byte: little-endian uint32 index data
func (m *Mesh) IndexData() []byte {
	return m.indexData
}

// IndexCount returns the number of indices in the mesh.
//
// Returns:
//   - int: index count for draw calls
func (m *Mesh) IndexCount() int {
	return m.indexCount
}

// Layout returns the attribute layout of the interleaved vertex data, suitable
// for bind_group_provider.WithVertexLayout so the dispatcher can reject draws
// whose mesh disagrees with the bound program's vertex attributes.
//
// Returns:
//   - []bind_group_provider.VertexLayoutEntry: the vertex attributes in buffer order
func (m *Mesh) Layout() []bind_group_provider.VertexLayoutEntry {
	return m.layout
}

// appendFloats appends float32 values to dst as little-endian bytes.
func appendFloats(dst []byte, values ...float32) []byte {
	for _, v := range values {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}

// appendIndices appends uint32 index values to dst as little-endian bytes.
func appendIndices(dst []byte, values ...uint32) []byte {
	for _, v := range values {
		dst = binary.LittleEndian.AppendUint32(dst, v)
	}
	return dst
}
