package geometry

import (
	"github.com/glintgfx/glint/common"
	"github.com/glintgfx/glint/engine/renderer/bind_group_provider"
)

// NewTriangle creates a single triangle in clip space with per-vertex vec3 colors.
// Layout: position vec3 at location 0, color vec3 at location 1 (flat color techniques).
//
// Returns:
//   - *Mesh: the triangle mesh
func NewTriangle() *Mesh {
	var vertices []byte
	vertices = appendFloats(vertices, -0.6, -0.6, 0.0, 1.0, 0.0, 0.0)
	vertices = appendFloats(vertices, 0.6, -0.6, 0.0, 0.0, 1.0, 0.0)
	vertices = appendFloats(vertices, 0.0, 0.6, 0.0, 0.0, 0.0, 1.0)

	return &Mesh{
		vertexData: vertices,
		indexData:  appendIndices(nil, 0, 1, 2),
		indexCount: 3,
		layout: []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
			{Location: 1, Components: 3},
		},
	}
}

// NewFullScreenQuad creates a quad covering the full clip-space viewport.
// Layout: position vec3 at location 0 only (screen-space procedural techniques).
//
// Returns:
//   - *Mesh: the full-screen quad mesh
func NewFullScreenQuad() *Mesh {
	var vertices []byte
	vertices = appendFloats(vertices, -1.0, -1.0, 0.0)
	vertices = appendFloats(vertices, 1.0, -1.0, 0.0)
	vertices = appendFloats(vertices, 1.0, 1.0, 0.0)
	vertices = appendFloats(vertices, -1.0, 1.0, 0.0)

	return &Mesh{
		vertexData: vertices,
		indexData:  appendIndices(nil, 0, 1, 2, 0, 2, 3),
		indexCount: 6,
		layout: []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
		},
	}
}

// NewUVQuad creates a quad covering the full clip-space viewport with texture
// coordinates spanning [0, 1].
// Layout: position vec3 at location 0, texCoord vec2 at location 2
// (UV-space procedural techniques).
//
// Returns:
//   - *Mesh: the textured quad mesh
func NewUVQuad() *Mesh {
	var vertices []byte
	vertices = appendFloats(vertices, -1.0, -1.0, 0.0, 0.0, 0.0)
	vertices = appendFloats(vertices, 1.0, -1.0, 0.0, 1.0, 0.0)
	vertices = appendFloats(vertices, 1.0, 1.0, 0.0, 1.0, 1.0)
	vertices = appendFloats(vertices, -1.0, 1.0, 0.0, 0.0, 1.0)

	return &Mesh{
		vertexData: vertices,
		indexData:  appendIndices(nil, 0, 1, 2, 0, 2, 3),
		indexCount: 6,
		layout: []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
			{Location: 2, Components: 2},
		},
	}
}

// NewCube creates an axis-aligned cube centered at the origin with per-face
// normals and a uniform vec4 color.
// Layout: position vec3 at location 0, color vec4 at location 1, normal vec3
// at location 2 (lit mesh techniques).
//
// Parameters:
//   - size: edge length of the cube
//   - color: vertex color applied to every face
//
// Returns:
//   - *Mesh: the cube mesh, 24 vertices and 36 indices
func NewCube(size float32, color common.RGBA) *Mesh {
	h := size / 2

	faces := []struct {
		normal  common.Vec3
		corners [4]common.Vec3
	}{
		// +X
		{common.Vec3{1, 0, 0}, [4]common.Vec3{{h, -h, -h}, {h, h, -h}, {h, h, h}, {h, -h, h}}},
		// -X
		{common.Vec3{-1, 0, 0}, [4]common.Vec3{{-h, -h, h}, {-h, h, h}, {-h, h, -h}, {-h, -h, -h}}},
		// +Y
		{common.Vec3{0, 1, 0}, [4]common.Vec3{{-h, h, -h}, {-h, h, h}, {h, h, h}, {h, h, -h}}},
		// -Y
		{common.Vec3{0, -1, 0}, [4]common.Vec3{{-h, -h, h}, {-h, -h, -h}, {h, -h, -h}, {h, -h, h}}},
		// +Z
		{common.Vec3{0, 0, 1}, [4]common.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		// -Z
		{common.Vec3{0, 0, -1}, [4]common.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
	}

	var vertices []byte
	var indices []byte
	indexCount := 0
	for faceIdx, face := range faces {
		for _, corner := range face.corners {
			vertices = appendFloats(vertices, corner[0], corner[1], corner[2])
			vertices = appendFloats(vertices, color[0], color[1], color[2], color[3])
			vertices = appendFloats(vertices, face.normal[0], face.normal[1], face.normal[2])
		}
		base := uint32(faceIdx * 4)
		indices = appendIndices(indices, base, base+1, base+2, base, base+2, base+3)
		indexCount += 6
	}

	return &Mesh{
		vertexData: vertices,
		indexData:  indices,
		indexCount: indexCount,
		layout: []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
			{Location: 1, Components: 4},
			{Location: 2, Components: 3},
		},
	}
}
