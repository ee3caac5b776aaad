package geometry

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/glintgfx/glint/common"
	"github.com/glintgfx/glint/engine/renderer/bind_group_provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floatAt decodes the little-endian float32 at byte offset off.
func floatAt(t *testing.T, data []byte, off int) float32 {
	t.Helper()
	require.LessOrEqual(t, off+4, len(data))
	return math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
}

// indexAt decodes the little-endian uint32 index at position i.
func indexAt(t *testing.T, data []byte, i int) uint32 {
	t.Helper()
	require.LessOrEqual(t, i*4+4, len(data))
	return binary.LittleEndian.Uint32(data[i*4 : i*4+4])
}

func TestNewTriangle(t *testing.T) {
	m := NewTriangle()

	// 3 vertices, position vec3 plus color vec3.
	assert.Len(t, m.VertexData(), 3*6*4)
	assert.Equal(t, 3, m.IndexCount())
	assert.Len(t, m.IndexData(), 3*4)

	for i := 0; i < 3; i++ {
		assert.Equal(t, uint32(i), indexAt(t, m.IndexData(), i))
	}

	// First vertex: position then red color.
	assert.Equal(t, float32(-0.6), floatAt(t, m.VertexData(), 0))
	assert.Equal(t, float32(-0.6), floatAt(t, m.VertexData(), 4))
	assert.Equal(t, float32(1.0), floatAt(t, m.VertexData(), 12))
}

func TestNewFullScreenQuad(t *testing.T) {
	m := NewFullScreenQuad()

	// 4 position-only vertices, two triangles.
	assert.Len(t, m.VertexData(), 4*3*4)
	assert.Equal(t, 6, m.IndexCount())

	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, w := range want {
		assert.Equal(t, w, indexAt(t, m.IndexData(), i))
	}

	// Corners cover the full clip-space viewport.
	assert.Equal(t, float32(-1.0), floatAt(t, m.VertexData(), 0))
	assert.Equal(t, float32(1.0), floatAt(t, m.VertexData(), 3*4*2))
}

func TestNewUVQuad(t *testing.T) {
	m := NewUVQuad()

	// 4 vertices, position vec3 plus texCoord vec2.
	assert.Len(t, m.VertexData(), 4*5*4)
	assert.Equal(t, 6, m.IndexCount())

	// Third vertex carries UV (1, 1).
	stride := 5 * 4
	assert.Equal(t, float32(1.0), floatAt(t, m.VertexData(), 2*stride+12))
	assert.Equal(t, float32(1.0), floatAt(t, m.VertexData(), 2*stride+16))

	// First vertex carries UV (0, 0).
	assert.Equal(t, float32(0.0), floatAt(t, m.VertexData(), 12))
	assert.Equal(t, float32(0.0), floatAt(t, m.VertexData(), 16))
}

func TestNewCube(t *testing.T) {
	color := common.RGBA{0.8, 0.3, 0.2, 1.0}
	m := NewCube(10, color)

	// 6 faces of 4 vertices, position vec3 + color vec4 + normal vec3.
	stride := 10 * 4
	assert.Len(t, m.VertexData(), 24*stride)
	assert.Equal(t, 36, m.IndexCount())
	assert.Len(t, m.IndexData(), 36*4)

	for v := 0; v < 24; v++ {
		base := v * stride

		// Every position component sits on a face of the half-size cube.
		for c := 0; c < 3; c++ {
			p := floatAt(t, m.VertexData(), base+c*4)
			assert.Equal(t, float32(5), float32(math.Abs(float64(p))), "vertex %d component %d", v, c)
		}

		for c := 0; c < 4; c++ {
			assert.Equal(t, color[c], floatAt(t, m.VertexData(), base+12+c*4), "vertex %d color %d", v, c)
		}

		// Unit axis-aligned normal.
		var lengthSq float32
		for c := 0; c < 3; c++ {
			n := floatAt(t, m.VertexData(), base+28+c*4)
			lengthSq += n * n
		}
		assert.Equal(t, float32(1), lengthSq, "vertex %d normal", v)
	}

	// Indices reference four vertices per face as two triangles.
	for face := 0; face < 6; face++ {
		base := uint32(face * 4)
		want := []uint32{base, base + 1, base + 2, base, base + 2, base + 3}
		for i, w := range want {
			assert.Equal(t, w, indexAt(t, m.IndexData(), face*6+i))
		}
	}
}

func TestParticleFieldDimensions(t *testing.T) {
	g := NewParticleFieldGenerator(
		WithParticleCount(100),
		WithFieldExtent(50),
		WithSeed(7),
	)
	assert.Equal(t, 100, g.ParticleCount())

	m := g.Generate()
	assert.Len(t, m.VertexData(), 100*4*28)
	assert.Len(t, m.IndexData(), 100*6*4)
	assert.Equal(t, 600, m.IndexCount())
}

func TestParticleFieldBounds(t *testing.T) {
	const extent = float32(50)
	const size = float32(2)
	g := NewParticleFieldGenerator(
		WithParticleCount(200),
		WithFieldExtent(extent),
		WithParticleSize(size),
		WithSeed(3),
	)
	m := g.Generate()

	for i := 0; i < 200; i++ {
		base := i * 4 * 28
		for v := 0; v < 4; v++ {
			off := base + v*28
			x := floatAt(t, m.VertexData(), off)
			y := floatAt(t, m.VertexData(), off+4)
			z := floatAt(t, m.VertexData(), off+8)
			assert.LessOrEqual(t, float32(math.Abs(float64(x))), extent+size/2)
			assert.LessOrEqual(t, float32(math.Abs(float64(y))), extent+size/2)
			assert.LessOrEqual(t, float32(math.Abs(float64(z))), extent)

			r := floatAt(t, m.VertexData(), off+12)
			gc := floatAt(t, m.VertexData(), off+16)
			b := floatAt(t, m.VertexData(), off+20)
			a := floatAt(t, m.VertexData(), off+24)
			assert.GreaterOrEqual(t, r, float32(0.4))
			assert.LessOrEqual(t, r, float32(1.0))
			assert.GreaterOrEqual(t, gc, float32(0.01))
			assert.LessOrEqual(t, gc, float32(0.3))
			assert.GreaterOrEqual(t, b, float32(0.5))
			assert.LessOrEqual(t, b, float32(1.0))
			assert.Equal(t, float32(0.8), a)
		}
	}
}

func TestParticleFieldQuadGeometry(t *testing.T) {
	g := NewParticleFieldGenerator(
		WithParticleCount(10),
		WithParticleSize(4),
		WithSeed(11),
	)
	m := g.Generate()

	// All four corners of a quad share z and span particleSize in x and y.
	for i := 0; i < 10; i++ {
		base := i * 4 * 28
		z0 := floatAt(t, m.VertexData(), base+8)
		for v := 1; v < 4; v++ {
			assert.Equal(t, z0, floatAt(t, m.VertexData(), base+v*28+8), "particle %d", i)
		}

		x0 := floatAt(t, m.VertexData(), base)
		x1 := floatAt(t, m.VertexData(), base+28)
		assert.InDelta(t, 4.0, x1-x0, 1e-4, "particle %d quad width", i)

		y0 := floatAt(t, m.VertexData(), base+4)
		y2 := floatAt(t, m.VertexData(), base+2*28+4)
		assert.InDelta(t, 4.0, y2-y0, 1e-4, "particle %d quad height", i)
	}

	// Two CCW triangles per quad.
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, w := range want {
		assert.Equal(t, w, indexAt(t, m.IndexData(), i))
	}
	second := indexAt(t, m.IndexData(), 6)
	assert.Equal(t, uint32(4), second)
}

func TestParticleFieldDeterministicAcrossWorkerCounts(t *testing.T) {
	build := func(workers int) *Mesh {
		return NewParticleFieldGenerator(
			WithParticleCount(500),
			WithSeed(42),
			WithGenerationWorkers(workers),
		).Generate()
	}

	one := build(1)
	eight := build(8)

	assert.Equal(t, one.VertexData(), eight.VertexData())
	assert.Equal(t, one.IndexData(), eight.IndexData())
}

func TestParticleFieldSeedVariesOutput(t *testing.T) {
	a := NewParticleFieldGenerator(WithParticleCount(100), WithSeed(1)).Generate()
	b := NewParticleFieldGenerator(WithParticleCount(100), WithSeed(2)).Generate()

	assert.NotEqual(t, a.VertexData(), b.VertexData())
}

func TestMeshLayouts(t *testing.T) {
	cases := []struct {
		name string
		mesh *Mesh
		want []bind_group_provider.VertexLayoutEntry
	}{
		{"triangle", NewTriangle(), []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
			{Location: 1, Components: 3},
		}},
		{"full screen quad", NewFullScreenQuad(), []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
		}},
		{"uv quad", NewUVQuad(), []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
			{Location: 2, Components: 2},
		}},
		{"cube", NewCube(10, common.RGBA{1, 1, 1, 1}), []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
			{Location: 1, Components: 4},
			{Location: 2, Components: 3},
		}},
		{"particle field", NewParticleFieldGenerator(WithParticleCount(1)).Generate(), []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
			{Location: 1, Components: 4},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.mesh.Layout())
		})
	}
}

// Each layout's component total must match the stride implied by the vertex
// data and index range.
func TestMeshLayoutMatchesStride(t *testing.T) {
	for _, mesh := range []*Mesh{NewTriangle(), NewFullScreenQuad(), NewUVQuad(), NewCube(2, common.RGBA{1, 0, 0, 1})} {
		total := 0
		for _, entry := range mesh.Layout() {
			total += entry.Components
		}
		require.NotZero(t, total)
		assert.Zero(t, len(mesh.VertexData())%(total*4))
	}
}
