package geometry

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/glintgfx/glint/engine/renderer/bind_group_provider"
)

const (
	// particleVertexFloats is the number of float32 values per particle vertex
	// (position vec3 plus color vec4).
	particleVertexFloats = 7

	// particleVertexStride is the byte stride of one particle vertex.
	particleVertexStride = particleVertexFloats * 4

	// verticesPerParticle and indicesPerParticle describe the quad emitted for
	// each particle.
	verticesPerParticle = 4
	indicesPerParticle  = 6
)

// ParticleFieldGenerator builds large particle fields in parallel. Each
// particle becomes a small quad with a randomized position inside the field
// extent and a randomized color. Generation is deterministic for a given seed
// and particle count regardless of worker count.
//
// Vertex layout: position vec3 at location 0, color vec4 at location 1.
type ParticleFieldGenerator interface {
	// Generate builds the particle field mesh.
	//
	// Returns:
	//   - *Mesh: the generated mesh with one quad per particle
	Generate() *Mesh

	// ParticleCount returns the number of particles this generator produces.
	//
	// Returns:
	//   - int: the configured particle count
	ParticleCount() int
}

// particleFieldGeneratorImpl is the implementation of the ParticleFieldGenerator interface.
type particleFieldGeneratorImpl struct {
	count        int
	extent       float32
	particleSize float32
	seed         uint64
	workers      int

	// pool manages a bounded set of reusable goroutines for the parallel
	// generation phase. Chunks write into disjoint regions of a pre-allocated
	// buffer so no synchronization is needed beyond the completion barrier.
	pool worker.DynamicWorkerPool
}

var _ ParticleFieldGenerator = &particleFieldGeneratorImpl{}

// NewParticleFieldGenerator creates a new ParticleFieldGenerator with the specified options.
// Defaults to 10000 particles in a field spanning -200..200 on every axis, with
// quads of size 1 and 4 generation workers.
//
// Parameters:
//   - options: functional options to configure the generator
//
// Returns:
//   - ParticleFieldGenerator: the configured generator
func NewParticleFieldGenerator(options ...ParticleFieldBuilderOption) ParticleFieldGenerator {
	g := &particleFieldGeneratorImpl{
		count:        10000,
		extent:       200.0,
		particleSize: 1.0,
		seed:         1,
		workers:      4,
	}
	for _, opt := range options {
		opt(g)
	}

	g.pool = worker.NewDynamicWorkerPool(g.workers, 256, 1*time.Second)
	return g
}

func (g *particleFieldGeneratorImpl) ParticleCount() int {
	return g.count
}

func (g *particleFieldGeneratorImpl) Generate() *Mesh {
	vertexData := make([]byte, g.count*verticesPerParticle*particleVertexStride)
	indexData := make([]byte, g.count*indicesPerParticle*4)

	chunkSize := (g.count + g.workers - 1) / g.workers
	if chunkSize < 1 {
		chunkSize = 1
	}

	// A WaitGroup provides the completion barrier since pool.Wait blocks until
	// workers idle-exit, which is unsuitable here.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < g.count; start += chunkSize {
		end := min(start+chunkSize, g.count)

		wg.Add(1)
		sCap, eCap := start, end
		id := taskID
		taskID++
		g.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				g.generateChunk(vertexData, indexData, sCap, eCap)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return &Mesh{
		vertexData: vertexData,
		indexData:  indexData,
		indexCount: g.count * indicesPerParticle,
		layout: []bind_group_provider.VertexLayoutEntry{
			{Location: 0, Components: 3},
			{Location: 1, Components: 4},
		},
	}
}

// generateChunk fills the vertex and index regions for particles [start, end).
// Each particle draws from its own seeded source so output does not depend on
// chunking or scheduling order.
func (g *particleFieldGeneratorImpl) generateChunk(vertexData, indexData []byte, start, end int) {
	half := g.particleSize / 2
	for i := start; i < end; i++ {
		rng := rand.New(rand.NewPCG(g.seed, uint64(i)))

		x := (rng.Float32()*2 - 1) * g.extent
		y := (rng.Float32()*2 - 1) * g.extent
		z := (rng.Float32()*2 - 1) * g.extent

		r := 0.4 + rng.Float32()*0.6
		gc := 0.01 + rng.Float32()*0.29
		b := 0.5 + rng.Float32()*0.5
		const a = 0.8

		vertexOffset := i * verticesPerParticle * particleVertexStride
		quad := [verticesPerParticle][3]float32{
			{x - half, y - half, z},
			{x + half, y - half, z},
			{x + half, y + half, z},
			{x - half, y + half, z},
		}
		chunk := vertexData[vertexOffset:vertexOffset:len(vertexData)]
		for _, corner := range quad {
			chunk = appendFloats(chunk, corner[0], corner[1], corner[2], r, gc, b, a)
		}

		base := uint32(i * verticesPerParticle)
		indexOffset := i * indicesPerParticle * 4
		idx := indexData[indexOffset:indexOffset:len(indexData)]
		appendIndices(idx, base, base+1, base+2, base, base+2, base+3)
	}
}
