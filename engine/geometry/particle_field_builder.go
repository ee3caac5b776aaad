package geometry

// ParticleFieldBuilderOption defines the option pattern functions used to configure a
// ParticleFieldGenerator when creating it with NewParticleFieldGenerator.
type ParticleFieldBuilderOption func(*particleFieldGeneratorImpl)

// WithParticleCount sets the number of particles to generate.
//
// Parameters:
//   - count: the particle count, must be positive
//
// Returns:
//   - ParticleFieldBuilderOption: the option function to apply the count
func WithParticleCount(count int) ParticleFieldBuilderOption {
	return func(g *particleFieldGeneratorImpl) {
		if count > 0 {
			g.count = count
		}
	}
}

// WithFieldExtent sets the half-extent of the cubic field. Particle centers are
// distributed in [-extent, extent] on every axis.
//
// Parameters:
//   - extent: the field half-extent in world units
//
// Returns:
//   - ParticleFieldBuilderOption: the option function to apply the extent
func WithFieldExtent(extent float32) ParticleFieldBuilderOption {
	return func(g *particleFieldGeneratorImpl) {
		if extent > 0 {
			g.extent = extent
		}
	}
}

// WithParticleSize sets the edge length of each particle quad.
//
// Parameters:
//   - size: the quad edge length in world units
//
// Returns:
//   - ParticleFieldBuilderOption: the option function to apply the size
func WithParticleSize(size float32) ParticleFieldBuilderOption {
	return func(g *particleFieldGeneratorImpl) {
		if size > 0 {
			g.particleSize = size
		}
	}
}

// WithSeed sets the random seed. The same seed and particle count always
// produce the same field.
//
// Parameters:
//   - seed: the seed value
//
// Returns:
//   - ParticleFieldBuilderOption: the option function to apply the seed
func WithSeed(seed uint64) ParticleFieldBuilderOption {
	return func(g *particleFieldGeneratorImpl) {
		g.seed = seed
	}
}

// WithGenerationWorkers sets the number of parallel workers used during generation.
//
// Parameters:
//   - workers: the worker count, must be positive
//
// Returns:
//   - ParticleFieldBuilderOption: the option function to apply the worker count
func WithGenerationWorkers(workers int) ParticleFieldBuilderOption {
	return func(g *particleFieldGeneratorImpl) {
		if workers > 0 {
			g.workers = workers
		}
	}
}
