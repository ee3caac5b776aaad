package engine

import (
	"github.com/glintgfx/glint/engine/camera"
	"github.com/glintgfx/glint/engine/renderer"
	"github.com/glintgfx/glint/engine/window"
)

// EngineBuilderOption defines the option pattern functions used to configure an Engine
// when creating it with NewEngine.
type EngineBuilderOption func(*engine)

// WithWindow attaches the window the engine renders into. Required for Run.
//
// Parameters:
//   - w: the window instance
//
// Returns:
//   - EngineBuilderOption: the option function to apply the window
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithDispatcher attaches the technique dispatcher driven by the render loop.
//
// Parameters:
//   - d: the dispatcher instance
//
// Returns:
//   - EngineBuilderOption: the option function to apply the dispatcher
func WithDispatcher(d renderer.Dispatcher) EngineBuilderOption {
	return func(e *engine) {
		e.dispatcher = d
	}
}

// WithCamera attaches a camera whose aspect ratio tracks window resizes.
//
// Parameters:
//   - c: the camera instance
//
// Returns:
//   - EngineBuilderOption: the option function to apply the camera
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithTickRate sets the initial logic tick rate in ticks per second.
//
// Parameters:
//   - fps: target ticks per second
//
// Returns:
//   - EngineBuilderOption: the option function to apply the tick rate
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetTickRate(fps)
	}
}

// WithProfiling enables or disables performance profiling output from the first frame.
//
// Parameters:
//   - enabled: whether profiling is on
//
// Returns:
//   - EngineBuilderOption: the option function to set profiling
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}
