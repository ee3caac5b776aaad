package renderer

import (
	"github.com/glintgfx/glint/engine/renderer/binder"
)

// DispatcherBuilderOption defines the option pattern functions used to configure a Dispatcher
// when creating it with NewDispatcher.
type DispatcherBuilderOption func(*dispatcherImpl)

// WithPresentMode configures the surface present mode at creation time, before the
// surface is first configured.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - DispatcherBuilderOption: the option function to apply the present mode
func WithPresentMode(mode PresentMode) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.pendingPresentMode = &mode
	}
}

// WithMSAA configures the multisample anti-aliasing sample count for the dispatcher's
// render targets. Defaults to MSAA4x when not specified.
//
// Parameters:
//   - samples: the MSAASampleCount to use (MSAAOff, MSAA4x, MSAA8x, MSAA16x)
//
// Returns:
//   - DispatcherBuilderOption: the option function to apply the sample count
func WithMSAA(samples MSAASampleCount) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.pendingMSAA = &samples
	}
}

// WithForceSoftwareRenderer forces the backend to request a fallback (software) adapter
// instead of a hardware GPU. Useful for headless environments and CI.
//
// Parameters:
//   - force: whether to force the fallback adapter
//
// Returns:
//   - DispatcherBuilderOption: the option function to apply the adapter preference
func WithForceSoftwareRenderer(force bool) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.forceFallbackAdapter = force
	}
}

// WithBackend injects a pre-constructed DispatcherBackend, skipping backend creation
// and surface configuration in NewDispatcher.
//
// Parameters:
//   - backend: the DispatcherBackend instance to use
//
// Returns:
//   - DispatcherBuilderOption: the option function to apply the backend
func WithBackend(backend DispatcherBackend) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.backend = backend
	}
}

// WithUniformBinder overrides the uniform binder used to validate and marshal
// frame parameters.
//
// Parameters:
//   - b: the UniformBinder instance to use
//
// Returns:
//   - DispatcherBuilderOption: the option function to apply the binder
func WithUniformBinder(b binder.UniformBinder) DispatcherBuilderOption {
	return func(d *dispatcherImpl) {
		d.binder = b
	}
}
