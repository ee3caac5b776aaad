package technique

import "github.com/glintgfx/glint/common"

// frameParametersImpl is the single implementation of FrameParameters.
// Values are stored per name so absence is detectable: a matrix that was
// never supplied is distinguishable from a deliberately supplied zero matrix.
type frameParametersImpl struct {
	mat4s  map[string][16]float32
	vec3s  map[string]common.Vec3
	floats map[string]float32
}

// FrameParameters carries caller-supplied per-draw uniform values. Instances
// are transient: build one per draw with NewFrameParameters, hand it to the
// dispatcher, and discard it. They are never persisted or mutated after
// construction.
type FrameParameters interface {
	// Mat4 looks up a 4x4 matrix value by uniform name.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - [16]float32: the column-major matrix value
	//   - bool: true if the value was supplied
	Mat4(name string) ([16]float32, bool)

	// Vec3 looks up a 3-component vector value by uniform name.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - common.Vec3: the vector value
	//   - bool: true if the value was supplied
	Vec3(name string) (common.Vec3, bool)

	// Float looks up a scalar value by uniform name.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - float32: the scalar value
	//   - bool: true if the value was supplied
	Float(name string) (float32, bool)

	// Has reports whether a value of any type was supplied for the name.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - bool: true if the value was supplied
	Has(name string) bool
}

var _ FrameParameters = &frameParametersImpl{}

// NewFrameParameters builds a per-draw parameter set from functional options.
//
// Parameters:
//   - options: functional options supplying uniform values
//
// Returns:
//   - FrameParameters: the immutable parameter set
func NewFrameParameters(options ...FrameParametersOption) FrameParameters {
	fp := &frameParametersImpl{
		mat4s:  make(map[string][16]float32),
		vec3s:  make(map[string]common.Vec3),
		floats: make(map[string]float32),
	}
	for _, option := range options {
		option(fp)
	}
	return fp
}

func (fp *frameParametersImpl) Mat4(name string) ([16]float32, bool) {
	m, ok := fp.mat4s[name]
	return m, ok
}

func (fp *frameParametersImpl) Vec3(name string) (common.Vec3, bool) {
	v, ok := fp.vec3s[name]
	return v, ok
}

func (fp *frameParametersImpl) Float(name string) (float32, bool) {
	f, ok := fp.floats[name]
	return f, ok
}

func (fp *frameParametersImpl) Has(name string) bool {
	if _, ok := fp.mat4s[name]; ok {
		return true
	}
	if _, ok := fp.vec3s[name]; ok {
		return true
	}
	_, ok := fp.floats[name]
	return ok
}
