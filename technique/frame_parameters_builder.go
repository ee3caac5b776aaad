package technique

import "github.com/glintgfx/glint/common"

type FrameParametersOption func(*frameParametersImpl)

// WithMat4 supplies a 4x4 column-major matrix for an arbitrary uniform name.
//
// Parameters:
//   - name: the uniform name
//   - m: the matrix value
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithMat4(name string, m [16]float32) FrameParametersOption {
	return func(fp *frameParametersImpl) {
		fp.mat4s[name] = m
	}
}

// WithVec3 supplies a 3-component vector for an arbitrary uniform name.
//
// Parameters:
//   - name: the uniform name
//   - v: the vector value
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithVec3(name string, v common.Vec3) FrameParametersOption {
	return func(fp *frameParametersImpl) {
		fp.vec3s[name] = v
	}
}

// WithFloat supplies a scalar for an arbitrary uniform name.
//
// Parameters:
//   - name: the uniform name
//   - f: the scalar value
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithFloat(name string, f float32) FrameParametersOption {
	return func(fp *frameParametersImpl) {
		fp.floats[name] = f
	}
}

// WithTransformationMatrix supplies the lit mesh technique's precomposed
// model-view-projection matrix.
//
// Parameters:
//   - m: the matrix value
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithTransformationMatrix(m [16]float32) FrameParametersOption {
	return WithMat4(UniformTransformationMatrix, m)
}

// WithMVPMatrix supplies the world-space lit variant's model-view-projection
// matrix.
//
// Parameters:
//   - m: the matrix value
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithMVPMatrix(m [16]float32) FrameParametersOption {
	return WithMat4(UniformMVPMatrix, m)
}

// WithModelMatrix supplies the world-space lit variant's model matrix.
//
// Parameters:
//   - m: the matrix value
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithModelMatrix(m [16]float32) FrameParametersOption {
	return WithMat4(UniformModelMatrix, m)
}

// WithViewProjectionMatrix supplies the combined view-projection matrix.
//
// Parameters:
//   - m: the matrix value
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithViewProjectionMatrix(m [16]float32) FrameParametersOption {
	return WithMat4(UniformViewProjectionMatrix, m)
}

// WithChangingColorMatrix supplies the color modulation matrix.
//
// Parameters:
//   - m: the matrix value
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithChangingColorMatrix(m [16]float32) FrameParametersOption {
	return WithMat4(UniformChangingColorMatrix, m)
}

// WithChangingColor supplies the UV checker technique's dynamic tint.
//
// Parameters:
//   - c: the tint color
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithChangingColor(c common.Vec3) FrameParametersOption {
	return WithVec3(UniformChangingColor, c)
}

// WithScale supplies the UV checker technique's cell scale.
//
// Parameters:
//   - s: the scale value
//
// Returns:
//   - FrameParametersOption: functional option to set the value
func WithScale(s float32) FrameParametersOption {
	return WithFloat(UniformScale, s)
}
