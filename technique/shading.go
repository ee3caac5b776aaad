package technique

import (
	"fmt"
	"math"

	"github.com/glintgfx/glint/common"
)

// Fixed shading constants baked into the compiled stage text. They are
// surfaced here as named Go values and injected into WGSL by the shader
// pre-processor, so this block is the single source of truth. Changing one
// only takes effect after the technique is re-registered.
var (
	// LightDirection is the single directional light of the lit techniques.
	// The fragment stage normalizes it before use.
	LightDirection = common.Vec3{0.8, -0.5, 0.6}
)

const (
	// ScreenCheckerScale is the screen-space checker cell size in pixels.
	// Not caller-configurable.
	ScreenCheckerScale float32 = 50.0

	// UVCheckerAlpha is the fixed translucency of the UV checker output.
	UVCheckerAlpha float32 = 0.3

	// UVCheckerDarkValue is the per-channel value of the dark checker cells.
	UVCheckerDarkValue float32 = 0.3
)

// WGSLConstant returns the generated WGSL const declaration for a named
// shading constant, as injected by the pre-processor's const annotation.
//
// Parameters:
//   - key: one of "light_direction", "screen_checker_scale",
//     "uv_checker_alpha", "uv_checker_dark_value"
//
// Returns:
//   - string: the WGSL const declaration
//   - error: an error if the key is unknown
func WGSLConstant(key string) (string, error) {
	switch key {
	case "light_direction":
		return fmt.Sprintf("const LIGHT_DIRECTION: vec3<f32> = vec3<f32>(%s, %s, %s);",
			wgslFloat(LightDirection[0]), wgslFloat(LightDirection[1]), wgslFloat(LightDirection[2])), nil
	case "screen_checker_scale":
		return fmt.Sprintf("const SCREEN_CHECKER_SCALE: f32 = %s;", wgslFloat(ScreenCheckerScale)), nil
	case "uv_checker_alpha":
		return fmt.Sprintf("const UV_CHECKER_ALPHA: f32 = %s;", wgslFloat(UVCheckerAlpha)), nil
	case "uv_checker_dark_value":
		return fmt.Sprintf("const UV_CHECKER_DARK_VALUE: f32 = %s;", wgslFloat(UVCheckerDarkValue)), nil
	default:
		return "", fmt.Errorf("unknown shading constant %q", key)
	}
}

// wgslFloat formats a float as a WGSL f32 literal with an explicit decimal
// point.
func wgslFloat(f float32) string {
	s := fmt.Sprintf("%g", f)
	for _, r := range s {
		if r == '.' || r == 'e' {
			return s
		}
	}
	return s + ".0"
}

// LambertIntensity is the CPU reference for the lit techniques' diffuse term:
// max(dot(normalize(normal), -normalize(lightDir)), 0). Tests compare it
// against hand-computed values to pin the shading contract.
//
// Parameters:
//   - normal: the surface normal (any length)
//   - lightDir: the light travel direction (any length)
//
// Returns:
//   - float32: the diffuse intensity in [0, 1]
func LambertIntensity(normal, lightDir common.Vec3) float32 {
	d := normal.Normalized().Dot(lightDir.Normalized().Scaled(-1))
	if d < 0 {
		return 0
	}
	return d
}

// ScreenCheckerParity is the CPU reference for the screen-space checker
// pattern: mod(floor(x/scale) + floor(y/scale), 2) with the fixed
// ScreenCheckerScale. Returns 0 for even cells and 1 for odd cells.
//
// Parameters:
//   - x, y: screen-space fragment coordinates in pixels
//
// Returns:
//   - int: 0 or 1 cell parity
func ScreenCheckerParity(x, y float32) int {
	s := float64(ScreenCheckerScale)
	p := math.Mod(math.Floor(float64(x)/s)+math.Floor(float64(y)/s), 2)
	if p < 0 {
		p += 2
	}
	return int(p)
}

// UVCheckerColor is the CPU reference for the UV checker fragment output.
// Even cells are white, odd cells are the dark value, both multiplied
// component-wise by the dynamic tint; alpha is the fixed UVCheckerAlpha.
//
// Parameters:
//   - u, v: interpolated texture coordinates
//   - scale: checker cell scale
//   - tint: the ChangingColor uniform value
//
// Returns:
//   - common.RGBA: the shaded fragment color
func UVCheckerColor(u, v, scale float32, tint common.Vec3) common.RGBA {
	p := math.Mod(math.Floor(float64(u*scale))+math.Floor(float64(v*scale)), 2)
	if p < 0 {
		p += 2
	}
	base := float32(1.0)
	if p >= 1 {
		base = UVCheckerDarkValue
	}
	return common.RGBA{base * tint[0], base * tint[1], base * tint[2], UVCheckerAlpha}
}
