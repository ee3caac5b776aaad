package technique

import (
	"embed"
	"fmt"
)

// stageAssets holds the canonical WGSL stage sources for every technique,
// one <technique>_vert.wgsl / <technique>_frag.wgsl pair per technique, plus
// the shared snippet files injected by the pre-processor.
//
//go:embed assets/*.wgsl
var stageAssets embed.FS

// LambertSource is the shared WGSL diffuse term snippet injected by the
// pre-processor's lambert include. It references the LIGHT_DIRECTION
// constant, which must be injected first.
//
//go:embed assets/lambert.wgsl
var LambertSource string

// CheckerSource is the shared WGSL checker parity snippet injected by the
// pre-processor's checker include. Callers pass pre-scaled cell coordinates.
//
//go:embed assets/checker.wgsl
var CheckerSource string

// VertexSource returns the embedded WGSL vertex stage source for a
// technique.
//
// Parameters:
//   - t: the technique to look up
//
// Returns:
//   - string: the raw (unprocessed) WGSL source
//   - error: an error if the technique has no embedded vertex stage
func VertexSource(t Technique) (string, error) {
	return stageSource(t, "vert")
}

// FragmentSource returns the embedded WGSL fragment stage source for a
// technique.
//
// Parameters:
//   - t: the technique to look up
//
// Returns:
//   - string: the raw (unprocessed) WGSL source
//   - error: an error if the technique has no embedded fragment stage
func FragmentSource(t Technique) (string, error) {
	return stageSource(t, "frag")
}

func stageSource(t Technique, suffix string) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("unknown technique %q", t)
	}
	data, err := stageAssets.ReadFile(fmt.Sprintf("assets/%s_%s.wgsl", t, suffix))
	if err != nil {
		return "", fmt.Errorf("no embedded %s stage for technique %q: %w", suffix, t, err)
	}
	return string(data), nil
}
