// annotations.go defines the annotation types, argument constants, and parser for the
// Glint WGSL shader pre-processor. Annotations are single-line WGSL comments prefixed
// with @glint: that drive shared snippet injection and shading-constant generation.
// The parsed results are stored as Annotation values and consumed by the PreProcessor
// while compiling a stage.
package shader

import (
	"fmt"
	"slices"
	"strings"
)

// annotationPrefix is the marker that identifies a Glint annotation within a WGSL
// comment line. Every annotation must appear on a line beginning with "//" followed
// by this prefix.
const annotationPrefix = "@glint:"

// versionHeader is the mandatory first line of every Glint WGSL stage source.
// It declares the shading language and pre-processor revision the stage was
// written against; stages without it are rejected at compile time.
const versionHeader = "//!glint wgsl 1"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source of a registered shared snippet
	// into the shader at the annotation site. Snippets are embedded .wgsl asset
	// files from the technique package (shared shading functions).
	//
	// Syntax: //@glint:include <snippet>
	//
	// Example: //@glint:include lambert
	annotationTypeInclude AnnotationType = "include"

	// annotationTypeConst injects a generated WGSL const declaration for a named
	// shading constant. The value comes from the technique package's Go constants,
	// so shader text and CPU reference math share a single source. Changing a
	// constant requires re-registering the technique.
	//
	// Syntax: //@glint:const <constant_key>
	//
	// Example: //@glint:const light_direction
	annotationTypeConst AnnotationType = "const"
)

// Annotation represents a single parsed @glint: annotation from a WGSL shader
// source line.
type Annotation struct {
	// Type identifies which annotation was parsed (include or const).
	Type AnnotationType

	// Arg is the annotation's single argument: a snippet key for include, a
	// shading-constant key for const.
	Arg AnnotationArg

	// Line is the 1-based line number in the original WGSL source where this
	// annotation was found. Used for error reporting.
	Line int
}

// AnnotationArg is a typed string constant used as an argument in annotations.
type AnnotationArg string

// ── Snippet arguments ─────────────────────────────────────────────────────────
// These identify registered shared WGSL snippets. Each maps to an embedded
// .wgsl asset in the technique package.

const (
	// AnnotationArgLambert identifies the lambert_intensity function snippet.
	// Source: technique/assets/lambert.wgsl
	AnnotationArgLambert AnnotationArg = "lambert"

	// AnnotationArgChecker identifies the checker_parity function snippet.
	// Source: technique/assets/checker.wgsl
	AnnotationArgChecker AnnotationArg = "checker"
)

// ── Shading constant arguments ────────────────────────────────────────────────
// These identify named shading constants generated from the technique package.

const (
	// AnnotationArgLightDirection generates the LIGHT_DIRECTION const.
	AnnotationArgLightDirection AnnotationArg = "light_direction"

	// AnnotationArgScreenCheckerScale generates the SCREEN_CHECKER_SCALE const.
	AnnotationArgScreenCheckerScale AnnotationArg = "screen_checker_scale"

	// AnnotationArgUVCheckerAlpha generates the UV_CHECKER_ALPHA const.
	AnnotationArgUVCheckerAlpha AnnotationArg = "uv_checker_alpha"

	// AnnotationArgUVCheckerDarkValue generates the UV_CHECKER_DARK_VALUE const.
	AnnotationArgUVCheckerDarkValue AnnotationArg = "uv_checker_dark_value"
)

// validSnippets lists all AnnotationArg values accepted in @glint:include
// annotations. Each entry must have a corresponding source in the
// PreProcessor's snippet registry.
var validSnippets = []AnnotationArg{
	AnnotationArgLambert,
	AnnotationArgChecker,
}

// validConstants lists all AnnotationArg values accepted in @glint:const
// annotations. Each must be resolvable by technique.WGSLConstant.
var validConstants = []AnnotationArg{
	AnnotationArgLightDirection,
	AnnotationArgScreenCheckerScale,
	AnnotationArgUVCheckerAlpha,
	AnnotationArgUVCheckerDarkValue,
}

// parseAnnotation attempts to parse a single line of WGSL source as an @glint:
// annotation. Only comment lines whose "//" is immediately followed by the
// annotation prefix (after optional whitespace) count; a comment that merely
// mentions the prefix mid-sentence is ordinary text and returns nil with no
// error. Returns a populated Annotation for valid annotations, or an error
// describing the problem for malformed annotations with correct prefix but
// invalid syntax or unknown arguments.
//
// Parameters:
//   - line: the raw WGSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "//")
	if !ok {
		return nil, nil
	}
	after, ok := strings.CutPrefix(strings.TrimSpace(rest), annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @glint annotation", lineNum)
	}

	switch args[0] {
	case string(annotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @glint include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validSnippets, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown snippet %q in @glint include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Arg:  AnnotationArg(args[1]),
			Line: lineNum,
		}, nil
	case string(annotationTypeConst):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @glint const annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validConstants, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown shading constant %q in @glint const annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeConst,
			Arg:  AnnotationArg(args[1]),
			Line: lineNum,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @glint annotation type %q", lineNum, args[0])
	}
}
