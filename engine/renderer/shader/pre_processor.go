// pre_processor.go implements the Glint WGSL shader pre-processor. It validates the
// //!glint version header, scans shader source for @glint: annotations, and replaces
// them with injected snippet source or generated const declarations.
//
// The pre-processor maintains one registry:
//   - snippetRegistry: maps AnnotationArg keys to embedded WGSL snippet sources from
//     the technique package. Used by @glint:include.
//
// Const declarations are generated on demand through technique.WGSLConstant so the
// Go-side shading constants remain the single source of truth.
package shader

import (
	"fmt"
	"strings"

	"github.com/glintgfx/glint/technique"
)

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// snippetRegistry maps snippet argument keys to their embedded WGSL source.
	snippetRegistry map[AnnotationArg]string

	// annotations accumulates the annotations replaced during a Process call.
	// Reset at the start of each Process invocation.
	annotations []Annotation
}

// PreProcessor processes raw WGSL shader source code containing @glint: annotations,
// replacing them with injected snippet source or generated const declarations while
// validating the mandatory version header.
type PreProcessor interface {
	// Process takes raw WGSL shader source code and pre-processes it. The first
	// non-empty line must be the //!glint version header. @glint:include annotations
	// are replaced with embedded snippet source text. @glint:const annotations are
	// replaced with generated WGSL const declarations.
	//
	// The annotations list is reset at the start of each call and can be retrieved
	// via Annotations() after Process returns.
	//
	// Parameters:
	//   - source: the raw WGSL shader source code containing annotations to be processed
	//
	// Returns:
	//   - string: the processed WGSL shader source code with annotations replaced
	//   - error: an error if the header is missing or any annotation is malformed
	Process(source string) (string, error)

	// Annotations returns the annotations replaced during the most recent call to
	// Process, in source order. Returns nil if Process has not been called.
	//
	// Returns:
	//   - []Annotation: the annotations from the last Process call
	Annotations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a new PreProcessor with the registered snippet sources
// pre-populated from the technique package's embedded assets.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		snippetRegistry: map[AnnotationArg]string{
			AnnotationArgLambert: technique.LambertSource,
			AnnotationArgChecker: technique.CheckerSource,
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.annotations = p.annotations[:0]

	if err := validateVersionHeader(source); err != nil {
		return "", err
	}

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	// iterate through each line of the source and attempt to parse it as an annotation, if it's an annotation replace it with the corresponding output, otherwise keep the line as is.
	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			snippet, ok := p.snippetRegistry[a.Arg]
			if !ok {
				return "", fmt.Errorf("line %d: unknown @glint:include argument %q", i+1, a.Arg)
			}
			out = append(out, strings.TrimRight(snippet, "\n"))
		case annotationTypeConst:
			decl, err := technique.WGSLConstant(string(a.Arg))
			if err != nil {
				return "", fmt.Errorf("line %d: %w", i+1, err)
			}
			out = append(out, decl)
		default:
			return "", fmt.Errorf("line %d: unknown annotation type %q", i+1, a.Type)
		}
		p.annotations = append(p.annotations, *a)
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Annotations() []Annotation {
	return p.annotations
}

// validateVersionHeader checks that the first non-empty line of the source is the
// //!glint version header.
func validateVersionHeader(source string) error {
	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed != versionHeader {
			return fmt.Errorf("line %d: missing %q version header, found %q", i+1, versionHeader, trimmed)
		}
		return nil
	}
	return fmt.Errorf("missing %q version header in empty source", versionHeader)
}
