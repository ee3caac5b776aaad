package shader

import (
	"strings"
	"testing"

	"github.com/glintgfx/glint/technique"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPassThrough(t *testing.T) {
	source := "//!glint wgsl 1\n\nfn main() {}\n"

	pp := NewPreProcessor()
	out, err := pp.Process(source)
	require.NoError(t, err)
	assert.Equal(t, source, out)
	assert.Empty(t, pp.Annotations())
}

func TestProcessMissingVersionHeader(t *testing.T) {
	pp := NewPreProcessor()
	_, err := pp.Process("fn main() {}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version header")
	assert.Contains(t, err.Error(), "line 1")
}

func TestProcessWrongVersionHeader(t *testing.T) {
	pp := NewPreProcessor()
	_, err := pp.Process("//!glint wgsl 2\nfn main() {}")
	assert.Error(t, err)
}

func TestProcessEmptySource(t *testing.T) {
	pp := NewPreProcessor()
	_, err := pp.Process("")
	assert.Error(t, err)
}

func TestProcessHeaderAfterBlankLines(t *testing.T) {
	pp := NewPreProcessor()
	_, err := pp.Process("\n\n//!glint wgsl 1\nfn main() {}")
	assert.NoError(t, err)
}

func TestProcessIncludeInjectsSnippet(t *testing.T) {
	source := "//!glint wgsl 1\n//@glint:include lambert\nfn main() {}"

	pp := NewPreProcessor()
	out, err := pp.Process(source)
	require.NoError(t, err)

	assert.NotContains(t, out, "@glint:")
	assert.Contains(t, out, strings.TrimRight(technique.LambertSource, "\n"))

	annotations := pp.Annotations()
	require.Len(t, annotations, 1)
	assert.Equal(t, annotationTypeInclude, annotations[0].Type)
	assert.Equal(t, AnnotationArgLambert, annotations[0].Arg)
	assert.Equal(t, 2, annotations[0].Line)
}

func TestProcessConstInjectsDeclaration(t *testing.T) {
	source := "//!glint wgsl 1\n//@glint:const light_direction\nfn main() {}"

	pp := NewPreProcessor()
	out, err := pp.Process(source)
	require.NoError(t, err)

	expected, err := technique.WGSLConstant("light_direction")
	require.NoError(t, err)
	assert.Contains(t, out, expected)
	assert.NotContains(t, out, "@glint:")
}

func TestProcessKeepsCommentMentioningAnnotationSyntax(t *testing.T) {
	source := "//!glint wgsl 1\n// see @glint:include docs before editing\nfn main() {}"

	pp := NewPreProcessor()
	out, err := pp.Process(source)
	require.NoError(t, err)
	assert.Contains(t, out, "see @glint:include docs")
	assert.Empty(t, pp.Annotations())
}

func TestProcessMalformedAnnotationReportsLine(t *testing.T) {
	source := "//!glint wgsl 1\nfn main() {}\n//@glint:include phong"

	pp := NewPreProcessor()
	_, err := pp.Process(source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestProcessResetsAnnotationsBetweenCalls(t *testing.T) {
	pp := NewPreProcessor()

	_, err := pp.Process("//!glint wgsl 1\n//@glint:include checker\n")
	require.NoError(t, err)
	require.Len(t, pp.Annotations(), 1)

	_, err = pp.Process("//!glint wgsl 1\nfn main() {}")
	require.NoError(t, err)
	assert.Empty(t, pp.Annotations())
}

func TestProcessEveryEmbeddedStageSource(t *testing.T) {
	// All shipped technique stages must pre-process cleanly.
	pp := NewPreProcessor()
	for _, tech := range technique.All() {
		vert, err := technique.VertexSource(tech)
		require.NoError(t, err)
		_, err = pp.Process(vert)
		assert.NoError(t, err, "vertex stage of %s", tech)

		frag, err := technique.FragmentSource(tech)
		require.NoError(t, err)
		_, err = pp.Process(frag)
		assert.NoError(t, err, "fragment stage of %s", tech)
	}
}
