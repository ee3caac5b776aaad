package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnnotationNonAnnotationLine(t *testing.T) {
	a, err := parseAnnotation("var<uniform> m: mat4x4<f32>;", 3)
	require.NoError(t, err)
	assert.Nil(t, a)

	a, err = parseAnnotation("// plain comment", 4)
	require.NoError(t, err)
	assert.Nil(t, a)

	// A comment that mentions the prefix mid-sentence is not an annotation.
	a, err = parseAnnotation("// see @glint:include docs for snippet keys", 5)
	require.NoError(t, err)
	assert.Nil(t, a)

	// Code lines never parse as annotations even if the prefix appears in them.
	a, err = parseAnnotation(`let s = "@glint:const";`, 6)
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestParseAnnotationAllowsSpaceAfterSlashes(t *testing.T) {
	a, err := parseAnnotation("// @glint:include checker", 9)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, annotationTypeInclude, a.Type)
	assert.Equal(t, AnnotationArgChecker, a.Arg)
}

func TestParseAnnotationInclude(t *testing.T) {
	a, err := parseAnnotation("//@glint:include lambert", 7)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, annotationTypeInclude, a.Type)
	assert.Equal(t, AnnotationArgLambert, a.Arg)
	assert.Equal(t, 7, a.Line)
}

func TestParseAnnotationConst(t *testing.T) {
	a, err := parseAnnotation("  //@glint:const light_direction", 2)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, annotationTypeConst, a.Type)
	assert.Equal(t, AnnotationArgLightDirection, a.Arg)
	assert.Equal(t, 2, a.Line)
}

func TestParseAnnotationErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"empty annotation", "//@glint:"},
		{"unknown type", "//@glint:import lambert"},
		{"include missing arg", "//@glint:include"},
		{"include extra args", "//@glint:include lambert checker"},
		{"include unknown snippet", "//@glint:include phong"},
		{"const missing arg", "//@glint:const"},
		{"const unknown key", "//@glint:const specular_power"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := parseAnnotation(tc.line, 12)
			assert.Error(t, err)
			assert.Nil(t, a)
			assert.Contains(t, err.Error(), "line 12")
		})
	}
}
