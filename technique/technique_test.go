package technique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTechniquesValid(t *testing.T) {
	all := All()
	assert.Len(t, all, 7)
	for _, tech := range all {
		assert.True(t, tech.Valid(), "technique %s should be valid", tech)
	}
}

func TestInvalidTechnique(t *testing.T) {
	assert.False(t, Technique("wireframe").Valid())
	assert.False(t, Technique("").Valid())
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = Technique("mutated")
	assert.NotEqual(t, a[0], All()[0])
}

func TestEverySourceAssetPresent(t *testing.T) {
	for _, tech := range All() {
		vert, err := VertexSource(tech)
		require.NoError(t, err, "vertex source for %s", tech)
		assert.NotEmpty(t, vert)

		frag, err := FragmentSource(tech)
		require.NoError(t, err, "fragment source for %s", tech)
		assert.NotEmpty(t, frag)
	}
}

func TestSourceForUnknownTechnique(t *testing.T) {
	_, err := VertexSource(Technique("wireframe"))
	assert.Error(t, err)
	_, err = FragmentSource(Technique("wireframe"))
	assert.Error(t, err)
}

func TestSnippetAssetsPresent(t *testing.T) {
	assert.NotEmpty(t, LambertSource)
	assert.NotEmpty(t, CheckerSource)
}
