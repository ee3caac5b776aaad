package renderer

import (
	"testing"

	"github.com/glintgfx/glint/common"
	"github.com/glintgfx/glint/engine/renderer/bind_group_provider"
	"github.com/glintgfx/glint/engine/renderer/binder"
	"github.com/glintgfx/glint/engine/renderer/registry"
	"github.com/glintgfx/glint/technique"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformAllocSize(t *testing.T) {
	assert.Equal(t, uint64(16), uniformAllocSize(4))
	assert.Equal(t, uint64(16), uniformAllocSize(12))
	assert.Equal(t, uint64(16), uniformAllocSize(16))
	assert.Equal(t, uint64(64), uniformAllocSize(64))
}

// fullParams builds frame parameters covering every schema entry of a
// technique, required and optional alike.
func fullParams(tech technique.Technique) technique.FrameParameters {
	var opts []technique.FrameParametersOption
	for _, entry := range technique.Schema(tech) {
		switch entry.Type {
		case technique.UniformTypeMat4:
			opts = append(opts, technique.WithMat4(entry.Name, [16]float32{
				1, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 1, 0,
				0, 0, 0, 1,
			}))
		case technique.UniformTypeVec3:
			opts = append(opts, technique.WithVec3(entry.Name, common.Vec3{1, 1, 1}))
		case technique.UniformTypeFloat:
			opts = append(opts, technique.WithFloat(entry.Name, 8.0))
		}
	}
	return technique.NewFrameParameters(opts...)
}

func TestUniformBuffersCoverStagedWrites(t *testing.T) {
	r := registry.NewRegistry()
	require.NoError(t, r.RegisterDefaults())
	b := binder.NewUniformBinder()

	for _, tech := range technique.All() {
		p, err := r.Get(tech)
		require.NoError(t, err, "get %s", tech)

		provider := bind_group_provider.NewBindGroupProvider(string(tech) + "_uniforms")
		writes, err := b.Bind(p, provider, fullParams(tech))
		require.NoError(t, err, "bind %s", tech)

		descriptor, ok := p.BindGroupLayoutDescriptors()[0]
		if !ok {
			assert.Empty(t, writes, "%s has no uniform bind group", tech)
			continue
		}

		// Every staged write must fit the buffer allocated for its binding.
		for _, w := range writes {
			var found bool
			for _, entry := range descriptor.Entries {
				if int(entry.Binding) != w.Binding {
					continue
				}
				found = true
				assert.GreaterOrEqual(t, uniformAllocSize(entry.Buffer.MinBindingSize), uint64(len(w.Data)),
					"%s binding %d: staged write exceeds allocated buffer", tech, w.Binding)
			}
			assert.True(t, found, "%s stages a write for binding %d with no layout entry", tech, w.Binding)
		}
	}
}

func TestVec3UniformBufferFitsPaddedWrite(t *testing.T) {
	r := registry.NewRegistry()
	require.NoError(t, r.RegisterDefaults())
	b := binder.NewUniformBinder()

	p, err := r.Get(technique.TechniqueProceduralCheckerboardUV)
	require.NoError(t, err)

	provider := bind_group_provider.NewBindGroupProvider("checker_uv_uniforms")
	writes, err := b.Bind(p, provider, technique.NewFrameParameters(
		technique.WithChangingColor(common.Vec3{1, 1, 1}),
		technique.WithScale(8.0),
	))
	require.NoError(t, err)
	require.Len(t, writes, 2)

	descriptor, ok := p.BindGroupLayoutDescriptors()[0]
	require.True(t, ok)

	// The vec3 binding has a 12-byte minimum binding size but the staged write
	// carries 16 bytes of WGSL-aligned data.
	assert.Equal(t, uint64(12), descriptor.Entries[0].Buffer.MinBindingSize)
	assert.Len(t, writes[0].Data, 16)
	assert.GreaterOrEqual(t, uniformAllocSize(descriptor.Entries[0].Buffer.MinBindingSize), uint64(len(writes[0].Data)))
}
