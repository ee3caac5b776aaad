package binder

import (
	"github.com/glintgfx/glint/engine/renderer/bind_group_provider"
	"github.com/glintgfx/glint/engine/renderer/program"
	"github.com/glintgfx/glint/technique"
)

// uniformBinder is the implementation of the UniformBinder interface.
type uniformBinder struct{}

// UniformBinder defines the interface for resolving per-draw frame parameters against
// a technique's uniform schema and marshalling them into staged GPU buffer writes.
// Binding is all-or-nothing: a bind that fails produces no writes at all, so a draw
// never runs with a partially updated uniform set.
type UniformBinder interface {
	// Bind validates the frame parameters against the schema of the program's
	// technique and marshals every uniform into a BufferWrite targeting the
	// provider. Required schema entries must be present in the parameters;
	// optional entries fall back to their schema defaults. Uniform locations
	// come from the program's link-time index, never from re-parsing source.
	//
	// Parameters:
	//   - p: the linked program whose uniform index resolves binding locations
	//   - provider: the bind group provider the writes target
	//   - params: the per-draw frame parameters
	//
	// Returns:
	//   - []bind_group_provider.BufferWrite: one staged write per schema entry, in binding order
	//   - error: a *BindError if a required uniform is missing or a value has the wrong type
	Bind(p program.Program, provider bind_group_provider.BindGroupProvider, params technique.FrameParameters) ([]bind_group_provider.BufferWrite, error)
}

var _ UniformBinder = &uniformBinder{}

// NewUniformBinder creates a new UniformBinder.
//
// Returns:
//   - UniformBinder: a ready-to-use binder instance
func NewUniformBinder() UniformBinder {
	return &uniformBinder{}
}

func (b *uniformBinder) Bind(p program.Program, provider bind_group_provider.BindGroupProvider, params technique.FrameParameters) ([]bind_group_provider.BufferWrite, error) {
	t := p.Technique()
	schema := technique.Schema(t)

	writes := make([]bind_group_provider.BufferWrite, 0, len(schema))
	for _, entry := range schema {
		data, err := marshalEntry(t, entry, params)
		if err != nil {
			return nil, err
		}

		loc, ok := p.UniformLocation(entry.Name)
		if !ok {
			// The registry validates the index against the schema at registration,
			// so a miss here means the program was not built through it.
			return nil, &BindError{
				Technique:   t,
				MissingName: entry.Name,
				Detail:      "not present in the program's uniform index",
			}
		}

		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: provider,
			Binding:  loc.Binding,
			Offset:   0,
			Data:     data,
		})
	}

	return writes, nil
}

// marshalEntry resolves one schema entry against the frame parameters and marshals
// it into GPU-aligned bytes. Optional entries fall back to their schema default when
// the parameters carry no value under the entry's name.
func marshalEntry(t technique.Technique, entry technique.UniformEntry, params technique.FrameParameters) ([]byte, error) {
	switch entry.Type {
	case technique.UniformTypeMat4:
		if m, ok := params.Mat4(entry.Name); ok {
			g := technique.GPUMat4Uniform{M: m}
			return g.Marshal(), nil
		}
	case technique.UniformTypeVec3:
		if v, ok := params.Vec3(entry.Name); ok {
			g := technique.GPUVec3Uniform{V: [3]float32(v)}
			return g.Marshal(), nil
		}
	case technique.UniformTypeFloat:
		if f, ok := params.Float(entry.Name); ok {
			g := technique.GPUFloatUniform{V: f}
			return g.Marshal(), nil
		}
	default:
		return nil, &BindError{
			Technique:   t,
			MissingName: entry.Name,
			Detail:      "unsupported uniform type " + string(entry.Type),
		}
	}

	// A value present under the name but not returned by the typed getter was
	// supplied with the wrong type.
	if params.Has(entry.Name) {
		return nil, &BindError{
			Technique:   t,
			MissingName: entry.Name,
			Detail:      "value has the wrong type, expected " + string(entry.Type),
		}
	}

	if entry.Required {
		return nil, &BindError{Technique: t, MissingName: entry.Name}
	}

	return marshalDefault(t, entry)
}

// marshalDefault marshals an optional entry's schema default.
func marshalDefault(t technique.Technique, entry technique.UniformEntry) ([]byte, error) {
	switch entry.Type {
	case technique.UniformTypeMat4:
		if len(entry.Default) != 16 {
			return nil, &BindError{
				Technique:   t,
				MissingName: entry.Name,
				Detail:      "schema default is not a 16-element matrix",
			}
		}
		var g technique.GPUMat4Uniform
		copy(g.M[:], entry.Default)
		return g.Marshal(), nil
	case technique.UniformTypeVec3:
		if len(entry.Default) != 3 {
			return nil, &BindError{
				Technique:   t,
				MissingName: entry.Name,
				Detail:      "schema default is not a 3-element vector",
			}
		}
		var g technique.GPUVec3Uniform
		copy(g.V[:], entry.Default)
		return g.Marshal(), nil
	case technique.UniformTypeFloat:
		if len(entry.Default) != 1 {
			return nil, &BindError{
				Technique:   t,
				MissingName: entry.Name,
				Detail:      "schema default is not a single float",
			}
		}
		g := technique.GPUFloatUniform{V: entry.Default[0]}
		return g.Marshal(), nil
	default:
		return nil, &BindError{
			Technique:   t,
			MissingName: entry.Name,
			Detail:      "unsupported uniform type " + string(entry.Type),
		}
	}
}
