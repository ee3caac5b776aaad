package shader

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// wgslVertexFormatMap maps WGSL type names to their corresponding wgpu vertex format and byte size
var wgslVertexFormatMap = map[string]vertexFormatInfo{
	"f32":       {wgpu.VertexFormatFloat32, 4},
	"vec2f":     {wgpu.VertexFormatFloat32x2, 8},
	"vec2<f32>": {wgpu.VertexFormatFloat32x2, 8},
	"vec3f":     {wgpu.VertexFormatFloat32x3, 12},
	"vec3<f32>": {wgpu.VertexFormatFloat32x3, 12},
	"vec4f":     {wgpu.VertexFormatFloat32x4, 16},
	"vec4<f32>": {wgpu.VertexFormatFloat32x4, 16},
	"i32":       {wgpu.VertexFormatSint32, 4},
	"vec2<i32>": {wgpu.VertexFormatSint32x2, 8},
	"vec3<i32>": {wgpu.VertexFormatSint32x3, 12},
	"vec4<i32>": {wgpu.VertexFormatSint32x4, 16},
	"u32":       {wgpu.VertexFormatUint32, 4},
	"vec2<u32>": {wgpu.VertexFormatUint32x2, 8},
	"vec3<u32>": {wgpu.VertexFormatUint32x3, 12},
	"vec4<u32>": {wgpu.VertexFormatUint32x4, 16},
}

var (
	// structBlockRegex matches struct declarations and captures the name and body
	structBlockRegex = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]*)\}`)

	// locationRegex matches @location(N) attributes
	locationRegex = regexp.MustCompile(`@location\((\d+)\)`)

	// builtinRegex matches @builtin(...) attributes
	builtinRegex = regexp.MustCompile(`@builtin\(\w+\)`)

	// fieldRegex matches a struct field line: optional attributes, name, colon, type.
	// The type capture (.+) is greedy to handle parameterized types like array<T, N>.
	fieldRegex = regexp.MustCompile(`(?:(?:@\w+\([^)]*\)\s*)*)*\s*(\w+)\s*:\s*(.+)`)

	// vertexEntryRegex matches @vertex functions and captures the entry point name
	vertexEntryRegex = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+(\w+)`)

	// fragmentEntryRegex matches @fragment functions and captures the entry point name
	fragmentEntryRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+(\w+)`)

	// vertexEntrySigRegex captures the vertex entry point's return type, which names
	// the stage output struct
	vertexEntrySigRegex = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+\w+\s*\([^)]*\)\s*->\s*([^{]+)\{`)

	// fragmentEntrySigRegex captures the fragment entry point's parameter list, which
	// names the stage input struct
	fragmentEntrySigRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+\w+\s*\(([^)]*)\)`)

	// bindGroupDeclRegex captures group, binding, optional address space, variable name, and type
	// from declarations like: @group(0) @binding(0) var<uniform> transformation_matrix: mat4x4<f32>;
	bindGroupDeclRegex = regexp.MustCompile(`@group\((\d+)\)\s*@binding\((\d+)\)\s*var(?:<([^>]*)>)?\s+(\w+)\s*:\s*([^;]+?)\s*;`)
)

// parseVertexLayouts extracts vertex buffer layouts from WGSL source code.
// It finds all structs that are pure vertex inputs (have @location attributes but no @builtin fields)
// and converts them into wgpu.VertexBufferLayout entries. Fragment shaders or shaders with no
// vertex input structs return an empty map. Structs containing unrecognized WGSL types are skipped.
//
// Parameters:
//   - source: the raw WGSL source code string
//
// Returns:
//   - map[int][]wgpu.VertexBufferLayout: vertex layouts keyed by sequential index
func parseVertexLayouts(source string) map[int][]wgpu.VertexBufferLayout {
	result := make(map[int][]wgpu.VertexBufferLayout)
	cleaned := stripLineComments(source)
	structs := parseStructBlocks(cleaned)

	layoutIndex := 0
	for _, ps := range structs {
		if !isVertexInputStruct(ps) {
			continue
		}
		layout, ok := buildVertexBufferLayout(ps)
		if !ok {
			continue
		}
		result[layoutIndex] = []wgpu.VertexBufferLayout{layout}
		layoutIndex++
	}

	return result
}

// parseBindGroupLayouts extracts all @group(N) @binding(M) resource declarations from WGSL
// source and returns them as wgpu.BindGroupLayoutDescriptor values grouped by group index.
// Each descriptor's entries are sorted by binding index. The provided visibility flag is
// applied to all entries, corresponding to the shader stage that declared them.
//
// Parameters:
//   - source: the raw WGSL source code string
//   - visibility: the shader stage visibility flag to set on each entry
//
// Returns:
//   - map[int]wgpu.BindGroupLayoutDescriptor: layout descriptors keyed by group index
//   - map[int]map[int]string: variable names keyed by group and binding index for uniform lookup
func parseBindGroupLayouts(source string, visibility wgpu.ShaderStage) (map[int]wgpu.BindGroupLayoutDescriptor, map[int]map[int]string) {
	groups := make(map[int][]wgpu.BindGroupLayoutEntry)
	varNames := make(map[int]map[int]string)
	cleaned := stripComments(source)

	// Parse all struct definitions and compute their sizes so we can set MinBindingSize
	// on buffer layout entries. This lets the dispatcher create correctly-sized GPU buffers.
	structs := parseStructBlocks(cleaned)
	structSizes := computeStructSizes(structs)

	matches := bindGroupDeclRegex.FindAllStringSubmatch(cleaned, -1)
	for _, match := range matches {
		group, _ := strconv.Atoi(match[1])
		binding, _ := strconv.Atoi(match[2])
		addressSpace := strings.TrimSpace(match[3])
		varName := strings.TrimSpace(match[4])
		typeName := strings.TrimSpace(match[5])

		entry := classifyResource(uint32(binding), visibility, addressSpace)

		// Set MinBindingSize for buffer bindings by resolving the bound type's size.
		if entry.Buffer.Type != wgpu.BufferBindingTypeUndefined {
			if layout, ok := resolveTypeLayout(typeName, structSizes); ok && layout.size > 0 {
				entry.Buffer.MinBindingSize = layout.size
			}
		}

		groups[group] = append(groups[group], entry)

		if varNames[group] == nil {
			varNames[group] = make(map[int]string)
		}
		varNames[group][binding] = varName
	}

	result := make(map[int]wgpu.BindGroupLayoutDescriptor, len(groups))
	for g, entries := range groups {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Binding < entries[j].Binding
		})
		result[g] = wgpu.BindGroupLayoutDescriptor{
			Entries: entries,
		}
	}

	return result, varNames
}

// parseEntryPoint extracts the entry point function name for the given stage kind
// from WGSL source. Returns an empty string if no matching entry point annotation is found.
//
// Parameters:
//   - source: the raw WGSL source code string
//   - kind: the stage kind to search for (StageKindVertex or StageKindFragment)
//
// Returns:
//   - string: the entry point function name, or empty string if not found
func parseEntryPoint(source string, kind StageKind) string {
	cleaned := stripComments(source)

	var re *regexp.Regexp
	switch kind {
	case StageKindVertex:
		re = vertexEntryRegex
	case StageKindFragment:
		re = fragmentEntryRegex
	default:
		return ""
	}

	if match := re.FindStringSubmatch(cleaned); match != nil {
		return match[1]
	}
	return ""
}

// parseVertexOutputs extracts the user-defined inter-stage outputs of a vertex
// stage: the @location fields of the struct named as the vertex entry point's
// return type. @builtin fields are skipped. Results are sorted by location.
//
// Parameters:
//   - source: the raw WGSL source code string
//
// Returns:
//   - []StageVar: the vertex stage's inter-stage outputs
func parseVertexOutputs(source string) []StageVar {
	cleaned := stripComments(source)

	match := vertexEntrySigRegex.FindStringSubmatch(cleaned)
	if match == nil {
		return nil
	}
	returnType := strings.TrimSpace(match[1])

	return structStageVars(cleaned, returnType)
}

// parseVertexInputs extracts the vertex attributes of a vertex stage: the
// @location fields of every pure vertex input struct, sorted by location.
// Attribute names drive semantic classification at link time.
//
// Parameters:
//   - source: the raw WGSL source code string
//
// Returns:
//   - []StageVar: the vertex stage's attributes
func parseVertexInputs(source string) []StageVar {
	cleaned := stripComments(source)

	var vars []StageVar
	for _, ps := range parseStructBlocks(cleaned) {
		if !isVertexInputStruct(ps) {
			continue
		}
		for _, f := range ps.fields {
			if f.location < 0 {
				continue
			}
			vars = append(vars, StageVar{Name: f.name, Location: f.location, TypeName: f.typeName})
		}
	}

	sort.Slice(vars, func(i, j int) bool { return vars[i].Location < vars[j].Location })
	return vars
}

// parseFragmentInputs extracts the user-defined inter-stage inputs of a fragment
// stage: the @location fields of any struct-typed parameter of the fragment
// entry point, plus any directly attributed @location parameters. Results are
// sorted by location.
//
// Parameters:
//   - source: the raw WGSL source code string
//
// Returns:
//   - []StageVar: the fragment stage's inter-stage inputs
func parseFragmentInputs(source string) []StageVar {
	cleaned := stripComments(source)

	match := fragmentEntrySigRegex.FindStringSubmatch(cleaned)
	if match == nil {
		return nil
	}

	var vars []StageVar
	for _, param := range splitAtTopLevelCommas(match[1]) {
		param = strings.TrimSpace(param)
		if param == "" {
			continue
		}

		fm := fieldRegex.FindStringSubmatch(param)
		if fm == nil {
			continue
		}
		typeName := strings.TrimSpace(fm[2])

		// Directly attributed parameter: @location(N) name: type.
		if locMatch := locationRegex.FindStringSubmatch(param); locMatch != nil {
			loc, err := strconv.Atoi(locMatch[1])
			if err == nil {
				vars = append(vars, StageVar{Name: fm[1], Location: loc, TypeName: typeName})
			}
			continue
		}
		if builtinRegex.MatchString(param) {
			continue
		}

		// Struct-typed parameter: resolve the struct's @location fields.
		vars = append(vars, structStageVars(cleaned, typeName)...)
	}

	sort.Slice(vars, func(i, j int) bool { return vars[i].Location < vars[j].Location })
	return vars
}

// structStageVars resolves a struct name to its @location fields as StageVars,
// sorted by location. Returns nil if the struct is not found.
func structStageVars(cleaned, structName string) []StageVar {
	for _, ps := range parseStructBlocks(cleaned) {
		if ps.name != structName {
			continue
		}
		vars := make([]StageVar, 0, len(ps.fields))
		for _, f := range ps.fields {
			if f.location < 0 || f.isBuiltin {
				continue
			}
			vars = append(vars, StageVar{Name: f.name, Location: f.location, TypeName: f.typeName})
		}
		sort.Slice(vars, func(i, j int) bool { return vars[i].Location < vars[j].Location })
		return vars
	}
	return nil
}

// parseStructBlocks finds all struct { ... } blocks in the cleaned WGSL source
// and parses their fields including @location and @builtin attributes
//
// Parameters:
//   - source: WGSL source with comments already stripped
//
// Returns:
//   - []parsedStruct: all struct blocks found in the source
func parseStructBlocks(source string) []parsedStruct {
	matches := structBlockRegex.FindAllStringSubmatch(source, -1)
	structs := make([]parsedStruct, 0, len(matches))

	for _, match := range matches {
		name := match[1]
		body := match[2]

		fields := parseStructFields(body)
		structs = append(structs, parsedStruct{
			name:   name,
			fields: fields,
		})
	}

	return structs
}

// parseStructFields parses the body of a struct block into individual fields,
// extracting @location and @builtin attributes along with the field name and type
//
// Parameters:
//   - body: the content between { and } of a struct declaration
//
// Returns:
//   - []parsedField: all fields found in the struct body
func parseStructFields(body string) []parsedField {
	lines := splitAtTopLevelCommas(body)
	fields := make([]parsedField, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var field parsedField

		// check for @builtin
		if builtinRegex.MatchString(line) {
			field.isBuiltin = true
		}

		// check for @location(N)
		if locMatch := locationRegex.FindStringSubmatch(line); locMatch != nil {
			loc, err := strconv.Atoi(locMatch[1])
			if err == nil {
				field.location = loc
			}
		} else {
			field.location = -1
		}

		// extract field name and type
		if fm := fieldRegex.FindStringSubmatch(line); fm != nil {
			field.name = fm[1]
			field.typeName = strings.TrimSpace(fm[2])
		} else {
			continue
		}

		fields = append(fields, field)
	}

	return fields
}
