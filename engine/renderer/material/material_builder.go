package material

// Pipeline families understood by the renderer. Each family has a color and a
// normal-visualization variant.
const (
	// PipelineScene draws rigid meshes (plane parts, planet).
	PipelineScene = "scene"
	// PipelineFlag draws the wave-displaced flag mesh.
	PipelineFlag = "flag"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithDiffuse is an option builder that sets the diffuse RGBA color of the material.
//
// Parameters:
//   - color: the diffuse color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse option to a material
func WithDiffuse(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.diffuse = color
	}
}

// WithShininess is an option builder that sets the specular exponent.
//
// Parameters:
//   - shininess: the specular exponent
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = shininess
	}
}

// WithEmissive marks the material as glowing while the scene's emission flag is on.
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissive() MaterialBuilderOption {
	return func(m *material) {
		m.emissive = true
	}
}

// WithIndexRange is an option builder that limits the material to a slice of the mesh index buffer.
//
// Parameters:
//   - offset: first index
//   - count: number of indices (0 = the whole mesh)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the index range option to a material
func WithIndexRange(offset, count uint32) MaterialBuilderOption {
	return func(m *material) {
		m.indexOffset = offset
		m.indexCount = count
	}
}

// WithPipelineKey is an option builder that sets the pipeline family for the material.
//
// Parameters:
//   - key: the pipeline key to associate with the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}
