package material

// material is the implementation of the Material interface.
type material struct {
	name        string
	diffuse     [4]float32
	shininess   float32
	emissive    bool
	pipelineKey string
	indexOffset uint32
	indexCount  uint32
}

// Material defines the interface for a render material: the surface properties of
// one index range of a mesh and the pipeline family it is drawn with.
//
// Surface properties are set at load time and are read-only through this interface.
// The pipeline key is mutable so a scene can move a part to another shader family
// (for example the flag's wave shader) after construction.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Diffuse retrieves the diffuse RGBA color of the material.
	//
	// Returns:
	//   - [4]float32: the diffuse color as RGBA values
	Diffuse() [4]float32

	// Shininess retrieves the specular exponent of the material.
	//
	// Returns:
	//   - float32: the specular exponent
	Shininess() float32

	// Emissive reports whether the material glows while the scene's emission flag is on.
	// The planet's night-side lights use this.
	//
	// Returns:
	//   - bool: true if the material is emissive
	Emissive() bool

	// IndexRange retrieves the slice of the mesh index buffer drawn with this material.
	//
	// Returns:
	//   - offset: first index
	//   - count: number of indices (0 = the whole mesh)
	IndexRange() (offset, count uint32)

	// PipelineKey retrieves the shader family this material is drawn with.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// SetPipelineKey sets the shader family for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// The default is an opaque white, non-emissive surface drawn with the "scene" pipeline.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		diffuse:     [4]float32{1, 1, 1, 1},
		shininess:   32,
		pipelineKey: PipelineScene,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Diffuse() [4]float32 {
	return m.diffuse
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) Emissive() bool {
	return m.emissive
}

func (m *material) IndexRange() (offset, count uint32) {
	return m.indexOffset, m.indexCount
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}
