package loader

import "sort"

// AssetKind classifies an asset by what consumes it.
type AssetKind int

const (
	// AssetKindModel is a mesh file for a drawable.
	AssetKindModel AssetKind = iota
	// AssetKindShader is a shader stage source.
	AssetKindShader
)

func (k AssetKind) String() string {
	switch k {
	case AssetKindShader:
		return "shader"
	default:
		return "model"
	}
}

// Asset is a loaded asset file. The bytes are not parsed.
type Asset struct {
	Name string
	Kind AssetKind
	Path string
	Data []byte
}

// Manifest names every asset the scene needs at startup. Keys are asset names,
// values are paths relative to Root.
type Manifest struct {
	Root    string            `mapstructure:"root" yaml:"root"`
	Models  map[string]string `mapstructure:"models" yaml:"models"`
	Shaders map[string]string `mapstructure:"shaders" yaml:"shaders"`
}

// DefaultManifest returns the asset set of the flight scene: the plane body, its flag,
// the planet and the color/normal shader pairs for rigid and wave-displaced meshes.
//
// Returns:
//   - Manifest: the default manifest
func DefaultManifest() Manifest {
	return Manifest{
		Root: "assets",
		Models: map[string]string{
			"plane":  "plane/cartoon-plane.obj",
			"flag":   "plane/flag_uibk.obj",
			"planet": "planet/cute-little-planet.obj",
		},
		Shaders: map[string]string{
			"default.vert": "shader/default.vert",
			"flag.vert":    "shader/flag.vert",
			"color.frag":   "shader/color.frag",
			"normal.frag":  "shader/normal.frag",
		},
	}
}

// entry is one asset to load.
type entry struct {
	name string
	kind AssetKind
	path string
}

// entries flattens the manifest in a stable order.
func (m Manifest) entries() []entry {
	out := make([]entry, 0, len(m.Models)+len(m.Shaders))
	for name, path := range m.Models {
		out = append(out, entry{name: name, kind: AssetKindModel, path: path})
	}
	for name, path := range m.Shaders {
		out = append(out, entry{name: name, kind: AssetKindShader, path: path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].kind != out[j].kind {
			return out[i].kind < out[j].kind
		}
		return out[i].name < out[j].name
	})
	return out
}
