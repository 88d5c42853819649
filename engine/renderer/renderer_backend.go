package renderer

// RenderMode selects how the scene is shaded.
type RenderMode int

const (
	// RenderModeColor shades surfaces with their materials and the active lighting preset.
	RenderModeColor RenderMode = iota

	// RenderModeNormal visualizes surface normals instead of lighting.
	RenderModeNormal
)

// String returns the pipeline suffix for the mode.
func (m RenderMode) String() string {
	switch m {
	case RenderModeNormal:
		return "normal"
	default:
		return "color"
	}
}

// Next returns the mode that follows m in the render-mode cycle.
func (m RenderMode) Next() RenderMode {
	if m == RenderModeNormal {
		return RenderModeColor
	}
	return RenderModeNormal
}

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// Backend consumes fully marshaled frames. The Renderer owns marshaling; a backend
// only uploads the blocks and issues the draws.
type Backend interface {
	// Draw submits one frame.
	//
	// Parameters:
	//   - frame: the marshaled frame
	//
	// Returns:
	//   - error: error if the frame could not be submitted
	Draw(frame *Frame) error

	// Resize reconfigures the backend for a new surface size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Close releases backend resources.
	//
	// Returns:
	//   - error: error if release fails
	Close() error
}
