package camera

// CameraBuilderOption configures a Camera in NewCamera.
type CameraBuilderOption func(*cameraImpl)

// WithFov sets the vertical field of view.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: option setting the field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithViewport sizes the projection to the framebuffer.
//
// Parameters:
//   - width, height: framebuffer size in pixels
//
// Returns:
//   - CameraBuilderOption: option setting viewport and aspect
func WithViewport(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setViewport(width, height)
	}
}

// WithClip sets the near and far clip distances. The pair is ignored unless
// 0 < near < far, which keeps the projection invertible.
//
// Parameters:
//   - near, far: clip distances in world units
//
// Returns:
//   - CameraBuilderOption: option setting the clip range
func WithClip(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if near > 0 && far > near {
			c.near, c.far = near, far
		}
	}
}

// WithController drives the view matrix from ctrl.
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
