package window

// WindowBuilderOption configures the window in NewWindow.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the title bar text.
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial client area. It is clamped into the size limits.
//
// Parameters:
//   - width, height: client size in pixels
//
// Returns:
//   - WindowBuilderOption: option setting the initial size
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width, w.height = width, height
	}
}

// WithSizeLimits bounds interactive resizing. Non-positive values keep the
// current limit.
//
// Parameters:
//   - minWidth, minHeight: smallest client size in pixels
//   - maxWidth, maxHeight: largest client size in pixels
//
// Returns:
//   - WindowBuilderOption: option setting the resize limits
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		setPositive(&w.minWidth, minWidth)
		setPositive(&w.minHeight, minHeight)
		setPositive(&w.maxWidth, maxWidth)
		setPositive(&w.maxHeight, maxHeight)
	}
}

func setPositive(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
