package renderer

import "github.com/rs/zerolog"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithLogger sets the logger used by the renderer.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger option to a renderer
func WithLogger(log zerolog.Logger) RendererBuilderOption {
	return func(r *renderer) {
		r.log = log
	}
}

// WithClearColors sets the clear colors used by day and by night.
//
// Parameters:
//   - day: RGBA clear color while emission is off
//   - night: RGBA clear color while emission is on
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColors(day, night [4]float64) RendererBuilderOption {
	return func(r *renderer) {
		r.dayClear = day
		r.nightClear = night
	}
}
