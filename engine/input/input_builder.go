package input

import "github.com/rs/zerolog"

// HandlerBuilderOption is a functional option for configuring a Handler.
type HandlerBuilderOption func(*handlerImpl)

// WithLogger sets the logger used by the handler.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - HandlerBuilderOption: functional option to set the logger
func WithLogger(log zerolog.Logger) HandlerBuilderOption {
	return func(h *handlerImpl) {
		h.log = log
	}
}

// WithBindings replaces the default key bindings.
//
// Parameters:
//   - b: the key bindings
//
// Returns:
//   - HandlerBuilderOption: functional option to set the bindings
func WithBindings(b Bindings) HandlerBuilderOption {
	return func(h *handlerImpl) {
		h.bindings = b
	}
}
