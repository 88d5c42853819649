package light

import "github.com/rs/zerolog"

// ArrayBuilderOption is a functional option for configuring an Array.
type ArrayBuilderOption func(*arrayImpl)

// WithLogger sets the logger used by the array.
func WithLogger(log zerolog.Logger) ArrayBuilderOption {
	return func(a *arrayImpl) {
		a.log = log
	}
}

// WithGate sets the initial state of the plane-lights presentation gate.
//
// Parameters:
//   - enabled: true to start with the lights shown
//
// Returns:
//   - ArrayBuilderOption: functional option to set the gate
func WithGate(enabled bool) ArrayBuilderOption {
	return func(a *arrayImpl) {
		a.gate = enabled
	}
}
