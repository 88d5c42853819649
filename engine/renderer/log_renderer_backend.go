package renderer

import "github.com/rs/zerolog"

// logRendererBackendImpl is a headless Backend that records frames and traces a
// summary line per frame. It stands in for the GPU backend in tests and when no
// window is available.
type logRendererBackendImpl struct {
	log    zerolog.Logger
	width  int
	height int
	frames uint64
	last   *Frame
	closed bool
}

// HeadlessBackend is a Backend without a surface. It keeps the last submitted frame
// for inspection.
type HeadlessBackend interface {
	Backend

	// Last returns the most recently drawn frame, or nil if none was drawn.
	Last() *Frame

	// Frames returns the number of frames drawn.
	Frames() uint64

	// Size returns the last configured surface size.
	Size() (width, height int)
}

var _ HeadlessBackend = &logRendererBackendImpl{}

// NewLogBackend creates a headless backend that traces each frame to log.
//
// Parameters:
//   - log: the logger receiving per-frame trace lines
//
// Returns:
//   - HeadlessBackend: the backend
func NewLogBackend(log zerolog.Logger) HeadlessBackend {
	return &logRendererBackendImpl{log: log}
}

func (b *logRendererBackendImpl) Draw(frame *Frame) error {
	b.frames++
	b.last = frame
	b.log.Trace().
		Uint64("frame", frame.Index).
		Str("mode", frame.Mode.String()).
		Int("lights", frame.LightCount).
		Int("draws", len(frame.Draws)).
		Msg("frame")
	return nil
}

func (b *logRendererBackendImpl) Resize(width, height int) {
	b.width, b.height = width, height
}

func (b *logRendererBackendImpl) Close() error {
	b.closed = true
	return nil
}

func (b *logRendererBackendImpl) Last() *Frame {
	return b.last
}

func (b *logRendererBackendImpl) Frames() uint64 {
	return b.frames
}

func (b *logRendererBackendImpl) Size() (width, height int) {
	return b.width, b.height
}
