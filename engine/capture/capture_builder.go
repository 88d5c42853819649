package capture

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// WriterBuilderOption is a functional option for configuring a Writer.
type WriterBuilderOption func(*writerImpl)

// WithLogger sets the logger used by the writer.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - WriterBuilderOption: functional option to set the logger
func WithLogger(log zerolog.Logger) WriterBuilderOption {
	return func(w *writerImpl) {
		w.log = log
	}
}

// WithFs sets the filesystem snapshots are written to.
//
// Parameters:
//   - fs: the filesystem
//
// Returns:
//   - WriterBuilderOption: functional option to set the filesystem
func WithFs(fs afero.Fs) WriterBuilderOption {
	return func(w *writerImpl) {
		w.fs = fs
	}
}

// WithPrefix sets the snapshot file name prefix.
//
// Parameters:
//   - prefix: the file name prefix
//
// Returns:
//   - WriterBuilderOption: functional option to set the prefix
func WithPrefix(prefix string) WriterBuilderOption {
	return func(w *writerImpl) {
		w.prefix = prefix
	}
}

// WithWorkers sets the number of concurrent writers.
//
// Parameters:
//   - n: the worker count (values below 1 are treated as 1)
//
// Returns:
//   - WriterBuilderOption: functional option to set the worker count
func WithWorkers(n int) WriterBuilderOption {
	return func(w *writerImpl) {
		w.workers = max(n, 1)
	}
}
