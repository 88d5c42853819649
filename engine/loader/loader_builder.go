package loader

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithLogger is an option builder that sets the logger used by the Loader.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - LoaderBuilderOption: a function that applies the logger option to a loader
func WithLogger(log zerolog.Logger) LoaderBuilderOption {
	return func(l *loader) {
		l.log = log
	}
}

// WithFs is an option builder that sets the filesystem assets are read from.
//
// Parameters:
//   - fs: the filesystem
//
// Returns:
//   - LoaderBuilderOption: a function that applies the filesystem option to a loader
func WithFs(fs afero.Fs) LoaderBuilderOption {
	return func(l *loader) {
		l.fs = fs
	}
}

// WithRoot is an option builder that sets the directory relative asset paths are resolved against.
//
// Parameters:
//   - root: the base directory
//
// Returns:
//   - LoaderBuilderOption: a function that applies the root option to a loader
func WithRoot(root string) LoaderBuilderOption {
	return func(l *loader) {
		l.root = root
	}
}

// WithWorkers is an option builder that sets how many files LoadManifest reads at once.
//
// Parameters:
//   - n: worker count (values below 1 are treated as 1)
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker option to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.workers = max(n, 1)
	}
}

// WithAsset is an option builder that pre-populates the asset cache.
//
// Parameters:
//   - a: the asset to cache under its name
//
// Returns:
//   - LoaderBuilderOption: a function that applies the asset option to a loader
func WithAsset(a Asset) LoaderBuilderOption {
	return func(l *loader) {
		l.assetCache[a.Name] = a
	}
}
