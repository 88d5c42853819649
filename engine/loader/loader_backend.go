package loader

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// loaderBackend defines the generic interface for reading asset bytes.
// Concrete implementations handle where the bytes live.
type loaderBackend interface {
	// Read returns the full contents of the asset at path.
	//
	// Parameters:
	//   - path: the asset path, relative to the backend root unless absolute
	//
	// Returns:
	//   - []byte: the asset contents
	//   - error: error if the asset is missing or unreadable
	Read(path string) ([]byte, error)
}

// fsLoaderBackendImpl reads assets from an afero filesystem rooted at a directory.
type fsLoaderBackendImpl struct {
	fs   afero.Fs
	root string
}

var _ loaderBackend = &fsLoaderBackendImpl{}

// newFSLoaderBackend creates a backend reading from fs under root.
//
// Parameters:
//   - fs: the filesystem to read from
//   - root: directory relative paths are resolved against
//
// Returns:
//   - loaderBackend: the backend
func newFSLoaderBackend(fs afero.Fs, root string) loaderBackend {
	return &fsLoaderBackendImpl{fs: fs, root: root}
}

func (b *fsLoaderBackendImpl) Read(path string) ([]byte, error) {
	full := path
	if !filepath.IsAbs(path) && b.root != "" {
		full = filepath.Join(b.root, path)
	}
	info, err := b.fs.Stat(full)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", full)
	}
	return afero.ReadFile(b.fs, full)
}
