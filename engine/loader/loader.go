// Package loader reads the scene's startup assets into memory. A missing or empty
// asset is a configuration error reported to the caller; assets are not parsed here.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ErrEmptyAsset is returned for asset files with no content.
var ErrEmptyAsset = errors.New("asset is empty")

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	log zerolog.Logger

	fs      afero.Fs
	root    string
	workers int

	assetCache map[string]Asset

	backend loaderBackend
}

// Loader defines the public-facing interface for loading and caching asset files.
// It abstracts where the bytes come from behind a backend and manages a cache of
// previously loaded assets keyed by name.
type Loader interface {
	// Load reads an asset file and caches the result under name.
	// If the name is already cached, the cached asset is returned.
	//
	// Parameters:
	//   - name: the cache key for the asset
	//   - kind: what the asset is used for
	//   - path: the file path, relative to the loader root unless absolute
	//
	// Returns:
	//   - Asset: the loaded asset
	//   - error: wrapped error if the file is missing, unreadable or empty
	Load(name string, kind AssetKind, path string) (Asset, error)

	// LoadManifest loads every asset in the manifest concurrently. All failures are
	// reported together; assets that loaded successfully stay cached.
	//
	// Parameters:
	//   - m: the asset manifest
	//
	// Returns:
	//   - error: the joined load errors, or nil
	LoadManifest(m Manifest) error

	// Get retrieves a cached asset by name.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - Asset: the cached asset
	//   - bool: false if not found
	Get(name string) (Asset, bool)

	// Assets returns a copy of the asset cache.
	//
	// Returns:
	//   - map[string]Asset: all cached assets keyed by name
	Assets() map[string]Asset
}

var _ Loader = &loader{}

// NewLoader creates a new Loader reading from the OS filesystem unless overridden
// by options.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided options
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		log:        zerolog.Nop(),
		fs:         afero.NewOsFs(),
		workers:    4,
		assetCache: make(map[string]Asset),
	}
	for _, option := range options {
		option(l)
	}
	l.backend = newFSLoaderBackend(l.fs, l.root)
	return l
}

func (l *loader) Load(name string, kind AssetKind, path string) (Asset, error) {
	l.mu.RLock()
	if cached, ok := l.assetCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	data, err := l.backend.Read(path)
	if err == nil && len(data) == 0 {
		err = ErrEmptyAsset
	}
	if err != nil {
		return Asset{}, fmt.Errorf("failed to load %s %q from %s: %w", kind, name, path, err)
	}

	a := Asset{Name: name, Kind: kind, Path: path, Data: data}
	l.mu.Lock()
	l.assetCache[name] = a
	l.mu.Unlock()

	l.log.Debug().Str("name", name).Str("kind", kind.String()).Int("bytes", len(data)).Msg("asset loaded")
	return a, nil
}

func (l *loader) LoadManifest(m Manifest) error {
	entries := m.entries()
	if len(entries) == 0 {
		return nil
	}

	pool := worker.NewDynamicWorkerPool(min(l.workers, len(entries)), len(entries), time.Second)
	defer pool.Stop()

	var (
		wg   sync.WaitGroup
		emu  sync.Mutex
		errs []error
	)
	for i, e := range entries {
		path := e.path
		if m.Root != "" && !filepath.IsAbs(path) {
			path = filepath.Join(m.Root, path)
		}
		wg.Add(1)
		ec := e
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				a, err := l.Load(ec.name, ec.kind, path)
				if err != nil {
					emu.Lock()
					errs = append(errs, err)
					emu.Unlock()
				}
				return a, err
			},
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return err
	}
	l.log.Info().Int("assets", len(entries)).Msg("asset manifest loaded")
	return nil
}

func (l *loader) Get(name string) (Asset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.assetCache[name]
	return a, ok
}

func (l *loader) Assets() map[string]Asset {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]Asset, len(l.assetCache))
	for k, v := range l.assetCache {
		result[k] = v
	}
	return result
}
