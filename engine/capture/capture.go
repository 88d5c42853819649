// Package capture writes scene snapshots to disk without blocking the frame loop.
// Each submitted snapshot is encoded as YAML and written by a worker pool.
package capture

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type writerImpl struct {
	log    zerolog.Logger
	fs     afero.Fs
	dir    string
	prefix string

	pool    worker.DynamicWorkerPool
	workers int

	wg      sync.WaitGroup
	mu      sync.Mutex
	errs    []error
	written []string
	seq     int
}

// Writer accepts snapshots from the frame loop and persists them in the background.
type Writer interface {
	// Submit queues a snapshot for writing and returns the path it will be written to.
	// It does not wait for the write.
	//
	// Parameters:
	//   - s: the snapshot
	//
	// Returns:
	//   - string: the destination path
	Submit(s Snapshot) string

	// Wait blocks until every submitted snapshot has been written and returns the
	// write errors collected since the previous Wait.
	//
	// Returns:
	//   - error: joined write errors, or nil
	Wait() error

	// Written returns the paths written successfully so far.
	//
	// Returns:
	//   - []string: written paths in completion order
	Written() []string

	// Close waits for pending writes and stops the workers.
	//
	// Returns:
	//   - error: joined write errors, or nil
	Close() error
}

var _ Writer = &writerImpl{}

// NewWriter creates a Writer placing snapshots in dir on the OS filesystem unless
// overridden by options.
//
// Parameters:
//   - dir: the destination directory (created on first write)
//   - options: functional options to configure the writer
//
// Returns:
//   - Writer: the newly created writer
func NewWriter(dir string, options ...WriterBuilderOption) Writer {
	w := &writerImpl{
		log:     zerolog.Nop(),
		fs:      afero.NewOsFs(),
		dir:     dir,
		prefix:  "capture",
		workers: 2,
	}
	for _, option := range options {
		option(w)
	}
	w.pool = worker.NewDynamicWorkerPool(w.workers, 64, time.Second)
	return w
}

func (w *writerImpl) Submit(s Snapshot) string {
	w.mu.Lock()
	w.seq++
	path := filepath.Join(w.dir, fmt.Sprintf("%s-%04d.yaml", w.prefix, w.seq))
	id := w.seq
	w.mu.Unlock()

	w.wg.Add(1)
	w.pool.SubmitTask(worker.Task{
		ID:      id,
		Payload: s,
		Do: func() (any, error) {
			defer w.wg.Done()
			err := w.write(path, s)
			w.mu.Lock()
			if err != nil {
				w.errs = append(w.errs, err)
			} else {
				w.written = append(w.written, path)
			}
			w.mu.Unlock()
			if err != nil {
				w.log.Error().Err(err).Str("path", path).Msg("capture failed")
			} else {
				w.log.Info().Str("path", path).Uint64("tick", s.Tick).Msg("capture written")
			}
			return path, err
		},
	})
	return path
}

func (w *writerImpl) write(path string, s Snapshot) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create capture dir: %w", err)
	}
	if err := afero.WriteFile(w.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (w *writerImpl) Wait() error {
	w.wg.Wait()
	w.mu.Lock()
	defer w.mu.Unlock()
	err := errors.Join(w.errs...)
	w.errs = nil
	return err
}

func (w *writerImpl) Written() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.written...)
}

func (w *writerImpl) Close() error {
	err := w.Wait()
	w.pool.Stop()
	return err
}
