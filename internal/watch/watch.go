// Package watch regenerates icons when the source image changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce is how long the source must stay quiet before OnChange runs.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls OnChange after the watched file has been written, created, or
// renamed into place. Bursts of events within Debounce collapse into a single
// call.
type Watcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(ctx context.Context) error
}

// Run watches until ctx is cancelled. Errors from OnChange are logged and do
// not stop the watch. A change seen while OnChange is running queues one more
// call after it returns.
//
// The parent directory is watched rather than the file itself, so editors
// that save by replacing the file are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	path, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.Path, err)
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}
	log.Info().Str("path", path).Msg("watching source icon")

	var (
		mu      sync.Mutex
		timer   *time.Timer
		wg      sync.WaitGroup
		running sync.Mutex // one OnChange at a time
	)
	defer func() {
		mu.Lock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		mu.Unlock()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !relevant(event.Op) {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Msg("source icon changed")

			mu.Lock()
			if timer != nil && timer.Stop() {
				wg.Done()
			}
			wg.Add(1)
			timer = time.AfterFunc(debounce, func() {
				defer wg.Done()
				running.Lock()
				defer running.Unlock()
				if ctx.Err() != nil {
					return
				}
				if err := w.OnChange(ctx); err != nil {
					log.Error().Err(err).Msg("regeneration failed")
				}
			})
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
