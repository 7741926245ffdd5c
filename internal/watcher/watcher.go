package watcher

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Dicklesworthstone/turtle_troubles/internal/config"
	"github.com/Dicklesworthstone/turtle_troubles/internal/logging"
)

// Watcher re-reads a config file whenever it changes on disk.
type Watcher struct {
	Path string
}

func New(path string) *Watcher {
	return &Watcher{Path: path}
}

// Stream returns a channel that receives every successfully reloaded file
// until ctx is done. Files that fail validation are logged and skipped.
func (w *Watcher) Stream(ctx context.Context) (<-chan *config.File, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create file watcher")
	}

	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	target := filepath.Clean(w.Path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		_ = fw.Close()
		return nil, goerr.Wrap(err, "failed to watch config directory", goerr.V("path", w.Path))
	}

	ch := make(chan *config.File, 1)
	go func() {
		defer close(ch)
		defer fw.Close()
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				f, err := config.LoadFile(target)
				if err != nil {
					logging.Default().Warn("ignoring config reload", "path", target, "error", err)
					continue
				}
				logging.Default().Debug("config reloaded", "path", target)
				select {
				case ch <- f:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logging.Default().Warn("file watcher error", "error", err)
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
