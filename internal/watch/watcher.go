package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher monitors a single document file and debounces change events
// into rescan callbacks. The parent directory is watched rather than
// the file itself: many editors save by rename, which would silently
// drop a direct file watch.
type Watcher struct {
	fw     *fsnotify.Watcher
	target string
	deb    *Debouncer
	done   chan struct{}
	log    zerolog.Logger
}

// NewWatcher sets up a watcher for path. onChange fires once per burst
// of events, after quiescence with no further changes.
func NewWatcher(path string, quiescence time.Duration, onChange func(), log zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		fw:     fw,
		target: abs,
		deb:    NewDebouncer(quiescence, onChange),
		done:   make(chan struct{}),
		log:    log,
	}, nil
}

// Run consumes events until Close is called. It blocks; run it in a
// goroutine when the caller has other work.
func (w *Watcher) Run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug().Str("event", event.Op.String()).Str("path", event.Name).Msg("change detected")
			w.deb.Trigger()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// Close stops event delivery and cancels any pending rescan.
func (w *Watcher) Close() error {
	close(w.done)
	w.deb.Stop()
	return w.fw.Close()
}
