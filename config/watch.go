package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reloads a tuning file whenever it changes on disk.
// Parsed results are delivered on Updates; the game applies them between ticks.
type TuningWatcher struct {
	path    string
	base    Tuning
	watcher *fsnotify.Watcher
	Updates chan Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewTuningWatcher watches the directory holding path, since editors often
// replace files instead of writing them in place. Every reload is overlaid on base.
func NewTuningWatcher(path string, base Tuning) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		path:    filepath.Clean(path),
		base:    base,
		watcher: w,
		Updates: make(chan Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *TuningWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

// reload never touches the global config; the latest result replaces any
// update the game has not consumed yet.
func (w *TuningWatcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.sendError(fmt.Errorf("config: reload %s: %w", w.path, err))
		return
	}
	t, err := ParseTuning(data, w.base)
	if err != nil {
		w.sendError(err)
		return
	}
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- t:
	case <-w.closeCh:
	}
}

func (w *TuningWatcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
