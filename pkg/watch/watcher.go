// Package watch reports changes to a set of files.
//
// Parent directories are watched rather than the files themselves so that
// editors which save by renaming a temporary file over the original are
// still seen.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is the minimum interval between two events for the same file.
const Debounce = 100 * time.Millisecond

// Watcher reports changes to a fixed set of files. Events and Errors are
// closed when the watcher stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given files. Events carries the cleaned path of a
// file after it was written, created, renamed or removed.
func NewWatcher(files ...string) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	watched := make(map[string]struct{}, len(files))
	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		watched[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}

	watcher := &Watcher{
		watcher: w,
		files:   watched,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once the reader
// goroutine has exited. Close may be called more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if abs, err := filepath.Abs(name); err == nil {
				name = abs
			}
			if _, ok := w.files[name]; !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[name]; ok && now.Sub(t) < Debounce {
				continue
			}
			last[name] = now
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}
