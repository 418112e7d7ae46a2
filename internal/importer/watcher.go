package importer

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const settleDelay = 250 * time.Millisecond

// Watcher reports extraction files created or rewritten in a directory.
// A file is reported once it has stopped changing for a short while, so
// partially written files are not picked up.
type Watcher struct {
	fsw    *fsnotify.Watcher
	paths  chan string
	done   chan struct{}
	settle time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

// Watch starts watching dir.
func Watch(dir string) (*Watcher, error) {
	return watch(dir, settleDelay)
}

func watch(dir string, settle time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		paths:  make(chan string, 16),
		done:   make(chan struct{}),
		settle: settle,
		timers: make(map[string]*time.Timer),
	}
	go w.loop()
	return w, nil
}

// Paths returns the channel of settled extraction file paths. It is closed
// by Close.
func (w *Watcher) Paths() <-chan string {
	return w.paths
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	for _, t := range w.timers {
		t.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	<-w.done

	w.mu.Lock()
	close(w.paths)
	w.mu.Unlock()
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".json") {
				continue
			}
			w.schedule(ev.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("inbox watch error", "err", err)
		}
	}
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Reset(w.settle)
		return
	}
	w.timers[path] = time.AfterFunc(w.settle, func() { w.emit(path) })
}

func (w *Watcher) emit(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, path)
	if w.stopped {
		return
	}
	select {
	case w.paths <- path:
	default:
		slog.Warn("inbox backlog full, dropping", "path", path)
	}
}
