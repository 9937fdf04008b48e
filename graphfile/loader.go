package graphfile

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Loader holds the latest valid document read from a file and can watch
// the file for changes.
type Loader struct {
	path     string
	log      *slog.Logger
	mu       sync.RWMutex
	current  *Document
	onChange []func(*Document)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string, log *slog.Logger) (*Loader, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &Loader{path: path, log: log, current: doc}, nil
}

// Path returns the watched file path.
func (l *Loader) Path() string { return l.path }

// Document returns the latest valid document.
func (l *Loader) Document() *Document {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*Document)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file. On failure the previous document is kept.
func (l *Loader) Reload() error {
	doc, err := Load(l.path)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.current = doc
	callbacks := make([]func(*Document), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()

	for _, fn := range callbacks {
		fn(doc)
	}

	return nil
}

// Watch starts a background goroutine that reloads the document whenever
// the file is written or re-created. Call stop to release the watcher.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("graphfile watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("graphfile watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if err := l.Reload(); err != nil {
					l.log.Warn("graph reload failed, keeping previous document",
						slog.String("path", l.path), slog.Any("error", err))
					continue
				}
				l.log.Info("graph reloaded", slog.String("path", l.path))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.log.Warn("graph watcher error", slog.Any("error", err))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}
