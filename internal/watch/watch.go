// Package watch provides a debounced single-file watcher built on fsnotify.
package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of write events from editors that save
// in several steps.
const DefaultDebounce = 100 * time.Millisecond

// Watcher watches one file for changes with debouncing. Some editors
// replace the file on save, so Remove events re-arm the watch.
type Watcher struct {
	watcher  *fsnotify.Watcher
	done     chan struct{}
	debounce time.Duration
	onError  func(error)

	mu    sync.Mutex
	timer *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithErrorHandler installs a callback for watcher errors. The default
// discards them.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// New creates an idle Watcher. Call Watch to start it and Close to stop.
func New(opts ...Option) *Watcher {
	w := &Watcher{
		done:     make(chan struct{}),
		debounce: DefaultDebounce,
		onError:  func(error) {},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch starts watching path and invokes onChange (debounced) after each
// write. It returns immediately; events are handled on a background
// goroutine until Close is called.
func (w *Watcher) Watch(path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if event.Op&fsnotify.Write == fsnotify.Write {
					w.trigger(onChange)
				}

				// Handle file replacement on save.
				if event.Op&fsnotify.Remove == fsnotify.Remove {
					time.Sleep(w.debounce)
					if err := watcher.Add(path); err != nil {
						w.onError(err)
						continue
					}
					w.trigger(onChange)
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.onError(err)

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// trigger resets the debounce timer so rapid event bursts coalesce into a
// single callback.
func (w *Watcher) trigger(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, fn)
}

// Close stops the watcher. It is safe to call once, after Watch.
func (w *Watcher) Close() error {
	close(w.done)
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
