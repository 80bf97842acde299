// Package watch re-runs export when the theme override file changes.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"swatch/internal/errors"
	"swatch/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single override file using fsnotify and delivers
// debounced change notifications. The parent directory is watched rather
// than the file itself: editors typically replace the file on save, which
// would otherwise drop the watch.
type Watcher struct {
	path     string
	debounce time.Duration

	changes chan struct{}
	stop    chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.Mutex
	running bool
}

// New creates a watcher for the given file.
func New(path string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewFileError("cannot create file watcher", path, errors.Unknown, err)
	}

	return &Watcher{
		path:      path,
		debounce:  debounce,
		changes:   make(chan struct{}, 1),
		stop:      make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Changes returns the channel on which debounced change notifications are
// delivered.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Start begins watching. It is an error to start a watcher twice.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.running {
		return errors.New("watcher already running")
	}

	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return errors.NewFileError("cannot watch directory", dir, errors.FileAccessDenied, err)
	}

	w.running = true
	go w.loop()

	log.With("path", w.path).Debug("watcher started")
	return nil
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	target := filepath.Clean(w.path)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("override file event: %s", event.Op)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default: // a notification is already pending
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Error("watcher error: %v", err)

		case <-w.stop:
			return
		}
	}
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}
	w.running = false

	close(w.stop)
	if err := w.fsWatcher.Close(); err != nil {
		log.Error("closing watcher: %v", err)
	}
}
