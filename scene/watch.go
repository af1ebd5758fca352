package scene

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/inconshreveable/log15/v3"
)

// DefaultDebounce is how long a file must stay quiet before it is re-read.
// Editors often truncate and write in separate steps.
const DefaultDebounce = 100 * time.Millisecond

// Watcher delivers a freshly loaded Scene on Scenes each time the watched
// file settles after a change. Load failures arrive on Errors instead; the
// watcher keeps running.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   log.Logger

	Scenes chan *Scene
	Errors chan error

	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// WatchOption customizes a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period. Panics on a negative duration.
func WithDebounce(d time.Duration) WatchOption {
	if d < 0 {
		panic("scene: WithDebounce: negative duration")
	}

	return func(w *Watcher) { w.debounce = d }
}

// WithWatchLogger logs reloads and failures to l. Panics on nil.
func WithWatchLogger(l log.Logger) WatchOption {
	if l == nil {
		panic("scene: WithWatchLogger(nil)")
	}

	return func(w *Watcher) { w.logger = l.New("module", "scene") }
}

// NewWatcher starts watching path. The parent directory is watched so that
// rename-on-save editors are followed.
func NewWatcher(path string, opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	if err = fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}

	discard := log.New("module", "scene")
	discard.SetHandler(log.DiscardHandler())

	w := &Watcher{
		path:     abs,
		watcher:  fw,
		debounce: DefaultDebounce,
		logger:   discard,
		Scenes:   make(chan *Scene, 1),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run()

	return w, nil
}

// Close stops the watcher and closes Scenes and Errors.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
	})

	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Scenes)
		close(w.Errors)
		close(w.doneCh)
	}()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)

		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		w.logger.Warn("scene reload failed", "path", w.path, "err", err)
		w.send(nil, err)
		return
	}
	w.logger.Info("scene reloaded", "path", w.path, "name", s.Name, "waypoints", len(s.Waypoints))
	w.send(s, nil)
}

// send blocks until the value is taken or the watcher is closed.
func (w *Watcher) send(s *Scene, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.Scenes <- s:
	case <-w.closeCh:
	}
}
