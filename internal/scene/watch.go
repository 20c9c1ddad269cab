package scene

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/marcher/internal/logger"
)

// DefaultDebounce is how long a scene file must stay quiet before it is
// reloaded. Editors often write a file in several steps.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a scene file when it changes on disk. Reloaded scenes are
// delivered on Scenes; only the newest undelivered scene is kept. A file
// that fails to load is logged and skipped.
type Watcher struct {
	path     string
	debounce time.Duration

	fs     *fsnotify.Watcher
	scenes chan *Scene
	done   chan struct{}
	wg     sync.WaitGroup
	log    *zap.Logger
}

// Watch starts watching path. The directory is watched rather than the file
// so that editors that replace the file are picked up.
func Watch(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fs:       fw,
		scenes:   make(chan *Scene, 1),
		done:     make(chan struct{}),
		log:      logger.Named("scene.watch"),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Scenes delivers reloaded scenes. Poll it with a non-blocking receive from
// the frame loop.
func (w *Watcher) Scenes() <-chan *Scene {
	return w.scenes
}

// Close stops watching and waits for the watcher goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", zap.Error(err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	s, err := LoadFile(w.path)
	if err != nil {
		w.log.Error("scene reload failed, keeping previous scene", zap.Error(err))
		return
	}
	w.log.Info("scene reloaded", zap.String("path", w.path), zap.Int("objects", len(s.Objects())))

	// Replace an undelivered scene with the newer one.
	select {
	case <-w.scenes:
	default:
	}
	select {
	case w.scenes <- s:
	case <-w.done:
	}
}
