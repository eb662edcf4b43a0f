package thirdcam

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gekko3d/thirdcam/camera"
)

const tunablesDebounce = 100 * time.Millisecond

// TunablesModule loads camera tunables from a YAML file and, with Watch set,
// reloads them when the file changes. Install after CameraModule.
type TunablesModule struct {
	Path  string
	Watch bool
}

// TunablesFile is the resource tracking the loaded file.
type TunablesFile struct {
	Path string
	// loaded is the ideal pose last read from disk. A reload only replaces
	// the live ideal pose when the file's copy changed.
	loaded  camera.IdealPose
	watcher *TunablesWatcher
}

func (m TunablesModule) Install(app *App, cmd *Commands) {
	ctrl, ok := Resource[camera.Controller](app)
	if !ok {
		panic("TunablesModule requires CameraModule")
	}
	logger := app.Logger()

	file := &TunablesFile{Path: m.Path}
	t, err := camera.LoadTunables(m.Path)
	if err != nil {
		logger.Warnf("camera: %v, using defaults", err)
		t = ctrl.Tunables()
	} else {
		logger.Infof("camera: tunables loaded from %s", m.Path)
		ctrl.SetTunables(t)
	}
	file.loaded = t.Ideal
	cmd.AddResources(file)

	if !m.Watch {
		return
	}
	w, err := NewTunablesWatcher(m.Path)
	if err != nil {
		logger.Warnf("camera: not watching %s: %v", m.Path, err)
		return
	}
	file.watcher = w
	app.addCloser(w.Close)
	app.UseSystem(System(tunablesReloadSystem).InStage(PreUpdate))
}

// Reload re-reads the file into ctrl. On error the live tunables are kept.
func (f *TunablesFile) Reload(ctrl *camera.Controller) error {
	t, err := camera.LoadTunables(f.Path)
	if err != nil {
		return err
	}
	if t.Ideal == f.loaded {
		t.Ideal = ctrl.Tunables().Ideal
	} else {
		f.loaded = t.Ideal
	}
	ctrl.SetTunables(t)
	return nil
}

// tunablesReloadSystem drains watcher events on the client thread so the
// controller is never touched from the watcher goroutine.
func tunablesReloadSystem(file *TunablesFile, ctrl *camera.Controller, cmd *Commands) {
	if file.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-file.watcher.Events:
			if !ok {
				return
			}
			if err := file.Reload(ctrl); err != nil {
				cmd.Logger().Warnf("camera: reload: %v", err)
				continue
			}
			cmd.Logger().Infof("camera: tunables reloaded from %s", file.Path)
		case err, ok := <-file.watcher.Errors:
			if !ok {
				return
			}
			cmd.Logger().Warnf("camera: watch %s: %v", file.Path, err)
		default:
			return
		}
	}
}

// TunablesWatcher reports writes to one file. It watches the parent directory
// so editors that replace the file on save are still seen.
type TunablesWatcher struct {
	watcher *fsnotify.Watcher
	name    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewTunablesWatcher(path string) (*TunablesWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("tunables: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tunables: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("tunables: watch %s: %w", path, err)
	}

	watcher := &TunablesWatcher{
		watcher: w,
		name:    abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *TunablesWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// run coalesces bursts of writes: an event is sent once the file has been
// quiet for tunablesDebounce, so a reload never sees a half-written file.
func (w *TunablesWatcher) run() {
	defer close(w.done)
	timer := time.NewTimer(tunablesDebounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.name {
				continue
			}
			timer.Reset(tunablesDebounce)
		case <-timer.C:
			select {
			case w.Events <- w.name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
