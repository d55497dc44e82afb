// Package watch re-runs work when a source file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op describes a set of file operations.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Event is a change to one path.
type Event struct {
	Path string
	Op   Op
}

// Watcher wraps fsnotify with channels of Event values.
type Watcher struct {
	w    *fsnotify.Watcher
	evC  chan Event
	erC  chan error
	done chan struct{}
}

// New creates a Watcher.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &Watcher{
		w:    w,
		evC:  make(chan Event, 128),
		erC:  make(chan error, 1),
		done: make(chan struct{}),
	}
	go fw.loop()
	return fw, nil
}

func opFrom(op fsnotify.Op) Op {
	var out Op
	if op&fsnotify.Create != 0 {
		out |= OpCreate
	}
	if op&fsnotify.Write != 0 {
		out |= OpWrite
	}
	if op&fsnotify.Remove != 0 {
		out |= OpRemove
	}
	if op&fsnotify.Rename != 0 {
		out |= OpRename
	}
	if op&fsnotify.Chmod != 0 {
		out |= OpChmod
	}
	return out
}

func (fw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			select {
			case fw.evC <- Event{Path: ev.Name, Op: opFrom(ev.Op)}:
			case <-fw.done:
				return
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			select {
			case fw.erC <- err:
			case <-fw.done:
				return
			}
		case <-fw.done:
			return
		}
	}
}

func (fw *Watcher) Events() <-chan Event  { return fw.evC }
func (fw *Watcher) Errors() <-chan error  { return fw.erC }
func (fw *Watcher) Add(name string) error { return fw.w.Add(name) }

// Close stops the watcher. It must be called once.
func (fw *Watcher) Close() error {
	close(fw.done)
	return fw.w.Close()
}

// Run watches path and calls onChange after it is written or created.
// Changes closer together than debounce are collapsed into one call with
// the latest event. Run blocks until ctx is done or the watcher fails.
//
// The parent directory is watched rather than the file so that editors
// replacing the file on save keep triggering.
func Run(ctx context.Context, path string, debounce time.Duration, onChange func(Event)) error {
	fw, err := New()
	if err != nil {
		return err
	}
	defer fw.Close()

	target := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return err
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending Event
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-fw.Events():
			if filepath.Clean(ev.Path) != target || ev.Op&(OpWrite|OpCreate) == 0 {
				continue
			}
			if debounce <= 0 {
				onChange(ev)
				continue
			}
			pending = ev
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			onChange(pending)
		case err := <-fw.Errors():
			return err
		}
	}
}
