// Package watch wraps fsnotify behind buffered channels so the CLI
// tools can re-lex source files when they change on disk.
package watch

import (
	"github.com/fsnotify/fsnotify"
)

// Op is a bitmask of filesystem operations observed on a path.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Has reports whether all operations in o2 are set in o.
func (o Op) Has(o2 Op) bool { return o&o2 == o2 }

// Event describes a filesystem change on a watched path.
type Event struct {
	Path string
	Op   Op
}

// Watcher delivers OS-native filesystem notifications.
type Watcher struct {
	w      *fsnotify.Watcher
	events chan Event
	errs   chan error
}

// New creates a Watcher and starts its delivery loop.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{w: fw, events: make(chan Event, 128), errs: make(chan error, 1)}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			var op Op
			if ev.Op&fsnotify.Create != 0 {
				op |= OpCreate
			}
			if ev.Op&fsnotify.Write != 0 {
				op |= OpWrite
			}
			if ev.Op&fsnotify.Remove != 0 {
				op |= OpRemove
			}
			if ev.Op&fsnotify.Rename != 0 {
				op |= OpRename
			}
			if ev.Op&fsnotify.Chmod != 0 {
				op |= OpChmod
			}
			w.events <- Event{Path: ev.Name, Op: op}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.errs <- err
		}
	}
}

// Events returns the channel of filesystem events.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors returns the channel of watcher errors.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Add starts watching the given path.
func (w *Watcher) Add(name string) error { return w.w.Add(name) }

// Remove stops watching the given path.
func (w *Watcher) Remove(name string) error { return w.w.Remove(name) }

// Close shuts the watcher down.
func (w *Watcher) Close() error { return w.w.Close() }
