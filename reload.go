package main

import (
	"path/filepath"

	"github.com/google/logger"
	"github.com/milk9111/fortunecookie/prefabs"
)

// Reloader turns prefab watcher events into freshly loaded specs. Poll is
// called from Update so the cookie is only touched on the game thread.
type Reloader struct {
	watcher *prefabs.Watcher
	events  <-chan string
	errs    <-chan error
	name    string
	load    func() (*prefabs.FortuneCookieSpec, error)
}

// NewReloader watches the prefab at path, or the default prefab directory
// when path is empty.
func NewReloader(path string) (*Reloader, error) {
	dir, name := prefabs.Dir(), prefabs.FortuneCookieFile
	if path != "" {
		dir, name = filepath.Dir(path), filepath.Base(path)
	}

	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return nil, err
	}
	r := newReloader(w.Events, w.Errors, name, func() (*prefabs.FortuneCookieSpec, error) {
		return loadSpec(path)
	})
	r.watcher = w
	return r, nil
}

func newReloader(events <-chan string, errs <-chan error, name string, load func() (*prefabs.FortuneCookieSpec, error)) *Reloader {
	return &Reloader{events: events, errs: errs, name: name, load: load}
}

// Poll drains pending events without blocking. It returns the reloaded spec
// when the watched prefab changed and parsed cleanly.
func (r *Reloader) Poll() (*prefabs.FortuneCookieSpec, bool) {
	if r == nil {
		return nil, false
	}

	changed := false
	for drained := false; !drained; {
		select {
		case name, ok := <-r.events:
			if !ok {
				r.events = nil
				drained = true
				break
			}
			if prefabs.IsPrefab(name, r.name) {
				changed = true
			}
		case err, ok := <-r.errs:
			if !ok {
				r.errs = nil
				break
			}
			logger.Warningf("prefab watcher: %v", err)
		default:
			drained = true
		}
	}
	if !changed {
		return nil, false
	}

	spec, err := r.load()
	if err != nil {
		// Keep the current fortunes; the file may be mid-save.
		logger.Warningf("reload %s: %v", r.name, err)
		return nil, false
	}
	return spec, true
}

func (r *Reloader) Close() error {
	if r == nil || r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}
