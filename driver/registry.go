// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/gogpu/ywin"
)

var (
	// ErrNoDriverAvailable is returned by OpenBest when no registered
	// driver opens.
	ErrNoDriverAvailable = errors.New("driver: no driver available")

	// ErrNotFound is returned for names nothing registered.
	ErrNotFound = errors.New("driver: not registered")

	// ErrUnavailable is returned for drivers that cannot run here.
	ErrUnavailable = errors.New("driver: unavailable on this system")
)

// OpenError records the driver that failed to open.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string { return "driver: open " + e.Name + ": " + e.Err.Error() }

func (e *OpenError) Unwrap() error { return e.Err }

// Factory opens a driver with the given options.
type Factory func(opts Options) (Driver, error)

// Entry is a registered driver. Higher priorities are preferred: real
// displays use 100, terminals 50 and off-screen drivers 10.
type Entry struct {
	Name      string
	Priority  int
	Factory   Factory
	Available func() bool
}

func (e Entry) open(opts Options) (Driver, error) {
	if !e.Available() {
		return nil, &OpenError{Name: e.Name, Err: ErrUnavailable}
	}
	d, err := e.Factory(opts)
	if err != nil {
		return nil, &OpenError{Name: e.Name, Err: err}
	}
	ywin.Logger().Info("driver: opened", "driver", e.Name, "format", d.Format().String())
	return d, nil
}

// byPreference orders entries by descending priority, then by name.
func byPreference(a, b Entry) int {
	return cmp.Or(cmp.Compare(b.Priority, a.Priority), cmp.Compare(a.Name, b.Name))
}

func alwaysAvailable() bool { return true }

// Registry holds drivers in preference order.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewRegistry returns an empty registry. Driver packages register with
// the package-level one.
func NewRegistry() *Registry { return &Registry{} }

var defaultRegistry = NewRegistry()

// Register adds a driver to the default registry. A nil available means
// always available; an existing name is replaced.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// Names returns the default registry's driver names in preference order.
func Names(onlyAvailable bool) []string { return defaultRegistry.Names(onlyAvailable) }

// Open opens the named driver from the default registry.
func Open(name string, opts Options) (Driver, error) { return defaultRegistry.Open(name, opts) }

// OpenBest opens the most preferred driver of the default registry that
// opens.
func OpenBest(opts Options) (Driver, error) { return defaultRegistry.OpenBest(opts) }

// Register adds or replaces a driver.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = alwaysAvailable
	}
	e := Entry{Name: name, Priority: priority, Factory: factory, Available: available}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = slices.DeleteFunc(r.entries, func(x Entry) bool { return x.Name == name })
	i, _ := slices.BinarySearchFunc(r.entries, e, byPreference)
	r.entries = slices.Insert(r.entries, i, e)
}

// Unregister removes a driver.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = slices.DeleteFunc(r.entries, func(x Entry) bool { return x.Name == name })
}

// Lookup returns the entry registered as name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := slices.IndexFunc(r.entries, func(x Entry) bool { return x.Name == name })
	if i < 0 {
		return Entry{}, false
	}
	return r.entries[i], true
}

// snapshot copies the entries so Available and Factory run unlocked.
func (r *Registry) snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// Names returns driver names in preference order, optionally only those
// available here.
func (r *Registry) Names(onlyAvailable bool) []string {
	var names []string
	for _, e := range r.snapshot() {
		if !onlyAvailable || e.Available() {
			names = append(names, e.Name)
		}
	}
	return names
}

// Open opens the named driver.
func (r *Registry) Open(name string, opts Options) (Driver, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, &OpenError{Name: name, Err: ErrNotFound}
	}
	return e.open(opts)
}

// OpenBest tries the available drivers in preference order and returns
// the first that opens. Otherwise the error joins ErrNoDriverAvailable
// with every failure.
func (r *Registry) OpenBest(opts Options) (Driver, error) {
	errs := []error{ErrNoDriverAvailable}
	for _, e := range r.snapshot() {
		if !e.Available() {
			continue
		}
		d, err := e.open(opts)
		if err == nil {
			return d, nil
		}
		ywin.Logger().Warn("driver: open failed", "driver", e.Name, "err", err)
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}
