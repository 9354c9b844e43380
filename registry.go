// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rhi

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

// Factory creates a new backend device instance.
type Factory func() (Backend, error)

// Registry errors.
var (
	// ErrNoBackend is returned when no registered backend can be opened.
	ErrNoBackend = errors.New("rhi: no backend available")

	// ErrBackendNotRegistered is returned by Get for an unknown name.
	ErrBackendNotRegistered = errors.New("rhi: backend not registered")
)

type registryEntry struct {
	priority int
	factory  Factory
}

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]registryEntry)
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
//
// Default prefers higher priorities. The null backend registers itself at
// priority 0 so that any real backend wins.
func Register(name string, priority int, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = registryEntry{priority: priority, factory: factory}
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns registered backend names, highest priority first.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := backends[names[i]].priority, backends[names[j]].priority
		if pi != pj {
			return pi > pj
		}
		return names[i] < names[j]
	})
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get opens a backend device by name.
func Get(name string) (Backend, error) {
	registryMu.RLock()
	entry, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrBackendNotRegistered, "%q", name)
	}
	return entry.factory()
}

// Default opens the best available backend based on priority.
// Factories that fail are skipped; their errors are logged at debug level.
func Default() (Backend, error) {
	for _, name := range Available() {
		b, err := Get(name)
		if err != nil {
			Logger().Debug("rhi: backend unavailable",
				slog.String("backend", name),
				slog.Any("error", err))
			continue
		}
		return b, nil
	}
	return nil, ErrNoBackend
}

// MustDefault opens the default backend or panics.
func MustDefault() Backend {
	b, err := Default()
	if err != nil {
		panic("rhi: no backend available")
	}
	return b
}
