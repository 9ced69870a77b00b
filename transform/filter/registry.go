package filter

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// DefaultBackendName is the backend New selects when no option picks one.
const DefaultBackendName = "algo-dsp"

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Backend)
)

var errDuplicateBackend = errors.New("duplicate backend")

// RegisterBackend makes a backend available to New under the given name.
// Backend packages call it from init; registering the same name twice is
// an error.
func RegisterBackend(name string, b Backend) error {
	if name == "" {
		return errors.New("filter: empty backend name")
	}

	if b == nil {
		return errors.New("filter: nil backend")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := backends[name]; exists {
		return fmt.Errorf("filter: %w: %s", errDuplicateBackend, name)
	}

	backends[name] = b

	return nil
}

// MustRegisterBackend is like RegisterBackend but panics on error.
func MustRegisterBackend(name string, b Backend) {
	err := RegisterBackend(name, b)
	if err != nil {
		panic("filter backend registry: " + err.Error())
	}
}

// LookupBackend returns the backend registered under name, or nil.
func LookupBackend(name string) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return backends[name]
}

// Backends returns the sorted names of all registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
