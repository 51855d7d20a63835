package database

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func(*slog.Logger) Dialect)
)

// Register adds a dialect factory to the registry under a product identifier.
// Called by dialect implementations in their init() functions.
func Register(name string, factory func(*slog.Logger) Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = factory
}

// Get retrieves a dialect factory by product identifier.
func Get(name string) (func(*slog.Logger) Dialect, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[strings.ToLower(name)]
	return f, ok
}

// New creates a dialect instance for the given product identifier.
// The logger is passed to the dialect constructor (nil uses discard logger).
func New(name string, logger *slog.Logger) (Dialect, error) {
	if name == "" {
		return nil, fmt.Errorf("dialect type not specified")
	}

	factory, ok := Get(name)
	if !ok {
		return nil, &UnknownDialectError{
			Type:      name,
			Available: List(),
		}
	}
	return factory(logger), nil
}

// List returns all registered dialect names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a dialect is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// UnknownDialectError is returned when an unknown dialect type is requested.
type UnknownDialectError struct {
	Type      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect type %q\nAvailable dialects: %v\nHint: Check your target.type in dbdialect.yaml", e.Type, e.Available)
}
