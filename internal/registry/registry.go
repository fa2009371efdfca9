// Package registry provides a global registry of rendering backends.
// Backends register themselves in init() functions, allowing the CLI to
// discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrUnknownBackend is returned by Create for unregistered IDs.
var ErrUnknownBackend = errors.New("registry: unknown backend")

// Backend hosts a snake session: it owns the window or terminal, polls input
// and presents frames. Game logic stays in the snake package.
type Backend interface {
	// ID returns a unique identifier used by the --renderer flag (e.g. "tui").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Terminal reports whether the backend draws into the current terminal.
	Terminal() bool

	// Run drives the session until the player quits, the window closes or
	// ctx is cancelled.
	Run(ctx context.Context, s *snake.Session, logger *log.Logger) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID       string
	Title    string
	Terminal bool
}

// Factory is a function that creates a new backend instance.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]BackendInfo)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f

	b := f()
	infos[id] = BackendInfo{ID: id, Title: b.Title(), Terminal: b.Terminal()}
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by its ID.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, id)
	}

	return f(), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
