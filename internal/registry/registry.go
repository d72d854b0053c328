// Package registry provides a global registry for front-end factories.
// Front-ends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jewel-legend/internal/config"
	"github.com/vovakirdan/jewel-legend/internal/console"
)

// ErrUnknownFrontend is returned by Create for an unregistered ID.
var ErrUnknownFrontend = errors.New("registry: unknown front-end")

// Env is what a front-end needs to start.
type Env struct {
	Config config.Config
	Logger *log.Logger
	// Console holds the options the front-end passes to console.New, ahead
	// of its own buzzer and pacing options.
	Console []console.Option
}

// Frontend is a host for the console: it owns the display, the keypad,
// the buttons, the buzzer and the tick source.
type Frontend interface {
	// ID returns a unique identifier (e.g. "tui", "window").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run builds the console and blocks until the player quits or ctx is
	// cancelled.
	Run(ctx context.Context, env Env) error
}

// Info contains metadata about a registered front-end.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a front-end.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front-end factory to the registry.
// Typically called from an init() function.
// Panics if a front-end with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: front-end %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered front-ends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a front-end by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFrontend, id)
	}

	return f(), nil
}

// Exists checks if a front-end with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
