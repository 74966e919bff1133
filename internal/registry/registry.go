// Package registry keeps the game factories known to the platform.
// Game modes register themselves from init() so the CLI, the menu and the
// SSH server can list and create them without importing each one.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Game is the contract between a game and the terminal platform.
// Games contain pure logic; the platform handles input mapping, frame
// timing, persistence and rendering to the terminal.
type Game interface {
	// ID returns the unique mode identifier (e.g. "blocks").
	// Used for CLI arguments and play history.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts over with a fresh board. Called once at start and on
	// every restart. The RuntimeConfig provides screen size, frame rate
	// and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one platform frame, applying the frame's
	// actions first.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the current status (score, level, game over, paused).
	State() core.GameState
}

// GameInfo describes a registered game mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. Panics if id is empty or already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Resizable is implemented by games that can follow a terminal resize
// without starting over. Games without it are Reset on resize.
type Resizable interface {
	Resize(w, h int)
}
