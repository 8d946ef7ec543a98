package renderer

import (
	"context"

	"labyrinth/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleRemembered
	StyleExit
	StyleTreasure
	StyleDiamond
	StylePlayer
	StyleMinotaur
	StyleSubtle
	StyleDenied
	StyleAction
)

// Renderer defines the interface for game rendering backends.
// The terminal and Ebitengine implementations both drive the game loop.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: map, status, mini-game and messages.
	RenderFrame(g *state.Game)

	// Run drives the game loop until the player quits. Play again from the
	// score screen rebuilds the run inside the loop.
	Run(ctx context.Context, g *state.Game) error
}
