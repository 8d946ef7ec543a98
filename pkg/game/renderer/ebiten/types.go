// Package ebiten provides an Ebiten-based 2D graphical renderer for the labyrinth.
package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"labyrinth/pkg/game/state"
)

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer. It is also the
// ebiten.Game: Update feeds intents to the gameplay package and advances
// the move transition, Draw renders the current run.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size in pixels per cell (adjustable with +/-)
	tileSize int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for actors
	sansFontSource *text.GoTextFaceSource // Sans-serif font for UI text

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace

	// Run state, owned by the Ebiten update goroutine once Run starts
	ctx  context.Context
	game *state.Game

	// Key repeat state tracking
	keyRepeatState map[string]keyRepeatInfo
}

var _ ebiten.Game = (*EbitenRenderer)(nil)
