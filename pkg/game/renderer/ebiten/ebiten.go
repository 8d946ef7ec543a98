package ebiten

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/logger"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    960,
		windowHeight:   720,
		tileSize:       config.DefaultTileSize,
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init loads fonts, restores the saved zoom level and configures the window.
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		logger.Log.WithError(err).Error("Could not load fonts")
	}

	e.tileSize = config.Current().TileSize

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op: Draw repaints the whole screen every frame.
func (e *EbitenRenderer) Clear() {}

// RenderFrame swaps in the game Draw renders.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.game = g
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run starts the Ebiten game loop and blocks until the player quits.
// Ebiten can only run one game per process, so play again swaps the run
// inside Update.
func (e *EbitenRenderer) Run(ctx context.Context, g *state.Game) error {
	e.ctx = ctx
	e.RenderFrame(g)

	logger.Log.WithField("tile_size", e.tileSize).Info("Opening window")
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
