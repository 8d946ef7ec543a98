package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"labyrinth/pkg/engine/logger"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.game
	if g == nil || e.monoFontSource == nil || e.sansFontSource == nil {
		// Can't draw without a run or fonts
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	if g.IsOver() {
		e.drawScore(screen, g, screenWidth, screenHeight)
		return
	}

	originX, originY := e.cameraOrigin(g, screenWidth, screenHeight)
	e.drawMap(screen, g, originX, originY)
	e.drawActors(screen, g, originX, originY)

	e.drawStatusBar(screen, g, screenWidth)
	if g.Minigame.Active() {
		e.drawMinigame(screen, g, screenWidth, screenHeight)
	}
	e.drawMessages(screen, g, screenHeight)

	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  %s", ebiten.ActualTPS(), g.Player.Position), 4, screenHeight-16)
	}
}

// playerCell returns the player's fractional cell position, following the
// move transition while it plays.
func playerCell(g *state.Game) (x, y float64) {
	if g.Move.IsPlaying() {
		return g.Move.Interpolate()
	}
	return float64(g.Player.Position.X), float64(g.Player.Position.Y)
}

// cameraOrigin returns the screen position of cell (0, 0) that centres the
// camera on the player.
func (e *EbitenRenderer) cameraOrigin(g *state.Game, screenWidth, screenHeight int) (float64, float64) {
	ts := float64(e.tileSize)
	px, py := playerCell(g)
	return float64(screenWidth)/2 - (px+0.5)*ts, float64(screenHeight)/2 - (py+0.5)*ts
}

// cellColor returns the base color of a cell kind.
func cellColor(kind world.CellKind) color.RGBA {
	switch kind {
	case world.Wall, world.Edge:
		return colorWall
	case world.Exit:
		return colorExit
	case world.Treasure:
		return colorTreasure
	case world.Diamond:
		return colorDiamond
	default:
		return colorFloor
	}
}

// shade applies a visibility's alpha and tint to c.
func shade(c color.RGBA, vis world.Visibility) color.RGBA {
	tint := vis.Tint()
	a := vis.Alpha()
	channel := func(v uint8, shift uint) uint8 {
		t := float64(tint>>shift&0xff) / 255
		return uint8(float64(v) * t * a)
	}
	return color.RGBA{
		R: channel(c.R, 16),
		G: channel(c.G, 8),
		B: channel(c.B, 0),
		A: uint8(float64(c.A) * a),
	}
}

// drawMap draws every cell the player can see or remember, then the tile
// outlines over them.
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, g *state.Game, originX, originY float64) {
	ts := float32(e.tileSize)

	for y := 0; y < g.Map.Height(); y++ {
		for x := 0; x < g.Map.Width(); x++ {
			pos := world.Pos(x, y)
			vis := g.Map.VisibilityAt(pos)
			if vis == world.Forgotten {
				continue
			}
			sx := float32(originX) + float32(x)*ts
			sy := float32(originY) + float32(y)*ts
			vector.DrawFilledRect(screen, sx, sy, ts, ts, shade(cellColor(g.Map.KindAt(pos)), vis), false)
		}
	}

	// Tile outlines, one per visible tile centre
	size := float64(config.CellPerTile) * float64(e.tileSize)
	for y := 1; y < g.Map.Height(); y += config.CellPerTile {
		for x := 1; x < g.Map.Width(); x += config.CellPerTile {
			pos := world.Pos(x, y)
			vis := g.Map.VisibilityAt(pos)
			if vis == world.Forgotten || !g.Map.IsWalkableTile(pos) {
				continue
			}
			tile := g.Map.TileAt(pos)
			left := originX + float64(x-1)*float64(e.tileSize)
			top := originY + float64(y-1)*float64(e.tileSize)
			lineColor := shade(colorWallLine, vis)
			for _, s := range tile.WallSegments(left, top, size) {
				vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), wallWidth, lineColor, true)
			}
		}
	}
}

// drawActors draws the minotaur if the player can see it, then the player.
func (e *EbitenRenderer) drawActors(screen *ebiten.Image, g *state.Game, originX, originY float64) {
	ts := float64(e.tileSize)
	face := e.getMonoFontFace()

	if g.Map.VisibilityAt(g.Minotaur.Position) == world.Visible {
		mx := originX + (float64(g.Minotaur.Position.X)+0.5)*ts
		my := originY + (float64(g.Minotaur.Position.Y)+0.5)*ts
		e.drawCentredText(screen, g.Minotaur.Icon, mx, my, colorMinotaur, face)
	}

	px, py := playerCell(g)
	e.drawCentredText(screen, g.Player.Icon, originX+(px+0.5)*ts, originY+(py+0.5)*ts, colorPlayer, face)
}

// drawStatusBar draws the map name, haul and noise level across the top.
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, g *state.Game, screenWidth int) {
	face := e.getSansFontFace()
	height := float32(e.getUIFontSize()) + 16

	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), height, colorPanelBackground, false)
	e.drawText(screen, renderer.StatusLine(g), 10, 8, colorText, face)

	// Key help, right-aligned in the same bar
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screenWidth)-10, 8)
	op.ColorScale.ScaleWithColor(colorSubtle)
	op.PrimaryAlign = text.AlignEnd
	text.Draw(screen, renderer.HelpLine(), face, op)
}

// drawMinigame draws the stealth bar: the quiet zone, the track and the
// sweeping marker.
func (e *EbitenRenderer) drawMinigame(screen *ebiten.Image, g *state.Game, screenWidth, screenHeight int) {
	const barHeight = 18
	width := float32(screenWidth) * 0.5
	left := (float32(screenWidth) - width) / 2
	top := float32(screenHeight) * 0.75

	start, end := g.Minigame.Zone()
	marker := float32(g.Minigame.Marker())

	vector.DrawFilledRect(screen, left, top, width, barHeight, colorBarTrack, false)
	vector.DrawFilledRect(screen, left+width*float32(start), top, width*float32(end-start), barHeight, colorBarZone, false)
	vector.DrawFilledRect(screen, left+width*marker-2, top-4, 4, barHeight+8, colorBarMarker, false)

	face := e.getSansFontFace()
	e.drawCentredText(screen, gotext.Get("MINIGAME_HINT"), float64(left+width/2), float64(top)-e.getUIFontSize(), colorSubtle, face)
}

// drawMessages draws the message log in the bottom-left corner, oldest first.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, g *state.Game, screenHeight int) {
	face := e.getSansFontFace()
	lineHeight := e.getUIFontSize() + 6
	y := float64(screenHeight) - 24 - lineHeight*float64(len(g.Messages))

	for i, msg := range g.Messages {
		col := colorSubtle
		if i == len(g.Messages)-1 {
			col = colorText
		}
		e.drawText(screen, msg, 10, y, col, face)
		y += lineHeight
	}
}

// drawScore draws the score screen.
func (e *EbitenRenderer) drawScore(screen *ebiten.Image, g *state.Game, screenWidth, screenHeight int) {
	lines := renderer.ScoreLines(g)
	face := e.getSansFontFace()
	lineHeight := e.getUIFontSize() + 8

	y := (float64(screenHeight) - lineHeight*float64(len(lines))) / 2
	for i, line := range lines {
		col := colorText
		if i == 0 {
			col = colorExit
			if g.Outcome == state.Caught {
				col = colorMinotaur
			}
		}
		e.drawCentredText(screen, line, float64(screenWidth)/2, y, col, face)
		y += lineHeight
	}
}

// drawText draws str with its top-left corner at (x, y).
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCentredText draws str centred on (x, y).
func (e *EbitenRenderer) drawCentredText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}
