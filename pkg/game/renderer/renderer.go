// Package renderer holds what the terminal and graphical renderers share:
// the Renderer interface, cell glyphs and the text of the HUD and score screen.
package renderer

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"labyrinth/locales"
	"labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/score"
	"labyrinth/pkg/game/state"
)

// Icon constants for the labyrinth
const (
	IconWall       = "▒"
	IconFloor      = "·"
	IconRemembered = "."
	IconVoid       = " "
	IconExit       = "⌂"
	IconTreasure   = "$"
	IconDiamond    = "◆"
)

// CellGlyph returns the icon and style for the cell at pos as the player
// currently sees it. Forgotten cells are void; remembered cells keep their
// shape but lose their contents.
func CellGlyph(g *state.Game, pos world.Position) (string, TextStyle) {
	vis := g.Map.VisibilityAt(pos)
	if vis == world.Forgotten {
		return IconVoid, StyleNormal
	}

	if pos == g.Player.Position {
		return g.Player.Icon, StylePlayer
	}
	if pos == g.Minotaur.Position && vis == world.Visible {
		return g.Minotaur.Icon, StyleMinotaur
	}

	kind := g.Map.KindAt(pos)
	if vis == world.Remembered {
		switch kind {
		case world.Wall, world.Edge:
			return IconWall, StyleRemembered
		default:
			return IconRemembered, StyleRemembered
		}
	}

	switch kind {
	case world.Wall, world.Edge:
		return IconWall, StyleWall
	case world.Exit:
		return IconExit, StyleExit
	case world.Treasure:
		return IconTreasure, StyleTreasure
	case world.Diamond:
		return IconDiamond, StyleDiamond
	default:
		return IconFloor, StyleFloor
	}
}

// StatusLine returns the HUD line: map name, haul and the last noise level.
func StatusLine(g *state.Game) string {
	return fmt.Sprintf(gotext.Get("STATUS_LINE"), g.Map.Name, len(g.Treasures), g.Minigame.NoiseLevel())
}

// MinigameBar draws the stealth mini-game as width characters: the quiet
// zone as '=', the rest as '-', and the marker as '|'.
func MinigameBar(g *state.Game, width int) string {
	if width < 3 {
		width = 3
	}
	start, end := g.Minigame.Zone()
	marker := int(g.Minigame.Marker() * float64(width-1))

	var b strings.Builder
	for i := 0; i < width; i++ {
		f := float64(i) / float64(width-1)
		switch {
		case i == marker:
			b.WriteByte('|')
		case f >= start && f <= end:
			b.WriteByte('=')
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// ScoreLines returns the score screen text for a finished run.
func ScoreLines(g *state.Game) []string {
	s := score.New(g.ScorePayload())

	lines := []string{
		locales.Text(s.Headline()),
		"",
	}
	for _, t := range g.Treasures {
		if t.Heart {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-24s %5d", locales.Text(t.Name), t.Value))
	}
	lines = append(lines, "", fmt.Sprintf(gotext.Get("LOOT_VALUE"), s.Loot))
	if s.GotHeart {
		lines = append(lines, fmt.Sprintf(locales.Text(s.HeartStatus()), s.HeartValue))
	} else {
		lines = append(lines, locales.Text(s.HeartStatus()))
	}
	lines = append(lines,
		fmt.Sprintf(gotext.Get("TOTAL_VALUE"), s.Total),
		"",
		gotext.Get("PLAY_AGAIN"),
	)
	return lines
}

// helpActions are the actions listed in the key help, in display order.
var helpActions = []input.Action{
	input.ActionStop,
	input.ActionSearch,
	input.ActionDebugMapDump,
	input.ActionQuit,
}

// HelpLine lists the non-movement bindings, e.g. "Stop: enter/space".
func HelpLine() string {
	byAction := input.GetBindingsByAction()
	parts := []string{gotext.Get("HELP_MOVE")}
	for _, a := range helpActions {
		var codes []string
		for _, c := range byAction[a] {
			// Gamepad and pointer codes don't fit the key help
			if strings.HasPrefix(c, "gamepad_") || strings.HasPrefix(c, "pointer_") {
				continue
			}
			codes = append(codes, c)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", input.ActionName(a), strings.Join(codes, "/")))
	}
	return strings.Join(parts, "   ")
}
