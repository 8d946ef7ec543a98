// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell (no actor overlay).
// If revealedOnly is true, forgotten cells return ' '.
func cellSymbol(g *state.Game, pos world.Position, revealedOnly bool) rune {
	if revealedOnly && g.Map.VisibilityAt(pos) == world.Forgotten {
		return ' '
	}
	switch g.Map.KindAt(pos) {
	case world.Exit:
		return 'E'
	case world.Treasure:
		return 'T'
	case world.Diamond:
		return 'D'
	case world.Walkable:
		if revealedOnly && g.Map.VisibilityAt(pos) == world.Remembered {
			return ','
		}
		return '.'
	default:
		return '#'
	}
}

// writeMapGrid writes the grid to w with the player and minotaur overlaid.
func writeMapGrid(w io.Writer, g *state.Game, revealedOnly bool) {
	for y := 0; y < g.Map.Height(); y++ {
		for x := 0; x < g.Map.Width(); x++ {
			pos := world.Pos(x, y)
			switch {
			case pos == g.Player.Position:
				fmt.Fprint(w, g.Player.Icon)
			case pos == g.Minotaur.Position && !revealedOnly:
				fmt.Fprint(w, g.Minotaur.Icon)
			default:
				fmt.Fprintf(w, "%c", cellSymbol(g, pos, revealedOnly))
			}
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a full debug dump of g to w: metadata, legend, the map as
// the player remembers it, the full layout and the trail.
func DumpMap(g *state.Game, w io.Writer) error {
	if g == nil || g.Map == nil {
		return fmt.Errorf("no map")
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "run_id: %s\n", g.RunID)
	fmt.Fprintf(w, "map_name: %s\n", g.Map.Name)
	fmt.Fprintf(w, "variant: %d\n", g.Variant)
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "grid_width: %d\n", g.Map.Width())
	fmt.Fprintf(w, "grid_height: %d\n", g.Map.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "player: %s\n", g.Player.Position)
	fmt.Fprintf(w, "minotaur: %s\n", g.Minotaur.Position)
	fmt.Fprintf(w, "treasures_collected: %d\n", len(g.Treasures))
	fmt.Fprintf(w, "noise: %s\n", g.Minigame.NoiseLevel())
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = walkable  , = remembered  # = wall  E = exit  T = treasure  D = diamond  @ = player  M = minotaur  (space) = forgotten")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (as remembered) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	// --- Special cells ---
	fmt.Fprintln(w, "--- Special cells ---")
	fmt.Fprintln(w, "Exits:")
	for _, pos := range g.Map.Exits() {
		fmt.Fprintf(w, "  %s\n", pos)
	}
	fmt.Fprintln(w, "Treasures:")
	for _, pos := range g.Map.Treasures() {
		fmt.Fprintf(w, "  %s searched=%v\n", pos, g.Map.TileAt(pos).Searched)
	}
	if pos, ok := g.Map.Diamond(); ok {
		fmt.Fprintf(w, "Diamond: %s\n", pos)
	} else {
		fmt.Fprintln(w, "Diamond: (collected)")
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Trail (oldest first) ---")
	for _, pos := range g.History.Entries() {
		fmt.Fprintf(w, "  %s remembered=%v\n", pos, g.Memory.Contains(pos))
	}
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "--- Memory window (oldest first, %d of %d) ---\n", g.Memory.Len(), g.Memory.Limit())
	for _, pos := range g.Memory.Entries() {
		fmt.Fprintf(w, "  %s\n", pos)
	}
	return nil
}

// DumpMapToFile writes DumpMap output to map.txt in the working directory
// and returns its absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	if err := DumpMap(g, f); err != nil {
		return "", err
	}
	return absPath, nil
}
