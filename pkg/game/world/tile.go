// Package world provides the labyrinth-specific layer on top of the engine grid:
// the map rules and the per-tile room state.
package world

import (
	"labyrinth/pkg/engine/world"
)

// Tile is one 3x3 movement unit of the labyrinth, addressed by its centre cell.
type Tile struct {
	Center world.Position

	// Walls is indexed by world.Direction.
	Walls [4]bool

	// Searched is set by the first room search and never cleared.
	Searched bool

	// TreasureRoom is true if the rooms layer held treasure here when the tile was created.
	TreasureRoom bool
}

// Segment is a line in screen space.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// HasWall returns true if the tile is closed on the given side
func (t *Tile) HasWall(dir world.Direction) bool {
	if !dir.IsValid() {
		return false
	}
	return t.Walls[dir]
}

// WallSegments returns the outline segments for the closed sides of the tile
// drawn as a size x size square with its top-left corner at (x, y).
func (t *Tile) WallSegments(x, y, size float64) []Segment {
	var segs []Segment
	if t.HasWall(world.North) {
		segs = append(segs, Segment{x, y, x + size, y})
	}
	if t.HasWall(world.East) {
		segs = append(segs, Segment{x + size, y, x + size, y + size})
	}
	if t.HasWall(world.South) {
		segs = append(segs, Segment{x + size, y + size, x, y + size})
	}
	if t.HasWall(world.West) {
		segs = append(segs, Segment{x, y + size, x, y})
	}
	return segs
}
