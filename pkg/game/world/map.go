package world

import (
	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/config"
)

// Map answers the labyrinth's walkability, adjacency and room questions and
// owns the visibility changes that follow the player around.
type Map struct {
	grid world.Access

	exits     mapset.Set[world.Position]
	exitList  []world.Position
	treasures []world.Position
	diamond   *world.Position

	tiles map[world.Position]*Tile

	// Name of the pre-authored variant this map was built from.
	Name string
}

// NewMap wraps a grid, records its special room cells and hides every cell.
func NewMap(name string, grid world.Access) *Map {
	m := &Map{
		grid:  grid,
		exits: mapset.New[world.Position](),
		tiles: make(map[world.Position]*Tile),
		Name:  name,
	}

	grid.ForEachCell(func(pos world.Position) {
		grid.SetVisibility(pos, world.Forgotten)

		switch grid.RoomKindAt(pos) {
		case world.Exit:
			m.exits.Put(pos)
			m.exitList = append(m.exitList, pos)
		case world.Treasure:
			m.treasures = append(m.treasures, pos)
		case world.Diamond:
			d := pos
			m.diamond = &d
		}
	})

	return m
}

// Grid returns the underlying grid.
func (m *Map) Grid() world.Access {
	return m.grid
}

// Width returns the map width in cells
func (m *Map) Width() int {
	return m.grid.Width()
}

// Height returns the map height in cells
func (m *Map) Height() int {
	return m.grid.Height()
}

// IsEdgeTile returns true iff pos lies on the outer boundary of the grid:
// X is 0 or width-1, or Y is 0 or height-1. Out-of-range positions are not edges.
func (m *Map) IsEdgeTile(pos world.Position) bool {
	return m.grid.IsOnPerimeter(pos)
}

// IsWalkableTile returns false for edge tiles, otherwise whether the cell is Walkable.
func (m *Map) IsWalkableTile(pos world.Position) bool {
	if m.IsEdgeTile(pos) {
		return false
	}
	return m.grid.CellKindAt(pos) == world.Walkable
}

// IsExit returns true if the rooms layer marks pos as an exit.
func (m *Map) IsExit(pos world.Position) bool {
	return m.grid.RoomKindAt(pos) == world.Exit
}

// HasTreasure returns true if the rooms layer holds uncollected treasure at pos.
func (m *Map) HasTreasure(pos world.Position) bool {
	return m.grid.RoomKindAt(pos) == world.Treasure
}

// HasDiamond returns true if the heart diamond still lies at pos.
func (m *Map) HasDiamond(pos world.Position) bool {
	return m.grid.RoomKindAt(pos) == world.Diamond
}

// IsExiting is true when the player stands on a recorded exit and is
// heading for the edge of the map.
func (m *Map) IsExiting(playerPos, destination world.Position) bool {
	return m.exits.Has(playerPos) && m.IsEdgeTile(destination)
}

// ObjectsAreAdjacent returns true iff a and b are axis-aligned exactly one
// tile apart and every cell between them is walkable.
func (m *Map) ObjectsAreAdjacent(a, b world.Position) bool {
	dir, ok := world.DirectionBetween(a, b)
	if !ok || a.Manhattan(b) != config.CellPerTile {
		return false
	}

	for i := 1; i < config.CellPerTile; i++ {
		if m.grid.CellKindAt(a.Step(dir, i)) != world.Walkable {
			return false
		}
	}
	return true
}

// IsMoveValid checks a one-cell step out of from. The step cell must be
// walkable and lead to an adjacent, walkable tile centre.
func (m *Map) IsMoveValid(from, step world.Position) bool {
	dir, ok := world.DirectionBetween(from, step)
	if !ok || from.Manhattan(step) != 1 {
		return false
	}
	if !m.IsWalkableTile(step) {
		return false
	}

	dest := from.Step(dir, config.CellPerTile)
	return m.IsWalkableTile(dest) && m.ObjectsAreAdjacent(from, dest)
}

// Neighbors returns the tile centres reachable in one move from pos.
func (m *Map) Neighbors(pos world.Position) []world.Position {
	var out []world.Position
	for _, dir := range world.AllDirections() {
		if m.IsMoveValid(pos, pos.Step(dir, 1)) {
			out = append(out, pos.Step(dir, config.CellPerTile))
		}
	}
	return out
}

// RemoveTreasureAt clears the room cell at pos. Clearing an empty cell is a no-op.
func (m *Map) RemoveTreasureAt(pos world.Position) {
	switch m.grid.RoomKindAt(pos) {
	case world.Treasure:
		for i, t := range m.treasures {
			if t == pos {
				m.treasures = append(m.treasures[:i], m.treasures[i+1:]...)
				break
			}
		}
	case world.Diamond:
		m.diamond = nil
	case world.Empty:
		return
	}
	m.grid.SetRoomKind(pos, world.Empty)
}

// Exits returns the exit cells recorded when the map was built.
func (m *Map) Exits() []world.Position {
	return append([]world.Position(nil), m.exitList...)
}

// Treasures returns the uncollected treasure cells.
func (m *Map) Treasures() []world.Position {
	return append([]world.Position(nil), m.treasures...)
}

// Diamond returns the heart diamond cell, if it hasn't been collected.
func (m *Map) Diamond() (world.Position, bool) {
	if m.diamond == nil {
		return world.Position{}, false
	}
	return *m.diamond, true
}

// KindAt classifies a cell for display: edges first, then room contents,
// then the base layer.
func (m *Map) KindAt(pos world.Position) world.CellKind {
	if m.IsEdgeTile(pos) {
		return world.Edge
	}
	if k := m.grid.RoomKindAt(pos); k != world.Empty {
		return k
	}
	return m.grid.CellKindAt(pos)
}

// VisibilityAt returns the render state of the cell at pos.
func (m *Map) VisibilityAt(pos world.Position) world.Visibility {
	return m.grid.VisibilityAt(pos)
}

// CellsAtTile returns the in-bounds cells of the 3x3 block centred on pos.
func (m *Map) CellsAtTile(pos world.Position) []world.Position {
	cells := make([]world.Position, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p := pos.Add(dx, dy)
			if p.X < 0 || p.Y < 0 || p.X >= m.grid.Width() || p.Y >= m.grid.Height() {
				continue
			}
			cells = append(cells, p)
		}
	}
	return cells
}

// PlayerEnteredTile lights the 3x3 block around pos.
func (m *Map) PlayerEnteredTile(pos world.Position) {
	for _, c := range m.CellsAtTile(pos) {
		m.grid.SetVisibility(c, world.Visible)
	}
}

// FadeFromMemory hides the block around pos if forgot is true, otherwise dims it.
func (m *Map) FadeFromMemory(pos world.Position, forgot bool) {
	v := world.Remembered
	if forgot {
		v = world.Forgotten
	}
	for _, c := range m.CellsAtTile(pos) {
		m.grid.SetVisibility(c, v)
	}
}

// TileAt returns the tile centred on pos, creating it on first use.
func (m *Map) TileAt(pos world.Position) *Tile {
	if t, ok := m.tiles[pos]; ok {
		return t
	}

	t := &Tile{
		Center:       pos,
		TreasureRoom: m.HasTreasure(pos) || m.HasDiamond(pos),
	}
	for _, dir := range world.AllDirections() {
		t.Walls[dir] = m.grid.CellKindAt(pos.Step(dir, 1)) != world.Walkable
	}
	m.tiles[pos] = t
	return t
}
