package world

// Access is the minimal grid surface game logic depends on. It keeps map
// rules independent of whichever renderer draws the cells.
type Access interface {
	Width() int
	Height() int
	IsOnPerimeter(pos Position) bool
	ForEachCell(fn func(pos Position))
	CellKindAt(pos Position) CellKind
	RoomKindAt(pos Position) CellKind
	SetRoomKind(pos Position, kind CellKind)
	VisibilityAt(pos Position) Visibility
	SetVisibility(pos Position, v Visibility)
}

// Grid is a fixed-size layered tile grid: a base layer of walkable/wall
// cells, a rooms overlay for special cells and a visibility layer.
type Grid struct {
	width  int
	height int

	kinds      []CellKind
	rooms      []CellKind
	visibility []Visibility
}

// NewGrid creates a new grid with the given dimensions. Every base cell
// starts as a wall, every room cell empty and every cell forgotten.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	size := width * height
	g := &Grid{
		width:      width,
		height:     height,
		kinds:      make([]CellKind, size),
		rooms:      make([]CellKind, size),
		visibility: make([]Visibility, size),
	}
	for i := range g.kinds {
		g.kinds[i] = Wall
	}
	return g
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(pos Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// IsOnPerimeter checks if a position is on the outer edge of the grid
func (g *Grid) IsOnPerimeter(pos Position) bool {
	if !g.IsValidPosition(pos) {
		return false
	}
	return pos.X == 0 || pos.X == g.width-1 || pos.Y == 0 || pos.Y == g.height-1
}

func (g *Grid) index(pos Position) int {
	return pos.Y*g.width + pos.X
}

// CellKindAt returns the base-layer kind at pos. Out of range reads as Wall.
func (g *Grid) CellKindAt(pos Position) CellKind {
	if !g.IsValidPosition(pos) {
		return Wall
	}
	return g.kinds[g.index(pos)]
}

// SetCellKind sets the base-layer kind. Returns false if out of bounds.
func (g *Grid) SetCellKind(pos Position, kind CellKind) bool {
	if !g.IsValidPosition(pos) {
		return false
	}
	g.kinds[g.index(pos)] = kind
	return true
}

// RoomKindAt returns the rooms-layer kind at pos. Out of range reads as Empty.
func (g *Grid) RoomKindAt(pos Position) CellKind {
	if !g.IsValidPosition(pos) {
		return Empty
	}
	return g.rooms[g.index(pos)]
}

// SetRoomKind sets the rooms-layer kind. Out-of-range writes are ignored.
func (g *Grid) SetRoomKind(pos Position, kind CellKind) {
	if !g.IsValidPosition(pos) {
		return
	}
	g.rooms[g.index(pos)] = kind
}

// VisibilityAt returns the visibility of the cell at pos.
func (g *Grid) VisibilityAt(pos Position) Visibility {
	if !g.IsValidPosition(pos) {
		return Forgotten
	}
	return g.visibility[g.index(pos)]
}

// SetVisibility sets the visibility of the cell at pos. Out-of-range writes are ignored.
func (g *Grid) SetVisibility(pos Position, v Visibility) {
	if !g.IsValidPosition(pos) {
		return
	}
	g.visibility[g.index(pos)] = v
}

// ForEachCell iterates over all cells in the grid in row-major order
func (g *Grid) ForEachCell(fn func(pos Position)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Position{X: x, Y: y})
		}
	}
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	walkable := 0
	for _, k := range g.kinds {
		if k == Walkable {
			walkable++
		}
	}
	if walkable == 0 {
		return "Grid has no walkable cells"
	}

	return ""
}
