// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// CellKind is the semantic classification of a grid cell.
type CellKind int

// Cell kinds. Empty only appears on overlay layers (e.g. rooms).
const (
	Empty CellKind = iota
	Walkable
	Wall
	Exit
	Treasure
	Diamond
	Edge
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Walkable:
		return "Walkable"
	case Wall:
		return "Wall"
	case Exit:
		return "Exit"
	case Treasure:
		return "Treasure"
	case Diamond:
		return "Diamond"
	case Edge:
		return "Edge"
	default:
		return "Unknown"
	}
}

// Visibility is the render state of a cell.
type Visibility int

const (
	// Forgotten cells are not drawn at all (alpha 0).
	Forgotten Visibility = iota
	// Visible cells are fully lit with a neutral tint.
	Visible
	// Remembered cells are drawn with a darkening tint.
	Remembered
)

// String returns the string representation of a visibility state
func (v Visibility) String() string {
	switch v {
	case Forgotten:
		return "Forgotten"
	case Visible:
		return "Visible"
	case Remembered:
		return "Remembered"
	default:
		return "Unknown"
	}
}

// Alpha returns the opacity used when drawing a cell in this state.
func (v Visibility) Alpha() float64 {
	if v == Forgotten {
		return 0
	}
	return 1
}

// Tint returns the RGB multiplier used when drawing a cell in this state.
// 0xffffff is neutral, 0x333333 darkens remembered cells.
func (v Visibility) Tint() uint32 {
	if v == Remembered {
		return 0x333333
	}
	return 0xffffff
}
