package world

import (
	"testing"

	"labyrinth/pkg/engine/world"
)

// newOpenGrid returns a w x h grid with every non-perimeter cell walkable.
func newOpenGrid(t *testing.T, w, h int) *world.Grid {
	t.Helper()
	g := world.NewGrid(w, h)
	g.ForEachCell(func(pos world.Position) {
		if !g.IsOnPerimeter(pos) {
			g.SetCellKind(pos, world.Walkable)
		}
	})
	return g
}

func TestMap_IsEdgeTile(t *testing.T) {
	m := NewMap("test", newOpenGrid(t, 10, 10))
	tests := []struct {
		pos  world.Position
		want bool
	}{
		{world.Pos(0, 3), true},
		{world.Pos(9, 3), true},
		{world.Pos(3, 0), true},
		{world.Pos(3, 9), true},
		{world.Pos(5, 5), false},
		{world.Pos(-1, 3), false},
		{world.Pos(3, 10), false},
	}
	for _, tt := range tests {
		if got := m.IsEdgeTile(tt.pos); got != tt.want {
			t.Errorf("IsEdgeTile(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestMap_IsWalkableTile(t *testing.T) {
	g := newOpenGrid(t, 10, 10)
	g.SetCellKind(world.Pos(0, 3), world.Walkable)
	g.SetCellKind(world.Pos(2, 2), world.Wall)
	m := NewMap("test", g)

	tests := []struct {
		name string
		pos  world.Position
		want bool
	}{
		{"walkable interior", world.Pos(5, 5), true},
		{"walkable edge", world.Pos(0, 3), false},
		{"wall interior", world.Pos(2, 2), false},
		{"out of range", world.Pos(-1, 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsWalkableTile(tt.pos); got != tt.want {
				t.Errorf("IsWalkableTile(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestMap_ObjectsAreAdjacent(t *testing.T) {
	g := newOpenGrid(t, 10, 10)
	m := NewMap("test", g)
	a, b := world.Pos(5, 5), world.Pos(5, 8)

	if !m.ObjectsAreAdjacent(a, b) {
		t.Errorf("ObjectsAreAdjacent(%v, %v) = false, want true", a, b)
	}
	if m.ObjectsAreAdjacent(a, b) != m.ObjectsAreAdjacent(b, a) {
		t.Errorf("ObjectsAreAdjacent is not symmetric for %v, %v", a, b)
	}

	g.SetCellKind(world.Pos(5, 6), world.Wall)
	if m.ObjectsAreAdjacent(a, b) {
		t.Errorf("ObjectsAreAdjacent(%v, %v) with wall at (5,6) = true, want false", a, b)
	}
	if m.ObjectsAreAdjacent(b, a) {
		t.Errorf("ObjectsAreAdjacent(%v, %v) with wall at (5,6) = true, want false", b, a)
	}
}

func TestMap_ObjectsAreAdjacent_NeedsBothCells(t *testing.T) {
	// Only the tile centres and the cell next to a are open
	g := world.NewGrid(10, 10)
	a, b := world.Pos(5, 5), world.Pos(5, 8)
	g.SetCellKind(a, world.Walkable)
	g.SetCellKind(b, world.Walkable)
	g.SetCellKind(world.Pos(5, 6), world.Walkable)
	m := NewMap("test", g)

	if m.ObjectsAreAdjacent(a, b) {
		t.Errorf("ObjectsAreAdjacent(%v, %v) with wall at (5,7) = true, want false", a, b)
	}
	if m.ObjectsAreAdjacent(b, a) {
		t.Errorf("ObjectsAreAdjacent(%v, %v) with wall at (5,7) = true, want false", b, a)
	}

	g.SetCellKind(world.Pos(5, 7), world.Walkable)
	if !m.ObjectsAreAdjacent(a, b) || !m.ObjectsAreAdjacent(b, a) {
		t.Errorf("ObjectsAreAdjacent(%v, %v) with both cells open = false, want true both ways", a, b)
	}
}

func TestMap_ObjectsAreAdjacent_Distance(t *testing.T) {
	m := NewMap("test", newOpenGrid(t, 10, 10))
	tests := []struct {
		a, b world.Position
	}{
		{world.Pos(5, 5), world.Pos(5, 5)},
		{world.Pos(5, 5), world.Pos(5, 7)},
		{world.Pos(2, 2), world.Pos(2, 6)},
		{world.Pos(4, 4), world.Pos(7, 7)},
	}
	for _, tt := range tests {
		if m.ObjectsAreAdjacent(tt.a, tt.b) {
			t.Errorf("ObjectsAreAdjacent(%v, %v) = true, want false", tt.a, tt.b)
		}
	}
}

func TestMap_IsExiting(t *testing.T) {
	g := newOpenGrid(t, 9, 9)
	g.SetCellKind(world.Pos(8, 4), world.Walkable)
	g.SetRoomKind(world.Pos(7, 4), world.Exit)
	m := NewMap("test", g)

	tests := []struct {
		name       string
		player     world.Position
		dest       world.Position
		wantExit   bool
		wantIsExit bool
	}{
		{"exit toward edge", world.Pos(7, 4), world.Pos(8, 4), true, true},
		{"exit toward interior", world.Pos(7, 4), world.Pos(6, 4), false, true},
		{"not an exit", world.Pos(7, 1), world.Pos(8, 1), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsExiting(tt.player, tt.dest); got != tt.wantExit {
				t.Errorf("IsExiting(%v, %v) = %v, want %v", tt.player, tt.dest, got, tt.wantExit)
			}
			if got := m.IsExit(tt.player); got != tt.wantIsExit {
				t.Errorf("IsExit(%v) = %v, want %v", tt.player, got, tt.wantIsExit)
			}
		})
	}
	if got := len(m.Exits()); got != 1 {
		t.Errorf("len(Exits()) = %d, want 1", got)
	}
}

func TestMap_IsMoveValid(t *testing.T) {
	g := newOpenGrid(t, 9, 9)
	g.SetCellKind(world.Pos(2, 4), world.Wall)
	m := NewMap("test", g)
	from := world.Pos(4, 4)

	tests := []struct {
		name string
		step world.Position
		want bool
	}{
		{"north", world.Pos(4, 3), true},
		{"east", world.Pos(5, 4), true},
		{"west blocked between tiles", world.Pos(3, 4), false},
		{"two cells", world.Pos(4, 2), false},
		{"diagonal", world.Pos(5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsMoveValid(from, tt.step); got != tt.want {
				t.Errorf("IsMoveValid(%v, %v) = %v, want %v", from, tt.step, got, tt.want)
			}
		})
	}
}

func TestMap_RemoveTreasureAt(t *testing.T) {
	g := newOpenGrid(t, 9, 9)
	tp := world.Pos(1, 1)
	dp := world.Pos(7, 7)
	g.SetRoomKind(tp, world.Treasure)
	g.SetRoomKind(dp, world.Diamond)
	m := NewMap("test", g)

	if !m.HasTreasure(tp) {
		t.Fatalf("HasTreasure(%v) = false, want true", tp)
	}
	m.RemoveTreasureAt(tp)
	if m.HasTreasure(tp) {
		t.Errorf("HasTreasure(%v) after removal = true, want false", tp)
	}
	if got := len(m.Treasures()); got != 0 {
		t.Errorf("len(Treasures()) = %d, want 0", got)
	}

	// Idempotent
	m.RemoveTreasureAt(tp)
	if k := m.KindAt(tp); k != world.Walkable {
		t.Errorf("KindAt(%v) after second removal = %v, want Walkable", tp, k)
	}

	if _, ok := m.Diamond(); !ok {
		t.Fatal("Diamond() ok = false, want true")
	}
	m.RemoveTreasureAt(dp)
	if m.HasDiamond(dp) {
		t.Errorf("HasDiamond(%v) after removal = true, want false", dp)
	}
	if _, ok := m.Diamond(); ok {
		t.Error("Diamond() ok after removal = true, want false")
	}
}

func TestMap_StartsForgotten(t *testing.T) {
	g := newOpenGrid(t, 6, 6)
	g.SetVisibility(world.Pos(2, 2), world.Visible)
	m := NewMap("test", g)
	g.ForEachCell(func(pos world.Position) {
		if v := m.VisibilityAt(pos); v != world.Forgotten {
			t.Errorf("VisibilityAt(%v) = %v, want Forgotten", pos, v)
		}
	})
}

func TestMap_PlayerEnteredTileAndFade(t *testing.T) {
	m := NewMap("test", newOpenGrid(t, 9, 9))
	centre := world.Pos(4, 4)

	m.PlayerEnteredTile(centre)
	for _, c := range m.CellsAtTile(centre) {
		if v := m.VisibilityAt(c); v != world.Visible {
			t.Errorf("after PlayerEnteredTile: VisibilityAt(%v) = %v, want Visible", c, v)
		}
	}
	if v := m.VisibilityAt(world.Pos(6, 4)); v != world.Forgotten {
		t.Errorf("VisibilityAt(6,4) outside the block = %v, want Forgotten", v)
	}

	m.FadeFromMemory(centre, false)
	for _, c := range m.CellsAtTile(centre) {
		if v := m.VisibilityAt(c); v != world.Remembered {
			t.Errorf("after FadeFromMemory(false): VisibilityAt(%v) = %v, want Remembered", c, v)
		}
	}

	m.FadeFromMemory(centre, true)
	for _, c := range m.CellsAtTile(centre) {
		if v := m.VisibilityAt(c); v != world.Forgotten {
			t.Errorf("after FadeFromMemory(true): VisibilityAt(%v) = %v, want Forgotten", c, v)
		}
	}
}

func TestMap_CellsAtTile_Corner(t *testing.T) {
	m := NewMap("test", newOpenGrid(t, 9, 9))
	if got := len(m.CellsAtTile(world.Pos(0, 0))); got != 4 {
		t.Errorf("len(CellsAtTile(0,0)) = %d, want 4", got)
	}
	if got := len(m.CellsAtTile(world.Pos(4, 4))); got != 9 {
		t.Errorf("len(CellsAtTile(4,4)) = %d, want 9", got)
	}
}

func TestMap_TileAt(t *testing.T) {
	g := newOpenGrid(t, 9, 9)
	g.SetCellKind(world.Pos(4, 3), world.Wall)
	m := NewMap("test", g)

	tile := m.TileAt(world.Pos(4, 4))
	if !tile.HasWall(world.North) {
		t.Error("HasWall(North) = false, want true")
	}
	if tile.HasWall(world.East) {
		t.Error("HasWall(East) = true, want false")
	}
	if got := len(tile.WallSegments(0, 0, 30)); got != 1 {
		t.Errorf("len(WallSegments) = %d, want 1", got)
	}

	tile.Searched = true
	if !m.TileAt(world.Pos(4, 4)).Searched {
		t.Error("TileAt returned a fresh tile, want the same tile with Searched set")
	}
}

func TestMap_Neighbors(t *testing.T) {
	g := newOpenGrid(t, 9, 9)
	g.SetCellKind(world.Pos(4, 5), world.Wall)
	m := NewMap("test", g)

	got := m.Neighbors(world.Pos(4, 4))
	want := []world.Position{world.Pos(4, 1), world.Pos(7, 4), world.Pos(1, 4)}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(4,4) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(4,4)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
