package memory

import (
	"testing"

	"labyrinth/pkg/engine/world"
)

func tiles(n int) []world.Position {
	out := make([]world.Position, n)
	for i := range out {
		out[i] = world.Pos(3*i+1, 1)
	}
	return out
}

func TestWindow_EvictsOldest(t *testing.T) {
	w := NewWindow(5)
	p := tiles(6)

	for _, pos := range p[:5] {
		if forgotten, ok := w.Visit(pos); ok {
			t.Fatalf("Visit(%v) evicted %v before the window was full", pos, forgotten)
		}
	}

	forgotten, ok := w.Visit(p[5])
	if !ok {
		t.Fatalf("Visit(%v) ok = false, want true", p[5])
	}
	if forgotten != p[0] {
		t.Errorf("Visit(%v) forgot %v, want %v", p[5], forgotten, p[0])
	}
	if w.Contains(p[0]) {
		t.Errorf("Contains(%v) = true after eviction, want false", p[0])
	}
	if got := w.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}

func TestWindow_RevisitRefreshes(t *testing.T) {
	w := NewWindow(3)
	p := tiles(4)

	w.Visit(p[0])
	w.Visit(p[1])
	w.Visit(p[2])
	// p[0] becomes the most recent, so p[1] is now the oldest
	if _, ok := w.Visit(p[0]); ok {
		t.Fatalf("revisiting %v evicted a tile, want none", p[0])
	}

	forgotten, ok := w.Visit(p[3])
	if !ok || forgotten != p[1] {
		t.Errorf("Visit(%v) = (%v, %v), want (%v, true)", p[3], forgotten, ok, p[1])
	}

	want := []world.Position{p[2], p[0], p[3]}
	got := w.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWindow_NoDuplicates(t *testing.T) {
	w := NewWindow(5)
	pos := world.Pos(4, 4)
	for i := 0; i < 10; i++ {
		w.Visit(pos)
	}
	if got := w.Len(); got != 1 {
		t.Errorf("Len() after repeated visits = %d, want 1", got)
	}
}

func TestNewWindow_MinimumLimit(t *testing.T) {
	if got := NewWindow(0).Limit(); got != 1 {
		t.Errorf("NewWindow(0).Limit() = %d, want 1", got)
	}
}

func TestHistory_Bounded(t *testing.T) {
	h := NewHistory(20)
	p := tiles(25)
	for _, pos := range p {
		h.Push(pos)
	}

	if got := h.Len(); got != 20 {
		t.Fatalf("Len() = %d, want 20", got)
	}
	entries := h.Entries()
	if entries[0] != p[5] {
		t.Errorf("oldest entry = %v, want %v", entries[0], p[5])
	}
	last, ok := h.Last()
	if !ok || last != p[24] {
		t.Errorf("Last() = (%v, %v), want (%v, true)", last, ok, p[24])
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(20)
	if _, ok := h.Last(); ok {
		t.Error("Last() on empty history ok = true, want false")
	}
	if got := h.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}
