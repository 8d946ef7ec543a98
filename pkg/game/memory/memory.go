// Package memory tracks where the player has been: a fixed-length trail of
// visited tiles and the shorter window of tiles still remembered on screen.
package memory

import (
	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
)

// History is the trail of the most recently visited tiles, oldest first.
type History struct {
	limit   int
	entries []world.Position
}

// NewHistory creates a trail that keeps at most limit entries.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit, entries: make([]world.Position, 0, limit)}
}

// Push appends pos, dropping the oldest entry once the limit is exceeded.
func (h *History) Push(pos world.Position) {
	h.entries = append(h.entries, pos)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Len returns the number of entries in the trail
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recent entry.
func (h *History) Last() (world.Position, bool) {
	if len(h.entries) == 0 {
		return world.Position{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries returns a copy of the trail, oldest first.
func (h *History) Entries() []world.Position {
	return append([]world.Position(nil), h.entries...)
}

// Window is the ordered set of tiles the player still remembers. It holds
// no duplicates; revisiting a tile moves it to the most-recent end.
type Window struct {
	limit   int
	order   []world.Position
	members mapset.Set[world.Position]
}

// NewWindow creates a memory window that forgets beyond limit tiles.
func NewWindow(limit int) *Window {
	if limit < 1 {
		limit = 1
	}
	return &Window{
		limit:   limit,
		order:   make([]world.Position, 0, limit+1),
		members: mapset.New[world.Position](),
	}
}

// Visit records pos as the most recent memory. If that pushes the window
// past its limit, the oldest tile is evicted and returned with ok=true.
func (w *Window) Visit(pos world.Position) (forgotten world.Position, ok bool) {
	if w.members.Has(pos) {
		for i, p := range w.order {
			if p == pos {
				w.order = append(w.order[:i], w.order[i+1:]...)
				break
			}
		}
	}

	w.order = append(w.order, pos)
	w.members.Put(pos)

	if len(w.order) <= w.limit {
		return world.Position{}, false
	}

	forgotten = w.order[0]
	w.order = w.order[1:]
	w.members.Remove(forgotten)
	return forgotten, true
}

// Contains reports whether pos is still remembered.
func (w *Window) Contains(pos world.Position) bool {
	return w.members.Has(pos)
}

// Len returns the number of remembered tiles
func (w *Window) Len() int {
	return len(w.order)
}

// Limit returns the forgetting threshold
func (w *Window) Limit() int {
	return w.limit
}

// Entries returns the remembered tiles, oldest first.
func (w *Window) Entries() []world.Position {
	return append([]world.Position(nil), w.order...)
}
