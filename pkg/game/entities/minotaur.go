package entities

import (
	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/world"
	gameworld "labyrinth/pkg/game/world"
)

// NextStep returns the tile the minotaur should move to next to close in on
// target, following the shortest path of adjacent tiles. ok is false when
// the minotaur is already there or no path exists.
func NextStep(m *gameworld.Map, from, target world.Position) (next world.Position, ok bool) {
	if from == target {
		return from, false
	}

	cameFrom := make(map[world.Position]world.Position)
	visited := mapset.New[world.Position]()
	visited.Put(from)
	queue := []world.Position{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == target {
			// Walk back to the first step out of from
			step := current
			for cameFrom[step] != from {
				step = cameFrom[step]
			}
			return step, true
		}

		for _, n := range m.Neighbors(current) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			cameFrom[n] = current
			queue = append(queue, n)
		}
	}

	return from, false
}
