// Package score aggregates a finished run for the score screen.
package score

import (
	"labyrinth/pkg/game/entities"
)

// Payload is what the game hands to the score screen when a run ends.
type Payload struct {
	Treasures []entities.Treasure `json:"treasures" yaml:"treasures"`
	Alive     bool                `json:"alive" yaml:"alive"`
}

// Summary is the aggregated result shown on the score screen.
type Summary struct {
	Loot       int
	HeartValue int
	GotHeart   bool
	Total      int
	Alive      bool
}

// New aggregates a payload. The heart's value is kept apart from the loot
// and only added back into the total.
func New(p Payload) Summary {
	s := Summary{Alive: p.Alive}
	for _, t := range p.Treasures {
		if t.Heart {
			s.GotHeart = true
			s.HeartValue = t.Value
			continue
		}
		s.Loot += t.Value
	}
	s.Total = s.Loot + s.HeartValue
	return s
}

// HeartStatus returns the gotext key describing the heart.
func (s Summary) HeartStatus() string {
	if s.GotHeart {
		return "HEART_CLAIMED"
	}
	return "HEART_UNCLAIMED"
}

// Headline returns the gotext key for the run's outcome.
func (s Summary) Headline() string {
	if s.Alive {
		return "ESCAPED"
	}
	return "DEATH"
}
