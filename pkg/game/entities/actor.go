package entities

import (
	"labyrinth/pkg/engine/world"
)

// Actor is anything that stands on a tile centre: the player or the minotaur.
type Actor struct {
	Name     string
	Icon     string
	Position world.Position
}

// NewPlayer creates the player at the given tile centre
func NewPlayer(pos world.Position) *Actor {
	return &Actor{Name: "PLAYER", Icon: "@", Position: pos}
}

// NewMinotaur creates the minotaur at the given tile centre
func NewMinotaur(pos world.Position) *Actor {
	return &Actor{Name: "MINOTAUR", Icon: "M", Position: pos}
}

// SetTilePosition places the actor on a tile centre without animation
func (a *Actor) SetTilePosition(pos world.Position) {
	a.Position = pos
}
