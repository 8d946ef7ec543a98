// Package state holds the mutable state of a run.
package state

import (
	"time"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/minigame"
)

// Phase is the state of the player's move transition.
type Phase int

const (
	Idle Phase = iota
	Moving
)

// Transition animates the player from one tile centre to the next.
// It replaces a completion callback with an explicit Idle/Moving machine.
type Transition struct {
	Phase    Phase
	From     world.Position
	To       world.Position
	Duration time.Duration
	Elapsed  time.Duration
	Noise    minigame.NoiseLevel
}

// IsPlaying reports whether a move is in progress.
func (t *Transition) IsPlaying() bool {
	return t.Phase == Moving
}

// Begin starts a move. It returns false if one is already playing.
func (t *Transition) Begin(from, to world.Position, d time.Duration, noise minigame.NoiseLevel) bool {
	if t.IsPlaying() {
		return false
	}
	*t = Transition{Phase: Moving, From: from, To: to, Duration: d, Noise: noise}
	return true
}

// Progress returns how far along the move is, in [0, 1].
func (t *Transition) Progress() float64 {
	if !t.IsPlaying() || t.Duration <= 0 {
		return 0
	}
	p := float64(t.Elapsed) / float64(t.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// Retime changes the duration while keeping the current progress.
func (t *Transition) Retime(d time.Duration, noise minigame.NoiseLevel) {
	if !t.IsPlaying() {
		return
	}
	p := t.Progress()
	t.Duration = d
	t.Elapsed = time.Duration(p * float64(d))
	t.Noise = noise
}

// Advance moves the transition forward by dt. It returns true exactly once,
// on the tick the move completes, and the transition is then Idle again.
func (t *Transition) Advance(dt time.Duration) (completed bool) {
	if !t.IsPlaying() {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return false
	}
	t.Phase = Idle
	t.Elapsed = t.Duration
	return true
}

// Remaining returns the time left before completion.
func (t *Transition) Remaining() time.Duration {
	if !t.IsPlaying() {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Interpolate returns the fractional cell position of the mover.
func (t *Transition) Interpolate() (x, y float64) {
	p := t.Progress()
	return float64(t.From.X) + float64(t.To.X-t.From.X)*p,
		float64(t.From.Y) + float64(t.To.Y-t.From.Y)*p
}
