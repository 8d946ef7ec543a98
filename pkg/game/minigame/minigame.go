// Package minigame implements the stealth timing game played during a move.
// A marker sweeps back and forth across a bar; stopping it inside the quiet
// zone makes the move quiet, anywhere else makes it loud.
package minigame

import (
	"math"
	"math/rand"
	"time"
)

// NoiseLevel classifies how much noise a move made.
type NoiseLevel int

const (
	Quiet NoiseLevel = iota
	Loud
)

// String returns the string representation of a noise level
func (n NoiseLevel) String() string {
	if n == Quiet {
		return "Quiet"
	}
	return "Loud"
}

// MoveDuration picks the move duration matching the noise level.
func (n NoiseLevel) MoveDuration(quiet, loud time.Duration) time.Duration {
	if n == Quiet {
		return quiet
	}
	return loud
}

// MoveMinigame is the marker-and-zone timing game.
type MoveMinigame struct {
	period    time.Duration
	zoneWidth float64
	rng       *rand.Rand

	active    bool
	elapsed   time.Duration
	phase     float64
	zoneStart float64

	level NoiseLevel
}

// New creates an idle mini-game. period is one full sweep there and back;
// zoneWidth is the fraction of the bar that counts as quiet.
func New(period time.Duration, zoneWidth float64, rng *rand.Rand) *MoveMinigame {
	if zoneWidth <= 0 || zoneWidth > 1 {
		zoneWidth = 0.25
	}
	return &MoveMinigame{
		period:    period,
		zoneWidth: zoneWidth,
		rng:       rng,
		level:     Quiet,
	}
}

// Start shows the bar: a new quiet zone is placed and the marker starts at
// a random point of its sweep.
func (m *MoveMinigame) Start() {
	m.active = true
	m.elapsed = 0
	m.phase = m.rng.Float64()
	m.zoneStart = m.rng.Float64() * (1 - m.zoneWidth)
}

// Update advances the marker by dt. Has no effect while idle.
func (m *MoveMinigame) Update(dt time.Duration) {
	if !m.active {
		return
	}
	m.elapsed += dt
}

// Active reports whether the bar is showing and the marker is moving.
func (m *MoveMinigame) Active() bool {
	return m.active
}

// Marker returns the marker position in [0, 1].
func (m *MoveMinigame) Marker() float64 {
	cycles := m.phase
	if m.period > 0 {
		cycles += float64(m.elapsed) / float64(m.period)
	}
	frac := cycles - math.Floor(cycles)
	return 1 - math.Abs(2*frac-1)
}

// Zone returns the quiet zone bounds in [0, 1].
func (m *MoveMinigame) Zone() (start, end float64) {
	return m.zoneStart, m.zoneStart + m.zoneWidth
}

// NoiseLevel returns the most recently resolved noise level, Quiet until
// the first stop.
func (m *MoveMinigame) NoiseLevel() NoiseLevel {
	return m.level
}

// Stop freezes the marker and resolves the noise level. It returns true if
// the move was quiet. Stopping an idle game returns the last result.
func (m *MoveMinigame) Stop() bool {
	if !m.active {
		return m.level == Quiet
	}
	m.active = false

	pos := m.Marker()
	start, end := m.Zone()
	if pos >= start && pos <= end {
		m.level = Quiet
	} else {
		m.level = Loud
	}
	return m.level == Quiet
}
