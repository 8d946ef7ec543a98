package state

import (
	"testing"
	"time"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/minigame"
)

func TestTransition_Begin(t *testing.T) {
	var tr Transition
	from, to := world.Pos(4, 4), world.Pos(4, 1)

	if !tr.Begin(from, to, 800*time.Millisecond, minigame.Quiet) {
		t.Fatal("Begin() on idle transition = false, want true")
	}
	if !tr.IsPlaying() {
		t.Error("IsPlaying() after Begin = false, want true")
	}
	if tr.Begin(to, from, time.Second, minigame.Loud) {
		t.Error("Begin() while playing = true, want false")
	}
	if tr.To != to {
		t.Errorf("To = %v after rejected Begin, want %v", tr.To, to)
	}
}

func TestTransition_RetimeKeepsProgress(t *testing.T) {
	var tr Transition
	tr.Begin(world.Pos(1, 1), world.Pos(4, 1), 800*time.Millisecond, minigame.Quiet)
	tr.Advance(400 * time.Millisecond)

	tr.Retime(500*time.Millisecond, minigame.Loud)

	if got := tr.Progress(); got != 0.5 {
		t.Errorf("Progress() after Retime = %v, want 0.5", got)
	}
	if got := tr.Remaining(); got != 250*time.Millisecond {
		t.Errorf("Remaining() after Retime = %v, want 250ms", got)
	}
	if tr.Noise != minigame.Loud {
		t.Errorf("Noise = %v, want Loud", tr.Noise)
	}
}

func TestTransition_AdvanceCompletesOnce(t *testing.T) {
	var tr Transition
	tr.Begin(world.Pos(1, 1), world.Pos(4, 1), 500*time.Millisecond, minigame.Loud)

	if tr.Advance(499 * time.Millisecond) {
		t.Fatal("Advance() before the end = true, want false")
	}
	if !tr.Advance(10 * time.Millisecond) {
		t.Fatal("Advance() past the end = false, want true")
	}
	if tr.IsPlaying() {
		t.Error("IsPlaying() after completion = true, want false")
	}
	if tr.Advance(time.Second) {
		t.Error("Advance() after completion = true, want false")
	}
}

func TestTransition_Interpolate(t *testing.T) {
	var tr Transition
	tr.Begin(world.Pos(1, 4), world.Pos(4, 4), time.Second, minigame.Quiet)

	tests := []struct {
		elapsed time.Duration
		wantX   float64
	}{
		{0, 1},
		{500 * time.Millisecond, 2.5},
		{250 * time.Millisecond, 3.25},
	}
	for _, tt := range tests {
		tr.Advance(tt.elapsed)
		x, y := tr.Interpolate()
		if x != tt.wantX || y != 4 {
			t.Errorf("Interpolate() = (%v, %v), want (%v, 4)", x, y, tt.wantX)
		}
	}
}

func TestTransition_IdleValues(t *testing.T) {
	var tr Transition
	if got := tr.Progress(); got != 0 {
		t.Errorf("Progress() = %v, want 0", got)
	}
	if got := tr.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, want 0", got)
	}
	tr.Retime(time.Second, minigame.Loud)
	if tr.IsPlaying() {
		t.Error("Retime() started an idle transition")
	}
}
