package gameplay

import (
	"context"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"labyrinth/pkg/engine/logger"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/entities"
	"labyrinth/pkg/game/minigame"
	"labyrinth/pkg/game/state"
)

// TryMovePlayer validates a move one tile in dir and, if allowed, starts the
// move transition and the stealth mini-game. Input while a move is playing
// is ignored.
func TryMovePlayer(ctx context.Context, g *state.Game, dir world.Direction) {
	if g.IsOver() || g.Move.IsPlaying() {
		return
	}

	from := g.Player.Position
	step := from.Step(dir, 1)

	if g.Map.IsExiting(from, step) {
		EndRun(ctx, g, state.Escaped)
		return
	}

	if !g.Map.IsMoveValid(from, step) {
		logger.Log.WithFields(logrus.Fields{
			"from":      from.String(),
			"direction": dir.String(),
		}).Debug("Move rejected")
		return
	}

	dest := from.Step(dir, config.CellPerTile)
	noise := g.Minigame.NoiseLevel()
	g.Move.Begin(from, dest, g.MoveDuration(noise), noise)
	g.Minigame.Start()
}

// PerformAction stops the mini-game while a move is playing and retimes the
// move: quiet moves are slow, loud ones fast.
func PerformAction(g *state.Game) {
	if !g.Minigame.Active() || !g.Move.IsPlaying() {
		return
	}

	level := minigame.Loud
	if g.Minigame.Stop() {
		level = minigame.Quiet
	}
	g.Move.Retime(g.MoveDuration(level), level)

	if level == minigame.Quiet {
		logMessage(g, gotext.Get("MOVED_QUIETLY"))
	} else {
		logMessage(g, gotext.Get("MOVED_LOUDLY"))
	}
}

// Update advances the mini-game and the move transition by dt. When the move
// completes the player lands on the new tile.
func Update(ctx context.Context, g *state.Game, dt time.Duration) {
	if g.IsOver() {
		return
	}

	g.Minigame.Update(dt)
	if !g.Move.Advance(dt) {
		return
	}

	// The player never locked the marker; it resolves where it stands.
	if g.Minigame.Active() {
		level := minigame.Loud
		if g.Minigame.Stop() {
			level = minigame.Quiet
		}
		g.Move.Noise = level
	}

	completeMove(ctx, g)
}

// FinishMove runs the current move to completion.
func FinishMove(ctx context.Context, g *state.Game) {
	if g.Move.IsPlaying() {
		Update(ctx, g, g.Move.Remaining())
	}
}

func completeMove(ctx context.Context, g *state.Game) {
	_, span := tracer.Start(ctx, "gameplay.move", trace.WithAttributes(
		attribute.String("move.from", g.Move.From.String()),
		attribute.String("move.to", g.Move.To.String()),
		attribute.String("move.noise", g.Move.Noise.String()),
	))
	defer span.End()

	g.Player.SetTilePosition(g.Move.To)
	PlayerMoved(g, g.Move.To)

	if g.Minotaur.Position == g.Player.Position {
		EndRun(ctx, g, state.Caught)
		return
	}

	if g.Move.Noise == minigame.Loud {
		huntStep(ctx, g)
	}
}

// PlayerMoved updates the trail, the memory window and tile visibility for
// the player arriving at pos.
func PlayerMoved(g *state.Game, pos world.Position) {
	if prev, ok := g.History.Last(); ok && prev != pos {
		g.Map.FadeFromMemory(prev, false)
	}
	g.Map.PlayerEnteredTile(pos)

	g.History.Push(pos)

	if forgotten, ok := g.Memory.Visit(pos); ok {
		g.Map.FadeFromMemory(forgotten, true)
	}
}

// huntStep moves the minotaur one tile toward the player after a loud move.
func huntStep(ctx context.Context, g *state.Game) {
	next, ok := entities.NextStep(g.Map, g.Minotaur.Position, g.Player.Position)
	if !ok {
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"from": g.Minotaur.Position.String(),
		"to":   next.String(),
	}).Debug("Minotaur moves")

	g.Minotaur.SetTilePosition(next)
	logMessage(g, gotext.Get("MINOTAUR_STIRS"))

	if next == g.Player.Position {
		EndRun(ctx, g, state.Caught)
	}
}
