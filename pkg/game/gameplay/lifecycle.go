// Package gameplay provides the game scene: input handling, move validation,
// the stealth mini-game, memory updates and room searches.
package gameplay

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"labyrinth/pkg/engine/logger"
	"labyrinth/pkg/engine/telemetry"
	"labyrinth/pkg/game/assets"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/state"
	gameworld "labyrinth/pkg/game/world"
)

var tracer = telemetry.Tracer("gameplay")

// BuildGame creates a new run. variant is the 1-based map variant, or 0 for
// a random one; a seed of 0 seeds from the clock.
func BuildGame(ctx context.Context, settings *config.Settings, variant int, seed int64) (*state.Game, error) {
	_, span := tracer.Start(ctx, "gameplay.build_game")
	defer span.End()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	v, index, err := assets.Load(variant, rng)
	if err != nil {
		return nil, fmt.Errorf("load map variant: %w", err)
	}
	grid, err := v.Build()
	if err != nil {
		return nil, fmt.Errorf("build map variant: %w", err)
	}

	g := state.NewGame(settings, gameworld.NewMap(v.Name, grid), index, v.Player.Position(), v.Minotaur.Position(), rng)
	g.Seed = seed

	span.SetAttributes(
		attribute.String("run.id", g.RunID.String()),
		attribute.String("map.name", v.Name),
		attribute.Int64("run.seed", seed),
	)
	logger.Log.WithFields(logrus.Fields{
		"run":  g.RunID.String(),
		"map":  v.Name,
		"seed": seed,
	}).Info("Run started")

	PlayerMoved(g, g.Player.Position)

	g.ClearMessages()
	logMessage(g, gotext.Get("WELCOME"))
	return g, nil
}

// Rebuild starts a fresh run with the same settings and a random variant,
// as the score screen's play-again does.
func Rebuild(ctx context.Context, g *state.Game) (*state.Game, error) {
	return BuildGame(ctx, g.Settings, 0, 0)
}

// EndRun finishes the run with the given outcome.
func EndRun(ctx context.Context, g *state.Game, outcome state.Outcome) {
	if g.IsOver() {
		return
	}
	g.Outcome = outcome

	payload := g.ScorePayload()
	_, span := tracer.Start(ctx, "gameplay.end_run", trace.WithAttributes(
		attribute.String("run.id", g.RunID.String()),
		attribute.Bool("run.alive", payload.Alive),
		attribute.Int("run.treasures", len(payload.Treasures)),
	))
	defer span.End()

	logger.Log.WithFields(logrus.Fields{
		"run":       g.RunID.String(),
		"alive":     payload.Alive,
		"treasures": len(payload.Treasures),
	}).Info("Run ended")

	if outcome == state.Escaped {
		logMessage(g, gotext.Get("ESCAPED"))
	} else {
		logMessage(g, gotext.Get("DEATH"))
	}
}

// logMessage adds a message to the game's message log
func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
