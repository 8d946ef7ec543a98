package gameplay

import (
	"context"
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"labyrinth/locales"
	"labyrinth/pkg/engine/logger"
	"labyrinth/pkg/game/entities"
	"labyrinth/pkg/game/state"
)

// SearchRoom searches the tile the player stands on. Only the first search
// of a tile can find anything: the diamond is always found, other treasure
// only on a successful roll against the find probability.
func SearchRoom(ctx context.Context, g *state.Game) {
	if g.IsOver() || g.Move.IsPlaying() {
		return
	}

	_, span := tracer.Start(ctx, "gameplay.search_room")
	defer span.End()

	pos := g.Player.Position
	tile := g.Map.TileAt(pos)
	span.SetAttributes(attribute.String("tile", pos.String()))

	if tile.Searched {
		logger.Log.WithField("tile", pos.String()).Debug("Already searched")
		logMessage(g, gotext.Get("ALREADY_SEARCHED"))
		span.SetAttributes(attribute.Bool("search.repeat", true))
		return
	}
	tile.Searched = true

	found := g.Rand.Float64() >= g.Settings.ProbFindTreasure

	var treasure entities.Treasure
	switch {
	case g.Map.HasDiamond(pos):
		treasure = entities.HeartOfTheMinotaur
	case g.Map.HasTreasure(pos) && found:
		treasure = entities.RandomTreasure(g.Rand)
	default:
		logMessage(g, gotext.Get("NOTHING_FOUND"))
		return
	}

	g.Map.RemoveTreasureAt(pos)
	g.CollectTreasure(treasure)
	span.SetAttributes(
		attribute.String("treasure.name", treasure.Name),
		attribute.Int("treasure.value", treasure.Value),
	)
	logger.Log.WithFields(logrus.Fields{
		"tile":     pos.String(),
		"treasure": treasure.Name,
		"value":    treasure.Value,
	}).Info("Treasure found")
	logMessage(g, fmt.Sprintf(gotext.Get("FOUND_TREASURE"), locales.Text(treasure.Name), treasure.Value))
}
