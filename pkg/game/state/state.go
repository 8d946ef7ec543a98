package state

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/entities"
	"labyrinth/pkg/game/memory"
	"labyrinth/pkg/game/minigame"
	"labyrinth/pkg/game/score"
	gameworld "labyrinth/pkg/game/world"
)

// Outcome is how a run stands.
type Outcome int

const (
	Playing Outcome = iota
	Escaped
	Caught
)

// Game represents the state of one run through the labyrinth
type Game struct {
	RunID    uuid.UUID
	Settings *config.Settings
	Rand     *rand.Rand

	Map     *gameworld.Map
	Variant int
	Seed    int64

	Player   *entities.Actor
	Minotaur *entities.Actor

	Minigame *minigame.MoveMinigame
	Move     Transition

	History *memory.History
	Memory  *memory.Window

	Treasures []entities.Treasure

	Messages []string

	Outcome Outcome

	// QuitRequested is set by the quit intent; the renderer loop exits on it.
	QuitRequested bool

	// PlayAgain is set from the score screen; the renderer loop rebuilds the run.
	PlayAgain bool
}

// NewGame creates a run on m with the actors at their spawn tiles.
func NewGame(settings *config.Settings, m *gameworld.Map, variant int, playerPos, minotaurPos world.Position, rng *rand.Rand) *Game {
	return &Game{
		RunID:    uuid.New(),
		Settings: settings,
		Rand:     rng,
		Map:      m,
		Variant:  variant,
		Player:   entities.NewPlayer(playerPos),
		Minotaur: entities.NewMinotaur(minotaurPos),
		Minigame: minigame.New(settings.MinigamePeriod, settings.QuietZoneWidth, rng),
		History:  memory.NewHistory(config.HistoryLength),
		Memory:   memory.NewWindow(settings.MemoryForgot),
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// CollectTreasure adds a treasure to the haul
func (g *Game) CollectTreasure(t entities.Treasure) {
	g.Treasures = append(g.Treasures, t)
}

// IsOver returns true once the player has escaped or been caught
func (g *Game) IsOver() bool {
	return g.Outcome != Playing
}

// ScorePayload returns the score-screen payload for the run.
func (g *Game) ScorePayload() score.Payload {
	return score.Payload{
		Treasures: append([]entities.Treasure(nil), g.Treasures...),
		Alive:     g.Outcome != Caught,
	}
}

// MoveDuration returns the move duration for a noise level under the current settings.
func (g *Game) MoveDuration(level minigame.NoiseLevel) time.Duration {
	return level.MoveDuration(g.Settings.MoveTimeQuiet, g.Settings.MoveTimeLoud)
}
