package gameplay

import (
	"context"
	"fmt"

	"github.com/leonelquinteros/gotext"

	engineinput "labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/devtools"
	"labyrinth/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(ctx context.Context, g *state.Game, intent engineinput.Intent) {
	// Score screen: search (pointer) or play-again restarts, quit quits
	if g.IsOver() {
		switch intent.Action {
		case engineinput.ActionPlayAgain, engineinput.ActionSearch, engineinput.ActionStop:
			g.PlayAgain = true
		case engineinput.ActionQuit:
			g.QuitRequested = true
		}
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		g.QuitRequested = true
		return

	case engineinput.ActionMoveNorth:
		TryMovePlayer(ctx, g, world.North)
		return

	case engineinput.ActionMoveSouth:
		TryMovePlayer(ctx, g, world.South)
		return

	case engineinput.ActionMoveEast:
		TryMovePlayer(ctx, g, world.East)
		return

	case engineinput.ActionMoveWest:
		TryMovePlayer(ctx, g, world.West)
		return

	case engineinput.ActionStop:
		PerformAction(g)
		return

	case engineinput.ActionSearch:
		SearchRoom(ctx, g)
		return

	case engineinput.ActionDebugMapDump:
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			logMessage(g, fmt.Sprintf(gotext.Get("MAP_DUMP_FAILED"), err))
		} else {
			logMessage(g, fmt.Sprintf(gotext.Get("MAP_DUMPED"), path))
		}
		return
	}

	logMessage(g, gotext.Get("UNKNOWN_COMMAND"))
}
