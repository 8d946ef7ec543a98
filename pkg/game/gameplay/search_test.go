package gameplay

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"labyrinth/locales"
	engineinput "labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/entities"
	"labyrinth/pkg/game/state"
)

func TestSearchRoom_Diamond(t *testing.T) {
	s := config.Defaults()
	s.ProbFindTreasure = 1 // no roll can succeed; the diamond is found anyway
	g := newTestGame(t, s)
	ctx := context.Background()
	g.Player.SetTilePosition(diamondTile)

	SearchRoom(ctx, g)

	if len(g.Treasures) != 1 || g.Treasures[0] != entities.HeartOfTheMinotaur {
		t.Fatalf("Treasures = %v, want the heart", g.Treasures)
	}
	if g.Map.HasDiamond(diamondTile) {
		t.Error("HasDiamond() after search = true, want false")
	}
	if got, want := lastMessage(t, g), "You found the Heart of the Minotaur (500)!"; got != want {
		t.Errorf("last message = %q, want %q", got, want)
	}

	SearchRoom(ctx, g)
	if len(g.Treasures) != 1 {
		t.Errorf("len(Treasures) after a repeat search = %d, want 1", len(g.Treasures))
	}
	if got, want := lastMessage(t, g), "You have already searched this room."; got != want {
		t.Errorf("last message = %q, want %q", got, want)
	}
}

func TestSearchRoom_TreasureRoll(t *testing.T) {
	tests := []struct {
		name      string
		prob      float64
		wantFound bool
	}{
		{"always found", 0, true},
		{"never found", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.Defaults()
			s.ProbFindTreasure = tt.prob
			g := newTestGame(t, s)
			ctx := context.Background()
			g.Player.SetTilePosition(treasure)

			SearchRoom(ctx, g)

			if got := len(g.Treasures) == 1; got != tt.wantFound {
				t.Errorf("found = %v, want %v (treasures %v)", got, tt.wantFound, g.Treasures)
			}
			if got := g.Map.HasTreasure(treasure); got == tt.wantFound {
				t.Errorf("HasTreasure() = %v after search, want %v", got, !tt.wantFound)
			}
			if !g.Map.TileAt(treasure).Searched {
				t.Error("TileAt().Searched = false, want true")
			}
			if tt.wantFound {
				want := fmt.Sprintf("You found %s (%d)!", locales.Text(g.Treasures[0].Name), g.Treasures[0].Value)
				if got := lastMessage(t, g); got != want {
					t.Errorf("last message = %q, want %q", got, want)
				}
			}

			// A second search never rolls again
			SearchRoom(ctx, g)
			if got := len(g.Treasures) == 1; got != tt.wantFound {
				t.Errorf("found after repeat search = %v, want %v", got, tt.wantFound)
			}
		})
	}
}

func TestSearchRoom_EmptyRoom(t *testing.T) {
	g := newTestGame(t, nil)

	SearchRoom(context.Background(), g)

	if len(g.Treasures) != 0 {
		t.Errorf("Treasures = %v, want none", g.Treasures)
	}
	if got, want := lastMessage(t, g), "You search the room but find nothing."; got != want {
		t.Errorf("last message = %q, want %q", got, want)
	}
}

func TestSearchRoom_IgnoredWhileMoving(t *testing.T) {
	g := newTestGame(t, nil)
	ctx := context.Background()

	TryMovePlayer(ctx, g, world.North)
	SearchRoom(ctx, g)

	if g.Map.TileAt(centre).Searched {
		t.Error("TileAt().Searched = true after searching mid-move, want false")
	}
}

func TestProcessIntent_Moves(t *testing.T) {
	tests := []struct {
		action engineinput.Action
		want   world.Position
	}{
		{engineinput.ActionMoveNorth, world.Pos(4, 1)},
		{engineinput.ActionMoveEast, world.Pos(7, 4)},
		{engineinput.ActionMoveWest, world.Pos(1, 4)},
	}
	for _, tt := range tests {
		t.Run(engineinput.ActionName(tt.action), func(t *testing.T) {
			g := newTestGame(t, nil)
			ProcessIntent(context.Background(), g, engineinput.Intent{Action: tt.action})
			if g.Move.To != tt.want {
				t.Errorf("Move.To = %v, want %v", g.Move.To, tt.want)
			}
		})
	}
}

func TestProcessIntent_Quit(t *testing.T) {
	g := newTestGame(t, nil)
	ProcessIntent(context.Background(), g, engineinput.IntentFor(engineinput.DeviceTerminal, "q"))
	if !g.QuitRequested {
		t.Error("QuitRequested = false, want true")
	}
}

func TestProcessIntent_Unknown(t *testing.T) {
	g := newTestGame(t, nil)
	ProcessIntent(context.Background(), g, engineinput.Intent{Action: engineinput.ActionPlayAgain})
	if got, want := lastMessage(t, g), "Nothing happens."; got != want {
		t.Errorf("last message = %q, want %q", got, want)
	}
	if g.PlayAgain {
		t.Error("PlayAgain = true during a run, want false")
	}
}

func TestProcessIntent_ScoreScreen(t *testing.T) {
	tests := []struct {
		name          string
		action        engineinput.Action
		wantPlayAgain bool
		wantQuit      bool
	}{
		{"play again", engineinput.ActionPlayAgain, true, false},
		{"pointer", engineinput.ActionSearch, true, false},
		{"quit", engineinput.ActionQuit, false, true},
		{"move ignored", engineinput.ActionMoveNorth, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			EndRun(context.Background(), g, state.Caught)

			ProcessIntent(context.Background(), g, engineinput.Intent{Action: tt.action})

			if g.PlayAgain != tt.wantPlayAgain {
				t.Errorf("PlayAgain = %v, want %v", g.PlayAgain, tt.wantPlayAgain)
			}
			if g.QuitRequested != tt.wantQuit {
				t.Errorf("QuitRequested = %v, want %v", g.QuitRequested, tt.wantQuit)
			}
		})
	}
}

func TestProcessIntent_MapDump(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	g := newTestGame(t, nil)

	ProcessIntent(context.Background(), g, engineinput.Intent{Action: engineinput.ActionDebugMapDump})

	if _, err := os.Stat(filepath.Join(dir, "map.txt")); err != nil {
		t.Fatalf("map.txt not written: %v", err)
	}
	got := lastMessage(t, g)
	if !strings.HasPrefix(got, "Map dumped to ") || !strings.HasSuffix(got, "map.txt") {
		t.Errorf("last message = %q, want \"Map dumped to <path>/map.txt\"", got)
	}
}

func TestBuildGame(t *testing.T) {
	ctx := context.Background()
	g, err := BuildGame(ctx, config.Defaults(), 2, 42)
	if err != nil {
		t.Fatalf("BuildGame() error = %v", err)
	}
	if g.Variant != 2 || g.Seed != 42 {
		t.Errorf("Variant, Seed = %d, %d, want 2, 42", g.Variant, g.Seed)
	}
	if v := g.Map.VisibilityAt(g.Player.Position); v != world.Visible {
		t.Errorf("VisibilityAt(player) = %v, want Visible", v)
	}
	if g.IsOver() {
		t.Error("IsOver() on a new run = true, want false")
	}

	next, err := Rebuild(ctx, g)
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if next.RunID == g.RunID {
		t.Error("Rebuild() reused the run id")
	}
	if next.Settings != g.Settings {
		t.Error("Rebuild() dropped the settings")
	}

	if _, err := BuildGame(ctx, config.Defaults(), 99, 1); err == nil {
		t.Error("BuildGame() with an unknown variant error = nil, want error")
	}
}
