package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/logger"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/gameplay"
)

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	g := e.game
	if g.QuitRequested {
		return ebiten.Termination
	}
	if e.ctx.Err() != nil {
		return ebiten.Termination
	}

	if g.PlayAgain {
		next, err := gameplay.Rebuild(e.ctx, g)
		if err != nil {
			return fmt.Errorf("rebuild run: %w", err)
		}
		e.RenderFrame(next)
		g = next
	}

	// Handle tile size changes (= to increase, - to decrease, 0 to reset)
	e.handleZoom()

	// Check for gamepad input first, then fall back to keyboard and pointer
	if intent := e.checkGamepadInput(); intent.Action != engineinput.ActionNone {
		gameplay.ProcessIntent(e.ctx, g, intent)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		gameplay.ProcessIntent(e.ctx, g, intent)
	}

	gameplay.Update(e.ctx, g, time.Second/time.Duration(ebiten.TPS()))
	return nil
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setTileSize(config.DefaultTileSize)
	}
}

// setTileSize clamps and applies a tile size and saves it to preferences
func (e *EbitenRenderer) setTileSize(size int) {
	if size < config.MinTileSize {
		size = config.MinTileSize
	}
	if size > config.MaxTileSize {
		size = config.MaxTileSize
	}
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	e.invalidateFontCache()

	if err := config.Current().SetTileSize(size); err != nil {
		logger.Log.WithError(err).Warn("Could not save preferences")
	}
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	now := time.Now().UnixMilli()
	state, exists := e.keyRepeatState[code]

	if !pressed {
		// Key released - clean up state
		if exists {
			delete(e.keyRepeatState, code)
		}
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// checkGamepadInput checks the standard gamepad layout and returns the corresponding Intent.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)

	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		dpad := []struct {
			button ebiten.StandardGamepadButton
			code   string
		}{
			{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
			{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
			{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
			{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
		}
		for _, d := range dpad {
			key := fmt.Sprintf("gamepad_%d_%s", id, d.code)
			if e.shouldRepeatKey(ebiten.IsStandardGamepadButtonPressed(id, d.button), key) {
				return engineinput.IntentFor(engineinput.DeviceGamepad, d.code)
			}
		}

		// Face buttons: A stops the mini-game, X searches, B quits
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			return engineinput.IntentFor(engineinput.DeviceGamepad, "gamepad_a")
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft) {
			return engineinput.IntentFor(engineinput.DeviceGamepad, "gamepad_x")
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight) {
			return engineinput.IntentFor(engineinput.DeviceGamepad, "gamepad_b")
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// movementKeys maps held keys to movement codes, repeated while held.
var movementKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyL, "l"},
}

// pressKeys maps keys to codes that fire once per press.
var pressKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyF, "f"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF12, "f12"},
	{ebiten.KeyR, "r"},
}

// checkInput checks for keyboard and pointer input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range movementKeys {
		if e.shouldRepeatKey(ebiten.IsKeyPressed(k.key), k.code) {
			return engineinput.IntentFor(engineinput.DeviceKeyboard, k.code)
		}
	}

	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			return engineinput.IntentFor(engineinput.DeviceKeyboard, k.code)
		}
	}

	// A click or tap anywhere searches the room
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return engineinput.IntentFor(engineinput.DevicePointer, "pointer_up")
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return engineinput.IntentFor(engineinput.DevicePointer, "pointer_up")
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}
