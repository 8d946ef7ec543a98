package input

import "testing"

func TestIntentFor(t *testing.T) {
	tests := []struct {
		device Device
		code   string
		want   Action
	}{
		{DeviceKeyboard, "arrow_up", ActionMoveNorth},
		{DeviceKeyboard, "k", ActionMoveNorth},
		{DeviceKeyboard, "arrow_down", ActionMoveSouth},
		{DeviceKeyboard, "h", ActionMoveWest},
		{DeviceKeyboard, "arrow_right", ActionMoveEast},
		{DeviceKeyboard, "space", ActionStop},
		{DeviceTerminal, "enter", ActionStop},
		{DevicePointer, "pointer_up", ActionSearch},
		{DeviceKeyboard, "f", ActionSearch},
		{DeviceKeyboard, "f12", ActionDebugMapDump},
		{DeviceKeyboard, "escape", ActionQuit},
		{DeviceGamepad, "gamepad_dpad_left", ActionMoveWest},
		{DeviceKeyboard, "z", ActionNone},
		{DeviceKeyboard, "", ActionNone},
	}
	for _, tt := range tests {
		if got := IntentFor(tt.device, tt.code).Action; got != tt.want {
			t.Errorf("IntentFor(%v, %q) = %v, want %v", tt.device, tt.code, ActionName(got), ActionName(tt.want))
		}
	}
}

func TestAction_IsMove(t *testing.T) {
	for _, a := range []Action{ActionMoveNorth, ActionMoveSouth, ActionMoveEast, ActionMoveWest} {
		if !a.IsMove() {
			t.Errorf("%s.IsMove() = false, want true", ActionName(a))
		}
	}
	for _, a := range []Action{ActionNone, ActionStop, ActionSearch, ActionQuit} {
		if a.IsMove() {
			t.Errorf("%s.IsMove() = true, want false", ActionName(a))
		}
	}
}

func TestGetBindingsByAction(t *testing.T) {
	byAction := GetBindingsByAction()
	codes := byAction[ActionSearch]
	found := false
	for _, c := range codes {
		if c == "pointer_up" {
			found = true
		}
	}
	if !found {
		t.Errorf("GetBindingsByAction()[ActionSearch] = %v, want it to include pointer_up", codes)
	}
}

func TestCodeForByte(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{' ', "space"},
		{'\r', "enter"},
		{'K', "k"},
		{'q', "q"},
		{0x01, ""},
	}
	for _, tt := range tests {
		if got := codeForByte(tt.b); got != tt.want {
			t.Errorf("codeForByte(%q) = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"lone escape", []byte{0x1b}, "escape"},
		{"alt key", []byte{0x1b, 'x'}, "escape"},
		{"arrow up", []byte("\x1b[A"), "arrow_up"},
		{"arrow left ss3", []byte("\x1bOD"), "arrow_left"},
		{"f12", []byte("\x1b[24~"), "f12"},
		{"unbound sequence", []byte("\x1b[15~"), ""},
		{"truncated csi", []byte("\x1b["), ""},
		{"ctrl c", []byte{3}, "q"},
		{"letter", []byte("F"), "f"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeKey(tt.in); got != tt.want {
				t.Errorf("decodeKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
