package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// decodeKey turns the bytes of one terminal read into a key code. Terminals
// deliver an escape sequence in a single write, so a read holding only ESC
// is the Esc key itself. Returns "" for input we don't bind.
func decodeKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	switch b[0] {
	case 0x1b:
		return decodeEscape(b[1:])
	case 3:
		// Ctrl+C
		return "q"
	}
	return codeForByte(b[0])
}

// decodeEscape decodes the bytes following ESC.
func decodeEscape(seq []byte) string {
	// Bare ESC, or ESC followed by something that isn't CSI (ESC [) or SS3 (ESC O)
	if len(seq) == 0 || (seq[0] != '[' && seq[0] != 'O') {
		return "escape"
	}
	if len(seq) < 2 {
		return ""
	}

	switch seq[1] {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// F12 arrives as ESC [ 2 4 ~
	if string(seq) == "[24~" {
		return "f12"
	}
	return ""
}

// codeForByte maps a single non-escape byte to a binding code.
func codeForByte(b byte) string {
	switch {
	case b == ' ':
		return "space"
	case b == '\r' || b == '\n':
		return "enter"
	case b >= 'A' && b <= 'Z':
		return string(b + ('a' - 'A'))
	case b >= 33 && b < 127:
		return string(b)
	}
	return ""
}

// MakeRaw puts the terminal into raw mode and returns the function that
// restores it.
func MakeRaw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return func() { term.Restore(fd, oldState) }, nil
}

// ReadRawKey waits for one key press on a terminal already in raw mode and
// returns its binding code. Ctrl+C maps to "q".
func ReadRawKey() (string, error) {
	buf := make([]byte, 16)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}
	return decodeKey(buf[:n]), nil
}
