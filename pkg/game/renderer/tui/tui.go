package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/logger"
	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/gameplay"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 9
	ViewportMinCols = 21
	// Lines needed outside viewport:
	// - Map name + blank (2)
	// - Status + mini-game + blank (3)
	// - Messages pane (header + 5 messages + footer = 7)
	// - Help line (1)
	ViewportTopMargin = 13
)

// frameInterval is how often the terminal advances a playing move.
const frameInterval = 50 * time.Millisecond

// key is one decoded key press from the reader goroutine.
type key struct {
	code string
	err  error
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall       color.Style
	colorFloor      color.Style
	colorRemembered color.Style
	colorExit       color.Style
	colorTreasure   color.Style
	colorDiamond    color.Style
	colorPlayer     color.Style
	colorMinotaur   color.Style
	colorSubtle     color.Style
	colorDenied     color.Style
	colorAction     color.Style

	keys chan key
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgWhite}
	t.colorRemembered = color.Style{color.FgDarkGray}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorTreasure = color.Style{color.FgYellow, color.OpBold}
	t.colorDiamond = color.Style{color.FgCyan, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorMinotaur = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
}

// Clear clears the terminal screen and homes the cursor
func (t *TUIRenderer) Clear() {
	fmt.Print("\033[H\033[2J")
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleRemembered:
		return t.colorRemembered.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleTreasure:
		return t.colorTreasure.Sprint(text)
	case renderer.StyleDiamond:
		return t.colorDiamond.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleMinotaur:
		return t.colorMinotaur.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	default:
		return text
	}
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - 4
	rows = termHeight - ViewportTopMargin

	// Ensure minimum size
	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	// Keep rows odd for centering
	if rows%2 == 0 {
		rows--
	}
	// Keep cols odd for centering
	if cols%2 == 0 {
		cols--
	}

	return rows, cols
}

// Run drives the game from the terminal. Keys arrive from a reader goroutine;
// a ticker advances a playing move so the mini-game marker sweeps.
func (t *TUIRenderer) Run(ctx context.Context, g *state.Game) error {
	restore, err := input.MakeRaw()
	if err != nil {
		return err
	}
	defer restore()

	t.startKeyReader()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	t.redraw(g)
	for !g.QuitRequested {
		if g.PlayAgain {
			next, err := gameplay.Rebuild(ctx, g)
			if err != nil {
				return err
			}
			g = next
			t.redraw(g)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case k := <-t.keys:
			if k.err != nil {
				return fmt.Errorf("read key: %w", k.err)
			}
			gameplay.ProcessIntent(ctx, g, input.IntentFor(input.DeviceTerminal, k.code))
			t.redraw(g)

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if g.Move.IsPlaying() {
				gameplay.Update(ctx, g, dt)
				t.redraw(g)
			}
		}
	}
	return nil
}

// startKeyReader starts the goroutine that reads keys for the renderer's
// lifetime. Later runs share it.
func (t *TUIRenderer) startKeyReader() {
	if t.keys != nil {
		return
	}
	t.keys = make(chan key)
	go func() {
		for {
			code, err := input.ReadRawKey()
			t.keys <- key{code: code, err: err}
			if err != nil {
				logger.Log.WithError(err).Debug("Key reader stopped")
				return
			}
		}
	}()
}

// redraw clears the screen and renders a frame. In raw mode every line
// needs an explicit carriage return.
func (t *TUIRenderer) redraw(g *state.Game) {
	var b strings.Builder
	b.WriteString("\033[H\033[2J")
	t.writeFrame(&b, g)
	fmt.Fprint(os.Stdout, strings.ReplaceAll(b.String(), "\n", "\r\n"))
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	var b strings.Builder
	t.writeFrame(&b, g)
	fmt.Print(b.String())
}

func (t *TUIRenderer) writeFrame(b *strings.Builder, g *state.Game) {
	if g.IsOver() {
		t.writeScore(b, g)
		return
	}

	fmt.Fprintf(b, "%s\n\n", t.colorAction.Sprint(g.Map.Name))

	t.writeMap(b, g)

	fmt.Fprintln(b)
	fmt.Fprintln(b, t.colorSubtle.Sprint(renderer.StatusLine(g)))
	if g.Minigame.Active() {
		fmt.Fprintf(b, "[%s]\n", renderer.MinigameBar(g, 40))
	} else {
		fmt.Fprintln(b)
	}

	t.writeMessagesPane(b, g)
	fmt.Fprintln(b, t.colorSubtle.Sprint(renderer.HelpLine()))
}

// writeMap renders the viewport centred on the player.
func (t *TUIRenderer) writeMap(b *strings.Builder, g *state.Game) {
	termWidth, _ := terminal.GetSize()
	viewportRows, viewportCols := t.GetViewportSize()
	if viewportCols > g.Map.Width() {
		viewportCols = g.Map.Width()
	}
	if viewportRows > g.Map.Height() {
		viewportRows = g.Map.Height()
	}

	indent := (termWidth - viewportCols) / 2
	if indent < 0 {
		indent = 0
	}
	pad := strings.Repeat(" ", indent)

	startX := g.Player.Position.X - viewportCols/2
	startY := g.Player.Position.Y - viewportRows/2

	for vy := 0; vy < viewportRows; vy++ {
		b.WriteString(pad)
		for vx := 0; vx < viewportCols; vx++ {
			pos := world.Pos(startX+vx, startY+vy)
			if pos.X < 0 || pos.Y < 0 || pos.X >= g.Map.Width() || pos.Y >= g.Map.Height() {
				b.WriteString(renderer.IconVoid)
				continue
			}
			icon, style := renderer.CellGlyph(g, pos)
			b.WriteString(t.StyleText(icon, style))
		}
		b.WriteByte('\n')
	}
}

// writeMessagesPane renders the messages log pane
func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, g *state.Game) {
	width, _ := terminal.GetSize()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rest := width - sideLen - labelLen
	if rest < 1 {
		rest = 1
	}

	fmt.Fprintln(b)
	fmt.Fprintln(b, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rest)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(b, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(b, "  %s\n", msg)
		}
	}

	fmt.Fprintln(b, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// writeScore renders the score screen.
func (t *TUIRenderer) writeScore(b *strings.Builder, g *state.Game) {
	lines := renderer.ScoreLines(g)
	headline := t.colorAction
	if g.Outcome == state.Caught {
		headline = t.colorDenied
	}

	fmt.Fprintln(b)
	for i, line := range lines {
		if i == 0 {
			line = headline.Sprint(line)
		}
		fmt.Fprintf(b, "  %s\n", line)
	}
}
