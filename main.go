package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"labyrinth/locales"
	"labyrinth/pkg/engine/logger"
	"labyrinth/pkg/engine/telemetry"
	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/gameplay"
	"labyrinth/pkg/game/renderer"
	ebitenrenderer "labyrinth/pkg/game/renderer/ebiten"
	"labyrinth/pkg/game/renderer/tui"
)

func main() {
	rendererName := flag.String("renderer", "ebiten", "renderer to use: ebiten or tui")
	variant := flag.Int("variant", 0, "map variant to play, 1-based (0 picks one at random)")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	configPath := flag.String("config", config.DefaultPath, "preferences file")
	lang := flag.String("lang", locales.DefaultLanguage, "message language")
	flag.Parse()

	// .env is optional; variables may be set directly
	envErr := godotenv.Load()

	logOut, closeLog := logOutput(*rendererName)
	defer closeLog()
	logger.Init(logOut)
	if envErr != nil {
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	if err := locales.Install(*lang); err != nil {
		logger.Log.WithError(err).Warn("Messages will not be translated")
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.SetCurrent(settings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.WithError(err).Warn("Telemetry setup failed, running without tracing")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Log.WithError(err).Warn("Error shutting down telemetry")
				}
			}()
		}
	}

	r, err := newRenderer(*rendererName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	r.Init()

	g, err := gameplay.BuildGame(ctx, settings, *variant, *seed)
	if err != nil {
		logger.Log.WithError(err).Error("Could not build game")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := r.Run(ctx, g); err != nil && ctx.Err() == nil {
		logger.Log.WithError(err).Error("Game error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRenderer selects a renderer backend by name.
func newRenderer(name string) (renderer.Renderer, error) {
	switch name {
	case "ebiten":
		return ebitenrenderer.New(), nil
	case "tui":
		if !terminal.IsInteractive() {
			return nil, fmt.Errorf("the tui renderer needs an interactive terminal")
		}
		return tui.New(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want ebiten or tui)", name)
	}
}

// logOutput picks where logs go. LOG_FILE wins; otherwise the terminal
// renderer owns the screen and logging is discarded.
func logOutput(rendererName string) (io.Writer, func()) {
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			return f, func() { f.Close() }
		}
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}
	if rendererName == "tui" {
		return io.Discard, func() {}
	}
	return os.Stderr, func() {}
}
