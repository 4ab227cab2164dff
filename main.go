package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/helix-visualization/internal/config"
	"github.com/iburimskiy/helix-visualization/internal/game"
	"github.com/iburimskiy/helix-visualization/internal/orf"
	"github.com/iburimskiy/helix-visualization/internal/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "helix:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("helix", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	width := fs.Int("width", config.WindowWidth, "window width")
	height := fs.Int("height", config.WindowHeight, "window height")
	soundtrack := fs.String("soundtrack", "", "looping soundtrack (wav, mp3, flac)")
	track := fs.String("orf", "", "ORF track JSON document")
	logLevel := fs.String("log-level", "info", "debug, info, warn or error")
	hud := fs.Bool("hud", true, "show the status line")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	// Flags given explicitly win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "soundtrack":
			cfg.Soundtrack = *soundtrack
		case "orf":
			cfg.ORF = *track
		case "log-level":
			cfg.LogLevel = *logLevel
		case "hud":
			cfg.HUD = *hud
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	game.SetLogger(logger)
	orf.SetLogger(logger)
	render.SetLogger(logger)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Keep animating at the idle preset while the window is in the background.
	ebiten.SetRunnableOnUnfocused(true)

	g := game.New(cfg)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("renderer unavailable: %w", err)
	}
	return nil
}
