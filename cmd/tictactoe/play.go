package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/tictactoe-cli/internal/config"
	"github.com/lox/tictactoe-cli/internal/console"
	"github.com/lox/tictactoe-cli/internal/game"
	"github.com/lox/tictactoe-cli/internal/tui"
)

type PlayCmd struct {
	TUI    bool   `help:"Play in the full-screen terminal UI"`
	Config string `help:"Path to config file" default:"tictactoe.hcl"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	// Game output owns stdout, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.SetLevel(logLevel(cfg.Log.Level, c.Debug))

	logger.Info("starting game",
		"tui", c.TUI,
		"config", c.Config)

	renderer := console.NewRenderer(console.Glyphs{
		X:     cfg.UI.GlyphX,
		O:     cfg.UI.GlyphO,
		Empty: cfg.UI.GlyphEmpty,
	}, cfg.UI.Color)

	if c.TUI {
		return runTUI(renderer, logger)
	}
	return runConsole(renderer, logger)
}

func runConsole(renderer *console.Renderer, logger *log.Logger) error {
	session := console.NewSession(console.SessionOpts{
		In:       os.Stdin,
		Out:      os.Stdout,
		Renderer: renderer,
		Logger:   logger,
	})

	// Running out of input is a normal way to leave the game.
	if err := session.Run(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func runTUI(renderer *console.Renderer, logger *log.Logger) error {
	model := tui.NewTUIModel(game.New(), renderer, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func logLevel(level string, debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}

	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
