package app

import (
	"context"
	"errors"
	"fmt"

	"bracketctl/internal/client"
	"bracketctl/internal/tui/controller"
	"bracketctl/internal/tui/design"
	"bracketctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// runGenerate performs a single request and prints the bracket.
func runGenerate(ctx context.Context, cfg *Config, services *Services, madness int) error {
	logging.Info("CLI", "Generating bracket at madness level %d", madness)
	logging.Debug("CLI", "GET %s", services.Client.URL(madness))

	result, err := services.Client.Fetch(ctx, madness)
	if err != nil {
		logging.Error("CLI", err, "Bracket generation failed")
		return errors.New(client.UserMessage(err))
	}
	return WriteResult(cfg.Out, result, cfg.Output)
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, services *Services, madness int) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(lipgloss.HasDarkBackground())

	// Switch logging to channel-based system for TUI integration
	level := logging.LevelInfo
	if cfg.Debug {
		level = logging.LevelDebug
	}
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	logging.Info("TUI-Lifecycle", "Starting bracket view at madness level %d", madness)

	p := controller.NewProgram(services.Client, madness, cfg.Debug, logChan, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running TUI program: %w", err)
	}
	return nil
}
