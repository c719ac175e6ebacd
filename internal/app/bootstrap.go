package app

import (
	"context"
	"fmt"

	"bracketctl/internal/config"
	"bracketctl/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application wires configuration, logging and the bracket client together.
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration, applies flag overrides and builds the client.
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(logLevel(cfg, ""), cfg.Err)

	loaded, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to load bracketctl configuration")
		return nil, fmt.Errorf("failed to load bracketctl configuration: %w", err)
	}

	loaded.Service = cfg.Overrides.apply(loaded.Service)
	if cfg.Madness != nil {
		m := *cfg.Madness
		loaded.UI.DefaultMadness = &m
	}
	if err := loaded.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.BracketctlConfig = &loaded
	cfg.Debug = cfg.Debug || loaded.UI.Debug

	// Re-init now that the configured level is known.
	logging.InitForCLI(logLevel(cfg, loaded.UI.LogLevel), cfg.Err)
	logging.Debug(bootstrapSubsystem, "Using bracket service %s%s (param %q, timeout %s)",
		loaded.Service.Endpoint, loaded.Service.Path, loaded.Service.MadnessParam, loaded.Service.Timeout)

	return &Application{
		config:   cfg,
		services: InitializeServices(cfg),
	}, nil
}

// MadnessLevel is the level the application starts with.
func (a *Application) MadnessLevel() int {
	return a.config.BracketctlConfig.UI.Madness()
}

// Generate fetches one bracket and writes it to the configured output.
func (a *Application) Generate(ctx context.Context) error {
	return runGenerate(ctx, a.config, a.services, a.MadnessLevel())
}

// RunTUI starts the interactive bracket view and blocks until it exits.
func (a *Application) RunTUI(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services, a.MadnessLevel())
}

func logLevel(cfg *Config, configured string) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	if configured != "" {
		return logging.ParseLevel(configured)
	}
	return logging.LevelWarn
}
