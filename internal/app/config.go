package app

import (
	"io"
	"os"
	"time"

	"bracketctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Path to an explicit config file; empty uses the layered lookup.
	ConfigPath string

	// Debug settings
	Debug bool

	// Madness overrides ui.defaultMadness when set.
	Madness *int

	// Output format of the generate command
	Output OutputFormat

	// Flag overrides for the service section
	Overrides ServiceOverrides

	// Version is reported in the User-Agent header.
	Version string

	Out io.Writer
	Err io.Writer

	// Loaded configuration, populated by NewApplication
	BracketctlConfig *config.BracketctlConfig
}

// ServiceOverrides are service settings given on the command line.
// Empty values leave the loaded configuration untouched.
type ServiceOverrides struct {
	Endpoint     string
	MadnessParam string
	Timeout      *time.Duration
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		Debug:      debug,
		Output:     OutputText,
		Out:        os.Stdout,
		Err:        os.Stderr,
	}
}

func (o ServiceOverrides) apply(svc config.ServiceConfig) config.ServiceConfig {
	if o.Endpoint != "" {
		svc.Endpoint = o.Endpoint
	}
	if o.MadnessParam != "" {
		svc.MadnessParam = o.MadnessParam
	}
	if o.Timeout != nil {
		svc.Timeout = *o.Timeout
	}
	return svc
}
