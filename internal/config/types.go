package config

import (
	"time"
)

// Madness level bounds accepted by the generation service.
const (
	MinMadness = 0
	MaxMadness = 10
)

// BracketctlConfig is the top-level configuration structure for bracketctl.
type BracketctlConfig struct {
	Service ServiceConfig `yaml:"service"`
	UI      UIConfig      `yaml:"ui"`
}

// ServiceConfig describes how to reach the bracket generation service.
type ServiceConfig struct {
	Endpoint     string        `yaml:"endpoint,omitempty"`     // Base URL, e.g. "https://bracket-simulator.onrender.com"
	Path         string        `yaml:"path,omitempty"`         // Request path, e.g. "/bracket"
	MadnessParam string        `yaml:"madnessParam,omitempty"` // Query parameter carrying the madness level
	Timeout      time.Duration `yaml:"timeout,omitempty"`      // Zero disables the client-side timeout
}

// UIConfig holds settings for the interactive view and the CLI output.
type UIConfig struct {
	DefaultMadness *int   `yaml:"defaultMadness,omitempty"` // Pointer so an explicit 0 survives merging
	Debug          bool   `yaml:"debug,omitempty"`
	LogLevel       string `yaml:"logLevel,omitempty"` // "debug", "info", "warn" or "error"
}

// Madness returns the configured starting madness level.
func (u UIConfig) Madness() int {
	if u.DefaultMadness == nil {
		return DefaultMadnessLevel
	}
	return *u.DefaultMadness
}
