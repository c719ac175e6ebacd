package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osGetenv = os.Getenv

const (
	userConfigDir    = ".config/bracketctl"
	projectConfigDir = ".bracketctl"
	configFileName   = "config.yaml"
	dotEnvFileName   = ".env"
)

// Environment variables consulted after all config files.
const (
	EnvEndpoint       = "BRACKETCTL_ENDPOINT"
	EnvPath           = "BRACKETCTL_PATH"
	EnvMadnessParam   = "BRACKETCTL_MADNESS_PARAM"
	EnvDefaultMadness = "BRACKETCTL_DEFAULT_MADNESS"
	EnvTimeout        = "BRACKETCTL_TIMEOUT"
	EnvLogLevel       = "BRACKETCTL_LOG_LEVEL"
)

// LoadConfig loads the bracketctl configuration by layering default, user,
// project, explicit file and environment settings. explicitPath may be empty.
func LoadConfig(explicitPath string) (BracketctlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayFile(config, userConfigPath, false); err != nil {
		return BracketctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	// 3. Project configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayFile(config, projectConfigPath, false); err != nil {
		return BracketctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	// 4. Explicit --config file must exist
	if explicitPath != "" {
		if config, err = overlayFile(config, explicitPath, true); err != nil {
			return BracketctlConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
	}

	// 5. Environment, with .env from the working directory filling gaps
	loadDotEnv()
	config, err = applyEnv(config)
	if err != nil {
		return BracketctlConfig{}, err
	}

	if err := config.Validate(); err != nil {
		return BracketctlConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayFile(base BracketctlConfig, path string, required bool) (BracketctlConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if required {
			return base, err
		}
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a BracketctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (BracketctlConfig, error) {
	var config BracketctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return BracketctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return BracketctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay BracketctlConfig) BracketctlConfig {
	merged := base

	if overlay.Service.Endpoint != "" {
		merged.Service.Endpoint = overlay.Service.Endpoint
	}
	if overlay.Service.Path != "" {
		merged.Service.Path = overlay.Service.Path
	}
	if overlay.Service.MadnessParam != "" {
		merged.Service.MadnessParam = overlay.Service.MadnessParam
	}
	if overlay.Service.Timeout != 0 {
		merged.Service.Timeout = overlay.Service.Timeout
	}

	if overlay.UI.DefaultMadness != nil {
		madness := *overlay.UI.DefaultMadness
		merged.UI.DefaultMadness = &madness
	}
	if overlay.UI.LogLevel != "" {
		merged.UI.LogLevel = overlay.UI.LogLevel
	}
	// Debug can only be switched on by an overlay
	merged.UI.Debug = merged.UI.Debug || overlay.UI.Debug

	return merged
}

func loadDotEnv() {
	wd, err := osGetwd()
	if err != nil {
		return
	}
	// godotenv.Load never overrides variables already present in the environment.
	if err := godotenv.Load(filepath.Join(wd, dotEnvFileName)); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: .env load failed: %v\n", err)
	}
}

func applyEnv(config BracketctlConfig) (BracketctlConfig, error) {
	if v := osGetenv(EnvEndpoint); v != "" {
		config.Service.Endpoint = v
	}
	if v := osGetenv(EnvPath); v != "" {
		config.Service.Path = v
	}
	if v := osGetenv(EnvMadnessParam); v != "" {
		config.Service.MadnessParam = v
	}
	if v := osGetenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return BracketctlConfig{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		config.Service.Timeout = d
	}
	if v := osGetenv(EnvDefaultMadness); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return BracketctlConfig{}, fmt.Errorf("invalid %s %q: %w", EnvDefaultMadness, v, err)
		}
		config.UI.DefaultMadness = &n
	}
	if v := osGetenv(EnvLogLevel); v != "" {
		config.UI.LogLevel = v
	}
	return config, nil
}

// Validate checks that the configuration can be used to reach the service.
func (c BracketctlConfig) Validate() error {
	u, err := url.Parse(c.Service.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid service endpoint %q: %w", c.Service.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid service endpoint %q: must be an absolute http(s) URL", c.Service.Endpoint)
	}
	if c.Service.MadnessParam == "" {
		return errors.New("service madnessParam must not be empty")
	}
	if c.Service.Timeout < 0 {
		return fmt.Errorf("service timeout must not be negative, got %s", c.Service.Timeout)
	}
	if m := c.UI.Madness(); m < MinMadness || m > MaxMadness {
		return fmt.Errorf("ui defaultMadness must be between %d and %d, got %d", MinMadness, MaxMadness, m)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
