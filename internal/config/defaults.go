package config

const (
	DefaultEndpoint     = "https://bracket-simulator.onrender.com"
	DefaultPath         = "/bracket"
	DefaultMadnessParam = "madness_level"
	DefaultMadnessLevel = 5
	DefaultLogLevel     = "info"
)

// GetDefaultConfig returns the configuration used when no file or environment overrides exist.
func GetDefaultConfig() BracketctlConfig {
	madness := DefaultMadnessLevel
	return BracketctlConfig{
		Service: ServiceConfig{
			Endpoint:     DefaultEndpoint,
			Path:         DefaultPath,
			MadnessParam: DefaultMadnessParam,
		},
		UI: UIConfig{
			DefaultMadness: &madness,
			LogLevel:       DefaultLogLevel,
		},
	}
}
