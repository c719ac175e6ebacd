package app

import (
	"bracketctl/internal/client"
)

// Services holds the initialized collaborators of the application.
type Services struct {
	Client *client.Client
}

// InitializeServices creates the bracket client from the loaded configuration.
func InitializeServices(cfg *Config) *Services {
	clientCfg := client.ConfigFromService(cfg.BracketctlConfig.Service)
	if cfg.Version != "" {
		clientCfg.UserAgent = "bracketctl/" + cfg.Version
	}
	return &Services{Client: client.New(clientCfg)}
}
