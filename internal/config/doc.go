// Package config provides configuration management for bracketctl.
//
// Configuration is loaded from several sources and merged in order, with
// later sources overriding earlier ones:
//
//  1. Defaults compiled into the binary
//  2. User configuration (~/.config/bracketctl/config.yaml)
//  3. Project configuration (./.bracketctl/config.yaml)
//  4. An explicit file passed with --config
//  5. Environment variables (BRACKETCTL_*), with ./.env loaded first for
//     variables not already set
//
// Command-line flags are applied by the cmd package on top of the result.
//
// # Configuration Structure
//
//	service:
//	  endpoint: "https://bracket-simulator.onrender.com"
//	  path: "/bracket"
//	  madnessParam: "madness_level"   # some deployments use "madness"
//	  timeout: 0s                      # 0 disables the client-side timeout
//	ui:
//	  defaultMadness: 5                # 0..10
//	  debug: false
//	  logLevel: info
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Service.Endpoint, cfg.UI.Madness())
package config
