package cmd

import (
	"os"
	"time"

	"bracketctl/internal/app"

	"github.com/spf13/cobra"
)

// Flags shared by every command that talks to the bracket service.
var (
	configPath   string
	endpoint     string
	madnessParam string
	timeout      time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bracketctl",
	Short: "Generate tournament brackets from your terminal",
	Long: `bracketctl asks a remote bracket generation service for a freshly
generated 32-team tournament bracket and shows it, either in an interactive
terminal UI with a madness slider or as plain text, JSON or Markdown.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid flags, failed generations)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newAppConfig builds the application config from the persistent flags.
func newAppConfig(cmd *cobra.Command, debug bool) *app.Config {
	cfg := app.NewConfig(configPath, debug)
	cfg.Version = rootCmd.Version
	cfg.Out = cmd.OutOrStdout()
	cfg.Err = cmd.ErrOrStderr()
	cfg.Overrides = app.ServiceOverrides{
		Endpoint:     endpoint,
		MadnessParam: madnessParam,
	}
	if cmd.Flags().Changed("timeout") {
		t := timeout
		cfg.Overrides.Timeout = &t
	}
	return cfg
}

// madnessFlag returns the --madness value only when the user set it.
func madnessFlag(cmd *cobra.Command, value int) *int {
	if !cmd.Flags().Changed("madness") {
		return nil
	}
	return &value
}

func init() {
	rootCmd.SetVersionTemplate(`{{printf "bracketctl version %s\n" .Version}}`)

	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default layers ~/.config/bracketctl and ./.bracketctl)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Base URL of the bracket generation service")
	rootCmd.PersistentFlags().StringVar(&madnessParam, "madness-param", "", "Query parameter carrying the madness level")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (0 waits until cancelled)")
}
