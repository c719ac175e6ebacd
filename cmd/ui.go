package cmd

import (
	"bracketctl/internal/app"

	"github.com/spf13/cobra"
)

func newUICmd() *cobra.Command {
	var (
		madness      int
		tuiDebugMode bool
	)

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive bracket view",
		Long: `Opens a terminal UI with a madness slider (0-10) and a generate button.
Each generation requests a new bracket from the service; the result is shown
as four regions, the Final Four and the national champion.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := newAppConfig(cmd, tuiDebugMode)
			cfg.Madness = madnessFlag(cmd, madness)

			application, err := app.NewApplication(cfg)
			if err != nil {
				return err
			}
			return application.RunTUI(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&madness, "madness", 5, "Starting madness level (0-10)")
	cmd.Flags().BoolVar(&tuiDebugMode, "debug-tui", false, "Enable debug logging and the debug header in the TUI")
	return cmd
}
