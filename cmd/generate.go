package cmd

import (
	"bracketctl/internal/app"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		madness int
		output  string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one bracket and print it",
		Long: `Requests a single bracket at the given madness level and prints it.
On failure the command exits non-zero with a generic message; details are
logged to stderr with --debug.`,
		Example: `  bracketctl generate --madness 8
  bracketctl generate --output json --endpoint http://localhost:8000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := app.ParseOutputFormat(output)
			if err != nil {
				return err
			}

			cfg := newAppConfig(cmd, debug)
			cfg.Madness = madnessFlag(cmd, madness)
			cfg.Output = format

			application, err := app.NewApplication(cfg)
			if err != nil {
				return err
			}
			return application.Generate(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&madness, "madness", 5, "Madness level (0-10)")
	cmd.Flags().StringVarP(&output, "output", "o", string(app.OutputText), "Output format: text, json or markdown")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log request details to stderr")
	return cmd
}
