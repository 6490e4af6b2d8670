package main

import (
	"time"

	"github.com/aleister1102/siteguard/internal/ci"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/spf13/cobra"
)

func newCICommand(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "ci [paths...]",
		Short: "Run the accessibility and motion scanners and gate on their errors and issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			format := cfg.CIConfig.OutputFormat
			if jsonOutput {
				format = config.OutputFormatJSON
			}
			log, err := opts.newLogger(cmd, cfg, format == config.OutputFormatJSON)
			if err != nil {
				return err
			}

			runner, err := ci.NewExecRunner(time.Duration(cfg.CIConfig.SubprocessTimeoutSecs) * time.Second)
			if err != nil {
				return err
			}
			if opts.configPath != "" {
				runner.ExtraArgs = []string{"--config", opts.configPath}
			}

			report := ci.NewAggregator(runner, args, log).Run(cmd.Context())
			if err := ci.Render(cmd.OutOrStdout(), report, format); err != nil {
				return err
			}
			return exitWith(report.ExitCode())
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the combined report as JSON")
	return cmd
}
