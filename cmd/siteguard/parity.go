package main

import (
	"os"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/parity"
	"github.com/spf13/cobra"
)

// legacyParityJSONEnv switches the parity report to JSON, as the old script did
const legacyParityJSONEnv = "SITEGUARD_PARITY_JSON"

func newParityCommand(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput   bool
		baseline     string
		saveBaseline bool
	)

	cmd := &cobra.Command{
		Use:   "parity",
		Short: "Compare the content slugs of the two locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			format := parityFormat(cfg, jsonOutput)
			log, err := opts.newLogger(cmd, cfg, format == config.OutputFormatJSON)
			if err != nil {
				return err
			}
			if baseline == "" {
				baseline = cfg.ParityConfig.BaselineFile
			}
			if saveBaseline && baseline == "" {
				return common.NewValidationError("baseline", baseline, "--save-baseline needs --baseline or parity_config.baseline_file")
			}

			report, err := parity.NewAuditor(cfg.ContentConfig, log).Run()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := parity.Render(out, report, format); err != nil {
				return err
			}
			if baseline == "" {
				return nil
			}

			current, err := parity.MarshalReport(report)
			if err != nil {
				return err
			}
			fm := common.NewFileManager(log)
			if saveBaseline {
				log.Info().Str("path", baseline).Msg("Saving parity baseline")
				return fm.WriteFile(baseline, current)
			}

			previous, err := fm.ReadFile(baseline, common.DefaultMaxReadSize)
			if err != nil {
				return common.WrapError(err, "failed to read parity baseline")
			}
			lines := parity.Drift(previous, current)
			stats := parity.Stats(lines)
			log.Info().Int("lines_added", stats.LinesAdded).Int("lines_removed", stats.LinesRemoved).Msg("Parity drift computed")
			if format == config.OutputFormatJSON {
				// stdout already carries the JSON report
				return nil
			}
			return parity.RenderDrift(out, lines)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the report as JSON")
	cmd.Flags().StringVar(&baseline, "baseline", "", "JSON report to diff against (default parity_config.baseline_file)")
	cmd.Flags().BoolVar(&saveBaseline, "save-baseline", false, "write the current report to the baseline file instead of diffing")
	return cmd
}

// parityFormat resolves the output mode: --json, then the legacy environment toggle, then the config
func parityFormat(cfg *config.GlobalConfig, jsonFlag bool) string {
	if jsonFlag || os.Getenv(legacyParityJSONEnv) == "1" {
		return config.OutputFormatJSON
	}
	if cfg.ParityConfig.OutputFormat != "" {
		return cfg.ParityConfig.OutputFormat
	}
	return config.OutputFormatText
}
