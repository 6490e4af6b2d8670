package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aleister1102/siteguard/internal/audit"
	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/datastore"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/aleister1102/siteguard/internal/redirect"
	"github.com/aleister1102/siteguard/internal/reporter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newAuditCommand(opts *rootOptions) *cobra.Command {
	var (
		baseURL string
		format  string
		outFile string
		ciMode  bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Probe a running site for redirects, sitemap, robots and page metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.AuditConfig.BaseURL = baseURL
				if err := config.ValidateConfig(cfg); err != nil {
					return err
				}
			}
			if format == "" {
				format = cfg.AuditConfig.OutputFormat
			}
			format = strings.ToLower(format)

			// JSON on stdout must not be interleaved with console logs
			quiet := outFile == "" && format == config.OutputFormatJSON
			log, err := opts.newLogger(cmd, cfg, quiet)
			if err != nil {
				return err
			}

			report, err := runAudit(cmd, cfg, log)
			if err != nil {
				if ciMode {
					log.Warn().Err(err).Msg("Audit could not run; not failing the CI job")
					return nil
				}
				return err
			}

			if format == config.OutputFormatHTML && outFile == "" {
				html, err := reporter.NewHtmlReporter(&cfg.ReporterConfig, log)
				if err != nil {
					return err
				}
				path, err := html.GenerateReport(report)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "HTML report written to %s\n", path)
				return exitWith(audit.ExitCode(report, ciMode))
			}

			var buf bytes.Buffer
			if err := renderAudit(&buf, cfg, format, report, log); err != nil {
				return err
			}
			if outFile != "" {
				if err := common.NewFileManager(log).WriteFile(outFile, buf.Bytes()); err != nil {
					return err
				}
				log.Info().Str("path", outFile).Msg("Audit report written")
			} else if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
				return err
			}
			return exitWith(audit.ExitCode(report, ciMode))
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "site to audit (overrides audit_config.base_url)")
	cmd.Flags().StringVar(&format, "format", "", "output format: text, json or html (default audit_config.output_format)")
	cmd.Flags().StringVar(&outFile, "out", "", "write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "lenient exit: fail only on verified FAIL verdicts")

	cmd.AddCommand(newAuditHistoryCommand(opts))
	return cmd
}

func runAudit(cmd *cobra.Command, cfg *config.GlobalConfig, log zerolog.Logger) (*models.AuditReport, error) {
	table, err := redirect.LoadTable(cfg.RedirectConfig.RulesFile, log)
	if err != nil {
		return nil, err
	}
	runner, err := audit.NewRunner(cfg.AuditConfig, table, log)
	if err != nil {
		return nil, err
	}

	if cfg.StorageConfig.Enabled {
		store, err := datastore.NewRunStore(cfg.StorageConfig.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		runner.AddSink(store)

		archive, err := datastore.NewResultArchive(&cfg.StorageConfig, log)
		if err != nil {
			return nil, err
		}
		runner.AddSink(archive)
	}

	return runner.Run(cmd.Context()), nil
}

func renderAudit(buf *bytes.Buffer, cfg *config.GlobalConfig, format string, report *models.AuditReport, log zerolog.Logger) error {
	if format != config.OutputFormatHTML {
		return audit.Render(buf, report, format)
	}
	html, err := reporter.NewHtmlReporter(&cfg.ReporterConfig, log)
	if err != nil {
		return err
	}
	return html.Render(buf, report)
}

func newAuditHistoryCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent audit runs recorded in the history database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd, false)
			if err != nil {
				return err
			}
			store, err := datastore.NewRunStore(cfg.StorageConfig.SQLitePath, log)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				_, err := fmt.Fprintln(out, "No audit runs recorded.")
				return err
			}
			for _, run := range runs {
				fmt.Fprintf(out, "%s  %s  %d/%d passed, %d failed, %d errored  %s\n",
					run.StartedAt.Format("2006-01-02 15:04:05"), run.RunID,
					run.Passed, run.Total, run.Failed, run.Errored, run.BaseURL)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of runs to show")
	return cmd
}
