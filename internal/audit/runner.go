package audit

import (
	"context"
	"time"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/httpclient"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/aleister1102/siteguard/internal/redirect"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ReportSink receives every finished report, e.g. to persist run history
type ReportSink interface {
	Store(ctx context.Context, report *models.AuditReport) error
}

// Runner executes the audit checklist against one base URL
type Runner struct {
	cfg            config.AuditConfig
	redirectChecks []config.RedirectCheck
	fetcher        Fetcher
	sinks          []ReportSink
	logger         zerolog.Logger
}

// NewRunner creates a runner with a non-following HTTP client built from cfg.
// Redirect checks come from cfg.RedirectChecks, or from table when none are configured.
func NewRunner(cfg config.AuditConfig, table *redirect.Table, logger zerolog.Logger) (*Runner, error) {
	client, err := httpclient.NewHTTPClientBuilder(logger).
		WithTimeout(time.Duration(cfg.TimeoutSecs) * time.Second).
		WithFollowRedirects(false).
		WithUserAgent(cfg.UserAgent).
		WithInsecureSkipVerify(cfg.InsecureSkipVerify).
		WithHTTP2(cfg.EnableHTTP2).
		WithConnectionPooling(100, cfg.Concurrency*2, 0).
		WithRetries(cfg.Retries).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to create audit HTTP client")
	}
	return NewRunnerWithFetcher(cfg, table, client, logger)
}

// NewRunnerWithFetcher creates a runner on top of an existing fetcher
func NewRunnerWithFetcher(cfg config.AuditConfig, table *redirect.Table, fetcher Fetcher, logger zerolog.Logger) (*Runner, error) {
	if cfg.BaseURL == "" {
		return nil, common.NewValidationError("base_url", cfg.BaseURL, "base URL is required")
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	checks := cfg.RedirectChecks
	if len(checks) == 0 && table != nil {
		checks = RedirectChecksFromTable(table)
	}

	return &Runner{
		cfg:            cfg,
		redirectChecks: checks,
		fetcher:        fetcher,
		logger:         logger.With().Str("module", "AuditRunner").Logger(),
	}, nil
}

// AddSink registers a sink notified after every run
func (r *Runner) AddSink(sink ReportSink) {
	r.sinks = append(r.sinks, sink)
}

// RedirectChecksFromTable turns every rule into an expected redirect
func RedirectChecksFromTable(table *redirect.Table) []config.RedirectCheck {
	rules := table.Rules()
	checks := make([]config.RedirectCheck, 0, len(rules))
	for _, rule := range rules {
		checks = append(checks, config.RedirectCheck{Source: rule.Source, ExpectedDestination: rule.Destination})
	}
	return checks
}

// Run executes every check. Network failures turn only the affected check into ERROR.
func (r *Runner) Run(ctx context.Context) *models.AuditReport {
	report := &models.AuditReport{
		RunID:     uuid.NewString(),
		BaseURL:   r.cfg.BaseURL,
		StartedAt: time.Now().UTC(),
		Redirects: make([]models.RedirectAuditResult, 0, len(r.redirectChecks)),
		Metadata:  make([]models.MetadataAuditResult, len(r.cfg.MetadataPaths)),
	}
	logger := r.logger.With().Str("run_id", report.RunID).Logger()
	logger.Info().
		Str("base_url", r.cfg.BaseURL).
		Int("redirect_checks", len(r.redirectChecks)).
		Int("metadata_checks", len(r.cfg.MetadataPaths)).
		Msg("Starting audit")

	for _, check := range r.redirectChecks {
		result := CheckRedirect(ctx, r.fetcher, r.cfg.BaseURL, check)
		logResult(logger, "redirect", check.Source, result.Verdict, result.Error)
		report.Redirects = append(report.Redirects, result)
	}

	report.Sitemap = CheckSitemap(ctx, r.fetcher, r.cfg.BaseURL)
	logResult(logger, "sitemap", "/sitemap.xml", report.Sitemap.Verdict, report.Sitemap.Error)

	report.Robots = CheckRobots(ctx, r.fetcher, r.cfg.BaseURL)
	logResult(logger, "robots", "/robots.txt", report.Robots.Verdict, report.Robots.Error)

	r.runMetadataChecks(ctx, logger, report.Metadata)

	report.FinishedAt = time.Now().UTC()
	summary := report.Summarize()

	logger.Info().
		Int("passed", summary.Passed).
		Int("failed", summary.Failed).
		Int("errored", summary.Errored).
		Int("total", summary.Total).
		Float64("percentage", summary.Percentage).
		Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
		Msg("Audit finished")

	for _, sink := range r.sinks {
		if err := sink.Store(ctx, report); err != nil {
			logger.Error().Err(err).Msg("Failed to store audit report")
		}
	}
	return report
}

// runMetadataChecks fans the page checks out; each goroutine owns one slot of results
func (r *Runner) runMetadataChecks(ctx context.Context, logger zerolog.Logger, results []models.MetadataAuditResult) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)

	for i, path := range r.cfg.MetadataPaths {
		g.Go(func() error {
			results[i] = CheckMetadata(gctx, r.fetcher, r.cfg.BaseURL, path)
			logResult(logger, "metadata", path, results[i].Verdict, results[i].Error)
			return nil
		})
	}
	_ = g.Wait()
}

func logResult(logger zerolog.Logger, kind, target string, verdict models.Verdict, errMsg string) {
	event := logger.Debug()
	switch verdict {
	case models.VerdictFail:
		event = logger.Warn()
	case models.VerdictError:
		event = logger.Error().Str("error", errMsg)
	}
	event.Str("check", kind).Str("target", target).Str("verdict", string(verdict)).Msg("Check completed")
}

// ExitCode maps a report to a process status.
// Strict mode requires every check to pass. CI mode fails only on a verified FAIL,
// so ERROR verdicts from an unreachable server do not block the pipeline.
func ExitCode(report *models.AuditReport, ciMode bool) int {
	if report == nil {
		if ciMode {
			return 0
		}
		return 1
	}
	if ciMode {
		if report.Summary.Failed > 0 {
			return 1
		}
		return 0
	}
	if report.Summary.AllPassed() {
		return 0
	}
	return 1
}
