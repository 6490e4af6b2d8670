// Package ci combines the accessibility and motion scanners into a single gate.
package ci

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
)

const (
	StatusOK     = "ok"
	StatusFailed = "failed to run or parse"
)

// A11ySection is the accessibility part of the combined report
type A11ySection struct {
	Status  string              `json:"status"`
	Error   string              `json:"error,omitempty"`
	Summary *models.A11ySummary `json:"summary,omitempty"`
}

// MotionSection is the motion part of the combined report
type MotionSection struct {
	Status  string                `json:"status"`
	Error   string                `json:"error,omitempty"`
	Summary *models.MotionSummary `json:"summary,omitempty"`
}

// Report is the combined CI result
type Report struct {
	A11y   A11ySection   `json:"accessibility"`
	Motion MotionSection `json:"motion"`
	Passed bool          `json:"passed"`
}

// ExitCode is 1 only for verified errors or issues; warnings and failed sections do not gate
func (r *Report) ExitCode() int {
	if r.Passed {
		return 0
	}
	return 1
}

// Aggregator runs both scanners as subprocesses and merges their JSON output
type Aggregator struct {
	runner ProcessRunner
	roots  []string
	logger zerolog.Logger
}

// NewAggregator creates an aggregator; roots are passed through to both scanners
func NewAggregator(runner ProcessRunner, roots []string, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		runner: runner,
		roots:  roots,
		logger: logger.With().Str("module", "CIAggregator").Logger(),
	}
}

// Run executes both scanners. It never fails: problems are recorded in the section status.
func (a *Aggregator) Run(ctx context.Context) *Report {
	report := &Report{}

	var a11y models.A11yReport
	if err := a.runJSON(ctx, "a11y", &a11y); err != nil {
		report.A11y = A11ySection{Status: StatusFailed, Error: err.Error()}
	} else {
		report.A11y = A11ySection{Status: StatusOK, Summary: &a11y.Summary}
	}

	var motion models.MotionReport
	if err := a.runJSON(ctx, "motion", &motion); err != nil {
		report.Motion = MotionSection{Status: StatusFailed, Error: err.Error()}
	} else {
		report.Motion = MotionSection{Status: StatusOK, Summary: &motion.Summary}
	}

	report.Passed = true
	if report.A11y.Summary != nil && report.A11y.Summary.Errors > 0 {
		report.Passed = false
	}
	if report.Motion.Summary != nil && report.Motion.Summary.Issues > 0 {
		report.Passed = false
	}

	a.logger.Info().
		Str("accessibility", report.A11y.Status).
		Str("motion", report.Motion.Status).
		Bool("passed", report.Passed).
		Msg("CI checks finished")
	return report
}

func (a *Aggregator) runJSON(ctx context.Context, command string, out any) error {
	args := append([]string{command, "--json"}, a.roots...)
	stdout, runErr := a.runner.Run(ctx, args...)
	if runErr != nil {
		a.logger.Warn().Err(runErr).Str("command", command).Msg("Scanner execution failed")
	}

	if err := json.Unmarshal(stdout, out); err != nil {
		a.logger.Error().Err(err).Str("command", command).Msg("Failed to parse scanner output")
		if runErr != nil {
			return runErr
		}
		return common.WrapErrorf(err, "invalid %s output", command)
	}
	return nil
}

// Render writes the combined report as indented JSON or text
func Render(w io.Writer, report *Report, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return common.WrapError(err, "failed to encode CI report")
		}
		return nil
	}

	var sb strings.Builder
	sb.WriteString("CI checks\n")
	if s := report.A11y.Summary; s != nil {
		fmt.Fprintf(&sb, "  accessibility: %d errors, %d warnings (%d files)\n", s.Errors, s.Warnings, s.FilesScanned)
	} else {
		fmt.Fprintf(&sb, "  accessibility: %s\n", report.A11y.Status)
	}
	if s := report.Motion.Summary; s != nil {
		fmt.Fprintf(&sb, "  motion: %d issues, %d warnings (%d files)\n", s.Issues, s.Warnings, s.FilesScanned)
	} else {
		fmt.Fprintf(&sb, "  motion: %s\n", report.Motion.Status)
	}
	if report.Passed {
		sb.WriteString("Result: passed\n")
	} else {
		sb.WriteString("Result: failed\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
