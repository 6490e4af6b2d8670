package a11y

import (
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/lint"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
)

// Scanner runs the accessibility rules over a source tree
type Scanner struct {
	walker   *lint.Walker
	rules    []Rule
	matchers []lint.Matcher
	severity map[string]Severity
	logger   zerolog.Logger
}

// NewScanner creates a scanner over roots, or over cfg.Roots when roots is empty
func NewScanner(cfg config.ScanConfig, roots []string, logger zerolog.Logger) *Scanner {
	if len(roots) == 0 {
		roots = cfg.Roots
	}
	s := &Scanner{
		walker: lint.NewWalker(roots, cfg.Extensions, cfg.SkipDirs, logger),
		rules:  Rules(cfg.AdjacentLines),
		logger: logger.With().Str("module", "A11yScanner").Logger(),
	}
	s.matchers, s.severity = index(s.rules)
	return s
}

func index(rules []Rule) ([]lint.Matcher, map[string]Severity) {
	matchers := make([]lint.Matcher, 0, len(rules))
	severity := make(map[string]Severity, len(rules))
	for _, r := range rules {
		matchers = append(matchers, r.Matcher)
		severity[r.Matcher.Name()] = r.Severity
	}
	return matchers, severity
}

// Scan walks every root and aggregates the per-file reports
func (s *Scanner) Scan() (*models.A11yReport, error) {
	report := &models.A11yReport{Files: []models.A11yFileReport{}}

	scanned, err := s.walker.Each(func(path, content string) {
		file := scanFile(path, content, s.matchers, s.severity)
		report.Summary.GoodPractices += len(file.Good)
		report.Summary.Errors += len(file.Errors)
		report.Summary.Warnings += len(file.Warnings)
		if len(file.Good)+len(file.Errors)+len(file.Warnings) > 0 {
			report.Files = append(report.Files, file)
		}
	})
	if err != nil {
		return nil, err
	}
	report.Summary.FilesScanned = scanned

	s.logger.Info().
		Int("files_scanned", report.Summary.FilesScanned).
		Int("errors", report.Summary.Errors).
		Int("warnings", report.Summary.Warnings).
		Msg("Accessibility scan finished")
	return report, nil
}

// ScanFile classifies the matches of one file against rules
func ScanFile(path, content string, rules []Rule) models.A11yFileReport {
	matchers, severity := index(rules)
	return scanFile(path, content, matchers, severity)
}

func scanFile(path, content string, matchers []lint.Matcher, severity map[string]Severity) models.A11yFileReport {
	file := models.A11yFileReport{
		File:     path,
		Good:     []models.Finding{},
		Errors:   []models.Finding{},
		Warnings: []models.Finding{},
	}
	for _, m := range lint.ScanText(path, content, matchers) {
		finding := models.Finding{Rule: m.Rule, Line: m.Line, Snippet: m.Snippet, Message: m.Description}
		switch severity[m.Rule] {
		case SeverityGood:
			finding.Class = models.FindingGood
			file.Good = append(file.Good, finding)
		case SeverityError:
			finding.Class = models.FindingError
			file.Errors = append(file.Errors, finding)
		default:
			finding.Class = models.FindingWarning
			file.Warnings = append(file.Warnings, finding)
		}
	}
	return file
}
