package motion

import (
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/lint"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
)

// Scanner runs the motion-preference matchers over a source tree
type Scanner struct {
	walker   *lint.Walker
	matchers []lint.Matcher
	logger   zerolog.Logger
}

// NewScanner creates a scanner over roots, or over cfg.Roots when roots is empty
func NewScanner(cfg config.ScanConfig, roots []string, logger zerolog.Logger) *Scanner {
	if len(roots) == 0 {
		roots = cfg.Roots
	}
	return &Scanner{
		walker:   lint.NewWalker(roots, cfg.Extensions, cfg.SkipDirs, logger),
		matchers: Matchers(cfg.AdjacentLines),
		logger:   logger.With().Str("module", "MotionScanner").Logger(),
	}
}

// Scan walks every root and aggregates the per-file reports.
// Only files with at least one finding are listed.
func (s *Scanner) Scan() (*models.MotionReport, error) {
	report := &models.MotionReport{Files: []models.MotionFileReport{}}

	scanned, err := s.walker.Each(func(path, content string) {
		file := ScanFile(path, content, s.matchers)
		report.Summary.GoodPractices += len(file.Good)
		report.Summary.Issues += len(file.Issues)
		report.Summary.Warnings += len(file.Warnings)
		if len(file.Good)+len(file.Issues)+len(file.Warnings) > 0 {
			report.Files = append(report.Files, file)
		}
	})
	if err != nil {
		return nil, err
	}
	report.Summary.FilesScanned = scanned

	s.logger.Info().
		Int("files_scanned", report.Summary.FilesScanned).
		Int("good_practices", report.Summary.GoodPractices).
		Int("issues", report.Summary.Issues).
		Int("warnings", report.Summary.Warnings).
		Msg("Motion scan finished")
	return report, nil
}

// ScanFile classifies the matches of one file.
// Bad matches are issues unless the file contains a guard identifier, in which case they are warnings.
// A file with bad matches and no good practice also gets one missingReducedMotionCheck warning.
func ScanFile(path, content string, matchers []lint.Matcher) models.MotionFileReport {
	file := models.MotionFileReport{
		File:     path,
		Good:     []models.Finding{},
		Issues:   []models.Finding{},
		Warnings: []models.Finding{},
	}
	guarded := ContainsGuard(content)
	bad := 0

	for _, m := range lint.ScanText(path, content, matchers) {
		finding := models.Finding{Rule: m.Rule, Line: m.Line, Snippet: m.Snippet, Message: m.Description}
		switch {
		case m.Class == lint.ClassGood:
			finding.Class = models.FindingGood
			file.Good = append(file.Good, finding)
		case guarded:
			bad++
			finding.Class = models.FindingWarning
			finding.Message += " (file references a reduced-motion guard)"
			file.Warnings = append(file.Warnings, finding)
		default:
			bad++
			finding.Class = models.FindingIssue
			file.Issues = append(file.Issues, finding)
		}
	}

	if bad > 0 && len(file.Good) == 0 {
		file.Warnings = append(file.Warnings, models.Finding{
			Rule:    MissingCheckRule,
			Class:   models.FindingWarning,
			Message: "animated file has no reduced-motion handling",
		})
	}
	return file
}
