package parity

import (
	"os"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
)

// Compare builds the parity report of locales a and b under root.
// An unreadable root is a configuration error; missing locale directories are empty.
func Compare(root, a, b string, exts []string) (models.ParityReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		return models.ParityReport{}, common.WrapError(
			common.NewConfigurationError("content_config", "root", err.Error()), "content root is unreadable")
	}
	if !info.IsDir() {
		return models.ParityReport{}, common.NewConfigurationError("content_config", "root", root+" is not a directory")
	}
	if _, err := os.ReadDir(root); err != nil {
		return models.ParityReport{}, common.WrapError(
			common.NewConfigurationError("content_config", "root", err.Error()), "content root is unreadable")
	}

	setA, err := LoadSlugSet(root, a, exts)
	if err != nil {
		return models.ParityReport{}, err
	}
	setB, err := LoadSlugSet(root, b, exts)
	if err != nil {
		return models.ParityReport{}, err
	}

	return buildReport(a, b, setA, setB), nil
}

func buildReport(a, b string, setA, setB SlugSet) models.ParityReport {
	report := models.ParityReport{
		Locales: [2]string{a, b},
		TR:      len(setA),
		EN:      len(setB),
		Both:    []string{},
		OnlyTR:  []string{},
		OnlyEN:  []string{},
	}
	for _, slug := range setA.Sorted() {
		if setB.Has(slug) {
			report.Both = append(report.Both, slug)
		} else {
			report.OnlyTR = append(report.OnlyTR, slug)
		}
	}
	for _, slug := range setB.Sorted() {
		if !setA.Has(slug) {
			report.OnlyEN = append(report.OnlyEN, slug)
		}
	}
	report.BothCount = len(report.Both)
	return report
}

// Auditor runs the parity comparison for the configured content tree
type Auditor struct {
	cfg    config.ContentConfig
	logger zerolog.Logger
}

// NewAuditor creates a parity auditor
func NewAuditor(cfg config.ContentConfig, logger zerolog.Logger) *Auditor {
	return &Auditor{
		cfg:    cfg,
		logger: logger.With().Str("module", "ParityAuditor").Logger(),
	}
}

// Run compares the first two configured locales
func (a *Auditor) Run() (models.ParityReport, error) {
	if len(a.cfg.Locales) != 2 {
		return models.ParityReport{}, common.NewConfigurationError("content_config", "locales", "exactly two locales are required")
	}

	report, err := Compare(a.cfg.Root, a.cfg.Locales[0], a.cfg.Locales[1], a.cfg.Extensions)
	if err != nil {
		a.logger.Error().Err(err).Str("root", a.cfg.Root).Msg("Parity comparison failed")
		return report, err
	}

	a.logger.Info().
		Int(report.Locales[0], report.TR).
		Int(report.Locales[1], report.EN).
		Int("both", report.BothCount).
		Int("only_"+report.Locales[0], len(report.OnlyTR)).
		Int("only_"+report.Locales[1], len(report.OnlyEN)).
		Msg("Content parity computed")
	return report, nil
}
