package datastore

import (
	"fmt"
	"strings"

	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
)

// RecordTransformer flattens an audit report into archive rows
type RecordTransformer struct {
	logger zerolog.Logger
}

// NewRecordTransformer creates a new RecordTransformer
func NewRecordTransformer(logger zerolog.Logger) *RecordTransformer {
	return &RecordTransformer{
		logger: logger.With().Str("component", "RecordTransformer").Logger(),
	}
}

// TransformReport returns one record per check, in report order
func (rt *RecordTransformer) TransformReport(report *models.AuditReport) []models.ParquetCheckRecord {
	checkedAt := report.FinishedAt.UnixMilli()
	records := make([]models.ParquetCheckRecord, 0, report.Summary.Total)

	add := func(kind models.CheckKind, target string, verdict models.Verdict, status int, detail string) {
		records = append(records, models.ParquetCheckRecord{
			RunID:      report.RunID,
			Kind:       string(kind),
			Target:     target,
			Verdict:    string(verdict),
			StatusCode: Int32PtrOrNilZero(int32(status)),
			Detail:     StringPtrOrNil(detail),
			CheckedAt:  checkedAt,
		})
	}

	for _, r := range report.Redirects {
		detail := fmt.Sprintf("expected %s, got %s (%s)", r.ExpectedDestination, r.ActualLocation, r.Kind)
		add(models.CheckRedirect, r.Source, r.Verdict, r.ActualStatus, withError(detail, r.Error))
	}

	s := report.Sitemap
	add(models.CheckSitemap, "/sitemap.xml", s.Verdict, s.StatusCode, withError(fmt.Sprintf("urls=%d", s.URLCount), s.Error))

	rb := report.Robots
	add(models.CheckRobots, "/robots.txt", rb.Verdict, rb.StatusCode, withError("sitemaps="+strings.Join(rb.Sitemaps, ","), rb.Error))

	for _, m := range report.Metadata {
		detail := fmt.Sprintf("jsonld=%t og=%t canonical=%t alternates=%t", m.HasStructuredData, m.HasOpenGraph, m.HasCanonicalLink, m.HasAlternateLinks)
		add(models.CheckMetadata, m.Path, m.Verdict, m.StatusCode, withError(detail, m.Error))
	}

	rt.logger.Debug().Str("run_id", report.RunID).Int("records", len(records)).Msg("Report flattened")
	return records
}

func withError(detail, errMsg string) string {
	if errMsg == "" {
		return detail
	}
	return errMsg
}
