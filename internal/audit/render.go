package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/models"
)

// Render writes the report as text or JSON. HTML output is handled by the reporter package.
func Render(w io.Writer, report *models.AuditReport, format string) error {
	switch strings.ToLower(format) {
	case "", config.OutputFormatText:
		_, err := io.WriteString(w, renderText(report))
		return err
	case config.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return common.WrapError(err, "failed to encode audit report")
		}
		return nil
	default:
		return common.NewValidationError("format", format, "audit output must be text or json")
	}
}

func renderText(report *models.AuditReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "SEO & redirect audit: %s\n", report.BaseURL)
	fmt.Fprintf(&sb, "Run %s\n\n", report.RunID)

	sb.WriteString("Redirects\n")
	for _, r := range report.Redirects {
		fmt.Fprintf(&sb, "  [%s] %s -> %s", r.Verdict, r.Source, r.ExpectedDestination)
		if r.Error != "" {
			fmt.Fprintf(&sb, " (error: %s)\n", r.Error)
			continue
		}
		fmt.Fprintf(&sb, " (status %d %s, location %q)\n", r.ActualStatus, r.Kind, r.ActualLocation)
	}

	sb.WriteString("\nSitemap\n")
	s := report.Sitemap
	fmt.Fprintf(&sb, "  [%s] /sitemap.xml", s.Verdict)
	if s.Error != "" {
		fmt.Fprintf(&sb, " (error: %s)\n", s.Error)
	} else {
		fmt.Fprintf(&sb, " (status %d, urlset %s, url entry %s, namespace %s, %d urls)\n",
			s.StatusCode, yesNo(s.HasURLSet), yesNo(s.HasURLEntry), yesNo(s.HasNamespace), s.URLCount)
	}

	sb.WriteString("\nRobots\n")
	rb := report.Robots
	fmt.Fprintf(&sb, "  [%s] /robots.txt", rb.Verdict)
	if rb.Error != "" {
		fmt.Fprintf(&sb, " (error: %s)\n", rb.Error)
	} else {
		fmt.Fprintf(&sb, " (status %d, sitemap %s, user-agent %s, disallow %s)\n",
			rb.StatusCode, yesNo(rb.HasSitemap), yesNo(rb.HasUserAgent), yesNo(rb.HasDisallow))
	}

	sb.WriteString("\nMetadata\n")
	for _, m := range report.Metadata {
		fmt.Fprintf(&sb, "  [%s] %s", m.Verdict, m.Path)
		if m.Error != "" {
			fmt.Fprintf(&sb, " (error: %s)\n", m.Error)
			continue
		}
		fmt.Fprintf(&sb, " (status %d, structured data %s, open graph %s, canonical %s, alternates %s)\n",
			m.StatusCode, yesNo(m.HasStructuredData), yesNo(m.HasOpenGraph), yesNo(m.HasCanonicalLink), yesNo(m.HasAlternateLinks))
	}

	sum := report.Summary
	fmt.Fprintf(&sb, "\nSummary: %d/%d passed (%.1f%%), %d failed, %d errored\n",
		sum.Passed, sum.Total, sum.Percentage, sum.Failed, sum.Errored)
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
