package reporter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
)

//go:embed templates/audit_report.html.tmpl
var defaultTemplate embed.FS

// ReportPageData is what the audit template renders
type ReportPageData struct {
	Title       string
	GeneratedAt time.Time
	Report      *models.AuditReport
}

// HtmlReporter renders audit reports as standalone HTML pages
type HtmlReporter struct {
	cfg          *config.ReporterConfig
	logger       zerolog.Logger
	template     *template.Template
	directoryMgr *DirectoryManager
}

// NewHtmlReporter creates a reporter with the embedded template
func NewHtmlReporter(cfg *config.ReporterConfig, appLogger zerolog.Logger) (*HtmlReporter, error) {
	moduleLogger := appLogger.With().Str("module", "HtmlReporter").Logger()

	reporter := &HtmlReporter{
		cfg:          cfg,
		logger:       moduleLogger,
		directoryMgr: NewDirectoryManager(moduleLogger),
	}

	if err := reporter.loadEmbeddedTemplate(); err != nil {
		return nil, err
	}
	return reporter, nil
}

func (r *HtmlReporter) loadEmbeddedTemplate() error {
	content, err := defaultTemplate.ReadFile("templates/" + DefaultReportTemplateName)
	if err != nil {
		return fmt.Errorf("failed to load embedded report template: %w", err)
	}

	tmpl, err := template.New(DefaultReportTemplateName).Funcs(GetCommonTemplateFunctions()).Parse(string(content))
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to parse embedded report template.")
		return fmt.Errorf("failed to parse embedded report template: %w", err)
	}
	r.template = tmpl
	return nil
}

// Render writes the HTML page for report to w
func (r *HtmlReporter) Render(w io.Writer, report *models.AuditReport) error {
	title := r.cfg.ReportTitle
	if title == "" {
		title = DefaultReportTitle
	}
	pageData := ReportPageData{Title: title, GeneratedAt: time.Now(), Report: report}

	var htmlBuffer bytes.Buffer
	if err := r.template.Execute(&htmlBuffer, pageData); err != nil {
		r.logger.Error().Err(err).Str("run_id", report.RunID).Msg("Failed to execute template")
		return fmt.Errorf("template execution failed: %w", err)
	}
	_, err := w.Write(htmlBuffer.Bytes())
	return err
}

// GenerateReport writes <output_dir>/audit_<run_id>.html and returns its path
func (r *HtmlReporter) GenerateReport(report *models.AuditReport) (string, error) {
	outputDir := r.cfg.OutputDir
	if outputDir == "" {
		outputDir = config.DefaultReporterOutputDir
	}
	if err := r.directoryMgr.EnsureOutputDirectories(outputDir); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, report); err != nil {
		return "", err
	}

	outputPath := filepath.Join(outputDir, fmt.Sprintf("audit_%s.html", report.RunID))
	if err := os.WriteFile(outputPath, buf.Bytes(), FilePermissions); err != nil {
		r.logger.Error().Err(err).Str("output", outputPath).Msg("Failed to write report file")
		return "", fmt.Errorf("failed to write report to %s: %w", outputPath, err)
	}

	r.logger.Info().Str("path", outputPath).Msg("HTML audit report generated")
	return outputPath, nil
}
