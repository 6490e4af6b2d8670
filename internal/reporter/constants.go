package reporter

const (
	DefaultReportTemplateName = "audit_report.html.tmpl"
	DefaultReportTitle        = "Site Audit Report"

	// File permissions
	DirPermissions  = 0755
	FilePermissions = 0644
)
