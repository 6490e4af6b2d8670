package config

const (
	// Output formats shared by every report writer
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatHTML = "html"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Server Defaults
	DefaultServerListenAddr          = ":8080"
	DefaultServerSiteURL             = "http://localhost:8080"
	DefaultServerReadTimeoutSecs     = 15
	DefaultServerWriteTimeoutSecs    = 30
	DefaultServerShutdownTimeoutSecs = 10

	// Content Defaults
	DefaultContentRoot   = "content"
	DefaultPrimaryLocale = "tr"
	DefaultOtherLocale   = "en"

	// Audit Defaults
	DefaultAuditBaseURL     = "http://localhost:3000"
	DefaultAuditTimeoutSecs = 10
	DefaultAuditConcurrency = 4
	DefaultAuditRetries     = 0
	DefaultAuditUserAgent   = "siteguard-audit/1.0"

	// Scan Defaults
	DefaultScanAdjacentLines = 3

	// CI Defaults
	DefaultCISubprocessTimeoutSecs = 120

	// Storage Defaults
	DefaultStorageSQLitePath       = "database/audit_history.db"
	DefaultStorageParquetBasePath  = "database"
	DefaultStorageCompressionCodec = "zstd"

	// Reporter Defaults
	DefaultReporterOutputDir   = "reports/audit"
	DefaultReporterReportTitle = "Site Audit Report"

	// ConfigPathEnv overrides the config file lookup
	ConfigPathEnv = "SITEGUARD_CONFIG_PATH"
)

// DefaultContentExtensions are the recognized content file extensions.
var DefaultContentExtensions = []string{".md", ".mdx", ".json"}

// DefaultScanExtensions are the source file extensions the static scanners read.
var DefaultScanExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".css", ".scss"}

// DefaultScanSkipDirs are build-artifact directories never descended into.
var DefaultScanSkipDirs = []string{"node_modules", ".next", "dist", "build", "out", "coverage"}
