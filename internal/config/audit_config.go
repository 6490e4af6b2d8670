package config

// RedirectCheck is one legacy path the audit expects to be redirected
type RedirectCheck struct {
	Source              string `json:"source" yaml:"source" validate:"required,abspath"`
	ExpectedDestination string `json:"expected_destination" yaml:"expected_destination" validate:"required,abspath"`
}

// AuditConfig configures the live SEO/redirect audit
type AuditConfig struct {
	BaseURL            string          `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"required,url"`
	TimeoutSecs        int             `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"min=1"`
	Concurrency        int             `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"min=1,max=64"`
	Retries            int             `json:"retries,omitempty" yaml:"retries,omitempty" validate:"min=0,max=5"`
	UserAgent          string          `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	InsecureSkipVerify bool            `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	EnableHTTP2        bool            `json:"enable_http2" yaml:"enable_http2"`
	RedirectChecks     []RedirectCheck `json:"redirect_checks,omitempty" yaml:"redirect_checks,omitempty" validate:"omitempty,dive"`
	MetadataPaths      []string        `json:"metadata_paths,omitempty" yaml:"metadata_paths,omitempty" validate:"omitempty,dive,abspath"`
	OutputFormat       string          `json:"output_format,omitempty" yaml:"output_format,omitempty" validate:"omitempty,outputformat"`
}

// NewDefaultAuditConfig creates default audit configuration.
// RedirectChecks stays empty so the audit derives its checks from the effective redirect table.
func NewDefaultAuditConfig() AuditConfig {
	return AuditConfig{
		BaseURL:            DefaultAuditBaseURL,
		TimeoutSecs:        DefaultAuditTimeoutSecs,
		Concurrency:        DefaultAuditConcurrency,
		Retries:            DefaultAuditRetries,
		UserAgent:          DefaultAuditUserAgent,
		InsecureSkipVerify: false,
		EnableHTTP2:        true,
		RedirectChecks:     []RedirectCheck{},
		MetadataPaths: []string{
			"/tr",
			"/en",
			"/tr/kurumsal/hakkimizda",
			"/en/corporate/about-us",
			"/tr/kariyer",
			"/en/careers",
			"/tr/markalar",
			"/en/brands",
		},
		OutputFormat: OutputFormatText,
	}
}

// ScanConfig configures the static motion/accessibility scanners
type ScanConfig struct {
	Roots         []string `json:"roots,omitempty" yaml:"roots,omitempty" validate:"min=1"`
	Extensions    []string `json:"extensions,omitempty" yaml:"extensions,omitempty" validate:"min=1,dive,startswith=."`
	SkipDirs      []string `json:"skip_dirs,omitempty" yaml:"skip_dirs,omitempty"`
	AdjacentLines int      `json:"adjacent_lines,omitempty" yaml:"adjacent_lines,omitempty" validate:"min=0,max=50"`
}

// NewDefaultScanConfig creates default scan configuration
func NewDefaultScanConfig() ScanConfig {
	return ScanConfig{
		Roots:         []string{"src", "app", "components", "styles"},
		Extensions:    append([]string(nil), DefaultScanExtensions...),
		SkipDirs:      append([]string(nil), DefaultScanSkipDirs...),
		AdjacentLines: DefaultScanAdjacentLines,
	}
}

// CIConfig configures the combined CI entry point
type CIConfig struct {
	SubprocessTimeoutSecs int    `json:"subprocess_timeout_secs,omitempty" yaml:"subprocess_timeout_secs,omitempty" validate:"min=1"`
	OutputFormat          string `json:"output_format,omitempty" yaml:"output_format,omitempty" validate:"omitempty,oneof=text json"`
}

// NewDefaultCIConfig creates default CI configuration
func NewDefaultCIConfig() CIConfig {
	return CIConfig{
		SubprocessTimeoutSecs: DefaultCISubprocessTimeoutSecs,
		OutputFormat:          OutputFormatText,
	}
}
