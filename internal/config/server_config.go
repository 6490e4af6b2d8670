package config

// ServerConfig configures the HTTP front door that applies the redirect table
type ServerConfig struct {
	ListenAddr          string   `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty" validate:"required"`
	SiteURL             string   `json:"site_url,omitempty" yaml:"site_url,omitempty" validate:"required,url"`
	UpstreamURL         string   `json:"upstream_url,omitempty" yaml:"upstream_url,omitempty" validate:"omitempty,url"`
	DisallowPaths       []string `json:"disallow_paths,omitempty" yaml:"disallow_paths,omitempty" validate:"omitempty,dive,abspath"`
	ReadTimeoutSecs     int      `json:"read_timeout_secs,omitempty" yaml:"read_timeout_secs,omitempty" validate:"min=1"`
	WriteTimeoutSecs    int      `json:"write_timeout_secs,omitempty" yaml:"write_timeout_secs,omitempty" validate:"min=1"`
	ShutdownTimeoutSecs int      `json:"shutdown_timeout_secs,omitempty" yaml:"shutdown_timeout_secs,omitempty" validate:"min=1"`
}

// NewDefaultServerConfig creates default server configuration
func NewDefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddr:          DefaultServerListenAddr,
		SiteURL:             DefaultServerSiteURL,
		UpstreamURL:         "",
		DisallowPaths:       []string{"/api/"},
		ReadTimeoutSecs:     DefaultServerReadTimeoutSecs,
		WriteTimeoutSecs:    DefaultServerWriteTimeoutSecs,
		ShutdownTimeoutSecs: DefaultServerShutdownTimeoutSecs,
	}
}

// RedirectConfig points at an optional rules file replacing the built-in legacy table
type RedirectConfig struct {
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty"`
}

// NewDefaultRedirectConfig creates default redirect configuration
func NewDefaultRedirectConfig() RedirectConfig {
	return RedirectConfig{}
}
