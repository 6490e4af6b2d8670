package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	LogConfig      LogConfig      `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ServerConfig   ServerConfig   `json:"server_config,omitempty" yaml:"server_config,omitempty"`
	RedirectConfig RedirectConfig `json:"redirect_config,omitempty" yaml:"redirect_config,omitempty"`
	ContentConfig  ContentConfig  `json:"content_config,omitempty" yaml:"content_config,omitempty"`
	ParityConfig   ParityConfig   `json:"parity_config,omitempty" yaml:"parity_config,omitempty"`
	AuditConfig    AuditConfig    `json:"audit_config,omitempty" yaml:"audit_config,omitempty"`
	ScanConfig     ScanConfig     `json:"scan_config,omitempty" yaml:"scan_config,omitempty"`
	CIConfig       CIConfig       `json:"ci_config,omitempty" yaml:"ci_config,omitempty"`
	StorageConfig  StorageConfig  `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	ReporterConfig ReporterConfig `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:      NewDefaultLogConfig(),
		ServerConfig:   NewDefaultServerConfig(),
		RedirectConfig: NewDefaultRedirectConfig(),
		ContentConfig:  NewDefaultContentConfig(),
		ParityConfig:   NewDefaultParityConfig(),
		AuditConfig:    NewDefaultAuditConfig(),
		ScanConfig:     NewDefaultScanConfig(),
		CIConfig:       NewDefaultCIConfig(),
		StorageConfig:  NewDefaultStorageConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath, supports both JSON and YAML formats.
// Values absent from the file keep their defaults.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		if providedPath != "" {
			return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
		}
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	fileManager := common.NewFileManager(logger)
	data, err := fileManager.ReadFile(filePath, common.DefaultMaxReadSize)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Configuration file loaded")
	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}
