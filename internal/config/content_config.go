package config

// ContentConfig describes the per-locale content tree
type ContentConfig struct {
	Root       string   `json:"root,omitempty" yaml:"root,omitempty" validate:"required"`
	Locales    []string `json:"locales,omitempty" yaml:"locales,omitempty" validate:"len=2,dive,locale"`
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" validate:"min=1,dive,startswith=."`
}

// NewDefaultContentConfig creates default content configuration
func NewDefaultContentConfig() ContentConfig {
	return ContentConfig{
		Root:       DefaultContentRoot,
		Locales:    []string{DefaultPrimaryLocale, DefaultOtherLocale},
		Extensions: append([]string(nil), DefaultContentExtensions...),
	}
}

// PrimaryLocale is the locale the site root redirects to
func (c ContentConfig) PrimaryLocale() string {
	if len(c.Locales) == 0 {
		return DefaultPrimaryLocale
	}
	return c.Locales[0]
}

// ParityConfig configures the content parity report
type ParityConfig struct {
	OutputFormat string `json:"output_format,omitempty" yaml:"output_format,omitempty" validate:"omitempty,oneof=text json"`
	BaselineFile string `json:"baseline_file,omitempty" yaml:"baseline_file,omitempty"`
}

// NewDefaultParityConfig creates default parity configuration
func NewDefaultParityConfig() ParityConfig {
	return ParityConfig{
		OutputFormat: OutputFormatText,
	}
}
