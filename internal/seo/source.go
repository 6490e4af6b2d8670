package seo

import (
	"path"

	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/parity"
	"github.com/rs/zerolog"
)

// Source produces the documents served at /sitemap.xml and /robots.txt
type Source interface {
	Sitemap() ([]byte, error)
	Robots() []byte
}

// ContentSource derives both documents from the content tree on every call,
// so content edits show up without a restart.
type ContentSource struct {
	baseURL  string
	content  config.ContentConfig
	disallow []string
	logger   zerolog.Logger
}

// NewContentSource creates a source for the site at baseURL
func NewContentSource(baseURL string, content config.ContentConfig, disallow []string, logger zerolog.Logger) *ContentSource {
	return &ContentSource{
		baseURL:  baseURL,
		content:  content,
		disallow: disallow,
		logger:   logger.With().Str("component", "SEOSource").Logger(),
	}
}

// Pages lists the locale homes and every content slug of every locale.
// A slug present in more than one locale carries alternates for all of them.
func (s *ContentSource) Pages() ([]Page, error) {
	sets := make(map[string]parity.SlugSet, len(s.content.Locales))
	for _, locale := range s.content.Locales {
		set, err := parity.LoadSlugSet(s.content.Root, locale, s.content.Extensions)
		if err != nil {
			return nil, err
		}
		sets[locale] = set
	}

	homes := make([]Alternate, 0, len(s.content.Locales))
	for _, locale := range s.content.Locales {
		homes = append(homes, Alternate{Hreflang: locale, Path: "/" + locale})
	}

	var pages []Page
	for _, home := range homes {
		pages = append(pages, Page{Path: home.Path, Alternates: homes})
	}

	for _, locale := range s.content.Locales {
		for _, slug := range sets[locale].Sorted() {
			var alternates []Alternate
			for _, other := range s.content.Locales {
				if sets[other].Has(slug) {
					alternates = append(alternates, Alternate{Hreflang: other, Path: path.Join("/", other, slug)})
				}
			}
			if len(alternates) < 2 {
				alternates = nil
			}
			pages = append(pages, Page{Path: path.Join("/", locale, slug), Alternates: alternates})
		}
	}
	return pages, nil
}

// Sitemap builds the sitemap from the current content tree
func (s *ContentSource) Sitemap() ([]byte, error) {
	pages, err := s.Pages()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to collect sitemap pages")
		return nil, err
	}
	s.logger.Debug().Int("pages", len(pages)).Msg("Sitemap generated")
	return BuildSitemap(s.baseURL, pages)
}

// Robots builds robots.txt
func (s *ContentSource) Robots() []byte {
	return BuildRobots(s.baseURL, s.disallow)
}
