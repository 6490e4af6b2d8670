// Package seo generates the sitemap and robots documents served by the site.
package seo

import (
	"encoding/xml"
	"sort"
	"strings"

	"github.com/aleister1102/siteguard/internal/common"
)

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNamespace   = "http://www.w3.org/1999/xhtml"
)

// Alternate is one locale variant of a page
type Alternate struct {
	Hreflang string
	Path     string
}

// Page is one sitemap entry; Path is absolute
type Page struct {
	Path       string
	Alternates []Alternate
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	XHTML   string   `xml:"xmlns:xhtml,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc   string    `xml:"loc"`
	Links []xmlLink `xml:"xhtml:link"`
}

type xmlLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// BuildSitemap renders pages as a sitemap urlset, sorted by path
func BuildSitemap(baseURL string, pages []Page) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")

	sorted := append([]Page(nil), pages...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	set := xmlURLSet{XMLNS: sitemapNamespace, XHTML: xhtmlNamespace, URLs: make([]xmlURL, 0, len(sorted))}
	for _, page := range sorted {
		if !common.IsAbsoluteURLPath(page.Path) {
			return nil, common.NewValidationError("page.path", page.Path, "sitemap paths must be absolute")
		}
		entry := xmlURL{Loc: base + page.Path}
		for _, alt := range page.Alternates {
			entry.Links = append(entry.Links, xmlLink{Rel: "alternate", Hreflang: alt.Hreflang, Href: base + alt.Path})
		}
		set.URLs = append(set.URLs, entry)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, common.WrapError(err, "failed to marshal sitemap")
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}
