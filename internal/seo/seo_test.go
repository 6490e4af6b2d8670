package seo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aleister1102/siteguard/internal/audit"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/robotstxt"
)

func TestBuildSitemap(t *testing.T) {
	pages := []Page{
		{Path: "/tr/kariyer", Alternates: []Alternate{{Hreflang: "tr", Path: "/tr/kariyer"}, {Hreflang: "en", Path: "/en/kariyer"}}},
		{Path: "/en"},
	}

	out, err := BuildSitemap("https://www.example.com/", pages)

	require.NoError(t, err)
	text := string(out)
	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, text, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, text, `xmlns:xhtml="http://www.w3.org/1999/xhtml"`)
	assert.Contains(t, text, `<xhtml:link rel="alternate" hreflang="en" href="https://www.example.com/en/kariyer">`)
	assert.Less(t, strings.Index(text, "<loc>https://www.example.com/en</loc>"),
		strings.Index(text, "<loc>https://www.example.com/tr/kariyer</loc>"))

	// the generated document satisfies the audit's own sitemap check
	var result models.SitemapAuditResult
	audit.EvaluateSitemap(&result, 200, out)
	assert.Equal(t, models.VerdictPass, result.Verdict)
	assert.Equal(t, 2, result.URLCount)
}

func TestBuildSitemap_RejectsRelativePath(t *testing.T) {
	_, err := BuildSitemap("https://www.example.com", []Page{{Path: "tr"}})

	assert.Error(t, err)
}

func TestBuildRobots(t *testing.T) {
	out := BuildRobots("https://www.example.com/", []string{"/api/", "/preview/"})

	assert.Equal(t, "User-agent: *\nAllow: /\nDisallow: /api/\nDisallow: /preview/\n\nSitemap: https://www.example.com/sitemap.xml\n", string(out))

	robots, err := robotstxt.FromBytes(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.example.com/sitemap.xml"}, robots.Sitemaps)
	assert.False(t, robots.TestAgent("/api/forms", "Googlebot"))
	assert.True(t, robots.TestAgent("/tr/kariyer", "Googlebot"))
}

func TestContentSource_Pages(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"tr/a.md", "tr/b.mdx", "en/b.md", "en/c.json"} {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	content := config.NewDefaultContentConfig()
	content.Root = root

	source := NewContentSource("https://www.example.com", content, nil, zerolog.Nop())

	pages, err := source.Pages()

	require.NoError(t, err)
	paths := make([]string, 0, len(pages))
	for _, p := range pages {
		paths = append(paths, p.Path)
	}
	assert.Equal(t, []string{"/tr", "/en", "/tr/a", "/tr/b", "/en/b", "/en/c"}, paths)
	assert.Len(t, pages[0].Alternates, 2)
	assert.Nil(t, pages[2].Alternates)
	assert.Equal(t, []Alternate{{Hreflang: "tr", Path: "/tr/b"}, {Hreflang: "en", Path: "/en/b"}}, pages[3].Alternates)

	sitemap, err := source.Sitemap()
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(string(sitemap), "<url>"))
}
