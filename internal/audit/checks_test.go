package audit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/httpclient"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSitemap = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
<url><loc>https://example.com/tr</loc></url>
<url><loc>https://example.com/en</loc></url>
</urlset>`

func noFollowClient(t *testing.T) *httpclient.HTTPClient {
	t.Helper()
	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).WithFollowRedirects(false).Build()
	require.NoError(t, err)
	return client
}

func TestClassifyRedirect(t *testing.T) {
	assert.Equal(t, models.RedirectPermanent, ClassifyRedirect(301))
	assert.Equal(t, models.RedirectTemporary, ClassifyRedirect(302))
	assert.Equal(t, models.RedirectNone, ClassifyRedirect(307))
	assert.Equal(t, models.RedirectNone, ClassifyRedirect(200))
}

func TestLocationMatches(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{location: "/tr/kariyer", want: true},
		{location: "http://localhost:3000/tr/kariyer", want: true},
		{location: "http://localhost:3000//tr/kariyer", want: false},
		{location: "/tr/kariyer/", want: false},
		{location: "https://other.example/tr/kariyer", want: false},
		{location: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, LocationMatches(tt.location, "http://localhost:3000/", "/tr/kariyer"))
		})
	}
}

func TestCheckRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/kariyer":
			w.Header().Set("Location", "/tr/kariyer")
			w.WriteHeader(http.StatusMovedPermanently)
		case "/absolute":
			w.Header().Set("Location", "http://"+r.Host+"/tr/absolute")
			w.WriteHeader(http.StatusMovedPermanently)
		case "/":
			w.Header().Set("Location", "/tr")
			w.WriteHeader(http.StatusFound)
		case "/wrong":
			w.Header().Set("Location", "/tr/elsewhere")
			w.WriteHeader(http.StatusMovedPermanently)
		case "/head-not-allowed":
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.Header().Set("Location", "/tr/get")
			w.WriteHeader(http.StatusMovedPermanently)
		case "/see-other":
			w.Header().Set("Location", "/tr/see-other")
			w.WriteHeader(http.StatusSeeOther)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	tests := []struct {
		name        string
		check       config.RedirectCheck
		wantVerdict models.Verdict
		wantKind    models.RedirectKind
	}{
		{name: "relative location", check: config.RedirectCheck{Source: "/kariyer", ExpectedDestination: "/tr/kariyer"}, wantVerdict: models.VerdictPass, wantKind: models.RedirectPermanent},
		{name: "absolute location", check: config.RedirectCheck{Source: "/absolute", ExpectedDestination: "/tr/absolute"}, wantVerdict: models.VerdictPass, wantKind: models.RedirectPermanent},
		{name: "temporary root", check: config.RedirectCheck{Source: "/", ExpectedDestination: "/tr"}, wantVerdict: models.VerdictPass, wantKind: models.RedirectTemporary},
		{name: "wrong destination", check: config.RedirectCheck{Source: "/wrong", ExpectedDestination: "/tr/right"}, wantVerdict: models.VerdictFail, wantKind: models.RedirectPermanent},
		{name: "HEAD falls back to GET", check: config.RedirectCheck{Source: "/head-not-allowed", ExpectedDestination: "/tr/get"}, wantVerdict: models.VerdictPass, wantKind: models.RedirectPermanent},
		{name: "no redirect", check: config.RedirectCheck{Source: "/tr/kariyer", ExpectedDestination: "/tr/kariyer"}, wantVerdict: models.VerdictFail, wantKind: models.RedirectNone},
		{name: "303 is not a recognised redirect", check: config.RedirectCheck{Source: "/see-other", ExpectedDestination: "/tr/see-other"}, wantVerdict: models.VerdictFail, wantKind: models.RedirectNone},
	}

	client := noFollowClient(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckRedirect(context.Background(), client, server.URL, tt.check)
			assert.Equal(t, tt.wantVerdict, result.Verdict)
			assert.Equal(t, tt.wantKind, result.Kind)
			assert.Empty(t, result.Error)
		})
	}
}

func TestCheckRedirect_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	result := CheckRedirect(context.Background(), noFollowClient(t), baseURL,
		config.RedirectCheck{Source: "/kariyer", ExpectedDestination: "/tr/kariyer"})

	assert.Equal(t, models.VerdictError, result.Verdict)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, models.RedirectNone, result.Kind)
}

func TestEvaluateSitemap(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		want      models.Verdict
		wantCount int
	}{
		{name: "valid", status: 200, body: validSitemap, want: models.VerdictPass, wantCount: 2},
		{name: "not found", status: 404, body: validSitemap, want: models.VerdictFail, wantCount: 2},
		{name: "missing namespace", status: 200, body: `<urlset><url><loc>https://example.com/tr</loc></url></urlset>`, want: models.VerdictFail, wantCount: 1},
		{name: "no url entry", status: 200, body: `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"></urlset>`, want: models.VerdictFail},
		{name: "sitemap index", status: 200, body: `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"><sitemap><loc>x</loc></sitemap></sitemapindex>`, want: models.VerdictFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result models.SitemapAuditResult
			EvaluateSitemap(&result, tt.status, []byte(tt.body))
			assert.Equal(t, tt.want, result.Verdict)
			assert.Equal(t, tt.wantCount, result.URLCount)
		})
	}
}

func TestEvaluateRobots(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		want         models.Verdict
		wantDisallow bool
		wantSitemaps []string
	}{
		{
			name:         "complete",
			status:       200,
			body:         "User-agent: *\nAllow: /\nDisallow: /api/\nSitemap: https://example.com/sitemap.xml\n",
			want:         models.VerdictPass,
			wantDisallow: true,
			wantSitemaps: []string{"https://example.com/sitemap.xml"},
		},
		{
			name:         "disallow is optional",
			status:       200,
			body:         "User-agent: *\nSitemap: https://example.com/sitemap.xml\n",
			want:         models.VerdictPass,
			wantSitemaps: []string{"https://example.com/sitemap.xml"},
		},
		{name: "missing sitemap", status: 200, body: "User-agent: *\nDisallow:\n", want: models.VerdictFail, wantDisallow: true},
		{name: "missing user agent", status: 200, body: "Sitemap: https://example.com/sitemap.xml\n", want: models.VerdictFail, wantSitemaps: []string{"https://example.com/sitemap.xml"}},
		{name: "server error", status: 500, body: "User-agent: *\nSitemap: https://example.com/sitemap.xml\n", want: models.VerdictFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result models.RobotsAuditResult
			EvaluateRobots(&result, tt.status, []byte(tt.body))
			assert.Equal(t, tt.want, result.Verdict)
			assert.Equal(t, tt.wantDisallow, result.HasDisallow)
			assert.Equal(t, tt.wantSitemaps, result.Sitemaps)
		})
	}
}

func TestEvaluateMetadata(t *testing.T) {
	full := `<html lang="tr"><head>
<title>Kariyer</title>
<link rel="canonical" href="https://example.com/tr/kariyer">
<link rel="alternate" hreflang="en" href="https://example.com/en/careers">
<link rel="alternate" hreflang="tr" href="https://example.com/tr/kariyer">
<meta property="og:title" content="Kariyer">
<script type="application/ld+json">{"@type":"Organization"}</script>
</head><body></body></html>`
	minimal := `<html><head>
<meta property='og:title' content="Ana Sayfa">
<script type="application/ld+json">{}</script>
</head></html>`

	tests := []struct {
		name          string
		status        int
		body          string
		want          models.Verdict
		wantCanonical bool
		wantAlternate bool
	}{
		{name: "full metadata", status: 200, body: full, want: models.VerdictPass, wantCanonical: true, wantAlternate: true},
		{name: "passes without canonical or alternates", status: 200, body: minimal, want: models.VerdictPass},
		{name: "missing structured data", status: 200, body: `<meta property="og:title" content="x">`, want: models.VerdictFail},
		{name: "missing open graph", status: 200, body: `<script type="application/ld+json">{}</script><meta name="og:title">`, want: models.VerdictFail},
		{name: "not found", status: 404, body: full, want: models.VerdictFail, wantCanonical: true, wantAlternate: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := models.MetadataAuditResult{Path: "/tr/kariyer"}
			EvaluateMetadata(&result, tt.status, []byte(tt.body))
			assert.Equal(t, tt.want, result.Verdict)
			assert.Equal(t, tt.wantCanonical, result.HasCanonicalLink)
			assert.Equal(t, tt.wantAlternate, result.HasAlternateLinks)
		})
	}

	t.Run("details", func(t *testing.T) {
		var result models.MetadataAuditResult
		EvaluateMetadata(&result, 200, []byte(full))
		assert.Equal(t, "https://example.com/tr/kariyer", result.CanonicalHref)
		assert.Equal(t, []string{"en", "tr"}, result.AlternateLangs)
		assert.Equal(t, "Kariyer", result.OGTitle)
	})
}
