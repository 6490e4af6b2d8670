package audit

import (
	"context"
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/aleister1102/siteguard/internal/models"
)

// SitemapNamespace is the canonical sitemap protocol namespace
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

// CheckSitemap fetches /sitemap.xml.
// It passes on 200 with an opening urlset tag, at least one url entry, and the sitemap namespace.
func CheckSitemap(ctx context.Context, f Fetcher, baseURL string) models.SitemapAuditResult {
	var result models.SitemapAuditResult

	resp, err := get(ctx, f, joinURL(baseURL, "/sitemap.xml"))
	if err != nil {
		result.Verdict = models.VerdictError
		result.Error = err.Error()
		return result
	}

	EvaluateSitemap(&result, resp.StatusCode, resp.Body)
	return result
}

// EvaluateSitemap fills result from a fetched sitemap response
func EvaluateSitemap(result *models.SitemapAuditResult, statusCode int, body []byte) {
	text := string(body)
	result.StatusCode = statusCode
	result.HasURLSet = strings.Contains(text, "<urlset")
	result.HasURLEntry = strings.Contains(text, "<url>")
	result.HasNamespace = strings.Contains(text, SitemapNamespace)

	var set sitemapURLSet
	if err := xml.Unmarshal(body, &set); err == nil {
		result.URLCount = len(set.URLs)
	}

	if statusCode == http.StatusOK && result.HasURLSet && result.HasURLEntry && result.HasNamespace {
		result.Verdict = models.VerdictPass
	} else {
		result.Verdict = models.VerdictFail
	}
}
