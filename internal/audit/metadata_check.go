package audit

import (
	"bytes"
	"context"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/siteguard/internal/models"
)

var (
	structuredDataMarker = "application/ld+json"
	openGraphMarker      = regexp.MustCompile(`property\s*=\s*["']og:`)
	canonicalMarker      = regexp.MustCompile(`rel\s*=\s*["']canonical["']`)
	alternateMarker      = regexp.MustCompile(`hreflang\s*=`)
)

// CheckMetadata fetches an HTML page and inspects its SEO markers.
// It passes on 200 with structured data and an Open Graph property.
// Canonical and alternate-language links are recorded without affecting the verdict.
func CheckMetadata(ctx context.Context, f Fetcher, baseURL, path string) models.MetadataAuditResult {
	result := models.MetadataAuditResult{Path: path}

	resp, err := get(ctx, f, joinURL(baseURL, path))
	if err != nil {
		result.Verdict = models.VerdictError
		result.Error = err.Error()
		return result
	}

	EvaluateMetadata(&result, resp.StatusCode, resp.Body)
	return result
}

// EvaluateMetadata fills result from a fetched page
func EvaluateMetadata(result *models.MetadataAuditResult, statusCode int, body []byte) {
	text := string(body)
	result.StatusCode = statusCode
	result.HasStructuredData = strings.Contains(text, structuredDataMarker)
	result.HasOpenGraph = openGraphMarker.MatchString(text)
	result.HasCanonicalLink = canonicalMarker.MatchString(text)
	result.HasAlternateLinks = alternateMarker.MatchString(text)

	extractMetadataDetails(result, body)

	if statusCode == http.StatusOK && result.HasStructuredData && result.HasOpenGraph {
		result.Verdict = models.VerdictPass
	} else {
		result.Verdict = models.VerdictFail
	}
}

// extractMetadataDetails records canonical href, hreflang values and og:title for the report
func extractMetadataDetails(result *models.MetadataAuditResult, body []byte) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return
	}

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		result.CanonicalHref = strings.TrimSpace(href)
	}

	langs := make(map[string]struct{})
	doc.Find(`link[rel="alternate"][hreflang]`).Each(func(_ int, s *goquery.Selection) {
		if lang := strings.TrimSpace(s.AttrOr("hreflang", "")); lang != "" {
			langs[lang] = struct{}{}
		}
	})
	for lang := range langs {
		result.AlternateLangs = append(result.AlternateLangs, lang)
	}
	sort.Strings(result.AlternateLangs)

	result.OGTitle = strings.TrimSpace(doc.Find(`meta[property="og:title"]`).First().AttrOr("content", ""))
}
