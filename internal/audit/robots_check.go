package audit

import (
	"context"
	"net/http"
	"strings"

	"github.com/aleister1102/siteguard/internal/models"
	"github.com/temoto/robotstxt"
)

// CheckRobots fetches /robots.txt.
// It passes on 200 with a Sitemap: and a User-agent: directive; Disallow: is recorded only.
func CheckRobots(ctx context.Context, f Fetcher, baseURL string) models.RobotsAuditResult {
	var result models.RobotsAuditResult

	resp, err := get(ctx, f, joinURL(baseURL, "/robots.txt"))
	if err != nil {
		result.Verdict = models.VerdictError
		result.Error = err.Error()
		return result
	}

	EvaluateRobots(&result, resp.StatusCode, resp.Body)
	return result
}

// EvaluateRobots fills result from a fetched robots.txt response
func EvaluateRobots(result *models.RobotsAuditResult, statusCode int, body []byte) {
	text := string(body)
	result.StatusCode = statusCode
	result.HasSitemap = strings.Contains(text, "Sitemap:")
	result.HasUserAgent = strings.Contains(text, "User-agent:")
	result.HasDisallow = strings.Contains(text, "Disallow:")

	if statusCode == http.StatusOK {
		if robots, err := robotstxt.FromBytes(body); err == nil {
			result.Sitemaps = robots.Sitemaps
		}
	}

	if statusCode == http.StatusOK && result.HasSitemap && result.HasUserAgent {
		result.Verdict = models.VerdictPass
	} else {
		result.Verdict = models.VerdictFail
	}
}
