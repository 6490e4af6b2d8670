package audit

import (
	"context"
	"net/http"

	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/models"
)

// ClassifyRedirect maps a status code to the redirect kind it announces
func ClassifyRedirect(statusCode int) models.RedirectKind {
	switch statusCode {
	case http.StatusMovedPermanently:
		return models.RedirectPermanent
	case http.StatusFound:
		return models.RedirectTemporary
	default:
		return models.RedirectNone
	}
}

// LocationMatches accepts the expected destination in relative form or as baseURL + destination
func LocationMatches(location, baseURL, expected string) bool {
	return location == expected || location == joinURL(baseURL, expected)
}

// CheckRedirect requests check.Source with redirect following disabled.
// A HEAD answered with 405 or 501 is retried as GET.
// The client passed in must not follow redirects.
func CheckRedirect(ctx context.Context, f Fetcher, baseURL string, check config.RedirectCheck) models.RedirectAuditResult {
	result := models.RedirectAuditResult{
		Source:              check.Source,
		ExpectedDestination: check.ExpectedDestination,
		Kind:                models.RedirectNone,
	}

	target := joinURL(baseURL, check.Source)
	resp, err := fetch(ctx, f, http.MethodHead, target)
	if err == nil && (resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented) {
		resp, err = get(ctx, f, target)
	}
	if err != nil {
		result.Verdict = models.VerdictError
		result.Error = err.Error()
		return result
	}

	result.ActualStatus = resp.StatusCode
	result.ActualLocation = resp.Header("Location")
	result.Kind = ClassifyRedirect(resp.StatusCode)

	if result.Kind != models.RedirectNone && LocationMatches(result.ActualLocation, baseURL, check.ExpectedDestination) {
		result.Verdict = models.VerdictPass
	} else {
		result.Verdict = models.VerdictFail
	}
	return result
}
