package models

import (
	"math"
	"time"
)

// Verdict is the outcome of a single audit check
type Verdict string

const (
	VerdictPass  Verdict = "PASS"
	VerdictFail  Verdict = "FAIL"
	VerdictError Verdict = "ERROR"
)

// RedirectKind classifies the status code a legacy path answered with
type RedirectKind string

const (
	RedirectPermanent RedirectKind = "permanent"
	RedirectTemporary RedirectKind = "temporary"
	RedirectNone      RedirectKind = "none"
)

// CheckKind names the audit check families, used in archives and reports
type CheckKind string

const (
	CheckRedirect CheckKind = "redirect"
	CheckSitemap  CheckKind = "sitemap"
	CheckRobots   CheckKind = "robots"
	CheckMetadata CheckKind = "metadata"
)

// RedirectAuditResult is the outcome of probing one legacy path
type RedirectAuditResult struct {
	Source              string       `json:"source"`
	ExpectedDestination string       `json:"expectedDestination"`
	ActualStatus        int          `json:"actualStatus"`
	ActualLocation      string       `json:"actualLocation"`
	Kind                RedirectKind `json:"kind"`
	Verdict             Verdict      `json:"verdict"`
	Error               string       `json:"error,omitempty"`
}

// SitemapAuditResult is the outcome of the /sitemap.xml check
type SitemapAuditResult struct {
	StatusCode   int     `json:"statusCode"`
	HasURLSet    bool    `json:"hasUrlset"`
	HasURLEntry  bool    `json:"hasUrlEntry"`
	HasNamespace bool    `json:"hasNamespace"`
	URLCount     int     `json:"urlCount"`
	Verdict      Verdict `json:"verdict"`
	Error        string  `json:"error,omitempty"`
}

// RobotsAuditResult is the outcome of the /robots.txt check
type RobotsAuditResult struct {
	StatusCode   int      `json:"statusCode"`
	HasSitemap   bool     `json:"hasSitemap"`
	HasUserAgent bool     `json:"hasUserAgent"`
	HasDisallow  bool     `json:"hasDisallow"`
	Sitemaps     []string `json:"sitemaps,omitempty"`
	Verdict      Verdict  `json:"verdict"`
	Error        string   `json:"error,omitempty"`
}

// MetadataAuditResult is the outcome of inspecting one HTML page.
// Canonical and alternate links are recorded but never change the verdict.
type MetadataAuditResult struct {
	Path              string   `json:"path"`
	StatusCode        int      `json:"statusCode"`
	HasStructuredData bool     `json:"hasStructuredData"`
	HasOpenGraph      bool     `json:"hasOpenGraph"`
	HasCanonicalLink  bool     `json:"hasCanonicalLink"`
	HasAlternateLinks bool     `json:"hasAlternateLinks"`
	CanonicalHref     string   `json:"canonicalHref,omitempty"`
	AlternateLangs    []string `json:"alternateLangs,omitempty"`
	OGTitle           string   `json:"ogTitle,omitempty"`
	Verdict           Verdict  `json:"verdict"`
	Error             string   `json:"error,omitempty"`
}

// AuditSummary aggregates verdicts across every check of a run
type AuditSummary struct {
	Passed     int     `json:"passed"`
	Failed     int     `json:"failed"`
	Errored    int     `json:"errored"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// AuditReport is the full result of one audit run against a base URL
type AuditReport struct {
	RunID      string                `json:"runId"`
	BaseURL    string                `json:"baseUrl"`
	StartedAt  time.Time             `json:"startedAt"`
	FinishedAt time.Time             `json:"finishedAt"`
	Redirects  []RedirectAuditResult `json:"redirects"`
	Sitemap    SitemapAuditResult    `json:"sitemap"`
	Robots     RobotsAuditResult     `json:"robots"`
	Metadata   []MetadataAuditResult `json:"metadata"`
	Summary    AuditSummary          `json:"summary"`
}

// Verdicts lists every verdict of the report in check order
func (r *AuditReport) Verdicts() []Verdict {
	verdicts := make([]Verdict, 0, len(r.Redirects)+2+len(r.Metadata))
	for _, res := range r.Redirects {
		verdicts = append(verdicts, res.Verdict)
	}
	verdicts = append(verdicts, r.Sitemap.Verdict, r.Robots.Verdict)
	for _, res := range r.Metadata {
		verdicts = append(verdicts, res.Verdict)
	}
	return verdicts
}

// Summarize recomputes Summary from the individual verdicts.
// Total is redirects + sitemap + robots + metadata.
func (r *AuditReport) Summarize() AuditSummary {
	var s AuditSummary
	for _, v := range r.Verdicts() {
		s.Total++
		switch v {
		case VerdictPass:
			s.Passed++
		case VerdictFail:
			s.Failed++
		default:
			s.Errored++
		}
	}
	if s.Total > 0 {
		s.Percentage = math.Round(float64(s.Passed)/float64(s.Total)*1000) / 10
	}
	r.Summary = s
	return s
}

// AllPassed reports whether every check of the run passed
func (s AuditSummary) AllPassed() bool {
	return s.Total > 0 && s.Passed == s.Total
}
