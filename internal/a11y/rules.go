// Package a11y flags common accessibility mistakes in JSX/HTML source.
package a11y

import (
	"regexp"

	"github.com/aleister1102/siteguard/internal/lint"
)

// Severity decides where a bad match is reported
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityGood    Severity = "good"
)

// Rule pairs a matcher with the severity of its matches
type Rule struct {
	Matcher  lint.Matcher
	Severity Severity
}

// Rules returns the accessibility rule set; adjacent bounds the multi-line attribute lookups
func Rules(adjacent int) []Rule {
	return []Rule{
		{Severity: SeverityError, Matcher: &lint.GuardedMatcher{
			ID:       "imgMissingAlt",
			Desc:     "image without alt text",
			Kind:     lint.ClassBad,
			Regex:    regexp.MustCompile(`<(img|Image)\b`),
			Guard:    regexp.MustCompile(`\balt\s*=`),
			Adjacent: adjacent,
		}},
		{Severity: SeverityError, Matcher: &lint.RegexMatcher{
			ID:     "htmlMissingLang",
			Desc:   "html element without a lang attribute",
			Kind:   lint.ClassBad,
			Regex:  regexp.MustCompile(`<html\b`),
			Unless: regexp.MustCompile(`\blang\s*=`),
		}},
		{Severity: SeverityError, Matcher: &lint.RegexMatcher{
			ID:     "iconButtonMissingLabel",
			Desc:   "icon-only button without an accessible name",
			Kind:   lint.ClassBad,
			Regex:  regexp.MustCompile(`<button\b[^>]*>\s*<(svg|\w*Icon)\b`),
			Unless: regexp.MustCompile(`\baria-label(ledby)?\s*=`),
		}},
		{Severity: SeverityWarning, Matcher: &lint.GuardedMatcher{
			ID:       "blankTargetWithoutRel",
			Desc:     `target="_blank" without rel`,
			Kind:     lint.ClassBad,
			Regex:    regexp.MustCompile(`\btarget\s*=\s*["'{]?_blank`),
			Guard:    regexp.MustCompile(`\brel\s*=`),
			Adjacent: adjacent,
		}},
		{Severity: SeverityWarning, Matcher: &lint.RegexMatcher{
			ID:     "clickHandlerWithoutRole",
			Desc:   "click handler on a non-interactive element without a role",
			Kind:   lint.ClassBad,
			Regex:  regexp.MustCompile(`<(div|span|li|section|img)\b[^>]*\bonClick\s*=`),
			Unless: regexp.MustCompile(`\brole\s*=`),
		}},
		{Severity: SeverityWarning, Matcher: &lint.RegexMatcher{
			ID:    "positiveTabIndex",
			Desc:  "positive tabIndex overrides the natural focus order",
			Kind:  lint.ClassBad,
			Regex: regexp.MustCompile(`tab[iI]ndex\s*=\s*["'{]?\s*[1-9]`),
		}},
		{Severity: SeverityWarning, Matcher: &lint.GuardedMatcher{
			ID:       "autoplayWithoutMuted",
			Desc:     "autoplaying media without muted",
			Kind:     lint.ClassBad,
			Regex:    regexp.MustCompile(`\bauto[pP]lay\b`),
			Guard:    regexp.MustCompile(`\bmuted\b`),
			Adjacent: adjacent,
		}},
		{Severity: SeverityGood, Matcher: &lint.RegexMatcher{
			ID:    "ariaLabel",
			Desc:  "explicit accessible name",
			Kind:  lint.ClassGood,
			Regex: regexp.MustCompile(`\baria-label(ledby)?\s*=`),
		}},
		{Severity: SeverityGood, Matcher: &lint.RegexMatcher{
			ID:    "srOnlyText",
			Desc:  "screen-reader-only text",
			Kind:  lint.ClassGood,
			Regex: regexp.MustCompile(`\bsr-only\b`),
		}},
	}
}
