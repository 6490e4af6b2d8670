// Package motion flags animation code that ignores the user's reduced-motion preference.
package motion

import (
	"regexp"
	"strings"

	"github.com/aleister1102/siteguard/internal/lint"
)

// MissingCheckRule is the synthetic file-level warning for animated files without any good practice
const MissingCheckRule = "missingReducedMotionCheck"

// GuardIdentifiers mark a file as motion-aware.
// When any of them occurs anywhere in a file, every bad match in that file is reported
// as a warning instead of an issue. This is a heuristic: the matched line itself may be unguarded.
var GuardIdentifiers = []string{
	"useReducedMotion",
	"usePrefersReducedMotion",
	"useMotionPreference",
	"prefersReducedMotion",
}

// ContainsGuard reports whether content mentions any guard identifier
func ContainsGuard(content string) bool {
	for _, id := range GuardIdentifiers {
		if strings.Contains(content, id) {
			return true
		}
	}
	return false
}

var reducedReference = regexp.MustCompile(`(?i)reduced`)

// Matchers returns the good and bad motion patterns; adjacent bounds the guard lookups
func Matchers(adjacent int) []lint.Matcher {
	return []lint.Matcher{
		&lint.RegexMatcher{
			ID:    "useReducedMotionHook",
			Desc:  "reduced-motion hook in use",
			Kind:  lint.ClassGood,
			Regex: regexp.MustCompile(`\b(useReducedMotion|usePrefersReducedMotion|useMotionPreference)\s*\(`),
		},
		&lint.RegexMatcher{
			ID:    "reducedVariant",
			Desc:  "animation variant with a reduced-motion key",
			Kind:  lint.ClassGood,
			Regex: regexp.MustCompile(`\b(reduced|reducedMotion)\s*:\s*\{`),
		},
		&lint.RegexMatcher{
			ID:    "prefersReducedMotionQuery",
			Desc:  "prefers-reduced-motion media query",
			Kind:  lint.ClassGood,
			Regex: regexp.MustCompile(`prefers-reduced-motion`),
		},
		&lint.RegexMatcher{
			ID:     "cssAnimation",
			Desc:   "CSS animation without a reduced-motion alternative",
			Kind:   lint.ClassBad,
			Regex:  regexp.MustCompile(`(^|[\s{;"'])animation\s*:\s*[^;]+`),
			Unless: regexp.MustCompile(`animation\s*:\s*["']?none\b`),
		},
		&lint.RegexMatcher{
			ID:    "cssKeyframes",
			Desc:  "keyframes definition",
			Kind:  lint.ClassBad,
			Regex: regexp.MustCompile(`@keyframes\s+[\w-]+`),
		},
		&lint.RegexMatcher{
			ID:     "cssTransform",
			Desc:   "CSS transform",
			Kind:   lint.ClassBad,
			Regex:  regexp.MustCompile(`(^|[\s{;"'])transform\s*:\s*[^;]+`),
			Unless: regexp.MustCompile(`transform\s*:\s*["']?none\b`),
		},
		&lint.GuardedMatcher{
			ID:       "animateWithoutReducedCheck",
			Desc:     "animation prop without an adjacent reduced-motion reference",
			Kind:     lint.ClassBad,
			Regex:    regexp.MustCompile(`\b(animate|whileHover|whileInView|whileTap)=\{`),
			Guard:    reducedReference,
			Adjacent: adjacent,
		},
		&lint.GuardedMatcher{
			ID:       "transitionWithoutMediaGuard",
			Desc:     "transition timing without an adjacent prefers-reduced-motion query",
			Kind:     lint.ClassBad,
			Regex:    regexp.MustCompile(`\btransition(-duration|-timing-function)?\s*:\s*[^;]+`),
			Guard:    regexp.MustCompile(`prefers-reduced-motion`),
			Adjacent: adjacent,
		},
	}
}
