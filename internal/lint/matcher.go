// Package lint is a small line-oriented source scanner driven by named regex matchers.
package lint

import (
	"regexp"
	"strings"
)

// Class tells whether a matcher detects a good practice or a problem
type Class string

const (
	ClassGood Class = "good"
	ClassBad  Class = "bad"
)

// LineContext is the line under inspection together with its file
type LineContext struct {
	Path  string
	Lines []string
	Index int
}

// Line returns the current line
func (c LineContext) Line() string {
	return c.Lines[c.Index]
}

// Window returns the lines within n of the current one, the current line included
func (c LineContext) Window(n int) []string {
	start := max(c.Index-n, 0)
	end := min(c.Index+n+1, len(c.Lines))
	return c.Lines[start:end]
}

// Matcher classifies a single line
type Matcher interface {
	Name() string
	Class() Class
	Description() string
	Match(ctx LineContext) bool
}

// RegexMatcher matches lines against Regex, skipping lines that also match Unless
type RegexMatcher struct {
	ID     string
	Desc   string
	Kind   Class
	Regex  *regexp.Regexp
	Unless *regexp.Regexp
}

func (m *RegexMatcher) Name() string        { return m.ID }
func (m *RegexMatcher) Class() Class        { return m.Kind }
func (m *RegexMatcher) Description() string { return m.Desc }

func (m *RegexMatcher) Match(ctx LineContext) bool {
	line := ctx.Line()
	if !m.Regex.MatchString(line) {
		return false
	}
	return m.Unless == nil || !m.Unless.MatchString(line)
}

// GuardedMatcher matches lines against Regex unless Guard occurs within Adjacent lines either side
type GuardedMatcher struct {
	ID       string
	Desc     string
	Kind     Class
	Regex    *regexp.Regexp
	Guard    *regexp.Regexp
	Adjacent int
}

func (m *GuardedMatcher) Name() string        { return m.ID }
func (m *GuardedMatcher) Class() Class        { return m.Kind }
func (m *GuardedMatcher) Description() string { return m.Desc }

func (m *GuardedMatcher) Match(ctx LineContext) bool {
	if !m.Regex.MatchString(ctx.Line()) {
		return false
	}
	return !m.Guard.MatchString(strings.Join(ctx.Window(m.Adjacent), "\n"))
}
