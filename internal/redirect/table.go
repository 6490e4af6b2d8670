// Package redirect resolves legacy request paths to their canonical locale-prefixed routes.
package redirect

import (
	"fmt"
	"net/http"

	"github.com/aleister1102/siteguard/internal/common"
)

// Rule maps one legacy path to its canonical destination
type Rule struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Permanent   bool   `json:"permanent" yaml:"permanent"`
}

// StatusCode is 301 for permanent rules and 302 otherwise
func (r Rule) StatusCode() int {
	if r.Permanent {
		return http.StatusMovedPermanently
	}
	return http.StatusFound
}

// Decision is the outcome of resolving one path
type Decision struct {
	Matched    bool
	Rule       Rule
	StatusCode int
	Location   string
}

// Table is an ordered, immutable set of redirect rules.
// It is safe for concurrent use.
type Table struct {
	rules []Rule
	index map[string]int
}

// NewTable validates rules and builds a lookup table.
// Sources and destinations must be absolute paths; a repeated source fails with ErrDuplicateRule.
func NewTable(rules []Rule) (*Table, error) {
	t := &Table{
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	collector := common.NewErrorCollector()

	for i, rule := range rules {
		if !common.IsAbsoluteURLPath(rule.Source) {
			collector.Add(common.NewValidationError(fmt.Sprintf("rules[%d].source", i), rule.Source, "must be an absolute path"))
			continue
		}
		if !common.IsAbsoluteURLPath(rule.Destination) {
			collector.Add(common.NewValidationError(fmt.Sprintf("rules[%d].destination", i), rule.Destination, "must be an absolute path"))
			continue
		}
		if rule.Source == rule.Destination {
			collector.Add(common.NewValidationError(fmt.Sprintf("rules[%d].destination", i), rule.Destination, "redirects to itself"))
			continue
		}
		if first, exists := t.index[rule.Source]; exists {
			collector.Add(common.WrapErrorf(common.ErrDuplicateRule, "source %q at rules[%d] already defined at rules[%d]", rule.Source, i, first))
			continue
		}
		t.index[rule.Source] = len(t.rules)
		t.rules = append(t.rules, rule)
	}

	if collector.HasErrors() {
		return nil, collector.Error()
	}
	return t, nil
}

// Resolve looks up path exactly as given.
// No normalization is applied: trailing slashes, case and query strings must match the source verbatim.
func (t *Table) Resolve(path string) Decision {
	i, ok := t.index[path]
	if !ok {
		return Decision{}
	}
	rule := t.rules[i]
	return Decision{
		Matched:    true,
		Rule:       rule,
		StatusCode: rule.StatusCode(),
		Location:   rule.Destination,
	}
}

// Rules returns a copy of the rules in table order
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules
func (t *Table) Len() int {
	return len(t.rules)
}
