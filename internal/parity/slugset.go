// Package parity compares the per-locale content trees of the site.
package parity

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aleister1102/siteguard/internal/common"
)

// SlugSet is the set of content identifiers of one locale
type SlugSet map[string]struct{}

// Add inserts slug; duplicates collapse
func (s SlugSet) Add(slug string) {
	s[slug] = struct{}{}
}

// Has reports whether slug is in the set
func (s SlugSet) Has(slug string) bool {
	_, ok := s[slug]
	return ok
}

// Sorted returns the identifiers in lexicographic order
func (s SlugSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for slug := range s {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// LoadSlugSet lists the content files of root/locale whose extension is in exts
// and returns their names without extension. A missing locale directory yields an empty set.
func LoadSlugSet(root, locale string, exts []string) (SlugSet, error) {
	set := make(SlugSet)
	dir := filepath.Join(root, locale)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, common.WrapErrorf(err, "failed to list content directory '%s'", dir)
	}

	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !allowed[strings.ToLower(ext)] {
			continue
		}
		set.Add(strings.TrimSuffix(name, ext))
	}
	return set, nil
}
