package common

import (
	"strings"
	"unicode"
)

// IsAbsoluteURLPath reports whether p is a well-formed absolute URL path:
// it starts with a single "/", carries no scheme, host, query or fragment, and has no whitespace.
func IsAbsoluteURLPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return false
	}
	if strings.ContainsAny(p, "?#") {
		return false
	}
	for _, r := range p {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
