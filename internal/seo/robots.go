package seo

import (
	"fmt"
	"strings"
)

// BuildRobots renders a robots.txt that allows everything except disallow and points at the sitemap
func BuildRobots(baseURL string, disallow []string) []byte {
	var sb strings.Builder
	sb.WriteString("User-agent: *\n")
	sb.WriteString("Allow: /\n")
	for _, path := range disallow {
		fmt.Fprintf(&sb, "Disallow: %s\n", path)
	}
	fmt.Fprintf(&sb, "\nSitemap: %s/sitemap.xml\n", strings.TrimRight(baseURL, "/"))
	return []byte(sb.String())
}
