package lint

import (
	"strings"
	"unicode/utf8"
)

const maxSnippetLen = 160

// Match is one line hit by one matcher
type Match struct {
	Rule        string
	Class       Class
	Description string
	Line        int
	Snippet     string
}

// ScanText applies every matcher to every line of content.
// Matches are ordered by line, then by matcher order.
func ScanText(path, content string, matchers []Matcher) []Match {
	lines := SplitLines(content)
	var matches []Match

	for i := range lines {
		ctx := LineContext{Path: path, Lines: lines, Index: i}
		for _, m := range matchers {
			if !m.Match(ctx) {
				continue
			}
			matches = append(matches, Match{
				Rule:        m.Name(),
				Class:       m.Class(),
				Description: m.Description(),
				Line:        i + 1,
				Snippet:     Snippet(lines[i]),
			})
		}
	}
	return matches
}

// SplitLines splits on \n and drops the \r of CRLF endings
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Snippet trims a line for display
func Snippet(line string) string {
	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) <= maxSnippetLen {
		return line
	}
	runes := []rune(line)
	return string(runes[:maxSnippetLen]) + "..."
}
