package lint

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineContext_Window(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		index int
		n     int
		want  []string
	}{
		{index: 0, n: 1, want: []string{"a", "b"}},
		{index: 2, n: 1, want: []string{"b", "c", "d"}},
		{index: 4, n: 3, want: []string{"b", "c", "d", "e"}},
		{index: 2, n: 0, want: []string{"c"}},
	}
	for _, tt := range tests {
		ctx := LineContext{Lines: lines, Index: tt.index}
		assert.Equal(t, tt.want, ctx.Window(tt.n))
	}
}

func TestRegexMatcher(t *testing.T) {
	m := &RegexMatcher{
		ID:     "cssAnimation",
		Kind:   ClassBad,
		Regex:  regexp.MustCompile(`animation\s*:`),
		Unless: regexp.MustCompile(`animation\s*:\s*none`),
	}

	assert.True(t, m.Match(LineContext{Lines: []string{"animation: spin 1s;"}}))
	assert.False(t, m.Match(LineContext{Lines: []string{"animation: none;"}}))
	assert.False(t, m.Match(LineContext{Lines: []string{"color: red;"}}))
	assert.Equal(t, "cssAnimation", m.Name())
	assert.Equal(t, ClassBad, m.Class())
}

func TestGuardedMatcher(t *testing.T) {
	m := &GuardedMatcher{
		ID:       "transitionWithoutMediaGuard",
		Kind:     ClassBad,
		Regex:    regexp.MustCompile(`transition\s*:`),
		Guard:    regexp.MustCompile(`prefers-reduced-motion`),
		Adjacent: 2,
	}

	guarded := []string{
		"@media (prefers-reduced-motion: no-preference) {",
		"  .card {",
		"    transition: transform 0.2s;",
		"  }",
		"}",
	}
	assert.False(t, m.Match(LineContext{Lines: guarded, Index: 2}))

	far := append([]string{"@media (prefers-reduced-motion: reduce) {}", "", "", ""}, "transition: opacity 1s;")
	assert.True(t, m.Match(LineContext{Lines: far, Index: 4}))
}

func TestScanText(t *testing.T) {
	matchers := []Matcher{
		&RegexMatcher{ID: "a", Kind: ClassBad, Regex: regexp.MustCompile(`foo`)},
		&RegexMatcher{ID: "b", Kind: ClassGood, Regex: regexp.MustCompile(`bar`)},
	}
	content := "foo bar\r\nnothing\n   foo   \n"

	matches := ScanText("x.css", content, matchers)

	require.Len(t, matches, 3)
	assert.Equal(t, Match{Rule: "a", Class: ClassBad, Line: 1, Snippet: "foo bar"}, matches[0])
	assert.Equal(t, Match{Rule: "b", Class: ClassGood, Line: 1, Snippet: "foo bar"}, matches[1])
	assert.Equal(t, Match{Rule: "a", Class: ClassBad, Line: 3, Snippet: "foo"}, matches[2])
}

func TestSnippet_Truncates(t *testing.T) {
	long := strings.Repeat("ş", 200)
	s := Snippet(long)
	assert.True(t, strings.HasSuffix(s, "..."))
	assert.Equal(t, maxSnippetLen+3, len([]rune(s)))
}

func TestWalker_Files(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"src/app.tsx":                   "",
		"src/styles/site.css":           "",
		"src/readme.md":                 "",
		"src/node_modules/lib/index.js": "",
		"src/.cache/tmp.js":             "",
		"src/.next/server.js":           "",
		"src/dist/bundle.js":            "",
		"src/components/Hero.JSX":       "",
	}
	for name := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	w := NewWalker(
		[]string{filepath.Join(root, "src"), filepath.Join(root, "missing"), filepath.Join(root, "src", "app.tsx")},
		[]string{".tsx", ".jsx", ".css", ".js"},
		[]string{"node_modules", ".next", "dist"},
		zerolog.Nop(),
	)
	got, err := w.Files()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "src", "app.tsx"),
		filepath.Join(root, "src", "components", "Hero.JSX"),
		filepath.Join(root, "src", "styles", "site.css"),
	}, got)
}

func TestWalker_Each(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.css"), []byte("a{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.css"), []byte("b{}"), 0644))

	contents := map[string]string{}
	n, err := NewWalker([]string{root}, []string{".css"}, nil, zerolog.Nop()).Each(func(path, content string) {
		contents[filepath.Base(path)] = content
	})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, map[string]string{"a.css": "a{}", "b.css": "b{}"}, contents)
}
