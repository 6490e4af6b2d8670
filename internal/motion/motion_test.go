package motion

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rules(t *testing.T, findings []models.Finding) []string {
	t.Helper()
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Rule)
	}
	return out
}

func TestScanFile_UnguardedAnimationIsIssue(t *testing.T) {
	content := ".spinner {\n  animation: spin 1s;\n}\n"

	file := ScanFile("spinner.css", content, Matchers(3))

	require.Len(t, file.Issues, 1)
	assert.Equal(t, "cssAnimation", file.Issues[0].Rule)
	assert.Equal(t, 2, file.Issues[0].Line)
	assert.Equal(t, "animation: spin 1s;", file.Issues[0].Snippet)
	assert.Empty(t, file.Good)
	// no good practice at all adds the synthetic file-level warning
	assert.Equal(t, []string{MissingCheckRule}, rules(t, file.Warnings))
	assert.Zero(t, file.Warnings[0].Line)
}

func TestScanFile_GuardIdentifierDowngradesToWarning(t *testing.T) {
	content := "const reduce = useReducedMotion();\n" +
		"const styles = `\n" +
		".spinner {\n" +
		"  animation: spin 1s;\n" +
		"}\n" +
		"`;\n"

	file := ScanFile("Spinner.tsx", content, Matchers(0))

	assert.Empty(t, file.Issues)
	assert.Equal(t, []string{"useReducedMotionHook"}, rules(t, file.Good))
	require.Len(t, file.Warnings, 1)
	assert.Equal(t, "cssAnimation", file.Warnings[0].Rule)
	assert.Equal(t, 4, file.Warnings[0].Line)
}

func TestScanFile_Matchers(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantGood   []string
		wantIssues []string
	}{
		{
			name:       "animation none is ignored",
			content:    ".a { animation: none; }",
			wantGood:   []string{},
			wantIssues: []string{},
		},
		{
			name:       "keyframes",
			content:    "@keyframes fade-in {\n  from { opacity: 0; }\n}",
			wantGood:   []string{},
			wantIssues: []string{"cssKeyframes"},
		},
		{
			name:       "transform",
			content:    ".card:hover { transform: scale(1.05); }",
			wantGood:   []string{},
			wantIssues: []string{"cssTransform"},
		},
		{
			name:       "transform none is ignored",
			content:    ".card { transform: none; }",
			wantGood:   []string{},
			wantIssues: []string{},
		},
		{
			name:       "animate prop without reduced reference",
			content:    "<motion.div\n  animate={{ opacity: 1 }}\n/>",
			wantGood:   []string{},
			wantIssues: []string{"animateWithoutReducedCheck"},
		},
		{
			name:       "animate prop next to reduced variant",
			content:    "const variants = {\n  reduced: { opacity: 1 },\n};\n<motion.div animate={variants} />",
			wantGood:   []string{"reducedVariant"},
			wantIssues: []string{},
		},
		{
			name:       "transition inside media query",
			content:    "@media (prefers-reduced-motion: no-preference) {\n  .btn { transition: color 0.2s; }\n}",
			wantGood:   []string{"prefersReducedMotionQuery"},
			wantIssues: []string{},
		},
		{
			name:       "transition without media query",
			content:    ".btn {\n  transition-duration: 300ms;\n}",
			wantGood:   []string{},
			wantIssues: []string{"transitionWithoutMediaGuard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := ScanFile("x.tsx", tt.content, Matchers(3))

			assert.Equal(t, tt.wantGood, rules(t, file.Good))
			assert.Equal(t, tt.wantIssues, rules(t, file.Issues))
		})
	}
}

func TestContainsGuard(t *testing.T) {
	assert.True(t, ContainsGuard("const { prefersReducedMotion } = useSettings()"))
	assert.True(t, ContainsGuard("import { useMotionPreference } from '@/hooks'"))
	assert.False(t, ContainsGuard("const reduced = true"))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "styles", "spinner.css"), ".spinner {\n  animation: spin 1s;\n}\n")
	writeFile(t, filepath.Join(root, "components", "Hero.tsx"), "const r = useReducedMotion();\n")
	writeFile(t, filepath.Join(root, "components", "Plain.tsx"), "export const Plain = () => null;\n")
	writeFile(t, filepath.Join(root, "node_modules", "lib", "anim.css"), "@keyframes x {}\n")

	cfg := config.NewDefaultScanConfig()
	scanner := NewScanner(cfg, []string{root}, zerolog.Nop())

	report, err := scanner.Scan()

	require.NoError(t, err)
	assert.Equal(t, models.MotionSummary{FilesScanned: 3, GoodPractices: 1, Issues: 1, Warnings: 1}, report.Summary)
	require.Len(t, report.Files, 2)
	assert.Equal(t, filepath.Join(root, "components", "Hero.tsx"), report.Files[0].File)
	assert.Equal(t, filepath.Join(root, "styles", "spinner.css"), report.Files[1].File)
	assert.Equal(t, 1, ExitCode(report, false))
	assert.Equal(t, 0, ExitCode(report, true))
}

func TestRender(t *testing.T) {
	report := &models.MotionReport{
		Summary: models.MotionSummary{FilesScanned: 2, GoodPractices: 1, Issues: 1, Warnings: 1},
		Files: []models.MotionFileReport{
			{
				File:     "a.css",
				Good:     []models.Finding{},
				Issues:   []models.Finding{{Rule: "cssKeyframes", Line: 4, Snippet: "@keyframes pulse"}},
				Warnings: []models.Finding{{Rule: MissingCheckRule, Message: "animated file has no reduced-motion handling"}},
			},
			{
				File:     "b.tsx",
				Good:     []models.Finding{{Rule: "useReducedMotionHook", Line: 1, Snippet: "useReducedMotion()"}},
				Issues:   []models.Finding{},
				Warnings: []models.Finding{},
			},
		},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, report, RenderOptions{}))

		out := buf.String()
		assert.Contains(t, out, "a.css\n")
		assert.Contains(t, out, "L4 cssKeyframes: @keyframes pulse")
		assert.Contains(t, out, "missingReducedMotionCheck: animated file has no reduced-motion handling")
		assert.NotContains(t, out, "b.tsx")
		assert.Contains(t, out, "Summary: 2 files scanned, 1 good practices, 1 issues, 1 warnings")
	})

	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, report, RenderOptions{Verbose: true}))

		assert.Contains(t, buf.String(), "L1 useReducedMotionHook: useReducedMotion()")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, report, RenderOptions{JSON: true}))

		var decoded models.MotionReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, report.Summary, decoded.Summary)
		assert.Contains(t, buf.String(), `"filesScanned": 2`)
	})
}

func TestExitCode(t *testing.T) {
	warningsOnly := &models.MotionReport{Summary: models.MotionSummary{Warnings: 3}}
	withIssues := &models.MotionReport{Summary: models.MotionSummary{Issues: 1}}

	assert.Equal(t, 0, ExitCode(warningsOnly, false))
	assert.Equal(t, 1, ExitCode(withIssues, false))
	assert.Equal(t, 0, ExitCode(withIssues, true))
}
