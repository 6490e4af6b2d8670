package a11y

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/models"
)

// RenderOptions selects the output mode of a scan report
type RenderOptions struct {
	JSON    bool
	Verbose bool
}

// Render writes the report as indented JSON or as a per-file text listing
func Render(w io.Writer, report *models.A11yReport, opts RenderOptions) error {
	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return common.WrapError(err, "failed to encode accessibility report")
		}
		return nil
	}

	var sb strings.Builder
	sb.WriteString("Accessibility scan\n")
	for _, file := range report.Files {
		if len(file.Errors)+len(file.Warnings) == 0 && !opts.Verbose {
			continue
		}
		fmt.Fprintf(&sb, "\n%s\n", file.File)
		for _, f := range file.Errors {
			fmt.Fprintf(&sb, "  error   L%d %s: %s\n", f.Line, f.Rule, f.Message)
		}
		for _, f := range file.Warnings {
			fmt.Fprintf(&sb, "  warning L%d %s: %s\n", f.Line, f.Rule, f.Message)
		}
		if opts.Verbose {
			for _, f := range file.Good {
				fmt.Fprintf(&sb, "  good    L%d %s\n", f.Line, f.Rule)
			}
		}
	}

	s := report.Summary
	fmt.Fprintf(&sb, "\nSummary: %d files scanned, %d errors, %d warnings, %d good practices\n",
		s.FilesScanned, s.Errors, s.Warnings, s.GoodPractices)

	_, err := io.WriteString(w, sb.String())
	return err
}

// ExitCode is 1 when errors were found, outside JSON mode
func ExitCode(report *models.A11yReport, jsonMode bool) int {
	if jsonMode || report == nil || report.Summary.Errors == 0 {
		return 0
	}
	return 1
}
