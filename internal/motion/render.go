package motion

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

// Render writes the report; verbose text output also lists good practices
func Render(w io.Writer, report *models.MotionReport, opts RenderOptions) error {
	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return common.WrapError(err, "failed to encode motion report")
		}
		return nil
	}

	var sb strings.Builder
	sb.WriteString("Motion preference scan\n")
	for _, file := range report.Files {
		if len(file.Issues)+len(file.Warnings) == 0 && !opts.Verbose {
			continue
		}
		fmt.Fprintf(&sb, "\n%s\n", file.File)
		writeFindings(&sb, "issue", file.Issues)
		writeFindings(&sb, "warning", file.Warnings)
		if opts.Verbose {
			writeFindings(&sb, "good", file.Good)
		}
	}

	s := report.Summary
	fmt.Fprintf(&sb, "\nSummary: %d files scanned, %d good practices, %d issues, %d warnings\n",
		s.FilesScanned, s.GoodPractices, s.Issues, s.Warnings)

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeFindings(sb *strings.Builder, label string, findings []models.Finding) {
	for _, f := range findings {
		if f.Line == 0 {
			fmt.Fprintf(sb, "  %-7s %s: %s\n", label, f.Rule, f.Message)
			continue
		}
		fmt.Fprintf(sb, "  %-7s L%d %s: %s\n", label, f.Line, f.Rule, f.Snippet)
	}
}

// ExitCode is 1 when unguarded issues exist. JSON mode always returns 0 and leaves the verdict to the consumer.
func ExitCode(report *models.MotionReport, jsonMode bool) int {
	if jsonMode || report == nil {
		return 0
	}
	if report.Summary.Issues > 0 {
		return 1
	}
	return 0
}
