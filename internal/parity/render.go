package parity

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/config"
	"github.com/aleister1102/siteguard/internal/models"
)

// Render writes the report as text or as a single indented JSON document.
// Output is byte-identical for identical reports.
func Render(w io.Writer, report models.ParityReport, format string) error {
	switch strings.ToLower(format) {
	case "", config.OutputFormatText:
		return renderText(w, report)
	case config.OutputFormatJSON:
		data, err := MarshalReport(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return common.NewValidationError("format", format, "parity output must be text or json")
	}
}

// MarshalReport encodes the report the way Render does in JSON mode
func MarshalReport(report models.ParityReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, common.WrapError(err, "failed to encode parity report")
	}
	return append(data, '\n'), nil
}

func renderText(w io.Writer, report models.ParityReport) error {
	a, b := localeNames(report)
	var sb strings.Builder

	fmt.Fprintf(&sb, "Content parity (%s vs %s)\n", a, b)
	fmt.Fprintf(&sb, "  %s: %d\n", a, report.TR)
	fmt.Fprintf(&sb, "  %s: %d\n", b, report.EN)
	fmt.Fprintf(&sb, "  both: %d\n", len(report.Both))
	writeList(&sb, fmt.Sprintf("Only in %s", a), report.OnlyTR)
	writeList(&sb, fmt.Sprintf("Only in %s", b), report.OnlyEN)
	if report.InParity() {
		sb.WriteString("Locales are in parity.\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeList(sb *strings.Builder, title string, items []string) {
	fmt.Fprintf(sb, "%s (%d):\n", title, len(items))
	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
}

func localeNames(report models.ParityReport) (string, string) {
	a, b := report.Locales[0], report.Locales[1]
	if a == "" {
		a = config.DefaultPrimaryLocale
	}
	if b == "" {
		b = config.DefaultOtherLocale
	}
	return a, b
}
