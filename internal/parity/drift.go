package parity

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp marks how a line changed between baseline and current report
type DiffOp string

const (
	DiffAdded   DiffOp = "+"
	DiffRemoved DiffOp = "-"
	DiffSame    DiffOp = " "
)

// DiffLine is one line of a report drift
type DiffLine struct {
	Op   DiffOp
	Text string
}

// DriftStats counts changed lines
type DriftStats struct {
	LinesAdded   int
	LinesRemoved int
}

// Identical reports whether nothing changed
func (s DriftStats) Identical() bool {
	return s.LinesAdded == 0 && s.LinesRemoved == 0
}

// Drift computes a line diff between a saved JSON report and the current one
func Drift(baseline, current []byte) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(baseline), string(current))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, diff := range diffs {
		op := DiffSame
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			op = DiffAdded
		case diffmatchpatch.DiffDelete:
			op = DiffRemoved
		}
		for _, line := range splitLines(diff.Text) {
			out = append(out, DiffLine{Op: op, Text: line})
		}
	}
	return out
}

// Stats counts added and removed lines
func Stats(lines []DiffLine) DriftStats {
	var stats DriftStats
	for _, line := range lines {
		switch line.Op {
		case DiffAdded:
			stats.LinesAdded++
		case DiffRemoved:
			stats.LinesRemoved++
		}
	}
	return stats
}

// RenderDrift prints changed lines only, prefixed with + or -
func RenderDrift(w io.Writer, lines []DiffLine) error {
	stats := Stats(lines)
	if stats.Identical() {
		_, err := fmt.Fprintln(w, "No drift against baseline.")
		return err
	}

	if _, err := fmt.Fprintf(w, "Drift against baseline (+%d -%d):\n", stats.LinesAdded, stats.LinesRemoved); err != nil {
		return err
	}
	for _, line := range lines {
		if line.Op == DiffSame {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", line.Op, line.Text); err != nil {
			return err
		}
	}
	return nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
