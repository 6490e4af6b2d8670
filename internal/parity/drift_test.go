package parity

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrift(t *testing.T) {
	baseline, err := MarshalReport(buildReport("tr", "en",
		SlugSet{"a": {}, "b": {}}, SlugSet{"b": {}}))
	require.NoError(t, err)
	current, err := MarshalReport(buildReport("tr", "en",
		SlugSet{"a": {}, "b": {}}, SlugSet{"a": {}, "b": {}}))
	require.NoError(t, err)

	lines := Drift(baseline, current)
	stats := Stats(lines)

	assert.False(t, stats.Identical())
	assert.Contains(t, lines, DiffLine{Op: DiffRemoved, Text: `  "onlyTr": [`})
	assert.Contains(t, lines, DiffLine{Op: DiffAdded, Text: `  "onlyTr": [],`})

	var buf bytes.Buffer
	require.NoError(t, RenderDrift(&buf, lines))
	assert.Contains(t, buf.String(), "Drift against baseline")
	assert.Contains(t, buf.String(), `-   "en": 1,`)
	assert.Contains(t, buf.String(), `+   "en": 2,`)
}

func TestDrift_Identical(t *testing.T) {
	report, err := MarshalReport(buildReport("tr", "en", SlugSet{"a": {}}, SlugSet{"a": {}}))
	require.NoError(t, err)

	lines := Drift(report, report)

	assert.True(t, Stats(lines).Identical())
	var buf bytes.Buffer
	require.NoError(t, RenderDrift(&buf, lines))
	assert.Equal(t, "No drift against baseline.\n", buf.String())
}
