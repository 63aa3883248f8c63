package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facet/internal/domain"
	"facet/internal/report"
)

func sampleResults() []domain.Result {
	return []domain.Result{
		{Measure: domain.MeasureSNR, Title: "SNR", Unit: "dB", Values: []float64{2.5, 3.75}},
		{Measure: domain.MeasureRMS, Title: "RMS Uncorrected to Corrected", Unit: "Ratio", Values: []float64{40, 55.5}},
	}
}

func TestTable(t *testing.T) {
	out := report.Table(sampleResults(), []string{"Without ANC", "With ANC"})

	assert.Contains(t, out, "SNR")
	assert.Contains(t, out, "RMS Uncorrected to Corrected")
	assert.Contains(t, out, "Without ANC")
	assert.Contains(t, out, "With ANC")
	assert.Contains(t, out, "3.75")
	assert.Contains(t, out, "55.5")
}

func TestWriteJSON(t *testing.T) {
	run := domain.Run{
		ID:        "run-1",
		CreatedAt: time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
		Datasets:  []string{"a"},
		Results:   sampleResults(),
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, run))

	assert.Contains(t, buf.String(), `"id": "run-1"`)
	assert.Contains(t, buf.String(), `"measure": "snr"`)
}

func TestSavePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.png")
	require.NoError(t, report.SavePlot(path, sampleResults(), []string{"Without ANC", "With ANC"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, b[:4])
}

func TestSavePlot_Empty(t *testing.T) {
	err := report.SavePlot(filepath.Join(t.TempDir(), "x.png"), nil, nil)
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0.33333", report.FormatValue(1.0/3.0))
	assert.Equal(t, "2", report.FormatValue(2))
}
