package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facet/internal/config"
	"facet/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eval.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
original: clean.edf
artifactOffset: -0.005
badChannels: [EKG, EMG, EOG, ECG]
datasets:
  - path: without_anc.edf
    name: Without ANC
  - path: with_anc.edf
measures: [snr, rms, rms2, median]
output:
  plot: results.png
`)

	run, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "clean.edf", run.Original)
	assert.InDelta(t, -0.005, run.ArtifactOffset, 1e-12)
	require.Len(t, run.Datasets, 2)
	assert.Equal(t, "Without ANC", run.Datasets[0].Name)
	// Name defaults to the path.
	assert.Equal(t, "with_anc.edf", run.Datasets[1].Name)
	assert.Equal(t, config.DefaultTriggerPattern, run.TriggerPattern)
	assert.Equal(t, []domain.Measure{
		domain.MeasureSNR, domain.MeasureRMS, domain.MeasureRMS2, domain.MeasureMedian,
	}, run.ParsedMeasures())
	assert.True(t, run.SaveRun())
}

func TestLoad_DefaultsMeasures(t *testing.T) {
	run, err := config.Load(writeConfig(t, `
datasets:
  - path: a.edf
`))
	require.NoError(t, err)
	assert.Equal(t, []domain.Measure{domain.MeasureSNR}, run.ParsedMeasures())
}

func TestLoad_RejectsUnknownMeasure(t *testing.T) {
	_, err := config.Load(writeConfig(t, `
datasets:
  - path: a.edf
measures: [psnr]
`))
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	_, err := config.Load(writeConfig(t, `
dataset: a.edf
`))
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyDatasets(t *testing.T) {
	_, err := config.Load(writeConfig(t, `
measures: [snr]
`))
	assert.Error(t, err)
}

func TestLoad_RejectsInvertedWindow(t *testing.T) {
	_, err := config.Load(writeConfig(t, `
datasets:
  - path: a.edf
window:
  start: 10
  end: 5
`))
	assert.Error(t, err)
}

func TestLoad_RejectsBadPattern(t *testing.T) {
	_, err := config.Load(writeConfig(t, `
datasets:
  - path: a.edf
triggerPattern: "("
`))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("FACET_HOME", "/tmp/facet-home")
	t.Setenv("FACET_LOG_LEVEL", "debug")

	e, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/facet-home", e.Home)
	assert.Equal(t, "debug", e.LogLevel)
}
