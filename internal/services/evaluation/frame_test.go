package evaluation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facet/internal/domain"
	"facet/internal/services/evaluation"
)

// alternating fills n samples with +amp, -amp, +amp, ...
func alternating(n int, amp float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		if i%2 == 0 {
			s[i] = amp
		} else {
			s[i] = -amp
		}
	}
	return s
}

// corrected builds a 10 s recording at 10 Hz: 4 s of clean baseline with
// amplitude 1, then 6 s of artifact-corrected data with amplitude 2.
// Triggers sit at samples 40, 60 and 80, giving a 2 s artifact spacing.
func corrected(t *testing.T) *domain.Recording {
	t.Helper()
	samples := append(alternating(40, 1), alternating(60, 2)...)
	rec := &domain.Recording{
		SampleRate: 10,
		Channels: []domain.Channel{
			{Label: "EEG Fp1", Kind: domain.KindEEG, Samples: samples},
			{Label: "Trigger", Kind: domain.KindStim, Samples: make([]float64, 100)},
			{Label: "ECG", Kind: domain.KindECG, Samples: alternating(100, 50)},
		},
		Triggers: []int{40, 60, 80},
	}
	rec.Original = &domain.Recording{
		SampleRate: 10,
		Channels: []domain.Channel{
			{Label: "EEG Fp1", Kind: domain.KindEEG, Samples: alternating(100, 4)},
			{Label: "Trigger", Kind: domain.KindStim, Samples: make([]float64, 100)},
		},
	}
	return rec
}

func TestFrame_EvaluateAllMeasures(t *testing.T) {
	f := evaluation.NewFrame()
	require.NoError(t, f.Add(corrected(t), evaluation.AddOptions{Name: "with anc"}))

	results, err := f.Evaluate([]domain.Measure{
		domain.MeasureSNR, domain.MeasureRMS, domain.MeasureRMS2, domain.MeasureMedian,
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Reference power 1 vs evaluated power 4: SNR = 1/3.
	assert.Equal(t, "dB", results[0].Unit)
	require.Len(t, results[0].Values, 1)
	assert.InDelta(t, 1.0/3.0, results[0].Values[0], 1e-9)

	// Uncorrected rms 4 vs corrected rms 2.
	assert.Equal(t, "Ratio", results[1].Unit)
	assert.InDelta(t, 2, results[1].Values[0], 1e-9)

	// Corrected rms 2 vs reference rms 1.
	assert.InDelta(t, 2, results[2].Values[0], 1e-9)

	// Every 2 s epoch swings between +2 and -2.
	assert.Equal(t, "V", results[3].Unit)
	assert.InDelta(t, 4, results[3].Values[0], 1e-9)
}

func TestFrame_DefaultWindowFromTriggers(t *testing.T) {
	f := evaluation.NewFrame()
	require.NoError(t, f.Add(corrected(t), evaluation.AddOptions{Name: "a"}))

	e := f.Entries()[0]
	// Window [4 s, 10 s] at 10 Hz; stim and ECG channels are dropped.
	assert.Equal(t, 60, e.Evaluated.NumSamples())
	assert.Equal(t, 40, e.Reference.NumSamples())
	assert.Len(t, e.Evaluated.Channels, 1)
}

func TestFrame_ExplicitWindow(t *testing.T) {
	f := evaluation.NewFrame()
	start, end := 2.0, 8.0
	require.NoError(t, f.Add(corrected(t), evaluation.AddOptions{Name: "a", Start: &start, End: &end}))

	e := f.Entries()[0]
	assert.Equal(t, 60, e.Evaluated.NumSamples())
	assert.Equal(t, 20, e.Reference.NumSamples())
}

func TestFrame_AddRejectsInvertedWindow(t *testing.T) {
	f := evaluation.NewFrame()
	start, end := 8.0, 2.0
	err := f.Add(corrected(t), evaluation.AddOptions{Name: "a", Start: &start, End: &end})
	assert.Error(t, err)
}

func TestFrame_AddRequiresName(t *testing.T) {
	f := evaluation.NewFrame()
	assert.Error(t, f.Add(corrected(t), evaluation.AddOptions{}))
}

func TestFrame_EvaluateEmpty(t *testing.T) {
	f := evaluation.NewFrame()
	_, err := f.Evaluate([]domain.Measure{domain.MeasureSNR})
	assert.ErrorIs(t, err, domain.ErrNoDatasets)
}

func TestFrame_ReferenceNeededMeasuresFailWithoutLeadIn(t *testing.T) {
	rec := corrected(t)
	f := evaluation.NewFrame()
	start := 0.0
	require.NoError(t, f.Add(rec, evaluation.AddOptions{Name: "a", Start: &start}))

	_, err := f.Evaluate([]domain.Measure{domain.MeasureSNR})
	assert.ErrorIs(t, err, domain.ErrNoReference)
}

func TestFrame_MedianFailsWithoutTriggers(t *testing.T) {
	rec := corrected(t)
	rec.Triggers = nil
	f := evaluation.NewFrame()
	start, end := 4.0, 10.0
	require.NoError(t, f.Add(rec, evaluation.AddOptions{Name: "a", Start: &start, End: &end}))

	_, err := f.Evaluate([]domain.Measure{domain.MeasureMedian})
	assert.ErrorIs(t, err, domain.ErrNoTriggers)
}
