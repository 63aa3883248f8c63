// Package measure implements the evaluation measures for artifact-corrected
// EEG data. Each measure condenses a dataset to a single value: a per-channel
// statistic reduced by the median, or a per-epoch statistic for the residual
// artifact amplitude.
package measure

import (
	"fmt"
	"math"

	"facet/internal/domain"
	"facet/internal/dsp"
)

func channelData(rec *domain.Recording) [][]float64 {
	out := make([][]float64, len(rec.Channels))
	for i, ch := range rec.Channels {
		out[i] = ch.Samples
	}
	return out
}

// SNR relates the power of the artifact-free reference segment to the power
// added by residual artifacts in the evaluated segment. Per channel the
// residual power is var(evaluated) - var(reference); the SNR is
// |var(reference) / residual|, reduced to the median across channels.
func SNR(evaluated, reference *domain.Recording) (float64, error) {
	ev := channelData(evaluated)
	ref := channelData(reference)
	if len(ref) == 0 || reference.NumSamples() == 0 {
		return 0, domain.ErrNoReference
	}
	if len(ev) != len(ref) {
		return 0, fmt.Errorf("channel count mismatch: evaluated %d, reference %d", len(ev), len(ref))
	}
	snrs := make([]float64, 0, len(ev))
	for i := range ev {
		powerEval := dsp.Variance(ev[i])
		powerRef := dsp.Variance(ref[i])
		residual := powerEval - powerRef
		if residual == 0 {
			return 0, fmt.Errorf("channel %s: zero residual power", evaluated.Channels[i].Label)
		}
		snrs = append(snrs, math.Abs(powerRef/residual))
	}
	return dsp.Median(snrs), nil
}

// RMSRatio relates the uncorrected original to the corrected data: per
// channel rms(original) / rms(evaluated), reduced to the median. When the
// original carries more channels than the evaluated segment, the surplus
// channels are ignored.
func RMSRatio(original, evaluated *domain.Recording) (float64, error) {
	if original == nil {
		return 0, domain.ErrNoOriginal
	}
	orig := channelData(original)
	ev := channelData(evaluated)
	if len(ev) == 0 {
		return 0, fmt.Errorf("no channels to evaluate")
	}
	if len(orig) < len(ev) {
		return 0, fmt.Errorf("original has %d channels, evaluated %d", len(orig), len(ev))
	}
	orig = orig[:len(ev)]
	ratios := make([]float64, 0, len(ev))
	for i := range ev {
		rmsEval := dsp.RMS(ev[i])
		if rmsEval == 0 {
			return 0, fmt.Errorf("channel %s: zero rms in corrected data", evaluated.Channels[i].Label)
		}
		ratios = append(ratios, dsp.RMS(orig[i])/rmsEval)
	}
	return dsp.Median(ratios), nil
}

// ResidualRatio relates the corrected data to the unimpaired reference: per
// channel rms(evaluated) / rms(reference), reduced to the median. A value
// near 1 means the corrected data matches the artifact-free baseline.
func ResidualRatio(evaluated, reference *domain.Recording) (float64, error) {
	ev := channelData(evaluated)
	ref := channelData(reference)
	if len(ref) == 0 || reference.NumSamples() == 0 {
		return 0, domain.ErrNoReference
	}
	if len(ev) != len(ref) {
		return 0, fmt.Errorf("channel count mismatch: evaluated %d, reference %d", len(ev), len(ref))
	}
	ratios := make([]float64, 0, len(ev))
	for i := range ev {
		rmsRef := dsp.RMS(ref[i])
		if rmsRef == 0 {
			return 0, fmt.Errorf("channel %s: zero rms in reference", reference.Channels[i].Label)
		}
		ratios = append(ratios, dsp.RMS(ev[i])/rmsRef)
	}
	return dsp.Median(ratios), nil
}

// MedianArtifact epochs the recording around every trigger with the artifact
// window, takes the peak-to-peak amplitude per epoch and channel, averages
// across channels, and returns the median across epochs. Epochs that would
// run past either end of the recording are dropped.
func MedianArtifact(rec *domain.Recording) (float64, error) {
	if len(rec.Triggers) == 0 {
		return 0, domain.ErrNoTriggers
	}
	tmin, tmax, err := rec.ArtifactWindow()
	if err != nil {
		return 0, err
	}
	picked := rec.Pick()
	if len(picked.Channels) == 0 {
		return 0, fmt.Errorf("no eeg channels to evaluate")
	}
	pre := int(math.Round(tmin * rec.SampleRate))
	post := int(math.Round(tmax * rec.SampleRate))
	n := picked.NumSamples()

	var meansPerEpoch []float64
	for _, trig := range picked.Triggers {
		lo, hi := trig+pre, trig+post
		if lo < 0 || hi > n || lo >= hi {
			continue
		}
		p2p := make([]float64, len(picked.Channels))
		for i, ch := range picked.Channels {
			p2p[i] = dsp.PeakToPeak(ch.Samples[lo:hi])
		}
		meansPerEpoch = append(meansPerEpoch, dsp.Mean(p2p))
	}
	if len(meansPerEpoch) == 0 {
		return 0, fmt.Errorf("no complete epochs inside the recording")
	}
	return dsp.Median(meansPerEpoch), nil
}
