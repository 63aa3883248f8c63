package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ChannelKind classifies what a channel records.
type ChannelKind string

const (
	KindEEG        ChannelKind = "eeg"
	KindStim       ChannelKind = "stim"
	KindEOG        ChannelKind = "eog"
	KindEMG        ChannelKind = "emg"
	KindECG        ChannelKind = "ecg"
	KindAnnotation ChannelKind = "annotation"
	KindOther      ChannelKind = "other"
)

// Channel is a single signal of a recording.
type Channel struct {
	Label   string
	Kind    ChannelKind
	Samples []float64
}

// Recording holds a multi-channel EEG recording at a single sampling rate,
// together with the trigger positions and artifact timing needed for
// evaluation. Original, when set, points at the uncorrected version of the
// same acquisition.
type Recording struct {
	Channels   []Channel
	SampleRate float64

	// Triggers are sample indices of detected artifact trigger events.
	Triggers []int

	// ArtifactOffset is the artifact-to-trigger offset in seconds. It may be
	// negative when the artifact starts before the trigger event.
	ArtifactOffset float64

	// ArtifactDuration is the artifact length in seconds. Zero means derive
	// it from the median inter-trigger spacing.
	ArtifactDuration float64

	// Bads lists channel labels excluded from evaluation.
	Bads []string

	// Original is the uncorrected recording, kept for before/after measures.
	Original *Recording
}

// NumSamples returns the per-channel sample count.
func (r *Recording) NumSamples() int {
	if len(r.Channels) == 0 {
		return 0
	}
	return len(r.Channels[0].Samples)
}

// Duration returns the recording length in seconds.
func (r *Recording) Duration() float64 {
	if r.SampleRate <= 0 {
		return 0
	}
	return float64(r.NumSamples()) / r.SampleRate
}

// Copy returns a deep copy of the recording. The Original pointer is shared,
// not copied.
func (r *Recording) Copy() *Recording {
	out := &Recording{
		SampleRate:       r.SampleRate,
		ArtifactOffset:   r.ArtifactOffset,
		ArtifactDuration: r.ArtifactDuration,
		Original:         r.Original,
	}
	out.Channels = make([]Channel, len(r.Channels))
	for i, ch := range r.Channels {
		out.Channels[i] = Channel{
			Label:   ch.Label,
			Kind:    ch.Kind,
			Samples: append([]float64(nil), ch.Samples...),
		}
	}
	out.Triggers = append([]int(nil), r.Triggers...)
	out.Bads = append([]string(nil), r.Bads...)
	return out
}

// IsBad reports whether the label is on the bad-channel list. Matching is
// case-insensitive and also accepts a bad entry that is a substring of the
// label, so "ECG" matches "ECG EKG-REF".
func (r *Recording) IsBad(label string) bool {
	for _, b := range r.Bads {
		if strings.EqualFold(b, label) || strings.Contains(strings.ToLower(label), strings.ToLower(b)) {
			return true
		}
	}
	return false
}

// Pick returns a copy containing only EEG channels that are not marked bad.
func (r *Recording) Pick() *Recording {
	out := r.Copy()
	kept := out.Channels[:0]
	for _, ch := range out.Channels {
		if ch.Kind == KindEEG && !r.IsBad(ch.Label) {
			kept = append(kept, ch)
		}
	}
	out.Channels = kept
	return out
}

// Crop returns a copy restricted to the time window [tmin, tmax]. Bounds are
// clamped to the recording; tmin must be strictly less than tmax after
// clamping. Triggers inside the window are kept, shifted to the new origin.
func (r *Recording) Crop(tmin, tmax float64) (*Recording, error) {
	lo, hi, err := r.window(tmin, tmax)
	if err != nil {
		return nil, err
	}
	out := r.Copy()
	for i := range out.Channels {
		out.Channels[i].Samples = append([]float64(nil), out.Channels[i].Samples[lo:hi]...)
	}
	out.Triggers = out.Triggers[:0]
	for _, t := range r.Triggers {
		if t >= lo && t < hi {
			out.Triggers = append(out.Triggers, t-lo)
		}
	}
	return out, nil
}

// Cutout returns a copy with the time window [tmin, tmax] excised and the
// surrounding parts joined. Triggers inside the window are dropped; triggers
// after it are shifted left.
func (r *Recording) Cutout(tmin, tmax float64) (*Recording, error) {
	lo, hi, err := r.window(tmin, tmax)
	if err != nil {
		return nil, err
	}
	out := r.Copy()
	for i := range out.Channels {
		s := out.Channels[i].Samples
		joined := make([]float64, 0, len(s)-(hi-lo))
		joined = append(joined, s[:lo]...)
		joined = append(joined, s[hi:]...)
		out.Channels[i].Samples = joined
	}
	out.Triggers = out.Triggers[:0]
	for _, t := range r.Triggers {
		switch {
		case t < lo:
			out.Triggers = append(out.Triggers, t)
		case t >= hi:
			out.Triggers = append(out.Triggers, t-(hi-lo))
		}
	}
	return out, nil
}

func (r *Recording) window(tmin, tmax float64) (lo, hi int, err error) {
	if r.SampleRate <= 0 {
		return 0, 0, fmt.Errorf("recording has no sampling rate")
	}
	n := r.NumSamples()
	lo = int(math.Round(tmin * r.SampleRate))
	hi = int(math.Round(tmax * r.SampleRate))
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo >= hi {
		return 0, 0, fmt.Errorf("%w: [%g, %g]", ErrEmptyWindow, tmin, tmax)
	}
	return lo, hi, nil
}

// TriggerTime returns the time in seconds of the i-th trigger.
func (r *Recording) TriggerTime(i int) float64 {
	return float64(r.Triggers[i]) / r.SampleRate
}

// ArtifactSpacing returns the artifact duration in seconds: the explicit
// ArtifactDuration when set, otherwise the median spacing between triggers.
func (r *Recording) ArtifactSpacing() (float64, error) {
	if r.ArtifactDuration > 0 {
		return r.ArtifactDuration, nil
	}
	if len(r.Triggers) < 2 {
		return 0, ErrNoTriggers
	}
	gaps := make([]float64, 0, len(r.Triggers)-1)
	for i := 1; i < len(r.Triggers); i++ {
		gaps = append(gaps, float64(r.Triggers[i]-r.Triggers[i-1]))
	}
	sort.Float64s(gaps)
	mid := len(gaps) / 2
	g := gaps[mid]
	if len(gaps)%2 == 0 {
		g = (gaps[mid-1] + gaps[mid]) / 2
	}
	return g / r.SampleRate, nil
}

// ArtifactWindow returns the epoch bounds relative to a trigger, in seconds.
func (r *Recording) ArtifactWindow() (tmin, tmax float64, err error) {
	d, err := r.ArtifactSpacing()
	if err != nil {
		return 0, 0, err
	}
	return r.ArtifactOffset, r.ArtifactOffset + d, nil
}

// TimeFirstArtifactStart returns the start time of the first artifact
// section, or false when no triggers are known.
func (r *Recording) TimeFirstArtifactStart() (float64, bool) {
	if len(r.Triggers) == 0 {
		return 0, false
	}
	t := r.TriggerTime(0) + r.ArtifactOffset
	if t < 0 {
		t = 0
	}
	return t, true
}

// TimeLastArtifactEnd returns the end time of the last artifact section, or
// false when triggers or the artifact duration are unknown.
func (r *Recording) TimeLastArtifactEnd() (float64, bool) {
	if len(r.Triggers) == 0 {
		return 0, false
	}
	d, err := r.ArtifactSpacing()
	if err != nil {
		return 0, false
	}
	t := r.TriggerTime(len(r.Triggers)-1) + r.ArtifactOffset + d
	if t > r.Duration() {
		t = r.Duration()
	}
	return t, true
}

// KindForLabel classifies an EDF channel label. Physiological auxiliary
// channels and trigger channels are recognised by conventional label parts;
// everything else is treated as EEG.
func KindForLabel(label string) ChannelKind {
	u := strings.ToUpper(label)
	switch {
	case strings.Contains(u, "EDF ANNOTATIONS"):
		return KindAnnotation
	case strings.Contains(u, "TRIGGER"), strings.Contains(u, "STATUS"), strings.HasPrefix(u, "STI"):
		return KindStim
	case strings.Contains(u, "EOG"):
		return KindEOG
	case strings.Contains(u, "EMG"):
		return KindEMG
	case strings.Contains(u, "ECG"), strings.Contains(u, "EKG"):
		return KindECG
	default:
		return KindEEG
	}
}
