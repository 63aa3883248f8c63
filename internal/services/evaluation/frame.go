// Package evaluation collects corrected EEG datasets and computes quality
// measures over them.
//
// Each added dataset is split into the evaluated segment (the artifact
// window), a reference segment (the artifact-free lead-in before the first
// trigger) and a pointer to the uncorrected original. Evaluate then condenses
// every dataset to one value per requested measure.
package evaluation

import (
	"fmt"

	"github.com/rs/zerolog"

	"facet/internal/domain"
	"facet/internal/log"
	"facet/internal/measure"
)

// Entry is one dataset registered for evaluation.
type Entry struct {
	Name      string
	Source    *domain.Recording // full recording, used for epoch measures
	Evaluated *domain.Recording // EEG picks cropped to the artifact window
	Reference *domain.Recording // EEG picks cropped to [0, window start]
	Original  *domain.Recording // uncorrected recording, may be nil
}

// AddOptions controls how a dataset is registered.
type AddOptions struct {
	// Name labels the dataset in results. Required.
	Name string

	// Start and End bound the evaluated window in seconds. When nil they
	// default to the first artifact start and last artifact end, falling
	// back to the full extent of the data.
	Start *float64
	End   *float64
}

// Frame accumulates datasets and evaluates them.
type Frame struct {
	entries []Entry
	log     zerolog.Logger
}

// NewFrame returns an empty evaluation frame.
func NewFrame() *Frame {
	return &Frame{log: log.WithComponent("evaluation")}
}

// Len returns the number of registered datasets.
func (f *Frame) Len() int { return len(f.entries) }

// Names returns the dataset names in registration order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.entries))
	for i, e := range f.entries {
		names[i] = e.Name
	}
	return names
}

// Entries exposes the registered datasets.
func (f *Frame) Entries() []Entry { return f.entries }

// Add registers a recording for evaluation.
func (f *Frame) Add(rec *domain.Recording, opts AddOptions) error {
	if opts.Name == "" {
		return fmt.Errorf("dataset name required")
	}

	start := 0.0
	if opts.Start != nil {
		start = *opts.Start
	} else if t, ok := rec.TimeFirstArtifactStart(); ok {
		start = t
	}
	end := rec.Duration()
	if opts.End != nil {
		end = *opts.End
	} else if t, ok := rec.TimeLastArtifactEnd(); ok {
		end = t
	}
	if start >= end {
		return fmt.Errorf("dataset %s: window start %g is not before end %g", opts.Name, start, end)
	}

	picked := rec.Pick()
	if len(picked.Channels) == 0 {
		return fmt.Errorf("dataset %s: no eeg channels left after picking", opts.Name)
	}
	f.log.Debug().
		Str("dataset", opts.Name).
		Float64("start", start).
		Float64("end", end).
		Int("channels", len(picked.Channels)).
		Msg("registering dataset")

	evaluated, err := picked.Crop(start, end)
	if err != nil {
		return fmt.Errorf("dataset %s: evaluated segment: %w", opts.Name, err)
	}

	// The lead-in before the first artifact serves as the unimpaired
	// reference. It is empty when the window starts at zero; measures that
	// need it will say so.
	var reference *domain.Recording
	if start > 0 {
		reference, err = picked.Crop(0, start)
		if err != nil {
			return fmt.Errorf("dataset %s: reference segment: %w", opts.Name, err)
		}
	} else {
		reference = picked.Copy()
		for i := range reference.Channels {
			reference.Channels[i].Samples = nil
		}
	}

	f.entries = append(f.entries, Entry{
		Name:      opts.Name,
		Source:    rec,
		Evaluated: evaluated,
		Reference: reference,
		Original:  rec.Original,
	})
	return nil
}

// Evaluate computes the requested measures across all registered datasets.
// The result rows follow the order of measures; each row's values follow
// registration order.
func (f *Frame) Evaluate(measures []domain.Measure) ([]domain.Result, error) {
	if len(f.entries) == 0 {
		return nil, domain.ErrNoDatasets
	}
	if len(measures) == 0 {
		measures = []domain.Measure{domain.MeasureSNR}
	}

	results := make([]domain.Result, 0, len(measures))
	for _, m := range measures {
		values := make([]float64, 0, len(f.entries))
		for _, e := range f.entries {
			v, err := f.evaluateOne(m, e)
			if err != nil {
				return nil, fmt.Errorf("measure %s, dataset %s: %w", m, e.Name, err)
			}
			values = append(values, v)
		}
		results = append(results, domain.Result{
			Measure: m,
			Title:   m.Title(),
			Unit:    m.Unit(),
			Values:  values,
		})
		f.log.Info().Str("measure", string(m)).Floats64("values", values).Msg("measure computed")
	}
	return results, nil
}

func (f *Frame) evaluateOne(m domain.Measure, e Entry) (float64, error) {
	switch m {
	case domain.MeasureSNR:
		return measure.SNR(e.Evaluated, e.Reference)
	case domain.MeasureRMS:
		return measure.RMSRatio(e.Original, e.Evaluated)
	case domain.MeasureRMS2:
		return measure.ResidualRatio(e.Evaluated, e.Reference)
	case domain.MeasureMedian:
		return measure.MedianArtifact(e.Source)
	default:
		return 0, fmt.Errorf("unknown measure %q", m)
	}
}
