// Package importer loads EEG recordings from disk into the domain model.
//
// It reads EDF files, classifies channels by label, attaches a deep copy as
// the uncorrected original, and can locate artifact triggers on the stim
// channel.
package importer

import (
	"fmt"

	"github.com/rs/zerolog"

	"facet/internal/domain"
	"facet/internal/edf"
	"facet/internal/log"
	"facet/internal/triggers"
)

// Service reads recordings and detects triggers.
type Service struct {
	log zerolog.Logger
}

// New returns an importer service.
func New() *Service {
	return &Service{log: log.WithComponent("importer")}
}

// Import reads the EDF file at path into a Recording. The returned recording
// carries a deep copy of itself as the uncorrected original, so later
// processing can still be compared against the as-imported data.
func (s *Service) Import(path string, opts domain.ImportOptions) (*domain.Recording, error) {
	file, err := edf.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rec, err := toRecording(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rec.Bads = append([]string(nil), opts.Bads...)
	rec.ArtifactOffset = opts.ArtifactOffset
	rec.ArtifactDuration = opts.ArtifactDuration
	rec.Original = rec.Copy()

	s.log.Info().
		Str("path", path).
		Int("channels", len(rec.Channels)).
		Float64("sample_rate", rec.SampleRate).
		Float64("duration", rec.Duration()).
		Msg("imported recording")
	return rec, nil
}

// FindTriggers locates artifact trigger events on the recording's stim
// channel and stores them on the recording (and its original).
func (s *Service) FindTriggers(rec *domain.Recording, pattern string) (int, error) {
	found, err := triggers.Detect(rec, pattern)
	if err != nil {
		return 0, err
	}
	rec.Triggers = found
	if rec.Original != nil {
		rec.Original.Triggers = append([]int(nil), found...)
	}
	s.log.Info().Int("count", len(found)).Str("pattern", pattern).Msg("triggers found")
	return len(found), nil
}

// toRecording converts a parsed EDF file, dropping annotation signals and
// requiring a single sampling rate across the rest.
func toRecording(file *edf.File) (*domain.Recording, error) {
	rec := &domain.Recording{}
	rate := 0.0
	for i, sig := range file.Header.Signals {
		kind := domain.KindForLabel(sig.Label)
		if kind == domain.KindAnnotation {
			continue
		}
		r := file.Header.SampleRate(i)
		if rate == 0 {
			rate = r
		} else if r != rate {
			return nil, fmt.Errorf("signal %s: sampling rate %g differs from %g (mixed rates unsupported)", sig.Label, r, rate)
		}
		rec.Channels = append(rec.Channels, domain.Channel{
			Label:   sig.Label,
			Kind:    kind,
			Samples: file.Data[i],
		})
	}
	if len(rec.Channels) == 0 {
		return nil, fmt.Errorf("no usable signals")
	}
	rec.SampleRate = rate
	return rec, nil
}
