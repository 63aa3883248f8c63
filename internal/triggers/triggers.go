// Package triggers locates artifact trigger events on a recording's stim
// channel. An event is a transition onto a value whose textual form matches a
// user-supplied pattern, mirroring how scanner pulses are marked in EEG/fMRI
// acquisitions.
package triggers

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"facet/internal/domain"
)

// Detect scans the recording's stim channel and returns the sample indices
// where the channel switches to a value matching pattern. The value is
// formatted as an integer when it is within rounding noise of one.
func Detect(rec *domain.Recording, pattern string) ([]int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("trigger pattern: %w", err)
	}
	stim, err := stimChannel(rec)
	if err != nil {
		return nil, err
	}

	var found []int
	prev := math.NaN()
	for i, v := range stim.Samples {
		if v == prev {
			continue
		}
		prev = v
		if re.MatchString(formatValue(v)) {
			found = append(found, i)
		}
	}
	return found, nil
}

func stimChannel(rec *domain.Recording) (*domain.Channel, error) {
	for i := range rec.Channels {
		if rec.Channels[i].Kind == domain.KindStim {
			return &rec.Channels[i], nil
		}
	}
	return nil, fmt.Errorf("recording has no stim channel")
}

// formatValue renders a stim sample for pattern matching. Calibration can
// leave integer event codes fractionally off, so near-integers are snapped.
func formatValue(v float64) string {
	if r := math.Round(v); math.Abs(v-r) < 1e-6 {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
