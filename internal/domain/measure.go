package domain

import "fmt"

// Measure identifies one evaluation measure.
type Measure string

const (
	// MeasureSNR is the signal-to-noise ratio of the corrected data against
	// the artifact-free reference segment.
	MeasureSNR Measure = "snr"

	// MeasureRMS is the RMS ratio of the uncorrected data to the corrected
	// data (higher means more artifact removed).
	MeasureRMS Measure = "rms"

	// MeasureRMS2 is the RMS ratio of the corrected data to the unimpaired
	// reference segment (closer to 1 means less residual).
	MeasureRMS2 Measure = "rms2"

	// MeasureMedian is the median residual imaging artifact amplitude.
	MeasureMedian Measure = "median"
)

// Measures lists all known measures in presentation order.
var Measures = []Measure{MeasureSNR, MeasureRMS, MeasureRMS2, MeasureMedian}

// ParseMeasure converts a user-supplied name into a Measure.
func ParseMeasure(s string) (Measure, error) {
	for _, m := range Measures {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown measure %q (known: snr, rms, rms2, median)", s)
}

// Title returns the display title of the measure.
func (m Measure) Title() string {
	switch m {
	case MeasureSNR:
		return "SNR"
	case MeasureRMS:
		return "RMS Uncorrected to Corrected"
	case MeasureRMS2:
		return "RMS Corrected to Unimpaired"
	case MeasureMedian:
		return "MEDIAN"
	default:
		return string(m)
	}
}

// Unit returns the unit the measure's values are reported in.
func (m Measure) Unit() string {
	switch m {
	case MeasureSNR:
		return "dB"
	case MeasureRMS, MeasureRMS2:
		return "Ratio"
	case MeasureMedian:
		return "V"
	default:
		return ""
	}
}
