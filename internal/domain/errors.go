package domain

import "errors"

var (
	// ErrNoDatasets is returned when an evaluation runs with nothing added.
	ErrNoDatasets = errors.New("no datasets added to evaluate")

	// ErrNoTriggers is returned when an operation needs trigger positions
	// and the recording has none.
	ErrNoTriggers = errors.New("recording has no triggers")

	// ErrNoReference is returned when a measure needs an artifact-free
	// reference segment and the evaluated window starts at time zero.
	ErrNoReference = errors.New("no artifact-free reference segment")

	// ErrNoOriginal is returned when a measure needs the uncorrected
	// recording and none is attached.
	ErrNoOriginal = errors.New("no uncorrected original recording attached")

	// ErrEmptyWindow is returned when a crop or cutout window selects no
	// samples.
	ErrEmptyWindow = errors.New("empty time window")
)
