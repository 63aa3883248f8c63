// Package config loads evaluation run configuration.
//
// A run is described by a YAML file naming the datasets to compare, the
// measures to compute and where to put the output. Process-level settings
// come from the environment.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"facet/internal/domain"
)

// Env holds process-level settings read from the environment.
type Env struct {
	Home     string `env:"FACET_HOME"`
	LogLevel string `env:"FACET_LOG_LEVEL"`
}

// FromEnv parses the process environment.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Dataset names one corrected recording to evaluate.
type Dataset struct {
	Path string `yaml:"path"`
	Name string `yaml:"name,omitempty"` // defaults to the path
}

// Window optionally overrides the evaluated time window in seconds.
type Window struct {
	Start *float64 `yaml:"start,omitempty"`
	End   *float64 `yaml:"end,omitempty"`
}

// Output controls where results go besides the terminal.
type Output struct {
	JSON string `yaml:"json,omitempty"` // write the run as JSON to this path
	Plot string `yaml:"plot,omitempty"` // write bar charts as PNG to this path
	Save *bool  `yaml:"save,omitempty"` // keep the run in the result store (default true)
}

// Run is a full evaluation run description.
type Run struct {
	LogLevel string `yaml:"logLevel,omitempty"`

	// Original is the uncorrected recording all datasets are compared
	// against for the rms measure.
	Original string `yaml:"original,omitempty"`

	TriggerPattern   string   `yaml:"triggerPattern,omitempty"`
	ArtifactOffset   float64  `yaml:"artifactOffset,omitempty"`
	ArtifactDuration float64  `yaml:"artifactDuration,omitempty"`
	BadChannels      []string `yaml:"badChannels,omitempty"`

	Window   Window    `yaml:"window,omitempty"`
	Datasets []Dataset `yaml:"datasets"`
	Measures []string  `yaml:"measures"`
	Output   Output    `yaml:"output,omitempty"`
}

// DefaultTriggerPattern matches the conventional scanner pulse value.
const DefaultTriggerPattern = `\b1\b`

// Load reads and validates a run configuration file.
func Load(path string) (*Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var run Run
	if err := dec.Decode(&run); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &run, nil
}

// Validate checks the run description and fills defaults.
func (r *Run) Validate() error {
	if len(r.Datasets) == 0 {
		return fmt.Errorf("no datasets configured")
	}
	for i := range r.Datasets {
		d := &r.Datasets[i]
		if d.Path == "" {
			return fmt.Errorf("dataset %d: path required", i)
		}
		if d.Name == "" {
			d.Name = d.Path
		}
	}
	if len(r.Measures) == 0 {
		r.Measures = []string{string(domain.MeasureSNR)}
	}
	for _, m := range r.Measures {
		if _, err := domain.ParseMeasure(m); err != nil {
			return err
		}
	}
	if r.TriggerPattern == "" {
		r.TriggerPattern = DefaultTriggerPattern
	}
	if _, err := regexp.Compile(r.TriggerPattern); err != nil {
		return fmt.Errorf("triggerPattern: %w", err)
	}
	if r.Window.Start != nil && r.Window.End != nil && *r.Window.Start >= *r.Window.End {
		return fmt.Errorf("window start %g is not before end %g", *r.Window.Start, *r.Window.End)
	}
	return nil
}

// ParsedMeasures returns the configured measures as domain values.
func (r *Run) ParsedMeasures() []domain.Measure {
	out := make([]domain.Measure, 0, len(r.Measures))
	for _, m := range r.Measures {
		parsed, err := domain.ParseMeasure(m)
		if err != nil {
			continue // Validate already rejected unknown names
		}
		out = append(out, parsed)
	}
	return out
}

// SaveRun reports whether the run should be kept in the result store.
func (r *Run) SaveRun() bool {
	return r.Output.Save == nil || *r.Output.Save
}
