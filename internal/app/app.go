// Package app wires application dependencies and exposes the high-level
// facade the CLI drives: import a recording, find its triggers, register it
// for evaluation, evaluate.
package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"facet/internal/domain"
	"facet/internal/log"
	"facet/internal/services/evaluation"
	"facet/internal/services/importer"
	"facet/internal/store"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string // facet home directory, e.g. $HOME/.facet
}

// App bundles the importer, the evaluation frame and the result store.
type App struct {
	Importer *importer.Service
	Frame    *evaluation.Frame
	Results  domain.ResultStore

	current *domain.Recording
	log     zerolog.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	return &App{
		Importer: importer.New(),
		Frame:    evaluation.NewFrame(),
		Results:  store.NewResultsFileStore(cfg.Home),
		log:      log.WithComponent("app"),
	}
}

// ImportEEG loads a recording and makes it current.
func (a *App) ImportEEG(path string, opts domain.ImportOptions) (*domain.Recording, error) {
	rec, err := a.Importer.Import(path, opts)
	if err != nil {
		return nil, err
	}
	a.current = rec
	return rec, nil
}

// Current returns the most recently imported recording.
func (a *App) Current() *domain.Recording { return a.current }

// SetOriginal attaches an uncorrected recording to the current one, so
// before/after measures can compare against it.
func (a *App) SetOriginal(orig *domain.Recording) error {
	if a.current == nil {
		return fmt.Errorf("no recording imported")
	}
	a.current.Original = orig
	return nil
}

// FindTriggers locates artifact triggers on the current recording.
func (a *App) FindTriggers(pattern string) (int, error) {
	if a.current == nil {
		return 0, fmt.Errorf("no recording imported")
	}
	return a.Importer.FindTriggers(a.current, pattern)
}

// AddToEvaluate registers a recording for evaluation. When rec is nil the
// current recording is used.
func (a *App) AddToEvaluate(rec *domain.Recording, opts evaluation.AddOptions) error {
	if rec == nil {
		rec = a.current
	}
	if rec == nil {
		return fmt.Errorf("no recording imported")
	}
	return a.Frame.Add(rec, opts)
}

// Evaluate computes the measures across all registered datasets, records the
// run, and optionally persists it.
func (a *App) Evaluate(measures []domain.Measure, save bool) (domain.Run, error) {
	results, err := a.Frame.Evaluate(measures)
	if err != nil {
		return domain.Run{}, err
	}
	run := domain.Run{
		ID:        store.NewRunID(time.Now()),
		CreatedAt: time.Now().UTC(),
		Datasets:  a.Frame.Names(),
		Results:   results,
	}
	if save {
		if err := a.Results.SaveRun(run); err != nil {
			return domain.Run{}, fmt.Errorf("save run: %w", err)
		}
		a.log.Info().Str("run", run.ID).Msg("run saved")
	}
	return run, nil
}
