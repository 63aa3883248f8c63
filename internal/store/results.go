// Package store provides file-based persistence for evaluation runs.
//
// Runs are serialised as JSON under the facet home directory, one file per
// run. Writes are atomic. All methods are concurrency-safe via internal
// locking.
package store

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/renameio/v2"

	"facet/internal/domain"
)

const runsDir = "runs"

// ResultsFileStore keeps evaluation runs on disk.
type ResultsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewResultsFileStore returns a store rooted at dir (the facet home).
func NewResultsFileStore(dir string) *ResultsFileStore {
	return &ResultsFileStore{dir: dir}
}

// NewRunID returns a fresh run identifier.
func NewRunID(now time.Time) string {
	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("run-%s-%s", now.UTC().Format("20060102T150405"), hex.EncodeToString(suffix))
}

// SaveRun persists the run.
func (s *ResultsFileStore) SaveRun(run domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		return fmt.Errorf("run has no id")
	}
	dir := filepath.Join(s.dir, runsDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(s.runPath(run.ID), b, 0o600)
}

// LoadRun reads a run by id. The second return is false when it does not
// exist.
func (s *ResultsFileStore) LoadRun(id string) (domain.Run, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.runPath(id))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Run{}, false, nil
	}
	if err != nil {
		return domain.Run{}, false, err
	}
	var run domain.Run
	if err := json.Unmarshal(b, &run); err != nil {
		return domain.Run{}, false, fmt.Errorf("run %s: %w", id, err)
	}
	return run, true, nil
}

// ListRuns returns summaries of all stored runs, newest first.
func (s *ResultsFileStore) ListRuns() ([]domain.RunSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(filepath.Join(s.dir, runsDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []domain.RunSummary
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(s.dir, runsDir, e.Name()))
		if err != nil {
			return nil, err
		}
		var run domain.Run
		if err := json.Unmarshal(b, &run); err != nil {
			return nil, fmt.Errorf("run file %s: %w", e.Name(), err)
		}
		summary := domain.RunSummary{
			ID:        run.ID,
			CreatedAt: run.CreatedAt,
			Datasets:  run.Datasets,
		}
		for _, r := range run.Results {
			summary.Measures = append(summary.Measures, r.Measure)
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *ResultsFileStore) runPath(id string) string {
	return filepath.Join(s.dir, runsDir, id+".json")
}
