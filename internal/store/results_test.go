package store_test

import (
	"testing"
	"time"

	"facet/internal/domain"
	"facet/internal/store"
)

func sampleRun(id string, at time.Time) domain.Run {
	return domain.Run{
		ID:        id,
		CreatedAt: at,
		Datasets:  []string{"Without ANC", "With ANC"},
		Results: []domain.Result{
			{Measure: domain.MeasureSNR, Title: "SNR", Unit: "dB", Values: []float64{2.5, 3.5}},
		},
	}
}

func TestRun_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	var rs domain.ResultStore = store.NewResultsFileStore(home)

	run := sampleRun("run-1", time.Now().UTC().Truncate(time.Second))
	if err := rs.SaveRun(run); err != nil {
		t.Fatalf("save run: %v", err)
	}

	got, ok, err := rs.LoadRun("run-1")
	if err != nil {
		t.Fatalf("load run: %v", err)
	}
	if !ok {
		t.Fatal("run not found after save")
	}
	if got.ID != run.ID || len(got.Results) != 1 || got.Results[0].Values[1] != 3.5 {
		t.Fatalf("mismatch after load: %+v", got)
	}
}

func TestRun_LoadMissing(t *testing.T) {
	var rs domain.ResultStore = store.NewResultsFileStore(t.TempDir())

	_, ok, err := rs.LoadRun("nope")
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if ok {
		t.Fatal("expected missing run")
	}
}

func TestRun_ListNewestFirst(t *testing.T) {
	home := t.TempDir()
	var rs domain.ResultStore = store.NewResultsFileStore(home)

	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	if err := rs.SaveRun(sampleRun("run-old", base)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := rs.SaveRun(sampleRun("run-new", base.Add(time.Hour))); err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := rs.ListRuns()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("want 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "run-new" || runs[1].ID != "run-old" {
		t.Fatalf("wrong order: %s, %s", runs[0].ID, runs[1].ID)
	}
	if len(runs[0].Measures) != 1 || runs[0].Measures[0] != domain.MeasureSNR {
		t.Fatalf("wrong measures: %+v", runs[0].Measures)
	}
}

func TestRun_ListEmptyHome(t *testing.T) {
	var rs domain.ResultStore = store.NewResultsFileStore(t.TempDir())

	runs, err := rs.ListRuns()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("want no runs, got %d", len(runs))
	}
}

func TestNewRunID_Unique(t *testing.T) {
	now := time.Now()
	a := store.NewRunID(now)
	b := store.NewRunID(now)
	if a == b {
		t.Fatalf("ids collide: %s", a)
	}
}
