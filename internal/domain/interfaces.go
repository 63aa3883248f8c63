package domain

// ResultStore persists completed evaluation runs.
type ResultStore interface {
	SaveRun(run Run) error
	LoadRun(id string) (Run, bool, error)
	ListRuns() ([]RunSummary, error)
}

// ImportOptions controls how a recording is read from disk.
type ImportOptions struct {
	// Bads lists channel labels to exclude from evaluation.
	Bads []string

	// ArtifactOffset is the artifact-to-trigger offset in seconds.
	ArtifactOffset float64

	// ArtifactDuration overrides the derived artifact length in seconds.
	ArtifactDuration float64
}

// RecordingImporter loads recordings from disk into the domain model.
type RecordingImporter interface {
	Import(path string, opts ImportOptions) (*Recording, error)
}
