package domain

import "time"

// Result is one evaluated measure across all registered datasets. Values is
// index-aligned with the dataset names of the run that produced it.
type Result struct {
	Measure Measure   `json:"measure"`
	Title   string    `json:"title"`
	Unit    string    `json:"unit"`
	Values  []float64 `json:"values"`
}

// Run is a completed evaluation: which datasets were compared and the
// resulting measure rows.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Datasets  []string  `json:"datasets"`
	Results   []Result  `json:"results"`
}

// RunSummary is the listing view of a stored run.
type RunSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Datasets  []string  `json:"datasets"`
	Measures  []Measure `json:"measures"`
}
