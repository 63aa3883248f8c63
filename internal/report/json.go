package report

import (
	"encoding/json"
	"io"

	"facet/internal/domain"
)

// WriteJSON writes the run as indented JSON.
func WriteJSON(w io.Writer, run domain.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}
