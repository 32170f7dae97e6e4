package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"district-sync/core/reconcile"
)

// Document is the JSON form of a reconciliation run.
type Document struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`
	// Gold is the gold dataset label.
	Gold string `json:"gold"`
	// GeneratedAt is the report creation time.
	GeneratedAt time.Time `json:"generated_at"`
	// Reports holds one report per target.
	Reports []*reconcile.Report `json:"reports"`
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
