// Package report serializes evaluation winners for consumers outside the
// optimizer (UI, host environment, files).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/gearopt/internal/evaluate"
	"github.com/cory-johannsen/gearopt/internal/game/attribute"
	"github.com/cory-johannsen/gearopt/internal/game/character"
)

// Report is the document written at the end of a run.
type Report struct {
	RunID       uuid.UUID                   `json:"run_id"`
	GeneratedAt time.Time                   `json:"generated_at"`
	RankBy      attribute.Attribute         `json:"rankby"`
	Evaluated   int64                       `json:"evaluated"`
	Invalid     int64                       `json:"invalid"`
	Results     []character.ResultCharacter `json:"results"`
}

// New builds a Report for sum with a fresh run id.
//
// Postcondition: Results is never nil so it encodes as [] rather than null.
func New(sum evaluate.Summary, rankby attribute.Attribute, now time.Time) Report {
	results := sum.Results
	if results == nil {
		results = []character.ResultCharacter{}
	}
	return Report{
		RunID:       uuid.New(),
		GeneratedAt: now.UTC(),
		RankBy:      rankby,
		Evaluated:   sum.Evaluated,
		Invalid:     sum.Invalid,
		Results:     results,
	}
}

// Write encodes r as indented JSON.
func Write(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report %s: %w", r.RunID, err)
	}
	return nil
}
