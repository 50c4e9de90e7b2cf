// Package report collects the findings of a conformance run into an
// artifact the bench can archive, and offers an in-memory store that fans
// run events out to listeners (loggers, metrics).
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/signalsfoundry/gnss-conformance/conformance"
)

// Finding is one checked record together with the rules it violated.
// Records with zero violations are counted but not stored.
type Finding struct {
	Raw        string                  `json:"raw"`
	Violations []conformance.Violation `json:"violations"`
}

// Report is the artifact of one conformance run.
type Report struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitzero"`

	Automotive bool                `json:"automotive"`
	Options    conformance.Options `json:"options"`

	RecordsChecked int                      `json:"records_checked"`
	RecordsFailed  int                      `json:"records_failed"`
	RuleCounts     map[conformance.Rule]int `json:"rule_counts"`

	Findings []Finding `json:"findings"`
}

// Passed reports whether the run saw no violations at all.
func (r Report) Passed() bool {
	return r.RecordsFailed == 0
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
