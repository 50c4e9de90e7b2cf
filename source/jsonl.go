package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/signalsfoundry/gnss-conformance/hal"
)

// JSONL reads newline-delimited JSON location records in the hal.Location
// wire shape (absent optional fields are null or omitted). Blank lines are
// skipped; a malformed line is a hard error, since a corrupt artifact
// should fail the run rather than silently shrink it.
type JSONL struct {
	scanner *bufio.Scanner
	line    int
}

// NewJSONL wraps a reader producing one JSON record per line.
func NewJSONL(r io.Reader) *JSONL {
	return &JSONL{scanner: bufio.NewScanner(r)}
}

// Next implements Source.
func (j *JSONL) Next(ctx context.Context) (Record, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		if !j.scanner.Scan() {
			if err := j.scanner.Err(); err != nil {
				return Record{}, err
			}
			return Record{}, io.EOF
		}
		j.line++

		raw := j.scanner.Text()
		if len(raw) == 0 {
			continue
		}

		var loc hal.Location
		if err := json.Unmarshal([]byte(raw), &loc); err != nil {
			return Record{}, fmt.Errorf("jsonl line %d: %w", j.line, err)
		}
		return Record{Location: loc, Raw: raw}, nil
	}
}
