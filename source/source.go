// Package source feeds location records into a conformance run. A source
// is the device side of the run: recorded JSONL artifacts, a live NMEA
// sentence stream, or an MQTT topic a test rig publishes fixes on.
package source

import (
	"context"

	"github.com/signalsfoundry/gnss-conformance/hal"
)

// Record couples a decoded location with the raw input it came from, so
// findings can point back at the offending line or payload.
type Record struct {
	Location hal.Location
	Raw      string
}

// Source yields records until the stream ends (io.EOF) or the context is
// cancelled.
type Source interface {
	Next(ctx context.Context) (Record, error)
}
