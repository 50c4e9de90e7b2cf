// Package replay paces playback of recorded location streams so a
// conformance run can approximate the cadence the device originally
// reported at, or run flat out.
package replay

import (
	"context"
	"time"
)

// Mode describes how the Pacer spaces emitted records.
type Mode int

const (
	// ASAP emits records as quickly as the run loop can process them.
	ASAP Mode = iota
	// Timed spaces records by their timestamps, scaled by Rate.
	Timed
)

// Pacer blocks the run loop between records. Not safe for concurrent use;
// one pacer serves one replay loop.
type Pacer struct {
	mode Mode
	rate float64

	lastMillis int64
	hasLast    bool
}

// NewPacer constructs a pacer. Rate scales replay speed in Timed mode:
// 1 is original cadence, 2 is twice as fast. Rates <= 0 behave as 1.
func NewPacer(mode Mode, rate float64) *Pacer {
	if rate <= 0 {
		rate = 1
	}
	return &Pacer{mode: mode, rate: rate}
}

// Wait blocks until the record stamped tsMillis is due, or the context is
// cancelled. The first record and records with non-increasing timestamps
// are due immediately.
func (p *Pacer) Wait(ctx context.Context, tsMillis int64) error {
	if p.mode == ASAP {
		return ctx.Err()
	}

	if !p.hasLast {
		p.lastMillis = tsMillis
		p.hasLast = true
		return ctx.Err()
	}

	deltaMillis := tsMillis - p.lastMillis
	p.lastMillis = tsMillis
	if deltaMillis <= 0 {
		return ctx.Err()
	}

	delay := time.Duration(float64(deltaMillis)/p.rate) * time.Millisecond
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
