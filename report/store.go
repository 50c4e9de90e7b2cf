package report

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/signalsfoundry/gnss-conformance/conformance"
)

var ErrRunNotFound = errors.New("run not found")

// EventType indicates what kind of change happened in the store.
type EventType int

const (
	EventFindingAdded EventType = iota
	EventRunFinished
)

// Event is emitted to subscribers when a run progresses.
type Event struct {
	Type    EventType
	RunID   string
	Finding Finding // set for EventFindingAdded
	Report  Report  // set for EventRunFinished
}

// Store is an in-memory, thread-safe collection of conformance runs.
type Store struct {
	mu sync.RWMutex

	runs    map[string]*Report
	subs    map[int]func(Event)
	nextSub int
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{
		runs: make(map[string]*Report),
		subs: make(map[int]func(Event)),
	}
}

// StartRun opens a new run and returns its ID.
func (s *Store) StartRun(opts conformance.Options, automotive bool) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[id] = &Report{
		RunID:      id,
		StartedAt:  time.Now().UTC(),
		Automotive: automotive,
		Options:    opts,
		RuleCounts: make(map[conformance.Rule]int),
	}
	return id
}

// AddResult records one checked record. Clean records only bump the
// counters; records with violations are kept as findings and announced to
// subscribers.
func (s *Store) AddResult(runID, raw string, violations []conformance.Violation) error {
	s.mu.Lock()
	run, ok := s.runs[runID]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrRunNotFound, runID)
	}

	run.RecordsChecked++
	if len(violations) == 0 {
		s.mu.Unlock()
		return nil
	}

	run.RecordsFailed++
	for _, v := range violations {
		run.RuleCounts[v.Rule]++
	}
	finding := Finding{Raw: raw, Violations: violations}
	run.Findings = append(run.Findings, finding)

	event := Event{Type: EventFindingAdded, RunID: runID, Finding: finding}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	for _, sub := range subs {
		sub(event)
	}
	return nil
}

// FinishRun stamps the end of a run and returns the finished report.
func (s *Store) FinishRun(runID string) (Report, error) {
	s.mu.Lock()
	run, ok := s.runs[runID]
	if !ok {
		s.mu.Unlock()
		return Report{}, fmt.Errorf("%w: %q", ErrRunNotFound, runID)
	}
	run.FinishedAt = time.Now().UTC()

	snapshot := snapshotReport(run)
	event := Event{Type: EventRunFinished, RunID: runID, Report: snapshot}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(event)
	}
	return snapshot, nil
}

// GetRun returns a copy of the run with the given ID.
func (s *Store) GetRun(runID string) (Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[runID]
	if !ok {
		return Report{}, false
	}
	return snapshotReport(run), true
}

// Subscribe registers a callback for store events. It returns an
// unsubscribe function, which is idempotent and independent of the order
// other subscribers leave in.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// snapshotSubs copies the current subscribers so events can be delivered
// outside the lock. Call with the lock held.
func (s *Store) snapshotSubs() []func(Event) {
	subs := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

// snapshotReport deep-copies the mutable parts so callers never alias
// store internals. Call with the lock held.
func snapshotReport(run *Report) Report {
	out := *run
	out.RuleCounts = make(map[conformance.Rule]int, len(run.RuleCounts))
	for rule, n := range run.RuleCounts {
		out.RuleCounts[rule] = n
	}
	out.Findings = append([]Finding(nil), run.Findings...)
	return out
}
