package report

import (
	"strings"
	"testing"

	"github.com/signalsfoundry/gnss-conformance/conformance"
)

func TestStore_RunLifecycle(t *testing.T) {
	store := NewStore()
	opts := conformance.Options{CheckSpeed: true}

	runID := store.StartRun(opts, true)
	if runID == "" {
		t.Fatal("StartRun must return a run ID")
	}

	if err := store.AddResult(runID, `{"ok":1}`, nil); err != nil {
		t.Fatalf("AddResult clean: %v", err)
	}
	violations := []conformance.Violation{
		{Rule: conformance.RuleLatitudeRange, Field: "latitude", Want: "[-90, 90]", Got: 91.0},
		{Rule: conformance.RuleTimestampSanity, Field: "timestamp_millis", Want: "> 1.48e12", Got: int64(0)},
	}
	if err := store.AddResult(runID, `{"bad":1}`, violations); err != nil {
		t.Fatalf("AddResult failing: %v", err)
	}

	rep, err := store.FinishRun(runID)
	if err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	if rep.RecordsChecked != 2 || rep.RecordsFailed != 1 {
		t.Errorf("counts = %d checked / %d failed", rep.RecordsChecked, rep.RecordsFailed)
	}
	if rep.Passed() {
		t.Error("a run with failures must not pass")
	}
	if !rep.Automotive || !rep.Options.CheckSpeed {
		t.Errorf("run metadata lost: %+v", rep)
	}
	if rep.RuleCounts[conformance.RuleLatitudeRange] != 1 || rep.RuleCounts[conformance.RuleTimestampSanity] != 1 {
		t.Errorf("rule counts = %v", rep.RuleCounts)
	}
	if len(rep.Findings) != 1 || rep.Findings[0].Raw != `{"bad":1}` {
		t.Errorf("findings = %+v (clean records must not be stored)", rep.Findings)
	}
	if rep.FinishedAt.IsZero() {
		t.Error("FinishRun must stamp the end time")
	}
}

func TestStore_UnknownRun(t *testing.T) {
	store := NewStore()

	if err := store.AddResult("nope", "raw", nil); err == nil {
		t.Error("AddResult on an unknown run must fail")
	}
	if _, err := store.FinishRun("nope"); err == nil {
		t.Error("FinishRun on an unknown run must fail")
	}
	if _, ok := store.GetRun("nope"); ok {
		t.Error("GetRun on an unknown run must report absence")
	}
}

func TestStore_SubscribersSeeFindingsAndFinish(t *testing.T) {
	store := NewStore()
	runID := store.StartRun(conformance.Options{}, false)

	var events []Event
	unsubscribe := store.Subscribe(func(e Event) { events = append(events, e) })

	// Clean results stay quiet.
	if err := store.AddResult(runID, "clean", nil); err != nil {
		t.Fatalf("AddResult: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("clean result must not notify, got %v", events)
	}

	violations := []conformance.Violation{{Rule: conformance.RuleLatLngFlag, Field: "lat_lng", Want: "present"}}
	if err := store.AddResult(runID, "dirty", violations); err != nil {
		t.Fatalf("AddResult: %v", err)
	}
	if _, err := store.FinishRun(runID); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected finding + finish events, got %d", len(events))
	}
	if events[0].Type != EventFindingAdded || events[0].Finding.Raw != "dirty" {
		t.Errorf("first event = %+v", events[0])
	}
	if events[1].Type != EventRunFinished || events[1].Report.RecordsChecked != 2 {
		t.Errorf("second event = %+v", events[1])
	}

	unsubscribe()
	runID2 := store.StartRun(conformance.Options{}, false)
	_ = store.AddResult(runID2, "dirty", violations)
	if len(events) != 2 {
		t.Error("unsubscribed callback must not fire")
	}
}

func TestStore_UnsubscribeOutOfOrder(t *testing.T) {
	store := NewStore()
	runID := store.StartRun(conformance.Options{}, false)
	violations := []conformance.Violation{{Rule: conformance.RuleLatLngFlag}}

	counts := map[string]int{}
	unsubA := store.Subscribe(func(Event) { counts["a"]++ })
	unsubB := store.Subscribe(func(Event) { counts["b"]++ })
	unsubC := store.Subscribe(func(Event) { counts["c"]++ })

	// Removing an earlier subscriber must not disturb later ones.
	unsubA()
	_ = store.AddResult(runID, "dirty", violations)
	if counts["a"] != 0 || counts["b"] != 1 || counts["c"] != 1 {
		t.Fatalf("after removing a: counts = %v", counts)
	}

	unsubB()
	unsubB() // idempotent
	_ = store.AddResult(runID, "dirty", violations)
	if counts["a"] != 0 || counts["b"] != 1 || counts["c"] != 2 {
		t.Fatalf("after removing b: counts = %v", counts)
	}

	unsubC()
	_ = store.AddResult(runID, "dirty", violations)
	if counts["a"] != 0 || counts["b"] != 1 || counts["c"] != 2 {
		t.Fatalf("after removing all: counts = %v", counts)
	}
}

func TestStore_SnapshotsDoNotAliasInternals(t *testing.T) {
	store := NewStore()
	runID := store.StartRun(conformance.Options{}, false)
	_ = store.AddResult(runID, "dirty", []conformance.Violation{{Rule: conformance.RuleLatLngFlag}})

	snap, ok := store.GetRun(runID)
	if !ok {
		t.Fatal("GetRun: run missing")
	}
	snap.RuleCounts[conformance.RuleLatLngFlag] = 99
	snap.Findings[0].Raw = "tampered"

	fresh, _ := store.GetRun(runID)
	if fresh.RuleCounts[conformance.RuleLatLngFlag] != 1 || fresh.Findings[0].Raw != "dirty" {
		t.Error("mutating a snapshot must not leak into the store")
	}
}

func TestReport_WriteJSON(t *testing.T) {
	store := NewStore()
	runID := store.StartRun(conformance.Options{CheckMoreAccuracies: true}, false)
	rep, err := store.FinishRun(runID)
	if err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	var sb strings.Builder
	if err := rep.WriteJSON(&sb); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := sb.String()
	for _, want := range []string{runID, `"check_more_accuracies": true`, `"records_checked": 0`} {
		if !strings.Contains(out, want) {
			t.Errorf("report JSON missing %q:\n%s", want, out)
		}
	}
}
