package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	clock := time.Unix(0, 0)
	tm := NewTimer()
	tm.now = func() time.Time { return clock }

	a := tm.Begin("a.txt")
	clock = clock.Add(2 * time.Millisecond)
	tm.End(a, 10, "")

	b := tm.Begin("-")
	clock = clock.Add(3 * time.Millisecond)
	tm.End(b, 5, "read error")

	tm.End(42, 0, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(r.Phases))
	}
	if r.TotalMS != 5 || r.TotalBytes != 15 {
		t.Fatalf("unexpected totals: %+v", r)
	}
	if r.Phases[1].Note != "read error" || r.Phases[1].DurationMS != 3 {
		t.Fatalf("unexpected phase: %+v", r.Phases[1])
	}

	sum := tm.Summary()
	if !strings.HasPrefix(sum, "timings:\n") || !strings.Contains(sum, "// read error") {
		t.Fatalf("unexpected summary:\n%s", sum)
	}
}

func TestTimerEmptyReport(t *testing.T) {
	r := NewTimer().Report()
	if r.Phases != nil || r.TotalMS != 0 {
		t.Fatalf("expected empty report, got %+v", r)
	}
}
