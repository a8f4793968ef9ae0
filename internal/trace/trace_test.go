package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"": LevelOff, "off": LevelOff, "RUN": LevelRun, " source ": LevelSource}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLevelShouldEmit(t *testing.T) {
	if LevelOff.ShouldEmit(ScopeRun) {
		t.Fatal("off must not emit")
	}
	if !LevelRun.ShouldEmit(ScopeRun) || LevelRun.ShouldEmit(ScopeSource) {
		t.Fatal("run level must emit run scope only")
	}
	if !LevelSource.ShouldEmit(ScopeSource) {
		t.Fatal("source level must emit source scope")
	}
}

func TestNewOffReturnsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if tr.Enabled() || tr != Nop {
		t.Fatalf("expected nop tracer, got %#v", tr)
	}
}

func TestStreamTracerTextSpans(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelSource, Format: FormatText, Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if tr.(*StreamTracer).runID == "" {
		t.Fatal("expected a run id")
	}

	run := Begin(tr, ScopeRun, "run", 0)
	src := Begin(tr, ScopeSource, "a.txt", run.ID())
	src.WithExtra("lines", "3").End("")
	Point(tr, ScopeSource, "missing.txt", "no such file or directory", run.ID())
	run.End("2 sources")

	out := buf.String()
	for _, want := range []string{
		"\u2192 run\n",
		"  \u2192 a.txt\n",
		"  \u2190 a.txt {lines=3}\n",
		"  \u2022 missing.txt (no such file or directory)\n",
		"\u2190 run (2 sources)\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("trace output missing %q:\n%s", want, out)
		}
	}
}

func TestStreamTracerRunLevelSkipsSources(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelRun, FormatText, "id")
	run := Begin(tr, ScopeRun, "run", 0)
	Begin(tr, ScopeSource, "a.txt", run.ID()).End("")
	run.End("")

	if strings.Contains(buf.String(), "a.txt") {
		t.Fatalf("source span leaked at run level:\n%s", buf.String())
	}
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Fatalf("expected 2 events, got %d:\n%s", got, buf.String())
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelSource, FormatNDJSON, "run-1")
	Begin(tr, ScopeSource, "b.txt", 7).End("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["kind"] != "end" || ev["scope"] != "source" || ev["name"] != "b.txt" || ev["detail"] != "done" {
		t.Fatalf("unexpected event: %v", ev)
	}
	if ev["run_id"] != "run-1" || ev["parent_id"] != float64(7) {
		t.Fatalf("unexpected ids: %v", ev)
	}
}

func TestNewPicksNDJSONFromPath(t *testing.T) {
	path := t.TempDir() + "/trace.ndjson"
	tr, err := New(Config{Level: LevelRun, OutputPath: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	st, ok := tr.(*StreamTracer)
	if !ok {
		t.Fatalf("expected *StreamTracer, got %T", tr)
	}
	if st.format != FormatNDJSON {
		t.Fatalf("expected ndjson format, got %v", st.format)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop from empty context")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelRun, FormatText, "x")
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != tr {
		t.Fatal("tracer not propagated")
	}
	if FromContext(WithTracer(context.Background(), nil)) != Nop {
		t.Fatal("nil tracer should become Nop")
	}
}

func TestNopSpanIsSafe(t *testing.T) {
	s := Begin(Nop, ScopeRun, "run", 0)
	if s.WithExtra("k", "v").End("") != 0 {
		t.Fatal("nop span should report zero duration")
	}
	if s.ID() != 0 {
		t.Fatal("nop span should have zero id")
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestCloseLeavesCallerOutputOpen(t *testing.T) {
	out := &closeRecorder{}
	tr, err := New(Config{Level: LevelRun, Output: out})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	Begin(tr, ScopeRun, "run", 0).End("")
	if err := tr.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if out.closed {
		t.Fatal("tracer closed a writer it does not own")
	}
	if strings.Count(out.String(), "\n") != 2 {
		t.Fatalf("expected begin and end events:\n%s", out.String())
	}
}

func TestCloseClosesOwnedFile(t *testing.T) {
	tr, err := New(Config{Level: LevelRun, OutputPath: t.TempDir() + "/trace.log"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := tr.(*StreamTracer).closer.Close(); err == nil {
		t.Fatal("expected second close of the trace file to fail")
	}
}
