package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "stage", "file", "debug"} {
		lvl, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if lvl.String() != s {
			t.Errorf("round trip %q -> %q", s, lvl.String())
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevelScopes(t *testing.T) {
	if !LevelStage.ShouldEmit(ScopeStage) || LevelStage.ShouldEmit(ScopeFile) {
		t.Error("stage level must stop at stage scope")
	}
	if !LevelFile.ShouldEmit(ScopeFile) || LevelFile.ShouldEmit(ScopeMatch) {
		t.Error("file level must stop at file scope")
	}
	if LevelError.ShouldEmit(ScopeDriver) || !LevelError.Records(ScopeFile) {
		t.Error("error level records for the ring but prints nothing")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelFile, FormatText)
	ctx := WithTracer(context.Background(), tr)

	stage, ctx := StartSpan(ctx, ScopeStage, "translate")
	file, _ := StartSpan(ctx, ScopeFile, "file:a.txt")
	file.WithExtra("words", "3").WithExtra("matches", "1").End("")
	Point(tr, ScopeMatch, "match", "groot", file.ID())
	stage.End("done")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "\u2190 file:a.txt {matches=1, words=3}") {
		t.Errorf("unexpected file end line %q", lines[2])
	}
	if !strings.Contains(lines[3], "translate (done)") {
		t.Errorf("unexpected stage end line %q", lines[3])
	}
	if strings.Contains(out, "groot") {
		t.Error("match points must not be printed at file level")
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	span := Begin(tr, ScopeStage, "load-table", 0)
	span.End("")

	dec := json.NewDecoder(&buf)
	var kinds []string
	for dec.More() {
		var ev map[string]any
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("decode: %v", err)
		}
		kinds = append(kinds, ev["kind"].(string))
		if ev["name"] != "load-table" {
			t.Errorf("unexpected name %v", ev["name"])
		}
	}
	if strings.Join(kinds, ",") != "begin,end" {
		t.Fatalf("unexpected kinds %v", kinds)
	}
}

func TestRingTracerWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelError)
	for _, name := range []string{"a", "b", "c", "d"} {
		Point(ring, ScopeStage, name, "", 0)
	}
	Point(ring, ScopeMatch, "skipped", "", 0)

	events := ring.Snapshot()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Name != "b" || events[2].Name != "d" {
		t.Fatalf("unexpected order %q..%q", events[0].Name, events[2].Name)
	}
	if ring.Dropped() != 1 {
		t.Fatalf("Dropped() = %d, want 1", ring.Dropped())
	}

	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("unexpected dump:\n%s", buf.String())
	}
}

func TestNewAndRing(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off level must give the nop tracer, got %v %v", tr, err)
	}

	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelStage, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if Ring(tr) == nil {
		t.Fatal("both mode must carry a ring")
	}
	Begin(tr, ScopeStage, "write", 0).End("")
	if len(Ring(tr).Snapshot()) != 2 || buf.Len() == 0 {
		t.Fatal("events must reach both stream and ring")
	}
}

type failingTracer struct {
	*RingTracer
	err error
}

func (f *failingTracer) Close() error { return f.err }

func TestFanoutJoinsErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	f := newFanout(LevelStage,
		&failingTracer{RingTracer: NewRingTracer(4, LevelStage), err: errA},
		NewRingTracer(4, LevelStage),
		&failingTracer{RingTracer: NewRingTracer(4, LevelStage), err: errB},
	)
	Point(f, ScopeStage, "load-table", "", 0)
	if got := len(Ring(f).Snapshot()); got != 1 {
		t.Fatalf("ring behind fanout holds %d events, want 1", got)
	}
	err := f.Close()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("Close() = %v, want both errors", err)
	}
	if f.Flush() != nil {
		t.Fatal("Flush of rings must not fail")
	}
}

func TestNopSpan(t *testing.T) {
	span, ctx := StartSpan(context.Background(), ScopeStage, "x")
	if span.ID() != 0 || CurrentSpanID(ctx) != 0 {
		t.Fatal("spans without tracer must be inert")
	}
	if span.End("") != 0 {
		t.Fatal("nop span must report zero duration")
	}
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]Format{
		"trace.ndjson": FormatNDJSON,
		"trace.jsonl":  FormatNDJSON,
		"trace.log":    FormatText,
		"-":            FormatText,
	}
	for path, want := range cases {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %v, want %v", path, got, want)
		}
	}
}
