package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"haags/internal/diag"
	"haags/internal/source"
)

func TestJSONOutput(t *testing.T) {
	bag, fs := testBag(t)
	bag.Add(diag.NewError(diag.IOLoadError, source.NoSpan, "failed to load x"))

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || out.Errors != 2 || out.Warnings != 0 {
		t.Fatalf("unexpected counts %+v", out)
	}

	first := out.Diagnostics[0]
	if first.Code != "DAT1001" || first.Severity != "ERROR" || first.Key != "groot" {
		t.Fatalf("unexpected first diagnostic %+v", first)
	}
	if first.Location == nil || first.Location.File != "haags.toml" || first.Location.StartLine != 2 || first.Location.StartCol != 1 {
		t.Fatalf("unexpected location %+v", first.Location)
	}
	if len(first.Notes) != 1 || first.Notes[0].Location == nil || first.Notes[0].Location.StartLine != 3 {
		t.Fatalf("unexpected notes %+v", first.Notes)
	}

	if second := out.Diagnostics[1]; second.Location != nil {
		t.Fatalf("diagnostic without span must omit location, got %+v", second.Location)
	}
}

func TestJSONMaxAndNotes(t *testing.T) {
	bag, fs := testBag(t)
	bag.Add(diag.NewError(diag.IOLoadError, source.NoSpan, "failed"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 || out.Errors != 2 {
		t.Fatalf("Max should trim output only: %+v", out)
	}
	if out.Diagnostics[0].Notes != nil {
		t.Fatal("notes must be omitted unless requested")
	}
	if loc := out.Diagnostics[0].Location; loc == nil || loc.StartLine != 0 {
		t.Fatalf("positions must be omitted unless requested: %+v", loc)
	}
}
