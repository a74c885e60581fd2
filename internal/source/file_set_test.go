package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("brief.txt", []byte("hallo wereld"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("brief.txt", []byte("hallo Den Haag"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("brief.txt")
	if !exists {
		t.Fatal("Expected file to exist after Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "hallo wereld" {
		t.Errorf("Expected first file content to be 'hallo wereld', got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("stdin", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("stdin", []byte("ken ik\njou"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{4, LineCol{Line: 1, Col: 5}},
		{6, LineCol{Line: 1, Col: 7}},
		{7, LineCol{Line: 2, Col: 1}},
		{9, LineCol{Line: 2, Col: 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestLoadStripsBOMAndKeepsCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("groot\r\nhuis")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if got := string(file.Content); got != "groot\r\nhuis" {
		t.Fatalf("content = %q, want CRLF preserved and BOM stripped", got)
	}
	if file.Flags&FileHadBOM == 0 {
		t.Fatal("expected FileHadBOM flag")
	}
	if got := file.WithBOM([]byte("graut")); string(got) != "\uFEFFgraut" {
		t.Fatalf("WithBOM = %q", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 7}
	b := Span{File: 1, Start: 10, End: 12}
	if got := a.Cover(b); got != (Span{File: 1, Start: 4, End: 12}) {
		t.Fatalf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 1}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover across files must keep receiver, got %v", got)
	}
	if a.Len() != 3 || a.Empty() {
		t.Fatalf("Len/Empty wrong for %v", a)
	}
}

func TestLineSpan(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("s.txt", []byte("een\r\ntwee\n\ndrie")))

	tests := []struct {
		line uint32
		want string
	}{
		{1, "een"},
		{2, "twee"},
		{3, ""},
		{4, "drie"},
		{9, ""},
	}
	for _, tt := range tests {
		if got := f.Slice(f.LineSpan(tt.line)); got != tt.want {
			t.Errorf("line %d = %q, want %q", tt.line, got, tt.want)
		}
	}
}
