package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"haags/internal/source"
	"haags/internal/table"
)

func TestParseOrderAndCategories(t *testing.T) {
	data := []byte(`
toplevel = "bovenaan"

[vowels]
groot = "graut"
jij = "jèj"

[contractions]
"mag het" = "maggut"

[loanwords]
jij = "jai"
`)
	entries, err := Parse(data, "test.toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []table.Entry{
		{Source: "toplevel", Target: "bovenaan", Origin: table.Origin{Index: 0}},
		{Source: "groot", Target: "graut", Origin: table.Origin{Category: "vowels", Index: 1}},
		{Source: "jij", Target: "jèj", Origin: table.Origin{Category: "vowels", Index: 2}},
		{Source: "mag het", Target: "maggut", Origin: table.Origin{Category: "contractions", Index: 3}},
		{Source: "jij", Target: "jai", Origin: table.Origin{Category: "loanwords", Index: 4}},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}

	tbl := table.NewBuilder().AddEntries(entries...).Build()
	if got, _ := tbl.Lookup("jij"); got != "jai" {
		t.Errorf("later category must win, got %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "[vowels\ngroot = 1", "failed to parse TOML"},
		{"non-string", "[vowels]\ngroot = 1", "target must be a string"},
		{"nested", "[vowels.long]\ngroot = \"graut\"", "nested"},
		{"duplicate in table", "[vowels]\ngroot = \"a\"\ngroot = \"b\"", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "bad.toml")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) || !strings.Contains(err.Error(), "bad.toml") {
				t.Fatalf("error %q does not mention %q and file name", err, tt.want)
			}
		})
	}
}

func TestDefaultDataset(t *testing.T) {
	tbl, err := DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable: %v", err)
	}
	if tbl.Len() == 0 {
		t.Fatal("embedded dataset is empty")
	}
	if got, ok := tbl.Lookup("groot"); !ok || got != "graut" {
		t.Fatalf("groot -> %q, %v", got, ok)
	}
	if tbl.MaxPhraseLen() < 3 {
		t.Fatalf("expected three-word contractions, MaxPhraseLen = %d", tbl.MaxPhraseLen())
	}
	if dups := tbl.Duplicates(); len(dups) != 0 {
		t.Fatalf("embedded dataset has duplicates: %+v", dups)
	}
}

func TestReadSamples(t *testing.T) {
	in := `# comment
ken ik
kennik

   dacht het niet  
dachutnie
`
	samples, err := ReadSamples(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples", len(samples))
	}
	if samples[0] != (Sample{Source: "ken ik", Expected: "kennik", Line: 2}) {
		t.Errorf("sample 0 = %+v", samples[0])
	}
	if samples[1].Source != "dacht het niet" || samples[1].Line != 5 {
		t.Errorf("sample 1 = %+v", samples[1])
	}

	if _, err := ReadSamples(strings.NewReader("alleen bron\n")); err == nil {
		t.Fatal("odd number of lines must fail")
	}
}

func TestDefaultSamples(t *testing.T) {
	samples, err := DefaultSamples()
	if err != nil {
		t.Fatalf("DefaultSamples: %v", err)
	}
	if len(samples) == 0 {
		t.Fatal("no default samples")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCacheDir(filepath.Join(t.TempDir(), "tables"))
	if err != nil {
		t.Fatalf("OpenCacheDir: %v", err)
	}
	entries := []table.Entry{
		{Source: "groot", Target: "graut", Origin: table.Origin{Category: "vowels", Index: 0}},
		{Source: "mag het", Target: "maggut", Origin: table.Origin{Category: "contractions", Index: 1}},
	}
	key := Hash([]byte("dataset"))

	if _, ok, err := cache.Get(key); err != nil || ok {
		t.Fatalf("empty cache Get = %v, %v", ok, err)
	}
	if err := cache.Put(key, "test", entries); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if len(got) != 2 || got[0] != entries[0] || got[1] != entries[1] {
		t.Fatalf("Get returned %+v", got)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok, _ := cache.Get(key); ok {
		t.Fatal("entry survived DropAll")
	}
}

func TestCacheCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenCacheDir(dir)
	if err != nil {
		t.Fatalf("OpenCacheDir: %v", err)
	}
	key := Hash([]byte("x"))
	if err := os.WriteFile(filepath.Join(dir, key.String()+".mp"), []byte{0xc1}, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok, err := cache.Get(key); err == nil || ok {
		t.Fatalf("corrupt entry must error, got ok=%v err=%v", ok, err)
	}
}

func TestOpenUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabel.toml")
	if err := os.WriteFile(path, []byte("[vowels]\ngroot = \"graut\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cache, err := OpenCacheDir(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenCacheDir: %v", err)
	}

	first, err := Open(path, cache)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if first.FromCache {
		t.Fatal("first open cannot come from cache")
	}
	second, err := Open(path, cache)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !second.FromCache || second.Digest != first.Digest {
		t.Fatalf("second open should hit the cache: %+v", second)
	}
	if got, _ := second.Table().Lookup("GROOT"); got != "graut" {
		t.Fatalf("cached table lookup = %q", got)
	}

	builtin, err := Open("", nil)
	if err != nil {
		t.Fatalf("Open builtin: %v", err)
	}
	if builtin.Name != DefaultName || len(builtin.Entries) == 0 {
		t.Fatalf("unexpected builtin load %+v", builtin.Name)
	}

	if _, err := Open(filepath.Join(dir, "missing.toml"), nil); err == nil {
		t.Fatal("missing file must fail")
	}
}

func TestKeySpans(t *testing.T) {
	text := "# header\n[vowels]\ngroot = \"graut\"\n  \"mag het\" = 'maggut'\nlang = \"\"\"\nregel\n\"\"\"\n[loanwords]\neuro=\"pleuro\"\n"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("tabel.toml", []byte(text)))

	spans := KeySpans(file)
	want := []string{"groot", "mag het", "lang", "euro"}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans: %+v", len(spans), spans)
	}
	for i, w := range want {
		if spans[i].Key != w {
			t.Errorf("span %d key = %q, want %q", i, spans[i].Key, w)
		}
	}
	if got := file.Slice(spans[1].Span); got != "\"mag het\"" {
		t.Errorf("quoted key span covers %q", got)
	}
	start, _ := fs.Resolve(spans[3].Span)
	if start.Line != 9 || start.Col != 1 {
		t.Errorf("euro at %d:%d", start.Line, start.Col)
	}

	entries, err := Parse([]byte(text), "tabel.toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, e := range entries {
		if spans[e.Origin.Index].Key != e.Source {
			t.Errorf("entry %q located at key %q", e.Source, spans[e.Origin.Index].Key)
		}
	}
}

func TestOpenRecordsCacheErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabel.toml")
	data := []byte("[vowels]\ngroot = \"graut\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Run("corrupt entry", func(t *testing.T) {
		cache, err := OpenCacheDir(filepath.Join(dir, "corrupt"))
		if err != nil {
			t.Fatalf("OpenCacheDir: %v", err)
		}
		if err := os.WriteFile(cache.pathFor(Hash(data)), []byte{0xc1, 0x00}, 0o600); err != nil {
			t.Fatalf("write entry: %v", err)
		}
		loaded, err := Open(path, cache)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if loaded.FromCache || loaded.CacheErr == nil {
			t.Fatalf("corrupt entry must be reported: fromCache=%v err=%v", loaded.FromCache, loaded.CacheErr)
		}
		// запись поверх битого файла восстанавливает кеш
		again, err := Open(path, cache)
		if err != nil || !again.FromCache || again.CacheErr != nil {
			t.Fatalf("second open: %+v, %v", again, err)
		}
	})

	t.Run("unwritable dir", func(t *testing.T) {
		cacheDir := filepath.Join(dir, "gone")
		cache, err := OpenCacheDir(cacheDir)
		if err != nil {
			t.Fatalf("OpenCacheDir: %v", err)
		}
		if err := os.RemoveAll(cacheDir); err != nil {
			t.Fatalf("remove: %v", err)
		}
		loaded, err := Open(path, cache)
		if err != nil {
			t.Fatalf("cache failure must not fail the load: %v", err)
		}
		if loaded.CacheErr == nil {
			t.Fatal("failed cache write was not recorded")
		}
		if got, _ := loaded.Table().Lookup("groot"); got != "graut" {
			t.Fatalf("lookup = %q", got)
		}
	})
}
