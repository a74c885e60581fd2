package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[table]
path = "data/haags.toml"
cache = false

[translate]
jobs = 3
suffix = ".hg.txt"
`)
	nested := filepath.Join(root, "docs", "brieven")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest = %v, %v", ok, err)
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}
	if got, want := m.TablePath(), filepath.Join(root, "data", "haags.toml"); got != want {
		t.Errorf("TablePath = %q, want %q", got, want)
	}
	if m.Config.CacheEnabled() {
		t.Error("cache = false must disable the cache")
	}
	if m.Config.Translate.Jobs != 3 || m.Config.Translate.Suffix != ".hg.txt" {
		t.Errorf("unexpected translate config %+v", m.Config.Translate)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	m, ok, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || m != nil {
		t.Fatal("no manifest expected")
	}
	// без манифеста: встроенная таблица
	if m.TablePath() != "" {
		t.Fatal("nil manifest must use the embedded table")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.CacheEnabled() || cfg.Translate.Suffix != DefaultSuffix || cfg.Translate.Jobs != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[table\n", "failed to parse TOML"},
		{"unknown key", "[table]\nfile = \"x\"\n", "unknown key"},
		{"empty path", "[table]\npath = \" \"\n", "[table].path"},
		{"negative jobs", "[translate]\njobs = -1\n", "[translate].jobs"},
		{"bad suffix", "[translate]\nsuffix = \"out/x\"\n", "[translate].suffix"},
		{"wrong type", "[translate]\njobs = \"four\"\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
