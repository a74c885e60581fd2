package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultSuffix is appended to output files of multi-file runs.
const DefaultSuffix = ".haags"

// Manifest is a loaded haags.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors haags.toml. Zero values mean "not set".
type Config struct {
	Table     TableConfig     `toml:"table"`
	Translate TranslateConfig `toml:"translate"`
}

type TableConfig struct {
	Path  string `toml:"path"`  // относительно корня проекта
	Cache *bool  `toml:"cache"` // nil: по умолчанию включён
}

type TranslateConfig struct {
	Jobs   int    `toml:"jobs"`
	Suffix string `toml:"suffix"`
}

// Defaults returns the configuration used when no haags.toml exists.
func Defaults() Config {
	return Config{Translate: TranslateConfig{Suffix: DefaultSuffix}}
}

// CacheEnabled reports whether the compiled-table cache should be used.
func (c Config) CacheEnabled() bool {
	return c.Table.Cache == nil || *c.Table.Cache
}

// TablePath returns the dataset path resolved against the project root, or ""
// for the embedded dataset.
func (m *Manifest) TablePath() string {
	if m == nil || m.Config.Table.Path == "" {
		return ""
	}
	p := filepath.FromSlash(m.Config.Table.Path)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}

// LoadManifest finds and loads haags.toml starting at startDir.
// ok is false when there is no manifest; that is not an error.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig parses and validates a haags.toml file.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("table", "path") && strings.TrimSpace(cfg.Table.Path) == "" {
		return Config{}, fmt.Errorf("%s: [table].path must not be empty", path)
	}
	if meta.IsDefined("translate", "jobs") && cfg.Translate.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [translate].jobs must be >= 0, got %d", path, cfg.Translate.Jobs)
	}
	if meta.IsDefined("translate", "suffix") {
		s := cfg.Translate.Suffix
		if s == "" || strings.ContainsAny(s, `/\`) {
			return Config{}, fmt.Errorf("%s: [translate].suffix %q is not a valid file suffix", path, s)
		}
	}
	return cfg, nil
}
