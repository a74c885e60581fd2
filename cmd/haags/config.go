package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"haags/internal/project"
)

// runConfig is haags.toml merged with command-line flags; flags win.
type runConfig struct {
	manifest  *project.Manifest
	tablePath string
	noCache   bool
	jobs      int
	suffix    string
}

// addTableFlags registers the flags shared by commands that need a table.
func addTableFlags(cmd *cobra.Command) {
	cmd.Flags().String("table", "", "correspondence table (TOML); default: haags.toml [table].path or the built-in table")
	cmd.Flags().Bool("no-cache", false, "do not read or write the compiled-table cache")
}

func loadRunConfig(cmd *cobra.Command) (runConfig, error) {
	manifest, _, err := project.LoadManifest(".")
	if err != nil {
		return runConfig{}, fmt.Errorf("failed to load %s: %w", project.ManifestName, err)
	}

	cfg := project.Defaults()
	if manifest != nil {
		cfg = manifest.Config
	}
	rc := runConfig{
		manifest:  manifest,
		tablePath: manifest.TablePath(),
		noCache:   !cfg.CacheEnabled(),
		jobs:      cfg.Translate.Jobs,
		suffix:    cfg.Translate.Suffix,
	}

	flags := cmd.Flags()
	if flags.Lookup("table") != nil && flags.Changed("table") {
		if rc.tablePath, err = flags.GetString("table"); err != nil {
			return runConfig{}, fmt.Errorf("failed to get table flag: %w", err)
		}
	}
	if flags.Lookup("no-cache") != nil && flags.Changed("no-cache") {
		if rc.noCache, err = flags.GetBool("no-cache"); err != nil {
			return runConfig{}, fmt.Errorf("failed to get no-cache flag: %w", err)
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if rc.jobs, err = flags.GetInt("jobs"); err != nil {
			return runConfig{}, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		if rc.jobs < 0 {
			return runConfig{}, fmt.Errorf("--jobs must not be negative")
		}
	}
	if flags.Lookup("suffix") != nil && flags.Changed("suffix") {
		if rc.suffix, err = flags.GetString("suffix"); err != nil {
			return runConfig{}, fmt.Errorf("failed to get suffix flag: %w", err)
		}
		if strings.ContainsAny(rc.suffix, `/\`) {
			return runConfig{}, fmt.Errorf("--suffix must not contain a path separator")
		}
	}
	return rc, nil
}
