package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"haags/internal/diag"
	"haags/internal/diagfmt"
	"haags/internal/driver"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags]",
	Short: "Check a correspondence table for data problems",
	Long: `Lint reports duplicate keys, self-mappings, empty forms and keys the tokenizer
can never produce. It exits with status 1 when errors are found.`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().String("table", "", "correspondence table (TOML); default: haags.toml [table].path or the built-in table")
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	lintCmd.Flags().Bool("werror", false, "treat warnings as errors")
	lintCmd.Flags().String("min-severity", "info", "hide findings below this severity (info|warning|error)")
	lintCmd.Flags().Bool("phrases", false, "also report phrases that hide a shorter key")
	lintCmd.Flags().Bool("with-notes", true, "include diagnostic notes in output")
	lintCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runLint(cmd *cobra.Command, args []string) (err error) {
	session, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer func() { session.finish(err != nil) }()
	defer session.dumpTraceOnPanic()

	profiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling(cmd, profiling)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	werror, err := cmd.Flags().GetBool("werror")
	if err != nil {
		return fmt.Errorf("failed to get werror flag: %w", err)
	}
	minSeverityFlag, err := cmd.Flags().GetString("min-severity")
	if err != nil {
		return fmt.Errorf("failed to get min-severity flag: %w", err)
	}
	minSeverity, err := diag.ParseSeverity(minSeverityFlag)
	if err != nil {
		return err
	}
	phrases, err := cmd.Flags().GetBool("phrases")
	if err != nil {
		return fmt.Errorf("failed to get phrases flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	rc, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	timer := newTimer(cmd)
	defer printTimings(cmd.ErrOrStderr(), timer)
	idx := timer.Begin("lint")
	result, err := driver.Lint(cmd.Context(), driver.LintOptions{
		Path:           rc.tablePath,
		Phrases:        phrases,
		MaxDiagnostics: maxDiagnostics,
	})
	timer.End(idx, "")
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}
	if werror {
		result.Bag.Promote(diag.SevWarning, diag.SevError)
	}
	result.Bag.Filter(minSeverity)

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		diagfmt.Pretty(out, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			Context:   1,
			PathMode:  pathMode,
			ShowNotes: withNotes,
		})
		if !isQuiet(cmd) {
			summary := diagfmt.Summary(result.Bag)
			if summary == "" {
				summary = "no findings"
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d entries, %d keys: %s\n",
				result.Name, result.Stats.Entries, result.Stats.Keys, summary)
		}
	case "short":
		if output := diag.FormatShort(result.Bag.Items(), result.FileSet, withNotes); output != "" {
			fmt.Fprintln(out, output)
		}
	case "json":
		if err := diagfmt.JSON(out, result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		return silentFailure(cmd)
	}
	return nil
}
