package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"haags/internal/diagfmt"
	"haags/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [SAMPLES]",
	Short: "Translate sample sentences and compare with the expected output",
	Long: `Check reads a fixture file of alternating source and expected lines, translates
every source line and reports the ones that differ. Without SAMPLES it runs the
built-in fixtures against the table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	addTableFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
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

	loaded, err := driver.LoadTable(cmd.Context(), driver.TableOptions{
		Path:    rc.tablePath,
		NoCache: rc.noCache,
		Timer:   timer,
	})
	if err != nil {
		return err
	}

	opts := driver.CheckOptions{MaxDiagnostics: maxDiagnostics}
	if len(args) == 1 {
		opts.Path = args[0]
	}
	idx := timer.Begin("check")
	result, err := driver.Check(cmd.Context(), loaded.Table, opts)
	timer.End(idx, "")
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	diagfmt.Pretty(cmd.OutOrStdout(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stdout),
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	})
	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d/%d samples passed\n", result.Passed, result.Samples)
	}
	if result.Passed != result.Samples {
		return silentFailure(cmd)
	}
	return nil
}
