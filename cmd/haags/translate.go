package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"haags/internal/diag"
	"haags/internal/diagfmt"
	"haags/internal/driver"
	"haags/internal/lexer"
	"haags/internal/source"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] [file...]",
	Short: "Translate Dutch text to Haags",
	Long: `Translate rewrites Dutch text in the Hague dialect.

With no files it reads stdin; -e translates the given text. A single input is
written to stdout. Several files (or --out) are written next to each input with
the output suffix (brief.txt -> brief.haags.txt), or into the --out directory.`,
	RunE: runTranslate,
}

func init() {
	addTableFlags(translateCmd)
	translateCmd.Flags().StringArrayP("expr", "e", nil, "translate TEXT instead of reading files (repeatable)")
	translateCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	translateCmd.Flags().String("ui", "auto", "progress UI for multi-file runs (auto|on|off)")
	translateCmd.Flags().Bool("stats", false, "print word and match counts to stderr")
	translateCmd.Flags().String("out", "", "directory for translated files")
	translateCmd.Flags().String("suffix", "", "output file suffix (default from haags.toml or .haags)")
	translateCmd.Flags().Bool("plain-words", false, "translate inside URLs and e-mail addresses too")
}

func runTranslate(cmd *cobra.Command, args []string) (err error) {
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

	exprs, err := cmd.Flags().GetStringArray("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	if len(exprs) > 0 && len(args) > 0 {
		return fmt.Errorf("-e cannot be combined with input files")
	}
	showStats, err := cmd.Flags().GetBool("stats")
	if err != nil {
		return fmt.Errorf("failed to get stats flag: %w", err)
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	plain, err := cmd.Flags().GetBool("plain-words")
	if err != nil {
		return fmt.Errorf("failed to get plain-words flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	rc, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	timer := newTimer(cmd)
	defer printTimings(cmd.ErrOrStderr(), timer)

	loaded, err := driver.LoadTable(ctx, driver.TableOptions{
		Path:    rc.tablePath,
		NoCache: rc.noCache,
		Timer:   timer,
	})
	if err != nil {
		return err
	}
	req := &driver.Request{
		Table:          loaded.Table,
		Lexer:          lexer.Options{PlainWords: plain},
		Jobs:           rc.jobs,
		MaxDiagnostics: maxDiagnostics,
		Timer:          timer,
	}

	out := cmd.OutOrStdout()
	switch {
	case len(exprs) > 0:
		for _, e := range exprs {
			fs, res := driver.TranslateText(ctx, "<expr>", []byte(e), req)
			if _, err := fmt.Fprintln(out, string(res.Output)); err != nil {
				return err
			}
			warnAlreadyHaags(cmd, fs, res)
			if showStats {
				printFileStats(cmd.ErrOrStderr(), res)
			}
		}
		return nil

	case len(args) == 0:
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		fs, res := driver.TranslateText(ctx, "<stdin>", text, req)
		if _, err := out.Write(res.Output); err != nil {
			return err
		}
		warnAlreadyHaags(cmd, fs, res)
		if showStats {
			printFileStats(cmd.ErrOrStderr(), res)
		}
		return nil

	case len(args) == 1 && outDir == "":
		batch, err := driver.TranslateFiles(ctx, args, req)
		if err != nil {
			return err
		}
		if batch.Failed() > 0 {
			printBag(cmd, batch.Bag, batch.FileSet)
			return silentFailure(cmd)
		}
		if _, err := out.Write(batch.Files[0].Output); err != nil {
			return err
		}
		if batch.Bag.Len() > 0 && !isQuiet(cmd) {
			printBag(cmd, batch.Bag, batch.FileSet)
		}
		if showStats {
			printFileStats(cmd.ErrOrStderr(), batch.Files[0])
		}
		return nil
	}

	return translateToFiles(ctx, cmd, args, req, driver.OutputOptions{Dir: outDir, Suffix: rc.suffix}, mode, showStats)
}

// translateToFiles handles multi-file runs: every input is translated in parallel
// and written to its output path.
func translateToFiles(ctx context.Context, cmd *cobra.Command, paths []string, req *driver.Request, opts driver.OutputOptions, mode uiMode, showStats bool) error {
	var (
		batch   *driver.Batch
		written []string
	)
	work := func(sink driver.ProgressSink) error {
		r := *req
		r.Progress = sink
		var err error
		batch, err = driver.TranslateFiles(ctx, paths, &r)
		if err != nil {
			return err
		}
		written, err = driver.WriteOutputs(ctx, batch, opts, &r)
		return err
	}

	var err error
	if shouldUseTUI(mode, len(paths), isQuiet(cmd)) {
		err = runWithUI("translating", paths, driver.StageWrite, work)
	} else {
		err = work(nil)
	}
	if batch != nil && batch.Bag.Len() > 0 {
		printBag(cmd, batch.Bag, batch.FileSet)
	}
	if err != nil {
		return err
	}

	if showStats {
		for _, f := range batch.Files {
			if f.Err == nil {
				printFileStats(cmd.ErrOrStderr(), f)
			}
		}
	}
	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d of %d files\n", len(written), len(paths))
	}
	if batch.Failed() > 0 {
		return silentFailure(cmd)
	}
	return nil
}

// warnAlreadyHaags prints a warning when the translated text was Haags already.
func warnAlreadyHaags(cmd *cobra.Command, fs *source.FileSet, res driver.FileResult) {
	if isQuiet(cmd) {
		return
	}
	d, ok := driver.AlreadyHaags(res)
	if !ok {
		return
	}
	bag := diag.NewBag(1)
	bag.Add(d)
	printBag(cmd, bag, fs)
}

func printFileStats(w io.Writer, res driver.FileResult) {
	fmt.Fprintf(w, "%s: %d words, %d translated, %d matches\n",
		res.Path, res.Stats.Words, res.Stats.Translated, len(res.Stats.Matches))
}

// printBag writes diagnostics to stderr in the pretty format.
func printBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	bag.Sort()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   1,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	})
}
