package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"haags/internal/diag"
	"haags/internal/source"
	"haags/internal/trace"
)

// OutputOptions decides where translated files are written.
type OutputOptions struct {
	Dir    string // "": рядом со входным файлом
	Suffix string // inserted before the extension: brief.txt -> brief.haags.txt
}

// OutputPath returns the destination of input under opts.
func OutputPath(input string, opts OutputOptions) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + opts.Suffix + ext
	if opts.Dir != "" {
		return filepath.Join(opts.Dir, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}

// PlanOutputs maps every successfully translated input to its destination. It
// fails when two inputs would land on the same file or an output would
// overwrite an input.
func PlanOutputs(files []FileResult, opts OutputOptions) ([]string, error) {
	inputs := make(map[string]bool, len(files))
	for i := range files {
		inputs[filepath.Clean(files[i].Path)] = true
	}
	seen := make(map[string]string, len(files))
	out := make([]string, len(files))
	for i := range files {
		if files[i].Err != nil {
			continue
		}
		dst := OutputPath(files[i].Path, opts)
		if inputs[filepath.Clean(dst)] {
			return nil, fmt.Errorf("output %s would overwrite an input; set a suffix or --out", dst)
		}
		if prev, ok := seen[dst]; ok {
			return nil, fmt.Errorf("%s and %s both translate to %s", prev, files[i].Path, dst)
		}
		seen[dst] = files[i].Path
		out[i] = dst
	}
	return out, nil
}

// WriteOutputs writes every successful result of batch. Write failures are
// recorded in batch.Bag and on the FileResult; the returned error covers only
// planning problems and cancellation.
func WriteOutputs(ctx context.Context, batch *Batch, opts OutputOptions, req *Request) ([]string, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeStage, "write")
	defer span.End("")

	dests, err := PlanOutputs(batch.Files, opts)
	if err != nil {
		return nil, err
	}
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	written := make([]string, 0, len(dests))
	for i := range batch.Files {
		f := &batch.Files[i]
		if f.Err != nil || dests[i] == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return written, err
		}
		report(req.Progress, Event{File: f.Path, Stage: StageWrite, Status: StatusWorking})
		start := time.Now()
		// #nosec G306 -- translated text is as public as its input
		err := os.WriteFile(dests[i], f.Output, 0o644)
		req.Timer.Add("write", time.Since(start))
		if err != nil {
			f.Err = err
			batch.Bag.Add(diag.NewError(diag.IOWriteError, source.NoSpan,
				fmt.Sprintf("failed to write %s: %v", dests[i], err)))
			report(req.Progress, Event{File: f.Path, Stage: StageWrite, Status: StatusError, Err: err})
			continue
		}
		written = append(written, dests[i])
		report(req.Progress, Event{File: f.Path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(start)})
	}
	return written, nil
}
