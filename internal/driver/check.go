package driver

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"fortio.org/safecast"

	"haags/internal/dataset"
	"haags/internal/diag"
	"haags/internal/source"
	"haags/internal/table"
	"haags/internal/trace"
	"haags/internal/translate"
)

// CheckOptions configures a sample fixture run.
type CheckOptions struct {
	Path           string // samples file; "": встроенные образцы
	MaxDiagnostics int
}

// CheckResult summarizes a sample fixture run.
type CheckResult struct {
	FileSet *source.FileSet
	Samples int
	Passed  int
	Bag     *diag.Bag // one CheckSampleMismatch per failing sample
}

// Check translates every sample source with tbl and compares the output with the
// expected line.
func Check(ctx context.Context, tbl *table.Table, opts CheckOptions) (*CheckResult, error) {
	span, _ := trace.StartSpan(ctx, trace.ScopeStage, "check")
	defer span.End("")

	fs := source.NewFileSet()
	var id source.FileID
	if opts.Path == "" {
		id = fs.AddVirtual(dataset.DefaultSamplesName, dataset.DefaultSamplesData())
	} else {
		var err error
		if id, err = fs.Load(opts.Path); err != nil {
			return nil, fmt.Errorf("load samples: %w", err)
		}
	}
	file := fs.Get(id)

	samples, err := dataset.ReadSamples(bytes.NewReader(file.Content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}

	res := &CheckResult{
		FileSet: fs,
		Samples: len(samples),
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	tr := translate.New(tbl)
	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		got := tr.TranslateString(s.Source)
		if got == s.Expected {
			res.Passed++
			continue
		}
		diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.CheckSampleMismatch, lineSpan(file, s.Line),
			fmt.Sprintf("translation differs:\n  got:  %s\n  want: %s", got, s.Expected)).
			WithNote(lineOf(file, s.Line+1, s.Expected), "expected translation").
			Emit()
	}
	span.WithExtra("passed", fmt.Sprintf("%d/%d", res.Passed, res.Samples))
	return res, nil
}

func lineSpan(file *source.File, line int) source.Span {
	n, err := safecast.Conv[uint32](line)
	if err != nil {
		return source.NoSpan
	}
	return file.LineSpan(n)
}

// lineOf finds the first line at or after from whose trimmed text is want.
func lineOf(file *source.File, from int, want string) source.Span {
	for line := from; line <= len(file.LineIdx)+1; line++ {
		span := lineSpan(file, line)
		if strings.TrimSpace(file.Slice(span)) == want {
			return span
		}
	}
	return source.NoSpan
}
