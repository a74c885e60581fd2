package driver

import (
	"context"
	"fmt"

	"haags/internal/dataset"
	"haags/internal/diag"
	"haags/internal/lint"
	"haags/internal/source"
	"haags/internal/trace"
)

// LintOptions configures a dataset lint run.
type LintOptions struct {
	Path           string // dataset file; "": встроенный
	Phrases        bool
	MaxDiagnostics int
}

// LintResult holds the findings of a lint run.
type LintResult struct {
	FileSet *source.FileSet
	Name    string
	Bag     *diag.Bag
	Stats   lint.Stats
}

// Lint loads a dataset and checks it. A dataset that cannot be read is reported as
// an IOLoadError diagnostic; a dataset that is not valid TOML is an error.
func Lint(ctx context.Context, opts LintOptions) (*LintResult, error) {
	span, _ := trace.StartSpan(ctx, trace.ScopeStage, "lint")
	defer span.End("")

	fs := source.NewFileSet()
	res := &LintResult{
		FileSet: fs,
		Name:    opts.Path,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}

	var id source.FileID
	if opts.Path == "" {
		res.Name = dataset.DefaultName
		id = fs.AddVirtual(dataset.DefaultName, dataset.DefaultData())
	} else {
		var err error
		id, err = fs.Load(opts.Path)
		if err != nil {
			res.Bag.Add(diag.NewError(diag.IOLoadError, source.NoSpan,
				fmt.Sprintf("failed to load %s: %v", opts.Path, err)))
			return res, nil
		}
	}

	file := fs.Get(id)
	entries, err := dataset.Parse(file.Content, res.Name)
	if err != nil {
		return nil, err
	}

	// одна и та же находка может прийти от нескольких проверок
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})
	res.Stats = lint.Run(entries, reporter, lint.Options{
		File:    file,
		Phrases: opts.Phrases,
	})
	res.Bag.Sort()
	span.WithExtra("findings", fmt.Sprint(res.Bag.Len()))
	return res, nil
}
