package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"haags/internal/dialect"
	"haags/internal/diag"
	"haags/internal/lexer"
	"haags/internal/observ"
	"haags/internal/source"
	"haags/internal/table"
	"haags/internal/trace"
	"haags/internal/translate"
)

// Request configures a translation run.
type Request struct {
	Table          *table.Table
	Lexer          lexer.Options
	Jobs           int // <= 0: GOMAXPROCS
	MaxDiagnostics int
	Progress       ProgressSink
	Timer          *observ.Timer
}

// FileResult is the outcome for one input.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Output  []byte // перевод; BOM восстановлен, если он был во входе
	Stats   translate.Result
	Dialect dialect.Classification
	Err     error
}

// Input that scores at least this much Haags evidence, with this share of all
// evidence, is reported as already translated.
const (
	alreadyHaagsScore      = 4
	alreadyHaagsConfidence = 0.6
)

// AlreadyHaags returns a CheckAlreadyHaags warning when the input of res reads as
// Haags rather than Dutch.
func AlreadyHaags(res FileResult) (diag.Diagnostic, bool) {
	c := res.Dialect
	if res.Err != nil || !c.Is(dialect.Haags, alreadyHaagsScore, alreadyHaagsConfidence) {
		return diag.Diagnostic{}, false
	}
	d := diag.New(diag.SevWarning, diag.CheckAlreadyHaags, c.First,
		fmt.Sprintf("%s already reads as Haags (%.0f%% of %d points); translating it again changes it further",
			res.Path, c.Confidence*100, c.TotalScore))
	return d, true
}

// Batch is the outcome of TranslateFiles.
type Batch struct {
	FileSet *source.FileSet
	Files   []FileResult // в порядке входных путей
	Bag     *diag.Bag    // IO problems and dialect warnings per file
}

// Failed reports how many inputs could not be translated.
func (b *Batch) Failed() int {
	n := 0
	for i := range b.Files {
		if b.Files[i].Err != nil {
			n++
		}
	}
	return n
}

// TranslateText translates in-memory input (stdin, -e) registered under name.
func TranslateText(ctx context.Context, name string, text []byte, req *Request) (*source.FileSet, FileResult) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, text)
	return fs, translateFile(ctx, name, fs.Get(id), dialect.NewVocabulary(req.Table), req)
}

// TranslateFiles loads every path, then translates the files in parallel with at
// most req.Jobs workers. Files that fail to load are reported in Batch.Bag and
// do not stop the others; the returned error is only set on cancellation.
func TranslateFiles(ctx context.Context, paths []string, req *Request) (*Batch, error) {
	span, ctx := trace.StartSpan(ctx, trace.ScopeStage, "translate")
	defer span.End("")

	fileSet := source.NewFileSet()
	batch := &Batch{
		FileSet: fileSet,
		Files:   make([]FileResult, len(paths)),
		Bag:     diag.NewBag(req.MaxDiagnostics),
	}
	if len(paths) == 0 {
		return batch, nil
	}

	// файлы грузим последовательно: FileSet не потокобезопасен
	loaded := make([]bool, len(paths))
	for i, path := range paths {
		report(req.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		start := time.Now()
		id, err := fileSet.Load(path)
		req.Timer.Add("load", time.Since(start))
		if err != nil {
			batch.Files[i] = FileResult{Path: path, FileID: source.NoFile, Err: err}
			batch.Bag.Add(diag.NewError(diag.IOLoadError, source.NoSpan,
				fmt.Sprintf("failed to load %s: %v", path, err)))
			report(req.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
			continue
		}
		batch.Files[i] = FileResult{Path: path, FileID: id}
		loaded[i] = true
	}

	vocab := dialect.NewVocabulary(req.Table)
	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i := range paths {
		if !loaded[i] {
			continue
		}
		file := fileSet.Get(batch.Files[i].FileID)
		g.Go(func() error {
			// индекс i уникален для горутины, мьютекс не нужен
			if err := gctx.Err(); err != nil {
				batch.Files[i].Err = err
				report(req.Progress, Event{File: paths[i], Stage: StageTranslate, Status: StatusError, Err: err})
				return err
			}
			batch.Files[i] = translateFile(gctx, paths[i], file, vocab, req)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return batch, err
	}
	for i := range batch.Files {
		if d, ok := AlreadyHaags(batch.Files[i]); ok {
			batch.Bag.Add(d)
		}
	}
	span.WithExtra("files", fmt.Sprint(len(paths)))
	return batch, nil
}

// translateFile runs one loaded input. path is the name the caller knows the input
// by; progress events and the result carry it unchanged.
func translateFile(ctx context.Context, path string, file *source.File, vocab *dialect.Vocabulary, req *Request) FileResult {
	span, _ := trace.StartSpan(ctx, trace.ScopeFile, "file:"+path)
	report(req.Progress, Event{File: path, Stage: StageTranslate, Status: StatusWorking})
	start := time.Now()

	tokens := lexer.TokenizeFile(file, req.Lexer)
	tokenized := time.Now()
	req.Timer.Add("tokenize", tokenized.Sub(start))

	res := translate.New(req.Table).Run(tokens)
	req.Timer.Add("translate", time.Since(tokenized))
	cls := dialect.Classifier{}.Classify(dialect.Observe(tokens, vocab))

	tracer := trace.FromContext(ctx)
	if tracer.Level().Records(trace.ScopeMatch) {
		for _, m := range res.Matches {
			trace.Point(tracer, trace.ScopeMatch, "match", fmt.Sprintf("%q -> %q", m.Source, m.Target), span.ID())
		}
	}

	elapsed := time.Since(start)
	span.WithExtra("words", fmt.Sprint(res.Words)).
		WithExtra("matches", fmt.Sprint(len(res.Matches))).
		End("")
	report(req.Progress, Event{File: path, Stage: StageTranslate, Status: StatusDone, Elapsed: elapsed})

	return FileResult{
		Path:    path,
		FileID:  file.ID,
		Output:  file.WithBOM([]byte(res.Output)),
		Stats:   res,
		Dialect: cls,
	}
}
