package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"haags/internal/diag"
	"haags/internal/source"
)

const tabWidth = 4

type palette struct {
	sev    map[diag.Severity]*color.Color
	code   *color.Color
	gutter *color.Color
	note   *color.Color
	path   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		note:   color.New(color.FgGreen),
		path:   color.New(color.Bold),
	}
	all := []*color.Color{p.code, p.gutter, p.note, p.path}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range all {
		// глобальный color.NoColor не должен перебивать явную опцию
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	sev := p.sev[d.Severity]
	if sev == nil {
		sev = p.code
	}

	var head strings.Builder
	if loc := location(d.Primary, fs, opts.PathMode, opts.BaseDir); loc != "" {
		head.WriteString(p.path.Sprint(loc))
		head.WriteString(": ")
	}
	head.WriteString(sev.Sprint(d.Severity.String()))
	head.WriteByte(' ')
	head.WriteString(p.code.Sprint(d.Code.ID()))
	head.WriteString(": ")
	head.WriteString(d.Message)
	if d.Key != "" {
		fmt.Fprintf(&head, " [key %q]", d.Key)
	}
	fmt.Fprintln(w, head.String())

	if d.Primary.Known() && fs.Has(d.Primary.File) {
		writeSnippet(w, fs, d.Primary, int(opts.Context), sev, p)
	}

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		loc := location(n.Span, fs, opts.PathMode, opts.BaseDir)
		if loc == "" {
			fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
			continue
		}
		fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), loc, n.Msg)
		if n.Span.Known() && fs.Has(n.Span.File) {
			writeSnippet(w, fs, n.Span, 0, p.note, p)
		}
	}
}

// location renders path:line:col, or "" for spans without a file.
func location(span source.Span, fs *source.FileSet, mode PathMode, baseDir string) string {
	if !span.Known() || !fs.Has(span.File) {
		return ""
	}
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(f.Path, mode, baseDir), start.Line, start.Col)
}

// writeSnippet prints the lines around span with a gutter and underlines the part of
// the first line covered by span.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, context int, mark *color.Color, p palette) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	first := max(int(start.Line)-context, 1)
	last := int(start.Line) + context
	lines := len(f.LineIdx) + 1
	if last > lines {
		last = lines
	}
	gutterWidth := len(fmt.Sprint(last))

	for line := first; line <= last; line++ {
		text := f.Slice(f.LineSpan(uint32(line))) // #nosec G115 -- line <= числа строк файла
		if line != int(start.Line) && strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, line), expandTabs(text))
		if line != int(start.Line) {
			continue
		}

		from := clamp(int(start.Col)-1, 0, len(text))
		to := len(text)
		if end.Line == start.Line {
			to = clamp(int(end.Col)-1, from, len(text))
		}
		pad := runewidth.StringWidth(expandTabs(text[:from]))
		width := max(runewidth.StringWidth(expandTabs(text[from:to])), 1)
		underline := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), mark.Sprint(underline))
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Summary returns a one-line count such as "2 errors, 1 warning"; "" for an
// empty bag.
func Summary(bag *diag.Bag) string {
	counts := make(map[diag.Severity]int, 3)
	for _, d := range bag.Items() {
		counts[d.Severity]++
	}
	var parts []string
	for _, sev := range []diag.Severity{diag.SevError, diag.SevWarning, diag.SevInfo} {
		n := counts[sev]
		if n == 0 {
			continue
		}
		label := sev.Label()
		if n != 1 && sev != diag.SevInfo {
			label += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, label))
	}
	return strings.Join(parts, ", ")
}
