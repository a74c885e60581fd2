package dataset

import (
	"bufio"
	_ "embed" // Required for go:embed
	"fmt"
	"io"
	"strings"
)

//go:embed data/samples.txt
var defaultSamples string

// Sample is a source sentence and the translation it must produce.
type Sample struct {
	Source   string
	Expected string
	Line     int // 1-based line of Source
}

// DefaultSamplesName is the display name of the embedded sample fixtures.
const DefaultSamplesName = "<builtin-samples>"

// DefaultSamplesData returns the embedded sample fixture text.
func DefaultSamplesData() []byte {
	return []byte(defaultSamples)
}

// DefaultSamples parses the fixtures shipped with the embedded dataset.
func DefaultSamples() ([]Sample, error) {
	return ReadSamples(strings.NewReader(defaultSamples))
}

// ReadSamples reads alternating source/expected lines. Blank lines and lines
// starting with '#' are skipped; leading and trailing blanks of a line are not
// significant, inner whitespace is.
func ReadSamples(r io.Reader) ([]Sample, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		samples []Sample
		pending *Sample
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if pending == nil {
			pending = &Sample{Source: line, Line: lineNo}
			continue
		}
		pending.Expected = line
		samples = append(samples, *pending)
		pending = nil
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, fmt.Errorf("line %d: sample %q has no expected translation", pending.Line, pending.Source)
	}
	return samples, nil
}
