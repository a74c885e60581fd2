package dataset

import (
	"bytes"

	"fortio.org/safecast"

	"haags/internal/source"
)

// KeySpan is the location of one entry key inside a dataset file.
type KeySpan struct {
	Key  string // key text without quotes
	Span source.Span
}

// KeySpans scans dataset text and returns the key of every assignment in document
// order, so that KeySpans(f)[e.Origin.Index] locates entry e. The scan is
// line-based: one assignment per line, multi-line string values are skipped.
// Callers must compare Key with the entry source before trusting the span.
func KeySpans(file *source.File) []KeySpan {
	if file == nil {
		return nil
	}
	var (
		out       []KeySpan
		content   = file.Content
		off       int
		multiline []byte // закрывающий разделитель многострочного значения
	)
	for off < len(content) {
		end := bytes.IndexByte(content[off:], '\n')
		if end < 0 {
			end = len(content)
		} else {
			end += off
		}
		line := content[off:end]
		lineStart := off
		off = end + 1

		if multiline != nil {
			if bytes.Contains(line, multiline) {
				multiline = nil
			}
			continue
		}

		indent := len(line) - len(bytes.TrimLeft(line, " \t"))
		rest := line[indent:]
		if len(rest) == 0 || rest[0] == '#' || rest[0] == '[' {
			continue
		}

		key, keyLen := scanKey(rest)
		if keyLen == 0 {
			continue
		}
		value := bytes.TrimLeft(rest[keyLen:], " \t")
		if len(value) == 0 || value[0] != '=' {
			continue
		}
		value = bytes.TrimLeft(value[1:], " \t")
		for _, delim := range [][]byte{[]byte(`"""`), []byte(`'''`)} {
			if bytes.HasPrefix(value, delim) && !bytes.Contains(value[len(delim):], delim) {
				multiline = delim
			}
		}

		start, errStart := safecast.Conv[uint32](lineStart + indent)
		stop, errStop := safecast.Conv[uint32](lineStart + indent + keyLen)
		span := source.NoSpan
		if errStart == nil && errStop == nil {
			span = source.Span{File: file.ID, Start: start, End: stop}
		}
		out = append(out, KeySpan{Key: key, Span: span})
	}
	return out
}

// scanKey reads a bare or quoted key at the start of s and returns its text and
// byte length in s, quotes included.
func scanKey(s []byte) (string, int) {
	switch s[0] {
	case '"', '\'':
		quote := s[0]
		for i := 1; i < len(s); i++ {
			if quote == '"' && s[i] == '\\' {
				i++
				continue
			}
			if s[i] == quote {
				return string(s[1:i]), i + 1
			}
		}
		return "", 0
	default:
		i := 0
		for i < len(s) && s[i] != '=' && s[i] != ' ' && s[i] != '\t' {
			i++
		}
		return string(s[:i]), i
	}
}
