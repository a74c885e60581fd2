package dataset

import (
	"bytes"
	_ "embed" // Required for go:embed
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"haags/internal/table"
)

//go:embed data/haags.toml
var defaultData []byte

// DefaultName is the display name of the embedded dataset.
const DefaultName = "<builtin>"

// DefaultData returns a copy of the embedded dataset bytes.
func DefaultData() []byte {
	return bytes.Clone(defaultData)
}

// Default parses the embedded dataset.
func Default() ([]table.Entry, error) {
	return Parse(defaultData, DefaultName)
}

// DefaultTable builds a table from the embedded dataset.
func DefaultTable() (*table.Table, error) {
	entries, err := Default()
	if err != nil {
		return nil, err
	}
	return table.NewBuilder().AddEntries(entries...).Build(), nil
}

// ReadFile parses the dataset at path.
func ReadFile(path string) ([]table.Entry, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse decodes a TOML dataset. name is used in error messages only.
func Parse(data []byte, name string) ([]table.Entry, error) {
	var doc map[string]any
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}

	entries := make([]table.Entry, 0, len(meta.Keys()))
	for _, key := range meta.Keys() {
		var (
			category, src string
			raw           any
		)
		switch len(key) {
		case 1:
			raw = doc[key[0]]
			if _, isTable := raw.(map[string]any); isTable {
				// заголовок категории, записи придут следующими ключами
				continue
			}
			src = key[0]
		case 2:
			category, src = key[0], key[1]
			group, ok := doc[category].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: [%s] must be a table of entries", name, category)
			}
			raw = group[src]
			if _, isTable := raw.(map[string]any); isTable {
				return nil, fmt.Errorf("%s: nested table [%s] is not allowed", name, key.String())
			}
		default:
			return nil, fmt.Errorf("%s: nested key %q is not allowed", name, key.String())
		}

		target, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s: %q: target must be a string, got %s", name, key.String(), meta.Type(key...))
		}
		entries = append(entries, table.Entry{
			Source: strings.TrimSpace(src),
			Target: target,
			Origin: table.Origin{Category: category, Index: len(entries)},
		})
	}
	return entries, nil
}
