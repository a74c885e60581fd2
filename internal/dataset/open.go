package dataset

import (
	"errors"
	"os"

	"haags/internal/table"
)

// Loaded is a parsed dataset ready to build a table from.
type Loaded struct {
	Name      string
	Digest    Digest
	Entries   []table.Entry
	FromCache bool
	CacheErr  error // чтение или запись кеша не удались; загрузка при этом прошла
}

// Table builds the correspondence table from the loaded entries.
func (l *Loaded) Table() *table.Table {
	return table.NewBuilder().AddEntries(l.Entries...).Build()
}

// Open loads the dataset at path, or the embedded one when path is empty.
// With a non-nil cache the parsed entries are looked up by content hash first and
// stored after a successful parse. Cache failures never fail the load; they are
// kept in Loaded.CacheErr.
func Open(path string, cache *Cache) (*Loaded, error) {
	name := path
	data := defaultData
	if path == "" {
		name = DefaultName
	} else {
		// #nosec G304 -- path is provided by the caller
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = raw
	}

	digest := Hash(data)
	cached, ok, cacheErr := cache.Get(digest)
	if cacheErr == nil && ok {
		return &Loaded{Name: name, Digest: digest, Entries: cached, FromCache: true}, nil
	}

	entries, err := Parse(data, name)
	if err != nil {
		return nil, err
	}
	if err := cache.Put(digest, name, entries); err != nil {
		cacheErr = errors.Join(cacheErr, err)
	}
	return &Loaded{Name: name, Digest: digest, Entries: entries, CacheErr: cacheErr}, nil
}
