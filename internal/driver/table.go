package driver

import (
	"context"
	"fmt"

	"haags/internal/dataset"
	"haags/internal/observ"
	"haags/internal/table"
	"haags/internal/trace"
)

// CacheApp names the cache directory under $XDG_CACHE_HOME.
const CacheApp = "haags"

// TableOptions selects the dataset and cache behaviour.
type TableOptions struct {
	Path     string // dataset file; "": встроенный
	NoCache  bool
	CacheDir string // overrides $XDG_CACHE_HOME/haags/tables
	Timer    *observ.Timer
}

// LoadedTable is a built table with where it came from.
type LoadedTable struct {
	Name      string
	Digest    dataset.Digest
	FromCache bool
	Entries   int
	Table     *table.Table
	CacheErr  error
}

// LoadTable reads the dataset, going through the compiled-table cache unless
// disabled. A cache that cannot be opened, read or written is skipped; the
// problem is traced at debug level and kept in LoadedTable.CacheErr.
func LoadTable(ctx context.Context, opts TableOptions) (*LoadedTable, error) {
	span, _ := trace.StartSpan(ctx, trace.ScopeStage, "load-table")
	tracer := trace.FromContext(ctx)
	idx := opts.Timer.Begin("load-table")

	var (
		cache    *dataset.Cache
		cacheErr error
	)
	if !opts.NoCache {
		if opts.CacheDir != "" {
			cache, cacheErr = dataset.OpenCacheDir(opts.CacheDir)
		} else {
			cache, cacheErr = dataset.OpenCache(CacheApp)
		}
		if cacheErr != nil {
			trace.Point(tracer, trace.ScopeCache, "cache-open", cacheErr.Error(), span.ID())
			cache = nil
		}
	}

	loaded, err := dataset.Open(opts.Path, cache)
	if err != nil {
		opts.Timer.End(idx, "failed")
		span.End("error")
		return nil, fmt.Errorf("load table: %w", err)
	}

	if loaded.CacheErr != nil {
		trace.Point(tracer, trace.ScopeCache, "cache-io", loaded.CacheErr.Error(), span.ID())
		cacheErr = loaded.CacheErr
	}

	tbl := loaded.Table()
	note := loaded.Name
	if loaded.FromCache {
		note += " (cached)"
	}
	opts.Timer.End(idx, note)
	span.WithExtra("keys", fmt.Sprint(tbl.Len())).
		WithExtra("cached", fmt.Sprint(loaded.FromCache)).
		End(loaded.Name)

	return &LoadedTable{
		Name:      loaded.Name,
		Digest:    loaded.Digest,
		FromCache: loaded.FromCache,
		Entries:   len(loaded.Entries),
		Table:     tbl,
		CacheErr:  cacheErr,
	}, nil
}
