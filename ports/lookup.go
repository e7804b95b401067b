package ports

import (
	"context"

	"jifdict/domain/journal"
)

// TableReader loads an input table from a path
type TableReader interface {
	ReadTable(ctx context.Context, path string) (*journal.SourceTable, error)
}

// LookupWriter persists a finished lookup
type LookupWriter interface {
	WriteLookup(ctx context.Context, path string, lookup *journal.Lookup) error
}

// LookupSource loads a persisted lookup for querying
type LookupSource interface {
	LoadLookup(ctx context.Context, path string) (*journal.Lookup, error)
}
