package journal

// BuildStats summarizes a build
type BuildStats struct {
	RowsRead    int
	RowsSkipped int
	Keys        int
	Overwrites  int
}

// Builder accumulates source rows into a Lookup. It is owned by a single
// conversion and is not safe for concurrent use.
type Builder struct {
	lookup *Lookup
	stats  BuildStats
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{lookup: NewLookup()}
}

// Add folds one source row into the lookup. Rows without an impact factor
// are skipped. Later rows overwrite earlier entries for the same key.
func (b *Builder) Add(cells SourceRow) bool {
	b.stats.RowsRead++

	row := ParseRow(cells)
	if row.Skip() {
		b.stats.RowsSkipped++
		return false
	}

	rec := row.Record()
	for _, key := range row.Keys() {
		if b.lookup.Put(key, rec) {
			b.stats.Overwrites++
		}
	}
	return true
}

// AddTable folds every row of t into the lookup
func (b *Builder) AddTable(t *SourceTable) {
	for _, row := range t.Rows {
		b.Add(row)
	}
}

// Lookup returns the accumulated lookup
func (b *Builder) Lookup() *Lookup {
	return b.lookup
}

// Stats returns the counters of the build so far
func (b *Builder) Stats() BuildStats {
	s := b.stats
	s.Keys = b.lookup.Len()
	return s
}
