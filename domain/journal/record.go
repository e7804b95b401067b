// Package journal holds the impact-factor lookup model: the per-journal
// metric record, the ordered lookup table, and the key normalization rules
// used both when building the table and when querying it.
package journal

// Record is the metric triple stored for each journal key
type Record struct {
	ImpactFactor string `json:"if"`
	Quartile     string `json:"q"`
	Rank         string `json:"rank"`
}

// SourceRow maps a trimmed column header to the raw cell text
type SourceRow map[string]string

// SourceTable is a loaded input table. Rows keep file order.
type SourceTable struct {
	Headers  []string
	Rows     []SourceRow
	Format   string // "xlsx" or "csv"
	Encoding string // text encoding that decoded a csv; empty for xlsx
}
