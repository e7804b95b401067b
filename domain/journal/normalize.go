package journal

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column names read from the source table
const (
	ColumnImpactFactor = "JIF 2024"
	ColumnQuartile     = "JIF Quartile"
	ColumnRank         = "JIF Rank"
	ColumnJournalName  = "Journal Name"
	ColumnAbbreviation = "Abbreviated Journal"
)

// Lowercased impact-factor values that mean "no data"
var blankImpactFactors = map[string]struct{}{
	"nan":  {},
	"n/a":  {},
	"":     {},
	"none": {},
}

// IsBlankImpactFactor reports whether v is a missing-value sentinel
func IsBlankImpactFactor(v string) bool {
	_, ok := blankImpactFactors[strings.ToLower(v)]
	return ok
}

// upper applies full Unicode case mapping: ß becomes SS and ligatures
// such as ﬁ expand to FI. strings.ToUpper only maps rune to rune.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// FullNameKey derives the lookup key for a full journal name
func FullNameKey(name string) string {
	return strings.TrimSpace(upper(name))
}

// AbbreviationKey derives the lookup key for an abbreviated journal name.
// Dots are dropped; the literal NAN (a stringified missing value) yields "".
func AbbreviationKey(abbr string) string {
	key := strings.TrimSpace(strings.ReplaceAll(upper(abbr), ".", ""))
	if key == "NAN" {
		return ""
	}
	return key
}

// Row is a source row projected onto the columns the lookup uses.
// Columns missing from the source are empty strings.
type Row struct {
	JournalName  string
	Abbreviation string
	ImpactFactor string
	Quartile     string
	Rank         string
}

// ParseRow projects a raw source row onto the lookup columns
func ParseRow(cells SourceRow) Row {
	return Row{
		JournalName:  cells[ColumnJournalName],
		Abbreviation: cells[ColumnAbbreviation],
		ImpactFactor: cells[ColumnImpactFactor],
		Quartile:     cells[ColumnQuartile],
		Rank:         cells[ColumnRank],
	}
}

// Skip reports whether the row carries no impact factor
func (r Row) Skip() bool {
	return IsBlankImpactFactor(r.ImpactFactor)
}

// Record builds the metric record for the row
func (r Row) Record() Record {
	return Record{
		ImpactFactor: r.ImpactFactor,
		Quartile:     strings.TrimSpace(r.Quartile),
		Rank:         strings.TrimSpace(r.Rank),
	}
}

// Keys returns the non-empty lookup keys of the row, full name first
func (r Row) Keys() []string {
	keys := make([]string, 0, 2)
	if k := FullNameKey(r.JournalName); k != "" {
		keys = append(keys, k)
	}
	if k := AbbreviationKey(r.Abbreviation); k != "" {
		keys = append(keys, k)
	}
	return keys
}
