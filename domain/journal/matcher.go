package journal

import (
	"regexp"
	"strings"
)

var (
	stopWordPattern = regexp.MustCompile(`\bTHE\b|\bOF\b|\bAND\b|\bFOR\b`)
	ellipsisPattern = regexp.MustCompile(`\x{2026}|\.{3}`)
	nonAlnumPattern = regexp.MustCompile(`[^A-Z0-9]`)
)

// NormalizeName reduces a journal name to the form used for fuzzy matching:
// uppercase, & spelled AND, stop words and ellipses removed, and anything
// outside A-Z0-9 dropped.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	s := upper(name)
	s = strings.ReplaceAll(s, "&", "AND")
	s = stopWordPattern.ReplaceAllString(s, "")
	s = ellipsisPattern.ReplaceAllString(s, "")
	s = nonAlnumPattern.ReplaceAllString(s, "")
	return s
}

// Match is a successful query against the lookup
type Match struct {
	Query string `json:"query"`
	Key   string `json:"key"`
	Record
}

// Matcher answers journal queries against a Lookup by normalized name.
// It is read-only after construction and safe for concurrent use.
type Matcher struct {
	lookup *Lookup
	index  map[string]string
}

// NewMatcher indexes every lookup key by its normalized name. When two keys
// normalize the same, the earlier one wins.
func NewMatcher(lookup *Lookup) *Matcher {
	m := &Matcher{lookup: lookup, index: make(map[string]string, lookup.Len())}
	lookup.Each(func(key string, _ Record) {
		norm := NormalizeName(key)
		if norm == "" {
			return
		}
		if _, taken := m.index[norm]; !taken {
			m.index[norm] = key
		}
	})
	return m
}

// Match looks up query by normalized name
func (m *Matcher) Match(query string) (Match, bool) {
	norm := NormalizeName(query)
	if norm == "" {
		return Match{}, false
	}
	key, ok := m.index[norm]
	if !ok {
		return Match{}, false
	}
	rec, _ := m.lookup.Get(key)
	return Match{Query: query, Key: key, Record: rec}, true
}

// Len returns the number of keys in the underlying lookup
func (m *Matcher) Len() int {
	return m.lookup.Len()
}
