// Package town describes towns as the external town table sees them, and the
// manual override set that forces named towns onto regional pricing.
package town

import (
	"slices"
	"strings"
)

// Category is the proximity class a town table assigns to a town.
// Anything other than CategoryMajor prices as regional.
type Category string

const (
	CategoryMajor    Category = "major"
	CategoryRegional Category = "regional"
)

// Record is one row of the town table.
type Record struct {
	Name     string
	Category Category
}

// IsMajor reports whether the record is classified as major.
func (r Record) IsMajor() bool {
	return r.Category == CategoryMajor
}

// NormalizeName produces the lookup key for a town name: surrounding
// whitespace removed, lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// OverrideSet holds normalized town names that always price as regional,
// whatever the town table says. The zero value is an empty set.
type OverrideSet struct {
	names map[string]struct{}
}

// NewOverrideSet normalizes names and drops blanks.
func NewOverrideSet(names ...string) OverrideSet {
	set := OverrideSet{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if key := NormalizeName(name); key != "" {
			set.names[key] = struct{}{}
		}
	}
	return set
}

// DefaultOverrides returns the towns currently forced to regional.
func DefaultOverrides() OverrideSet {
	return NewOverrideSet("somerset west", "somerset-wes")
}

// Contains normalizes name and reports membership.
func (s OverrideSet) Contains(name string) bool {
	_, ok := s.names[NormalizeName(name)]
	return ok
}

// Names returns the members in sorted order.
func (s OverrideSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
