package glossary

import (
	"slices"
	"strings"
)

// SortBySource returns a copy of records ordered by source text using plain
// byte-wise comparison. The sort is stable: records with the same source keep
// their input order. The input slice is left untouched.
func SortBySource(records []Record) []Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return strings.Compare(a.Source, b.Source)
	})
	return sorted
}
