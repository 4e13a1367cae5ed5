package board

import (
	"cmp"
	"slices"
)

// View computes the sorted, filtered projection of records for display.
//
// A record is kept when the filter set covers the full category universe
// (interpreted as "show everything") or contains the record's category.
// An empty filter therefore shows nothing; the full-universe case is
// special-cased only so the presentation layer can render an "all" state
// cheaply, not because it changes filtering semantics.
//
// The sort is stable and descending: ties keep their prior relative order,
// so equal-vote records stay newest-first within the tie. The input slice
// is never mutated; the result is a fresh copy.
func View(records []Record, mode SortMode, filter map[Category]bool) []Record {
	showAll := len(filter) == len(Categories())

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if showAll || filter[r.Category] {
			out = append(out, r)
		}
	}

	switch mode {
	case SortByVotes:
		slices.SortStableFunc(out, func(a, b Record) int {
			return cmp.Compare(b.Votes, a.Votes)
		})
	default: // SortByCreated
		slices.SortStableFunc(out, func(a, b Record) int {
			return cmp.Compare(b.CreatedAt, a.CreatedAt)
		})
	}

	return out
}
