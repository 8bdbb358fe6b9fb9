package notes

import "sort"

// OrderForDisplay sorts notes most-recently-touched first: updated_at
// descending with never-touched notes after touched ones, created_at
// descending as the tie-break. This matches the list query's
// ORDER BY updated_at DESC NULLS LAST, created_at DESC.
func OrderForDisplay(ns []Note) {
	sort.SliceStable(ns, func(i, j int) bool {
		a, b := ns[i], ns[j]
		switch {
		case a.UpdatedAt != nil && b.UpdatedAt != nil:
			if !a.UpdatedAt.Equal(*b.UpdatedAt) {
				return a.UpdatedAt.After(*b.UpdatedAt)
			}
		case a.UpdatedAt != nil:
			return true
		case b.UpdatedAt != nil:
			return false
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
