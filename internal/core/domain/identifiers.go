package domain

import (
	"slices"

	"go.trai.ch/rcstring"
)

// SortIdentifiers sorts ids in place by byte order and returns the result.
// With unique set, runs of equal content collapse to their first element and
// the dropped handles are released.
func SortIdentifiers(ids []rcstring.SharedString, descending, unique bool) []rcstring.SharedString {
	if descending {
		rcstring.SortDescending(ids)
	} else {
		rcstring.Sort(ids)
	}
	if !unique || len(ids) < 2 {
		return ids
	}

	kept := ids[:1]
	for i := 1; i < len(ids); i++ {
		if ids[i].Equal(kept[len(kept)-1]) {
			ids[i].Release()
			continue
		}
		kept = append(kept, ids[i])
	}
	clear(ids[len(kept):])
	return slices.Clip(kept)
}
