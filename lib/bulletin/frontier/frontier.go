// Package frontier decides which cached bulletins are newer than the
// latest one already recorded in the store.
package frontier

import (
	"sort"

	"bulletinwatch/lib/bulletin"
)

// Select returns the cached timestamps strictly after last, ascending.
// the zero Timestamp selects everything, which is the empty-store
// case. the returned order is the store-append order.
func Select(cached []bulletin.Timestamp, last bulletin.Timestamp) []bulletin.Timestamp {
	var out []bulletin.Timestamp
	for _, ts := range cached {
		if ts.After(last) {
			out = append(out, ts)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
