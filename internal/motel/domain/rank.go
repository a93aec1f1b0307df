package domain

import "sort"

// SortByProximity orders motels in place by ascending distance from origin.
// A nil origin (geolocation denied or unavailable) is the identity
// transform: the repository's native order is preserved. The sort is stable,
// so equal distances keep their relative input order, and re-sorting with
// the same origin is a no-op.
func SortByProximity(motels []*Motel, origin *Location) {
	if origin == nil {
		return
	}
	sort.SliceStable(motels, func(i, j int) bool {
		return Distance(*origin, motels[i].Location) < Distance(*origin, motels[j].Location)
	})
}
