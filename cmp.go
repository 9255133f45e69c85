package wavlmap

import "cmp"

// Ascending returns a comparator ordering K by its natural <, for use with
// NewFunc when a Map needs to be built generically over an ordering that
// happens to be ascending.
func Ascending[K cmp.Ordered]() func(K, K) int {
	return cmp.Compare[K]
}

// Descending returns a comparator ordering K by the reverse of its
// natural <.
func Descending[K cmp.Ordered]() func(K, K) int {
	return func(a, b K) int { return cmp.Compare(b, a) }
}
