package wavlmap

import "iter"

// Range is a view over a contiguous span of a Map's keys, produced by
// Map.Range / Map.From / Map.To and friends. Non-destructive operations
// (IsEmpty, Count, First, Last, iteration, ForEach) may be called any
// number of times; Delete and Extract consume the range once, after which
// every method panics with ErrConsumedRange.
type Range[K, V any] struct {
	m     *Map[K, V]
	lower *node[K, V]
	upper *node[K, V]
	kind  rangeKind
}

func newRange[K, V any](m *Map[K, V], lower, upper *node[K, V], kind rangeKind) *Range[K, V] {
	return &Range[K, V]{m: m, lower: lower, upper: upper, kind: kind}
}

func (r *Range[K, V]) checkLive() {
	if r.kind == kindRemoved {
		raiseConsumedRange()
	}
}

// IsEmpty reports whether the range contains no entries.
func (r *Range[K, V]) IsEmpty() bool {
	r.checkLive()
	return r.kind != kindDefault
}

// Count returns the number of entries in the range in O(log n), via the
// difference of the bounds' order-statistic ranks.
func (r *Range[K, V]) Count() int {
	r.checkLive()
	if r.kind != kindDefault {
		return 0
	}
	t := r.m.t
	return t.rankOf(r.upper) - t.rankOf(r.lower) + 1
}

// First returns the range's lowest entry.
func (r *Range[K, V]) First() *Cursor[K, V] {
	r.checkLive()
	switch r.kind {
	case kindBefore:
		return vacantCursor(r.m.t, r.m.t.minOf(r.m.t.root), left)
	case kindAfter:
		return vacantCursor(r.m.t, r.m.t.maxOf(r.m.t.root), right)
	}
	if r.kind != kindDefault {
		// Exclusive ranges that collapsed onto a single node (lower ==
		// upper) sit immediately before that node, not after it: the
		// node itself was excluded by the end bound, and whatever
		// follows it in-order (its right subtree, say) was never part
		// of the span at all.
		if r.kind == kindExclusive && r.lower == r.upper {
			return vacantCursor(r.m.t, r.lower, left)
		}
		return vacantCursor(r.m.t, r.lower, right)
	}
	return occupiedCursor(r.m.t, r.lower)
}

// Last returns the range's highest entry.
func (r *Range[K, V]) Last() *Cursor[K, V] {
	r.checkLive()
	switch r.kind {
	case kindBefore:
		return vacantCursor(r.m.t, r.m.t.minOf(r.m.t.root), left)
	case kindAfter:
		return vacantCursor(r.m.t, r.m.t.maxOf(r.m.t.root), right)
	}
	if r.kind != kindDefault {
		return vacantCursor(r.m.t, r.upper, left)
	}
	return occupiedCursor(r.m.t, r.upper)
}

// At returns the index-th entry of the range in ascending order. An index
// outside the range yields a Vacant cursor at the nearer edge of the range.
func (r *Range[K, V]) At(index int) *Cursor[K, V] {
	r.checkLive()
	t := r.m.t
	if r.kind != kindDefault {
		return r.First()
	}
	if index < 0 {
		return vacantCursor(t, r.lower, left)
	}
	n := t.at(t.rankOf(r.lower) + index)
	if n == t.nilNode || t.rankOf(n) > t.rankOf(r.upper) {
		return vacantCursor(t, r.upper, right)
	}
	return occupiedCursor(t, n)
}

func (r *Range[K, V]) nodes() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		if r.kind != kindDefault {
			return
		}
		t := r.m.t
		for n := r.lower; n != t.nilNode; n = t.successor(n) {
			if !yield(n) {
				return
			}
			if n == r.upper {
				return
			}
		}
	}
}

// Keys iterates the range's keys in ascending order.
func (r *Range[K, V]) Keys() iter.Seq[K] {
	r.checkLive()
	return func(yield func(K) bool) {
		for n := range r.nodes() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values iterates the range's values in ascending order.
func (r *Range[K, V]) Values() iter.Seq[V] {
	r.checkLive()
	return func(yield func(V) bool) {
		for n := range r.nodes() {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Entries iterates the range's (key, value) pairs in ascending order.
func (r *Range[K, V]) Entries() iter.Seq2[K, V] {
	r.checkLive()
	return func(yield func(K, V) bool) {
		for n := range r.nodes() {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// ForEach calls fn for every entry in the range, in ascending order,
// passing the owning Map as the third argument.
func (r *Range[K, V]) ForEach(fn func(K, V, *Map[K, V])) {
	r.checkLive()
	for n := range r.nodes() {
		fn(n.key, n.val, r.m)
	}
}

// Delete removes every entry in the range, consuming it. It returns the
// number of entries removed.
func (r *Range[K, V]) Delete() int {
	r.checkLive()
	n := r.drain(nil)
	r.kind = kindRemoved
	logRangeMutation("range delete", n)
	return n
}

// Extract removes every entry in the range, consuming it, and returns the
// removed entries in ascending order.
func (r *Range[K, V]) Extract() []Pair[K, V] {
	r.checkLive()
	var out []Pair[K, V]
	n := r.drain(func(k K, v V) { out = append(out, Pair[K, V]{Key: k, Value: v}) })
	r.kind = kindRemoved
	logRangeMutation("range extract", n)
	return out
}

// drain removes every node in the range from the lowest to the highest,
// invoking collect (if non-nil) with each (key, value) before detaching
// it. Nodes are gathered up front since removeNode invalidates the
// in-order successor chain as it rebalances.
func (r *Range[K, V]) drain(collect func(K, V)) int {
	if r.kind != kindDefault {
		return 0
	}
	t := r.m.t
	victims := make([]*node[K, V], 0, t.rankOf(r.upper)-t.rankOf(r.lower)+1)
	for n := r.lower; n != t.nilNode; n = t.successor(n) {
		victims = append(victims, n)
		if n == r.upper {
			break
		}
	}
	for _, n := range victims {
		if collect != nil {
			collect(n.key, n.val)
		}
		t.removeNode(n)
	}
	return len(victims)
}

// Pair is a key/value pair, used by Range.Extract and Map.Entries-style
// bulk accessors that need a concrete (not iterator) result.
type Pair[K, V any] struct {
	Key   K
	Value V
}
