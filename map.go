package wavlmap

import (
	"bytes"
	"cmp"
	"encoding/json"
	"iter"

	"github.com/cockroachdb/errors"
)

// Map is an ordered key-value map backed by a Weak AVL tree. The zero
// value is not ready to use; construct one with New, NewFunc, or
// NewDescending.
type Map[K, V any] struct {
	t *tree[K, V]
}

// New returns an empty Map ordered ascending by K's natural order.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{t: newTree[K, V](Ascending[K]())}
}

// NewDescending returns an empty Map ordered descending by K's natural order.
func NewDescending[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{t: newTree[K, V](Descending[K]())}
}

// NewFunc returns an empty Map ordered by the given comparator, for key
// types with no natural ordering. cmp must return a negative, zero, or
// positive number as a is less than, equal to, or greater than b, and must
// be consistent across the Map's lifetime.
func NewFunc[K, V any](cmp func(a, b K) int) *Map[K, V] {
	if cmp == nil {
		panic("wavlmap: nil comparator")
	}
	return &Map[K, V]{t: newTree[K, V](cmp)}
}

// FromSeq builds a Map from an iterator of (key, value) pairs, inserting
// them in iteration order so a later duplicate key overwrites an earlier
// one. The Map is always ordered ascending by K's natural order; FromSeq
// takes no comparator.
func FromSeq[K cmp.Ordered, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	for k, v := range seq {
		m.Set(k, v)
	}
	return m
}

// Len returns the number of entries in the Map.
func (m *Map[K, V]) Len() int { return m.t.size }

// IsEmpty reports whether the Map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.t.isEmpty() }

// Compare exposes the Map's comparator, e.g. for composing with other
// ordered structures that share the same key order.
func (m *Map[K, V]) Compare(a, b K) int { return m.t.cmp(a, b) }

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.t.search(key) != m.t.nilNode
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n := m.t.search(key)
	if n == m.t.nilNode {
		var zero V
		return zero, false
	}
	return n.val, true
}

// Set inserts or overwrites key's value and returns the receiver, so a
// sequence of writes can be chained.
func (m *Map[K, V]) Set(key K, val V) *Map[K, V] {
	m.t.insertOrReplace(key, val)
	return m
}

// Insert inserts or overwrites key's value, returning the previous value
// and whether one existed.
func (m *Map[K, V]) Insert(key K, val V) (old V, hadOld bool) {
	return m.t.insertOrReplace(key, val)
}

// Remove deletes key, returning its value and whether it was present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	n := m.t.search(key)
	if n == m.t.nilNode {
		var zero V
		return zero, false
	}
	val := n.val
	m.t.removeNode(n)
	return val, true
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	_, had := m.Remove(key)
	return had
}

// Clear removes every entry from the Map.
func (m *Map[K, V]) Clear() {
	for n := range m.nodesAscending() {
		n.removed = true
	}
	m.t.root = m.t.nilNode
	m.t.size = 0
}

// First returns a cursor to the smallest entry.
func (m *Map[K, V]) First() *Cursor[K, V] {
	n := m.t.minOf(m.t.root)
	if n == m.t.nilNode {
		return vacantCursor(m.t, m.t.nilNode, left)
	}
	return occupiedCursor(m.t, n)
}

// Last returns a cursor to the largest entry.
func (m *Map[K, V]) Last() *Cursor[K, V] {
	n := m.t.maxOf(m.t.root)
	if n == m.t.nilNode {
		return vacantCursor(m.t, m.t.nilNode, left)
	}
	return occupiedCursor(m.t, n)
}

// At returns a cursor to the index-th entry in ascending order.
func (m *Map[K, V]) At(index int) *Cursor[K, V] {
	n := m.t.at(index)
	if n == m.t.nilNode {
		return vacantCursor(m.t, m.t.nilNode, left)
	}
	return occupiedCursor(m.t, n)
}

// Cursor returns a KeyedCursor positioned at key, Occupied if present and
// Vacant (anchored at its would-be neighbor) otherwise.
func (m *Map[K, V]) Cursor(key K) *KeyedCursor[K, V] {
	return keyedCursor(m.t, key)
}

// Range returns a view over [start, end]. A nil start or end leaves that
// side unbounded. If exclusive is true the end key itself is excluded.
// Range panics with ErrInvalidRange if both bounds are given and start
// sorts after end.
func (m *Map[K, V]) Range(start, end *K, exclusive bool) *Range[K, V] {
	if start != nil && end != nil && m.t.cmp(*start, *end) > 0 {
		raiseInvalidRange("start sorts after end")
	}
	lower, upper, kind := m.t.searchRange(start, end, exclusive)
	return newRange(m, lower, upper, kind)
}

// All returns a Range over every entry.
func (m *Map[K, V]) All() *Range[K, V] {
	return m.Range(nil, nil, false)
}

// From returns a Range over every entry >= start.
func (m *Map[K, V]) From(start K) *Range[K, V] {
	return m.Range(&start, nil, false)
}

// Above returns a Range over every entry > start.
func (m *Map[K, V]) Above(start K) *Range[K, V] {
	n := m.t.firstAfter(start)
	if n == m.t.nilNode {
		return newRange(m, m.t.nilNode, m.t.nilNode, kindAfter)
	}
	k := n.key
	return m.Range(&k, nil, false)
}

// To returns a Range over every entry <= end.
func (m *Map[K, V]) To(end K) *Range[K, V] {
	return m.Range(nil, &end, false)
}

// Below returns a Range over every entry < end.
func (m *Map[K, V]) Below(end K) *Range[K, V] {
	n := m.t.lastBefore(end)
	if n == m.t.nilNode {
		return newRange(m, m.t.nilNode, m.t.nilNode, kindBefore)
	}
	k := n.key
	return m.Range(nil, &k, false)
}

func (m *Map[K, V]) nodesAscending() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		for n := m.t.minOf(m.t.root); n != m.t.nilNode; n = m.t.successor(n) {
			if !yield(n) {
				return
			}
		}
	}
}

func (m *Map[K, V]) nodesDescending() iter.Seq[*node[K, V]] {
	return func(yield func(*node[K, V]) bool) {
		for n := m.t.maxOf(m.t.root); n != m.t.nilNode; n = m.t.predecessor(n) {
			if !yield(n) {
				return
			}
		}
	}
}

// Keys iterates every key in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range m.nodesAscending() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values iterates every value in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := range m.nodesAscending() {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Entries iterates every (key, value) pair in ascending key order.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range m.nodesAscending() {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// KeysReverse iterates every key in descending order.
func (m *Map[K, V]) KeysReverse() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range m.nodesDescending() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// ValuesReverse iterates every value in descending key order.
func (m *Map[K, V]) ValuesReverse() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := range m.nodesDescending() {
			if !yield(n.val) {
				return
			}
		}
	}
}

// EntriesReverse iterates every (key, value) pair in descending key order.
func (m *Map[K, V]) EntriesReverse() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range m.nodesDescending() {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// ForEach calls fn for every entry in ascending order, passing the Map
// itself as the third argument.
func (m *Map[K, V]) ForEach(fn func(K, V, *Map[K, V])) {
	for n := range m.nodesAscending() {
		fn(n.key, n.val, m)
	}
}

// ForEachReverse calls fn for every entry in descending order, passing the
// Map itself as the third argument.
func (m *Map[K, V]) ForEachReverse(fn func(K, V, *Map[K, V])) {
	for n := range m.nodesDescending() {
		fn(n.key, n.val, m)
	}
}

// Clone returns a shallow copy of the Map: same comparator, same keys and
// values, independent tree structure.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{t: newTree[K, V](m.t.cmp)}
	for n := range m.nodesAscending() {
		out.Set(n.key, n.val)
	}
	return out
}

// MarshalJSON renders the Map as a JSON array of [key, value] pairs,
// preserving order (a JSON object would not, and would require K to be a
// string).
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	for n := range m.nodesAscending() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kb, err := json.Marshal(n.key)
		if err != nil {
			return nil, errors.Wrapf(err, "wavlmap: marshaling key %v", n.key)
		}
		vb, err := json.Marshal(n.val)
		if err != nil {
			return nil, errors.Wrapf(err, "wavlmap: marshaling value for key %v", n.key)
		}
		buf.WriteByte('[')
		buf.Write(kb)
		buf.WriteByte(',')
		buf.Write(vb)
		buf.WriteByte(']')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON populates the Map from a JSON array of [key, value] pairs
// as produced by MarshalJSON. The Map must already be constructed (via
// New, NewFunc, or NewDescending) so it has a comparator.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var pairs [][2]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return errors.Wrap(err, "wavlmap: decoding entry array")
	}
	if m.t == nil {
		return errors.New("wavlmap: UnmarshalJSON called on an unconstructed Map")
	}
	m.Clear()
	for _, pair := range pairs {
		var k K
		var v V
		if err := json.Unmarshal(pair[0], &k); err != nil {
			return errors.Wrap(err, "wavlmap: decoding key")
		}
		if err := json.Unmarshal(pair[1], &v); err != nil {
			return errors.Wrap(err, "wavlmap: decoding value")
		}
		m.Set(k, v)
	}
	return nil
}
