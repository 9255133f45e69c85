package wavlmap

// branch identifies which child edge of a parent a slot refers to.
type branch int8

const (
	left branch = iota
	right
)

// node is a node of the WAVL tree. Absence is represented by a single
// shared sentinel per tree (see tree.nilNode), never by a nil pointer,
// so rank arithmetic is branch-free at the fringe.
type node[K, V any] struct {
	key K
	val V

	// odd is the parity of the node's rank. A fresh internal leaf has
	// parity Zero (odd == false); the sentinel has parity One
	// (odd == true), giving it rank -1 uniformly.
	odd bool

	// removed is the tombstone set before a node is detached from the
	// tree, so cursors still holding a reference can detect staleness.
	removed bool

	// size is the number of live nodes in the subtree rooted at this
	// node, including itself. The sentinel's size is always 0. It
	// backs order-statistic lookups (Map.At, Range.count) in O(log n).
	size int

	parent, left, right *node[K, V]
}

func (x *node[K, V]) promote() { x.odd = !x.odd }
func (x *node[K, V]) demote()  { x.odd = !x.odd }
