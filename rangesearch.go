package wavlmap

// rangeKind classifies how a range's bounds relate to the tree's contents,
// per the five-way split: a genuine non-empty span (Default), an empty
// span whose bounds happen to coincide because the end was requested
// exclusive (Exclusive), a span entirely below the smallest key (Before),
// entirely above the largest key (After), or one already drained by a
// destructive operation (Removed).
type rangeKind int8

const (
	kindDefault rangeKind = iota
	kindExclusive
	kindBefore
	kindAfter
	kindRemoved
)

// searchRange resolves [start, end] into a pair of live nodes [lower,
// upper] plus a classification. start and end are nil when the
// corresponding bound is open (unbounded). exclusive drops the end key
// itself from the span when it is present in the tree.
func (t *tree[K, V]) searchRange(start, end *K, exclusive bool) (lower, upper *node[K, V], kind rangeKind) {
	if t.isEmpty() {
		return t.nilNode, t.nilNode, kindBefore
	}

	if start == nil {
		lower = t.minOf(t.root)
	} else {
		hit, parent, br := t.searchSlot(*start)
		switch {
		case hit != t.nilNode:
			lower = hit
		case parent == t.nilNode:
			lower = t.minOf(t.root)
		case br == left:
			lower = parent
		default:
			succ := t.successor(parent)
			if succ == t.nilNode {
				return t.nilNode, t.nilNode, kindAfter
			}
			lower = succ
		}
	}

	if end == nil {
		upper = t.maxOf(t.root)
	} else {
		hit, parent, br := t.searchSlot(*end)
		switch {
		case hit != t.nilNode:
			if exclusive {
				if lower == hit {
					return hit, hit, kindExclusive
				}
				upper = t.predecessor(hit)
			} else {
				upper = hit
			}
		case parent == t.nilNode:
			upper = t.maxOf(t.root)
		case br == right:
			upper = parent
		default:
			pred := t.predecessor(parent)
			if pred == t.nilNode {
				return t.nilNode, t.nilNode, kindBefore
			}
			upper = pred
		}
	}

	if t.rankOf(lower) > t.rankOf(upper) {
		return upper, lower, kindExclusive
	}
	return lower, upper, kindDefault
}
