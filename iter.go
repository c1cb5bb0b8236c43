// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

import "iter"

// All returns an iterator over all key/value pairs in lexicographic
// key order. The yielded key slices are the tree's own copies and must
// not be mutated by the caller.
func (t *Tree[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		allRec(t.root, yield)
	}
}

// allRec, in-order rec-descent: the key ending at a node sorts before
// every key below its children.
func allRec[V any](n node[V], yield func([]byte, V) bool) bool {
	if n == nil {
		return true
	}

	if l, isLeaf := n.(*leaf[V]); isLeaf {
		return yield(l.key, l.value)
	}

	in := n.(inner[V])
	if l := in.base().inner; l != nil {
		if !yield(l.key, l.value) {
			return false
		}
	}

	return in.eachChild(func(_ byte, child node[V]) bool {
		return allRec(child, yield)
	})
}

// Min returns the smallest key and its value, ok is false on an
// empty tree.
func (t *Tree[V]) Min() (key []byte, val V, ok bool) {
	if t.root == nil {
		return nil, val, false
	}

	l := minimum[V](t.root)
	return l.key, l.value, true
}

// Max returns the largest key and its value, ok is false on an
// empty tree.
func (t *Tree[V]) Max() (key []byte, val V, ok bool) {
	if t.root == nil {
		return nil, val, false
	}

	l := maximum[V](t.root)
	return l.key, l.value, true
}
