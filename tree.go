// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

// Tree is an adaptive radix tree, mapping arbitrary byte keys to
// values of type V in lexicographic byte order.
// The zero value is ready to use.
//
// A Tree must not be modified concurrently, there is no internal
// locking by design.
type Tree[V any] struct {
	root node[V]
	size int
}

// Len returns the number of keys stored in the tree.
func (t *Tree[V]) Len() int { return t.size }

// Get returns the value stored under key and true, or false if the
// key is absent.
func (t *Tree[V]) Get(key []byte) (val V, ok bool) {
	n := t.root
	depth := 0

	for n != nil {
		if l, isLeaf := n.(*leaf[V]); isLeaf {
			if l.match(key) {
				return l.value, true
			}
			return val, false
		}

		in := n.(inner[V])
		m := in.base()

		if m.prefixLen > 0 {
			// optimistic: only the cached part is compared here,
			// the leaf comparison below is the final word
			if m.match(key, depth) < m.cachedLen() {
				return val, false
			}
			depth += m.prefixLen
		}

		if depth >= len(key) {
			if depth == len(key) && m.inner != nil && m.inner.match(key) {
				return m.inner.value, true
			}
			return val, false
		}

		n = in.findChild(key[depth])
		depth++
	}

	return val, false
}

// Insert stores val under key, overwriting any existing value.
// It reports whether the key was newly added to the tree.
func (t *Tree[V]) Insert(key []byte, val V) (inserted bool) {
	t.root, inserted = t.insertRec(t.root, key, val, 0)
	if inserted {
		t.size++
	}
	return inserted
}

// insertRec descends below n and returns the node that takes n's slot,
// usually n itself, a fresh split node or the promoted replacement.
// Replacements are fully built before the caller relinks them, a
// partial mutation is never observable.
func (t *Tree[V]) insertRec(n node[V], key []byte, val V, depth int) (node[V], bool) {
	if n == nil {
		return newLeaf[V](key, val), true
	}

	if l, isLeaf := n.(*leaf[V]); isLeaf {
		if l.match(key) {
			l.value = val
			return n, false
		}

		// two distinct keys on one path, fork below the common prefix
		lcp := longestCommonPrefix(l.key, key, depth)

		nn := newNode4[V]()
		nn.setPrefix(key[depth:], lcp)

		putChild(nn, l.key, depth+lcp, l)
		putChild(nn, key, depth+lcp, newLeaf[V](key, val))

		return nn, true
	}

	in := n.(inner[V])
	m := in.base()

	if m.prefixLen > 0 {
		mismatch := matchDeep(in, key, depth)
		if mismatch < m.prefixLen {
			return t.splitPrefix(in, key, val, depth, mismatch), true
		}
		depth += m.prefixLen
	}

	if depth == len(key) {
		// key ends exactly at this node
		if m.inner != nil {
			m.inner.value = val
			return n, false
		}
		m.inner = newLeaf[V](key, val)
		return n, true
	}

	c := key[depth]

	if child := in.findChild(c); child != nil {
		rep, inserted := t.insertRec(child, key, val, depth+1)
		if rep != child {
			in.replaceChild(c, rep)
		}
		return n, inserted
	}

	// no child for c, promote first if the shape is exhausted
	if in.full() {
		in = in.grow()
	}
	in.addChild(c, newLeaf[V](key, val))

	return in, true
}

// splitPrefix forks the compressed path of n at mismatch: a new node4
// takes the matched head, n keeps the tail and becomes a child keyed
// by its first now-exposed byte, the inserted key becomes the other
// child. The new node takes n's slot in the parent.
func (t *Tree[V]) splitPrefix(n inner[V], key []byte, val V, depth, mismatch int) node[V] {
	m := n.base()

	nn := newNode4[V]()
	nn.setPrefix(key[depth:], mismatch)

	// true tail of the old prefix, starting at the divergence;
	// beyond the cache it is recovered from the minimum leaf
	var scratch [maxPrefixCache]byte
	var tail []byte
	if m.prefixLen <= maxPrefixCache {
		tail = append(scratch[:0], m.prefix[mismatch:m.prefixLen]...)
	} else {
		lmin := minimum[V](n)
		tail = lmin.key[depth+mismatch : depth+m.prefixLen]
	}

	m.setPrefix(tail[1:], m.prefixLen-mismatch-1)
	nn.addChild(tail[0], n)

	putChild(nn, key, depth+mismatch, newLeaf[V](key, val))

	return nn
}

// putChild files the leaf under its next key byte, or into the inner
// slot if the key is exhausted at this node.
func putChild[V any](n *node4[V], key []byte, depth int, l *leaf[V]) {
	if depth == len(key) {
		n.inner = l
		return
	}
	n.addChild(key[depth], l)
}

// Delete removes key from the tree and reports whether it was present.
func (t *Tree[V]) Delete(key []byte) (deleted bool) {
	var rep node[V]

	rep, deleted = t.deleteRec(t.root, key, 0)
	if deleted {
		t.root = rep
		t.size--
	}
	return deleted
}

// deleteRec mirrors the search descent and returns the node that takes
// n's slot after removal: n itself, the demoted or merged replacement,
// or nil if the subtree became empty.
func (t *Tree[V]) deleteRec(n node[V], key []byte, depth int) (node[V], bool) {
	if n == nil {
		return nil, false
	}

	if l, isLeaf := n.(*leaf[V]); isLeaf {
		if l.match(key) {
			return nil, true
		}
		return n, false
	}

	in := n.(inner[V])
	m := in.base()

	if m.prefixLen > 0 {
		if m.match(key, depth) < m.cachedLen() {
			return n, false
		}
		depth += m.prefixLen
	}

	if depth >= len(key) {
		if depth == len(key) && m.inner != nil && m.inner.match(key) {
			m.inner = nil
			return shrinkOrSelf(in), true
		}
		return n, false
	}

	c := key[depth]

	child := in.findChild(c)
	if child == nil {
		return n, false
	}

	rep, deleted := t.deleteRec(child, key, depth+1)
	if !deleted {
		return n, false
	}

	switch {
	case rep == nil:
		in.deleteChild(c)
		return shrinkOrSelf(in), true
	case rep != child:
		in.replaceChild(c, rep)
	}

	return n, true
}

// shrinkOrSelf applies the demotion/merge rules after a removal.
func shrinkOrSelf[V any](n inner[V]) node[V] {
	if rep := n.shrink(); rep != nil {
		return rep
	}
	return n
}
