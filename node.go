// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

// The four inner node capacities. Promotion happens exactly at full
// occupancy, demotion as soon as the occupancy fits the next smaller
// shape again.
const (
	node4Cap   = 4
	node16Cap  = 16
	node48Cap  = 48
	node256Cap = 256

	node16ShrinkLen  = node4Cap
	node48ShrinkLen  = node16Cap
	node256ShrinkLen = node48Cap
)

// maxPrefixCache bounds the per-node prefix cache. Longer compressed
// paths are only partially cached, prefixLen still records the true
// length, the tail is re-derived from a leaf below when it matters.
const maxPrefixCache = 32

// kind discriminates the closed set of node shapes.
type kind uint8

const (
	kindLeaf kind = iota
	kindNode4
	kindNode16
	kindNode48
	kindNode256
)

func (k kind) String() string {
	return [...]string{"leaf", "node4", "node16", "node48", "node256"}[k]
}

// node is the tagged super type of all tree nodes,
// implemented by *leaf and the four inner shapes.
type node[V any] interface {
	kind() kind
}

// inner is the interface of the four adaptive shapes. The byte->child
// mapping differs per shape, the compressed path handling is shared
// via the embedded meta.
type inner[V any] interface {
	node[V]

	base() *meta[V]

	// findChild resolves one key byte to a child, nil means absent.
	// A miss is a normal outcome, never an error.
	findChild(c byte) node[V]

	// addChild inserts a new child under c.
	// The caller must grow the node first if it is full.
	addChild(c byte, child node[V])

	// replaceChild overwrites the child under an existing byte c.
	replaceChild(c byte, child node[V])

	// deleteChild removes the child under c, a no-op if absent.
	deleteChild(c byte)

	full() bool

	// grow re-encodes into the next larger shape, copying the meta
	// header and all entries. The receiver is left untouched until the
	// caller relinks, so a failed mutation is never observable.
	grow() inner[V]

	// shrink re-encodes into the next smaller shape when the occupancy
	// allows it, or collapses a single-child node4 into its child.
	// It returns nil if no structural change is due.
	shrink() node[V]

	// minChild and maxChild return the child with the smallest/largest
	// key byte, not regarding the inner leaf.
	minChild() node[V]
	maxChild() node[V]

	// eachChild yields the children in ascending key byte order,
	// stopping early if yield returns false.
	eachChild(yield func(c byte, child node[V]) bool) bool
}

// meta is the shared header of all inner shapes: the compressed path
// cache, the occupancy counter and the slot for a key that ends exactly
// at this node.
type meta[V any] struct {
	prefix    [maxPrefixCache]byte
	prefixLen int
	size      int

	// inner holds the leaf whose key is exhausted at this node, e.g.
	// "app" below a node covering "app" with children "le", "etite".
	// It does not count against the fan-out capacity but counts as a
	// child for the merge decision.
	inner *leaf[V]
}

func (m *meta[V]) base() *meta[V] { return m }

// cachedLen, number of valid bytes in the prefix cache.
func (m *meta[V]) cachedLen() int {
	return min(m.prefixLen, maxPrefixCache)
}

// setPrefix records a compressed path of length prefixLen,
// caching at most maxPrefixCache leading bytes from pre.
func (m *meta[V]) setPrefix(pre []byte, prefixLen int) {
	m.prefixLen = prefixLen
	copy(m.prefix[:], pre[:min(prefixLen, maxPrefixCache, len(pre))])
}

// match compares the cached prefix against the unconsumed key suffix
// and returns the count of leading matching bytes. The count is capped
// by the cache, a full count is therefore only an optimistic match if
// prefixLen exceeds the cache.
func (m *meta[V]) match(key []byte, depth int) int {
	limit := min(m.cachedLen(), len(key)-depth)

	var i int
	for ; i < limit; i++ {
		if m.prefix[i] != key[depth+i] {
			break
		}
	}

	return i
}

// matchDeep is the exact variant of match used during insertion. If the
// cache matched completely but covers only part of the true compressed
// path, the remaining bytes are recovered from the minimum leaf below n.
// The result never exceeds prefixLen.
func matchDeep[V any](n inner[V], key []byte, depth int) int {
	m := n.base()

	idx := m.match(key, depth)
	if idx < m.cachedLen() || m.prefixLen <= maxPrefixCache {
		return idx
	}

	// optimistic cache exhausted, re-derive the tail lazily
	lmin := minimum[V](n)
	limit := min(m.prefixLen, len(key)-depth)
	for ; idx < limit; idx++ {
		if lmin.key[depth+idx] != key[depth+idx] {
			break
		}
	}

	return idx
}

// minimum returns the leaf with the smallest key in the subtree under n.
func minimum[V any](n node[V]) *leaf[V] {
	for {
		if l, ok := n.(*leaf[V]); ok {
			return l
		}

		in := n.(inner[V])
		if l := in.base().inner; l != nil {
			// the key ending here sorts before all children
			return l
		}
		n = in.minChild()
	}
}

// maximum returns the leaf with the largest key in the subtree under n.
func maximum[V any](n node[V]) *leaf[V] {
	for {
		if l, ok := n.(*leaf[V]); ok {
			return l
		}

		in := n.(inner[V])
		if in.base().size == 0 {
			return in.base().inner
		}
		n = in.maxChild()
	}
}

// longestCommonPrefix of the two keys, starting at depth.
func longestCommonPrefix(a, b []byte, depth int) int {
	limit := min(len(a), len(b)) - depth

	var i int
	for ; i < limit; i++ {
		if a[depth+i] != b[depth+i] {
			break
		}
	}

	return i
}
