// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

import "math/bits"

// node16 holds up to 16 children in parallel arrays kept sorted by key
// byte. The sort order enables the binary search reference lookup and
// the branch-free compare mask fast path.
type node16[V any] struct {
	meta[V]
	keys     [node16Cap]byte
	children [node16Cap]node[V]
}

func (n *node16[V]) kind() kind { return kindNode16 }

func newNode16[V any]() *node16[V] { return &node16[V]{} }

// findChild uses the compare mask fast path,
// findChildBinary is the reference semantics.
func (n *node16[V]) findChild(c byte) node[V] {
	if idx := n.indexMask(c); idx >= 0 {
		return n.children[idx]
	}
	return nil
}

// indexMask compares c against all 16 key slots at once: build an
// equality bitmask, mask it to the occupied range, the lowest set bit
// is the matching slot. The loop is branch-free over the full array so
// the compiler can vectorize it.
func (n *node16[V]) indexMask(c byte) int {
	var bitfield uint
	for i := range node16Cap {
		if n.keys[i] == c {
			bitfield |= 1 << i
		}
	}

	bitfield &= 1<<n.size - 1
	if bitfield == 0 {
		return -1
	}
	return bits.TrailingZeros(bitfield)
}

// findChildBinary resolves c by binary search over the sorted keys.
// Observably equivalent to findChild, kept as the portable reference.
func (n *node16[V]) findChildBinary(c byte) node[V] {
	lo, hi := 0, n.size-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case n.keys[mid] < c:
			lo = mid + 1
		case n.keys[mid] > c:
			hi = mid - 1
		default:
			return n.children[mid]
		}
	}
	return nil
}

// insertPos, the slot where c belongs to keep the keys sorted.
func (n *node16[V]) insertPos(c byte) int {
	var i int
	for ; i < n.size; i++ {
		if c < n.keys[i] {
			break
		}
	}
	return i
}

func (n *node16[V]) addChild(c byte, child node[V]) {
	i := n.insertPos(c)

	copy(n.keys[i+1:], n.keys[i:n.size])
	copy(n.children[i+1:], n.children[i:n.size])

	n.keys[i] = c
	n.children[i] = child
	n.size++
}

func (n *node16[V]) replaceChild(c byte, child node[V]) {
	if idx := n.indexMask(c); idx >= 0 {
		n.children[idx] = child
	}
}

func (n *node16[V]) deleteChild(c byte) {
	idx := n.indexMask(c)
	if idx < 0 {
		return
	}

	copy(n.keys[idx:], n.keys[idx+1:n.size])
	copy(n.children[idx:], n.children[idx+1:n.size])

	n.size--
	n.keys[n.size] = 0
	n.children[n.size] = nil
}

func (n *node16[V]) full() bool { return n.size == node16Cap }

// grow re-encodes into a node48: sorted parallel arrays become the
// byte indexed child table.
func (n *node16[V]) grow() inner[V] {
	nn := newNode48[V]()
	nn.meta = n.meta

	for i := range n.size {
		nn.children[i] = n.children[i]
		nn.index[n.keys[i]] = byte(i + 1)
	}

	return nn
}

// shrink re-encodes into a node4 when the occupancy fits again.
func (n *node16[V]) shrink() node[V] {
	if n.size > node16ShrinkLen {
		return nil
	}

	nn := newNode4[V]()
	nn.meta = n.meta
	nn.size = 0

	for i := range n.size {
		nn.addChild(n.keys[i], n.children[i])
	}

	return nn
}

func (n *node16[V]) minChild() node[V] { return n.children[0] }
func (n *node16[V]) maxChild() node[V] { return n.children[n.size-1] }

func (n *node16[V]) eachChild(yield func(byte, node[V]) bool) bool {
	for i := range n.size {
		if !yield(n.keys[i], n.children[i]) {
			return false
		}
	}
	return true
}
