// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

// node48 indexes all 256 byte values into a 48-slot child array, one
// indirection per lookup. The index table is 1-based, 0 is the absent
// sentinel, so the zero value needs no initialization.
type node48[V any] struct {
	meta[V]
	index    [256]byte
	children [node48Cap]node[V]
}

func (n *node48[V]) kind() kind { return kindNode48 }

func newNode48[V any]() *node48[V] { return &node48[V]{} }

func (n *node48[V]) findChild(c byte) node[V] {
	if i := n.index[c]; i != 0 {
		return n.children[i-1]
	}
	return nil
}

func (n *node48[V]) addChild(c byte, child node[V]) {
	n.children[n.size] = child
	n.index[c] = byte(n.size + 1)
	n.size++
}

func (n *node48[V]) replaceChild(c byte, child node[V]) {
	if i := n.index[c]; i != 0 {
		n.children[i-1] = child
	}
}

func (n *node48[V]) deleteChild(c byte) {
	i := n.index[c]
	if i == 0 {
		return
	}
	i--

	// keep the child array dense, move the last entry into the hole
	// and rewire its index slot
	last := byte(n.size - 1)
	if i < last {
		n.children[i] = n.children[last]
		for b := range n.index {
			if n.index[b] == last+1 {
				n.index[b] = i + 1
				break
			}
		}
	}

	n.children[last] = nil
	n.index[c] = 0
	n.size--
}

func (n *node48[V]) full() bool { return n.size == node48Cap }

// grow re-encodes into a node256 with direct byte indexing.
func (n *node48[V]) grow() inner[V] {
	nn := newNode256[V]()
	nn.meta = n.meta

	for c, i := range n.index {
		if i != 0 {
			nn.children[c] = n.children[i-1]
		}
	}

	return nn
}

// shrink re-encodes into a node16 when the occupancy fits again,
// walking the index table ascending yields the sorted key order.
func (n *node48[V]) shrink() node[V] {
	if n.size > node48ShrinkLen {
		return nil
	}

	nn := newNode16[V]()
	nn.meta = n.meta
	nn.size = 0

	for c, i := range n.index {
		if i != 0 {
			nn.keys[nn.size] = byte(c)
			nn.children[nn.size] = n.children[i-1]
			nn.size++
		}
	}

	return nn
}

func (n *node48[V]) minChild() node[V] {
	for _, i := range n.index {
		if i != 0 {
			return n.children[i-1]
		}
	}
	return nil
}

func (n *node48[V]) maxChild() node[V] {
	for c := 255; c >= 0; c-- {
		if i := n.index[c]; i != 0 {
			return n.children[i-1]
		}
	}
	return nil
}

func (n *node48[V]) eachChild(yield func(byte, node[V]) bool) bool {
	for c, i := range n.index {
		if i != 0 && !yield(byte(c), n.children[i-1]) {
			return false
		}
	}
	return true
}
