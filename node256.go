// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

// node256, the largest shape: a direct 256-entry child array, nil
// means absent. Only used when the occupancy genuinely approaches 256.
type node256[V any] struct {
	meta[V]
	children [node256Cap]node[V]
}

func (n *node256[V]) kind() kind { return kindNode256 }

func newNode256[V any]() *node256[V] { return &node256[V]{} }

func (n *node256[V]) findChild(c byte) node[V] {
	return n.children[c]
}

func (n *node256[V]) addChild(c byte, child node[V]) {
	n.children[c] = child
	n.size++
}

func (n *node256[V]) replaceChild(c byte, child node[V]) {
	n.children[c] = child
}

func (n *node256[V]) deleteChild(c byte) {
	if n.children[c] != nil {
		n.children[c] = nil
		n.size--
	}
}

// full is never true, a node256 holds every possible byte.
func (n *node256[V]) full() bool { return false }

func (n *node256[V]) grow() inner[V] {
	panic("art: node256 cannot grow")
}

// shrink re-encodes into a node48 when the occupancy fits again.
func (n *node256[V]) shrink() node[V] {
	if n.size > node256ShrinkLen {
		return nil
	}

	nn := newNode48[V]()
	nn.meta = n.meta
	nn.size = 0

	for c, child := range n.children {
		if child != nil {
			nn.addChild(byte(c), child)
		}
	}

	return nn
}

func (n *node256[V]) minChild() node[V] {
	for _, child := range n.children {
		if child != nil {
			return child
		}
	}
	return nil
}

func (n *node256[V]) maxChild() node[V] {
	for c := 255; c >= 0; c-- {
		if n.children[c] != nil {
			return n.children[c]
		}
	}
	return nil
}

func (n *node256[V]) eachChild(yield func(byte, node[V]) bool) bool {
	for c, child := range n.children {
		if child != nil && !yield(byte(c), child) {
			return false
		}
	}
	return true
}
