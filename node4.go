// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

// node4, the smallest inner shape: up to 4 children in unsorted
// parallel arrays, resolved by linear scan.
type node4[V any] struct {
	meta[V]
	keys     [node4Cap]byte
	children [node4Cap]node[V]
}

func (n *node4[V]) kind() kind { return kindNode4 }

func newNode4[V any]() *node4[V] { return &node4[V]{} }

func (n *node4[V]) findChild(c byte) node[V] {
	for i := range n.size {
		if n.keys[i] == c {
			return n.children[i]
		}
	}
	return nil
}

func (n *node4[V]) addChild(c byte, child node[V]) {
	n.keys[n.size] = c
	n.children[n.size] = child
	n.size++
}

func (n *node4[V]) replaceChild(c byte, child node[V]) {
	for i := range n.size {
		if n.keys[i] == c {
			n.children[i] = child
			return
		}
	}
}

func (n *node4[V]) deleteChild(c byte) {
	for i := range n.size {
		if n.keys[i] != c {
			continue
		}

		// unsorted, swap in the last entry and zero the tail
		last := n.size - 1
		n.keys[i] = n.keys[last]
		n.children[i] = n.children[last]
		n.keys[last] = 0
		n.children[last] = nil
		n.size--
		return
	}
}

func (n *node4[V]) full() bool { return n.size == node4Cap }

// grow re-encodes into a node16, the entries become sorted.
func (n *node4[V]) grow() inner[V] {
	nn := newNode16[V]()
	nn.meta = n.meta
	nn.size = 0

	for i := range n.size {
		nn.addChild(n.keys[i], n.children[i])
	}

	return nn
}

// shrink collapses this node when it no longer justifies its own
// existence: a lone inner leaf replaces the node, a single remaining
// child is merged to restore path compression.
func (n *node4[V]) shrink() node[V] {
	if n.size == 0 {
		if n.inner == nil {
			return nil
		}
		return n.inner
	}
	if n.size > 1 || n.inner != nil {
		return nil
	}

	// exactly one child, no inner leaf: merge
	child := n.children[0]

	l, ok := child.(*leaf[V])
	if ok {
		// the leaf carries its full key, no prefix to maintain
		return l
	}

	// concatenate prefix + selecting byte + child prefix,
	// the cache keeps what fits, prefixLen stays exact
	cm := child.(inner[V]).base()

	var buf [maxPrefixCache]byte
	blen := copy(buf[:], n.prefix[:n.cachedLen()])
	if blen < maxPrefixCache {
		buf[blen] = n.keys[0]
		blen++
	}
	blen += copy(buf[blen:], cm.prefix[:cm.cachedLen()])

	cm.prefixLen += n.prefixLen + 1
	copy(cm.prefix[:], buf[:blen])

	return child
}

func (n *node4[V]) minChild() node[V] {
	idx := 0
	for i := 1; i < n.size; i++ {
		if n.keys[i] < n.keys[idx] {
			idx = i
		}
	}
	return n.children[idx]
}

func (n *node4[V]) maxChild() node[V] {
	idx := 0
	for i := 1; i < n.size; i++ {
		if n.keys[i] > n.keys[idx] {
			idx = i
		}
	}
	return n.children[idx]
}

func (n *node4[V]) eachChild(yield func(byte, node[V]) bool) bool {
	// unsorted slots, sort a copy of the occupied range
	var keys [node4Cap]byte
	copy(keys[:], n.keys[:n.size])

	for i := 1; i < n.size; i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}

	for i := range n.size {
		if !yield(keys[i], n.findChild(keys[i])) {
			return false
		}
	}
	return true
}
