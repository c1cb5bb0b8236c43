// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Tree[V]) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the tree structure and all the nodes to w.
func (t *Tree[V]) dump(w io.Writer) {
	if t == nil || t.root == nil {
		return
	}

	fmt.Fprintf(w, "### size(%d)\n", t.size)
	dumpRec[V](w, t.root, 0)
}

// dumpRec, rec-descent the trie.
func dumpRec[V any](w io.Writer, n node[V], depth int) {
	indent := strings.Repeat(".", depth)

	if l, isLeaf := n.(*leaf[V]); isLeaf {
		fmt.Fprintf(w, "%s[%s] key: %q value: %v\n", indent, l.kind(), l.key, l.value)
		return
	}

	in := n.(inner[V])
	m := in.base()

	fmt.Fprintf(w, "%s[%s] depth: %d childs(#%d) prefixLen: %d cached: %q\n",
		indent, n.kind(), depth, m.size, m.prefixLen, m.prefix[:m.cachedLen()])

	if m.inner != nil {
		fmt.Fprintf(w, "%sinner key: %q value: %v\n", indent, m.inner.key, m.inner.value)
	}

	in.eachChild(func(c byte, child node[V]) bool {
		fmt.Fprintf(w, "%soctet: %s\n", indent, octetFmt(c))
		dumpRec[V](w, child, depth+1)
		return true
	})
}

// octetFmt, prints a key byte as character or hex.
func octetFmt(c byte) string {
	if c > 0x20 && c < 0x7f {
		return fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("0x%02x", c)
}
