// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the stored keys as
// string, just a wrapper for [Tree.Fprint].
// If Fprint returns an error, String panics.
func (t *Tree[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the stored keys with
// default formatted payload V to w.
//
// The order from top to bottom is the lexicographic key order, the
// nesting follows the radix structure:
//
//	▼
//	└─ "te"
//	   ├─ "team" (2)
//	   └─ "test"
//	      ├─ "test" (1)
//	      └─ "testify" (3)
func (t *Tree[V]) Fprint(w io.Writer) error {
	if t.root == nil {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return fprintRec[V](w, t.root, nodeLabel[V](t.root, nil), "", true)
}

// fprintRec prints the entry line for n and rec-descents into its
// entries. The label holds all key bytes consumed down to and
// including n's own compressed path.
func fprintRec[V any](w io.Writer, n node[V], label []byte, pad string, last bool) error {
	glyphe := "├─ "
	spacer := "│  "
	if last {
		glyphe = "└─ "
		spacer = "   "
	}

	if l, isLeaf := n.(*leaf[V]); isLeaf {
		_, err := fmt.Fprintf(w, "%s%q (%v)\n", pad+glyphe, l.key, l.value)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s%q\n", pad+glyphe, label); err != nil {
		return err
	}

	// entries in order: the key ending here first, then the children
	in := n.(inner[V])

	type entry struct {
		child node[V]
		label []byte
	}

	var entries []entry
	if l := in.base().inner; l != nil {
		entries = append(entries, entry{child: l})
	}
	in.eachChild(func(c byte, child node[V]) bool {
		next := append(append([]byte(nil), label...), c)
		entries = append(entries, entry{child: child, label: nodeLabel[V](child, next)})
		return true
	})

	for i, e := range entries {
		if err := fprintRec[V](w, e.child, e.label, pad+spacer, i == len(entries)-1); err != nil {
			return err
		}
	}

	return nil
}

// nodeLabel extends the consumed path by n's compressed prefix. The
// bytes come from the minimum leaf, so a truncated prefix cache does
// not garble the output.
func nodeLabel[V any](n node[V], path []byte) []byte {
	in, isInner := n.(inner[V])
	if !isInner {
		return path
	}

	if plen := in.base().prefixLen; plen > 0 {
		lmin := minimum[V](n)
		path = append(path, lmin.key[len(path):len(path)+plen]...)
	}

	return path
}
