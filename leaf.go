// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

import "bytes"

// leaf terminates every path and holds the complete original key and
// the value. The full key makes the final exact comparison possible,
// the prefix caches above are only optimistic.
type leaf[V any] struct {
	key   []byte
	value V
}

func (l *leaf[V]) kind() kind { return kindLeaf }

// newLeaf copies key, the tree never aliases caller owned memory.
func newLeaf[V any](key []byte, value V) *leaf[V] {
	return &leaf[V]{
		key:   append([]byte(nil), key...),
		value: value,
	}
}

// match reports whether the stored key equals key exactly. This is the
// confirmation step guarding against optimistic prefix false positives.
func (l *leaf[V]) match(key []byte) bool {
	return bytes.Equal(l.key, key)
}
