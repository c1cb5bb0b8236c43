// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

import (
	json "github.com/goccy/go-json"
)

// ListElement is one key/value pair in a tree dump.
// Keys are dumped as strings, arbitrary bytes included.
type ListElement[V any] struct {
	Key   string `json:"key"`
	Value V      `json:"value"`
}

// DumpList dumps the tree into a list of key/value pairs in
// lexicographic key order.
func (t *Tree[V]) DumpList() []ListElement[V] {
	elements := make([]ListElement[V], 0, t.size)

	for key, val := range t.All() {
		elements = append(elements, ListElement[V]{
			Key:   string(key),
			Value: val,
		})
	}

	return elements
}

// MarshalJSON dumps the tree as an ordered array, not a map,
// because the key order matters.
func (t *Tree[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}
