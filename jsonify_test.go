// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpListOrdered(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])
	tree.Insert([]byte("banana"), 2)
	tree.Insert([]byte("apple"), 1)
	tree.Insert([]byte("cherry"), 3)
	tree.Insert([]byte("app"), 0)

	want := []ListElement[int]{
		{Key: "app", Value: 0},
		{Key: "apple", Value: 1},
		{Key: "banana", Value: 2},
		{Key: "cherry", Value: 3},
	}

	assert.Equal(t, want, tree.DumpList())
}

func TestDumpListEmpty(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])
	assert.Empty(t, tree.DumpList())
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	tree := new(Tree[string])
	tree.Insert([]byte("k1"), "v1")
	tree.Insert([]byte("k2"), "v2")

	buf, err := json.Marshal(tree)
	require.NoError(t, err)

	want := `[{"key":"k1","value":"v1"},{"key":"k2","value":"v2"}]`
	assert.JSONEq(t, want, string(buf))
}
