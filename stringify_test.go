// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEmpty(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])
	assert.Equal(t, "", tree.String())
}

func TestStringLeafRoot(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])
	tree.Insert([]byte("solo"), 1)

	want := "▼\n" +
		`└─ "solo" (1)` + "\n"

	assert.Equal(t, want, tree.String())
}

func TestString(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])
	tree.Insert([]byte("test"), 1)
	tree.Insert([]byte("team"), 2)
	tree.Insert([]byte("testify"), 3)

	want := "▼\n" +
		`└─ "te"` + "\n" +
		`   ├─ "team" (2)` + "\n" +
		`   └─ "test"` + "\n" +
		`      ├─ "test" (1)` + "\n" +
		`      └─ "testify" (3)` + "\n"

	assert.Equal(t, want, tree.String())
}

func TestStringDeepPrefix(t *testing.T) {
	t.Parallel()

	// the compressed path exceeds the cache, the label bytes must still
	// be complete because they come from a leaf
	stem := make([]byte, maxPrefixCache+8)
	for i := range stem {
		stem[i] = 'a'
	}

	tree := new(Tree[int])
	tree.Insert(append(append([]byte(nil), stem...), 'x'), 1)
	tree.Insert(append(append([]byte(nil), stem...), 'y'), 2)

	want := "▼\n" +
		`└─ "` + string(stem) + `"` + "\n" +
		`   ├─ "` + string(stem) + `x" (1)` + "\n" +
		`   └─ "` + string(stem) + `y" (2)` + "\n"

	assert.Equal(t, want, tree.String())
}

func TestMarshalText(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])
	tree.Insert([]byte("a"), 1)
	tree.Insert([]byte("b"), 2)

	text, err := tree.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, tree.String(), string(text))
}
