// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

package art

import (
	"bytes"
	"math/rand/v2"
	"sort"
	"testing"
)

func TestAllSorted(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(5, 6))
	tree := new(Tree[int])
	golden := map[string]int{}

	for i, key := range randomKeys(prng, 5_000) {
		tree.Insert(key, i)
		golden[string(key)] = i
	}

	want := make([]string, 0, len(golden))
	for key := range golden {
		want = append(want, key)
	}
	sort.Strings(want)

	var got []string
	for key, val := range tree.All() {
		got = append(got, string(key))

		if want := golden[string(key)]; val != want {
			t.Fatalf("All yielded (%q, %d), want value %d", key, val, want)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("All yielded %d keys, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("All order differs at %d: %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAllEarlyExit(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])
	for i, key := range []string{"a", "ab", "abc", "b", "c"} {
		tree.Insert([]byte(key), i)
	}

	count := 0
	for range tree.All() {
		count++
		if count == 3 {
			break
		}
	}

	if count != 3 {
		t.Fatalf("yielded %d pairs after break, want 3", count)
	}
}

func TestAllEmpty(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])
	for range tree.All() {
		t.Fatal("empty tree yielded a pair")
	}
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])

	if _, _, ok := tree.Min(); ok {
		t.Fatal("Min on empty tree = ok")
	}
	if _, _, ok := tree.Max(); ok {
		t.Fatal("Max on empty tree = ok")
	}

	prng := rand.New(rand.NewPCG(8, 9))
	var want []string
	for i, key := range randomKeys(prng, 1_000) {
		tree.Insert(key, i)
		want = append(want, string(key))
	}
	sort.Strings(want)

	minKey, _, ok := tree.Min()
	if !ok || !bytes.Equal(minKey, []byte(want[0])) {
		t.Fatalf("Min = %q, want %q", minKey, want[0])
	}

	maxKey, _, ok := tree.Max()
	if !ok || !bytes.Equal(maxKey, []byte(want[len(want)-1])) {
		t.Fatalf("Max = %q, want %q", maxKey, want[len(want)-1])
	}
}

func TestMinIsInnerLeaf(t *testing.T) {
	t.Parallel()

	tree := new(Tree[int])
	tree.Insert([]byte("apple"), 1)
	tree.Insert([]byte("app"), 0)
	tree.Insert([]byte("apricot"), 2)

	// "app" ends inside the tree and still sorts first
	minKey, val, ok := tree.Min()
	if !ok || string(minKey) != "app" || val != 0 {
		t.Fatalf("Min = (%q, %d, %v), want (\"app\", 0, true)", minKey, val, ok)
	}

	maxKey, val, ok := tree.Max()
	if !ok || string(maxKey) != "apricot" || val != 2 {
		t.Fatalf("Max = (%q, %d, %v), want (\"apricot\", 2, true)", maxKey, val, ok)
	}
}
