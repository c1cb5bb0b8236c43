// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

// Package art provides an in-memory, ordered, byte-string-keyed
// Adaptive Radix Tree (ART).
//
// ART keeps memory proportional to the actual fan-out by switching every
// inner node between four encodings with capacities 4, 16, 48 and 256.
// Chains of single-child nodes are collapsed by path compression with a
// bounded, optimistic prefix cache; lookups are confirmed with a full key
// comparison at the leaf.
//
//   - Tree[V].Insert, Get, Delete, Len for point operations
//   - Tree[V].All for ordered iteration, Min and Max for the boundary keys
//   - Tree[V].String, Fprint and MarshalJSON for diagnostics and dumps
//
// The zero value of Tree is ready to use. A Tree is not safe for
// concurrent use; callers requiring concurrency must serialize externally.
package art
