// Copyright (c) 2025 the artree authors
// SPDX-License-Identifier: MIT

// artload is a small probe program for the art package: it fills a
// tree from a key file or with random keys, verifies the round trip
// and reports timings.
package main

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/artree/art"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "artload",
	Short: "Load and probe an adaptive radix tree",
}

var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Insert every line of file as a key, then verify lookups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open key file: %w", err)
		}
		defer f.Close()

		var keys [][]byte
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			keys = append(keys, append([]byte(nil), scanner.Bytes()...))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read key file: %w", err)
		}

		probe(keys)
		return nil
	},
}

var (
	numKeys int
	keyLen  int
	seed    uint64
)

var randCmd = &cobra.Command{
	Use:   "rand",
	Short: "Insert random keys, then verify lookups",
	RunE: func(cmd *cobra.Command, args []string) error {
		prng := rand.New(rand.NewPCG(seed, seed))

		keys := make([][]byte, numKeys)
		for i := range keys {
			key := make([]byte, 1+prng.IntN(keyLen))
			for j := range key {
				key[j] = byte(prng.Uint32())
			}
			keys[i] = key
		}

		probe(keys)
		return nil
	},
}

// probe fills a tree with keys, verifies every key and deletes
// everything again, logging the timings per phase.
func probe(keys [][]byte) {
	tree := new(art.Tree[int])

	start := time.Now()
	inserted := 0
	for i, key := range keys {
		if tree.Insert(key, i) {
			inserted++
		}
	}
	log.Info().
		Int("keys", len(keys)).
		Int("inserted", inserted).
		Int("len", tree.Len()).
		Dur("took", time.Since(start)).
		Msg("insert")

	start = time.Now()
	misses := 0
	for _, key := range keys {
		if _, ok := tree.Get(key); !ok {
			misses++
		}
	}
	log.Info().
		Int("misses", misses).
		Dur("took", time.Since(start)).
		Msg("verify")

	if minKey, _, ok := tree.Min(); ok {
		maxKey, _, _ := tree.Max()
		log.Info().
			Str("min", fmt.Sprintf("%q", minKey)).
			Str("max", fmt.Sprintf("%q", maxKey)).
			Msg("bounds")
	}

	start = time.Now()
	removed := 0
	for _, key := range keys {
		if tree.Delete(key) {
			removed++
		}
	}
	log.Info().
		Int("removed", removed).
		Int("len", tree.Len()).
		Dur("took", time.Since(start)).
		Msg("delete")

	if misses > 0 || tree.Len() != 0 {
		log.Fatal().Msg("tree is inconsistent")
	}
}

func init() {
	randCmd.Flags().IntVarP(&numKeys, "num", "n", 100_000, "number of random keys")
	randCmd.Flags().IntVarP(&keyLen, "len", "l", 32, "maximum key length")
	randCmd.Flags().Uint64Var(&seed, "seed", 42, "prng seed")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(randCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("artload failed")
		os.Exit(1)
	}
}
