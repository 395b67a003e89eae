// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

// Command gendictionary builds the 65536-line word list
// internal/dictionary/words.txt embeds at compile time.
//
// It is a build-time curation tool, grounded on
// original_source/src/bin/create_*_dictionary.rs, and is never imported or
// invoked by the runtime codec (package dictionary only consumes the
// resulting text file via go:embed). Running it is a one-time, manual step
// when the word list needs to be regenerated; it is not part of `go
// build`/`go test` for the rest of the module.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/addrwords/addrwords/internal/dictionary"
)

// The dictionary is built as a Cartesian product of four 16-entry
// components (16^4 == 65536), which guarantees uniqueness by construction
// instead of needing a dedup pass over a scraped word corpus.
var (
	onsets = []string{"b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n", "p", "r", "s", "t", "w"}
	codas  = []string{"b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n", "p", "r", "s", "t", "z"}
	nuclei = buildNuclei()
)

// buildNuclei produces 16 short vowel syllables (4 vowels x 4 patterns),
// used for both the first and second nucleus slot.
func buildNuclei() []string {
	vowels := []string{"a", "e", "i", "o"}
	patterns := []string{"%s", "%s%s", "%sn", "%sr"}
	out := make([]string, 0, len(vowels)*len(patterns))
	for _, v := range vowels {
		for _, p := range patterns {
			if p == "%s%s" {
				out = append(out, v+v)
			} else {
				out = append(out, fmt.Sprintf(p, v))
			}
		}
	}
	return out
}

func generate() []string {
	words := make([]string, 0, dictionary.Size)
	for _, a := range onsets {
		for _, b := range nuclei {
			for _, c := range codas {
				for _, d := range nuclei {
					words = append(words, a+b+c+d)
				}
			}
		}
	}
	return words
}

func main() {
	out := pflag.StringP("out", "o", "internal/dictionary/words.txt", "output path for the generated word list")
	pflag.Parse()

	words := generate()
	if len(words) != dictionary.Size {
		fmt.Fprintf(os.Stderr, "gendictionary: generated %d words, want %d\n", len(words), dictionary.Size)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gendictionary: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "gendictionary: %v\n", err)
		os.Exit(1)
	}
}
