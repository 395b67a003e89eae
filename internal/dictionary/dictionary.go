// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

// Package dictionary holds the immutable, process-wide 65536-word
// dictionary used to turn 16-bit indices into words and back.
//
// The word list is embedded into the binary at build time (one word per
// line, index == line number) and loaded at most once, lazily, behind a
// sync.Once guard. After initialization it is never mutated, so any number
// of goroutines may call Get/Find concurrently without synchronization.
package dictionary

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/addrwords/addrwords/internal/xerrors"
)

// Size is the fixed number of entries a valid dictionary must contain.
const Size = 65536

//go:embed words.txt
var embeddedWords string

// Dictionary is an immutable, ordered, bidirectional mapping between
// 16-bit indices and lowercase words.
type Dictionary struct {
	words   []string
	indices map[string]uint16
}

var (
	once    sync.Once
	global  *Dictionary
	initErr error
)

// Default returns the process-wide dictionary, building it from the
// embedded word list on first use. Initialization is at-most-once even
// under concurrent first access; a malformed embedded list is a fatal,
// build-time bug and Default panics rather than returning a usable but
// broken dictionary.
func Default() *Dictionary {
	once.Do(func() {
		global, initErr = New(embeddedWords)
		if initErr != nil {
			panic(xerrors.ErrDictionaryInit)
		}
	})
	return global
}

// New builds a Dictionary from newline-separated text, validating length
// and uniqueness. It is exported so candidate word lists can be validated
// without going through the embedded, process-wide singleton; the
// package's tests use it that way.
func New(text string) (*Dictionary, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != Size {
		return nil, xerrors.ErrDictionaryInit
	}

	d := &Dictionary{
		words:   make([]string, Size),
		indices: make(map[string]uint16, Size),
	}
	for i, w := range lines {
		if w == "" {
			return nil, xerrors.ErrDictionaryInit
		}
		lower := strings.ToLower(w)
		if _, dup := d.indices[lower]; dup {
			return nil, xerrors.ErrDictionaryInit
		}
		d.words[i] = w
		d.indices[lower] = uint16(i)
	}
	return d, nil
}

// Len always reports Size.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Get returns the word at index, which must be < Size (the caller controls
// this by construction: indices always come from a 16-bit value).
func (d *Dictionary) Get(index uint16) string {
	return d.words[index]
}

// Find looks up word case-insensitively, returning its index and true if
// present, or (0, false) otherwise.
func (d *Dictionary) Find(word string) (uint16, bool) {
	idx, ok := d.indices[strings.ToLower(strings.TrimSpace(word))]
	return idx, ok
}
