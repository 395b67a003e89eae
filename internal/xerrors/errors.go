// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

// Package xerrors holds the sentinel and typed errors returned by the
// addrwords codec, per the error taxonomy of the on-the-wire word grammar.
package xerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is returned when an input string is neither
	// "A.B.C.D:port" nor "[IPv6]:port".
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidPort is returned when a port fails to parse or is out of
	// the 0-65535 range.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidIPv6 is returned when an IPv6 literal cannot be parsed.
	ErrInvalidIPv6 = errors.New("invalid ipv6 address")

	// ErrWrongWordCount is returned when a word string's segment count is
	// not one of {4, 6, 9, 12}.
	ErrWrongWordCount = errors.New("wrong word count")

	// ErrMalformedPayload is returned when decoded payload bits are
	// inconsistent with the declared category.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrMalformedSeparator is returned when a word string mixes
	// separator styles in a way the format detector rejects.
	ErrMalformedSeparator = errors.New("malformed separator")

	// ErrDictionaryInit is fatal and only raised during the dictionary's
	// once-guarded initialization.
	ErrDictionaryInit = errors.New("dictionary initialization failed")
)

// UnknownWordError reports that a word segment is absent from the
// dictionary after case/whitespace normalization.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word: %q", e.Word)
}

// Is reports whether target is also an *UnknownWordError, so that callers
// can use errors.Is(err, &xerrors.UnknownWordError{}) without caring about
// the offending word.
func (e *UnknownWordError) Is(target error) bool {
	_, ok := target.(*UnknownWordError)
	return ok
}

// WrongWordCountError reports the actual segment count that violated
// spec's {4, 6, 9, 12} contract.
type WrongWordCountError struct {
	Got int
}

func (e *WrongWordCountError) Error() string {
	return fmt.Sprintf("wrong word count: got %d words, want 4, 6, 9, or 12", e.Got)
}

func (e *WrongWordCountError) Unwrap() error {
	return ErrWrongWordCount
}

func (e *WrongWordCountError) Is(target error) bool {
	return target == ErrWrongWordCount
}
