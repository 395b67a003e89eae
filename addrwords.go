// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

package addrwords

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/addrwords/addrwords/internal/dictionary"
	"github.com/addrwords/addrwords/internal/feistel"
	"github.com/addrwords/addrwords/internal/ipv4"
	"github.com/addrwords/addrwords/internal/ipv6"
	"github.com/addrwords/addrwords/internal/xerrors"
)

// Re-export the error taxonomy (sentinels and typed errors) so callers can
// errors.Is/errors.As against it without importing the internal package
// directly.
var (
	ErrInvalidAddress     = xerrors.ErrInvalidAddress
	ErrInvalidPort        = xerrors.ErrInvalidPort
	ErrInvalidIPv6        = xerrors.ErrInvalidIPv6
	ErrWrongWordCount     = xerrors.ErrWrongWordCount
	ErrMalformedPayload   = xerrors.ErrMalformedPayload
	ErrMalformedSeparator = xerrors.ErrMalformedSeparator
	ErrDictionaryInit     = xerrors.ErrDictionaryInit
)

type (
	UnknownWordError    = xerrors.UnknownWordError
	WrongWordCountError = xerrors.WrongWordCountError
)

// Version identifies the wire format generation: the Feistel round
// constants and the IPv6 category/bit layout. It does not change across
// releases that remain decode-compatible with previously emitted words.
const Version = feistel.Version

// separators is the permissive set the format detector accepts on decode;
// case and separator choice carry no payload bits (spec section 4.6).
const separators = ".-_+"

// Encode turns "A.B.C.D:port" or "[ipv6]:port" into a separator-joined
// word string: four lowercase, dot-joined words for IPv4, or six, nine,
// or twelve Title-Case, dash-joined words for IPv6.
func Encode(address string) (string, error) {
	ap, err := parseAddress(address)
	if err != nil {
		return "", err
	}
	dict := dictionary.Default()

	if ap.Addr().Is4() {
		words := ipv4.Encode(dict, ap)
		return strings.Join([]string{
			strings.ToLower(words[0]),
			strings.ToLower(words[1]),
			strings.ToLower(words[2]),
			strings.ToLower(words[3]),
		}, "."), nil
	}

	rec := ipv6.Compress(ap.Addr())
	words, err := ipv6.EncodeGroups(dict, rec, ap.Port())
	if err != nil {
		return "", err
	}
	return joinIPv6(words), nil
}

// Decode reverses Encode: it accepts any of the four supported word
// counts, in either separator style and case, and returns the canonical
// address string ("ip:port" for IPv4, "[ip]:port" for IPv6).
func Decode(words string) (string, error) {
	segs := splitWords(words)
	dict := dictionary.Default()

	switch len(segs) {
	case ipv4.WordCount:
		var arr [ipv4.WordCount]string
		copy(arr[:], segs)
		ap, err := ipv4.Decode(dict, arr)
		if err != nil {
			return "", err
		}
		return ap.String(), nil

	case 6, 9, 12:
		rec, port, err := ipv6.DecodeGroups(dict, segs)
		if err != nil {
			return "", err
		}
		addr, err := rec.Reconstruct()
		if err != nil {
			return "", err
		}
		return netip.AddrPortFrom(addr, port).String(), nil

	default:
		return "", &xerrors.WrongWordCountError{Got: len(segs)}
	}
}

// Info is the result of Analyze: diagnostic metadata about an address
// without the caller having to re-derive it from Encode's output.
type Info struct {
	Family    string // "ipv4" or "ipv6"
	WordCount int
	Category  string // IPv6 structural category name; empty for IPv4
}

// Analyze reports the address family, the word count Encode would
// produce, and (for IPv6) the structural category, without requiring the
// caller to parse Encode's output back apart.
func Analyze(address string) (Info, error) {
	ap, err := parseAddress(address)
	if err != nil {
		return Info{}, err
	}
	if ap.Addr().Is4() {
		return Info{Family: "ipv4", WordCount: ipv4.WordCount}, nil
	}

	cat := ipv6.Classify(ap.Addr())
	rec := ipv6.Compress(ap.Addr())
	dict := dictionary.Default()
	words, err := ipv6.EncodeGroups(dict, rec, ap.Port())
	if err != nil {
		return Info{}, err
	}
	return Info{Family: "ipv6", WordCount: len(words), Category: cat.String()}, nil
}

// parseAddress parses "A.B.C.D:port" or "[ipv6]:port", distinguishing an
// unparseable address from an invalid port so callers get the right error
// from the spec's taxonomy.
func parseAddress(s string) (netip.AddrPort, error) {
	s = strings.TrimSpace(s)

	var hostPart, portPart string
	bracketed := strings.HasPrefix(s, "[")
	if bracketed {
		idx := strings.Index(s, "]:")
		if idx < 0 {
			return netip.AddrPort{}, xerrors.ErrInvalidIPv6
		}
		hostPart = s[1:idx]
		portPart = s[idx+2:]
	} else {
		idx := strings.LastIndex(s, ":")
		if idx < 0 {
			return netip.AddrPort{}, xerrors.ErrInvalidAddress
		}
		hostPart = s[:idx]
		portPart = s[idx+1:]
	}

	addr, err := netip.ParseAddr(hostPart)
	if err != nil {
		if bracketed {
			return netip.AddrPort{}, xerrors.ErrInvalidIPv6
		}
		return netip.AddrPort{}, xerrors.ErrInvalidAddress
	}
	if bracketed && !addr.Is6() {
		return netip.AddrPort{}, xerrors.ErrInvalidIPv6
	}
	if !bracketed && !addr.Is4() {
		// Non-bracketed input is only unambiguous for IPv4; an IPv6
		// literal must use "[ipv6]:port" (spec section 6).
		return netip.AddrPort{}, xerrors.ErrInvalidAddress
	}
	port, err := strconv.ParseUint(portPart, 10, 16)
	if err != nil {
		return netip.AddrPort{}, xerrors.ErrInvalidPort
	}
	return netip.AddrPortFrom(addr, uint16(port)), nil
}

// splitWords normalizes a word string (trims whitespace, lowercases, and
// splits on any of the permissive separators) into its segments.
func splitWords(s string) []string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
}

// joinIPv6 Title-Cases and dash-joins words, the visual convention that
// distinguishes IPv6 output from IPv4's lowercase, dot-joined form.
func joinIPv6(words []string) string {
	titled := make([]string, len(words))
	for i, w := range words {
		titled[i] = titleCase(w)
	}
	return strings.Join(titled, "-")
}

func titleCase(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	return fmt.Sprintf("%s%s", strings.ToUpper(string(r[0])), string(r[1:]))
}
