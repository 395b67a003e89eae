// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

package ipv6

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// losslessCases are addresses within the lossless subset spec's testable
// properties guarantee exact round-trip for: Unspecified, Loopback,
// IPv4Mapped, LinkLocal, Documentation, and GlobalUnicast.
func losslessCases() []string {
	return []string{
		"::",
		"::1",
		"::ffff:1.2.3.4",
		"::ffff:203.0.113.9",
		"fe80::1",
		"fe80::1234:5678:9abc:def0",
		"2001:db8::1",
		"2001:db8::abcd:1",
		"2001:db8:1234:5678::",
		"2606:4700:4700::1111",
		"2001:4860:4860::8888",
	}
}

func TestCompressReconstruct_Lossless(t *testing.T) {
	for _, s := range losslessCases() {
		addr := netip.MustParseAddr(s)
		rec := Compress(addr)
		got, err := rec.Reconstruct()
		require.NoError(t, err)
		assert.Equalf(t, addr, got, "round trip mismatch for %s (category %s)", s, rec.Category)
	}
}

func TestCompress_UniqueLocalIsLossy(t *testing.T) {
	addr := netip.MustParseAddr("fd12:3456:789a:1:dead:beef:cafe:babe")
	rec := Compress(addr)
	require.Equal(t, UniqueLocal, rec.Category)
	got, err := rec.Reconstruct()
	require.NoError(t, err)
	// Interface ID is dropped: only the /64 prefix survives.
	wantBytes := addr.As16()
	gotBytes := got.As16()
	assert.True(t, got.Is6())
	assert.NotEqual(t, addr, got)
	assert.Equal(t, wantBytes[:8], gotBytes[:8])
	assert.Equal(t, [8]byte{}, [8]byte(gotBytes[8:]))
}

func TestCompress_MulticastTruncation(t *testing.T) {
	addr := netip.MustParseAddr("ff02::1")
	rec := Compress(addr)
	require.Equal(t, Multicast, rec.Category)
	got, err := rec.Reconstruct()
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	// A group ID with no trailing zero bytes should still round-trip.
	addr2 := netip.MustParseAddr("ff05::1:ffff:ffff")
	rec2 := Compress(addr2)
	got2, err := rec2.Reconstruct()
	require.NoError(t, err)
	assert.Equal(t, addr2, got2)
}

func TestCompress_DocumentationMarkers(t *testing.T) {
	cases := []string{
		"2001:db8::",          // marker 0: interface ID all zero
		"2001:db8::1",         // marker 1: single low byte
		"2001:db8::ff",        // marker 1: single low byte, value 0xff
		"2001:db8::1:2:3:4",   // marker 2: arbitrary interface ID
		"2001:db8::100",       // high byte nonzero: forces marker 2
	}
	for _, s := range cases {
		addr := netip.MustParseAddr(s)
		rec := Compress(addr)
		require.Equal(t, Documentation, rec.Category)
		got, err := rec.Reconstruct()
		require.NoError(t, err)
		assert.Equalf(t, addr, got, "round trip mismatch for %s", s)
	}
}

func TestReconstruct_MalformedPayload(t *testing.T) {
	bad := []Record{
		{Category: IPv4Mapped, Payload: []byte{1, 2}},
		{Category: LinkLocal, Payload: []byte{1, 2, 3}},
		{Category: UniqueLocal, Payload: nil},
		{Category: GlobalUnicast, Payload: make([]byte, 10)},
		{Category: Documentation, Payload: []byte{1, 2}},
		{Category: Multicast, Payload: []byte{1}},
	}
	for _, r := range bad {
		_, err := r.Reconstruct()
		assert.Error(t, err)
	}
}
