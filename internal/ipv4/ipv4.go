// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

// Package ipv4 implements the IPv4 word codec: it packs a 32-bit address
// and 16-bit port into 48 bits, runs them through the Feistel permutation,
// and splits the result into four 16-bit dictionary indices.
//
// A 48-bit value only has room for three independent 16-bit windows, so
// the fourth word cannot be another contiguous slice of the same 48 bits
// without being fixed (in fact dead) for every input. Instead, word 0
// carries a 16-bit checksum of the other three, giving it real entropy
// derived from the whole payload and making a typo in any one of the four
// words detectable on decode rather than silently ignored or, worse,
// silently decoded to a different address.
//
//	0                                              47
//	+------------------------+--------------------+
//	|     IPv4 address       |        port        |
//	+------------------------+--------------------+
//	        32 bits                 16 bits
package ipv4

import (
	"net/netip"

	"github.com/addrwords/addrwords/internal/dictionary"
	"github.com/addrwords/addrwords/internal/feistel"
	"github.com/addrwords/addrwords/internal/xerrors"
)

// WordCount is the number of words an IPv4:port address always encodes to.
const WordCount = 4

// Encode packs addr into 4 dictionary words: a checksum word followed by
// the three 16-bit windows of the 48-bit Feistel output.
func Encode(dict *dictionary.Dictionary, addr netip.AddrPort) [WordCount]string {
	p := pack(addr)
	c := feistel.Encrypt(p)
	w1, w2, w3 := splitPayload(c)

	var words [WordCount]string
	words[0] = dict.Get(checksum(w1, w2, w3))
	words[1] = dict.Get(w1)
	words[2] = dict.Get(w2)
	words[3] = dict.Get(w3)
	return words
}

// Decode reverses Encode: four dictionary words back to an IPv4:port.
// A mismatched checksum word (a typo, or a word string assembled from the
// wrong address) is rejected rather than silently decoded.
func Decode(dict *dictionary.Dictionary, words [WordCount]string) (netip.AddrPort, error) {
	var idx [WordCount]uint16
	for i, w := range words {
		got, ok := dict.Find(w)
		if !ok {
			return netip.AddrPort{}, &xerrors.UnknownWordError{Word: w}
		}
		idx[i] = got
	}

	if idx[0] != checksum(idx[1], idx[2], idx[3]) {
		return netip.AddrPort{}, xerrors.ErrMalformedPayload
	}

	c := joinPayload(idx[1], idx[2], idx[3])
	p := feistel.Decrypt(c)
	return unpack(p), nil
}

// splitPayload carves the 48-bit Feistel output into its three independent
// 16-bit windows.
func splitPayload(c uint64) (w1, w2, w3 uint16) {
	return uint16(c >> 32), uint16(c >> 16), uint16(c)
}

// joinPayload reverses splitPayload.
func joinPayload(w1, w2, w3 uint16) uint64 {
	return uint64(w1)<<32 | uint64(w2)<<16 | uint64(w3)
}

// checksum mixes the three payload words into a 16-bit value via FNV-1a,
// the same non-cryptographic hash original_source's encoder uses for
// consistent byte generation. It gives word 0 entropy that depends on the
// entire 48-bit payload instead of leaving it fixed.
func checksum(w1, w2, w3 uint16) uint16 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	h := uint32(offset32)
	for _, w := range [3]uint16{w1, w2, w3} {
		h = (h ^ uint32(w>>8)) * prime32
		h = (h ^ uint32(w&0xFF)) * prime32
	}
	return uint16(h ^ (h >> 16))
}

// pack forms P = (ip << 16) | port, the 48-bit Feistel input.
func pack(addr netip.AddrPort) uint64 {
	ip4 := addr.Addr().As4()
	ip := uint64(ip4[0])<<24 | uint64(ip4[1])<<16 | uint64(ip4[2])<<8 | uint64(ip4[3])
	return ip<<16 | uint64(addr.Port())
}

// unpack reverses pack.
func unpack(p uint64) netip.AddrPort {
	port := uint16(p & 0xFFFF)
	ip := uint32(p >> 16)
	addr := netip.AddrFrom4([4]byte{
		byte(ip >> 24), byte(ip >> 16), byte(ip >> 8), byte(ip),
	})
	return netip.AddrPortFrom(addr, port)
}
