// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

// Package ipv6 classifies IPv6 addresses into a small, fixed set of
// structural categories and compresses each into the bits that category
// cannot itself imply, then serializes the result into three-word groups.
package ipv6

import "net/netip"

// Category is the closed set of structural categories an IPv6 address can
// be assigned to. Classification never fails: every 128-bit address maps
// to exactly one category, with GlobalUnicast as the catch-all.
type Category uint8

const (
	Unspecified Category = iota
	Loopback
	IPv4Mapped
	LinkLocal
	UniqueLocal
	Documentation
	Multicast
	GlobalUnicast
)

// categoryCount is the number of defined categories; it must fit in the
// 4-bit category tag the group codec embeds in the wire format.
const categoryCount = 8

func (c Category) String() string {
	switch c {
	case Unspecified:
		return "unspecified"
	case Loopback:
		return "loopback"
	case IPv4Mapped:
		return "ipv4-mapped"
	case LinkLocal:
		return "link-local"
	case UniqueLocal:
		return "unique-local"
	case Documentation:
		return "documentation"
	case Multicast:
		return "multicast"
	case GlobalUnicast:
		return "global-unicast"
	default:
		return "unknown"
	}
}

var documentationPrefix = netip.MustParsePrefix("2001:db8::/32")

// Classify assigns addr to the first matching category, in the order
// required by spec: Unspecified and Loopback must be checked before the
// broader prefix-based categories, and GlobalUnicast is the catch-all.
func Classify(addr netip.Addr) Category {
	switch {
	case addr == netip.IPv6Unspecified():
		return Unspecified
	case addr == netip.IPv6Loopback():
		return Loopback
	case addr.Is4In6():
		return IPv4Mapped
	case addr.IsLinkLocalUnicast():
		return LinkLocal
	case addr.IsPrivate():
		// net/netip's IsPrivate implements RFC 4193 for IPv6: fc00::/7.
		return UniqueLocal
	case documentationPrefix.Contains(addr):
		return Documentation
	case addr.IsMulticast():
		return Multicast
	default:
		return GlobalUnicast
	}
}
