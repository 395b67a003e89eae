// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

// Package addrwords encodes IPv4 and IPv6 socket addresses as short,
// human-memorable sequences of dictionary words, and decodes them back
// into the original address.
//
// IPv4 addresses always encode to four words. IPv6 addresses encode to
// six, nine, or twelve words depending on how much of the address survives
// a category-aware compression: the more structure a category implies
// (loopback, link-local, documentation, ...), the fewer bits need to be
// carried explicitly.
//
// Encoding is a pure, deterministic function of its input and a fixed,
// immutable 65536-word dictionary; there is no network I/O, no
// persistence, and no confidentiality guarantee. See internal/feistel for
// the diffusion step applied to IPv4 addresses and internal/ipv6 for the
// IPv6 classification and compression scheme.
package addrwords
