// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

// Package bits provides bit-offset-addressable extraction and insertion
// over byte slices. It backs the IPv6 group codec's bitstream packing
// (spec: category tag, port, and payload bits concatenated and padded to
// 48-bit word-group boundaries), where fields rarely start or end on a
// byte boundary.
package bits

import "github.com/addrwords/addrwords/internal/xerrors"

// Extract returns the length-byte window of src starting startBit bits from
// the left, left-justified within the returned slice. The window must lie
// entirely within src.
func Extract(src []byte, startBit uint, length uint) ([]byte, error) {
	if uint(len(src)) < length {
		return nil, xerrors.ErrMalformedPayload
	}
	if startBit+length*8 > 8*uint(len(src)) {
		return nil, xerrors.ErrMalformedPayload
	}
	startByte := startBit / 8
	offset := startBit % 8
	ret := make([]byte, length)
	if offset == 0 {
		copy(ret, src[startByte:startByte+length])
		return ret, nil
	}

	for i, b := range src[startByte : startByte+length] {
		ret[i] = b << offset
	}
	for i, b := range src[startByte+1 : startByte+length+1] {
		ret[i] |= b >> (8 - offset)
	}
	return ret, nil
}

// Insert writes appendThis into dst such that its first bit lands at
// endBit (bits from the left), i.e. right after the first endBit bits of
// dst, OR-ing into whatever is already in dst. Every bit of dst from
// endBit on must already be zero; Insert never clears bits.
func Insert(dst []byte, endBit uint, appendThis []byte) error {
	endByte := endBit / 8
	offset := endBit % 8
	hasOffset := 0
	if offset > 0 {
		hasOffset = 1
	}
	if hasOffset+int(endByte)+len(appendThis) > len(dst) {
		return xerrors.ErrMalformedPayload
	}
	if offset == 0 {
		copy(dst[endByte:], appendThis)
		return nil
	}
	for i, b := range appendThis {
		dst[int(endByte)+i] |= b >> offset
	}
	for i, b := range appendThis {
		dst[int(endByte)+hasOffset+i] |= b << (8 - offset)
	}
	return nil
}
