// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

package ipv6

import (
	"github.com/addrwords/addrwords/internal/bits"
	"github.com/addrwords/addrwords/internal/dictionary"
	"github.com/addrwords/addrwords/internal/xerrors"
)

const (
	tagBits      = 4
	portBits     = 16
	headerBits   = tagBits + portBits
	groupBits    = 48
	wordsPerGrp  = 3
	minGroups    = 2 // spec: IPv6 word counts are 6, 9, or 12 -- never 3.
	maxGroups    = 4
	bytesPerGrp  = groupBits / 8
	headerBytes  = 3 // ceil(headerBits/8), the header always occupies the first 3 bytes
)

// EncodeGroups builds the bit-stream `category_tag || port || payload`,
// pads it to the next multiple of 48 bits (minimum 2 groups, per spec's
// {6,9,12}-word contract), and serializes it into 3-word groups.
func EncodeGroups(dict *dictionary.Dictionary, rec Record, port uint16) ([]string, error) {
	totalBits := headerBits + len(rec.Payload)*8
	groups := (totalBits + groupBits - 1) / groupBits
	if groups < minGroups {
		groups = minGroups
	}
	if groups > maxGroups {
		return nil, xerrors.ErrMalformedPayload
	}

	buf := make([]byte, groups*bytesPerGrp)
	buf[0] = byte(rec.Category)<<4 | byte(port>>12)
	buf[1] = byte(port >> 4)
	buf[2] = byte(port<<4) & 0xF0

	if len(rec.Payload) > 0 {
		if err := bits.Insert(buf, headerBits, rec.Payload); err != nil {
			return nil, err
		}
	}

	words := make([]string, 0, groups*wordsPerGrp)
	for g := 0; g < groups; g++ {
		chunk := buf[g*bytesPerGrp : (g+1)*bytesPerGrp]
		for w := 0; w < wordsPerGrp; w++ {
			idx := uint16(chunk[w*2])<<8 | uint16(chunk[w*2+1])
			words = append(words, dict.Get(idx))
		}
	}
	return words, nil
}

// DecodeGroups reverses EncodeGroups: a 6/9/12-word sequence back into a
// Record and port. The category-specific payload length is resolved from
// the category tag and, for variable-length categories, the payload's own
// markers.
func DecodeGroups(dict *dictionary.Dictionary, words []string) (Record, uint16, error) {
	if len(words) == 0 || len(words)%wordsPerGrp != 0 {
		return Record{}, 0, &xerrors.WrongWordCountError{Got: len(words)}
	}
	groups := len(words) / wordsPerGrp
	if groups < minGroups || groups > maxGroups {
		return Record{}, 0, &xerrors.WrongWordCountError{Got: len(words)}
	}

	buf := make([]byte, groups*bytesPerGrp)
	for i, w := range words {
		idx, ok := dict.Find(w)
		if !ok {
			return Record{}, 0, &xerrors.UnknownWordError{Word: w}
		}
		buf[i*2] = byte(idx >> 8)
		buf[i*2+1] = byte(idx)
	}

	cat := Category(buf[0] >> 4)
	if cat > GlobalUnicast {
		return Record{}, 0, xerrors.ErrMalformedPayload
	}
	port := uint16(buf[0]&0x0F)<<12 | uint16(buf[1])<<4 | uint16(buf[2]>>4)

	availableBits := groups*groupBits - headerBits
	maxPayloadBytes := availableBits / 8
	rawPayload, err := bits.Extract(buf, headerBits, uint(maxPayloadBytes))
	if err != nil {
		return Record{}, 0, err
	}

	payload, err := trimPayload(cat, rawPayload)
	if err != nil {
		return Record{}, 0, err
	}
	return Record{Category: cat, Payload: payload}, port, nil
}

// trimPayload returns the prefix of raw that is the category's actual
// payload, discarding the zero padding appended to reach a 48-bit
// boundary. Fixed-width categories just slice; variable-width categories
// (Documentation, Multicast) parse their own length/marker fields.
func trimPayload(cat Category, raw []byte) ([]byte, error) {
	switch cat {
	case Unspecified, Loopback:
		return nil, nil
	case IPv4Mapped:
		if len(raw) < 4 {
			return nil, xerrors.ErrMalformedPayload
		}
		return raw[:4], nil
	case LinkLocal, UniqueLocal:
		if len(raw) < 8 {
			return nil, xerrors.ErrMalformedPayload
		}
		return raw[:8], nil
	case GlobalUnicast:
		if len(raw) < 16 {
			return nil, xerrors.ErrMalformedPayload
		}
		return raw[:16], nil
	case Documentation:
		if len(raw) < 5 {
			return nil, xerrors.ErrMalformedPayload
		}
		_, consumed, err := decodeInterfaceID(raw[4:])
		if err != nil {
			return nil, err
		}
		return raw[:4+consumed], nil
	case Multicast:
		if len(raw) < 2 {
			return nil, xerrors.ErrMalformedPayload
		}
		length := int(raw[1])
		if length < 0 || length > 14 || len(raw) < 2+length {
			return nil, xerrors.ErrMalformedPayload
		}
		return raw[:2+length], nil
	default:
		return nil, xerrors.ErrMalformedPayload
	}
}
