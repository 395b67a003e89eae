// Copyright 2026 The addrwords Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.
// SPDX-License-Identifier: MIT

package addrwords

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_IPv4Scenarios(t *testing.T) {
	cases := []string{
		"192.168.1.1:443",
		"0.0.0.0:0",
		"255.255.255.255:65535",
	}
	for _, addr := range cases {
		encoded, err := Encode(addr)
		require.NoError(t, err)

		words := strings.Split(encoded, ".")
		assert.Len(t, words, 4)
		for _, w := range words {
			assert.Equal(t, strings.ToLower(w), w)
		}

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, addr, decoded)
	}
}

func TestEncodeDecode_IPv6Scenarios(t *testing.T) {
	cases := []struct {
		addr           string
		wantWordCounts []int
	}{
		{"[::1]:80", []int{6}},
		{"[fe80::1234:5678:9abc:def0]:22", []int{6, 9}},
		{"[2001:db8::1]:443", []int{6, 9}},
	}
	for _, c := range cases {
		encoded, err := Encode(c.addr)
		require.NoError(t, err)

		groups := strings.Split(encoded, "-")
		assert.Contains(t, c.wantWordCounts, len(groups))
		for _, w := range groups {
			assert.NotEqual(t, strings.ToLower(w), w, "expected Title-Case word, got %q", w)
		}

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, c.addr, decoded)
	}
}

func TestDecode_WrongWordCount(t *testing.T) {
	// Pull twelve real words from an encoding, then deliberately use 3, 5,
	// and 7 of them to trigger the word-count error.
	encoded, err := Encode("[2606:4700:4700::1111]:53")
	require.NoError(t, err)
	words := strings.Split(encoded, "-")

	for _, n := range []int{3, 5, 7} {
		if n > len(words) {
			continue
		}
		_, err := Decode(strings.Join(words[:n], "-"))
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrWrongWordCount)
	}
}

func TestDecode_UnknownWord(t *testing.T) {
	encoded, err := Encode("192.168.1.1:443")
	require.NoError(t, err)
	words := strings.Split(encoded, ".")
	words[0] = "zzzznotaword"
	_, err = Decode(strings.Join(words, "."))
	assert.Error(t, err)
}

func TestDecode_CaseAndSeparatorIdempotence(t *testing.T) {
	encoded, err := Encode("10.0.0.1:22")
	require.NoError(t, err)

	upper := strings.ToUpper(encoded)
	decodedUpper, err := Decode(upper)
	require.NoError(t, err)

	decodedLower, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, decodedLower, decodedUpper)

	mixedSep := strings.ReplaceAll(encoded, ".", "_")
	decodedMixed, err := Decode(mixedSep)
	require.NoError(t, err)
	assert.Equal(t, decodedLower, decodedMixed)
}

func TestEncode_InvalidAddress(t *testing.T) {
	_, err := Encode("not-an-address")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestEncode_InvalidIPv6(t *testing.T) {
	cases := []string{
		"[gggg::1]:80",
		"[2001:db8::1",
		"[1.2.3.4]:80",
	}
	for _, addr := range cases {
		_, err := Encode(addr)
		assert.Error(t, err)
		assert.ErrorIsf(t, err, ErrInvalidIPv6, "Encode(%q)", addr)
	}
}

func TestEncode_InvalidPort(t *testing.T) {
	_, err := Encode("192.168.1.1:99999")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestEncode_Determinism(t *testing.T) {
	a, err := Encode("172.16.0.5:8080")
	require.NoError(t, err)
	b, err := Encode("172.16.0.5:8080")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncode_Injectivity_RandomIPv4(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	seen := make(map[string]string)
	for i := 0; i < 3000; i++ {
		addr := randomIPv4Address(r)
		out, err := Encode(addr)
		require.NoError(t, err)
		if prev, ok := seen[out]; ok && prev != addr {
			t.Fatalf("collision: Encode(%s) == Encode(%s) == %s", prev, addr, out)
		}
		seen[out] = addr
	}
}

func randomIPv4Address(r *rand.Rand) string {
	return joinIPv4Octets(r) + ":" + strconv.Itoa(r.Intn(65536))
}

func joinIPv4Octets(r *rand.Rand) string {
	o := func() string { return strconv.Itoa(r.Intn(256)) }
	return o() + "." + o() + "." + o() + "." + o()
}

func TestAnalyze(t *testing.T) {
	info, err := Analyze("192.168.1.1:443")
	require.NoError(t, err)
	assert.Equal(t, "ipv4", info.Family)
	assert.Equal(t, 4, info.WordCount)
	assert.Empty(t, info.Category)

	info6, err := Analyze("[2001:db8::1]:443")
	require.NoError(t, err)
	assert.Equal(t, "ipv6", info6.Family)
	assert.Contains(t, []int{6, 9, 12}, info6.WordCount)
	assert.Equal(t, "documentation", info6.Category)
}

func TestAnalyze_InvalidAddress(t *testing.T) {
	_, err := Analyze("garbage")
	assert.True(t, errors.Is(err, ErrInvalidAddress))
}
