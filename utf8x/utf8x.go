// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf8x implements a strict UTF-8 codec. Decoding rejects every
// ill-formed sequence outright instead of substituting a replacement
// character; encoding accepts surrogate codepoints for compatibility
// with callers that process unpaired surrogates deliberately.
package utf8x

import "errors"

// ErrInvalidUTF8 is returned by Decode for any ill-formed byte sequence,
// including truncated ones.
var ErrInvalidUTF8 = errors.New("utf8x: invalid UTF-8 sequence")

// MaxRune is the maximum valid Unicode codepoint.
const MaxRune = 0x10FFFF

const (
	locb = 0x80 // lowest continuation byte
	hicb = 0xBF // highest continuation byte
)

// The first-byte table encodes, for each possible lead byte, the total
// sequence size in the low three bits and the accept-range index for the
// first continuation byte in the high nibble.
const (
	xx = 0xF1 // invalid
	as = 0xF0 // ASCII
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3
	s5 = 0x34 // accept 3, size 4
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4
)

var first = [256]uint8{
	//   1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

type acceptRange struct {
	lo uint8 // lowest value for first continuation byte
	hi uint8 // highest value for first continuation byte
}

var acceptRanges = [...]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb}, // 0xE0: exclude overlong
	2: {locb, 0x9F}, // 0xED: exclude surrogates
	3: {0x90, hicb}, // 0xF0: exclude overlong
	4: {locb, 0x8F}, // 0xF4: exclude > U+10FFFF
}

// Decode decodes the first codepoint in b and returns it with the number
// of bytes consumed. An empty slice yields (-1, 0, nil). Any ill-formed
// sequence, truncated input included, yields ErrInvalidUTF8 without
// consuming bytes.
func Decode(b []byte) (r rune, size int, err error) {
	if len(b) == 0 {
		return -1, 0, nil
	}
	c := b[0]
	if c < 0x80 {
		return rune(c), 1, nil
	}
	x := first[c]
	if x == xx {
		return 0, 0, ErrInvalidUTF8
	}
	size = int(x & 7)
	if len(b) < size {
		return 0, 0, ErrInvalidUTF8
	}
	accept := acceptRanges[x>>4]
	if c1 := b[1]; c1 < accept.lo || c1 > accept.hi {
		return 0, 0, ErrInvalidUTF8
	}
	if size == 2 {
		return rune(c&0x1F)<<6 | rune(b[1]&0x3F), 2, nil
	}
	if c2 := b[2]; c2 < locb || c2 > hicb {
		return 0, 0, ErrInvalidUTF8
	}
	if size == 3 {
		return rune(c&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3, nil
	}
	if c3 := b[3]; c3 < locb || c3 > hicb {
		return 0, 0, ErrInvalidUTF8
	}
	return rune(c&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4, nil
}

// DecodeString is Decode for strings. It does not allocate.
func DecodeString(s string) (r rune, size int, err error) {
	if len(s) == 0 {
		return -1, 0, nil
	}
	c := s[0]
	if c < 0x80 {
		return rune(c), 1, nil
	}
	x := first[c]
	if x == xx {
		return 0, 0, ErrInvalidUTF8
	}
	size = int(x & 7)
	if len(s) < size {
		return 0, 0, ErrInvalidUTF8
	}
	accept := acceptRanges[x>>4]
	if c1 := s[1]; c1 < accept.lo || c1 > accept.hi {
		return 0, 0, ErrInvalidUTF8
	}
	if size == 2 {
		return rune(c&0x1F)<<6 | rune(s[1]&0x3F), 2, nil
	}
	if c2 := s[2]; c2 < locb || c2 > hicb {
		return 0, 0, ErrInvalidUTF8
	}
	if size == 3 {
		return rune(c&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), 3, nil
	}
	if c3 := s[3]; c3 < locb || c3 > hicb {
		return 0, 0, ErrInvalidUTF8
	}
	return rune(c&0x07)<<18 | rune(s[1]&0x3F)<<12 | rune(s[2]&0x3F)<<6 | rune(s[3]&0x3F), 4, nil
}

// Encode writes the UTF-8 encoding of r to dst, which must be large
// enough (at most four bytes are written), and returns the number of
// bytes written. Surrogate codepoints are encoded as the three-byte
// sequence their scalar value dictates. Codepoints outside
// [0, MaxRune] write nothing and return 0.
func Encode(dst []byte, r rune) int {
	switch {
	case r < 0 || r > MaxRune:
		return 0
	case r < 0x80:
		dst[0] = byte(r)
		return 1
	case r < 0x800:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r)&0x3F
		return 2
	case r < 0x10000:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte(r>>6)&0x3F
		dst[2] = 0x80 | byte(r)&0x3F
		return 3
	default:
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte(r>>12)&0x3F
		dst[2] = 0x80 | byte(r>>6)&0x3F
		dst[3] = 0x80 | byte(r)&0x3F
		return 4
	}
}

// EncodeCharBound is Encode extended with the character boundary
// sentinel: r == -1 is written as the single byte 0xFF, which cannot
// occur in well-formed UTF-8.
func EncodeCharBound(dst []byte, r rune) int {
	if r == -1 {
		dst[0] = 0xFF
		return 1
	}
	return Encode(dst, r)
}

// RuneLen returns the number of bytes Encode writes for r, or 0 if r is
// not encodable.
func RuneLen(r rune) int {
	switch {
	case r < 0 || r > MaxRune:
		return 0
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	}
	return 4
}

// ValidRune reports whether r is a Unicode scalar value: in range and
// not a surrogate.
func ValidRune(r rune) bool {
	return 0 <= r && r <= MaxRune && !(0xD800 <= r && r < 0xE000)
}
