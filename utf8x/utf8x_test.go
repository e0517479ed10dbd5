// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8x

import (
	"bytes"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		in   []byte
		r    rune
		size int
	}{
		{[]byte{0x00}, 0x0000, 1},
		{[]byte{0x41}, 'A', 1},
		{[]byte{0x7F}, 0x007F, 1},
		{[]byte{0xC2, 0x80}, 0x0080, 2},
		{[]byte{0xC3, 0xA9}, 0x00E9, 2},
		{[]byte{0xDF, 0xBF}, 0x07FF, 2},
		{[]byte{0xE0, 0xA0, 0x80}, 0x0800, 3},
		{[]byte{0xE2, 0x82, 0xAC}, 0x20AC, 3},
		{[]byte{0xED, 0x9F, 0xBF}, 0xD7FF, 3},
		{[]byte{0xEE, 0x80, 0x80}, 0xE000, 3},
		{[]byte{0xEF, 0xBF, 0xBF}, 0xFFFF, 3},
		{[]byte{0xF0, 0x90, 0x80, 0x80}, 0x10000, 4},
		{[]byte{0xF0, 0x9F, 0x98, 0x80}, 0x1F600, 4},
		{[]byte{0xF4, 0x8F, 0xBF, 0xBF}, 0x10FFFF, 4},
		// only the first codepoint is consumed
		{[]byte("héllo"), 'h', 1},
	}
	for _, tt := range tests {
		r, size, err := Decode(tt.in)
		if err != nil || r != tt.r || size != tt.size {
			t.Errorf("Decode(% x) = %#x, %d, %v; want %#x, %d, nil",
				tt.in, r, size, err, tt.r, tt.size)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	r, size, err := Decode(nil)
	if r != -1 || size != 0 || err != nil {
		t.Errorf("Decode(nil) = %d, %d, %v; want -1, 0, nil", r, size, err)
	}
}

// TestDecodeIllFormed covers the maximal subparts of Unicode Table 3-7:
// stray continuations, overlongs, surrogates, out-of-range leads and
// truncations must all be rejected.
func TestDecodeIllFormed(t *testing.T) {
	tests := [][]byte{
		{0x80},                   // stray continuation
		{0xBF},                   // stray continuation
		{0xC0, 0x80},             // overlong NUL
		{0xC1, 0xBF},             // overlong
		{0xC2, 0x41},             // non-continuation second byte
		{0xC2, 0xC0},             // non-continuation second byte
		{0xE0, 0x80, 0x80},       // overlong
		{0xE0, 0x9F, 0xBF},       // overlong
		{0xED, 0xA0, 0x80},       // surrogate U+D800
		{0xED, 0xBF, 0xBF},       // surrogate U+DFFF
		{0xE2, 0x82, 0x41},       // non-continuation third byte
		{0xF0, 0x80, 0x80, 0x80}, // overlong
		{0xF0, 0x8F, 0xBF, 0xBF}, // overlong
		{0xF4, 0x90, 0x80, 0x80}, // above U+10FFFF
		{0xF5, 0x80, 0x80, 0x80}, // invalid lead
		{0xFE},                   // invalid lead
		{0xFF},                   // invalid lead
		{0xC2},                   // truncated
		{0xE2, 0x82},             // truncated
		{0xF0, 0x9F, 0x98},       // truncated
	}
	for _, in := range tests {
		if r, size, err := Decode(in); err != ErrInvalidUTF8 || r != 0 || size != 0 {
			t.Errorf("Decode(% x) = %#x, %d, %v; want 0, 0, ErrInvalidUTF8",
				in, r, size, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	var buf [4]byte
	for r := rune(0); r <= MaxRune; r++ {
		if 0xD800 <= r && r < 0xE000 {
			continue
		}
		n := Encode(buf[:], r)
		if n != RuneLen(r) {
			t.Fatalf("Encode(%#x) wrote %d bytes, RuneLen says %d", r, n, RuneLen(r))
		}
		got, size, err := Decode(buf[:n])
		if err != nil || got != r || size != n {
			t.Fatalf("round trip %#x: Decode = %#x, %d, %v", r, got, size, err)
		}
	}
}

func TestEncodeSurrogate(t *testing.T) {
	// Surrogates encode to the three-byte pattern strict decoding rejects.
	var buf [4]byte
	n := Encode(buf[:], 0xD800)
	if n != 3 || !bytes.Equal(buf[:n], []byte{0xED, 0xA0, 0x80}) {
		t.Errorf("Encode(U+D800) = % x (%d bytes), want ed a0 80", buf[:n], n)
	}
	if _, _, err := Decode(buf[:n]); err != ErrInvalidUTF8 {
		t.Errorf("Decode of encoded surrogate: err = %v, want ErrInvalidUTF8", err)
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	var buf [4]byte
	for _, r := range []rune{-1, -100, MaxRune + 1} {
		if n := Encode(buf[:], r); n != 0 {
			t.Errorf("Encode(%#x) = %d, want 0", r, n)
		}
	}
}

func TestEncodeCharBound(t *testing.T) {
	var buf [4]byte
	if n := EncodeCharBound(buf[:], -1); n != 1 || buf[0] != 0xFF {
		t.Errorf("EncodeCharBound(-1) = %d, buf[0] = %#x; want 1, 0xff", n, buf[0])
	}
	if n := EncodeCharBound(buf[:], 'A'); n != 1 || buf[0] != 'A' {
		t.Errorf("EncodeCharBound('A') = %d, buf[0] = %#x; want 1, 0x41", n, buf[0])
	}
}

func TestValidRune(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{0, true},
		{'A', true},
		{0xD7FF, true},
		{0xD800, false},
		{0xDFFF, false},
		{0xE000, true},
		{MaxRune, true},
		{MaxRune + 1, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := ValidRune(tt.r); got != tt.want {
			t.Errorf("ValidRune(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestDecodeString(t *testing.T) {
	r, size, err := DecodeString("é")
	if err != nil || r != 0x00E9 || size != 2 {
		t.Errorf(`DecodeString("é") = %#x, %d, %v; want 0xe9, 2, nil`, r, size, err)
	}
	r, size, err = DecodeString("")
	if r != -1 || size != 0 || err != nil {
		t.Errorf(`DecodeString("") = %d, %d, %v; want -1, 0, nil`, r, size, err)
	}
}

// TestDecodeStringAgainstDecode sweeps the scalar space to keep the two
// decoders byte-for-byte interchangeable.
func TestDecodeStringAgainstDecode(t *testing.T) {
	var buf [4]byte
	for r := rune(0); r <= MaxRune; r += 7 {
		if 0xD800 <= r && r < 0xE000 {
			continue
		}
		n := Encode(buf[:], r)
		got, size, err := DecodeString(string(buf[:n]))
		if err != nil || got != r || size != n {
			t.Fatalf("DecodeString(%#x) = %#x, %d, %v", r, got, size, err)
		}
	}
	for _, s := range []string{"\x80", "\xC2", "\xED\xA0\x80", "\xF4\x90\x80\x80"} {
		if r, size, err := DecodeString(s); err != ErrInvalidUTF8 || r != 0 || size != 0 {
			t.Errorf("DecodeString(% x) = %#x, %d, %v; want 0, 0, ErrInvalidUTF8",
				s, r, size, err)
		}
	}
}

func TestDecodeStringAllocs(t *testing.T) {
	if n := testing.AllocsPerRun(100, func() {
		DecodeString("héllo")
	}); n > 0 {
		t.Errorf("DecodeString allocates %v times per call, want 0", n)
	}
}
