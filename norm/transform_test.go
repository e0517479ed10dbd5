// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/transform"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		form Form
		in   string
		want string
	}{
		{NFC, "Å", "Å"},
		{NFD, "Å", "Å"},
		{NFKC, "ﬁ", "fi"},
		{NFC, "", ""},
		{NFC, "plain ascii", "plain ascii"},
		{NFC, strings.Repeat("é", 300), strings.Repeat("é", 300)},
	}
	for _, tt := range tests {
		got, _, err := transform.String(tt.form, tt.in)
		if err != nil || got != tt.want {
			t.Errorf("transform.String(%#x, %q) = %q, %v; want %q",
				tt.form.Options(), tt.in, got, err, tt.want)
		}
	}
}

func TestTransformShortSrc(t *testing.T) {
	var dst [64]byte
	// Without EOF the trailing mark may still be followed by more
	// combining input, so nothing can be committed.
	nDst, nSrc, err := NFC.Transform(dst[:], []byte("Å"), false)
	if err != transform.ErrShortSrc || nDst != 0 || nSrc != 0 {
		t.Errorf("Transform(!atEOF) = %d, %d, %v; want 0, 0, ErrShortSrc", nDst, nSrc, err)
	}
	// A following starter fences off the first segment.
	nDst, nSrc, err = NFC.Transform(dst[:], []byte("ÅB"), false)
	if err != nil || string(dst[:nDst]) != "Å" || nSrc != 3 {
		t.Errorf("Transform(partial) = %q, %d, %v; want %q, 3, nil",
			dst[:nDst], nSrc, err, "Å")
	}
	// At EOF everything is committed.
	nDst, nSrc, err = NFC.Transform(dst[:], []byte("Å"), true)
	if err != nil || string(dst[:nDst]) != "Å" || nSrc != 3 {
		t.Errorf("Transform(atEOF) = %q, %d, %v; want %q, 3, nil",
			dst[:nDst], nSrc, err, "Å")
	}
	// A truncated rune at the end could extend the open segment, so
	// nothing is committed yet.
	nDst, nSrc, err = NFC.Transform(dst[:], []byte{'A', 0xCC}, false)
	if err != transform.ErrShortSrc || nDst != 0 || nSrc != 0 {
		t.Errorf("Transform(truncated rune) = %d, %d, %v; want 0, 0, ErrShortSrc",
			nDst, nSrc, err)
	}
}

func TestTransformShortDst(t *testing.T) {
	var dst [1]byte
	nDst, nSrc, err := NFC.Transform(dst[:], []byte("Å"), true)
	if err != transform.ErrShortDst || nDst != 0 || nSrc != 0 {
		t.Errorf("Transform(short dst) = %d, %d, %v; want 0, 0, ErrShortDst", nDst, nSrc, err)
	}
}

func TestTransformInvalid(t *testing.T) {
	var dst [16]byte
	if _, _, err := NFC.Transform(dst[:], []byte{0xC0, 0x80}, true); err != ErrInvalidUTF8 {
		t.Errorf("Transform(overlong) err = %v, want ErrInvalidUTF8", err)
	}
}

func TestTransformReader(t *testing.T) {
	in := strings.Repeat("é ô ", 100)
	want := strings.Repeat("é ô ", 100)
	var out bytes.Buffer
	if _, err := out.ReadFrom(transform.NewReader(strings.NewReader(in), NFC)); err != nil {
		t.Fatal(err)
	}
	if out.String() != want {
		t.Errorf("NewReader: got %d bytes, want %d; first divergence %q",
			out.Len(), len(want), firstDiff(out.String(), want))
	}
}

func firstDiff(a, b string) string {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			lo := i - 4
			if lo < 0 {
				lo = 0
			}
			return a[lo:i] + "|" + a[i:min(i+4, len(a))]
		}
	}
	return ""
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
