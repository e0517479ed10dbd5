// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unidata

import (
	"reflect"
	"testing"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		r    rune
		want Category
	}{
		{'A', Lu},
		{'a', Ll},
		{'0', Nd},
		{' ', Zs},
		{'\n', Cc},
		{0x01C5, Lt},   // LATIN CAPITAL LETTER D WITH SMALL LETTER Z WITH CARON
		{0x0301, Mn},   // COMBINING ACUTE ACCENT
		{0x0903, Mc},   // DEVANAGARI SIGN VISARGA
		{0x20DD, Me},   // COMBINING ENCLOSING CIRCLE
		{0x00AD, Cf},   // SOFT HYPHEN
		{0xD800, Cs},   // surrogate
		{0xE000, Co},   // private use
		{0x2028, Zl},   // LINE SEPARATOR
		{0x2029, Zp},   // PARAGRAPH SEPARATOR
		{0x0378, Cn},   // unassigned
		{0x10FFFF, Cn}, // noncharacter
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.r); got != tt.want {
			t.Errorf("CategoryOf(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	for _, r := range []rune{-1, -2, 0x110000, 0x7FFFFFFF} {
		p := Lookup(r)
		if p.Category != Cn || p.CombiningClass != 0 || p.BoundClass != BoundOther {
			t.Errorf("Lookup(%#x) = %+v, want unassigned record", r, p)
		}
	}
}

func TestValidCodepoint(t *testing.T) {
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
		{0x10FFFF, true},
		{0x110000, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := ValidCodepoint(tt.r); got != tt.want {
			t.Errorf("ValidCodepoint(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCombiningClass(t *testing.T) {
	tests := []struct {
		r    rune
		want uint8
	}{
		{'a', 0},
		{0x0301, 230}, // COMBINING ACUTE ACCENT
		{0x0316, 220}, // COMBINING GRAVE ACCENT BELOW
		{0x0334, 1},   // COMBINING TILDE OVERLAY
		{0x05B0, 10},  // HEBREW POINT SHEVA
		{0x3099, 8},   // COMBINING KATAKANA-HIRAGANA VOICED SOUND MARK
	}
	for _, tt := range tests {
		if got := CombiningClass(tt.r); got != tt.want {
			t.Errorf("CombiningClass(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestBidiClass(t *testing.T) {
	tests := []struct {
		r    rune
		want BidiClass
	}{
		{'A', BidiL},
		{'0', BidiEN},
		{0x05D0, BidiR},  // HEBREW LETTER ALEF
		{0x0627, BidiAL}, // ARABIC LETTER ALEF
		{' ', BidiWS},
		{0x0301, BidiNSM},
		{0x2066, BidiLRI},
	}
	for _, tt := range tests {
		if got := BidiClassOf(tt.r); got != tt.want {
			t.Errorf("BidiClassOf(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestDecomposition(t *testing.T) {
	tests := []struct {
		r    rune
		typ  DecompType
		want []rune
	}{
		{0x00C5, DecompCanonical, []rune{0x41, 0x30A}},          // Å
		{0x212B, DecompCanonical, []rune{0xC5}},                 // ANGSTROM SIGN
		{0x1E0A, DecompCanonical, []rune{0x44, 0x307}},          // Ḋ
		{0x00A0, DecompNoBreak, []rune{0x20}},                   // NO-BREAK SPACE
		{0xFB01, DecompCompat, []rune{0x66, 0x69}},              // LATIN SMALL LIGATURE FI
		{0x00BD, DecompFraction, []rune{0x31, 0x2044, 0x32}},    // ½
		{0x3000, DecompWide, []rune{0x20}},                      // IDEOGRAPHIC SPACE
		{0x1D400, DecompFont, []rune{0x41}},                  // MATHEMATICAL BOLD CAPITAL A
		{0x1D160, DecompCanonical, []rune{0x1D15F, 0x1D16E}}, // supplementary single-level mapping
	}
	for _, tt := range tests {
		p := Lookup(tt.r)
		if got := p.Decomposition(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Decomposition(%#x) = %v, want %v", tt.r, got, tt.want)
		}
		if p.DecompType != tt.typ {
			t.Errorf("DecompType(%#x) = %d, want %d", tt.r, p.DecompType, tt.typ)
		}
	}
	if got := Lookup('a').Decomposition(); got != nil {
		t.Errorf("Decomposition('a') = %v, want nil", got)
	}
	// Hangul syllables decompose algorithmically, not through the table.
	if got := Lookup(0xAC00).Decomposition(); got != nil {
		t.Errorf("Decomposition(U+AC00) = %v, want nil", got)
	}
}

func TestCaseFolding(t *testing.T) {
	tests := []struct {
		r    rune
		want []rune
	}{
		{'A', []rune{'a'}},
		{0x00DF, []rune{'s', 's'}},           // ß
		{0x0130, []rune{0x69, 0x307}},        // İ
		{0xFB03, []rune{'f', 'f', 'i'}},      // ﬃ
		{0x0390, []rune{0x3B9, 0x308, 0x301}}, // ΐ
	}
	for _, tt := range tests {
		if got := Lookup(tt.r).CaseFolding(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("CaseFolding(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
	if got := Lookup('a').CaseFolding(); got != nil {
		t.Errorf("CaseFolding('a') = %v, want nil", got)
	}
}

func TestCaseMapping(t *testing.T) {
	tests := []struct {
		name string
		f    func(rune) rune
		r    rune
		want rune
	}{
		{"Upper", ToUpper, 'a', 'A'},
		{"Upper", ToUpper, 'A', 'A'},
		{"Upper", ToUpper, 0x00E4, 0x00C4},   // ä
		{"Upper", ToUpper, 0x10428, 0x10400}, // DESERET SMALL LETTER LONG I
		{"Upper", ToUpper, 0x00DF, 0x00DF},   // ß uppercases to "SS"; multi-codepoint, left unchanged
		{"Lower", ToLower, 'A', 'a'},
		{"Lower", ToLower, 0x0130, 0x0130}, // İ lowercases to i + combining dot
		{"Lower", ToLower, 0x10400, 0x10428},
		{"Title", ToTitle, 0x01C6, 0x01C5}, // ǆ
		{"Title", ToTitle, 'a', 'A'},
	}
	for _, tt := range tests {
		if got := tt.f(tt.r); got != tt.want {
			t.Errorf("To%s(%#x) = %#x, want %#x", tt.name, tt.r, got, tt.want)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		starter, combiner rune
		want              rune
		ok                bool
	}{
		{0x41, 0x300, 0xC0, true},        // A + grave
		{0x41, 0x30A, 0xC5, true},        // A + ring
		{0x4F, 0x338, 0xD8, false},       // O + slash does not compose canonically
		{0x915, 0x93C, 0x958, true},      // KA + NUKTA (excluded composite; caller gates)
		{0x11099, 0x110BA, 0x1109A, true}, // supplementary composite
		{0x41, 0x301, 0xC1, true},
		{0x61, 0x41, 0, false},  // not a combiner
		{0x300, 0x301, 0, false}, // not a starter
	}
	for _, tt := range tests {
		got, ok := Compose(tt.starter, tt.combiner)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Compose(%#x, %#x) = %#x, %v; want %#x, %v",
				tt.starter, tt.combiner, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCompositionExclusion(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{0x0958, true}, // DEVANAGARI LETTER QA, listed exclusion
		{0x2126, true}, // OHM SIGN, singleton decomposition
		{0x0344, true}, // COMBINING GREEK DIALYTIKA TONOS, non-starter decomposition
		{0x00C5, false},
		{'a', false},
	}
	for _, tt := range tests {
		if got := Lookup(tt.r).IsCompositionExclusion(); got != tt.want {
			t.Errorf("IsCompositionExclusion(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestFlags(t *testing.T) {
	if !Lookup('(').IsMirrored() {
		t.Error("IsMirrored('(') = false, want true")
	}
	if Lookup('a').IsMirrored() {
		t.Error("IsMirrored('a') = true, want false")
	}
	if !Lookup(0x200B).IsIgnorable() { // ZERO WIDTH SPACE
		t.Error("IsIgnorable(U+200B) = false, want true")
	}
	if !Lookup(0x00AD).IsControlBoundary() {
		t.Error("IsControlBoundary(U+00AD) = false, want true")
	}
	// ZWNJ and ZWJ are format characters but join, not break.
	if Lookup(0x200C).IsControlBoundary() || Lookup(0x200D).IsControlBoundary() {
		t.Error("IsControlBoundary(ZWNJ/ZWJ) = true, want false")
	}
}

func TestCharWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{0x4E00, 2},   // CJK ideograph
		{0xFF21, 2},   // FULLWIDTH LATIN CAPITAL LETTER A
		{0x0301, 0},   // combining mark
		{'\n', 0},     // control
		{0x00AD, 1},   // SOFT HYPHEN renders in a line-break position
		{0x200D, 0},   // ZWJ is a format character
		{0x1160, 0},   // HANGUL JUNGSEONG FILLER
		{0x1F600, 2},  // emoji
	}
	for _, tt := range tests {
		if got := CharWidth(tt.r); got != tt.want {
			t.Errorf("CharWidth(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestBoundClassOf(t *testing.T) {
	tests := []struct {
		r    rune
		want BoundClass
	}{
		{'\r', BoundCR},
		{'\n', BoundLF},
		{0x00AD, BoundControl},
		{0x0301, BoundExtend},
		{0x1100, BoundL},
		{0x1161, BoundV},
		{0x11A8, BoundT},
		{0xAC00, BoundLV},
		{0xAC01, BoundLVT},
		{0x1F1E6, BoundRegionalIndicator},
		{0x0E33, BoundSpacingMark},
		{0x0600, BoundPrepend},
		{0x200D, BoundZWJ},
		{0x1F600, BoundExtendedPictographic},
		{'a', BoundOther},
	}
	for _, tt := range tests {
		if got := Lookup(tt.r).BoundClass; got != tt.want {
			t.Errorf("BoundClass(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if got := Lu.String(); got != "Lu" {
		t.Errorf("Lu.String() = %q, want %q", got, "Lu")
	}
	if got := Co.String(); got != "Co" {
		t.Errorf("Co.String() = %q, want %q", got, "Co")
	}
	if got := Category(200).String(); got != "Cn" {
		t.Errorf("Category(200).String() = %q, want %q", got, "Cn")
	}
	if got := BidiAL.String(); got != "AL" {
		t.Errorf("BidiAL.String() = %q, want %q", got, "AL")
	}
}

func TestUnicodeVersion(t *testing.T) {
	if UnicodeVersion != "13.0.0" {
		t.Errorf("UnicodeVersion = %q, want %q", UnicodeVersion, "13.0.0")
	}
}
