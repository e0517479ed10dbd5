// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapheme

import (
	"reflect"
	"testing"
)

func TestBreakPairs(t *testing.T) {
	tests := []struct {
		r1, r2 rune
		want   bool
	}{
		{'a', 'b', true},
		{'\r', '\n', false},  // GB3
		{'\n', '\r', true},   // GB4
		{'\r', 0x0301, true}, // GB4: no mark attaches to a control
		{'a', '\t', true},    // GB5
		{'a', 0x0301, false}, // GB9
		{0x0301, 'a', true},
		{'a', 0x200D, false},  // GB9: ZWJ attaches
		{0x200D, 'a', true},   // plain GB999 after ZWJ
		{'a', 0x0903, false},  // GB9a: spacing mark
		{0x0600, ' ', false},  // GB9b: prepend
		{0x1100, 0x1100, false}, // GB6: L x L
		{0x1100, 0x1161, false}, // GB6: L x V
		{0x1100, 0xAC00, false}, // GB6: L x LV
		{0xAC00, 0x1161, false}, // GB7: LV x V
		{0xAC00, 0x11A8, false}, // GB7: LV x T
		{0xAC01, 0x11A8, false}, // GB8: LVT x T
		{0x11A8, 0x1100, true},  // T x L breaks
		{0x1F1E6, 0x1F1FA, false}, // GB12: an isolated RI pair holds
	}
	for _, tt := range tests {
		if got := Break(tt.r1, tt.r2); got != tt.want {
			t.Errorf("Break(%#x, %#x) = %v, want %v", tt.r1, tt.r2, got, tt.want)
		}
	}
}

// segment splits s into clusters via the iterator.
func segment(s string) []string {
	var out []string
	g := NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func TestSegmentation(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"abc", []string{"a", "b", "c"}},
		{"áb", []string{"á", "b"}},
		{"\r\n\n", []string{"\r\n", "\n"}},
		// Hangul jamo compose into one cluster.
		{"각", []string{"각"}},
		{"각", []string{"각"}},
		// GB12/13: regional indicators pair up; the third starts over.
		{"\U0001F1E6\U0001F1FA\U0001F1E6", []string{"\U0001F1E6\U0001F1FA", "\U0001F1E6"}},
		{"\U0001F1E6\U0001F1FA\U0001F1E6\U0001F1FA",
			[]string{"\U0001F1E6\U0001F1FA", "\U0001F1E6\U0001F1FA"}},
		// GB11: pictographic ZWJ sequences hold together.
		{"\U0001F468‍\U0001F469‍\U0001F467",
			[]string{"\U0001F468‍\U0001F469‍\U0001F467"}},
		// GB11 with an intervening Extend before the ZWJ.
		{"\U0001F600́‍\U0001F600",
			[]string{"\U0001F600́‍\U0001F600"}},
		// ZWJ after a non-pictographic does not glue the emoji on.
		{"a‍\U0001F600", []string{"a‍", "\U0001F600"}},
		// Skin tone modifiers extend the base emoji.
		{"\U0001F44D\U0001F3FC", []string{"\U0001F44D\U0001F3FC"}},
		// Prepend holds on to the following letter.
		{"؀م", []string{"؀م"}},
	}
	for _, tt := range tests {
		if got := segment(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("segment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBreakStateReuse(t *testing.T) {
	// The same state must be reusable across a whole text. Feed
	// RI RI RI RI pairwise and expect breaks only after completed pairs.
	runes := []rune{0x1F1E6, 0x1F1FA, 0x1F1E6, 0x1F1FA}
	var state State
	var breaks []bool
	for i := 0; i+1 < len(runes); i++ {
		breaks = append(breaks, BreakState(runes[i], runes[i+1], &state))
	}
	want := []bool{false, true, false}
	if !reflect.DeepEqual(breaks, want) {
		t.Errorf("RI sequence breaks = %v, want %v", breaks, want)
	}
	state.Reset()
	if !BreakState('a', 'b', &state) {
		t.Error("after Reset: BreakState('a', 'b') = false, want true")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"á", 1},
		{"\r\n", 1},
		{"\U0001F1E6\U0001F1FA\U0001F1E6", 2},
		{"\U0001F468‍\U0001F469‍\U0001F467", 1},
		{"각", 1},
	}
	for _, tt := range tests {
		if got := Count(tt.in); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPositions(t *testing.T) {
	g := NewGraphemes("áb")
	var spans [][2]int
	for g.Next() {
		s, e := g.Positions()
		spans = append(spans, [2]int{s, e})
	}
	want := [][2]int{{0, 3}, {3, 4}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Positions = %v, want %v", spans, want)
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"世界", 4}, // CJK: two columns each
		{"á", 1},      // combining mark adds nothing
		{"́", 0},       // lone mark
		{"Ａ", 2},       // fullwidth A
		{"ｶ", 1},       // halfwidth katakana KA
		{"a\U0001F600", 3},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.in); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestInvalidUTF8(t *testing.T) {
	// Stray bytes are consumed one at a time as replacement characters.
	got := segment("a\x80b")
	want := []string{"a", "\x80", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("segment(a \\x80 b) = %q, want %q", got, want)
	}
	if got := Count("\xFF\xFE"); got != 2 {
		t.Errorf("Count(invalid) = %d, want 2", got)
	}
}
