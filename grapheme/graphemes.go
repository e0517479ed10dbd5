// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapheme

import (
	"github.com/unitext/unitext/unidata"
	"github.com/unitext/unitext/utf8x"
)

// Graphemes iterates over the grapheme clusters of a string. Bytes that
// do not form valid UTF-8 are treated as U+FFFD, one byte at a time.
//
//	g := grapheme.NewGraphemes("né🇦🇺")
//	for g.Next() {
//		fmt.Println(g.Str())
//	}
type Graphemes struct {
	s          string
	start, end int
	state      State
}

// NewGraphemes returns an iterator positioned before the first cluster
// of s.
func NewGraphemes(s string) *Graphemes {
	return &Graphemes{s: s}
}

// Next advances to the next cluster. It returns false when the string is
// exhausted.
func (g *Graphemes) Next() bool {
	if g.end >= len(g.s) {
		return false
	}
	g.start = g.end
	r, size := decodeRune(g.s[g.end:])
	g.end += size
	for g.end < len(g.s) {
		r2, size2 := decodeRune(g.s[g.end:])
		if BreakState(r, r2, &g.state) {
			break
		}
		r = r2
		g.end += size2
	}
	return true
}

// Str returns the current cluster as a substring of the original input.
func (g *Graphemes) Str() string {
	return g.s[g.start:g.end]
}

// Runes returns the codepoints of the current cluster.
func (g *Graphemes) Runes() []rune {
	return []rune(g.Str())
}

// Positions returns the byte offsets of the current cluster within the
// original string, start inclusive and end exclusive.
func (g *Graphemes) Positions() (int, int) {
	return g.start, g.end
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	n := 0
	var state State
	var prev rune
	for i := 0; i < len(s); {
		r, size := decodeRune(s[i:])
		if i == 0 || BreakState(prev, r, &state) {
			n++
		}
		prev = r
		i += size
	}
	return n
}

// StringWidth returns the number of columns s occupies in a monospaced
// rendering. Each cluster contributes the width of its first
// non-zero-width codepoint; clusters of only zero-width codepoints
// contribute nothing.
func StringWidth(s string) int {
	w := 0
	g := NewGraphemes(s)
	for g.Next() {
		for _, r := range g.Str() {
			if cw := unidata.CharWidth(r); cw > 0 {
				w += cw
				break
			}
		}
	}
	return w
}

func decodeRune(s string) (rune, int) {
	r, size, err := utf8x.DecodeString(s)
	if err != nil {
		return 0xFFFD, 1
	}
	return r, size
}
