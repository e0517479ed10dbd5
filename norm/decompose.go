// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norm performs Unicode normalization and the transformations
// that commonly accompany it: case folding, default-ignorable and mark
// stripping, newline canonicalization, control stripping, lookalike
// lumping and grapheme boundary marking. The one-shot entry point is
// Map (or a Form such as NFC); DecomposeBytes, Normalize and Reencode
// expose the individual passes for callers that manage their own
// buffers.
package norm

import (
	"github.com/unitext/unitext/grapheme"
	"github.com/unitext/unitext/unidata"
	"github.com/unitext/unitext/utf8x"
)

// Hangul syllable composition constants (Unicode chapter 3.12).
const (
	hangulSBase  = 0xAC00
	hangulLBase  = 0x1100
	hangulVBase  = 0x1161
	hangulTBase  = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

// DecomposeRune writes the decomposition of r under opts to dst and
// returns the number of codepoints the full result occupies. Writing
// stops at len(dst) but counting does not, so a nil dst sizes the
// result. state carries the grapheme automaton across calls for the
// CharBound sentinel; it may be nil when CharBound is not set.
func DecomposeRune(dst []rune, r rune, opts Options, state *grapheme.State) (int, error) {
	if r < 0 || r >= unidata.MaxCodepoint {
		return 0, ErrNotAssigned
	}

	// Hangul syllables decompose algorithmically.
	if opts&(Compose|Decompose) != 0 && hangulSBase <= r && r < hangulSBase+hangulSCount {
		si := r - hangulSBase
		n := put(dst, 0, hangulLBase+si/hangulNCount)
		n = put(dst, n, hangulVBase+si%hangulNCount/hangulTCount)
		if t := si % hangulTCount; t > 0 {
			n = put(dst, n, hangulTBase+t)
		}
		return n, nil
	}

	p := unidata.Lookup(r)
	if opts&RejectNA != 0 && p.Category == unidata.Cn {
		return 0, ErrNotAssigned
	}
	if opts&Ignore != 0 && p.IsIgnorable() {
		return 0, nil
	}
	if opts&StripNA != 0 && p.Category == unidata.Cn {
		return 0, nil
	}
	if opts&Lump != 0 {
		if l, ok := lump(r, p.Category, opts); ok {
			// The replacement runs through the remaining passes, Lump
			// cleared to bound the recursion.
			return DecomposeRune(dst, l, opts&^Lump, state)
		}
	}
	if opts&StripMark != 0 {
		switch p.Category {
		case unidata.Mn, unidata.Mc, unidata.Me:
			return 0, nil
		}
	}
	if opts&CaseFold != 0 {
		if f := p.CaseFolding(); f != nil {
			return decomposeSeq(dst, f, opts, state)
		}
	}
	if opts&(Compose|Decompose) != 0 {
		if d := p.Decomposition(); d != nil &&
			(p.DecompType == unidata.DecompCanonical || opts&Compat != 0) {
			return decomposeSeq(dst, d, opts, state)
		}
	}
	if opts&CharBound != 0 && grapheme.BreakAt(r, state) {
		n := put(dst, 0, -1)
		return put(dst, n, r), nil
	}
	return put(dst, 0, r), nil
}

// put appends r at position n when dst has room and returns n+1 either
// way.
func put(dst []rune, n int, r rune) int {
	if n < len(dst) {
		dst[n] = r
	}
	return n + 1
}

// decomposeSeq runs each codepoint of a mapping through the full
// per-codepoint pipeline again, so nested mappings expand completely.
func decomposeSeq(dst []rune, seq []rune, opts Options, state *grapheme.State) (int, error) {
	written := 0
	for _, c := range seq {
		var sub []rune
		if written < len(dst) {
			sub = dst[written:]
		}
		n, err := DecomposeRune(sub, c, opts, state)
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

// lump returns the ASCII lookalike replacing r, if any. The set follows
// the traditional lossy transcription of publishing punctuation and
// spacing to the basic latin repertoire.
func lump(r rune, cat unidata.Category, opts Options) (rune, bool) {
	switch cat {
	case unidata.Zs:
		return 0x0020, true
	case unidata.Pd:
		return 0x002D, true
	case unidata.Pc:
		return 0x005F, true
	case unidata.Zl, unidata.Zp:
		if opts&NLF2LF == NLF2LF {
			return 0x000A, true
		}
		return 0, false
	}
	switch r {
	case 0x2018, 0x2019, 0x02BC, 0x02C8:
		return 0x0027, true // apostrophe lookalikes
	case 0x2212:
		return 0x002D, true // minus sign
	case 0x2044, 0x2215:
		return 0x002F, true // fraction and division slash
	case 0x2236:
		return 0x003A, true // ratio
	case 0x2039, 0x2329, 0x3008:
		return 0x003C, true // angle brackets
	case 0x203A, 0x232A, 0x3009:
		return 0x003E, true
	case 0x2216:
		return 0x005C, true // set minus
	case 0x02C4, 0x02C6, 0x2038, 0x2303:
		return 0x005E, true // circumflex lookalikes
	case 0x30A0:
		return 0x005F, true // katakana double hyphen
	case 0x02CB:
		return 0x0060, true // grave lookalike
	case 0x2223:
		return 0x007C, true // divides
	case 0x223C:
		return 0x007E, true // tilde operator
	}
	return 0, false
}

// DecomposeBytes decodes src as UTF-8 and writes its decomposition
// under opts to dst, returning the number of codepoints of the full
// result. As with DecomposeRune, a short or nil dst only limits
// writing, not counting. When the result fits dst completely it is
// additionally put into canonical order.
func DecomposeBytes(dst []rune, src []byte, opts Options) (int, error) {
	return DecomposeCustom(dst, src, opts, nil)
}

// DecomposeCustom is DecomposeBytes with a per-codepoint hook applied
// after decoding and before any other transformation. A nil custom is
// the identity.
func DecomposeCustom(dst []rune, src []byte, opts Options, custom func(rune) rune) (int, error) {
	if opts&Compose != 0 && opts&Decompose != 0 {
		return 0, ErrInvalidOpts
	}
	if opts&StripMark != 0 && opts&(Compose|Decompose) == 0 {
		return 0, ErrInvalidOpts
	}
	var state grapheme.State
	written := 0
	for pos := 0; pos < len(src); {
		r, size, err := utf8x.Decode(src[pos:])
		if err != nil {
			return written, err
		}
		pos += size
		if custom != nil {
			r = custom(r)
		}
		var sub []rune
		if written < len(dst) {
			sub = dst[written:]
		}
		n, err := DecomposeRune(sub, r, opts, &state)
		if err != nil {
			return written, err
		}
		written += n
	}
	if opts&(Compose|Decompose) != 0 && written <= len(dst) {
		reorder(dst[:written])
	}
	return written, nil
}

// reorder sorts maximal runs of nonzero combining class codepoints by
// class, preserving the order of equals. The bubble pass steps back
// after each swap, which keeps it linear on already-ordered text.
func reorder(buf []rune) {
	for i := 0; i+1 < len(buf); {
		cc1 := unidata.CombiningClass(buf[i])
		cc2 := unidata.CombiningClass(buf[i+1])
		if cc1 > cc2 && cc2 > 0 {
			buf[i], buf[i+1] = buf[i+1], buf[i]
			if i > 0 {
				i--
			}
		} else {
			i++
		}
	}
}
