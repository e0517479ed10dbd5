// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"github.com/unitext/unitext/unidata"
	"github.com/unitext/unitext/utf8x"
)

// Normalize rewrites a decomposed, canonically ordered buffer in place:
// newline conversion and control stripping first, canonical composition
// second, as selected by opts. It returns the new length; the buffer
// never grows.
func Normalize(buf []rune, opts Options) int {
	n := len(buf)
	if opts&(NLF2LS|NLF2PS|StripCC) != 0 {
		n = convertNLF(buf, opts)
	}
	if opts&Compose != 0 {
		n = compose(buf[:n], opts)
	}
	return n
}

// convertNLF collapses CR LF to a single newline function and rewrites
// newline functions (LF, CR, NEL, and under StripCC also VT and FF)
// to the target the options select. StripCC further converts TAB to
// SPACE and drops the remaining C0 and C1 controls.
func convertNLF(buf []rune, opts Options) int {
	w := 0
	for r := 0; r < len(buf); r++ {
		c := buf[r]
		if c == 0x000D && r+1 < len(buf) && buf[r+1] == 0x000A {
			r++
		}
		switch {
		case c == 0x000A || c == 0x000D || c == 0x0085 ||
			(opts&StripCC != 0 && (c == 0x000B || c == 0x000C)):
			switch opts & NLF2LF {
			case NLF2LF:
				buf[w] = 0x000A
			case NLF2LS:
				buf[w] = 0x2028
			case NLF2PS:
				buf[w] = 0x2029
			default:
				buf[w] = 0x0020
			}
			w++
		case opts&StripCC != 0 && (c < 0x0020 || 0x007F <= c && c < 0x00A0):
			if c == 0x0009 {
				buf[w] = 0x0020
				w++
			}
		default:
			buf[w] = c
			w++
		}
	}
	return w
}

// compose recombines starters with following combining codepoints in
// place. A candidate may combine with the last starter only if no
// codepoint of equal or higher combining class stands between them
// (the blocking rule); Hangul LV and LVT syllables are rebuilt
// algorithmically. Under Stable, pairs whose composite is a composition
// exclusion stay apart.
func compose(buf []rune, opts Options) int {
	sp := -1    // write position of the last starter
	maxcc := -1 // highest combining class since the starter
	w := 0
	for _, c := range buf {
		p := unidata.Lookup(c)
		if sp >= 0 && int(p.CombiningClass) > maxcc {
			s := buf[sp]
			// Hangul L + V
			if li := s - hangulLBase; 0 <= li && li < hangulLCount {
				if vi := c - hangulVBase; 0 <= vi && vi < hangulVCount {
					buf[sp] = hangulSBase + (li*hangulVCount+vi)*hangulTCount
					continue
				}
			}
			// Hangul LV + T
			if si := s - hangulSBase; 0 <= si && si < hangulSCount && si%hangulTCount == 0 {
				if ti := c - hangulTBase; 0 < ti && ti < hangulTCount {
					buf[sp] = s + ti
					continue
				}
			}
			if r, ok := unidata.Compose(s, c); ok &&
				(opts&Stable == 0 || !unidata.Lookup(r).IsCompositionExclusion()) {
				buf[sp] = r
				continue
			}
		}
		buf[w] = c
		if p.CombiningClass == 0 {
			sp = w
			maxcc = -1
		} else if int(p.CombiningClass) > maxcc {
			maxcc = int(p.CombiningClass)
		}
		w++
	}
	return w
}

// Reencode normalizes buf under opts and returns its UTF-8 encoding.
// With CharBound set, the -1 boundary sentinels become 0xFF bytes.
func Reencode(buf []rune, opts Options) []byte {
	n := Normalize(buf, opts)
	buf = buf[:n]
	size := 0
	for _, r := range buf {
		if r == -1 {
			size++
		} else {
			size += utf8x.RuneLen(r)
		}
	}
	out := make([]byte, size)
	w := 0
	for _, r := range buf {
		w += utf8x.EncodeCharBound(out[w:], r)
	}
	return out
}
