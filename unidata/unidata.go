// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run maketables.go -ucd data/ucd

// Package unidata provides per-codepoint Unicode properties: general
// category, canonical combining class, bidirectional class, decomposition
// mappings, case mappings, character width and grapheme boundary class.
//
// The data is held in a compressed two-stage table generated from the
// Unicode Character Database and is immutable for the lifetime of the
// process; all lookups are safe for concurrent use.
package unidata

// Version is the version of the unitext library.
const Version = "1.0.0"

// MaxCodepoint is the exclusive upper bound of the Unicode codespace.
const MaxCodepoint = 0x110000

// noIndex marks an absent sequence or combination table entry.
const noIndex = 0xFFFF

// A Category is a Unicode general category.
type Category uint8

const (
	Cn Category = iota // Other, not assigned
	Lu                 // Letter, uppercase
	Ll                 // Letter, lowercase
	Lt                 // Letter, titlecase
	Lm                 // Letter, modifier
	Lo                 // Letter, other
	Mn                 // Mark, nonspacing
	Mc                 // Mark, spacing combining
	Me                 // Mark, enclosing
	Nd                 // Number, decimal digit
	Nl                 // Number, letter
	No                 // Number, other
	Pc                 // Punctuation, connector
	Pd                 // Punctuation, dash
	Ps                 // Punctuation, open
	Pe                 // Punctuation, close
	Pi                 // Punctuation, initial quote
	Pf                 // Punctuation, final quote
	Po                 // Punctuation, other
	Sm                 // Symbol, math
	Sc                 // Symbol, currency
	Sk                 // Symbol, modifier
	So                 // Symbol, other
	Zs                 // Separator, space
	Zl                 // Separator, line
	Zp                 // Separator, paragraph
	Cc                 // Other, control
	Cf                 // Other, format
	Cs                 // Other, surrogate
	Co                 // Other, private use
)

var categoryNames = [...]string{
	"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd",
	"Nl", "No", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm",
	"Sc", "Sk", "So", "Zs", "Zl", "Zp", "Cc", "Cf", "Cs", "Co",
}

// String returns the two-letter abbreviation of the category.
func (c Category) String() string {
	if int(c) >= len(categoryNames) {
		return "Cn"
	}
	return categoryNames[c]
}

// A BidiClass is a Unicode bidirectional class. The zero value means the
// codepoint has no bidirectional class assigned.
type BidiClass uint8

const (
	BidiNone BidiClass = iota
	BidiL              // left-to-right
	BidiLRE            // left-to-right embedding
	BidiLRO            // left-to-right override
	BidiR              // right-to-left
	BidiAL             // right-to-left arabic
	BidiRLE            // right-to-left embedding
	BidiRLO            // right-to-left override
	BidiPDF            // pop directional format
	BidiEN             // european number
	BidiES             // european separator
	BidiET             // european number terminator
	BidiAN             // arabic number
	BidiCS             // common number separator
	BidiNSM            // nonspacing mark
	BidiBN             // boundary neutral
	BidiB              // paragraph separator
	BidiS              // segment separator
	BidiWS             // whitespace
	BidiON             // other neutrals
	BidiLRI            // left-to-right isolate
	BidiRLI            // right-to-left isolate
	BidiFSI            // first strong isolate
	BidiPDI            // pop directional isolate
)

var bidiNames = [...]string{
	"", "L", "LRE", "LRO", "R", "AL", "RLE", "RLO", "PDF", "EN", "ES",
	"ET", "AN", "CS", "NSM", "BN", "B", "S", "WS", "ON", "LRI", "RLI",
	"FSI", "PDI",
}

func (b BidiClass) String() string {
	if int(b) >= len(bidiNames) {
		return ""
	}
	return bidiNames[b]
}

// A DecompType classifies a decomposition mapping. DecompCanonical marks
// a canonical mapping; the other values are the compatibility formatting
// tags of the Unicode Character Database.
type DecompType uint8

const (
	DecompCanonical DecompType = iota
	DecompFont
	DecompNoBreak
	DecompInitial
	DecompMedial
	DecompFinal
	DecompIsolated
	DecompCircle
	DecompSuper
	DecompSub
	DecompVertical
	DecompWide
	DecompNarrow
	DecompSmall
	DecompSquare
	DecompFraction
	DecompCompat
)

// A BoundClass is a UAX #29 grapheme cluster boundary class. BoundStart
// is the synthetic start-of-text value and BoundEZWG the synthetic
// state entered after an extended pictographic followed by a zero width
// joiner; neither occurs in the property table.
type BoundClass uint8

const (
	BoundStart BoundClass = iota
	BoundOther
	BoundCR
	BoundLF
	BoundControl
	BoundExtend
	BoundL
	BoundV
	BoundT
	BoundLV
	BoundLVT
	BoundRegionalIndicator
	BoundSpacingMark
	BoundPrepend
	BoundZWJ
	BoundEBase
	BoundEModifier
	BoundGlueAfterZWJ
	BoundEBaseGAZ
	BoundExtendedPictographic
	BoundEZWG
)

// Properties is the set of per-codepoint properties. All codepoints
// sharing the same property values share a single record.
type Properties struct {
	Category       Category
	CombiningClass uint8
	BidiClass      BidiClass
	DecompType     DecompType

	decomp   uint16
	casefold uint16
	upper    uint16
	lower    uint16
	title    uint16
	comb     uint16

	flags      uint8
	Width      uint8
	BoundClass BoundClass
}

const (
	flagMirrored = 1 << iota
	flagCompExclusion
	flagIgnorable
	flagControlBoundary
)

// Lookup returns the property record for r. Codepoints outside
// [0, MaxCodepoint), including the boundary sentinel -1, map to the
// unassigned record.
func Lookup(r rune) *Properties {
	if r < 0 || r >= MaxCodepoint {
		return &properties[0]
	}
	return &properties[stage2[int(stage1[r>>8])<<8|int(r&0xFF)]]
}

// ValidCodepoint reports whether r is a Unicode scalar value: in range
// and not a surrogate.
func ValidCodepoint(r rune) bool {
	return r >= 0 && r < MaxCodepoint && !(r >= 0xD800 && r < 0xE000)
}

// IsMirrored reports the Bidi_Mirrored property.
func (p *Properties) IsMirrored() bool { return p.flags&flagMirrored != 0 }

// IsCompositionExclusion reports whether the codepoint must not be
// produced by composition under the versioning stability guarantee.
func (p *Properties) IsCompositionExclusion() bool { return p.flags&flagCompExclusion != 0 }

// IsIgnorable reports the Default_Ignorable_Code_Point property.
func (p *Properties) IsIgnorable() bool { return p.flags&flagIgnorable != 0 }

// IsControlBoundary reports whether the codepoint is a control or
// separator that forces a character boundary.
func (p *Properties) IsControlBoundary() bool { return p.flags&flagControlBoundary != 0 }

// ComposesBackward reports whether the codepoint can combine with a
// preceding starter under canonical composition.
func (p *Properties) ComposesBackward() bool {
	return p.comb != noIndex && p.comb&0x8000 != 0
}

// Decomposition returns the raw (single-level) decomposition mapping of
// the codepoint, or nil if it has none. Hangul syllables decompose
// algorithmically and have no mapping here.
func (p *Properties) Decomposition() []rune {
	if p.decomp == noIndex {
		return nil
	}
	return decodeSequence(p.decomp)
}

// CaseFolding returns the full case folding of the codepoint, or nil if
// folding leaves it unchanged.
func (p *Properties) CaseFolding() []rune {
	if p.casefold == noIndex {
		return nil
	}
	return decodeSequence(p.casefold)
}

// CategoryOf returns the general category of r.
func CategoryOf(r rune) Category { return Lookup(r).Category }

// CombiningClass returns the canonical combining class of r.
func CombiningClass(r rune) uint8 { return Lookup(r).CombiningClass }

// BidiClassOf returns the bidirectional class of r.
func BidiClassOf(r rune) BidiClass { return Lookup(r).BidiClass }

// CharWidth returns the number of column positions r occupies in a
// monospaced rendering: 0 for combining and control codepoints, 2 for
// wide and fullwidth East Asian codepoints, and 1 otherwise.
func CharWidth(r rune) int { return int(Lookup(r).Width) }

// ToUpper returns the uppercase mapping of r, or r itself if the
// mapping is absent or expands to more than one codepoint.
func ToUpper(r rune) rune { return caseMap(r, Lookup(r).upper) }

// ToLower returns the lowercase mapping of r, or r itself if the
// mapping is absent or expands to more than one codepoint.
func ToLower(r rune) rune { return caseMap(r, Lookup(r).lower) }

// ToTitle returns the titlecase mapping of r, or r itself if the
// mapping is absent or expands to more than one codepoint.
func ToTitle(r rune) rune { return caseMap(r, Lookup(r).title) }

func caseMap(r rune, idx uint16) rune {
	if idx == noIndex {
		return r
	}
	return decodeIndexed(idx)
}

// decodeSequence expands a header-encoded sequence index: the top three
// bits hold length-1, with 7 escaping to an explicit length word, and
// the low thirteen bits the offset. Codepoints above the BMP occupy two
// words in a surrogate-pair-like pattern.
func decodeSequence(idx uint16) []rune {
	off := int(idx & 0x1FFF)
	n := int(idx>>13) + 1
	if n == 8 {
		n = int(sequences[off])
		off++
	}
	out := make([]rune, 0, n)
	for len(out) < n {
		w := sequences[off]
		off++
		if w&0xF800 == 0xD800 {
			lo := sequences[off]
			off++
			out = append(out, 0x10000+rune(w&0x3FF)<<10+rune(lo&0x3FF))
		} else {
			out = append(out, rune(w))
		}
	}
	return out
}

// decodeIndexed reads the single codepoint stored at a raw sequence
// offset, as used by the case mapping fields.
func decodeIndexed(idx uint16) rune {
	w := sequences[idx]
	if w&0xF800 == 0xD800 {
		lo := sequences[idx+1]
		return 0x10000 + rune(w&0x3FF)<<10 + rune(lo&0x3FF)
	}
	return rune(w)
}

// Compose returns the primary composite of a starter and a combining
// codepoint, if the pair composes canonically. Hangul composition is
// algorithmic and not covered here. The caller is responsible for
// honoring composition exclusions.
func Compose(starter, combiner rune) (rune, bool) {
	si := Lookup(starter).comb
	ci := Lookup(combiner).comb
	if si >= 0x8000 || ci == noIndex || ci < 0x8000 {
		return 0, false
	}
	id := ci & 0x3FFF
	min, max := combinations[si], combinations[si+1]
	if id < min || id > max {
		return 0, false
	}
	off := int(si) + 2 + int(id-min)
	var r rune
	if ci&0x4000 != 0 {
		r = rune(combinations[off])<<16 | rune(combinations[off+1])
	} else {
		r = rune(combinations[off])
	}
	if r == 0 {
		return 0, false
	}
	return r, true
}
