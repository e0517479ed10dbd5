// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// Options selects the transformations applied by DecomposeBytes,
// Normalize and Map. The Compose and Decompose options are mutually
// exclusive; StripMark requires one of them.
type Options uint32

const (
	// Stable honors the Unicode versioning stability guarantee:
	// composition never produces an excluded composite.
	Stable Options = 1 << iota
	// Compat applies compatibility decompositions in addition to
	// canonical ones.
	Compat
	// Compose recomposes the text canonically (NFC family).
	Compose
	// Decompose leaves the text fully decomposed (NFD family).
	Decompose
	// Ignore drops default-ignorable codepoints such as SOFT HYPHEN.
	Ignore
	// RejectNA fails with ErrNotAssigned on unassigned codepoints.
	RejectNA
	// NLF2LS converts newline functions to LINE SEPARATOR; combined
	// with NLF2PS they become LINE FEED instead.
	NLF2LS
	// NLF2PS converts newline functions to PARAGRAPH SEPARATOR.
	NLF2PS
	// StripCC strips or converts control characters.
	StripCC
	// CaseFold applies full Unicode case folding.
	CaseFold
	// CharBound inserts the -1 sentinel before each grapheme cluster,
	// re-encoded as the byte 0xFF.
	CharBound
	// Lump replaces certain exotic codepoints with ASCII lookalikes.
	Lump
	// StripMark drops nonspacing, spacing and enclosing marks.
	StripMark
	// StripNA drops unassigned codepoints.
	StripNA

	// NLF2LF converts newline functions to LINE FEED.
	NLF2LF = NLF2LS | NLF2PS
)
