// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grapheme detects grapheme cluster boundaries as defined by the
// extended grapheme cluster rules of UAX #29. The pair functions answer
// whether a boundary falls between two adjacent codepoints; Graphemes
// iterates over the clusters of a string.
package grapheme

import "github.com/unitext/unitext/unidata"

// State carries the left-context of the boundary automaton between
// successive BreakState calls. The zero value means start of text.
type State struct {
	bc unidata.BoundClass
}

// Reset returns the state to start of text.
func (s *State) Reset() { s.bc = unidata.BoundStart }

// Break reports whether a grapheme cluster boundary falls between r1 and
// r2 when the pair is considered in isolation. Without left context the
// rules that need it (GB11, GB12/13) degrade gracefully: every
// pictographic-after-ZWJ and every regional indicator pair is kept
// together. Use BreakState to apply them exactly.
func Break(r1, r2 rune) bool {
	return breakSimple(unidata.Lookup(r1).BoundClass, unidata.Lookup(r2).BoundClass)
}

// BreakState reports whether a grapheme cluster boundary falls between
// r1 and r2, where state carries the context accumulated over the
// preceding codepoints. Feed a text left to right, pair by overlapping
// pair, reusing the same state.
func BreakState(r1, r2 rune, state *State) bool {
	ebc := state.bc
	if ebc == unidata.BoundStart {
		ebc = unidata.Lookup(r1).BoundClass
	}
	return breakExtended(ebc, unidata.Lookup(r2).BoundClass, state)
}

// BreakAt reports whether a grapheme cluster boundary precedes r given
// the context accumulated in state. On a fresh state it always reports
// a boundary. It is the form used when the left codepoint is only known
// through the state, as in a decomposition stream.
func BreakAt(r rune, state *State) bool {
	return breakExtended(state.bc, unidata.Lookup(r).BoundClass, state)
}

// breakExtended decides the boundary for an effective left class and
// advances the automaton.
func breakExtended(ebc, tbc unidata.BoundClass, state *State) bool {
	permitted := breakSimple(ebc, tbc)

	switch {
	case ebc == unidata.BoundRegionalIndicator && tbc == unidata.BoundRegionalIndicator:
		// A completed flag pair; a third indicator starts a new cluster.
		state.bc = unidata.BoundOther
	case ebc == unidata.BoundExtendedPictographic && tbc == unidata.BoundExtend:
		// Extend folds into the pictographic so a later ZWJ still sees it.
		state.bc = unidata.BoundExtendedPictographic
	case ebc == unidata.BoundExtendedPictographic && tbc == unidata.BoundZWJ:
		state.bc = unidata.BoundEZWG
	default:
		state.bc = tbc
	}
	return permitted
}

// breakSimple evaluates GB1-GB999 on a single class pair. The caller is
// responsible for substituting the stateful left class for lbc where
// GB11 and GB12/13 require history.
func breakSimple(lbc, tbc unidata.BoundClass) bool {
	switch {
	case lbc == unidata.BoundStart:
		return true // GB1
	case lbc == unidata.BoundCR && tbc == unidata.BoundLF:
		return false // GB3
	case lbc >= unidata.BoundCR && lbc <= unidata.BoundControl:
		return true // GB4
	case tbc >= unidata.BoundCR && tbc <= unidata.BoundControl:
		return true // GB5
	case lbc == unidata.BoundL &&
		(tbc == unidata.BoundL || tbc == unidata.BoundV ||
			tbc == unidata.BoundLV || tbc == unidata.BoundLVT):
		return false // GB6
	case (lbc == unidata.BoundLV || lbc == unidata.BoundV) &&
		(tbc == unidata.BoundV || tbc == unidata.BoundT):
		return false // GB7
	case (lbc == unidata.BoundLVT || lbc == unidata.BoundT) &&
		tbc == unidata.BoundT:
		return false // GB8
	case tbc == unidata.BoundExtend || tbc == unidata.BoundZWJ:
		return false // GB9
	case tbc == unidata.BoundSpacingMark:
		return false // GB9a
	case lbc == unidata.BoundPrepend:
		return false // GB9b
	case lbc == unidata.BoundEZWG && tbc == unidata.BoundExtendedPictographic:
		return false // GB11
	case lbc == unidata.BoundRegionalIndicator && tbc == unidata.BoundRegionalIndicator:
		return false // GB12, GB13
	}
	return true // GB999
}
