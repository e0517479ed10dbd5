// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"golang.org/x/text/transform"

	"github.com/unitext/unitext/unidata"
	"github.com/unitext/unitext/utf8x"
)

// Reset implements the transform.Transformer interface.
func (Form) Reset() {}

// Transform implements the transform.Transformer interface. It may only
// process a prefix of src when more input could still change the
// normalization of the tail; callers normally drive it through
// transform.NewReader, transform.NewWriter or transform.String.
func (f Form) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	if !atEOF {
		n = lastBoundary(src)
		if n == 0 {
			return 0, 0, transform.ErrShortSrc
		}
	}
	out, err := Map(src[:n], f.Options())
	if err != nil {
		return 0, 0, err
	}
	if len(out) > len(dst) {
		return 0, 0, transform.ErrShortDst
	}
	return copy(dst, out), n, nil
}

// lastBoundary returns the length of the longest prefix of src that can
// be normalized without seeing what follows: it ends just before a
// codepoint that starts a new canonical segment. A possibly truncated
// trailing sequence is left out; byte sequences that no continuation
// could repair are included so the error surfaces.
func lastBoundary(src []byte) int {
	cut := 0
	for pos := 0; pos < len(src); {
		r, size, err := utf8x.Decode(src[pos:])
		if err != nil {
			if len(src)-pos >= 4 {
				return len(src)
			}
			break
		}
		if boundaryBefore(r) {
			cut = pos
		}
		pos += size
	}
	return cut
}

// boundaryBefore reports whether a codepoint starts a canonical segment:
// it neither reorders before nor composes with anything to its left.
func boundaryBefore(r rune) bool {
	p := unidata.Lookup(r)
	if p.CombiningClass != 0 || p.ComposesBackward() {
		return false
	}
	// Medial and trailing jamo compose backward algorithmically.
	if hangulVBase <= r && r < hangulVBase+hangulVCount ||
		hangulTBase < r && r < hangulTBase+hangulTCount {
		return false
	}
	// A decomposition led by a non-starter would reorder across the cut.
	if d := p.Decomposition(); d != nil && unidata.CombiningClass(d[0]) != 0 {
		return false
	}
	return true
}
