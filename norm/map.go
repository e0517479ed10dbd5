// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "math"

// maxMapLen caps the intermediate codepoint count so that the rune
// buffer and its UTF-8 encoding stay addressable on 32-bit platforms.
const maxMapLen = math.MaxInt32 / 8

// Map transforms src under opts in one shot: it sizes the result with a
// dry decomposition run, decomposes, normalizes and re-encodes. On any
// error the returned slice is nil.
func Map(src []byte, opts Options) ([]byte, error) {
	return MapCustom(src, opts, nil)
}

// MapCustom is Map with a per-codepoint hook applied after decoding,
// before any other transformation. A nil custom is the identity.
func MapCustom(src []byte, opts Options, custom func(rune) rune) ([]byte, error) {
	n, err := DecomposeCustom(nil, src, opts, custom)
	if err != nil {
		return nil, err
	}
	if n > maxMapLen {
		return nil, ErrOverflow
	}
	buf := make([]rune, n)
	if _, err := DecomposeCustom(buf, src, opts, custom); err != nil {
		return nil, err
	}
	return Reencode(buf, opts), nil
}
