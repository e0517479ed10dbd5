// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"errors"

	"github.com/unitext/unitext/utf8x"
)

var (
	// ErrInvalidUTF8 reports ill-formed input. It is the utf8x sentinel,
	// re-exported so callers of this package need only one import.
	ErrInvalidUTF8 = utf8x.ErrInvalidUTF8

	// ErrNotAssigned reports an unassigned codepoint under RejectNA.
	ErrNotAssigned = errors.New("norm: unassigned codepoint")

	// ErrInvalidOpts reports a contradictory option combination.
	ErrInvalidOpts = errors.New("norm: invalid option combination")

	// ErrOverflow reports a result too large to represent.
	ErrOverflow = errors.New("norm: result too large")

	// ErrNoMem reports an allocation failure. It completes the error
	// taxonomy for callers porting from environments where allocation
	// is fallible; this implementation does not return it.
	ErrNoMem = errors.New("norm: out of memory")
)
