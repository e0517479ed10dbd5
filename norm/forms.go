// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"bytes"

	"github.com/unitext/unitext/unidata"
)

// A Form denotes one of the standard Unicode normalization forms, plus
// the NFKC_Casefold mapping used for caseless identifier matching.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
	NFKCCaseFold
)

var formOptions = [...]Options{
	NFC:          Stable | Compose,
	NFD:          Stable | Decompose,
	NFKC:         Stable | Compose | Compat,
	NFKD:         Stable | Decompose | Compat,
	NFKCCaseFold: Stable | Compose | Compat | CaseFold | Ignore,
}

// Options returns the option set the form stands for.
func (f Form) Options() Options { return formOptions[f] }

// Bytes returns f(b).
func (f Form) Bytes(b []byte) ([]byte, error) {
	return Map(b, f.Options())
}

// String returns f(s) as a string.
func (f Form) String(s string) (string, error) {
	b, err := Map([]byte(s), f.Options())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IsNormal reports whether b is already in the form. Ill-formed input
// is never normal.
func (f Form) IsNormal(b []byte) bool {
	n, err := f.Bytes(b)
	return err == nil && bytes.Equal(b, n)
}

// IsNormalString is IsNormal for strings.
func (f Form) IsNormalString(s string) bool {
	return f.IsNormal([]byte(s))
}

// Version returns the version of this library.
func Version() string { return unidata.Version }

// UnicodeVersion returns the Unicode edition the tables implement.
func UnicodeVersion() string { return unidata.UnicodeVersion }
