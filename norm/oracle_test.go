// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"testing"

	xnorm "golang.org/x/text/unicode/norm"
)

// The four standard forms must agree with golang.org/x/text on a fixed
// vector set. The vectors stay within long-assigned repertoire, where
// normalization is stable across Unicode editions, so a version skew
// between the two libraries cannot fail the test.
func TestAgainstXText(t *testing.T) {
	forms := []struct {
		mine   Form
		theirs xnorm.Form
	}{
		{NFC, xnorm.NFC},
		{NFD, xnorm.NFD},
		{NFKC, xnorm.NFKC},
		{NFKD, xnorm.NFKD},
	}
	for _, s := range corpus {
		for _, f := range forms {
			got, err := f.mine.String(s)
			if err != nil {
				t.Fatalf("%v(%q): %v", f.mine.Options(), s, err)
			}
			want := f.theirs.String(s)
			if got != want {
				t.Errorf("form mismatch on %q: got %q, x/text %q", s, got, want)
			}
		}
	}
}
