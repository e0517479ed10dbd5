// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"bytes"
	"testing"

	"github.com/unitext/unitext/unidata"
)

// corpus exercises ASCII, Latin with marks, reordering runs, ligatures,
// Hangul in both spellings, excluded composites and supplementary
// codepoints.
var corpus = []string{
	"",
	"abc",
	"Ångström",
	"Å",
	"Å",
	"q̣̇",
	"q̣̇",
	"ḍ̇",
	"ﬁancée",
	"ﬂags ﬃ ¼",
	"각",
	"각",
	"가",
	"ΐ",
	"ΐ",
	"क़",
	"क़",
	"é́́",
	"\U0001D15E",
	"नमस्ते",
	"tiếng Việt",
}

func mustMap(t *testing.T, s string, opts Options) string {
	t.Helper()
	out, err := Map([]byte(s), opts)
	if err != nil {
		t.Fatalf("Map(%q, %#x): %v", s, opts, err)
	}
	return string(out)
}

func TestOptionValidation(t *testing.T) {
	if _, err := Map([]byte("a"), Compose|Decompose); err != ErrInvalidOpts {
		t.Errorf("Compose|Decompose: err = %v, want ErrInvalidOpts", err)
	}
	if _, err := Map([]byte("a"), StripMark); err != ErrInvalidOpts {
		t.Errorf("StripMark alone: err = %v, want ErrInvalidOpts", err)
	}
	if _, err := Map([]byte("a"), StripMark|Decompose); err != nil {
		t.Errorf("StripMark|Decompose: err = %v, want nil", err)
	}
}

func TestNormalizationScenarios(t *testing.T) {
	tests := []struct {
		form Form
		in   string
		want string
	}{
		{NFC, "Å", "Å"},
		{NFD, "Å", "Å"},
		{NFKC, "ﬁ", "fi"},
		{NFC, "ﬁ", "ﬁ"},
		{NFC, "각", "각"},
		{NFD, "각", "각"},
		{NFKCCaseFold, "Á­ﬁ", "áfi"},
		// Singleton decompositions never recompose.
		{NFC, "Å", "Å"},
		{NFC, "Ω", "Ω"},
		// Reordering feeds composition across a lower-class mark.
		{NFC, "q̣̇", "q̣̇"},
		{NFC, "a\u0323\u0301", "\u1EA1\u0301"},
		{NFD, "ḍ̇", "ḍ̇"},
		// Compatibility forms.
		{NFKD, "½", "1⁄2"},
		{NFKC, "　", " "},
		{NFKD, "ﬁt", "fit"},
	}
	for _, tt := range tests {
		got, err := tt.form.String(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("%v(%q) = %q, %v; want %q", tt.form.Options(), tt.in, got, err, tt.want)
		}
	}
}

func TestIdempotenceAndInclusion(t *testing.T) {
	for _, s := range corpus {
		for _, f := range []Form{NFC, NFD, NFKC, NFKD, NFKCCaseFold} {
			once, err := f.String(s)
			if err != nil {
				t.Fatalf("form %d (%q): %v", f, s, err)
			}
			twice, err := f.String(once)
			if err != nil || twice != once {
				t.Errorf("form %d not idempotent on %q: %q != %q", f, s, twice, once)
			}
		}
		nfd := mustMap(t, s, NFD.Options())
		if got, want := mustMap(t, nfd, NFC.Options()), mustMap(t, s, NFC.Options()); got != want {
			t.Errorf("NFC(NFD(%q)) = %q, want NFC = %q", s, got, want)
		}
		nfkd := mustMap(t, s, NFKD.Options())
		if got, want := mustMap(t, nfkd, NFC.Options()), mustMap(t, s, NFKC.Options()); got != want {
			t.Errorf("NFC(NFKD(%q)) = %q, want NFKC = %q", s, got, want)
		}
	}
}

// After NFD every nonzero-class codepoint must follow one of equal or
// lower class, or a starter.
func TestCanonicalOrdering(t *testing.T) {
	for _, s := range corpus {
		nfd := []rune(mustMap(t, s, NFD.Options()))
		for i := 1; i < len(nfd); i++ {
			cc1 := unidata.CombiningClass(nfd[i-1])
			cc2 := unidata.CombiningClass(nfd[i])
			if cc2 > 0 && cc1 > cc2 {
				t.Errorf("NFD(%q): class %d before %d at %d", s, cc1, cc2, i)
			}
		}
	}
}

func TestCompositionExclusion(t *testing.T) {
	// U+0958 is excluded: its pair never recomposes under Stable.
	if got := mustMap(t, "क़", NFC.Options()); got != "क़" {
		t.Errorf("NFC(KA+NUKTA) = %q, want decomposed", got)
	}
	// Without Stable the historical composite comes back.
	if got := mustMap(t, "क़", Compose); got != "क़" {
		t.Errorf("compose without Stable = %q, want %q", got, "क़")
	}
}

func TestCaseFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello", "hello"},
		{"STRASSE", "strasse"},
		{"Straße", "strasse"},
		{"ΣΟΦΟΣ", "σοφοσ"},
	}
	for _, tt := range tests {
		if got := mustMap(t, tt.in, CaseFold); got != tt.want {
			t.Errorf("casefold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLump(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"–", "-"},       // EN DASH
		{"‘x’", "'x'"},
		{" ", " "},       // no-break space is Zs
		{"a⁄b", "a/b"},
		{"ˋ", "`"},
		{"∼", "~"},
	}
	for _, tt := range tests {
		if got := mustMap(t, tt.in, Compose|Lump); got != tt.want {
			t.Errorf("lump(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	// With both NLF options the separators lump to LINE FEED and stay
	// that way through the newline pass.
	if got := mustMap(t, "a\u2028b", Lump|NLF2LF); got != "a\nb" {
		t.Errorf("lump LS = %q, want %q", got, "a\nb")
	}
}

func TestNewlineConversion(t *testing.T) {
	tests := []struct {
		in   string
		opts Options
		want string
	}{
		{"a\r\nb", NLF2LF, "a\nb"},
		{"a\rb\nc", NLF2LF, "a\nb\nc"},
		{"a\u0085b", NLF2LF, "a\nb"},
		{"a\r\nb", NLF2LS, "a b"},
		{"a\nb", NLF2PS, "a b"},
		{"a\nb", StripCC, "a b"},
		{"a\tb", StripCC, "a b"},
		{"a\x00\x1Bb", StripCC, "ab"},
		{"a\x0Bb", StripCC, "a b"}, // VT counts as a newline function here
		{"a\x7Fb", StripCC, "ab"},
	}
	for _, tt := range tests {
		if got := mustMap(t, tt.in, tt.opts); got != tt.want {
			t.Errorf("Map(%q, %#x) = %q, want %q", tt.in, tt.opts, got, tt.want)
		}
	}
}

func TestStripOptions(t *testing.T) {
	if got := mustMap(t, "a­b", Ignore); got != "ab" {
		t.Errorf("Ignore = %q, want %q", got, "ab")
	}
	if got := mustMap(t, "áb", StripMark|Decompose); got != "ab" {
		t.Errorf("StripMark = %q, want %q", got, "ab")
	}
	// StripMark removes marks liberated by decomposition too.
	if got := mustMap(t, "Åb", StripMark|Decompose); got != "Ab" {
		t.Errorf("StripMark of composed = %q, want %q", got, "Ab")
	}
	if got := mustMap(t, "a͸b", StripNA); got != "ab" {
		t.Errorf("StripNA = %q, want %q", got, "ab")
	}
	if _, err := Map([]byte("a͸b"), RejectNA); err != ErrNotAssigned {
		t.Errorf("RejectNA: err = %v, want ErrNotAssigned", err)
	}
}

func TestCharBound(t *testing.T) {
	out, err := Map([]byte("áb"), CharBound)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFF, 'a', 0xCC, 0x81, 0xFF, 'b'}
	if !bytes.Equal(out, want) {
		t.Errorf("CharBound = % x, want % x", out, want)
	}
	// A flag pair forms one cluster, the next indicator a second one.
	out, err = Map([]byte("\U0001F1FA\U0001F1F8\U0001F1FA"), CharBound)
	if err != nil {
		t.Fatal(err)
	}
	marks := bytes.Count(out, []byte{0xFF})
	if marks != 2 {
		t.Errorf("CharBound RI RI RI: %d clusters, want 2 (% x)", marks, out)
	}
}

func TestInvalidInput(t *testing.T) {
	for _, in := range [][]byte{
		{0xC0, 0x80},
		{0xED, 0xA0, 0x80},
		{'a', 0xFF},
		{0xE2, 0x82},
	} {
		if out, err := Map(in, NFC.Options()); err != ErrInvalidUTF8 || out != nil {
			t.Errorf("Map(% x) = %q, %v; want nil, ErrInvalidUTF8", in, out, err)
		}
	}
}

func TestDryRunSizing(t *testing.T) {
	for _, s := range corpus {
		for _, opts := range []Options{Stable | Decompose, NFKD.Options(), CharBound, CaseFold} {
			n, err := DecomposeBytes(nil, []byte(s), opts)
			if err != nil {
				t.Fatal(err)
			}
			buf := make([]rune, n)
			n2, err := DecomposeBytes(buf, []byte(s), opts)
			if err != nil || n2 != n {
				t.Errorf("DecomposeBytes(%q, %#x): dry run %d, real %d (%v)", s, opts, n, n2, err)
			}
			// A short buffer still reports the full size.
			if n > 1 {
				short := make([]rune, 1)
				n3, err := DecomposeBytes(short, []byte(s), opts)
				if err != nil || n3 != n {
					t.Errorf("short DecomposeBytes(%q): %d, %v; want %d", s, n3, err, n)
				}
			}
		}
	}
}

func TestDecomposeCustom(t *testing.T) {
	rot := func(r rune) rune {
		if r == 'a' {
			return 'b'
		}
		return r
	}
	out, err := MapCustom([]byte("abc"), NFC.Options(), rot)
	if err != nil || string(out) != "bbc" {
		t.Errorf("MapCustom = %q, %v; want %q", out, err, "bbc")
	}
}

func TestNormalizeInPlace(t *testing.T) {
	buf := []rune("Å" + "각")
	n := Normalize(buf, Compose|Stable)
	if got := string(buf[:n]); got != "Å각" {
		t.Errorf("Normalize = %q, want %q", got, "Å각")
	}
	buf = []rune("x\r\ny")
	n = Normalize(buf, NLF2LF)
	if got := string(buf[:n]); got != "x\ny" {
		t.Errorf("Normalize NLF = %q, want %q", got, "x\ny")
	}
}

func TestIsNormal(t *testing.T) {
	tests := []struct {
		form Form
		in   string
		want bool
	}{
		{NFC, "Å", true},
		{NFC, "Å", false},
		{NFD, "Å", true},
		{NFD, "Å", false},
		{NFKC, "ﬁ", false},
		{NFKD, "fi", true},
	}
	for _, tt := range tests {
		if got := tt.form.IsNormalString(tt.in); got != tt.want {
			t.Errorf("IsNormal(%#x, %q) = %v, want %v", tt.form.Options(), tt.in, got, tt.want)
		}
	}
	if NFC.IsNormal([]byte{0xC0, 0x80}) {
		t.Error("ill-formed input reported normal")
	}
}

func TestVersions(t *testing.T) {
	if UnicodeVersion() != "13.0.0" {
		t.Errorf("UnicodeVersion = %q", UnicodeVersion())
	}
	if Version() == "" {
		t.Error("Version is empty")
	}
}
