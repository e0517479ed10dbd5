// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// Table generator for package unidata. It reads the Unicode Character
// Database files named below from the directory given by -ucd and writes
// tables.go: a deduplicated two-stage property table, the packed sequence
// table for decomposition and case mappings, and the combination table
// for canonical composition.
//
//	UnicodeData.txt
//	CaseFolding.txt
//	SpecialCasing.txt
//	CompositionExclusions.txt
//	DerivedCoreProperties.txt
//	EastAsianWidth.txt
//	auxiliary/GraphemeBreakProperty.txt
//	emoji/emoji-data.txt
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	ucdDir = flag.String("ucd", "data/ucd", "directory holding the UCD files")
	output = flag.String("output", "tables.go", "output file")
)

const (
	maxCodepoint = 0x110000
	noIndex      = 0xFFFF

	sbase, lbase, vbase, tbase = 0xAC00, 0x1100, 0x1161, 0x11A7
	lcount, vcount, tcount     = 19, 21, 28
	scount                     = lcount * vcount * tcount
)

var categories = []string{
	"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd",
	"Nl", "No", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm",
	"Sc", "Sk", "So", "Zs", "Zl", "Zp", "Cc", "Cf", "Cs", "Co",
}

var bidiClasses = []string{
	"", "L", "LRE", "LRO", "R", "AL", "RLE", "RLO", "PDF", "EN", "ES",
	"ET", "AN", "CS", "NSM", "BN", "B", "S", "WS", "ON", "LRI", "RLI",
	"FSI", "PDI",
}

var decompTypes = []string{
	"", "font", "noBreak", "initial", "medial", "final", "isolated",
	"circle", "super", "sub", "vertical", "wide", "narrow", "small",
	"square", "fraction", "compat",
}

var boundClasses = map[string]int{
	"Other": 1, "CR": 2, "LF": 3, "Control": 4, "Extend": 5, "L": 6,
	"V": 7, "T": 8, "LV": 9, "LVT": 10, "Regional_Indicator": 11,
	"SpacingMark": 12, "Prepend": 13, "ZWJ": 14,
	"Extended_Pictographic": 19,
}

type char struct {
	category   int
	ccc        int
	bidi       int
	decompType int
	decomp     []rune
	casefold   []rune
	upper      []rune
	lower      []rune
	title      []rune
	mirrored   bool
	exclusion  bool
	ignorable  bool
	eaw        string
	boundclass int
}

var chars [maxCodepoint]char

func index(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	log.Fatalf("unknown value %q", s)
	return -1
}

// parse reads a UCD-format file and calls f for each data line with the
// codepoint range and the remaining semicolon-separated fields.
func parse(name string, f func(lo, hi rune, fields []string)) {
	file, err := os.Open(filepath.Join(*ucdDir, name))
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()
	s := bufio.NewScanner(file)
	for s.Scan() {
		line := s.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		lo, hi := parseRange(fields[0])
		f(lo, hi, fields[1:])
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

func parseRange(s string) (lo, hi rune) {
	if i := strings.Index(s, ".."); i >= 0 {
		return parseRune(s[:i]), parseRune(s[i+2:])
	}
	r := parseRune(s)
	return r, r
}

func parseRune(s string) rune {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		log.Fatal(err)
	}
	return rune(v)
}

func parseRunes(s string) []rune {
	var out []rune
	for _, f := range strings.Fields(s) {
		out = append(out, parseRune(f))
	}
	return out
}

func loadUnicodeData() {
	first := rune(-1)
	parse("UnicodeData.txt", func(lo, _ rune, f []string) {
		name := f[0]
		if strings.HasSuffix(name, ", First>") {
			first = lo
			return
		}
		rng := []rune{lo}
		if strings.HasSuffix(name, ", Last>") {
			rng = []rune{first, lo}
			first = -1
		}
		from, to := rng[0], rng[len(rng)-1]
		for cp := from; cp <= to; cp++ {
			c := &chars[cp]
			c.category = index(categories, f[1])
			c.ccc, _ = strconv.Atoi(f[2])
			c.bidi = index(bidiClasses, f[3])
			if f[4] != "" && !(cp >= sbase && cp < sbase+scount) {
				d := f[4]
				if strings.HasPrefix(d, "<") {
					i := strings.IndexByte(d, '>')
					c.decompType = index(decompTypes, d[1:i])
					d = d[i+1:]
				}
				c.decomp = parseRunes(d)
			}
			c.mirrored = f[8] == "Y"
			if f[11] != "" {
				c.upper = []rune{parseRune(f[11])}
			}
			if f[12] != "" {
				c.lower = []rune{parseRune(f[12])}
			}
			if f[13] != "" {
				c.title = []rune{parseRune(f[13])}
			}
		}
	})
}

func loadCaseFolding() {
	parse("CaseFolding.txt", func(lo, hi rune, f []string) {
		// full folding: statuses C and F
		if f[0] != "C" && f[0] != "F" {
			return
		}
		chars[lo].casefold = parseRunes(f[1])
	})
}

// loadSpecialCasing overrides the simple case mappings with the
// unconditional full mappings. The table later keeps only the mappings
// that stay a single codepoint; expanding ones are reachable through
// case folding instead.
func loadSpecialCasing() {
	parse("SpecialCasing.txt", func(lo, hi rune, f []string) {
		if len(f) > 3 && f[3] != "" {
			return // conditional mapping
		}
		c := &chars[lo]
		c.lower = parseRunes(f[0])
		c.title = parseRunes(f[1])
		c.upper = parseRunes(f[2])
	})
}

func loadExclusions() {
	parse("CompositionExclusions.txt", func(lo, hi rune, f []string) {
		for cp := lo; cp <= hi; cp++ {
			chars[cp].exclusion = true
		}
	})
	// singleton and non-starter decompositions are excluded by the
	// standard composition algorithm as well
	for cp := range chars {
		c := &chars[cp]
		if c.decompType == 0 && len(c.decomp) > 0 {
			if len(c.decomp) == 1 || chars[c.decomp[0]].ccc != 0 {
				c.exclusion = true
			}
		}
	}
}

func loadProperties() {
	parse("DerivedCoreProperties.txt", func(lo, hi rune, f []string) {
		if f[0] != "Default_Ignorable_Code_Point" {
			return
		}
		for cp := lo; cp <= hi; cp++ {
			chars[cp].ignorable = true
		}
	})
	parse("EastAsianWidth.txt", func(lo, hi rune, f []string) {
		for cp := lo; cp <= hi; cp++ {
			chars[cp].eaw = f[0]
		}
	})
	for cp := range chars {
		chars[cp].boundclass = 1 // Other
	}
	parse("auxiliary/GraphemeBreakProperty.txt", func(lo, hi rune, f []string) {
		bc, ok := boundClasses[f[0]]
		if !ok {
			log.Fatalf("unknown boundclass %q", f[0])
		}
		for cp := lo; cp <= hi; cp++ {
			chars[cp].boundclass = bc
		}
	})
	parse("emoji/emoji-data.txt", func(lo, hi rune, f []string) {
		if f[0] != "Extended_Pictographic" {
			return
		}
		for cp := lo; cp <= hi; cp++ {
			if chars[cp].boundclass == 1 {
				chars[cp].boundclass = boundClasses["Extended_Pictographic"]
			}
		}
	})
}

func charwidth(cp rune) int {
	c := &chars[cp]
	switch categories[c.category] {
	case "Mn", "Me", "Zl", "Zp", "Cc", "Cs":
		return 0
	case "Cf":
		if cp == 0x00AD {
			return 1
		}
		return 0
	}
	if cp >= 0x1160 && cp <= 0x11FF || cp >= 0xD7B0 && cp <= 0xD7FF {
		return 0
	}
	if c.eaw == "W" || c.eaw == "F" {
		return 2
	}
	return 1
}

// seqTable packs codepoint sequences into a shared []uint16 with
// substring and tail-overlap reuse. Sequences referenced through header
// indexes must start in the low 13 bits; raw single-codepoint entries
// may live anywhere below 0xFFFF.
type seqTable struct {
	words []uint16
	cache map[string]int
}

func words(cps []rune) []uint16 {
	var out []uint16
	for _, cp := range cps {
		if cp >= 0x10000 {
			v := cp - 0x10000
			out = append(out, uint16(0xD800+v>>10), uint16(0xDC00+v&0x3FF))
		} else {
			out = append(out, uint16(cp))
		}
	}
	return out
}

func (t *seqTable) place(stored []uint16) int {
	for i := 0; i+len(stored) <= len(t.words); i++ {
		if matches(t.words[i:], stored) {
			return i
		}
	}
	for k := min(len(stored)-1, len(t.words)); k > 0; k-- {
		if matches(t.words[len(t.words)-k:], stored[:k]) {
			off := len(t.words) - k
			t.words = append(t.words, stored[k:]...)
			return off
		}
	}
	off := len(t.words)
	t.words = append(t.words, stored...)
	return off
}

func matches(w, s []uint16) bool {
	if len(w) < len(s) {
		return false
	}
	for i := range s {
		if w[i] != s[i] {
			return false
		}
	}
	return true
}

func (t *seqTable) add(cps []rune) uint16 {
	key := "h" + string(cps)
	if idx, ok := t.cache[key]; ok {
		return uint16(idx)
	}
	stored := words(cps)
	if len(cps) > 7 {
		stored = append([]uint16{uint16(len(cps))}, stored...)
	}
	off := t.place(stored)
	if off > 0x1FFF {
		log.Fatalf("sequence offset %d out of range", off)
	}
	n := len(cps) - 1
	if n > 7 {
		n = 7
	}
	idx := n<<13 | off
	t.cache[key] = idx
	return uint16(idx)
}

func (t *seqTable) addRaw(cp rune) uint16 {
	key := "r" + string(cp)
	if idx, ok := t.cache[key]; ok {
		return uint16(idx)
	}
	off := t.place(words([]rune{cp}))
	if off >= noIndex {
		log.Fatalf("raw sequence offset %d out of range", off)
	}
	t.cache[key] = off
	return uint16(off)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("maketables: ")

	loadUnicodeData()
	loadCaseFolding()
	loadSpecialCasing()
	loadExclusions()
	loadProperties()

	// combination table
	type pair struct{ starter, combiner, composed rune }
	var pairs []pair
	for cp := range chars {
		c := &chars[cp]
		if c.decompType == 0 && len(c.decomp) == 2 && chars[c.decomp[0]].ccc == 0 {
			pairs = append(pairs, pair{c.decomp[0], c.decomp[1], rune(cp)})
		}
	}
	combID := map[rune]int{}
	supp := map[rune]bool{}
	for _, p := range pairs {
		if p.composed >= 0x10000 {
			supp[p.combiner] = true
		}
	}
	var combinerList []rune
	seen := map[rune]bool{}
	for _, p := range pairs {
		if !seen[p.combiner] {
			seen[p.combiner] = true
			combinerList = append(combinerList, p.combiner)
		}
	}
	sort.Slice(combinerList, func(i, j int) bool { return combinerList[i] < combinerList[j] })
	id := 0
	for _, b := range combinerList {
		combID[b] = id
		if supp[b] {
			id += 2 // a two-word result occupies two id slots
		} else {
			id++
		}
	}
	byStarter := map[rune]map[rune]rune{}
	for _, p := range pairs {
		if byStarter[p.starter] == nil {
			byStarter[p.starter] = map[rune]rune{}
		}
		byStarter[p.starter][p.combiner] = p.composed
	}
	var combTable []uint16
	combIndex := map[rune]uint16{}
	for cp := 0; cp < maxCodepoint; cp++ {
		row, ok := byStarter[rune(cp)]
		if !ok {
			continue
		}
		mn, mx, last := 1<<15, -1, rune(0)
		for b := range row {
			if combID[b] < mn {
				mn = combID[b]
			}
			if combID[b] > mx {
				mx = combID[b]
				last = b
			}
		}
		size := mx - mn + 1
		if supp[last] {
			size++
		}
		entries := make([]uint16, size)
		for b, composed := range row {
			off := combID[b] - mn
			if supp[b] {
				entries[off] = uint16(composed >> 16)
				entries[off+1] = uint16(composed)
			} else {
				entries[off] = uint16(composed)
			}
		}
		combIndex[rune(cp)] = uint16(len(combTable))
		combTable = append(combTable, uint16(mn), uint16(mx))
		combTable = append(combTable, entries...)
	}
	if len(combTable) >= 0x8000 {
		log.Fatalf("combination table too large: %d", len(combTable))
	}
	for _, b := range combinerList {
		v := uint16(0x8000 | combID[b])
		if supp[b] {
			v |= 0x4000
		}
		combIndex[b] = v
	}

	// sequence table: header-indexed sequences first, raw entries after
	seqs := &seqTable{cache: map[string]int{}}
	var multi [][]rune
	for cp := range chars {
		c := &chars[cp]
		if len(c.decomp) > 0 {
			multi = append(multi, c.decomp)
		}
		if len(c.casefold) > 0 {
			multi = append(multi, c.casefold)
		}
	}
	for n := 18; n > 0; n-- {
		for _, cps := range multi {
			if len(cps) == n {
				seqs.add(cps)
			}
		}
	}

	// property records
	type record [13]int
	recIndex := map[record]int{}
	var records []record
	index16 := make([]uint16, maxCodepoint)
	for cp := 0; cp < maxCodepoint; cp++ {
		c := &chars[cp]
		didx, cfi := noIndex, noIndex
		if len(c.decomp) > 0 {
			didx = int(seqs.add(c.decomp))
		}
		if len(c.casefold) > 0 {
			cfi = int(seqs.add(c.casefold))
		}
		caseIndex := func(m []rune) int {
			if len(m) != 1 || m[0] == rune(cp) {
				return noIndex
			}
			return int(seqs.addRaw(m[0]))
		}
		upi := caseIndex(c.upper)
		loi := caseIndex(c.lower)
		tii := caseIndex(c.title)
		ci := noIndex
		if v, ok := combIndex[rune(cp)]; ok {
			ci = int(v)
		}
		flags := 0
		if c.mirrored {
			flags |= 1
		}
		if c.exclusion {
			flags |= 2
		}
		if c.ignorable {
			flags |= 4
		}
		switch categories[c.category] {
		case "Zl", "Zp", "Cc", "Cf":
			if cp != 0x200C && cp != 0x200D {
				flags |= 8
			}
		}
		rec := record{c.category, c.ccc, c.bidi, c.decompType, didx, cfi,
			upi, loi, tii, ci, flags, charwidth(rune(cp)), c.boundclass}
		idx, ok := recIndex[rec]
		if !ok {
			idx = len(records)
			recIndex[rec] = idx
			records = append(records, rec)
		}
		index16[cp] = uint16(idx)
	}
	if len(records) > noIndex {
		log.Fatalf("too many property records: %d", len(records))
	}

	// two-stage compression over 256-codepoint blocks
	blockIndex := map[string]uint16{}
	var stage1, stage2 []uint16
	for base := 0; base < maxCodepoint; base += 256 {
		blk := index16[base : base+256]
		key := fmt.Sprint(blk)
		idx, ok := blockIndex[key]
		if !ok {
			idx = uint16(len(stage2) >> 8)
			blockIndex[key] = idx
			stage2 = append(stage2, blk...)
		}
		stage1 = append(stage1, idx)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by maketables.go. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package unidata\n\n")
	fmt.Fprintf(&buf, "// UnicodeVersion is the Unicode edition from which the tables are derived.\n")
	fmt.Fprintf(&buf, "const UnicodeVersion = %q\n\n", "13.0.0")
	dump := func(name string, vals []uint16) {
		fmt.Fprintf(&buf, "var %s = [%d]uint16{", name, len(vals))
		for i, v := range vals {
			if i%16 == 0 {
				fmt.Fprintf(&buf, "\n\t")
			}
			fmt.Fprintf(&buf, "%#x,", v)
			if i%16 != 15 {
				fmt.Fprintf(&buf, " ")
			}
		}
		fmt.Fprintf(&buf, "\n}\n\n")
	}
	dump("stage1", stage1)
	dump("stage2", stage2)
	dump("sequences", seqs.words)
	dump("combinations", combTable)
	fmt.Fprintf(&buf, "var properties = [%d]Properties{\n", len(records))
	for _, r := range records {
		fmt.Fprintf(&buf, "\t{%d, %d, %d, %d, %#x, %#x, %#x, %#x, %#x, %#x, %#x, %d, %d},\n",
			r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7], r[8], r[9], r[10], r[11], r[12])
	}
	fmt.Fprintf(&buf, "}\n")
	if err := os.WriteFile(*output, buf.Bytes(), 0644); err != nil {
		log.Fatal(err)
	}
}
