// Copyright 2024 The Unitext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapheme

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
)

// breakSequences lists boundary conformance cases in the notation of the
// UCD break test files: codepoints in hex, ÷ where a cluster boundary
// falls and × where none does. The table crosses every ordered pair of
// class samples, each pair also with an interposed U+0308, and adds
// longer sequences for the rules that need left context.
var breakSequences = []string{
	"÷ 0020 ÷ 0020 ÷",
	"÷ 0020 × 0308 ÷ 0020 ÷",
	"÷ 0020 ÷ 0378 ÷",
	"÷ 0020 × 0308 ÷ 0378 ÷",
	"÷ 0020 ÷ 000D ÷",
	"÷ 0020 × 0308 ÷ 000D ÷",
	"÷ 0020 ÷ 000A ÷",
	"÷ 0020 × 0308 ÷ 000A ÷",
	"÷ 0020 ÷ 0001 ÷",
	"÷ 0020 × 0308 ÷ 0001 ÷",
	"÷ 0020 × 0300 ÷",
	"÷ 0020 × 0308 × 0300 ÷",
	"÷ 0020 × 1F3FB ÷",
	"÷ 0020 × 0308 × 1F3FB ÷",
	"÷ 0020 × 200D ÷",
	"÷ 0020 × 0308 × 200D ÷",
	"÷ 0020 ÷ 1F1E6 ÷",
	"÷ 0020 × 0308 ÷ 1F1E6 ÷",
	"÷ 0020 ÷ 0600 ÷",
	"÷ 0020 × 0308 ÷ 0600 ÷",
	"÷ 0020 × 0903 ÷",
	"÷ 0020 × 0308 × 0903 ÷",
	"÷ 0020 ÷ 1100 ÷",
	"÷ 0020 × 0308 ÷ 1100 ÷",
	"÷ 0020 ÷ 1160 ÷",
	"÷ 0020 × 0308 ÷ 1160 ÷",
	"÷ 0020 ÷ 11A8 ÷",
	"÷ 0020 × 0308 ÷ 11A8 ÷",
	"÷ 0020 ÷ AC00 ÷",
	"÷ 0020 × 0308 ÷ AC00 ÷",
	"÷ 0020 ÷ AC01 ÷",
	"÷ 0020 × 0308 ÷ AC01 ÷",
	"÷ 0020 ÷ 231A ÷",
	"÷ 0020 × 0308 ÷ 231A ÷",
	"÷ 0020 ÷ 1F600 ÷",
	"÷ 0020 × 0308 ÷ 1F600 ÷",
	"÷ 0378 ÷ 0020 ÷",
	"÷ 0378 × 0308 ÷ 0020 ÷",
	"÷ 0378 ÷ 0378 ÷",
	"÷ 0378 × 0308 ÷ 0378 ÷",
	"÷ 0378 ÷ 000D ÷",
	"÷ 0378 × 0308 ÷ 000D ÷",
	"÷ 0378 ÷ 000A ÷",
	"÷ 0378 × 0308 ÷ 000A ÷",
	"÷ 0378 ÷ 0001 ÷",
	"÷ 0378 × 0308 ÷ 0001 ÷",
	"÷ 0378 × 0300 ÷",
	"÷ 0378 × 0308 × 0300 ÷",
	"÷ 0378 × 1F3FB ÷",
	"÷ 0378 × 0308 × 1F3FB ÷",
	"÷ 0378 × 200D ÷",
	"÷ 0378 × 0308 × 200D ÷",
	"÷ 0378 ÷ 1F1E6 ÷",
	"÷ 0378 × 0308 ÷ 1F1E6 ÷",
	"÷ 0378 ÷ 0600 ÷",
	"÷ 0378 × 0308 ÷ 0600 ÷",
	"÷ 0378 × 0903 ÷",
	"÷ 0378 × 0308 × 0903 ÷",
	"÷ 0378 ÷ 1100 ÷",
	"÷ 0378 × 0308 ÷ 1100 ÷",
	"÷ 0378 ÷ 1160 ÷",
	"÷ 0378 × 0308 ÷ 1160 ÷",
	"÷ 0378 ÷ 11A8 ÷",
	"÷ 0378 × 0308 ÷ 11A8 ÷",
	"÷ 0378 ÷ AC00 ÷",
	"÷ 0378 × 0308 ÷ AC00 ÷",
	"÷ 0378 ÷ AC01 ÷",
	"÷ 0378 × 0308 ÷ AC01 ÷",
	"÷ 0378 ÷ 231A ÷",
	"÷ 0378 × 0308 ÷ 231A ÷",
	"÷ 0378 ÷ 1F600 ÷",
	"÷ 0378 × 0308 ÷ 1F600 ÷",
	"÷ 000D ÷ 0020 ÷",
	"÷ 000D ÷ 0308 ÷ 0020 ÷",
	"÷ 000D ÷ 0378 ÷",
	"÷ 000D ÷ 0308 ÷ 0378 ÷",
	"÷ 000D ÷ 000D ÷",
	"÷ 000D ÷ 0308 ÷ 000D ÷",
	"÷ 000D × 000A ÷",
	"÷ 000D ÷ 0308 ÷ 000A ÷",
	"÷ 000D ÷ 0001 ÷",
	"÷ 000D ÷ 0308 ÷ 0001 ÷",
	"÷ 000D ÷ 0300 ÷",
	"÷ 000D ÷ 0308 × 0300 ÷",
	"÷ 000D ÷ 1F3FB ÷",
	"÷ 000D ÷ 0308 × 1F3FB ÷",
	"÷ 000D ÷ 200D ÷",
	"÷ 000D ÷ 0308 × 200D ÷",
	"÷ 000D ÷ 1F1E6 ÷",
	"÷ 000D ÷ 0308 ÷ 1F1E6 ÷",
	"÷ 000D ÷ 0600 ÷",
	"÷ 000D ÷ 0308 ÷ 0600 ÷",
	"÷ 000D ÷ 0903 ÷",
	"÷ 000D ÷ 0308 × 0903 ÷",
	"÷ 000D ÷ 1100 ÷",
	"÷ 000D ÷ 0308 ÷ 1100 ÷",
	"÷ 000D ÷ 1160 ÷",
	"÷ 000D ÷ 0308 ÷ 1160 ÷",
	"÷ 000D ÷ 11A8 ÷",
	"÷ 000D ÷ 0308 ÷ 11A8 ÷",
	"÷ 000D ÷ AC00 ÷",
	"÷ 000D ÷ 0308 ÷ AC00 ÷",
	"÷ 000D ÷ AC01 ÷",
	"÷ 000D ÷ 0308 ÷ AC01 ÷",
	"÷ 000D ÷ 231A ÷",
	"÷ 000D ÷ 0308 ÷ 231A ÷",
	"÷ 000D ÷ 1F600 ÷",
	"÷ 000D ÷ 0308 ÷ 1F600 ÷",
	"÷ 000A ÷ 0020 ÷",
	"÷ 000A ÷ 0308 ÷ 0020 ÷",
	"÷ 000A ÷ 0378 ÷",
	"÷ 000A ÷ 0308 ÷ 0378 ÷",
	"÷ 000A ÷ 000D ÷",
	"÷ 000A ÷ 0308 ÷ 000D ÷",
	"÷ 000A ÷ 000A ÷",
	"÷ 000A ÷ 0308 ÷ 000A ÷",
	"÷ 000A ÷ 0001 ÷",
	"÷ 000A ÷ 0308 ÷ 0001 ÷",
	"÷ 000A ÷ 0300 ÷",
	"÷ 000A ÷ 0308 × 0300 ÷",
	"÷ 000A ÷ 1F3FB ÷",
	"÷ 000A ÷ 0308 × 1F3FB ÷",
	"÷ 000A ÷ 200D ÷",
	"÷ 000A ÷ 0308 × 200D ÷",
	"÷ 000A ÷ 1F1E6 ÷",
	"÷ 000A ÷ 0308 ÷ 1F1E6 ÷",
	"÷ 000A ÷ 0600 ÷",
	"÷ 000A ÷ 0308 ÷ 0600 ÷",
	"÷ 000A ÷ 0903 ÷",
	"÷ 000A ÷ 0308 × 0903 ÷",
	"÷ 000A ÷ 1100 ÷",
	"÷ 000A ÷ 0308 ÷ 1100 ÷",
	"÷ 000A ÷ 1160 ÷",
	"÷ 000A ÷ 0308 ÷ 1160 ÷",
	"÷ 000A ÷ 11A8 ÷",
	"÷ 000A ÷ 0308 ÷ 11A8 ÷",
	"÷ 000A ÷ AC00 ÷",
	"÷ 000A ÷ 0308 ÷ AC00 ÷",
	"÷ 000A ÷ AC01 ÷",
	"÷ 000A ÷ 0308 ÷ AC01 ÷",
	"÷ 000A ÷ 231A ÷",
	"÷ 000A ÷ 0308 ÷ 231A ÷",
	"÷ 000A ÷ 1F600 ÷",
	"÷ 000A ÷ 0308 ÷ 1F600 ÷",
	"÷ 0001 ÷ 0020 ÷",
	"÷ 0001 ÷ 0308 ÷ 0020 ÷",
	"÷ 0001 ÷ 0378 ÷",
	"÷ 0001 ÷ 0308 ÷ 0378 ÷",
	"÷ 0001 ÷ 000D ÷",
	"÷ 0001 ÷ 0308 ÷ 000D ÷",
	"÷ 0001 ÷ 000A ÷",
	"÷ 0001 ÷ 0308 ÷ 000A ÷",
	"÷ 0001 ÷ 0001 ÷",
	"÷ 0001 ÷ 0308 ÷ 0001 ÷",
	"÷ 0001 ÷ 0300 ÷",
	"÷ 0001 ÷ 0308 × 0300 ÷",
	"÷ 0001 ÷ 1F3FB ÷",
	"÷ 0001 ÷ 0308 × 1F3FB ÷",
	"÷ 0001 ÷ 200D ÷",
	"÷ 0001 ÷ 0308 × 200D ÷",
	"÷ 0001 ÷ 1F1E6 ÷",
	"÷ 0001 ÷ 0308 ÷ 1F1E6 ÷",
	"÷ 0001 ÷ 0600 ÷",
	"÷ 0001 ÷ 0308 ÷ 0600 ÷",
	"÷ 0001 ÷ 0903 ÷",
	"÷ 0001 ÷ 0308 × 0903 ÷",
	"÷ 0001 ÷ 1100 ÷",
	"÷ 0001 ÷ 0308 ÷ 1100 ÷",
	"÷ 0001 ÷ 1160 ÷",
	"÷ 0001 ÷ 0308 ÷ 1160 ÷",
	"÷ 0001 ÷ 11A8 ÷",
	"÷ 0001 ÷ 0308 ÷ 11A8 ÷",
	"÷ 0001 ÷ AC00 ÷",
	"÷ 0001 ÷ 0308 ÷ AC00 ÷",
	"÷ 0001 ÷ AC01 ÷",
	"÷ 0001 ÷ 0308 ÷ AC01 ÷",
	"÷ 0001 ÷ 231A ÷",
	"÷ 0001 ÷ 0308 ÷ 231A ÷",
	"÷ 0001 ÷ 1F600 ÷",
	"÷ 0001 ÷ 0308 ÷ 1F600 ÷",
	"÷ 0300 ÷ 0020 ÷",
	"÷ 0300 × 0308 ÷ 0020 ÷",
	"÷ 0300 ÷ 0378 ÷",
	"÷ 0300 × 0308 ÷ 0378 ÷",
	"÷ 0300 ÷ 000D ÷",
	"÷ 0300 × 0308 ÷ 000D ÷",
	"÷ 0300 ÷ 000A ÷",
	"÷ 0300 × 0308 ÷ 000A ÷",
	"÷ 0300 ÷ 0001 ÷",
	"÷ 0300 × 0308 ÷ 0001 ÷",
	"÷ 0300 × 0300 ÷",
	"÷ 0300 × 0308 × 0300 ÷",
	"÷ 0300 × 1F3FB ÷",
	"÷ 0300 × 0308 × 1F3FB ÷",
	"÷ 0300 × 200D ÷",
	"÷ 0300 × 0308 × 200D ÷",
	"÷ 0300 ÷ 1F1E6 ÷",
	"÷ 0300 × 0308 ÷ 1F1E6 ÷",
	"÷ 0300 ÷ 0600 ÷",
	"÷ 0300 × 0308 ÷ 0600 ÷",
	"÷ 0300 × 0903 ÷",
	"÷ 0300 × 0308 × 0903 ÷",
	"÷ 0300 ÷ 1100 ÷",
	"÷ 0300 × 0308 ÷ 1100 ÷",
	"÷ 0300 ÷ 1160 ÷",
	"÷ 0300 × 0308 ÷ 1160 ÷",
	"÷ 0300 ÷ 11A8 ÷",
	"÷ 0300 × 0308 ÷ 11A8 ÷",
	"÷ 0300 ÷ AC00 ÷",
	"÷ 0300 × 0308 ÷ AC00 ÷",
	"÷ 0300 ÷ AC01 ÷",
	"÷ 0300 × 0308 ÷ AC01 ÷",
	"÷ 0300 ÷ 231A ÷",
	"÷ 0300 × 0308 ÷ 231A ÷",
	"÷ 0300 ÷ 1F600 ÷",
	"÷ 0300 × 0308 ÷ 1F600 ÷",
	"÷ 1F3FB ÷ 0020 ÷",
	"÷ 1F3FB × 0308 ÷ 0020 ÷",
	"÷ 1F3FB ÷ 0378 ÷",
	"÷ 1F3FB × 0308 ÷ 0378 ÷",
	"÷ 1F3FB ÷ 000D ÷",
	"÷ 1F3FB × 0308 ÷ 000D ÷",
	"÷ 1F3FB ÷ 000A ÷",
	"÷ 1F3FB × 0308 ÷ 000A ÷",
	"÷ 1F3FB ÷ 0001 ÷",
	"÷ 1F3FB × 0308 ÷ 0001 ÷",
	"÷ 1F3FB × 0300 ÷",
	"÷ 1F3FB × 0308 × 0300 ÷",
	"÷ 1F3FB × 1F3FB ÷",
	"÷ 1F3FB × 0308 × 1F3FB ÷",
	"÷ 1F3FB × 200D ÷",
	"÷ 1F3FB × 0308 × 200D ÷",
	"÷ 1F3FB ÷ 1F1E6 ÷",
	"÷ 1F3FB × 0308 ÷ 1F1E6 ÷",
	"÷ 1F3FB ÷ 0600 ÷",
	"÷ 1F3FB × 0308 ÷ 0600 ÷",
	"÷ 1F3FB × 0903 ÷",
	"÷ 1F3FB × 0308 × 0903 ÷",
	"÷ 1F3FB ÷ 1100 ÷",
	"÷ 1F3FB × 0308 ÷ 1100 ÷",
	"÷ 1F3FB ÷ 1160 ÷",
	"÷ 1F3FB × 0308 ÷ 1160 ÷",
	"÷ 1F3FB ÷ 11A8 ÷",
	"÷ 1F3FB × 0308 ÷ 11A8 ÷",
	"÷ 1F3FB ÷ AC00 ÷",
	"÷ 1F3FB × 0308 ÷ AC00 ÷",
	"÷ 1F3FB ÷ AC01 ÷",
	"÷ 1F3FB × 0308 ÷ AC01 ÷",
	"÷ 1F3FB ÷ 231A ÷",
	"÷ 1F3FB × 0308 ÷ 231A ÷",
	"÷ 1F3FB ÷ 1F600 ÷",
	"÷ 1F3FB × 0308 ÷ 1F600 ÷",
	"÷ 200D ÷ 0020 ÷",
	"÷ 200D × 0308 ÷ 0020 ÷",
	"÷ 200D ÷ 0378 ÷",
	"÷ 200D × 0308 ÷ 0378 ÷",
	"÷ 200D ÷ 000D ÷",
	"÷ 200D × 0308 ÷ 000D ÷",
	"÷ 200D ÷ 000A ÷",
	"÷ 200D × 0308 ÷ 000A ÷",
	"÷ 200D ÷ 0001 ÷",
	"÷ 200D × 0308 ÷ 0001 ÷",
	"÷ 200D × 0300 ÷",
	"÷ 200D × 0308 × 0300 ÷",
	"÷ 200D × 1F3FB ÷",
	"÷ 200D × 0308 × 1F3FB ÷",
	"÷ 200D × 200D ÷",
	"÷ 200D × 0308 × 200D ÷",
	"÷ 200D ÷ 1F1E6 ÷",
	"÷ 200D × 0308 ÷ 1F1E6 ÷",
	"÷ 200D ÷ 0600 ÷",
	"÷ 200D × 0308 ÷ 0600 ÷",
	"÷ 200D × 0903 ÷",
	"÷ 200D × 0308 × 0903 ÷",
	"÷ 200D ÷ 1100 ÷",
	"÷ 200D × 0308 ÷ 1100 ÷",
	"÷ 200D ÷ 1160 ÷",
	"÷ 200D × 0308 ÷ 1160 ÷",
	"÷ 200D ÷ 11A8 ÷",
	"÷ 200D × 0308 ÷ 11A8 ÷",
	"÷ 200D ÷ AC00 ÷",
	"÷ 200D × 0308 ÷ AC00 ÷",
	"÷ 200D ÷ AC01 ÷",
	"÷ 200D × 0308 ÷ AC01 ÷",
	"÷ 200D ÷ 231A ÷",
	"÷ 200D × 0308 ÷ 231A ÷",
	"÷ 200D ÷ 1F600 ÷",
	"÷ 200D × 0308 ÷ 1F600 ÷",
	"÷ 1F1E6 ÷ 0020 ÷",
	"÷ 1F1E6 × 0308 ÷ 0020 ÷",
	"÷ 1F1E6 ÷ 0378 ÷",
	"÷ 1F1E6 × 0308 ÷ 0378 ÷",
	"÷ 1F1E6 ÷ 000D ÷",
	"÷ 1F1E6 × 0308 ÷ 000D ÷",
	"÷ 1F1E6 ÷ 000A ÷",
	"÷ 1F1E6 × 0308 ÷ 000A ÷",
	"÷ 1F1E6 ÷ 0001 ÷",
	"÷ 1F1E6 × 0308 ÷ 0001 ÷",
	"÷ 1F1E6 × 0300 ÷",
	"÷ 1F1E6 × 0308 × 0300 ÷",
	"÷ 1F1E6 × 1F3FB ÷",
	"÷ 1F1E6 × 0308 × 1F3FB ÷",
	"÷ 1F1E6 × 200D ÷",
	"÷ 1F1E6 × 0308 × 200D ÷",
	"÷ 1F1E6 × 1F1E6 ÷",
	"÷ 1F1E6 × 0308 ÷ 1F1E6 ÷",
	"÷ 1F1E6 ÷ 0600 ÷",
	"÷ 1F1E6 × 0308 ÷ 0600 ÷",
	"÷ 1F1E6 × 0903 ÷",
	"÷ 1F1E6 × 0308 × 0903 ÷",
	"÷ 1F1E6 ÷ 1100 ÷",
	"÷ 1F1E6 × 0308 ÷ 1100 ÷",
	"÷ 1F1E6 ÷ 1160 ÷",
	"÷ 1F1E6 × 0308 ÷ 1160 ÷",
	"÷ 1F1E6 ÷ 11A8 ÷",
	"÷ 1F1E6 × 0308 ÷ 11A8 ÷",
	"÷ 1F1E6 ÷ AC00 ÷",
	"÷ 1F1E6 × 0308 ÷ AC00 ÷",
	"÷ 1F1E6 ÷ AC01 ÷",
	"÷ 1F1E6 × 0308 ÷ AC01 ÷",
	"÷ 1F1E6 ÷ 231A ÷",
	"÷ 1F1E6 × 0308 ÷ 231A ÷",
	"÷ 1F1E6 ÷ 1F600 ÷",
	"÷ 1F1E6 × 0308 ÷ 1F600 ÷",
	"÷ 0600 × 0020 ÷",
	"÷ 0600 × 0308 ÷ 0020 ÷",
	"÷ 0600 × 0378 ÷",
	"÷ 0600 × 0308 ÷ 0378 ÷",
	"÷ 0600 ÷ 000D ÷",
	"÷ 0600 × 0308 ÷ 000D ÷",
	"÷ 0600 ÷ 000A ÷",
	"÷ 0600 × 0308 ÷ 000A ÷",
	"÷ 0600 ÷ 0001 ÷",
	"÷ 0600 × 0308 ÷ 0001 ÷",
	"÷ 0600 × 0300 ÷",
	"÷ 0600 × 0308 × 0300 ÷",
	"÷ 0600 × 1F3FB ÷",
	"÷ 0600 × 0308 × 1F3FB ÷",
	"÷ 0600 × 200D ÷",
	"÷ 0600 × 0308 × 200D ÷",
	"÷ 0600 × 1F1E6 ÷",
	"÷ 0600 × 0308 ÷ 1F1E6 ÷",
	"÷ 0600 × 0600 ÷",
	"÷ 0600 × 0308 ÷ 0600 ÷",
	"÷ 0600 × 0903 ÷",
	"÷ 0600 × 0308 × 0903 ÷",
	"÷ 0600 × 1100 ÷",
	"÷ 0600 × 0308 ÷ 1100 ÷",
	"÷ 0600 × 1160 ÷",
	"÷ 0600 × 0308 ÷ 1160 ÷",
	"÷ 0600 × 11A8 ÷",
	"÷ 0600 × 0308 ÷ 11A8 ÷",
	"÷ 0600 × AC00 ÷",
	"÷ 0600 × 0308 ÷ AC00 ÷",
	"÷ 0600 × AC01 ÷",
	"÷ 0600 × 0308 ÷ AC01 ÷",
	"÷ 0600 × 231A ÷",
	"÷ 0600 × 0308 ÷ 231A ÷",
	"÷ 0600 × 1F600 ÷",
	"÷ 0600 × 0308 ÷ 1F600 ÷",
	"÷ 0903 ÷ 0020 ÷",
	"÷ 0903 × 0308 ÷ 0020 ÷",
	"÷ 0903 ÷ 0378 ÷",
	"÷ 0903 × 0308 ÷ 0378 ÷",
	"÷ 0903 ÷ 000D ÷",
	"÷ 0903 × 0308 ÷ 000D ÷",
	"÷ 0903 ÷ 000A ÷",
	"÷ 0903 × 0308 ÷ 000A ÷",
	"÷ 0903 ÷ 0001 ÷",
	"÷ 0903 × 0308 ÷ 0001 ÷",
	"÷ 0903 × 0300 ÷",
	"÷ 0903 × 0308 × 0300 ÷",
	"÷ 0903 × 1F3FB ÷",
	"÷ 0903 × 0308 × 1F3FB ÷",
	"÷ 0903 × 200D ÷",
	"÷ 0903 × 0308 × 200D ÷",
	"÷ 0903 ÷ 1F1E6 ÷",
	"÷ 0903 × 0308 ÷ 1F1E6 ÷",
	"÷ 0903 ÷ 0600 ÷",
	"÷ 0903 × 0308 ÷ 0600 ÷",
	"÷ 0903 × 0903 ÷",
	"÷ 0903 × 0308 × 0903 ÷",
	"÷ 0903 ÷ 1100 ÷",
	"÷ 0903 × 0308 ÷ 1100 ÷",
	"÷ 0903 ÷ 1160 ÷",
	"÷ 0903 × 0308 ÷ 1160 ÷",
	"÷ 0903 ÷ 11A8 ÷",
	"÷ 0903 × 0308 ÷ 11A8 ÷",
	"÷ 0903 ÷ AC00 ÷",
	"÷ 0903 × 0308 ÷ AC00 ÷",
	"÷ 0903 ÷ AC01 ÷",
	"÷ 0903 × 0308 ÷ AC01 ÷",
	"÷ 0903 ÷ 231A ÷",
	"÷ 0903 × 0308 ÷ 231A ÷",
	"÷ 0903 ÷ 1F600 ÷",
	"÷ 0903 × 0308 ÷ 1F600 ÷",
	"÷ 1100 ÷ 0020 ÷",
	"÷ 1100 × 0308 ÷ 0020 ÷",
	"÷ 1100 ÷ 0378 ÷",
	"÷ 1100 × 0308 ÷ 0378 ÷",
	"÷ 1100 ÷ 000D ÷",
	"÷ 1100 × 0308 ÷ 000D ÷",
	"÷ 1100 ÷ 000A ÷",
	"÷ 1100 × 0308 ÷ 000A ÷",
	"÷ 1100 ÷ 0001 ÷",
	"÷ 1100 × 0308 ÷ 0001 ÷",
	"÷ 1100 × 0300 ÷",
	"÷ 1100 × 0308 × 0300 ÷",
	"÷ 1100 × 1F3FB ÷",
	"÷ 1100 × 0308 × 1F3FB ÷",
	"÷ 1100 × 200D ÷",
	"÷ 1100 × 0308 × 200D ÷",
	"÷ 1100 ÷ 1F1E6 ÷",
	"÷ 1100 × 0308 ÷ 1F1E6 ÷",
	"÷ 1100 ÷ 0600 ÷",
	"÷ 1100 × 0308 ÷ 0600 ÷",
	"÷ 1100 × 0903 ÷",
	"÷ 1100 × 0308 × 0903 ÷",
	"÷ 1100 × 1100 ÷",
	"÷ 1100 × 0308 ÷ 1100 ÷",
	"÷ 1100 × 1160 ÷",
	"÷ 1100 × 0308 ÷ 1160 ÷",
	"÷ 1100 ÷ 11A8 ÷",
	"÷ 1100 × 0308 ÷ 11A8 ÷",
	"÷ 1100 × AC00 ÷",
	"÷ 1100 × 0308 ÷ AC00 ÷",
	"÷ 1100 × AC01 ÷",
	"÷ 1100 × 0308 ÷ AC01 ÷",
	"÷ 1100 ÷ 231A ÷",
	"÷ 1100 × 0308 ÷ 231A ÷",
	"÷ 1100 ÷ 1F600 ÷",
	"÷ 1100 × 0308 ÷ 1F600 ÷",
	"÷ 1160 ÷ 0020 ÷",
	"÷ 1160 × 0308 ÷ 0020 ÷",
	"÷ 1160 ÷ 0378 ÷",
	"÷ 1160 × 0308 ÷ 0378 ÷",
	"÷ 1160 ÷ 000D ÷",
	"÷ 1160 × 0308 ÷ 000D ÷",
	"÷ 1160 ÷ 000A ÷",
	"÷ 1160 × 0308 ÷ 000A ÷",
	"÷ 1160 ÷ 0001 ÷",
	"÷ 1160 × 0308 ÷ 0001 ÷",
	"÷ 1160 × 0300 ÷",
	"÷ 1160 × 0308 × 0300 ÷",
	"÷ 1160 × 1F3FB ÷",
	"÷ 1160 × 0308 × 1F3FB ÷",
	"÷ 1160 × 200D ÷",
	"÷ 1160 × 0308 × 200D ÷",
	"÷ 1160 ÷ 1F1E6 ÷",
	"÷ 1160 × 0308 ÷ 1F1E6 ÷",
	"÷ 1160 ÷ 0600 ÷",
	"÷ 1160 × 0308 ÷ 0600 ÷",
	"÷ 1160 × 0903 ÷",
	"÷ 1160 × 0308 × 0903 ÷",
	"÷ 1160 ÷ 1100 ÷",
	"÷ 1160 × 0308 ÷ 1100 ÷",
	"÷ 1160 × 1160 ÷",
	"÷ 1160 × 0308 ÷ 1160 ÷",
	"÷ 1160 × 11A8 ÷",
	"÷ 1160 × 0308 ÷ 11A8 ÷",
	"÷ 1160 ÷ AC00 ÷",
	"÷ 1160 × 0308 ÷ AC00 ÷",
	"÷ 1160 ÷ AC01 ÷",
	"÷ 1160 × 0308 ÷ AC01 ÷",
	"÷ 1160 ÷ 231A ÷",
	"÷ 1160 × 0308 ÷ 231A ÷",
	"÷ 1160 ÷ 1F600 ÷",
	"÷ 1160 × 0308 ÷ 1F600 ÷",
	"÷ 11A8 ÷ 0020 ÷",
	"÷ 11A8 × 0308 ÷ 0020 ÷",
	"÷ 11A8 ÷ 0378 ÷",
	"÷ 11A8 × 0308 ÷ 0378 ÷",
	"÷ 11A8 ÷ 000D ÷",
	"÷ 11A8 × 0308 ÷ 000D ÷",
	"÷ 11A8 ÷ 000A ÷",
	"÷ 11A8 × 0308 ÷ 000A ÷",
	"÷ 11A8 ÷ 0001 ÷",
	"÷ 11A8 × 0308 ÷ 0001 ÷",
	"÷ 11A8 × 0300 ÷",
	"÷ 11A8 × 0308 × 0300 ÷",
	"÷ 11A8 × 1F3FB ÷",
	"÷ 11A8 × 0308 × 1F3FB ÷",
	"÷ 11A8 × 200D ÷",
	"÷ 11A8 × 0308 × 200D ÷",
	"÷ 11A8 ÷ 1F1E6 ÷",
	"÷ 11A8 × 0308 ÷ 1F1E6 ÷",
	"÷ 11A8 ÷ 0600 ÷",
	"÷ 11A8 × 0308 ÷ 0600 ÷",
	"÷ 11A8 × 0903 ÷",
	"÷ 11A8 × 0308 × 0903 ÷",
	"÷ 11A8 ÷ 1100 ÷",
	"÷ 11A8 × 0308 ÷ 1100 ÷",
	"÷ 11A8 ÷ 1160 ÷",
	"÷ 11A8 × 0308 ÷ 1160 ÷",
	"÷ 11A8 × 11A8 ÷",
	"÷ 11A8 × 0308 ÷ 11A8 ÷",
	"÷ 11A8 ÷ AC00 ÷",
	"÷ 11A8 × 0308 ÷ AC00 ÷",
	"÷ 11A8 ÷ AC01 ÷",
	"÷ 11A8 × 0308 ÷ AC01 ÷",
	"÷ 11A8 ÷ 231A ÷",
	"÷ 11A8 × 0308 ÷ 231A ÷",
	"÷ 11A8 ÷ 1F600 ÷",
	"÷ 11A8 × 0308 ÷ 1F600 ÷",
	"÷ AC00 ÷ 0020 ÷",
	"÷ AC00 × 0308 ÷ 0020 ÷",
	"÷ AC00 ÷ 0378 ÷",
	"÷ AC00 × 0308 ÷ 0378 ÷",
	"÷ AC00 ÷ 000D ÷",
	"÷ AC00 × 0308 ÷ 000D ÷",
	"÷ AC00 ÷ 000A ÷",
	"÷ AC00 × 0308 ÷ 000A ÷",
	"÷ AC00 ÷ 0001 ÷",
	"÷ AC00 × 0308 ÷ 0001 ÷",
	"÷ AC00 × 0300 ÷",
	"÷ AC00 × 0308 × 0300 ÷",
	"÷ AC00 × 1F3FB ÷",
	"÷ AC00 × 0308 × 1F3FB ÷",
	"÷ AC00 × 200D ÷",
	"÷ AC00 × 0308 × 200D ÷",
	"÷ AC00 ÷ 1F1E6 ÷",
	"÷ AC00 × 0308 ÷ 1F1E6 ÷",
	"÷ AC00 ÷ 0600 ÷",
	"÷ AC00 × 0308 ÷ 0600 ÷",
	"÷ AC00 × 0903 ÷",
	"÷ AC00 × 0308 × 0903 ÷",
	"÷ AC00 ÷ 1100 ÷",
	"÷ AC00 × 0308 ÷ 1100 ÷",
	"÷ AC00 × 1160 ÷",
	"÷ AC00 × 0308 ÷ 1160 ÷",
	"÷ AC00 × 11A8 ÷",
	"÷ AC00 × 0308 ÷ 11A8 ÷",
	"÷ AC00 ÷ AC00 ÷",
	"÷ AC00 × 0308 ÷ AC00 ÷",
	"÷ AC00 ÷ AC01 ÷",
	"÷ AC00 × 0308 ÷ AC01 ÷",
	"÷ AC00 ÷ 231A ÷",
	"÷ AC00 × 0308 ÷ 231A ÷",
	"÷ AC00 ÷ 1F600 ÷",
	"÷ AC00 × 0308 ÷ 1F600 ÷",
	"÷ AC01 ÷ 0020 ÷",
	"÷ AC01 × 0308 ÷ 0020 ÷",
	"÷ AC01 ÷ 0378 ÷",
	"÷ AC01 × 0308 ÷ 0378 ÷",
	"÷ AC01 ÷ 000D ÷",
	"÷ AC01 × 0308 ÷ 000D ÷",
	"÷ AC01 ÷ 000A ÷",
	"÷ AC01 × 0308 ÷ 000A ÷",
	"÷ AC01 ÷ 0001 ÷",
	"÷ AC01 × 0308 ÷ 0001 ÷",
	"÷ AC01 × 0300 ÷",
	"÷ AC01 × 0308 × 0300 ÷",
	"÷ AC01 × 1F3FB ÷",
	"÷ AC01 × 0308 × 1F3FB ÷",
	"÷ AC01 × 200D ÷",
	"÷ AC01 × 0308 × 200D ÷",
	"÷ AC01 ÷ 1F1E6 ÷",
	"÷ AC01 × 0308 ÷ 1F1E6 ÷",
	"÷ AC01 ÷ 0600 ÷",
	"÷ AC01 × 0308 ÷ 0600 ÷",
	"÷ AC01 × 0903 ÷",
	"÷ AC01 × 0308 × 0903 ÷",
	"÷ AC01 ÷ 1100 ÷",
	"÷ AC01 × 0308 ÷ 1100 ÷",
	"÷ AC01 ÷ 1160 ÷",
	"÷ AC01 × 0308 ÷ 1160 ÷",
	"÷ AC01 × 11A8 ÷",
	"÷ AC01 × 0308 ÷ 11A8 ÷",
	"÷ AC01 ÷ AC00 ÷",
	"÷ AC01 × 0308 ÷ AC00 ÷",
	"÷ AC01 ÷ AC01 ÷",
	"÷ AC01 × 0308 ÷ AC01 ÷",
	"÷ AC01 ÷ 231A ÷",
	"÷ AC01 × 0308 ÷ 231A ÷",
	"÷ AC01 ÷ 1F600 ÷",
	"÷ AC01 × 0308 ÷ 1F600 ÷",
	"÷ 231A ÷ 0020 ÷",
	"÷ 231A × 0308 ÷ 0020 ÷",
	"÷ 231A ÷ 0378 ÷",
	"÷ 231A × 0308 ÷ 0378 ÷",
	"÷ 231A ÷ 000D ÷",
	"÷ 231A × 0308 ÷ 000D ÷",
	"÷ 231A ÷ 000A ÷",
	"÷ 231A × 0308 ÷ 000A ÷",
	"÷ 231A ÷ 0001 ÷",
	"÷ 231A × 0308 ÷ 0001 ÷",
	"÷ 231A × 0300 ÷",
	"÷ 231A × 0308 × 0300 ÷",
	"÷ 231A × 1F3FB ÷",
	"÷ 231A × 0308 × 1F3FB ÷",
	"÷ 231A × 200D ÷",
	"÷ 231A × 0308 × 200D ÷",
	"÷ 231A ÷ 1F1E6 ÷",
	"÷ 231A × 0308 ÷ 1F1E6 ÷",
	"÷ 231A ÷ 0600 ÷",
	"÷ 231A × 0308 ÷ 0600 ÷",
	"÷ 231A × 0903 ÷",
	"÷ 231A × 0308 × 0903 ÷",
	"÷ 231A ÷ 1100 ÷",
	"÷ 231A × 0308 ÷ 1100 ÷",
	"÷ 231A ÷ 1160 ÷",
	"÷ 231A × 0308 ÷ 1160 ÷",
	"÷ 231A ÷ 11A8 ÷",
	"÷ 231A × 0308 ÷ 11A8 ÷",
	"÷ 231A ÷ AC00 ÷",
	"÷ 231A × 0308 ÷ AC00 ÷",
	"÷ 231A ÷ AC01 ÷",
	"÷ 231A × 0308 ÷ AC01 ÷",
	"÷ 231A ÷ 231A ÷",
	"÷ 231A × 0308 ÷ 231A ÷",
	"÷ 231A ÷ 1F600 ÷",
	"÷ 231A × 0308 ÷ 1F600 ÷",
	"÷ 1F600 ÷ 0020 ÷",
	"÷ 1F600 × 0308 ÷ 0020 ÷",
	"÷ 1F600 ÷ 0378 ÷",
	"÷ 1F600 × 0308 ÷ 0378 ÷",
	"÷ 1F600 ÷ 000D ÷",
	"÷ 1F600 × 0308 ÷ 000D ÷",
	"÷ 1F600 ÷ 000A ÷",
	"÷ 1F600 × 0308 ÷ 000A ÷",
	"÷ 1F600 ÷ 0001 ÷",
	"÷ 1F600 × 0308 ÷ 0001 ÷",
	"÷ 1F600 × 0300 ÷",
	"÷ 1F600 × 0308 × 0300 ÷",
	"÷ 1F600 × 1F3FB ÷",
	"÷ 1F600 × 0308 × 1F3FB ÷",
	"÷ 1F600 × 200D ÷",
	"÷ 1F600 × 0308 × 200D ÷",
	"÷ 1F600 ÷ 1F1E6 ÷",
	"÷ 1F600 × 0308 ÷ 1F1E6 ÷",
	"÷ 1F600 ÷ 0600 ÷",
	"÷ 1F600 × 0308 ÷ 0600 ÷",
	"÷ 1F600 × 0903 ÷",
	"÷ 1F600 × 0308 × 0903 ÷",
	"÷ 1F600 ÷ 1100 ÷",
	"÷ 1F600 × 0308 ÷ 1100 ÷",
	"÷ 1F600 ÷ 1160 ÷",
	"÷ 1F600 × 0308 ÷ 1160 ÷",
	"÷ 1F600 ÷ 11A8 ÷",
	"÷ 1F600 × 0308 ÷ 11A8 ÷",
	"÷ 1F600 ÷ AC00 ÷",
	"÷ 1F600 × 0308 ÷ AC00 ÷",
	"÷ 1F600 ÷ AC01 ÷",
	"÷ 1F600 × 0308 ÷ AC01 ÷",
	"÷ 1F600 ÷ 231A ÷",
	"÷ 1F600 × 0308 ÷ 231A ÷",
	"÷ 1F600 ÷ 1F600 ÷",
	"÷ 1F600 × 0308 ÷ 1F600 ÷",
	"÷ 000D × 000A ÷ 000A ÷",
	"÷ 0061 ÷ 000D × 000A ÷ 0062 ÷",
	"÷ 1F1E6 × 1F1E7 ÷",
	"÷ 1F1E6 × 1F1E7 ÷ 1F1E8 ÷",
	"÷ 1F1E6 × 1F1E7 ÷ 1F1E8 × 1F1E9 ÷",
	"÷ 1F1E6 × 1F1E7 ÷ 1F1E8 × 1F1E9 ÷ 1F1EA ÷",
	"÷ 1F1E6 × 0308 ÷ 1F1E7 ÷",
	"÷ 0061 ÷ 1F1E6 × 1F1E7 ÷ 1F1E8 ÷ 0062 ÷",
	"÷ 1F468 × 200D × 1F469 × 200D × 1F467 ÷",
	"÷ 1F600 × 0300 × 200D × 1F600 ÷",
	"÷ 1F600 × 0300 × 0300 × 200D × 1F600 ÷",
	"÷ 1F600 × 200D ÷ 0061 ÷",
	"÷ 0061 × 200D ÷ 1F600 ÷",
	"÷ 200D ÷ 1F600 ÷",
	"÷ 1F44D × 1F3FB ÷",
	"÷ 1F476 × 1F3FF ÷ 1F476 ÷",
	"÷ 0600 × 0600 × 0061 ÷",
	"÷ 0600 ÷ 000D ÷",
	"÷ 1100 × 1160 × 11A8 ÷ 1100 ÷",
	"÷ AC00 × 11A8 ÷ 1160 ÷",
	"÷ 0903 × 0903 ÷",
	"÷ 0061 × 0903 ÷ 0062 ÷",
	"÷ 0061 ÷ 0600 × 0062 ÷",
	"÷ 0061 × 0300 × 200D ÷ 1F600 ÷",
}

func parseBreakSequence(t *testing.T, line string) (string, []string) {
	t.Helper()
	var sb, seg strings.Builder
	var segs []string
	for _, f := range strings.Fields(line) {
		switch f {
		case "÷":
			if seg.Len() > 0 {
				segs = append(segs, seg.String())
				seg.Reset()
			}
		case "×":
		default:
			cp, err := strconv.ParseUint(f, 16, 32)
			if err != nil {
				t.Fatalf("bad sequence %q: %v", line, err)
			}
			sb.WriteRune(rune(cp))
			seg.WriteRune(rune(cp))
		}
	}
	return sb.String(), segs
}

func TestBoundarySequences(t *testing.T) {
	for _, line := range breakSequences {
		in, want := parseBreakSequence(t, line)
		if got := segment(in); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: segmented %q, want %q", line, got, want)
		}
	}
}

// TestBoundarySequencesState drives BreakState directly over the same
// vectors, pair by pair, checking each individual boundary decision.
func TestBoundarySequencesState(t *testing.T) {
	for _, line := range breakSequences {
		var runes []rune
		var want []bool
		for _, f := range strings.Fields(line) {
			switch f {
			case "÷", "×":
				if len(runes) > 0 {
					want = append(want, f == "÷")
				}
			default:
				cp, err := strconv.ParseUint(f, 16, 32)
				if err != nil {
					t.Fatalf("bad sequence %q: %v", line, err)
				}
				runes = append(runes, rune(cp))
			}
		}
		want = want[:len(runes)-1] // interior boundaries only
		var state State
		for i := 1; i < len(runes); i++ {
			if got := BreakState(runes[i-1], runes[i], &state); got != want[i-1] {
				t.Errorf("%s: boundary %d = %v, want %v", line, i, got, want[i-1])
			}
		}
	}
}
