// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"fmt"
	"regexp/syntax"
	"unicode/utf8"
)

// 🚩 Flags is the set of matching modes a caller can toggle. Each mode maps
// to one character of the flags string: i, m, s, U, u, x.
type Flags struct {
	CaseInsensitive bool // i
	MultiLine       bool // m: ^ and $ match at line boundaries
	DotAll          bool // s: . matches newline
	SwapGreed       bool // U: quantifiers are lazy by default
	Unicode         bool // u: enable \p{...} unicode classes
	Extended        bool // x: whitespace-insensitive pattern syntax
}

// 🎯 ParseFlags parses a flags string. Repeated characters are tolerated; an
// unrecognized character is reported as a syntax-class error positioned
// within the flags string.
func ParseFlags(s string) (Flags, *SyntaxError) {
	var f Flags
	for i, c := range s {
		switch c {
		case 'i':
			f.CaseInsensitive = true
		case 'm':
			f.MultiLine = true
		case 's':
			f.DotAll = true
		case 'U':
			f.SwapGreed = true
		case 'u':
			f.Unicode = true
		case 'x':
			f.Extended = true
		default:
			return Flags{}, &SyntaxError{
				Kind:    "UnrecognizedFlag",
				Message: fmt.Sprintf("unrecognized flag %q (expected any of \"imsUux\")", c),
				Pattern: s,
				Start:   i,
				End:     i + utf8.RuneLen(c),
			}
		}
	}
	return f, nil
}

// String renders the flags in canonical order.
func (f Flags) String() string {
	b := make([]byte, 0, 6)
	if f.CaseInsensitive {
		b = append(b, 'i')
	}
	if f.MultiLine {
		b = append(b, 'm')
	}
	if f.DotAll {
		b = append(b, 's')
	}
	if f.SwapGreed {
		b = append(b, 'U')
	}
	if f.Unicode {
		b = append(b, 'u')
	}
	if f.Extended {
		b = append(b, 'x')
	}
	return string(b)
}

// syntaxFlags maps the toggles onto regexp/syntax parse flags. The default is
// single-line anchors and no unicode class groups, mirroring the flags-off
// behavior of the operations.
func (f Flags) syntaxFlags() syntax.Flags {
	fl := syntax.ClassNL | syntax.PerlX | syntax.OneLine
	if f.CaseInsensitive {
		fl |= syntax.FoldCase
	}
	if f.MultiLine {
		fl &^= syntax.OneLine
	}
	if f.DotAll {
		fl |= syntax.DotNL
	}
	if f.SwapGreed {
		fl |= syntax.NonGreedy
	}
	if f.Unicode {
		fl |= syntax.UnicodeGroups
	}
	return fl
}

// inlineGroup renders the subset of flags the engine accepts as an inline
// group, to prefix onto an already-validated pattern. Unicode and extended
// syntax have no inline spelling; unicode only widens validation and extended
// syntax is resolved by preprocessing before the engine ever sees the
// pattern.
func (f Flags) inlineGroup() string {
	b := make([]byte, 0, 7)
	if f.CaseInsensitive {
		b = append(b, 'i')
	}
	if f.MultiLine {
		b = append(b, 'm')
	}
	if f.DotAll {
		b = append(b, 's')
	}
	if f.SwapGreed {
		b = append(b, 'U')
	}
	if len(b) == 0 {
		return ""
	}
	return "(?" + string(b) + ")"
}
