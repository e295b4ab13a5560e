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

package quote

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type strStyle struct{}

func (strStyle) String() string { return "str" }

// decode resolves the escapes of a standard string literal. The input is the
// contents of the literal, so a bare `"` would have terminated it early and
// is rejected. `\xNN` accepts the full byte range, which means decoded text
// is not guaranteed to be valid UTF-8.
func (strStyle) decode(input string) (string, *DecodeError) {
	if !strings.ContainsAny(input, `\"`) {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))

	for i := 0; i < len(input); {
		c := input[i]
		switch {
		case c == '"':
			return "", errAt(input, i, i+1, KindUnescapedQuote, `unescaped '"' in string`)
		case c != '\\':
			b.WriteByte(c)
			i++
		default:
			next, err := decodeEscape(input, i, &b)
			if err != nil {
				return "", err
			}
			i = next
		}
	}

	return b.String(), nil
}

// decodeEscape resolves one escape sequence beginning at the backslash at
// input[start], appends the result to b, and returns the offset just past
// the sequence.
func decodeEscape(input string, start int, b *strings.Builder) (int, *DecodeError) {
	if start+1 >= len(input) {
		return 0, errAt(input, start, start+1, KindLoneSlash, "lone '\\' at end of string")
	}

	switch input[start+1] {
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case '0':
		b.WriteByte(0)
	case '\\':
		b.WriteByte('\\')
	case '\'':
		b.WriteByte('\'')
	case '"':
		b.WriteByte('"')
	case 'x':
		return decodeHexEscape(input, start, b)
	case 'u':
		return decodeUnicodeEscape(input, start, b)
	default:
		// The escaped character may be multi-byte; the span covers the
		// backslash and the whole character.
		_, size := utf8.DecodeRuneInString(input[start+1:])
		return 0, errAt(input, start, start+1+size, KindInvalidEscape,
			fmt.Sprintf("unknown escape sequence %q", input[start:start+1+size]))
	}
	return start + 2, nil
}

// decodeHexEscape resolves `\xNN`, yielding a single byte of any value.
func decodeHexEscape(input string, start int, b *strings.Builder) (int, *DecodeError) {
	if start+4 > len(input) {
		return 0, errAt(input, start, len(input), KindTruncatedEscape,
			"hex escape needs two hex digits")
	}

	hi, okHi := hexDigit(input[start+2])
	lo, okLo := hexDigit(input[start+3])
	if !okHi || !okLo {
		// A non-digit may be multi-byte; the span must end on a character
		// boundary, so step over up to two characters after the `\x`.
		end := start + 2
		for n := 0; n < 2 && end < len(input); n++ {
			_, size := utf8.DecodeRuneInString(input[end:])
			end += size
		}
		return 0, errAt(input, start, end, KindInvalidHexDigit,
			fmt.Sprintf("invalid digit in hex escape %q", input[start:end]))
	}

	b.WriteByte(hi<<4 | lo)
	return start + 4, nil
}

// decodeUnicodeEscape resolves `\u{N...}` with 1 to 6 hex digits.
func decodeUnicodeEscape(input string, start int, b *strings.Builder) (int, *DecodeError) {
	if start+2 >= len(input) || input[start+2] != '{' {
		end := start + 2
		if end < len(input) {
			_, size := utf8.DecodeRuneInString(input[end:])
			end += size
		}
		return 0, errAt(input, start, end, KindMalformedUnicodeEscape,
			"unicode escape must use braces: \\u{...}")
	}

	value := rune(0)
	digits := 0
	i := start + 3
	for i < len(input) && input[i] != '}' {
		r, size := utf8.DecodeRuneInString(input[i:])
		d, ok := hexDigit(input[i])
		if size > 1 || !ok {
			return 0, errAt(input, start, i+size, KindMalformedUnicodeEscape,
				fmt.Sprintf("invalid character %q in unicode escape", r))
		}
		value = value<<4 | rune(d)
		digits++
		i++
	}
	if i == len(input) {
		return 0, errAt(input, start, len(input), KindTruncatedEscape,
			"unterminated unicode escape")
	}
	end := i + 1 // past the closing brace

	switch {
	case digits == 0:
		return 0, errAt(input, start, end, KindMalformedUnicodeEscape,
			"empty unicode escape")
	case digits > 6:
		return 0, errAt(input, start, end, KindMalformedUnicodeEscape,
			"unicode escape takes at most six digits")
	case value >= 0xD800 && value <= 0xDFFF:
		return 0, errAt(input, start, end, KindInvalidCodepoint,
			fmt.Sprintf("unicode escape %q is a surrogate codepoint", input[start:end]))
	case value > 0x10FFFF:
		return 0, errAt(input, start, end, KindInvalidCodepoint,
			fmt.Sprintf("unicode escape %q is beyond U+10FFFF", input[start:end]))
	}

	b.WriteRune(value)
	return end, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
