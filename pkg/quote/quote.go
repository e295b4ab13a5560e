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

// Package quote interprets caller-supplied text under source-literal quoting
// dialects. A caller that pastes an already-quoted fragment declares the
// dialect it was quoted in, and Decode resolves the escapes (or rejects the
// fragment with a positioned error in the coordinates of the original input).
package quote

import (
	"fmt"
	"strings"
)

// 🎭 Style is one quoting dialect. The set of implementations is closed:
// every style lives in this package, and adding a dialect means adding a
// variant and its decode method, not touching call sites.
type Style interface {
	// decode resolves the dialect over the literal contents (delimiters not
	// included), or reports a positioned error against the original input.
	decode(input string) (string, *DecodeError)

	// String names the dialect the way the style tokens spell it.
	String() string
}

var (
	// Ignore passes input through untouched.
	Ignore Style = ignoreStyle{}

	// Str treats input as the contents of a standard quoted string literal
	// and resolves backslash escapes.
	Str Style = strStyle{}

	// Raw treats input as the contents of a raw literal delimited by `"`.
	Raw Style = rawStyle{hashes: 0}
)

// RawHash returns the raw-literal style whose delimiter is `"` followed by n
// hash characters, for n in 1..4. Out-of-range n yields a style whose decode
// always fails with an unsupported-style error.
func RawHash(n int) Style {
	if n < 1 || n > 4 {
		return unsupportedStyle{token: fmt.Sprintf("rawhash%d", n)}
	}
	return rawStyle{hashes: n}
}

// 🎯 ParseStyle resolves a style token (`ignore`, `str`, `raw`,
// `rawhash1`..`rawhash4`). The empty token means Ignore. Unknown tokens are
// reported as an unsupported-style decode error spanning the whole token.
func ParseStyle(token string) (Style, *DecodeError) {
	switch token {
	case "", "ignore":
		return Ignore, nil
	case "str":
		return Str, nil
	case "raw":
		return Raw, nil
	case "rawhash1":
		return rawStyle{hashes: 1}, nil
	case "rawhash2":
		return rawStyle{hashes: 2}, nil
	case "rawhash3":
		return rawStyle{hashes: 3}, nil
	case "rawhash4":
		return rawStyle{hashes: 4}, nil
	default:
		return nil, errAt(token, 0, len(token), KindUnsupportedStyle,
			fmt.Sprintf("unsupported quote style %q", token))
	}
}

// 🎯 Decode resolves input under the given style. A nil style is Ignore.
func Decode(input string, style Style) (string, *DecodeError) {
	if style == nil {
		style = Ignore
	}
	return style.decode(input)
}

type ignoreStyle struct{}

func (ignoreStyle) decode(input string) (string, *DecodeError) {
	return input, nil
}

func (ignoreStyle) String() string { return "ignore" }

type rawStyle struct {
	hashes int
}

func (r rawStyle) decode(input string) (string, *DecodeError) {
	// The closing delimiter inside the content would have terminated the
	// literal early.
	term := `"` + strings.Repeat("#", r.hashes)
	if idx := strings.Index(input, term); idx >= 0 {
		return "", errAt(input, idx, idx+len(term), KindForbiddenTerminator,
			fmt.Sprintf("raw literal content contains closing delimiter %q", term))
	}
	return input, nil
}

func (r rawStyle) String() string {
	if r.hashes == 0 {
		return "raw"
	}
	return fmt.Sprintf("rawhash%d", r.hashes)
}

type unsupportedStyle struct {
	token string
}

func (u unsupportedStyle) decode(input string) (string, *DecodeError) {
	return "", errAt(input, 0, len(input), KindUnsupportedStyle,
		fmt.Sprintf("unsupported quote style %q", u.token))
}

func (u unsupportedStyle) String() string { return u.token }
