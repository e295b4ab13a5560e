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

	"github.com/walteh/rematch/pkg/textpos"
)

// 📛 ErrorKind classifies a decode failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUnsupportedStyle
	KindUnescapedQuote
	KindLoneSlash
	KindInvalidEscape
	KindTruncatedEscape
	KindInvalidHexDigit
	KindMalformedUnicodeEscape
	KindInvalidCodepoint
	KindForbiddenTerminator
)

// String returns the symbolic name of the kind, as it appears on the wire.
func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedStyle:
		return "UnsupportedStyle"
	case KindUnescapedQuote:
		return "UnescapedQuote"
	case KindLoneSlash:
		return "LoneSlash"
	case KindInvalidEscape:
		return "InvalidEscape"
	case KindTruncatedEscape:
		return "TruncatedEscape"
	case KindInvalidHexDigit:
		return "InvalidHexDigit"
	case KindMalformedUnicodeEscape:
		return "MalformedUnicodeEscape"
	case KindInvalidCodepoint:
		return "InvalidCodepoint"
	case KindForbiddenTerminator:
		// the input contained the dialect's own terminator pattern
		return "Pattern"
	default:
		return "Unknown"
	}
}

// 💥 DecodeError is a positioned decode failure. Spans are computed against
// the original, pre-decoding input, in both coordinate systems.
type DecodeError struct {
	Kind    ErrorKind
	Message string
	Spans   textpos.SpanPair
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Spans.Bytes.Start.Offset, e.Message)
}

// errAt builds a DecodeError whose span covers input[start:end].
func errAt(input string, start, end int, kind ErrorKind, message string) *DecodeError {
	return &DecodeError{
		Kind:    kind,
		Message: message,
		Spans:   textpos.New(input).SpanAt(start, end),
	}
}
