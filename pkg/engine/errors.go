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
	"strings"
)

// 💥 SyntaxError is a positioned pattern-compilation failure. Start and End
// are byte offsets of the fault within Pattern (half-open). Kind is the
// engine's symbolic error identifier.
type SyntaxError struct {
	Kind    string
	Message string
	Pattern string
	Start   int
	End     int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s in %q", e.Kind, e.Message, e.Pattern)
}

// 💥 TooBigError reports a pattern whose compiled program exceeds the
// configured ceiling.
type TooBigError struct {
	Limit int64 // bytes
}

// Error implements the error interface.
func (e *TooBigError) Error() string {
	return fmt.Sprintf("compiled program exceeds the size limit of %d bytes", e.Limit)
}

// 💥 UnspecifiedError is the safety net for engine failures that are neither
// syntax errors nor size-limit failures. In practice this path is dead code.
type UnspecifiedError struct {
	Message string
}

// Error implements the error interface.
func (e *UnspecifiedError) Error() string {
	return e.Message
}

// errorKinds maps regexp/syntax error codes to the symbolic kind identifiers
// used on the wire.
var errorKinds = map[syntax.ErrorCode]string{
	syntax.ErrInternalError:         "InternalError",
	syntax.ErrInvalidCharClass:      "InvalidCharClass",
	syntax.ErrInvalidCharRange:      "InvalidCharRange",
	syntax.ErrInvalidEscape:         "InvalidEscape",
	syntax.ErrInvalidNamedCapture:   "InvalidNamedCapture",
	syntax.ErrInvalidPerlOp:         "InvalidPerlOp",
	syntax.ErrInvalidRepeatOp:       "InvalidRepeatOp",
	syntax.ErrInvalidRepeatSize:     "InvalidRepeatSize",
	syntax.ErrInvalidUTF8:           "InvalidUTF8",
	syntax.ErrMissingBracket:        "MissingBracket",
	syntax.ErrMissingParen:          "MissingParen",
	syntax.ErrMissingRepeatArgument: "MissingRepeatArgument",
	syntax.ErrTrailingBackslash:     "TrailingBackslash",
	syntax.ErrUnexpectedParen:       "UnexpectedParen",
	syntax.ErrNestingDepth:          "NestingDepth",
	syntax.ErrLarge:                 "Large",
}

// newSyntaxError converts a regexp/syntax parse failure into a SyntaxError,
// locating the offending expression within the pattern. The parser reports
// the faulty sub-expression text rather than an offset, so the span is the
// first occurrence of that text; when the sub-expression is empty or cannot
// be found the span covers the whole pattern.
func newSyntaxError(pattern string, err *syntax.Error) *SyntaxError {
	kind, ok := errorKinds[err.Code]
	if !ok {
		kind = "Unspecified"
	}

	start, end := 0, len(pattern)
	if err.Expr != "" {
		if idx := strings.Index(pattern, err.Expr); idx >= 0 {
			start, end = idx, idx+len(err.Expr)
		}
	}

	return &SyntaxError{
		Kind:    kind,
		Message: string(err.Code),
		Pattern: pattern,
		Start:   start,
		End:     end,
	}
}
