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

// Package result defines the wire schema the operations hand back to their
// host: match payloads with dual-coordinate spans, and the structured error
// union. Every value is created fresh per call and carries no state.
package result

import (
	"encoding/json"

	"github.com/walteh/rematch/pkg/textpos"
)

// 📦 Capture is one capture group within one match. The first four fields
// are always present; Content and the two spans exist only when the group
// participated in the match. Group 0 is the entire match and always
// participates.
type Capture struct {
	GroupNum        int           `json:"groupNum"`
	GroupName       string        `json:"groupName,omitempty"`
	IsParticipating bool          `json:"isParticipating"`
	EntireMatch     bool          `json:"entireMatch"`
	Content         *Content      `json:"content,omitempty"`
	Span            *textpos.Span `json:"span,omitempty"`
	SpanUtf16       *textpos.Span `json:"spanUtf16,omitempty"`
}

// 📦 MatchResult is the ordered list of matches; each match is its captures
// indexed by group number.
type MatchResult struct {
	Matches [][]Capture `json:"matches"`
}

// Error classes of the ErrorResult union.
const (
	ClassRegexSyntax = "regexSyntax"
	ClassRegexTooBig = "regexCompiledTooBig"
	ClassUnspecified = "regexUnspecified"
	ClassUnescape    = "unescape"
)

// 🏷️ Role names the input an unescape error originated from.
type Role string

const (
	RoleSubject     Role = "subject"
	RolePattern     Role = "pattern"
	RoleReplacement Role = "replacement"
)

// 💥 ErrorResult is the tagged error union: an error class plus its
// class-specific payload.
type ErrorResult struct {
	Class   string
	Payload any
}

// MarshalJSON renders the union as {"errorClass": ..., "error": ...}.
func (e *ErrorResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class   string `json:"errorClass"`
		Payload any    `json:"error"`
	}{e.Class, e.Payload})
}

// String renders a short human-readable description.
func (e *ErrorResult) String() string {
	switch p := e.Payload.(type) {
	case string:
		return p
	case *SyntaxPayload:
		return p.Message
	case *UnescapePayload:
		return p.Message
	default:
		return e.Class
	}
}

// 💥 SyntaxPayload is the regexSyntax error payload: a symbolic kind, the
// offending pattern, and the fault's location in both coordinate systems.
type SyntaxPayload struct {
	Kind      string       `json:"kind"`
	Message   string       `json:"message"`
	Pattern   string       `json:"pattern"`
	Span      textpos.Span `json:"span"`
	SpanUtf16 textpos.Span `json:"spanUtf16"`
}

// 💥 UnescapePayload is the unescape error payload: a symbolic kind, the
// fault's location within the still-escaped input, and which input it was.
type UnescapePayload struct {
	Kind      string       `json:"kind"`
	Message   string       `json:"message"`
	Span      textpos.Span `json:"span"`
	SpanUtf16 textpos.Span `json:"spanUtf16"`
	Source    Role         `json:"source"`
}
