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

package result

import (
	"github.com/walteh/rematch/pkg/engine"
	"github.com/walteh/rematch/pkg/quote"
	"github.com/walteh/rematch/pkg/textpos"
)

// 🏭 ProjectMatches turns raw engine matches over subject into the wire
// shape. One offset translator is built for the subject and shared across
// every span of every match.
func ProjectMatches(subject string, ms []engine.Match) *MatchResult {
	out := &MatchResult{Matches: [][]Capture{}}
	if len(ms) == 0 {
		return out
	}

	tr := textpos.New(subject)
	for _, m := range ms {
		caps := make([]Capture, 0, m.NumGroups())
		for g := 0; g < m.NumGroups(); g++ {
			c := Capture{
				GroupNum:    g,
				GroupName:   m.GroupName(g),
				EntireMatch: g == 0,
			}
			if start, end, ok := m.Group(g); ok {
				spans := tr.SpanAt(start, end)
				c.IsParticipating = true
				c.Content = ContentOf(subject[start:end])
				c.Span = &spans.Bytes
				c.SpanUtf16 = &spans.Utf16
			}
			caps = append(caps, c)
		}
		out.Matches = append(out.Matches, caps)
	}
	return out
}

// 🏭 ProjectCompileError classifies a pattern-compilation failure into the
// error union.
func ProjectCompileError(err error) *ErrorResult {
	switch e := err.(type) {
	case *engine.SyntaxError:
		tr := textpos.New(e.Pattern)
		spans := tr.SpanAt(e.Start, e.End)
		return &ErrorResult{
			Class: ClassRegexSyntax,
			Payload: &SyntaxPayload{
				Kind:      e.Kind,
				Message:   e.Message,
				Pattern:   e.Pattern,
				Span:      spans.Bytes,
				SpanUtf16: spans.Utf16,
			},
		}
	case *engine.TooBigError:
		return &ErrorResult{Class: ClassRegexTooBig, Payload: e.Error()}
	default:
		return &ErrorResult{Class: ClassUnspecified, Payload: err.Error()}
	}
}

// 🏭 ProjectDecodeError turns a quoting-dialect decode failure into the
// error union, tagged with the input it came from.
func ProjectDecodeError(role Role, e *quote.DecodeError) *ErrorResult {
	return &ErrorResult{
		Class: ClassUnescape,
		Payload: &UnescapePayload{
			Kind:      e.Kind.String(),
			Message:   e.Message,
			Span:      e.Spans.Bytes,
			SpanUtf16: e.Spans.Utf16,
			Source:    role,
		},
	}
}
