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

package rematch

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/walteh/rematch/pkg/engine"
	"github.com/walteh/rematch/pkg/quote"
	"github.com/walteh/rematch/pkg/result"
)

// 📦 Request carries one operation's inputs. Subject, Pattern, and
// Replacement are still quoted per their styles; a nil style means Ignore.
// Replacement and its style only matter to Replace and ReplaceList.
type Request struct {
	Subject     string
	Pattern     string
	Replacement string

	// Flags is the flag string, any of "imsUux".
	Flags string

	SubjectStyle     quote.Style
	PatternStyle     quote.Style
	ReplacementStyle quote.Style

	Options engine.Options
}

func styleOrIgnore(s quote.Style) quote.Style {
	if s == nil {
		return quote.Ignore
	}
	return s
}

// decode runs the quoting dialects over the role-tagged inputs. The first
// failure wins, tagged with the input it came from.
func (r Request) decode(withReplacement bool) (subject, pattern, replacement string, errRes *result.ErrorResult) {
	subject, derr := quote.Decode(r.Subject, styleOrIgnore(r.SubjectStyle))
	if derr != nil {
		return "", "", "", result.ProjectDecodeError(result.RoleSubject, derr)
	}

	pattern, derr = quote.Decode(r.Pattern, styleOrIgnore(r.PatternStyle))
	if derr != nil {
		return "", "", "", result.ProjectDecodeError(result.RolePattern, derr)
	}

	if withReplacement {
		replacement, derr = quote.Decode(r.Replacement, styleOrIgnore(r.ReplacementStyle))
		if derr != nil {
			return "", "", "", result.ProjectDecodeError(result.RoleReplacement, derr)
		}
	}

	return subject, pattern, replacement, nil
}

// compile parses the flag string and builds the decoded pattern. A nil
// Pattern with no error means the pattern was empty.
func (r Request) compile(pattern string) (*engine.Pattern, *result.ErrorResult) {
	flags, ferr := engine.ParseFlags(r.Flags)
	if ferr != nil {
		return nil, result.ProjectCompileError(ferr)
	}

	p, err := engine.Compile(pattern, flags, r.Options)
	if err != nil {
		return nil, result.ProjectCompileError(err)
	}
	return p, nil
}

// 🔍 Find returns every match of the pattern in the subject, with captures
// in dual coordinates. The empty pattern yields an empty result.
func Find(ctx context.Context, req Request) (*result.MatchResult, *result.ErrorResult) {
	subject, pattern, _, errRes := req.decode(false)
	if errRes != nil {
		return nil, errRes
	}

	p, errRes := req.compile(pattern)
	if errRes != nil {
		return nil, errRes
	}

	ms := p.MatchAll(subject)
	zerolog.Ctx(ctx).Debug().
		Str("pattern", pattern).
		Int("matches", len(ms)).
		Msg("find complete")

	return result.ProjectMatches(subject, ms), nil
}

// ✏️ Replace substitutes the replacement template for every match, keeping
// the text between matches verbatim. The empty pattern returns the decoded
// subject unchanged.
func Replace(ctx context.Context, req Request) (string, *result.ErrorResult) {
	subject, pattern, replacement, errRes := req.decode(true)
	if errRes != nil {
		return "", errRes
	}

	p, errRes := req.compile(pattern)
	if errRes != nil {
		return "", errRes
	}
	if p == nil {
		return subject, nil
	}

	ms := p.MatchAll(subject)
	out := make([]byte, 0, len(subject))
	last := 0
	for _, m := range ms {
		out = append(out, subject[last:m.Start()]...)
		out = p.Expand(out, replacement, subject, m)
		last = m.End()
	}
	out = append(out, subject[last:]...)

	zerolog.Ctx(ctx).Debug().
		Str("pattern", pattern).
		Int("matches", len(ms)).
		Msg("replace complete")

	return string(out), nil
}

// 📃 ReplaceList substitutes the replacement template for every match and
// concatenates only the substituted fragments, discarding everything between
// matches. The empty pattern returns the empty string.
func ReplaceList(ctx context.Context, req Request) (string, *result.ErrorResult) {
	subject, pattern, replacement, errRes := req.decode(true)
	if errRes != nil {
		return "", errRes
	}

	p, errRes := req.compile(pattern)
	if errRes != nil {
		return "", errRes
	}
	if p == nil {
		return "", nil
	}

	ms := p.MatchAll(subject)
	var out []byte
	for _, m := range ms {
		out = p.Expand(out, replacement, subject, m)
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", pattern).
		Int("matches", len(ms)).
		Msg("replace-list complete")

	return string(out), nil
}
