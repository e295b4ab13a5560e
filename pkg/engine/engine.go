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

// Package engine adapts the external matching engine (coregex) to the
// operations above it: it parses flag strings, validates patterns with
// positioned errors, enforces a compiled-size ceiling, and enumerates raw
// matches as byte spans per capture group.
//
// Validation and building are deliberately split, the same way coregex itself
// splits them internally: regexp/syntax supplies the symbolic, positioned
// parse errors, and coregex supplies the linear-time matcher. By the time
// coregex sees a pattern it has already been validated, so engine-side
// failures are a safety net, not an expected path.
package engine

import (
	"regexp/syntax"

	"github.com/coregx/coregex"
	"github.com/coregx/coregex/nfa"
	"gitlab.com/tozd/go/errors"
)

// DefaultSizeLimit is the compiled-program ceiling applied when Options does
// not set one: 10 MiB.
const DefaultSizeLimit = 10 << 20

// instBytes is the coarse per-instruction memory footprint used to translate
// a compiled program length into bytes for the ceiling check.
const instBytes = 64

// ⚙️ Options tunes compilation.
type Options struct {
	// SizeLimit is the maximum compiled program size in bytes. Zero means
	// DefaultSizeLimit.
	SizeLimit int64
}

func (o Options) sizeLimit() int64 {
	if o.SizeLimit <= 0 {
		return DefaultSizeLimit
	}
	return o.SizeLimit
}

// 🧵 Pattern is a compiled pattern ready for matching. A nil Pattern is the
// compiled form of the empty pattern and matches nothing.
type Pattern struct {
	re    *coregex.Regex
	names []string
}

// 🎯 Compile validates and builds a pattern under the given flags.
//
// The empty pattern short-circuits to a nil Pattern. Failures are returned as
// *SyntaxError, *TooBigError, or *UnspecifiedError.
func Compile(pattern string, flags Flags, opts Options) (*Pattern, error) {
	if pattern == "" {
		return nil, nil
	}

	src := pattern
	if flags.Extended {
		src = stripExtended(src)
	}

	parsed, err := syntax.Parse(src, flags.syntaxFlags())
	if err != nil {
		var serr *syntax.Error
		if errors.As(err, &serr) {
			return nil, newSyntaxError(src, serr)
		}
		return nil, &UnspecifiedError{Message: err.Error()}
	}

	prog, err := syntax.Compile(parsed.Simplify())
	if err != nil {
		return nil, &UnspecifiedError{Message: err.Error()}
	}
	limit := opts.sizeLimit()
	if int64(len(prog.Inst))*instBytes > limit {
		return nil, &TooBigError{Limit: limit}
	}

	re, err := coregex.Compile(flags.inlineGroup() + src)
	if err != nil {
		if errors.Is(err, nfa.ErrTooComplex) {
			return nil, &TooBigError{Limit: limit}
		}
		return nil, &UnspecifiedError{Message: err.Error()}
	}

	return &Pattern{re: re, names: re.SubexpNames()}, nil
}

// 📦 Match is one engine match: stdlib-style index pairs per group, where a
// -1 pair marks a non-participating group, plus the pattern's group names.
type Match struct {
	idx   []int
	names []string
}

// NumGroups returns the number of groups including group 0.
func (m Match) NumGroups() int {
	return len(m.idx) / 2
}

// Group returns the byte span of group i and whether it participated.
func (m Match) Group(i int) (start, end int, ok bool) {
	if 2*i+1 >= len(m.idx) || m.idx[2*i] < 0 {
		return 0, 0, false
	}
	return m.idx[2*i], m.idx[2*i+1], true
}

// GroupName returns the declared name of group i, or "" for unnamed groups.
func (m Match) GroupName(i int) string {
	if i >= len(m.names) {
		return ""
	}
	return m.names[i]
}

// Start returns the byte offset where the whole match begins.
func (m Match) Start() int { return m.idx[0] }

// End returns the byte offset just past the whole match.
func (m Match) End() int { return m.idx[1] }

// 🔍 MatchAll enumerates every non-overlapping match in subject, in order.
// The nil (empty) pattern matches nothing.
func (p *Pattern) MatchAll(subject string) []Match {
	if p == nil {
		return nil
	}

	all := p.re.FindAllSubmatchIndex([]byte(subject), -1)
	if len(all) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(all))
	for _, idx := range all {
		matches = append(matches, Match{idx: idx, names: p.names})
	}
	return matches
}

// GroupNames returns the pattern's group names indexed by group number;
// index 0 is always "".
func (p *Pattern) GroupNames() []string {
	if p == nil {
		return nil
	}
	return p.names
}
