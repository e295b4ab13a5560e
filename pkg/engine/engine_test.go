package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestParseFlags checks flag-string parsing
func TestParseFlags(t *testing.T) {
	f, err := ParseFlags("imsUux")
	require.Nil(t, err)
	assert.True(t, f.CaseInsensitive)
	assert.True(t, f.MultiLine)
	assert.True(t, f.DotAll)
	assert.True(t, f.SwapGreed)
	assert.True(t, f.Unicode)
	assert.True(t, f.Extended)
	assert.Equal(t, "imsUux", f.String())

	f, err = ParseFlags("")
	require.Nil(t, err)
	assert.Equal(t, Flags{}, f)

	f, err = ParseFlags("ii")
	require.Nil(t, err)
	assert.True(t, f.CaseInsensitive, "repeated flags are tolerated")

	_, err = ParseFlags("imz")
	require.NotNil(t, err)
	assert.Equal(t, "UnrecognizedFlag", err.Kind)
	assert.Equal(t, 2, err.Start)
	assert.Equal(t, 3, err.End)
	assert.Equal(t, "imz", err.Pattern)
}

// 🧪 TestCompileEmptyPattern checks the empty-pattern short circuit
func TestCompileEmptyPattern(t *testing.T) {
	p, err := Compile("", Flags{}, Options{})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Nil(t, p.MatchAll("anything"), "nil pattern matches nothing")
}

// 🧪 TestCompileSyntaxError checks positioned syntax failures
func TestCompileSyntaxError(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		kind    string
		start   int
		end     int
	}{
		{"unmatched_close_paren", ")", "UnexpectedParen", 0, 1},
		{"unclosed_group", "a(", "MissingParen", 0, 2},
		{"unclosed_class", "[a-", "MissingBracket", 0, 3},
		{"dangling_repeat", "*", "MissingRepeatArgument", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern, Flags{}, Options{})
			require.Error(t, err)

			serr, ok := err.(*SyntaxError)
			require.True(t, ok, "expected *SyntaxError, got %T", err)
			assert.Equal(t, tt.kind, serr.Kind)
			assert.Equal(t, tt.pattern, serr.Pattern)
			assert.Equal(t, tt.start, serr.Start)
			assert.Equal(t, tt.end, serr.End)
		})
	}
}

// 🧪 TestCompileTooBig checks the configured size ceiling
func TestCompileTooBig(t *testing.T) {
	_, err := Compile("a+b+c+", Flags{}, Options{SizeLimit: 64})
	require.Error(t, err)

	tbe, ok := err.(*TooBigError)
	require.True(t, ok, "expected *TooBigError, got %T", err)
	assert.Equal(t, int64(64), tbe.Limit)
	assert.Contains(t, tbe.Error(), "64", "limit is embedded in the message")
}

// 🧪 TestMatchAll checks match enumeration and group spans
func TestMatchAll(t *testing.T) {
	p, err := Compile("ab", Flags{}, Options{})
	require.NoError(t, err)

	ms := p.MatchAll("ab ab")
	require.Len(t, ms, 2)
	assert.Equal(t, 0, ms[0].Start())
	assert.Equal(t, 2, ms[0].End())
	assert.Equal(t, 3, ms[1].Start())
	assert.Equal(t, 5, ms[1].End())
}

// 🧪 TestMatchAllNamedGroups checks named-group metadata and participation
func TestMatchAllNamedGroups(t *testing.T) {
	p, err := Compile(`(?P<year>\d{4})-(?P<month>\d{2})`, Flags{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "year", "month"}, p.GroupNames())

	ms := p.MatchAll("date: 2024-01")
	require.Len(t, ms, 1)

	m := ms[0]
	assert.Equal(t, 3, m.NumGroups())
	assert.Equal(t, "year", m.GroupName(1))

	start, end, ok := m.Group(1)
	require.True(t, ok)
	assert.Equal(t, "2024", "date: 2024-01"[start:end])
}

// 🧪 TestMatchAllNonParticipating checks that unmatched alternation branches
// report no span
func TestMatchAllNonParticipating(t *testing.T) {
	p, err := Compile("(a)|(b)", Flags{}, Options{})
	require.NoError(t, err)

	ms := p.MatchAll("b")
	require.Len(t, ms, 1)

	_, _, ok := ms[0].Group(1)
	assert.False(t, ok, "group 1 did not participate")

	start, end, ok := ms[0].Group(2)
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)
}

// 🧪 TestExpand checks replacement-template resolution
func TestExpand(t *testing.T) {
	p, err := Compile(`(?P<word>\w+)=(\d+)`, Flags{}, Options{})
	require.NoError(t, err)

	subject := "count=42"
	ms := p.MatchAll(subject)
	require.Len(t, ms, 1)
	m := ms[0]

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"whole_match", "$0", "count=42"},
		{"numeric", "$2:$1", "42:count"},
		{"named", "$word", "count"},
		{"braced", "${word}!", "count!"},
		{"literal_dollar", "$$1", "$1"},
		{"unknown_name", "$missing-", "-"},
		{"out_of_range", "$9", ""},
		{"trailing_dollar", "x$", "x$"},
		{"bare_dollar_brace", "${", "${"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Expand(nil, tt.template, subject, m)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

// 🧪 TestStripExtended checks extended-syntax preprocessing
func TestStripExtended(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"spaces", "a b  c", "abc"},
		{"comment", "ab # matches ab\ncd", "abcd"},
		{"escaped_space", `a\ b`, `a\ b`},
		{"class_kept", "[ #]a b", "[ #]ab"},
		{"newlines_tabs", "a\n\tb", "ab"},
		{"escaped_hash", `a\#b`, `a\#b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripExtended(tt.pattern))
		})
	}
}

// 🧪 TestCompileFlagsApply checks that flags change matching behavior
func TestCompileFlagsApply(t *testing.T) {
	p, err := Compile("abc", Flags{CaseInsensitive: true}, Options{})
	require.NoError(t, err)
	assert.Len(t, p.MatchAll("ABC"), 1, "i flag folds case")

	p, err = Compile("a.c", Flags{DotAll: true}, Options{})
	require.NoError(t, err)
	assert.Len(t, p.MatchAll("a\nc"), 1, "s flag lets dot match newline")

	p, err = Compile("^b$", Flags{MultiLine: true}, Options{})
	require.NoError(t, err)
	assert.Len(t, p.MatchAll("a\nb\nc"), 1, "m flag anchors at line boundaries")

	p, err = Compile("a b", Flags{Extended: true}, Options{})
	require.NoError(t, err)
	assert.Len(t, p.MatchAll("ab"), 1, "x flag ignores pattern whitespace")
}
