package rematch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/rematch/pkg/quote"
	"github.com/walteh/rematch/pkg/result"
)

// 🧪 TestFind checks plain match enumeration
func TestFind(t *testing.T) {
	res, errRes := Find(context.Background(), Request{Subject: "ab ab", Pattern: "ab"})
	require.Nil(t, errRes)
	require.Len(t, res.Matches, 2)

	first := res.Matches[0][0]
	assert.Equal(t, 0, first.GroupNum)
	assert.True(t, first.IsParticipating)
	assert.True(t, first.EntireMatch)
	assert.Equal(t, "ab", first.Content.Text())
	assert.Equal(t, 0, first.Span.Start.Offset)
	assert.Equal(t, 2, first.Span.End.Offset)
	assert.Equal(t, first.Span.Start.Offset, first.SpanUtf16.Start.Offset, "ascii spans agree")

	second := res.Matches[1][0]
	assert.Equal(t, 3, second.Span.Start.Offset)
	assert.Equal(t, 5, second.Span.End.Offset)
}

// 🧪 TestFindSyntaxError checks structured syntax-failure reporting
func TestFindSyntaxError(t *testing.T) {
	res, errRes := Find(context.Background(), Request{Subject: "", Pattern: ")"})
	assert.Nil(t, res)
	require.NotNil(t, errRes)
	assert.Equal(t, result.ClassRegexSyntax, errRes.Class)

	payload, ok := errRes.Payload.(*result.SyntaxPayload)
	require.True(t, ok)
	assert.Equal(t, "UnexpectedParen", payload.Kind)
	assert.Equal(t, ")", payload.Pattern)
	assert.Equal(t, 0, payload.Span.Start.Offset)
	assert.Equal(t, 1, payload.Span.End.Offset)
}

// 🧪 TestFindEmptyPattern checks the empty-pattern short circuit
func TestFindEmptyPattern(t *testing.T) {
	res, errRes := Find(context.Background(), Request{Subject: "anything", Pattern: ""})
	require.Nil(t, errRes)
	assert.Empty(t, res.Matches)
}

// 🧪 TestFindSurrogateAccounting checks UTF-16 spans after an astral
// codepoint
func TestFindSurrogateAccounting(t *testing.T) {
	res, errRes := Find(context.Background(), Request{Subject: "😀ab", Pattern: "ab"})
	require.Nil(t, errRes)
	require.Len(t, res.Matches, 1)

	c := res.Matches[0][0]
	assert.Equal(t, 4, c.Span.Start.Offset)
	assert.Equal(t, 6, c.Span.End.Offset)
	assert.Equal(t, 2, c.SpanUtf16.Start.Offset)
	assert.Equal(t, 4, c.SpanUtf16.End.Offset)
}

// 🧪 TestReplace checks template substitution over the whole subject
func TestReplace(t *testing.T) {
	tests := []struct {
		name        string
		description string
		req         Request
		want        string
	}{
		{
			name:        "simple_global",
			description: "every match is replaced, not just the first",
			req:         Request{Subject: "aaa", Pattern: "a", Replacement: "b"},
			want:        "bbb",
		},
		{
			name:        "named_group_template",
			description: "named references resolve against the pattern's groups",
			req: Request{
				Subject:     "test 1234 end",
				Pattern:     `test (?P<cap>\d+)\s?`,
				Replacement: "$cap: ",
			},
			want: "1234: end",
		},
		{
			name:        "empty_pattern",
			description: "empty pattern returns the subject unchanged",
			req:         Request{Subject: "anything", Pattern: "", Replacement: "x"},
			want:        "anything",
		},
		{
			name:        "case_insensitive_flag",
			description: "the i flag folds case end to end",
			req:         Request{Subject: "Ab aB", Pattern: "ab", Replacement: "x", Flags: "i"},
			want:        "x x",
		},
		{
			name:        "no_matches",
			description: "zero matches leaves the subject intact",
			req:         Request{Subject: "abc", Pattern: "z", Replacement: "x"},
			want:        "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errRes := Replace(context.Background(), tt.req)
			require.Nil(t, errRes, tt.description)
			assert.Equal(t, tt.want, got, tt.description)
		})
	}
}

// 🧪 TestReplaceList checks fragment-only substitution
func TestReplaceList(t *testing.T) {
	tests := []struct {
		name        string
		description string
		req         Request
		want        string
	}{
		{
			name:        "digits",
			description: "non-matching text between fragments is discarded",
			req:         Request{Subject: "a1b2", Pattern: "[0-9]", Replacement: "X"},
			want:        "XX",
		},
		{
			name:        "whole_match_lines",
			description: "$0 expands to each full match in order",
			req:         Request{Subject: "foo bar!", Pattern: `\w+`, Replacement: "$0\n"},
			want:        "foo\nbar\n",
		},
		{
			name:        "empty_pattern",
			description: "empty pattern yields the empty string",
			req:         Request{Subject: "anything", Pattern: "", Replacement: "x"},
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errRes := ReplaceList(context.Background(), tt.req)
			require.Nil(t, errRes, tt.description)
			assert.Equal(t, tt.want, got, tt.description)
		})
	}
}

// 🧪 TestQuotedInputs checks that dialects decode before matching
func TestQuotedInputs(t *testing.T) {
	// subject escapes decode to a real newline, pattern stays raw
	res, errRes := Find(context.Background(), Request{
		Subject:      `a\nb`,
		SubjectStyle: quote.Str,
		Pattern:      `a\nb`,
		PatternStyle: quote.Raw,
	})
	require.Nil(t, errRes)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "a\nb", res.Matches[0][0].Content.Text())
}

// 🧪 TestDecodeErrorRoles checks which input a decode failure is pinned to
func TestDecodeErrorRoles(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		role result.Role
	}{
		{
			name: "subject",
			req:  Request{Subject: `\q`, SubjectStyle: quote.Str, Pattern: "a"},
			role: result.RoleSubject,
		},
		{
			name: "pattern",
			req:  Request{Subject: "a", Pattern: `ab"cd`, PatternStyle: quote.Raw},
			role: result.RolePattern,
		},
		{
			name: "subject_wins_over_pattern",
			req: Request{
				Subject: `\q`, SubjectStyle: quote.Str,
				Pattern: `"`, PatternStyle: quote.Raw,
			},
			role: result.RoleSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errRes := Find(context.Background(), tt.req)
			require.NotNil(t, errRes)
			assert.Equal(t, result.ClassUnescape, errRes.Class)

			payload, ok := errRes.Payload.(*result.UnescapePayload)
			require.True(t, ok)
			assert.Equal(t, tt.role, payload.Source)
		})
	}
}

// 🧪 TestReplacementDecodeError checks that the replacement is decoded too
func TestReplacementDecodeError(t *testing.T) {
	_, errRes := Replace(context.Background(), Request{
		Subject:          "a",
		Pattern:          "a",
		Replacement:      `\q`,
		ReplacementStyle: quote.Str,
	})
	require.NotNil(t, errRes)
	assert.Equal(t, result.ClassUnescape, errRes.Class)

	payload := errRes.Payload.(*result.UnescapePayload)
	assert.Equal(t, result.RoleReplacement, payload.Source)

	// Find never decodes the replacement, so the same style cannot fail there
	_, errRes = Find(context.Background(), Request{
		Subject:          "a",
		Pattern:          "a",
		Replacement:      `\q`,
		ReplacementStyle: quote.Str,
	})
	assert.Nil(t, errRes)
}

// 🧪 TestUnrecognizedFlag checks that a bad flag string is a syntax-class
// error
func TestUnrecognizedFlag(t *testing.T) {
	_, errRes := Find(context.Background(), Request{Subject: "a", Pattern: "a", Flags: "imz"})
	require.NotNil(t, errRes)
	assert.Equal(t, result.ClassRegexSyntax, errRes.Class)

	payload := errRes.Payload.(*result.SyntaxPayload)
	assert.Equal(t, "UnrecognizedFlag", payload.Kind)
}
