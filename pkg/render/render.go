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

// Package render writes operation results for humans: highlighted subjects,
// capture tables, and caret-annotated errors. The JSON wire shape is
// rendered by encoding/json directly; this package is only the colorized
// path.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/walteh/rematch/pkg/result"
)

// 🎨 Renderer writes human-readable output to a single destination.
type Renderer struct {
	w io.Writer
}

// 🏭 New creates a renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// 📝 Matches prints the subject with matches highlighted, followed by a
// capture table.
func (r *Renderer) Matches(subject string, res *result.MatchResult) error {
	if len(res.Matches) == 0 {
		fmt.Fprintln(r.w, color.YellowString("no matches"))
		return nil
	}

	fmt.Fprintln(r.w, highlight(subject, res))
	fmt.Fprintln(r.w)

	data := pterm.TableData{{"match", "group", "name", "content", "span", "span (utf-16)"}}
	for mi, caps := range res.Matches {
		for _, c := range caps {
			row := []string{
				fmt.Sprintf("%d", mi),
				fmt.Sprintf("%d", c.GroupNum),
				c.GroupName,
			}
			if c.IsParticipating {
				row = append(row,
					c.Content.String(),
					formatSpan(c.Span.Start.Offset, c.Span.End.Offset),
					formatSpan(c.SpanUtf16.Start.Offset, c.SpanUtf16.End.Offset),
				)
			} else {
				row = append(row, color.HiBlackString("—"), "", "")
			}
			data = append(data, row)
		}
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithWriter(r.w).
		WithData(data).
		Render()
}

// 📝 Replaced prints the output text of a replace operation.
func (r *Renderer) Replaced(text string) {
	fmt.Fprintln(r.w, text)
}

// 💥 Error prints a structured error with its location, when it has one,
// marked with carets under the offending input.
func (r *Renderer) Error(errRes *result.ErrorResult) {
	header := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(r.w, "%s %s\n", header.Sprint("✗"), errRes.String())

	switch p := errRes.Payload.(type) {
	case *result.SyntaxPayload:
		printCaret(r.w, p.Pattern, p.Span.Start.Offset, p.Span.End.Offset)
	case *result.UnescapePayload:
		fmt.Fprintf(r.w, "  in %s\n", p.Source)
	}
}

// highlight rebuilds the subject with every whole match colorized.
func highlight(subject string, res *result.MatchResult) string {
	hl := color.New(color.FgGreen, color.Bold)

	var b strings.Builder
	last := 0
	for _, caps := range res.Matches {
		entire := caps[0]
		if entire.Span == nil {
			continue
		}
		start, end := entire.Span.Start.Offset, entire.Span.End.Offset
		b.WriteString(subject[last:start])
		b.WriteString(hl.Sprint(subject[start:end]))
		last = end
	}
	b.WriteString(subject[last:])
	return b.String()
}

func formatSpan(start, end int) string {
	return fmt.Sprintf("[%d,%d)", start, end)
}

// printCaret prints the input with the faulty range underlined. Multi-line
// inputs only annotate the line the fault starts on.
func printCaret(w io.Writer, input string, start, end int) {
	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := len(input)
	if idx := strings.IndexByte(input[lineStart:], '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}
	if end > lineEnd {
		end = lineEnd
	}

	fmt.Fprintf(w, "  %s\n", input[lineStart:lineEnd])
	marker := strings.Repeat(" ", start-lineStart) + strings.Repeat("^", max(end-start, 1))
	fmt.Fprintf(w, "  %s\n", color.RedString(marker))
}
