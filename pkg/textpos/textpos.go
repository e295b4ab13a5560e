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

package textpos

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// 📍 Position is a location in a string. Offset and Column are expressed in
// the units of the coordinate system the position belongs to (UTF-8 bytes or
// UTF-16 code units). Line and Column are 1-based.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// 📐 Span is a half-open [Start, End) range within a string.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// 🔗 SpanPair is the same logical range projected into both coordinate
// systems. The two spans always describe the same location.
type SpanPair struct {
	Bytes Span
	Utf16 Span
}

// 🗺️ Translator maps UTF-8 byte offsets in a string to UTF-16 code unit
// offsets and back. It is built once per string in linear time and queried in
// logarithmic time.
//
// The string is decomposed into units: a valid codepoint is one unit, and
// every byte of an invalid UTF-8 sequence is its own unit. Codepoints below
// U+10000 (and invalid bytes, which decode to one replacement character each)
// contribute one UTF-16 code unit; codepoints at or above U+10000 contribute
// two (a surrogate pair).
//
// Offsets that fall strictly inside a valid multi-byte codepoint are a
// contract breach by the caller (the matching engine only ever reports
// unit-aligned offsets) and cause a panic, not an error.
type Translator struct {
	text       string
	unitStarts []int // byte offset of each unit
	u16Starts  []int // utf16 offset of each unit
	total16    int   // utf16 length of text
	lineStarts []int // byte offset of each line start
}

// 🏭 New builds a Translator for s.
func New(s string) *Translator {
	tr := &Translator{
		text:       s,
		unitStarts: make([]int, 0, len(s)),
		u16Starts:  make([]int, 0, len(s)),
		lineStarts: []int{0},
	}

	u16 := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		tr.unitStarts = append(tr.unitStarts, i)
		tr.u16Starts = append(tr.u16Starts, u16)
		if r >= 0x10000 {
			u16 += 2 // surrogate pair
		} else {
			u16++
		}
		if r == '\n' {
			tr.lineStarts = append(tr.lineStarts, i+size)
		}
		i += size
	}
	tr.total16 = u16

	return tr
}

// 📏 Len16 returns the length of the text in UTF-16 code units.
func (tr *Translator) Len16() int {
	return tr.total16
}

// ByteToUTF16 converts a byte offset to a UTF-16 code unit offset. The offset
// must be unit-aligned; the length of the text is a valid offset.
func (tr *Translator) ByteToUTF16(off int) int {
	if off == len(tr.text) {
		return tr.total16
	}
	i := tr.unitIndex(off)
	return tr.u16Starts[i]
}

// UTF16ToByte converts a UTF-16 code unit offset back to a byte offset. The
// offset must not fall between the two halves of a surrogate pair.
func (tr *Translator) UTF16ToByte(off int) int {
	if off == tr.total16 {
		return len(tr.text)
	}
	if off < 0 || off > tr.total16 {
		panic(fmt.Sprintf("textpos: utf16 offset %d out of range [0, %d]", off, tr.total16))
	}
	i := sort.SearchInts(tr.u16Starts, off)
	if i == len(tr.u16Starts) || tr.u16Starts[i] != off {
		panic(fmt.Sprintf("textpos: utf16 offset %d splits a surrogate pair in %q", off, tr.text))
	}
	return tr.unitStarts[i]
}

// PositionAt returns the byte-coordinate and UTF-16-coordinate positions of a
// unit-aligned byte offset.
func (tr *Translator) PositionAt(byteOff int) (Position, Position) {
	line := sort.SearchInts(tr.lineStarts, byteOff+1) - 1
	lineStart := tr.lineStarts[line]

	off16 := tr.ByteToUTF16(byteOff)
	lineStart16 := tr.ByteToUTF16(lineStart)

	bytePos := Position{
		Offset: byteOff,
		Line:   line + 1,
		Column: byteOff - lineStart + 1,
	}
	u16Pos := Position{
		Offset: off16,
		Line:   line + 1,
		Column: off16 - lineStart16 + 1,
	}
	return bytePos, u16Pos
}

// SpanAt returns the dual-coordinate projection of the half-open byte range
// [start, end).
func (tr *Translator) SpanAt(start, end int) SpanPair {
	if end < start {
		panic(fmt.Sprintf("textpos: inverted span [%d, %d)", start, end))
	}
	startB, start16 := tr.PositionAt(start)
	endB, end16 := tr.PositionAt(end)
	return SpanPair{
		Bytes: Span{Start: startB, End: endB},
		Utf16: Span{Start: start16, End: end16},
	}
}

// unitIndex locates the unit beginning exactly at byte offset off.
func (tr *Translator) unitIndex(off int) int {
	if off < 0 || off > len(tr.text) {
		panic(fmt.Sprintf("textpos: byte offset %d out of range [0, %d]", off, len(tr.text)))
	}
	i := sort.SearchInts(tr.unitStarts, off)
	if i == len(tr.unitStarts) || tr.unitStarts[i] != off {
		panic(fmt.Sprintf("textpos: byte offset %d is not a codepoint boundary in %q", off, tr.text))
	}
	return i
}
