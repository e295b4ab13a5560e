package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testText mixes 1-byte, 4-byte, and ZWJ-joined codepoints.
const testText = "x😀🤣a🤩😛🏴‍☠️🤑"

// 🧪 TestByteToUTF16 checks byte→utf16 conversion over known offsets
func TestByteToUTF16(t *testing.T) {
	tests := []struct {
		name    string
		startB  int
		endB    int
		start16 int
		end16   int
		substr  string
		descrip string
	}{
		{"ascii", 0, 1, 0, 1, "x", "1-byte codepoint is one unit"},
		{"emoji", 1, 5, 1, 3, "😀", "4-byte codepoint is a surrogate pair"},
		{"mixed", 5, 14, 3, 8, "🤣a🤩", "mixed run"},
		{"zwj_sequence", 18, 31, 10, 15, "🏴‍☠️", "ZWJ sequence spans several codepoints"},
		{"trailing", 31, 35, 15, 17, "🤑", "last codepoint"},
	}

	tr := New(testText)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.substr, testText[tt.startB:tt.endB], "fixture offsets must slice the expected substring")
			assert.Equal(t, tt.start16, tr.ByteToUTF16(tt.startB), tt.descrip)
			assert.Equal(t, tt.end16, tr.ByteToUTF16(tt.endB), tt.descrip)
		})
	}
}

// 🧪 TestRoundTrip checks that utf16→byte inverts byte→utf16 on every boundary
func TestRoundTrip(t *testing.T) {
	tr := New(testText)

	assert.Equal(t, 0, tr.ByteToUTF16(0), "offset zero maps to zero")
	assert.Equal(t, tr.Len16(), tr.ByteToUTF16(len(testText)), "end of text maps to utf16 length")

	for _, off := range []int{0, 1, 5, 14, 18, 31, 35} {
		u16 := tr.ByteToUTF16(off)
		assert.Equal(t, off, tr.UTF16ToByte(u16), "round trip at byte offset %d", off)
	}
}

// 🧪 TestInvalidBytes checks that each invalid UTF-8 byte counts as one unit
func TestInvalidBytes(t *testing.T) {
	tr := New("a\xffb")

	assert.Equal(t, 1, tr.ByteToUTF16(1))
	assert.Equal(t, 2, tr.ByteToUTF16(2))
	assert.Equal(t, 3, tr.ByteToUTF16(3))
	assert.Equal(t, 3, tr.Len16())
}

// 🧪 TestNonBoundaryPanics checks that interior offsets are treated as contract breaches
func TestNonBoundaryPanics(t *testing.T) {
	tr := New("😀")

	assert.Panics(t, func() { tr.ByteToUTF16(2) }, "offset inside a 4-byte codepoint")
	assert.Panics(t, func() { tr.ByteToUTF16(5) }, "offset past the end")
	assert.Panics(t, func() { tr.UTF16ToByte(1) }, "offset between surrogate halves")
}

// 🧪 TestPositionAt checks line/column bookkeeping in both coordinate systems
func TestPositionAt(t *testing.T) {
	tr := New("ab\ncd😀e")

	bytePos, u16Pos := tr.PositionAt(9) // the 'e'
	assert.Equal(t, Position{Offset: 9, Line: 2, Column: 7}, bytePos)
	assert.Equal(t, Position{Offset: 7, Line: 2, Column: 5}, u16Pos)

	bytePos, u16Pos = tr.PositionAt(0)
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, bytePos)
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, u16Pos)
}

// 🧪 TestSpanAt checks the dual-coordinate span projection
func TestSpanAt(t *testing.T) {
	tr := New(testText)

	pair := tr.SpanAt(18, 31)
	assert.Equal(t, 18, pair.Bytes.Start.Offset)
	assert.Equal(t, 31, pair.Bytes.End.Offset)
	assert.Equal(t, 10, pair.Utf16.Start.Offset)
	assert.Equal(t, 15, pair.Utf16.End.Offset)

	assert.Panics(t, func() { tr.SpanAt(5, 1) }, "inverted span")
}

// 🧪 TestEmptyString checks the degenerate translator
func TestEmptyString(t *testing.T) {
	tr := New("")

	assert.Equal(t, 0, tr.ByteToUTF16(0))
	assert.Equal(t, 0, tr.UTF16ToByte(0))
	assert.Equal(t, 0, tr.Len16())
}
