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
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// 📦 Content is the matched text of a capture group: either valid text or,
// when the matched bytes are not valid UTF-8, the raw byte values. Raw bytes
// are never lossily converted to text.
type Content struct {
	text string
	raw  []byte
}

// TextContent wraps valid text.
func TextContent(s string) *Content {
	return &Content{text: s}
}

// BytesContent wraps bytes that do not form valid text.
func BytesContent(b []byte) *Content {
	return &Content{raw: b}
}

// ContentOf picks the representation for a slice of matched bytes: text when
// the bytes are valid UTF-8, raw bytes otherwise.
func ContentOf(s string) *Content {
	if utf8.ValidString(s) {
		return TextContent(s)
	}
	return BytesContent([]byte(s))
}

// IsText reports whether the content is valid text.
func (c *Content) IsText() bool {
	return c.raw == nil
}

// Text returns the textual form, or "" for raw-byte content.
func (c *Content) Text() string {
	return c.text
}

// Bytes returns the raw bytes, or nil for textual content.
func (c *Content) Bytes() []byte {
	return c.raw
}

// MarshalJSON renders text as a JSON string and raw bytes as an array of
// byte values.
func (c *Content) MarshalJSON() ([]byte, error) {
	if c.raw == nil {
		return json.Marshal(c.text)
	}
	vals := make([]int, len(c.raw))
	for i, b := range c.raw {
		vals[i] = int(b)
	}
	return json.Marshal(vals)
}

// String renders the content for human display: text verbatim, raw bytes as
// a hex dump.
func (c *Content) String() string {
	if c.raw == nil {
		return c.text
	}
	return fmt.Sprintf("% x", c.raw)
}
