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

package engine

import "strings"

// stripExtended resolves the extended (whitespace-insensitive) pattern
// syntax: unescaped whitespace outside character classes is removed, and `#`
// outside character classes starts a comment running to end of line. Escaped
// whitespace and everything inside `[...]` pass through. The engine compiles
// the stripped pattern, so any subsequent error positions refer to it.
func stripExtended(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
		case c == '[':
			inClass = true
			b.WriteByte(c)
		case c == '#':
			for i+1 < len(pattern) && pattern[i+1] != '\n' {
				i++
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			// dropped
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
