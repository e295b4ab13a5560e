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

import "strconv"

// 🔁 Expand appends the replacement template to dst, substituting `$0`-style
// numeric references, `$name` and `${name}` named references, and `$$` for a
// literal dollar. References to groups that do not exist or did not
// participate expand to nothing. The engine's own expansion lacks named
// groups, so templates are resolved here against the pattern's group names.
func (p *Pattern) Expand(dst []byte, template string, subject string, m Match) []byte {
	for i := 0; i < len(template); {
		c := template[i]
		if c != '$' {
			dst = append(dst, c)
			i++
			continue
		}
		if i+1 >= len(template) {
			dst = append(dst, '$')
			i++
			continue
		}
		if template[i+1] == '$' {
			dst = append(dst, '$')
			i += 2
			continue
		}

		name, next, ok := templateRef(template, i)
		if !ok {
			dst = append(dst, '$')
			i++
			continue
		}
		i = next

		group := p.groupIndex(name)
		if group < 0 {
			continue
		}
		if start, end, ok := m.Group(group); ok {
			dst = append(dst, subject[start:end]...)
		}
	}
	return dst
}

// templateRef reads the reference name following the `$` at template[i],
// handling the braced form. ok is false when no well-formed name follows, in
// which case the dollar is literal.
func templateRef(template string, i int) (name string, next int, ok bool) {
	j := i + 1
	braced := false
	if template[j] == '{' {
		braced = true
		j++
	}

	start := j
	for j < len(template) && isRefByte(template[j]) {
		j++
	}
	if j == start {
		return "", i, false
	}

	if braced {
		if j >= len(template) || template[j] != '}' {
			return "", i, false
		}
		return template[start:j], j + 1, true
	}
	return template[start:j], j, true
}

func isRefByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// groupIndex resolves a template reference name to a group number: all-digit
// names are group numbers, anything else is looked up among the declared
// group names. Unresolvable names yield -1.
func (p *Pattern) groupIndex(name string) int {
	if num, err := strconv.Atoi(name); err == nil {
		if num >= 0 && num < len(p.names) {
			return num
		}
		return -1
	}
	for i, n := range p.names {
		if n != "" && n == name {
			return i
		}
	}
	return -1
}
