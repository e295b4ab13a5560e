/*
Package rematch exposes the three pattern operations: find, replace, and
replace-list.

	+---------+     +--------+     +--------+     +---------+
	| Request | --> | quote  | --> | engine | --> | result  |
	| (roles) |     | decode |     | match  |     | project |
	+---------+     +--------+     +--------+     +---------+

🎯 Purpose:
- Decodes role-tagged inputs under their quoting dialects
- Compiles the pattern with per-call flags and size limits
- Runs the engine and projects matches into dual-coordinate results
- Returns every user-triggerable failure as a structured ErrorResult

🔄 Flow:
1. Decode subject, pattern, and replacement (first failure wins)
2. Parse the flag string and compile the decoded pattern
3. Enumerate matches over the decoded subject
4. Project matches or apply the replacement template

📝 Design Philosophy:
The façade is pure and stateless. Each call allocates its own buffers,
translator tables, and result structures and discards them on return, so
calls are safe to run concurrently with no synchronization. Go errors are
reserved for the host (I/O, config); anything a caller can trigger with bad
input comes back as data.
*/
package rematch
