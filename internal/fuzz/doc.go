// Package fuzztests holds Go fuzz harnesses for the front half of the
// compiler (source -> lexer -> parser -> generator). They guard against
// panics, hangs and broken tree invariants on arbitrary input.
package fuzztests
