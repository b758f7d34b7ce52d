// Package token defines lexical token kinds for the Lumen DSL.
// Invariants:
//   - Token.Text is the exact source lexeme; Token.Span matches it (Start..End).
//   - Token.Value holds the decoded payload of string literals and markup text.
//   - Markup delimiters have their own kinds (TagOpen, TagEnd, TagSelfClose,
//     TagClose) distinct from the comparison operators Lt and Gt; the lexer
//     decides which one a '<' or '>' is from its explicit context.
//   - Type names (string, number, boolean, ...) are identifiers.
//     They are recognized by the parser, not the lexer.
package token
