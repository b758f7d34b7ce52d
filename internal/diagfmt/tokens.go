package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lumen/internal/source"
	"lumen/internal/token"
)

type TokenOutput struct {
	Kind   string      `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Value  string      `json:"value,omitempty"`
	Span   source.Span `json:"span"`
	Line   uint32      `json:"line"`
	Column uint32      `json:"column"`
}

// FormatTokensPretty prints one token per line with its resolved range.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-14s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.Kind == token.StringLit && tok.Value != tok.Text {
			fmt.Fprintf(w, " value=%q", tok.Value)
		}
		if fs != nil && int(tok.Span.File) < fs.Len() {
			fmt.Fprintf(w, " at %s", formatSpan(tok.Span, fs))
		} else {
			fmt.Fprintf(w, " at %d:%d", tok.Line, tok.Column)
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Span:   tok.Span,
			Line:   tok.Line,
			Column: tok.Column,
		}
		if tok.Value != tok.Text {
			out.Value = tok.Value
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
