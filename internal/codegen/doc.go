// Package codegen renders an *ast.Program as a JavaScript module of React
// function components written in JSX.
//
// Generate is total over the trees the parser produces and deterministic:
// the same tree always renders to the same bytes. Node kinds the generator
// does not know are rendered as an inline /* lumen: unsupported */ comment.
package codegen
