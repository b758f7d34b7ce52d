// Package ast defines the syntax tree produced by the parser and consumed by
// the code generator.
//
// Every node category is a closed sum type: an interface with an unexported
// marker method, implemented only by the pointer types of this package.
// Consumers switch over the concrete types; a default branch marks a node
// kind the consumer does not support yet.
package ast
