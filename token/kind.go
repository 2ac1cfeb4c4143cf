// File: kind.go
// Title: Lexical Token Kinds
// Description: Defines the token kind classification produced by the
//              lexical analyzer and consumed by the syntax tree.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package token

// Kind classifies a lexical token
type Kind int

const (
	// Special kinds
	KindUnknown Kind = iota
	KindEndOfFile

	// Identifiers and literals
	KindIdentifier // variable, function, and type names
	KindKeyword    // reserved words
	KindNumber     // 123, 123.45
	KindString     // "string literal"

	// Structure
	KindOperator  // + - * / = < >
	KindDelimiter // ( ) { } [ ] , ;

	// Trivia
	KindComment    // // line and /* block */ comments
	KindWhitespace // spaces, tabs, newlines
)

// String returns a string representation of the token kind
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "UNKNOWN"
	case KindEndOfFile:
		return "EOF"
	case KindIdentifier:
		return "IDENTIFIER"
	case KindKeyword:
		return "KEYWORD"
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING"
	case KindOperator:
		return "OPERATOR"
	case KindDelimiter:
		return "DELIMITER"
	case KindComment:
		return "COMMENT"
	case KindWhitespace:
		return "WHITESPACE"
	default:
		return "UNKNOWN"
	}
}

// IsTrivia returns whether the kind carries no syntactic meaning.
// Parsers typically skip trivia when building the syntax tree.
func (k Kind) IsTrivia() bool {
	return k == KindComment || k == KindWhitespace
}
