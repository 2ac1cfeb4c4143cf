// File: doc.go
// Title: Token Package Documentation
// Description: Package documentation for lexical tokens.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

// Package token defines the lexical unit produced by the lexer and owned
// by syntax tree nodes.
//
// A token's kind, text, and position never change after construction. What
// does change is its ownership state: a node takes ownership of a token
// when the node is created and releases it when the node is destroyed.
// Both transitions are explicit and checked:
//
//	tok := token.NewAt(token.KindIdentifier, "main", pos)
//	if err := tok.Acquire(); err != nil {
//	    // the token already belongs to another node
//	}
//	...
//	if err := tok.Release(); err != nil {
//	    // releasing twice is reported, not silently ignored
//	}
//
// Checked transfer makes the single-owner rule testable: attaching one
// token to two nodes fails at the second Acquire, and a teardown bug that
// frees a token twice fails at the second Release instead of corrupting
// memory.
//
// Tokens are not safe for concurrent use.
package token
