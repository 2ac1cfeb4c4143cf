// File: token.go
// Title: Lexical Token with Ownership Tracking
// Description: Implements the lexical token handed from the lexer to the
//              syntax tree. A token records whether a tree node currently
//              owns it, which turns ownership mistakes into checked errors
//              instead of silent double frees.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package token

import (
	"fmt"

	ixerror "github.com/danielbradley/IxCompiler/core/error"
	"github.com/danielbradley/IxCompiler/utils/stringx"
)

// maxDisplayText caps the token text shown in String output
const maxDisplayText = 32

// Token is a single lexical unit. Its kind, text, and position are fixed
// at construction; only the ownership state changes afterwards.
//
// A token moves through three states: free after construction, owned once
// a tree node acquires it, and released once that node frees it. Each
// transition is checked, so acquiring an owned token or releasing a token
// twice surfaces as an error at the point of the mistake.
type Token struct {
	kind Kind
	text string
	pos  Position

	owned    bool
	released bool
}

// New creates a free token without position information.
// Synthesized tokens, such as markers inserted by the parser, use this form.
func New(kind Kind, text string) *Token {
	return &Token{
		kind: kind,
		text: text,
		pos:  NoPosition,
	}
}

// NewAt creates a free token at the given source position
func NewAt(kind Kind, text string, pos Position) *Token {
	return &Token{
		kind: kind,
		text: text,
		pos:  pos,
	}
}

// Kind returns the token classification
func (t *Token) Kind() Kind {
	return t.kind
}

// Text returns the raw source text of the token
func (t *Token) Text() string {
	return t.text
}

// Pos returns the source position of the token
func (t *Token) Pos() Position {
	return t.pos
}

// Acquire transfers ownership of the token to the caller.
// It fails when the token is already owned or was already released.
func (t *Token) Acquire() error {
	if t.released {
		return ixerror.New("cannot acquire released token").
			WithCode(ixerror.CodeOwnershipViolation).
			WithOperation("token.Acquire").
			WithDetail("token", t.describe())
	}
	if t.owned {
		return ixerror.New("token is already owned").
			WithCode(ixerror.CodeOwnershipViolation).
			WithOperation("token.Acquire").
			WithDetail("token", t.describe())
	}

	t.owned = true
	return nil
}

// Release gives up ownership of the token permanently.
// It fails when the token is not owned, and releasing twice is reported
// as a double release.
func (t *Token) Release() error {
	if t.released {
		return ixerror.New("token released twice").
			WithCode(ixerror.CodeDoubleRelease).
			WithOperation("token.Release").
			WithDetail("token", t.describe())
	}
	if !t.owned {
		return ixerror.New("cannot release unowned token").
			WithCode(ixerror.CodeOwnershipViolation).
			WithOperation("token.Release").
			WithDetail("token", t.describe())
	}

	t.owned = false
	t.released = true
	return nil
}

// Owned returns whether a node currently owns the token
func (t *Token) Owned() bool {
	return t.owned
}

// Released returns whether the token has been released
func (t *Token) Released() bool {
	return t.released
}

// String returns a short representation of the token.
// Long text is truncated for readable log output.
func (t *Token) String() string {
	switch t.kind {
	case KindEndOfFile:
		return "EOF"
	default:
		text := stringx.Truncate(t.text, maxDisplayText, "...")
		if t.pos.IsValid() {
			return fmt.Sprintf("%s(%s)@%s", t.kind, text, t.pos)
		}
		return fmt.Sprintf("%s(%s)", t.kind, text)
	}
}

// describe returns the token identity used in error details
func (t *Token) describe() string {
	return t.String()
}
