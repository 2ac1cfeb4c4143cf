// File: position.go
// Title: Source Position
// Description: Defines the source location carried by lexical tokens for
//              diagnostics and error reporting.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package token

import "fmt"

// Position locates a token in its source text.
// Line and Column are 1-based; Offset is the 0-based byte position.
type Position struct {
	Line   int // line number (1-based)
	Column int // column number (1-based)
	Offset int // byte position in input (0-based)
}

// NoPosition is the zero position used for synthesized tokens
var NoPosition = Position{}

// String returns the position in "line:column" form, or "-" when the
// position is unset
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns whether the position refers to an actual source location
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}
