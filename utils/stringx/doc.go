// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string helpers shared by the
//              IxCompiler foundation packages.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

// Package stringx provides extended string operations for the IxCompiler
// foundation.
//
// The package deliberately stays small: it carries only the helpers the
// surrounding packages actually consume. Blank checking backs input
// validation in the configuration loader, and Unicode-safe truncation keeps
// token text readable in node descriptions and tree dumps.
//
// Usage:
//
//	if err := stringx.ValidateNotBlank(path); err != nil {
//	    return err
//	}
//
//	label := stringx.Truncate(tok.Text(), 32, "...")
//
// All functions are pure and safe for concurrent use.
package stringx
