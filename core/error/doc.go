// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides structured error handling for the
//              IxCompiler foundation with codes, severities, and context.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

// Package error provides structured error handling for the IxCompiler
// foundation.
//
// Errors carry a classification code (see codes.go), a severity, the
// operation that produced them, and arbitrary key-value details. Codes group
// into categories: allocation accounting (arena exhaustion, double free),
// tree lifecycle and ownership (double destroy, ownership violations),
// configuration, and validation.
//
// The package is imported under the alias ixerror throughout the repository
// to avoid shadowing the builtin error type:
//
//	ixerror "github.com/danielbradley/IxCompiler/core/error"
//
// Construction uses chainable builders:
//
//	return ixerror.New("arena exhausted").
//	    WithCode(ixerror.CodeArenaExhausted).
//	    WithOperation("arena.Alloc").
//	    WithDetail("limit", a.limit)
//
// Wrapping preserves the classification of an inner *Error and guards
// against unbounded chains:
//
//	return ixerror.Wrap(err, "failed to parse config file").
//	    WithCode(ixerror.CodeConfigError)
//
// Severity defaults follow the code (GetSeverityFromCode); ownership
// corruption such as a double free classifies as critical because the
// accounting state can no longer be trusted.
//
// The type implements json.Marshaler so the structured log formatter can
// embed full error classification in its output, and Unwrap so errors.Is
// and errors.As work over chains.
package error
