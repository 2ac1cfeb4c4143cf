// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides structured logging for the IxCompiler
//              foundation.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

// Package log provides structured logging for the IxCompiler foundation.
//
// The logger emits leveled entries (trace through fatal) with arbitrary
// key-value fields in JSON, plain text, or colored console format. With*
// methods clone the logger, so derived loggers never mutate their parent:
//
//	logger := log.NewWithConfig(log.Config{
//	    Level:  log.LevelDebug,
//	    Format: log.FormatConsole,
//	    Name:   "treebuilder",
//	})
//
//	child := logger.WithField("arena", "main")
//	child.Debug("node allocated", log.Int("live", a.Live()))
//
// LogError understands the foundation's structured errors: it extracts the
// code, severity, operation, and details into fields and picks the log
// level from the severity. The JSON formatter additionally embeds the full
// error classification whenever the logged error implements json.Marshaler.
//
// Emission is synchronous. The tree core this library serves is
// single-threaded and completes every operation inline, so there is no
// buffering worker; the logger itself is nevertheless safe for concurrent
// use by surrounding tooling.
//
// A process-wide default logger is available through GetDefault/SetDefault
// and the package-level convenience functions.
package log
