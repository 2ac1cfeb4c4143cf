// File: doc.go
// Title: Integration Test Documentation
// Description: Package documentation for cross-package integration tests.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

// Package integration verifies that the IxCompiler packages compose the
// way the individual package tests assume: configuration feeds the logger
// and the arena, trees built through the builder tear down leak-free, and
// errors keep their codes and severities across package boundaries.
package integration
