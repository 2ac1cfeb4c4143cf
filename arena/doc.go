// File: doc.go
// Title: Arena Package Documentation
// Description: Package documentation for the counting object arena.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

// Package arena provides a tracking allocator for syntax tree nodes.
//
// In Go the garbage collector reclaims memory, so the arena's job is not
// reclamation but accounting: every allocation and free is counted, which
// lets tests assert that tree teardown is balanced and leaks nothing:
//
//	nodes := arena.New[ast.Node]()
//	... build and destroy a tree ...
//	if nodes.Live() != 0 {
//	    // some node was never destroyed
//	}
//
// The arena also detects misuse. Freeing an object twice or freeing an
// object the arena never handed out returns a structured error instead of
// corrupting the counters.
//
// An allocation limit turns the arena into a deterministic failure
// injector for out-of-memory paths:
//
//	small := arena.NewWithConfig[ast.Node](arena.Config{Limit: 3})
//	// the fourth Alloc fails with CodeArenaExhausted
//
// The arena is single-threaded, matching the tree construction it backs.
package arena
