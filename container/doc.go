// File: doc.go
// Title: Container Package Documentation
// Description: Package documentation for the ordered container.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

// Package container provides the ordered, growable collection used for
// the child lists of syntax tree nodes.
//
// The container preserves insertion order, appends in amortized constant
// time, and exposes its last element in constant time. Items can be
// removed from the front (Shift) for queue use or from the back (Pop) for
// stack use; the iterative tree teardown relies on both when it drains a
// node's children into a work list:
//
//	children := container.NewArray[*ast.Node]()
//	children.Push(child)
//	for !children.IsEmpty() {
//	    next, _ := children.Shift()
//	    process(next)
//	}
//
// Iteration uses an explicit Iterator rather than a channel or callback so
// that callers can stop early, interleave work, and restart:
//
//	it := children.Iterator()
//	for it.HasNext() {
//	    item, _ := it.Next()
//	    visit(item)
//	}
//	it.Reset() // traverse again
//
// All types in this package are single-threaded by design; callers that
// share a container across goroutines must provide their own locking.
package container
