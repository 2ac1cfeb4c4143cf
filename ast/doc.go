// File: doc.go
// Title: AST Package Documentation
// Description: Package documentation for the syntax tree.
// Author: danielbradley
// Version: v0.1.1
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation
// - 2026-08-25 v0.1.1: Describe the traversal error contract

// Package ast implements the syntax tree built by the parser front end.
//
// # Ownership
//
// Every node owns exactly one lexical token, transferred into the node at
// construction and released at teardown. Every node also owns its
// children: the ordered child list is the single owning reference, and a
// node can appear in at most one child list. Both rules are checked at
// the point of violation instead of being trusted.
//
// The parent reference is explicitly not part of ownership. SetParent
// records a navigation aid and AddChild leaves it untouched, so the two
// must be wired together by the caller:
//
//	child, err := parent.AddChild(tok)
//	if err == nil {
//	    child.SetParent(parent)
//	}
//
// The Builder exists so that parsers do not repeat this wiring by hand;
// it links both directions on every Open and Add.
//
// # Construction and teardown
//
// Nodes come from a counting arena, which makes two failure modes
// testable. Allocation failure is injectable through an arena limit, and
// leaks show up as a nonzero live count after teardown:
//
//	nodes := arena.New[ast.Node]()
//	root, err := ast.New(nodes, tok)
//	...
//	root.Destroy()
//	// nodes.Live() == 0 again
//
// Destroy tears down the whole subtree iteratively with an explicit work
// list, so degenerate chains tens of thousands of nodes deep unwind
// without touching the goroutine stack. Children are destroyed before
// their parent, siblings in insertion order.
//
// # Traversal
//
// Children are visited through the restartable iterator or, for whole
// trees, through Walk and the helpers built on it (Size, Depth,
// CollectNodes, TreeString). Walk is iterative for the same reason
// Destroy is; a visit callback stops it by returning an error and
// prunes a subtree by returning SkipChildren.
//
// All types in this package are single-threaded; trees under construction
// belong to one goroutine.
package ast
