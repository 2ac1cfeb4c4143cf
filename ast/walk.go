// File: walk.go
// Title: Syntax Tree Traversal
// Description: Implements iterative traversal over syntax trees along with
//              the measurement and rendering helpers built on it.
// Author: danielbradley
// Version: v0.1.1
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation
// - 2026-08-25 v0.1.1: Walk aborts on visitor errors; CollectNodes filters
//                      through a predicate

package ast

import (
	"errors"
	"strings"

	"github.com/danielbradley/IxCompiler/container"
)

// SkipChildren can be returned by a VisitFunc to skip the current node's
// children. The walk continues with the node's siblings and returns nil
// for it, the same convention fs.SkipDir follows.
var SkipChildren = errors.New("skip children")

// VisitFunc is called for every node during a walk. Depth is 0 for the
// root. A non-nil return stops the walk unless it is SkipChildren.
type VisitFunc func(n *Node, depth int) error

// frame pairs a node with its depth on the walk stack
type frame struct {
	node  *Node
	depth int
}

// Walk visits the tree in depth-first pre-order: each node before its
// children, siblings in the order they were added. The traversal uses an
// explicit stack, so depth is bounded by memory rather than the call
// stack.
//
// The first error a visit returns stops the walk and is handed back
// unchanged; SkipChildren only prunes the current node's subtree.
// Walking nil is a no-op.
func Walk(root *Node, visit VisitFunc) error {
	if root == nil || visit == nil {
		return nil
	}

	stack := container.NewArray[frame]()
	stack.Push(frame{node: root})

	for !stack.IsEmpty() {
		current, _ := stack.Pop()

		if err := visit(current.node, current.depth); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}

		// push children in reverse so the first child is visited first
		children := current.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(frame{node: children[i], depth: current.depth + 1})
		}
	}
	return nil
}

// CollectNodes returns the nodes matching pred in pre-order. A nil
// predicate matches every node. Collecting over nil returns nil.
func CollectNodes(root *Node, pred func(*Node) bool) []*Node {
	var nodes []*Node
	_ = Walk(root, func(n *Node, depth int) error {
		if pred == nil || pred(n) {
			nodes = append(nodes, n)
		}
		return nil
	})
	return nodes
}

// Size returns the number of nodes in the tree, 0 for nil
func Size(root *Node) int {
	count := 0
	_ = Walk(root, func(n *Node, depth int) error {
		count++
		return nil
	})
	return count
}

// Depth returns the number of levels in the tree: 0 for nil, 1 for a
// single node
func Depth(root *Node) int {
	deepest := 0
	_ = Walk(root, func(n *Node, depth int) error {
		if depth+1 > deepest {
			deepest = depth + 1
		}
		return nil
	})
	return deepest
}

// TreeString renders the tree as an indented multi-line listing, one node
// per line, two spaces per level. It is meant for debug output and test
// failure messages.
func TreeString(root *Node) string {
	var sb strings.Builder
	_ = Walk(root, func(n *Node, depth int) error {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(n.String())
		sb.WriteString("\n")
		return nil
	})
	return sb.String()
}
