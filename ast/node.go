// File: node.go
// Title: Syntax Tree Node
// Description: Implements the syntax tree node built by the parser. Each
//              node owns exactly one lexical token and an ordered list of
//              child nodes; the parent reference is advisory and carries
//              no ownership. Construction and teardown run against the
//              counting arena so that lifetime bugs surface as errors.
// Author: danielbradley
// Version: v0.1.1
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation
// - 2026-08-25 v0.1.1: Make the rollback's discarded free result explicit

package ast

import (
	"fmt"

	"github.com/danielbradley/IxCompiler/arena"
	"github.com/danielbradley/IxCompiler/container"
	ixerror "github.com/danielbradley/IxCompiler/core/error"
	"github.com/danielbradley/IxCompiler/token"
)

// Node is a single vertex of the syntax tree.
//
// Ownership follows two rules. First, a node owns its token: the token is
// acquired during construction and released during teardown, never shared.
// Second, a node owns its children through the child list: membership in a
// child list is what keeps a child alive, and a node that sits in some
// child list cannot be destroyed on its own.
//
// The parent pointer is deliberately outside the ownership model. It is a
// navigation aid set via SetParent, and AddChild does not touch it; parsers
// that want upward navigation wire it explicitly, as the Builder does.
//
// Node is not safe for concurrent use.
type Node struct {
	tok      *token.Token
	parent   *Node
	children *container.Array[*Node]
	arena    *arena.Arena[Node]

	attached  bool
	destroyed bool
}

// New allocates a node from the arena and transfers the token into it.
//
// The token moves only on success: when allocation fails, or the token is
// already owned elsewhere, the caller keeps the token and may attach it to
// another node or discard it.
func New(nodes *arena.Arena[Node], tok *token.Token) (*Node, error) {
	if nodes == nil {
		return nil, ixerror.New("node arena is required").
			WithCode(ixerror.CodeInvalidInput).
			WithOperation("ast.New")
	}
	if tok == nil {
		return nil, ixerror.New("node token is required").
			WithCode(ixerror.CodeInvalidInput).
			WithOperation("ast.New")
	}

	n, err := nodes.Alloc()
	if err != nil {
		return nil, ixerror.Wrap(err, "failed to allocate node").
			WithOperation("ast.New")
	}

	if err := tok.Acquire(); err != nil {
		// roll the allocation back so a refused token does not leak a node;
		// freeing a just-allocated object cannot fail
		_ = nodes.Free(n)
		return nil, ixerror.Wrap(err, "failed to take token ownership").
			WithOperation("ast.New")
	}

	n.tok = tok
	n.children = container.NewArray[*Node]()
	n.arena = nodes
	return n, nil
}

// Destroy tears down the node and every node below it, releasing each
// token and returning each node to the arena. Children are destroyed
// before their parent, siblings in the order they were added.
//
// The traversal is iterative, so trees of arbitrary depth tear down
// without growing the call stack. Teardown keeps going past individual
// release failures and reports the first one, which keeps the arena
// counters honest even for damaged trees.
//
// Destroying nil is a no-op. A node that is still in some parent's child
// list refuses to be destroyed; teardown starts at an unattached root.
func (n *Node) Destroy() error {
	if n == nil {
		return nil
	}
	if n.destroyed {
		return ixerror.New("node is already destroyed").
			WithCode(ixerror.CodeNodeDestroyed).
			WithOperation("ast.Destroy")
	}
	if n.attached {
		return ixerror.New("cannot destroy attached node").
			WithCode(ixerror.CodeNodeAttached).
			WithOperation("ast.Destroy").
			WithDetail("node", n.String())
	}

	// Phase one: flatten the subtree into reverse post-order, draining
	// each child list as it is visited. Popping the order stack then
	// yields children before parents, siblings in insertion order.
	pending := container.NewArray[*Node]()
	order := container.NewArray[*Node]()
	pending.Push(n)

	for !pending.IsEmpty() {
		current, _ := pending.Pop()
		order.Push(current)

		for {
			child, ok := current.children.Shift()
			if !ok {
				break
			}
			pending.Push(child)
		}
	}

	// Phase two: release and free in teardown order.
	var firstErr error
	for {
		current, ok := order.Pop()
		if !ok {
			break
		}

		if err := current.tok.Release(); err != nil && firstErr == nil {
			firstErr = ixerror.Wrap(err, "failed to release node token").
				WithOperation("ast.Destroy")
		}

		current.tok = nil
		current.parent = nil
		current.attached = false
		current.destroyed = true

		if err := current.arena.Free(current); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// SetParent records the advisory parent reference.
// It does not modify any child list and transfers no ownership; passing
// nil clears the reference.
func (n *Node) SetParent(parent *Node) error {
	if n.destroyed {
		return ixerror.New("cannot set parent on destroyed node").
			WithCode(ixerror.CodeNodeDestroyed).
			WithOperation("ast.SetParent")
	}
	if parent == n {
		return ixerror.New("node cannot be its own parent").
			WithCode(ixerror.CodeInvalidOperation).
			WithOperation("ast.SetParent")
	}

	n.parent = parent
	return nil
}

// Parent returns the advisory parent reference, nil when unset
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild constructs a new node from the token, exactly as New does,
// and appends it to this node's child list. The new child comes from the
// same arena as its parent and is owned by the child list from birth.
// On success the child is returned for further attachment below it; on
// failure the token stays with the caller.
//
// AddChild does not set the child's parent reference; callers that want
// upward navigation call SetParent on the child as a separate step.
func (n *Node) AddChild(tok *token.Token) (*Node, error) {
	if n.destroyed {
		return nil, ixerror.New("cannot add child to destroyed node").
			WithCode(ixerror.CodeNodeDestroyed).
			WithOperation("ast.AddChild")
	}

	child, err := New(n.arena, tok)
	if err != nil {
		return nil, err
	}

	n.children.Push(child)
	child.attached = true
	return child, nil
}

// LastChild returns the most recently added child in constant time,
// nil when the node has no children
func (n *Node) LastChild() *Node {
	child, ok := n.children.Last()
	if !ok {
		return nil
	}
	return child
}

// Child returns the child at the given position, nil when out of range
func (n *Node) Child(index int) *Node {
	child, ok := n.children.Get(index)
	if !ok {
		return nil
	}
	return child
}

// Token returns the token the node owns.
// The node keeps ownership; callers must not release the token. After
// Destroy the token is gone and Token returns nil.
func (n *Node) Token() *token.Token {
	return n.tok
}

// HasChildren returns whether the node has at least one child
func (n *Node) HasChildren() bool {
	return !n.children.IsEmpty()
}

// ChildCount returns the number of children
func (n *Node) ChildCount() int {
	return n.children.Length()
}

// Children returns a snapshot of the child list in order.
// Mutating the returned slice does not affect the node.
func (n *Node) Children() []*Node {
	return n.children.Items()
}

// Iterator returns a restartable iterator over the children.
// The iterator is a live view: children added while iterating are still
// visited as long as the iteration has not passed their position.
func (n *Node) Iterator() *container.Iterator[*Node] {
	return n.children.Iterator()
}

// IsAttached returns whether the node sits in some parent's child list
func (n *Node) IsAttached() bool {
	return n.attached
}

// IsDestroyed returns whether the node has been torn down
func (n *Node) IsDestroyed() bool {
	return n.destroyed
}

// String returns a short representation for diagnostics
func (n *Node) String() string {
	if n == nil {
		return "Node(<nil>)"
	}
	if n.destroyed {
		return "Node(destroyed)"
	}
	return fmt.Sprintf("Node(%s, children=%d)", n.tok, n.children.Length())
}
