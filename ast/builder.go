// File: builder.go
// Title: Syntax Tree Builder
// Description: Implements a stack-based builder that assembles syntax
//              trees during parsing. The builder performs the child and
//              parent wiring in one place and unwinds cleanly when
//              construction fails partway.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package ast

import (
	"fmt"

	"github.com/danielbradley/IxCompiler/arena"
	"github.com/danielbradley/IxCompiler/container"
	ixerror "github.com/danielbradley/IxCompiler/core/error"
	ixlog "github.com/danielbradley/IxCompiler/core/log"
	"github.com/danielbradley/IxCompiler/token"
)

// Builder assembles a syntax tree top-down while the parser descends the
// grammar. Open starts a node whose children follow, Add attaches a leaf,
// and Close finishes the node opened last.
//
// The builder wires both directions of every edge: the child joins the
// parent's child list and the child's advisory parent reference is set.
// Hand-built trees get only the edges they wire themselves.
//
// The first error poisons the builder: every later call returns the same
// error, so a parser can check once at Result instead of after each step.
// Abort releases the partial tree and makes the builder usable again.
//
// Builder is not safe for concurrent use.
type Builder struct {
	nodes  *arena.Arena[Node]
	logger *ixlog.Logger
	open   *container.Array[*Node]
	root   *Node
	err    error
}

// BuilderConfig controls builder behavior
type BuilderConfig struct {
	// Arena supplies node storage; nil creates an unlimited private arena
	Arena *arena.Arena[Node]

	// Logger receives build diagnostics; nil disables logging
	Logger *ixlog.Logger
}

// NewBuilder creates a builder backed by the given arena
func NewBuilder(nodes *arena.Arena[Node]) *Builder {
	return NewBuilderWithConfig(BuilderConfig{Arena: nodes})
}

// NewBuilderWithConfig creates a builder with the given configuration
func NewBuilderWithConfig(cfg BuilderConfig) *Builder {
	nodes := cfg.Arena
	if nodes == nil {
		nodes = arena.New[Node]()
	}

	return &Builder{
		nodes:  nodes,
		logger: cfg.Logger,
		open:   container.NewArray[*Node](),
	}
}

// Arena returns the arena the builder allocates from, which is where
// leak accounting for the built trees lives
func (b *Builder) Arena() *arena.Arena[Node] {
	return b.nodes
}

// Open starts a new node that will receive children until the matching
// Close. The first opened node becomes the root. On failure the token
// stays with the caller.
func (b *Builder) Open(tok *token.Token) error {
	if b.err != nil {
		return b.err
	}
	if b.root != nil && b.open.IsEmpty() {
		return b.fail(ixerror.New("tree already has a completed root").
			WithCode(ixerror.CodeInvalidOperation).
			WithOperation("Builder.Open"))
	}

	var n *Node
	if parent, ok := b.open.Last(); ok {
		child, err := b.attach(parent, tok)
		if err != nil {
			return err
		}
		n = child
	} else {
		root, err := New(b.nodes, tok)
		if err != nil {
			return b.fail(err)
		}
		b.root = root
		n = root
	}

	b.open.Push(n)

	if b.logger != nil {
		b.logger.Trace("node opened", ixlog.Fields{
			"token": tok.String(),
			"depth": b.open.Length(),
		})
	}
	return nil
}

// Add attaches a leaf node under the currently open node.
// On failure the token stays with the caller.
func (b *Builder) Add(tok *token.Token) error {
	if b.err != nil {
		return b.err
	}

	parent, ok := b.open.Last()
	if !ok {
		return b.fail(ixerror.New("no open node to add to").
			WithCode(ixerror.CodeInvalidOperation).
			WithOperation("Builder.Add"))
	}

	if _, err := b.attach(parent, tok); err != nil {
		return err
	}

	if b.logger != nil {
		b.logger.Trace("leaf added", ixlog.Fields{
			"token": tok.String(),
			"depth": b.open.Length(),
		})
	}
	return nil
}

// Close finishes the node opened last
func (b *Builder) Close() error {
	if b.err != nil {
		return b.err
	}

	n, ok := b.open.Pop()
	if !ok {
		return b.fail(ixerror.New("close without matching open").
			WithCode(ixerror.CodeTreeUnbalanced).
			WithOperation("Builder.Close"))
	}

	if b.logger != nil {
		b.logger.Trace("node closed", ixlog.Fields{
			"node":  n.String(),
			"depth": b.open.Length() + 1,
		})
	}
	return nil
}

// Depth returns the number of currently open nodes
func (b *Builder) Depth() int {
	return b.open.Length()
}

// Err returns the error that poisoned the builder, nil while healthy
func (b *Builder) Err() error {
	return b.err
}

// Result hands the finished tree to the caller, who becomes responsible
// for destroying it. The builder resets and can build the next tree.
//
// Result fails while nodes are still open; closing them and calling
// Result again is fine.
func (b *Builder) Result() (*Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.root == nil {
		return nil, ixerror.New("builder has no tree").
			WithCode(ixerror.CodeInvalidOperation).
			WithOperation("Builder.Result")
	}
	if !b.open.IsEmpty() {
		return nil, ixerror.New(fmt.Sprintf("%d node(s) still open", b.open.Length())).
			WithCode(ixerror.CodeTreeUnbalanced).
			WithOperation("Builder.Result")
	}

	root := b.root
	b.root = nil
	return root, nil
}

// Abort destroys the partially built tree, clears any poisoning error,
// and resets the builder for the next tree. Aborting an empty builder is
// a no-op.
func (b *Builder) Abort() error {
	root := b.root
	b.root = nil
	b.open = container.NewArray[*Node]()
	b.err = nil

	if root == nil {
		return nil
	}

	size := Size(root)
	err := root.Destroy()

	if b.logger != nil {
		b.logger.Debug("build aborted", ixlog.Int("nodes_destroyed", size))
	}
	return err
}

// attach constructs a child under the parent and wires both directions
// of the edge
func (b *Builder) attach(parent *Node, tok *token.Token) (*Node, error) {
	child, err := parent.AddChild(tok)
	if err != nil {
		return nil, b.fail(err)
	}
	if err := child.SetParent(parent); err != nil {
		return nil, b.fail(err)
	}
	return child, nil
}

// fail records the first error and reports it to the logger
func (b *Builder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	if b.logger != nil {
		b.logger.LogError(err)
	}
	return err
}
