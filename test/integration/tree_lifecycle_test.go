// File: tree_lifecycle_test.go
// Title: Tree Lifecycle Integration Tests
// Description: Tests for the full front-end slice from configuration
//              through tree construction, traversal, and leak-free
//              teardown.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danielbradley/IxCompiler/arena"
	"github.com/danielbradley/IxCompiler/ast"
	ixconfig "github.com/danielbradley/IxCompiler/core/config"
	ixerror "github.com/danielbradley/IxCompiler/core/error"
	ixlog "github.com/danielbradley/IxCompiler/core/log"
	"github.com/danielbradley/IxCompiler/token"
)

const pipelineConfig = `
[log]
level  = "debug"
format = "json"

[arena]
max_nodes = 64
trace     = false
`

// newConfiguredPipeline builds the logger and arena the way an embedding
// front end would: everything driven from configuration
func newConfiguredPipeline(t *testing.T) (*ixlog.Logger, *arena.Arena[ast.Node], *bytes.Buffer) {
	t.Helper()

	cfg, err := ixconfig.LoadFromString(pipelineConfig, ixconfig.FormatTOML)
	if err != nil {
		t.Fatalf("config load failed: %v", err)
	}

	level, err := ixlog.ParseLevel(cfg.GetString("log.level", "info"))
	if err != nil {
		t.Fatalf("level parse failed: %v", err)
	}
	format, err := ixlog.ParseFormat(cfg.GetString("log.format", "text"))
	if err != nil {
		t.Fatalf("format parse failed: %v", err)
	}

	var buf bytes.Buffer
	logger := ixlog.NewWithConfig(ixlog.Config{
		Level:  level,
		Format: format,
		Output: &buf,
		Name:   "integration",
	})

	nodes := arena.NewWithConfig[ast.Node](arena.Config{
		Limit:  cfg.GetInt("arena.max_nodes", arena.NoLimit),
		Logger: logger,
		Trace:  cfg.GetBool("arena.trace", false),
	})

	return logger, nodes, &buf
}

func TestConfiguredPipelineLifecycle(t *testing.T) {
	logger, nodes, buf := newConfiguredPipeline(t)

	if nodes.Limit() != 64 {
		t.Fatalf("arena limit from config = %d, expected 64", nodes.Limit())
	}

	b := ast.NewBuilderWithConfig(ast.BuilderConfig{Arena: nodes, Logger: logger})

	// assemble: program(decl(x 1) decl(y 2))
	b.Open(token.New(token.KindKeyword, "program"))
	b.Open(token.New(token.KindKeyword, "decl"))
	b.Add(token.New(token.KindIdentifier, "x"))
	b.Add(token.New(token.KindNumber, "1"))
	b.Close()
	b.Open(token.New(token.KindKeyword, "decl"))
	b.Add(token.New(token.KindIdentifier, "y"))
	b.Add(token.New(token.KindNumber, "2"))
	b.Close()
	b.Close()

	root, err := b.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}

	if ast.Size(root) != 7 {
		t.Errorf("Size() = %d, expected 7:\n%s", ast.Size(root), ast.TreeString(root))
	}
	if ast.Depth(root) != 3 {
		t.Errorf("Depth() = %d, expected 3", ast.Depth(root))
	}

	// every edge carries both directions when the builder wired it
	for _, decl := range root.Children() {
		if decl.Parent() != root {
			t.Error("declaration parent should be the program node")
		}
		for _, leaf := range decl.Children() {
			if leaf.Parent() != decl {
				t.Error("leaf parent should be the declaration node")
			}
		}
	}

	if err := root.Destroy(); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if nodes.Live() != 0 {
		t.Errorf("arena Live() = %d after teardown, expected 0", nodes.Live())
	}
	if nodes.Allocated() != 7 || nodes.Freed() != 7 {
		t.Errorf("arena counters: %s", nodes.Stats())
	}

	if !strings.Contains(buf.String(), "node opened") {
		t.Error("builder activity should appear in the configured log")
	}
}

func TestExhaustionUnwindAndRetry(t *testing.T) {
	logger, _, _ := newConfiguredPipeline(t)

	nodes := arena.NewWithConfig[ast.Node](arena.Config{Limit: 2, Logger: logger})
	b := ast.NewBuilderWithConfig(ast.BuilderConfig{Arena: nodes, Logger: logger})

	b.Open(token.New(token.KindKeyword, "block"))
	b.Add(token.New(token.KindIdentifier, "a"))

	err := b.Add(token.New(token.KindIdentifier, "b"))
	if !ixerror.HasCode(err, ixerror.CodeArenaExhausted) {
		t.Fatalf("expected CodeArenaExhausted, got %v", err)
	}

	if err := b.Abort(); err != nil {
		t.Fatalf("Abort failed: %v", err)
	}
	if nodes.Live() != 0 {
		t.Fatalf("arena Live() = %d after Abort, expected 0", nodes.Live())
	}

	// the same builder and arena finish a smaller tree
	b.Open(token.New(token.KindKeyword, "block"))
	b.Add(token.New(token.KindIdentifier, "a"))
	b.Close()

	root, err := b.Result()
	if err != nil {
		t.Fatalf("retry Result failed: %v", err)
	}
	if ast.Size(root) != 2 {
		t.Errorf("retry Size() = %d, expected 2", ast.Size(root))
	}

	root.Destroy()
	if nodes.Live() != 0 {
		t.Errorf("arena Live() = %d at end, expected 0", nodes.Live())
	}
}

func TestHandBuiltAndBuilderTreesMix(t *testing.T) {
	_, nodes, _ := newConfiguredPipeline(t)

	// hand-built subtree: AddChild alone leaves parent references unset
	group, err := ast.New(nodes, token.New(token.KindKeyword, "group"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	member, err := group.AddChild(token.New(token.KindIdentifier, "member"))
	if err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}

	if member.Parent() != nil {
		t.Error("hand wiring should not gain a parent reference implicitly")
	}

	// iterate children through the restartable iterator
	it := group.Iterator()
	count := 0
	for it.HasNext() {
		it.Next()
		count++
	}
	it.Reset()
	for it.HasNext() {
		it.Next()
		count++
	}
	if count != 2 {
		t.Errorf("two passes over one child should visit 2, got %d", count)
	}

	if err := group.Destroy(); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if nodes.Live() != 0 {
		t.Errorf("arena Live() = %d, expected 0", nodes.Live())
	}
}
