// File: arena_test.go
// Title: Arena Tests
// Description: Tests for allocation accounting, limit-based failure
//              injection, double free detection, and logging integration.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package arena

import (
	"bytes"
	"strings"
	"testing"

	ixerror "github.com/danielbradley/IxCompiler/core/error"
	ixlog "github.com/danielbradley/IxCompiler/core/log"
)

type payload struct {
	value int
}

func TestAllocFree(t *testing.T) {
	a := New[payload]()

	obj, err := a.Alloc()
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if obj == nil {
		t.Fatal("Alloc returned nil without error")
	}
	if obj.value != 0 {
		t.Error("allocated object should be zero-valued")
	}

	if a.Allocated() != 1 || a.Freed() != 0 || a.Live() != 1 {
		t.Errorf("counters after Alloc: %s", a.Stats())
	}

	if err := a.Free(obj); err != nil {
		t.Fatalf("Free failed: %v", err)
	}

	if a.Allocated() != 1 || a.Freed() != 1 || a.Live() != 0 {
		t.Errorf("counters after Free: %s", a.Stats())
	}
}

func TestBalancedUseLeavesNoLive(t *testing.T) {
	a := New[payload]()

	var objs []*payload
	for i := 0; i < 100; i++ {
		obj, err := a.Alloc()
		if err != nil {
			t.Fatalf("Alloc %d failed: %v", i, err)
		}
		objs = append(objs, obj)
	}

	for _, obj := range objs {
		if err := a.Free(obj); err != nil {
			t.Fatalf("Free failed: %v", err)
		}
	}

	if a.Live() != 0 {
		t.Errorf("Live() = %d after balanced use, expected 0", a.Live())
	}
	if a.Allocated() != 100 || a.Freed() != 100 {
		t.Errorf("counters: %s", a.Stats())
	}
}

func TestLimitExhaustion(t *testing.T) {
	a := NewWithConfig[payload](Config{Limit: 3})

	for i := 0; i < 3; i++ {
		if _, err := a.Alloc(); err != nil {
			t.Fatalf("Alloc %d failed below the limit: %v", i, err)
		}
	}

	obj, err := a.Alloc()
	if obj != nil {
		t.Error("exhausted Alloc should return nil")
	}
	if !ixerror.HasCode(err, ixerror.CodeArenaExhausted) {
		t.Errorf("expected CodeArenaExhausted, got %v", err)
	}

	// a failed allocation must not move the counters
	if a.Allocated() != 3 || a.Live() != 3 {
		t.Errorf("counters after failed Alloc: %s", a.Stats())
	}
}

func TestFreeingMakesRoom(t *testing.T) {
	a := NewWithConfig[payload](Config{Limit: 2})

	first, _ := a.Alloc()
	a.Alloc()

	if _, err := a.Alloc(); !ixerror.HasCode(err, ixerror.CodeArenaExhausted) {
		t.Fatalf("expected exhaustion at the limit, got %v", err)
	}

	if err := a.Free(first); err != nil {
		t.Fatalf("Free failed: %v", err)
	}

	if _, err := a.Alloc(); err != nil {
		t.Errorf("Alloc should succeed after a Free made room: %v", err)
	}
}

func TestNegativeLimitMeansUnlimited(t *testing.T) {
	a := NewWithConfig[payload](Config{Limit: -1})

	if a.Limit() != NoLimit {
		t.Errorf("Limit() = %d, expected NoLimit", a.Limit())
	}
	for i := 0; i < 10; i++ {
		if _, err := a.Alloc(); err != nil {
			t.Fatalf("Alloc failed: %v", err)
		}
	}
}

func TestDoubleFree(t *testing.T) {
	a := New[payload]()

	obj, _ := a.Alloc()
	if err := a.Free(obj); err != nil {
		t.Fatalf("first Free failed: %v", err)
	}

	err := a.Free(obj)
	if !ixerror.HasCode(err, ixerror.CodeDoubleFree) {
		t.Errorf("expected CodeDoubleFree, got %v", err)
	}
	if ixerror.GetSeverity(err) != ixerror.SeverityCritical {
		t.Errorf("double free should be critical, got %v", ixerror.GetSeverity(err))
	}

	// the second free must not move the counters
	if a.Freed() != 1 {
		t.Errorf("Freed() = %d after double free, expected 1", a.Freed())
	}
}

func TestFreeErrors(t *testing.T) {
	a := New[payload]()
	a.Alloc()

	t.Run("nil object", func(t *testing.T) {
		err := a.Free(nil)
		if !ixerror.HasCode(err, ixerror.CodeNotAllocated) {
			t.Errorf("expected CodeNotAllocated, got %v", err)
		}
	})

	t.Run("foreign object", func(t *testing.T) {
		err := a.Free(&payload{})
		if !ixerror.HasCode(err, ixerror.CodeNotAllocated) {
			t.Errorf("expected CodeNotAllocated, got %v", err)
		}
	})

	t.Run("object from another arena", func(t *testing.T) {
		other := New[payload]()
		obj, _ := other.Alloc()

		err := a.Free(obj)
		if !ixerror.HasCode(err, ixerror.CodeNotAllocated) {
			t.Errorf("expected CodeNotAllocated, got %v", err)
		}
	})
}

func TestStatsString(t *testing.T) {
	a := NewWithConfig[payload](Config{Limit: 8})
	a.Alloc()

	s := a.Stats().String()
	if s != "allocated=1 freed=0 live=1 limit=8" {
		t.Errorf("Stats().String() = %q", s)
	}
}

func TestExhaustionIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := ixlog.NewWithConfig(ixlog.Config{
		Level:  ixlog.LevelTrace,
		Format: ixlog.FormatJSON,
		Output: &buf,
	})

	a := NewWithConfig[payload](Config{Limit: 1, Logger: logger, Trace: true})

	a.Alloc()
	a.Alloc() // exhausted

	out := buf.String()
	if !strings.Contains(out, "arena alloc") {
		t.Error("trace logging should record allocations")
	}
	if !strings.Contains(out, "ARENA_EXHAUSTED") {
		t.Error("exhaustion should be logged with its error code")
	}
}

// Benchmarks

func BenchmarkArena_AllocFree(b *testing.B) {
	a := New[payload]()
	for i := 0; i < b.N; i++ {
		obj, _ := a.Alloc()
		a.Free(obj)
	}
}
