// File: arena.go
// Title: Counting Object Arena
// Description: Implements a tracking allocator for syntax tree nodes. The
//              arena counts allocations and frees, detects double frees,
//              and can enforce an allocation limit so that out-of-memory
//              handling is testable.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package arena

import (
	"fmt"

	ixerror "github.com/danielbradley/IxCompiler/core/error"
	ixlog "github.com/danielbradley/IxCompiler/core/log"
)

// NoLimit disables the allocation limit
const NoLimit = 0

// allocState tracks what the arena knows about a pointer
type allocState int

const (
	stateLive allocState = iota
	stateFreed
)

// Arena allocates objects of type T and accounts for every allocation.
// Balanced use, one Free per Alloc, drives Live back to zero; a nonzero
// Live count after teardown is a leak.
//
// A limit turns the arena into a failure injector: once the live count
// reaches the limit, Alloc fails with an arena exhaustion error, which is
// how tests exercise out-of-memory paths deterministically. Freeing
// objects makes room again, the way real memory does.
//
// Arena is not safe for concurrent use; the syntax tree it backs is
// single-threaded as well.
type Arena[T any] struct {
	limit     int
	allocated int
	freed     int
	objects   map[*T]allocState
	logger    *ixlog.Logger
	trace     bool
}

// Config controls arena behavior
type Config struct {
	// Limit caps the number of live allocations; NoLimit disables it.
	// Freeing objects makes room for new ones.
	Limit int

	// Logger receives allocation diagnostics; nil disables logging
	Logger *ixlog.Logger

	// Trace additionally logs every Alloc and Free at trace level
	Trace bool
}

// Stats is a snapshot of the arena counters
type Stats struct {
	Allocated int // total successful allocations
	Freed     int // total successful frees
	Live      int // allocations not yet freed
	Limit     int // configured limit, NoLimit when unlimited
}

// String returns the counters in a compact single-line form
func (s Stats) String() string {
	return fmt.Sprintf("allocated=%d freed=%d live=%d limit=%d",
		s.Allocated, s.Freed, s.Live, s.Limit)
}

// New creates an unlimited arena without logging
func New[T any]() *Arena[T] {
	return NewWithConfig[T](Config{})
}

// NewWithConfig creates an arena with the given configuration.
// A negative limit is treated as NoLimit.
func NewWithConfig[T any](cfg Config) *Arena[T] {
	limit := cfg.Limit
	if limit < 0 {
		limit = NoLimit
	}

	return &Arena[T]{
		limit:   limit,
		objects: make(map[*T]allocState),
		logger:  cfg.Logger,
		trace:   cfg.Trace,
	}
}

// Alloc returns a zero-valued object tracked by the arena.
// When the live allocation count has reached the limit it returns nil and
// an arena exhaustion error; the arena state is unchanged in that case.
func (a *Arena[T]) Alloc() (*T, error) {
	if a.limit != NoLimit && a.Live() >= a.limit {
		err := ixerror.New("arena allocation limit reached").
			WithCode(ixerror.CodeArenaExhausted).
			WithOperation("arena.Alloc").
			WithDetail("limit", a.limit).
			WithDetail("live", a.Live())

		if a.logger != nil {
			a.logger.LogError(err)
		}
		return nil, err
	}

	obj := new(T)
	a.objects[obj] = stateLive
	a.allocated++

	if a.trace && a.logger != nil {
		a.logger.Trace("arena alloc", ixlog.Int("live", a.Live()))
	}
	return obj, nil
}

// Free returns an object to the arena.
// Freeing nil, an object the arena never allocated, or an object that was
// already freed is reported as an error; the counters only move on a
// balanced free.
func (a *Arena[T]) Free(obj *T) error {
	if obj == nil {
		return ixerror.New("cannot free nil object").
			WithCode(ixerror.CodeNotAllocated).
			WithOperation("arena.Free")
	}

	state, known := a.objects[obj]
	if !known {
		return ixerror.New("object was not allocated by this arena").
			WithCode(ixerror.CodeNotAllocated).
			WithOperation("arena.Free")
	}
	if state == stateFreed {
		err := ixerror.New("object freed twice").
			WithCode(ixerror.CodeDoubleFree).
			WithOperation("arena.Free")

		if a.logger != nil {
			a.logger.LogError(err)
		}
		return err
	}

	a.objects[obj] = stateFreed
	a.freed++

	if a.trace && a.logger != nil {
		a.logger.Trace("arena free", ixlog.Int("live", a.Live()))
	}
	return nil
}

// Live returns the number of allocations that have not been freed
func (a *Arena[T]) Live() int {
	return a.allocated - a.freed
}

// Allocated returns the total number of successful allocations
func (a *Arena[T]) Allocated() int {
	return a.allocated
}

// Freed returns the total number of successful frees
func (a *Arena[T]) Freed() int {
	return a.freed
}

// Limit returns the configured allocation limit, NoLimit when unlimited
func (a *Arena[T]) Limit() int {
	return a.limit
}

// Stats returns a snapshot of the arena counters
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Allocated: a.allocated,
		Freed:     a.freed,
		Live:      a.Live(),
		Limit:     a.limit,
	}
}
