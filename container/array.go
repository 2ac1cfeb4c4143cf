// File: array.go
// Title: Ordered Generic Container
// Description: Implements an ordered, growable container with constant-time
//              access to the last element and removal from the front. Backs
//              the child lists of syntax tree nodes.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package container

// Array is an ordered container that preserves insertion order.
// Elements are appended at the back and may be removed from either end,
// which makes the container usable as a child list, as a work queue, and
// as a stack during tree teardown.
//
// Array is not safe for concurrent use.
type Array[T any] struct {
	items []T
}

// NewArray creates an empty array
func NewArray[T any]() *Array[T] {
	return &Array[T]{}
}

// NewArrayWithCapacity creates an empty array with preallocated capacity
func NewArrayWithCapacity[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{
		items: make([]T, 0, capacity),
	}
}

// Push appends an item at the back of the array
func (a *Array[T]) Push(item T) {
	a.items = append(a.items, item)
}

// Shift removes and returns the first item.
// It returns the zero value and false when the array is empty.
func (a *Array[T]) Shift() (T, bool) {
	var zero T
	if len(a.items) == 0 {
		return zero, false
	}

	item := a.items[0]
	a.items[0] = zero // release the reference for the garbage collector
	a.items = a.items[1:]
	return item, true
}

// Pop removes and returns the last item, making the array usable as a
// stack. It returns the zero value and false when the array is empty.
func (a *Array[T]) Pop() (T, bool) {
	var zero T
	if len(a.items) == 0 {
		return zero, false
	}

	last := len(a.items) - 1
	item := a.items[last]
	a.items[last] = zero // release the reference for the garbage collector
	a.items = a.items[:last]
	return item, true
}

// Get returns the item at the given index.
// It returns the zero value and false when the index is out of range.
func (a *Array[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(a.items) {
		var zero T
		return zero, false
	}
	return a.items[index], true
}

// Last returns the most recently appended item in constant time.
// It returns the zero value and false when the array is empty.
func (a *Array[T]) Last() (T, bool) {
	if len(a.items) == 0 {
		var zero T
		return zero, false
	}
	return a.items[len(a.items)-1], true
}

// Length returns the number of items in the array
func (a *Array[T]) Length() int {
	return len(a.items)
}

// IsEmpty returns whether the array contains no items
func (a *Array[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// Items returns a copy of the contained items in order.
// Mutating the returned slice does not affect the array.
func (a *Array[T]) Items() []T {
	result := make([]T, len(a.items))
	copy(result, a.items)
	return result
}

// Iterator returns a new iterator positioned before the first item.
// The iterator is a live view: items appended after its creation are
// still visited as long as the iteration has not passed their position.
func (a *Array[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{array: a}
}
