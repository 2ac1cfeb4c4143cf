// File: iterator.go
// Title: Container Sequence Iterator
// Description: Implements a restartable forward iterator over the ordered
//              container. The iterator reads through to the live container
//              state on every step.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package container

// Iterator walks an Array from front to back. It holds a position, not a
// snapshot, so items appended during iteration are visited as long as the
// iterator has not yet passed their index. Removing items from the array
// while iterating is not supported.
//
// Iterator is not safe for concurrent use.
type Iterator[T any] struct {
	array    *Array[T]
	position int
}

// HasNext returns whether another item is available
func (it *Iterator[T]) HasNext() bool {
	return it.position < it.array.Length()
}

// Next returns the next item and advances the iterator.
// It returns the zero value and false when the iteration is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	item, ok := it.array.Get(it.position)
	if !ok {
		var zero T
		return zero, false
	}
	it.position++
	return item, true
}

// Reset rewinds the iterator to the position before the first item,
// allowing the same iterator to traverse the container again.
func (it *Iterator[T]) Reset() {
	it.position = 0
}
