// File: iterator_test.go
// Title: Container Iterator Tests
// Description: Tests for forward iteration, the live view over appends,
//              exhaustion behavior, and restart via Reset.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package container

import "testing"

func TestIteratorVisitsAllInOrder(t *testing.T) {
	a := NewArray[int]()
	a.Push(10)
	a.Push(20)
	a.Push(30)

	it := a.Iterator()

	var visited []int
	for it.HasNext() {
		item, ok := it.Next()
		if !ok {
			t.Fatal("Next reported false while HasNext was true")
		}
		visited = append(visited, item)
	}

	if len(visited) != 3 || visited[0] != 10 || visited[1] != 20 || visited[2] != 30 {
		t.Errorf("visited = %v, expected [10 20 30]", visited)
	}
}

func TestIteratorOnEmptyArray(t *testing.T) {
	a := NewArray[string]()
	it := a.Iterator()

	if it.HasNext() {
		t.Error("HasNext should report false for an empty array")
	}
	if _, ok := it.Next(); ok {
		t.Error("Next should report false for an empty array")
	}
}

func TestIteratorExhaustion(t *testing.T) {
	a := NewArray[int]()
	a.Push(1)

	it := a.Iterator()
	it.Next()

	if it.HasNext() {
		t.Error("HasNext should report false after the last item")
	}
	if item, ok := it.Next(); ok || item != 0 {
		t.Errorf("exhausted Next() = %d, %v, expected zero value and false", item, ok)
	}
}

func TestIteratorIsLiveView(t *testing.T) {
	a := NewArray[int]()
	a.Push(1)

	it := a.Iterator()
	it.Next()

	// an append after the iterator was created is still visible
	a.Push(2)

	if !it.HasNext() {
		t.Fatal("iterator should see items appended during iteration")
	}
	if item, _ := it.Next(); item != 2 {
		t.Errorf("Next() = %d, expected the appended item", item)
	}
}

func TestIteratorReset(t *testing.T) {
	a := NewArray[int]()
	a.Push(1)
	a.Push(2)

	it := a.Iterator()
	for it.HasNext() {
		it.Next()
	}

	it.Reset()

	if !it.HasNext() {
		t.Fatal("HasNext should report true after Reset")
	}
	if item, _ := it.Next(); item != 1 {
		t.Errorf("Next() after Reset = %d, expected the first item", item)
	}
}

func TestIndependentIterators(t *testing.T) {
	a := NewArray[int]()
	a.Push(1)
	a.Push(2)

	first := a.Iterator()
	second := a.Iterator()

	first.Next()

	if item, _ := second.Next(); item != 1 {
		t.Error("iterators over the same array should hold independent positions")
	}
}
