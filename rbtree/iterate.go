package rbtree

import "iter"

// Iterator walks the payloads of a tree in comparator order, in either
// direction. The zero value is an invalid iterator.
//
// Iterators are positions, not snapshots: structurally mutating the tree
// while an iterator is live invalidates it silently.
type Iterator[T any] struct {
	tree    *Tree[T]
	current *Node[T]
}

// Begin returns an iterator positioned at the minimum node, invalid for an
// empty tree.
func (t *Tree[T]) Begin() Iterator[T] {
	it := Iterator[T]{tree: t}
	if t.alive() && t.root != t.sentinel {
		it.current = t.Min()
	}
	return it
}

// RBegin returns an iterator positioned at the maximum node, invalid for an
// empty tree.
func (t *Tree[T]) RBegin() Iterator[T] {
	it := Iterator[T]{tree: t}
	if t.alive() && t.root != t.sentinel {
		it.current = t.Max()
	}
	return it
}

// Next advances the iterator to the in-order successor.
func (it *Iterator[T]) Next() {
	if it != nil && it.tree != nil && it.current != nil {
		it.current = it.tree.Successor(it.current)
	}
}

// Prev moves the iterator to the in-order predecessor.
func (it *Iterator[T]) Prev() {
	if it != nil && it.tree != nil && it.current != nil {
		it.current = it.tree.Predecessor(it.current)
	}
}

// Valid reports whether the iterator is positioned on a node.
func (it *Iterator[T]) Valid() bool {
	return it != nil && it.tree != nil && it.current != nil && it.current != it.tree.sentinel
}

// Payload returns the payload at the current position, or the zero value for
// an invalid iterator.
func (it *Iterator[T]) Payload() T {
	if !it.Valid() {
		var zero T
		return zero
	}
	return it.current.payload
}

// All returns an iterator over all payloads in ascending comparator order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := t.Begin(); it.Valid(); it.Next() {
			if !yield(it.Payload()) {
				return
			}
		}
	}
}

// Backward returns an iterator over all payloads in descending comparator
// order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := t.RBegin(); it.Valid(); it.Prev() {
			if !yield(it.Payload()) {
				return
			}
		}
	}
}

// ForEach visits all payloads in ascending order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[T]) ForEach(fn func(payload T) bool) {
	if fn == nil {
		return
	}
	for it := t.Begin(); it.Valid(); it.Next() {
		if !fn(it.Payload()) {
			return
		}
	}
}
