package dynarray

import "iter"

// initialCapacity is the starting capacity of a fresh array.
const initialCapacity = 8

// Array is a lightweight resizable sequence of items.
//
// The zero value is an empty array ready for use. Arrays are not
// synchronized.
type Array[T any] struct {
	items []T
}

// New creates an array with at least the given capacity.
func New[T any](capacity int) *Array[T] {
	if capacity < initialCapacity {
		capacity = initialCapacity
	}
	return &Array[T]{items: make([]T, 0, capacity)}
}

// Append adds one item at the end, growing the backing storage as needed.
func (a *Array[T]) Append(item T) {
	a.items = append(a.items, item)
}

// AppendAll adds multiple items at the end.
func (a *Array[T]) AppendAll(items ...T) {
	a.items = append(a.items, items...)
}

// Len returns the number of items.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Cap returns the current capacity.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return cap(a.items)
}

// At returns the item at index i.
func (a *Array[T]) At(i int) T {
	assert(a != nil && i >= 0 && i < len(a.items), "dynarray: index out of range")
	return a.items[i]
}

// Last returns the most recently appended item.
func (a *Array[T]) Last() T {
	assert(a != nil && len(a.items) > 0, "dynarray: Last on empty array")
	return a.items[len(a.items)-1]
}

// RemoveUnordered removes the item at index i by swapping the last item into
// its place. Order is not preserved.
func (a *Array[T]) RemoveUnordered(i int) {
	assert(a != nil && i >= 0 && i < len(a.items), "dynarray: index out of range")
	last := len(a.items) - 1
	a.items[i] = a.items[last]
	var zero T
	a.items[last] = zero
	a.items = a.items[:last]
}

// Reset empties the array but keeps its capacity.
func (a *Array[T]) Reset() {
	if a == nil {
		return
	}
	clear(a.items)
	a.items = a.items[:0]
}

// Items hands the backing slice to the caller. The array should not be used
// afterwards; ownership of the storage transfers with the call.
func (a *Array[T]) Items() []T {
	if a == nil {
		return nil
	}
	items := a.items
	a.items = nil
	return items
}

// All returns an iterator over the items in append order.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if a == nil {
			return
		}
		for _, item := range a.items {
			if !yield(item) {
				return
			}
		}
	}
}
