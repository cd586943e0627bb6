package rbtree

// RangeFlags select bound inclusion and direction for range iteration and
// slicing.
type RangeFlags int

// Per-bound inclusion flags. A bound without its inclusion flag is exclusive.
const (
	IncludeLow RangeFlags = 1 << iota
	IncludeHigh
)

// Descending flips slice materialization to the reverse range iterator.
const Descending RangeFlags = 0x8000

// RangeIterator walks the payloads within [low, high] in comparator order,
// honoring per-bound inclusion flags. A nil bound pointer means unbounded on
// that side. The zero value is an invalid iterator.
type RangeIterator[T any] struct {
	tree    *Tree[T]
	current *Node[T]
	low     *T
	high    *T
	flags   RangeFlags
	reverse bool
}

// lowerBound returns the leftmost node at or above key, nil when none
// qualifies. With inclusive false, equal-comparing nodes do not qualify.
func (t *Tree[T]) lowerBound(key T, inclusive bool) *Node[T] {
	x := t.root
	res := t.sentinel
	for x != t.sentinel {
		cmp := t.cmp(x.payload, key)
		if cmp > 0 || (inclusive && cmp == 0) {
			res = x
			x = x.left
		} else {
			x = x.right
		}
	}
	if res != t.sentinel {
		return res
	}
	return nil
}

// upperBound returns the rightmost node at or below key, nil when none
// qualifies.
func (t *Tree[T]) upperBound(key T, inclusive bool) *Node[T] {
	x := t.root
	res := t.sentinel
	for x != t.sentinel {
		cmp := t.cmp(x.payload, key)
		if cmp < 0 || (inclusive && cmp == 0) {
			res = x
			x = x.right
		} else {
			x = x.left
		}
	}
	if res != t.sentinel {
		return res
	}
	return nil
}

// RangeBegin returns a forward iterator over the bounded range, positioned
// at the lowest node satisfying the low bound. The iterator starts invalid
// when nothing falls inside the range.
func (t *Tree[T]) RangeBegin(low, high *T, flags RangeFlags) RangeIterator[T] {
	it := RangeIterator[T]{tree: t, low: low, high: high, flags: flags}
	if !t.alive() || t.root == t.sentinel {
		return it
	}
	if low == nil {
		it.current = t.minimum(t.root)
	} else {
		it.current = t.lowerBound(*low, flags&IncludeLow != 0)
	}
	if it.current != nil && high != nil {
		cmp := t.cmp(it.current.payload, *high)
		if cmp > 0 || (flags&IncludeHigh == 0 && cmp == 0) {
			it.current = nil
		}
	}
	return it
}

// RangeRBegin returns a reverse iterator over the bounded range, positioned
// at the highest node satisfying the high bound.
func (t *Tree[T]) RangeRBegin(low, high *T, flags RangeFlags) RangeIterator[T] {
	it := RangeIterator[T]{tree: t, low: low, high: high, flags: flags, reverse: true}
	if !t.alive() || t.root == t.sentinel {
		return it
	}
	if high == nil {
		it.current = t.maximum(t.root)
	} else {
		it.current = t.upperBound(*high, flags&IncludeHigh != 0)
	}
	if it.current != nil && low != nil {
		cmp := t.cmp(it.current.payload, *low)
		if cmp < 0 || (flags&IncludeLow == 0 && cmp == 0) {
			it.current = nil
		}
	}
	return it
}

// Next advances towards the opposite bound and invalidates the iterator once
// that bound is crossed.
func (it *RangeIterator[T]) Next() {
	if it == nil || it.tree == nil || it.current == nil {
		return
	}
	if it.reverse {
		it.current = it.tree.Predecessor(it.current)
	} else {
		it.current = it.tree.Successor(it.current)
	}
	if it.current == nil {
		return
	}
	if it.reverse {
		if it.low == nil {
			return
		}
		cmp := it.tree.cmp(it.current.payload, *it.low)
		if cmp < 0 || (it.flags&IncludeLow == 0 && cmp == 0) {
			it.current = nil
		}
	} else {
		if it.high == nil {
			return
		}
		cmp := it.tree.cmp(it.current.payload, *it.high)
		if cmp > 0 || (it.flags&IncludeHigh == 0 && cmp == 0) {
			it.current = nil
		}
	}
}

// Valid reports whether the iterator is positioned on a node inside the
// range.
func (it *RangeIterator[T]) Valid() bool {
	if it == nil || it.tree == nil || it.current == nil || it.current == it.tree.sentinel {
		return false
	}
	if !it.reverse {
		if it.high != nil {
			cmp := it.tree.cmp(it.current.payload, *it.high)
			if cmp > 0 || (it.flags&IncludeHigh == 0 && cmp == 0) {
				return false
			}
		}
	} else {
		if it.low != nil {
			cmp := it.tree.cmp(it.current.payload, *it.low)
			if cmp < 0 || (it.flags&IncludeLow == 0 && cmp == 0) {
				return false
			}
		}
	}
	return true
}

// Payload returns the payload at the current position, or the zero value for
// an invalid iterator.
func (it *RangeIterator[T]) Payload() T {
	if it == nil || it.tree == nil || it.current == nil || it.current == it.tree.sentinel {
		var zero T
		return zero
	}
	return it.current.payload
}
