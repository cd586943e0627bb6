package rbtree

import (
	"github.com/Cheeseborgers/gc-lib/dynarray"
)

// Slice materializes the payloads of a bounded range into a single sequence,
// ascending by default, descending with the Descending flag. It returns the
// sequence and its element count, nil and zero when nothing matches.
//
// The range is walked twice: a counting pass sizes the result, a second pass
// fills it.
func (t *Tree[T]) Slice(low, high *T, flags RangeFlags) ([]T, int) {
	if !t.alive() || t.root == t.sentinel {
		return nil, 0
	}
	var it RangeIterator[T]
	if flags&Descending != 0 {
		it = t.RangeRBegin(low, high, flags)
	} else {
		it = t.RangeBegin(low, high, flags)
	}

	count := 0
	for tmp := it; tmp.Valid(); tmp.Next() {
		count++
	}
	if count == 0 {
		return nil, 0
	}

	results := make([]T, 0, count)
	for ; it.Valid(); it.Next() {
		results = append(results, it.Payload())
	}
	return results, count
}

// Filter materializes all payloads satisfying pred, in ascending comparator
// order. ctx is handed to the predicate unchanged. Returns nil and zero when
// nothing matches.
//
// Like Slice this counts first and fills second; FilterAppend is the
// single-pass alternative.
func (t *Tree[T]) Filter(pred Predicate[T], ctx any) ([]T, int) {
	if !t.alive() || t.root == t.sentinel || pred == nil {
		return nil, 0
	}

	count := 0
	for it := t.Begin(); it.Valid(); it.Next() {
		if pred(it.Payload(), ctx) {
			count++
		}
	}
	if count == 0 {
		return nil, 0
	}

	results := make([]T, 0, count)
	for it := t.Begin(); it.Valid(); it.Next() {
		if payload := it.Payload(); pred(payload, ctx) {
			results = append(results, payload)
		}
	}
	return results, count
}

// FilterAppend is Filter with a growable result sequence: one pass over the
// tree, appending matches with amortized growth. Functionally equivalent to
// Filter; preferable when the match count is unknown and reallocation cost
// is acceptable.
func (t *Tree[T]) FilterAppend(pred Predicate[T], ctx any) ([]T, int) {
	if !t.alive() || t.root == t.sentinel || pred == nil {
		return nil, 0
	}

	results := dynarray.New[T](0)
	for it := t.Begin(); it.Valid(); it.Next() {
		if payload := it.Payload(); pred(payload, ctx) {
			results.Append(payload)
		}
	}
	count := results.Len()
	if count == 0 {
		return nil, 0
	}
	return results.Items(), count
}
