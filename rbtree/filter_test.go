package rbtree

import "testing"

func TestFilterLessThan20(t *testing.T) {
	tree := intTree(10, 20, 30, 15, 25, 5, 1)
	got, count := tree.Filter(func(v int, _ any) bool { return v < 20 }, nil)
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	sliceEq(t, got, 1, 5, 10, 15)
}

func TestFilterUsesContext(t *testing.T) {
	tree := intTree(10, 20, 30, 15, 25, 5, 1)
	threshold := 12
	got, _ := tree.Filter(func(v int, ctx any) bool {
		return v > ctx.(int)
	}, threshold)
	sliceEq(t, got, 15, 20, 25, 30)
}

func TestFilterNoMatch(t *testing.T) {
	tree := intTree(1, 2, 3)
	got, count := tree.Filter(func(v int, _ any) bool { return v > 100 }, nil)
	if got != nil || count != 0 {
		t.Errorf("expected nil, 0, got %v, %d", got, count)
	}
	if got, count := tree.Filter(nil, nil); got != nil || count != 0 {
		t.Errorf("nil predicate should yield nil, 0")
	}
}

func TestFilterAppendMatchesFilter(t *testing.T) {
	tree := intTree(10, 20, 30, 15, 25, 5, 1)
	pred := func(v int, _ any) bool { return v%2 == 1 || v < 20 }
	twoPass, n1 := tree.Filter(pred, nil)
	onePass, n2 := tree.FilterAppend(pred, nil)
	if n1 != n2 {
		t.Fatalf("counts differ: %d vs %d", n1, n2)
	}
	for i := range twoPass {
		if twoPass[i] != onePass[i] {
			t.Fatalf("results differ: %v vs %v", twoPass, onePass)
		}
	}
}

func TestFilterAppendNoMatch(t *testing.T) {
	tree := intTree(1, 2, 3)
	got, count := tree.FilterAppend(func(v int, _ any) bool { return false }, nil)
	if got != nil || count != 0 {
		t.Errorf("expected nil, 0, got %v, %d", got, count)
	}
}
