package dynarray

import "testing"

func TestZeroValueIsUsable(t *testing.T) {
	var a Array[int]
	a.Append(1)
	a.Append(2)
	if a.Len() != 2 || a.At(0) != 1 || a.Last() != 2 {
		t.Errorf("unexpected state: len=%d", a.Len())
	}
}

func TestNewReservesCapacity(t *testing.T) {
	a := New[string](100)
	if a.Cap() < 100 {
		t.Errorf("Cap = %d, want >= 100", a.Cap())
	}
	if a.Len() != 0 {
		t.Errorf("fresh array should be empty")
	}
	small := New[string](1)
	if small.Cap() < initialCapacity {
		t.Errorf("small capacity should be raised to the default")
	}
}

func TestAppendGrows(t *testing.T) {
	a := New[int](0)
	for i := range 1000 {
		a.Append(i)
	}
	if a.Len() != 1000 {
		t.Fatalf("Len = %d, want 1000", a.Len())
	}
	for i := range 1000 {
		if a.At(i) != i {
			t.Fatalf("At(%d) = %d", i, a.At(i))
		}
	}
}

func TestAppendAll(t *testing.T) {
	a := New[int](0)
	a.AppendAll(1, 2, 3)
	if a.Len() != 3 || a.Last() != 3 {
		t.Errorf("unexpected state after AppendAll")
	}
}

func TestRemoveUnordered(t *testing.T) {
	a := New[int](0)
	a.AppendAll(10, 20, 30, 40)
	a.RemoveUnordered(1)
	if a.Len() != 3 {
		t.Fatalf("Len = %d, want 3", a.Len())
	}
	// 40 was swapped into slot 1
	if a.At(0) != 10 || a.At(1) != 40 || a.At(2) != 30 {
		t.Errorf("unexpected order after removal")
	}
}

func TestResetKeepsCapacity(t *testing.T) {
	a := New[int](0)
	a.AppendAll(1, 2, 3)
	before := a.Cap()
	a.Reset()
	if a.Len() != 0 {
		t.Errorf("Len after Reset = %d", a.Len())
	}
	if a.Cap() != before {
		t.Errorf("Reset should keep capacity: %d -> %d", before, a.Cap())
	}
}

func TestItemsHandsOffStorage(t *testing.T) {
	a := New[int](0)
	a.AppendAll(1, 2, 3)
	items := a.Items()
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if a.Len() != 0 {
		t.Errorf("array should be empty after handing off its storage")
	}
}

func TestAllStopsEarly(t *testing.T) {
	a := New[int](0)
	a.AppendAll(1, 2, 3, 4)
	visited := 0
	for v := range a.All() {
		visited++
		if v == 2 {
			break
		}
	}
	if visited != 2 {
		t.Errorf("visited %d items, want 2", visited)
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on out-of-range access")
		}
	}()
	a := New[int](0)
	a.At(0)
}
