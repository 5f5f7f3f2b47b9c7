package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixClear(t *testing.T) {
	bm := NewBitMatrixWithSize(8, 8)
	bm.Set(2, 3)
	bm.Set(7, 7)
	bm.Clear()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if bm.Get(x, y) {
				t.Fatalf("bit (%d,%d) should be unset after Clear", x, y)
			}
		}
	}
}

func TestBitMatrixSpansWordBoundary(t *testing.T) {
	bm := NewBitMatrixWithSize(36, 36)
	bm.Set(31, 0)
	bm.Set(32, 0)
	if !bm.Get(31, 0) || !bm.Get(32, 0) {
		t.Error("bits spanning the 32-bit word boundary should both be set")
	}
	if bm.Get(33, 0) {
		t.Error("adjacent bit should remain unset")
	}
}

func TestBitMatrixEquals(t *testing.T) {
	a := NewBitMatrixWithSize(4, 4)
	b := NewBitMatrixWithSize(4, 4)
	a.Set(1, 1)
	if a.Equals(b) {
		t.Error("matrices with different bits should not be equal")
	}
	b.Set(1, 1)
	if !a.Equals(b) {
		t.Error("matrices with the same bits should be equal")
	}
}

func TestBitMatrixString(t *testing.T) {
	bm := NewBitMatrixWithSize(2, 2)
	bm.Set(0, 0)
	got := bm.String()
	want := "X   \n    \n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
