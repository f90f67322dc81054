package motion

import "testing"

func TestBitsZero(t *testing.T) {
	if got := bits(0, 0); got != 1 {
		t.Fatalf("bits(0,0) = %d, want 1", got)
	}
}

func TestBitsSingleAxis(t *testing.T) {
	// bits1D(d) = 1 + 2*floor(log2(|d|+1)) for d != 0, 0 for d == 0.
	check := func(d, want int) {
		t.Helper()
		if got := bits1D(d); got != want {
			t.Fatalf("bits1D(%d) = %d, want %d", d, got, want)
		}
	}
	check(0, 0)
	check(1, 3)  // |d|+1=2, log2floor=1, 1+2*1=3
	check(-1, 3)
	check(2, 3)  // |d|+1=3, log2floor=1
	check(3, 5)  // |d|+1=4, log2floor=2, 1+2*2=5
	check(7, 7)  // |d|+1=8, log2floor=3, 1+2*3=7
}

func TestBitsTwoAxes(t *testing.T) {
	if got, want := bits(1, 1), bits1D(1)+bits1D(1); got != want {
		t.Fatalf("bits(1,1) = %d, want %d", got, want)
	}
}

func TestLog2Floor(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 7: 2, 8: 3, 9: 3}
	for n, want := range cases {
		if got := log2Floor(n); got != want {
			t.Fatalf("log2Floor(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestTieBreak(t *testing.T) {
	a := Vector{1, 0}
	b := Vector{0, 1}
	if !less(a, b) {
		t.Fatalf("expected (1,0) preferred over (0,1) on dy tie-break")
	}
	c := Vector{-1, 0}
	if !less(c, a) {
		t.Fatalf("expected (-1,0) preferred over (1,0) on dx tie-break")
	}
	d := Vector{2, 0}
	if !less(a, d) {
		t.Fatalf("expected (1,0) preferred over (2,0) on magnitude")
	}
}
