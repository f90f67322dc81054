package block

import (
	"testing"

	"github.com/framecut/scenecut/plane"
)

func fill(v byte) *plane.Plane {
	p := plane.NewParams(16, 16)
	pl := plane.New(p)
	src := make([]byte, 16*16)
	for i := range src {
		src[i] = v
	}
	if err := pl.Pad(src); err != nil {
		panic(err)
	}
	return pl
}

func TestSAD16Zero(t *testing.T) {
	a := fill(100)
	if got := SAD16(a, 0, 0, a, 0, 0); got != 0 {
		t.Fatalf("SAD16 of identical blocks = %d, want 0", got)
	}
}

func TestSAD16MaxContrast(t *testing.T) {
	a := fill(0)
	b := fill(255)
	want := uint32(16 * 16 * 255)
	if got := SAD16(a, 0, 0, b, 0, 0); got != want {
		t.Fatalf("SAD16 max contrast = %d, want %d", got, want)
	}
}

func TestSAD8(t *testing.T) {
	a := fill(10)
	b := fill(20)
	want := uint32(8 * 8 * 10)
	if got := SAD8(a, 0, 0, b, 0, 0); got != want {
		t.Fatalf("SAD8 = %d, want %d", got, want)
	}
}

func TestVariance16Constant(t *testing.T) {
	a := fill(77)
	if got := Variance16(a, 0, 0); got != 0 {
		t.Fatalf("Variance16 of constant block = %d, want 0", got)
	}
}

func TestSADSelfMean8Constant(t *testing.T) {
	a := fill(90)
	if got := SADSelfMean8(a, 0, 0); got != 0 {
		t.Fatalf("SADSelfMean8 of constant block = %d, want 0", got)
	}
}

func TestSADSelfMean8HalfAndHalf(t *testing.T) {
	p := plane.NewParams(16, 16)
	pl := plane.New(p)
	src := make([]byte, 16*16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if x < 8 {
				src[y*16+x] = 0
			} else {
				src[y*16+x] = 100
			}
		}
	}
	if err := pl.Pad(src); err != nil {
		t.Fatal(err)
	}
	// Top-left 8x8 subquadrant is all 0: mean=0, deviation=0.
	if got := SADSelfMean8(pl, 0, 0); got != 0 {
		t.Fatalf("SADSelfMean8 top-left = %d, want 0", got)
	}
	// Top-right 8x8 subquadrant is all 100: mean=100, deviation=0.
	if got := SADSelfMean8(pl, 8, 0); got != 0 {
		t.Fatalf("SADSelfMean8 top-right = %d, want 0", got)
	}
}

func TestVariance16Checkerboard(t *testing.T) {
	p := plane.NewParams(16, 16)
	pl := plane.New(p)
	src := make([]byte, 16*16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x+y)%2 == 0 {
				src[y*16+x] = 0
			} else {
				src[y*16+x] = 255
			}
		}
	}
	if err := pl.Pad(src); err != nil {
		t.Fatal(err)
	}
	// mean = 127.5 -> sum=32640, sumSq = 128*255^2, variance = sumSq - sum^2/256.
	const sum = 128 * 255
	const sumSq = 128 * 255 * 255
	want := uint32(sumSq - (sum*sum)/256)
	if got := Variance16(pl, 0, 0); got != want {
		t.Fatalf("Variance16 checkerboard = %d, want %d", got, want)
	}
}
