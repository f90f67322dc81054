package macroblock

import (
	"testing"

	"github.com/framecut/scenecut/plane"
)

func padded(w, h int, fill func(x, y int) byte) *plane.Plane {
	p := plane.NewParams(w, h)
	pl := plane.New(p)
	src := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src[y*w+x] = fill(x, y)
		}
	}
	if err := pl.Pad(src); err != nil {
		panic(err)
	}
	return pl
}

func TestClassifyIdenticalFramesAllInter(t *testing.T) {
	p := plane.NewParams(32, 32)
	prev := padded(32, 32, func(x, y int) byte { return byte((x * 7) % 251) })
	cur := padded(32, 32, func(x, y int) byte { return byte((x * 7) % 251) })

	blocks := make([]Block, p.MBW*p.MBH)
	stats := Classify(prev, cur, p, 4, blocks)

	if stats.IntraCount != 0 {
		t.Fatalf("IntraCount = %d, want 0 for identical frames", stats.IntraCount)
	}
	for i, b := range blocks {
		if b.SAD != 0 {
			t.Fatalf("block %d SAD = %d, want 0", i, b.SAD)
		}
	}
}

func TestClassifyUnrelatedFramesSomeIntra(t *testing.T) {
	p := plane.NewParams(32, 32)
	prev := padded(32, 32, func(x, y int) byte { return 0 })
	cur := padded(32, 32, func(x, y int) byte {
		// High-frequency noise-like pattern, poorly predicted by translation.
		return byte(((x*13 + y*29) % 7) * 37)
	})

	blocks := make([]Block, p.MBW*p.MBH)
	stats := Classify(prev, cur, p, 4, blocks)

	if stats.IntraCount == 0 {
		t.Fatalf("expected at least one intra block for unrelated frames")
	}
}
