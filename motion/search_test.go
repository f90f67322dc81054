package motion

import (
	"testing"

	"github.com/framecut/scenecut/plane"
)

func constPlane(w, h int, v byte) *plane.Plane {
	p := plane.NewParams(w, h)
	pl := plane.New(p)
	src := make([]byte, w*h)
	for i := range src {
		src[i] = v
	}
	if err := pl.Pad(src); err != nil {
		panic(err)
	}
	return pl
}

func TestSearchIdenticalFramesReturnsZeroVector(t *testing.T) {
	prev := constPlane(32, 32, 50)
	cur := constPlane(32, 32, 50)
	r := Search(prev, cur, 0, 0, 4)
	if r.MV != (Vector{0, 0}) {
		t.Fatalf("MV = %+v, want zero vector", r.MV)
	}
	if r.SAD != 0 {
		t.Fatalf("SAD = %d, want 0", r.SAD)
	}
}

func TestSearchStaysWithinWindow(t *testing.T) {
	prev := constPlane(32, 32, 10)
	cur := constPlane(32, 32, 200)
	r := Search(prev, cur, 0, 0, 2) // fcode=2 -> search_limit=32, clipped to Edge=64
	limit := SearchLimit(2)
	if r.MV.DX < -limit || r.MV.DX > limit || r.MV.DY < -limit || r.MV.DY > limit {
		t.Fatalf("MV %+v outside search window %d", r.MV, limit)
	}
}

func TestSearchLimitTable(t *testing.T) {
	cases := map[int]int{2: 32, 4: 128, 6: 512}
	for fcode, want := range cases {
		if got := SearchLimit(fcode); got != want {
			t.Fatalf("SearchLimit(%d) = %d, want %d", fcode, got, want)
		}
	}
}

func TestSearchDeterministic(t *testing.T) {
	prev := constPlane(64, 64, 30)
	cur := constPlane(64, 64, 30)
	// Introduce a localized difference so the search has real work to do.
	cur.Data[cur.Offset(5, 5)] = 200

	r1 := Search(prev, cur, 0, 0, 4)
	r2 := Search(prev, cur, 0, 0, 4)
	if r1 != r2 {
		t.Fatalf("search not deterministic: %+v vs %+v", r1, r2)
	}
}
