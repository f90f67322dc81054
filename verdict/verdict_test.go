package verdict

import "testing"

func TestForTable(t *testing.T) {
	cases := map[Sensitivity]Thresholds{
		Low:    {3000, 150},
		Medium: {2000, 90},
		High:   {1000, 50},
	}
	for s, want := range cases {
		if got := For(s); got != want {
			t.Fatalf("For(%v) = %+v, want %+v", s, got, want)
		}
	}
}

func TestForCustomPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Custom sensitivity")
		}
	}()
	For(Custom)
}

func TestDecideCooldownGuard(t *testing.T) {
	th := For(Medium)
	// Even with overwhelming intra density, intraCount < 2 must suppress the cut.
	if Decide(th, 100, 100, 1) {
		t.Fatal("Decide should never fire with intraCount < 2")
	}
	if Decide(th, 100, 100, 0) {
		t.Fatal("Decide should never fire with intraCount < 2")
	}
}

func TestDecideThresholdBoundary(t *testing.T) {
	th := Thresholds{T1: 2000, T2: 90}
	n, intraCount := 300, 2
	// Boundary: I*T1 == N*T2*intraCount must NOT cut (strict >).
	boundaryI := (n * th.T2 * intraCount) / th.T1
	for boundaryI*th.T1 != n*th.T2*intraCount {
		boundaryI++
	}
	if Decide(th, n, boundaryI, intraCount) {
		t.Fatal("equality must not trigger a cut")
	}
	if !Decide(th, n, boundaryI+1, intraCount) {
		t.Fatal("just above the boundary must trigger a cut")
	}
}

func TestSensitivityMonotonicity(t *testing.T) {
	// Lower T1/T2 ratio (high sensitivity) should make cuts easier: for the
	// same N, I, intraCount, if low fires then medium must also fire, and
	// if medium fires then high must also fire.
	n, i, cd := 300, 40, 3
	low := Decide(For(Low), n, i, cd)
	med := Decide(For(Medium), n, i, cd)
	high := Decide(For(High), n, i, cd)
	if low && !med {
		t.Fatal("low firing but medium not firing violates monotonicity")
	}
	if med && !high {
		t.Fatal("medium firing but high not firing violates monotonicity")
	}
}
