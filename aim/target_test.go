package aim

import (
	"math"
	"math/rand"
	"testing"
)

func TestSelectClosest(t *testing.T) {
	ref := Point{X: 640, Y: 360}

	tests := []struct {
		name       string
		candidates []Candidate
		expectOK   bool
		expectIdx  int
		expectDist float64
	}{
		{
			name:       "no candidates",
			candidates: nil,
			expectOK:   false,
		},
		{
			name:       "single candidate",
			candidates: []Candidate{{Center: Point{X: 650, Y: 340}, Radius: 40}},
			expectOK:   true,
			expectIdx:  0,
			expectDist: math.Hypot(10, 20),
		},
		{
			name: "nearer candidate wins",
			candidates: []Candidate{
				{Center: Point{X: 700, Y: 400}, Radius: 50},
				{Center: Point{X: 660, Y: 370}, Radius: 35},
			},
			expectOK:   true,
			expectIdx:  1,
			expectDist: math.Hypot(20, 10),
		},
		{
			name: "tie keeps first seen",
			candidates: []Candidate{
				{Center: Point{X: 600, Y: 360}, Radius: 30},
				{Center: Point{X: 680, Y: 360}, Radius: 60},
				{Center: Point{X: 640, Y: 400}, Radius: 90},
			},
			expectOK:   true,
			expectIdx:  0,
			expectDist: 40,
		},
		{
			name: "candidate on the reference",
			candidates: []Candidate{
				{Center: Point{X: 0, Y: 0}, Radius: 30},
				{Center: Point{X: 640, Y: 360}, Radius: 30},
			},
			expectOK:   true,
			expectIdx:  1,
			expectDist: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, ok := SelectClosest(ref, tc.candidates)
			if ok != tc.expectOK {
				t.Fatalf("SelectClosest ok: got %v, want %v", ok, tc.expectOK)
			}
			if !ok {
				return
			}
			if sel.Candidate != tc.candidates[tc.expectIdx] {
				t.Errorf("SelectClosest: got %+v, want %+v", sel.Candidate, tc.candidates[tc.expectIdx])
			}
			if math.Abs(sel.Distance-tc.expectDist) > 1e-9 {
				t.Errorf("Distance: got %.4f, want %.4f", sel.Distance, tc.expectDist)
			}
		})
	}
}

func TestSelectClosest_NoCloserCandidate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ref := Point{X: 640, Y: 360}

	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(12)
		candidates := make([]Candidate, n)
		for j := range candidates {
			candidates[j] = Candidate{
				Center: Point{X: rng.Intn(1280), Y: rng.Intn(720)},
				Radius: 30 + rng.Intn(70),
			}
		}

		sel, ok := SelectClosest(ref, candidates)
		if !ok {
			t.Fatalf("round %d: expected a selection for %d candidates", i, n)
		}

		first := -1
		for j, c := range candidates {
			d := Distance(c.Center, ref)
			if d < sel.Distance {
				t.Fatalf("round %d: candidate %+v at %.3f is closer than selection at %.3f", i, c, d, sel.Distance)
			}
			if first < 0 && d == sel.Distance {
				first = j
			}
		}
		if candidates[first] != sel.Candidate {
			t.Fatalf("round %d: expected first minimum %+v, got %+v", i, candidates[first], sel.Candidate)
		}
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{X: 3, Y: 4}, Point{}); d != 5 {
		t.Errorf("Distance: got %v, want 5", d)
	}
	if d := Distance(Point{X: -3, Y: -4}, Point{}); d != 5 {
		t.Errorf("Distance with negative offset: got %v, want 5", d)
	}
}
