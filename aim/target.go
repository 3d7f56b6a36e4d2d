package aim

import "math"

// Point is a pixel coordinate, with Y growing downwards as in image space.
type Point struct {
	X, Y int
}

// Candidate is one circle found by the detector in a single frame.
type Candidate struct {
	Center Point
	Radius int // only used for display
}

// Selection is the candidate chosen for the current frame and its distance to the reference.
type Selection struct {
	Candidate Candidate
	Distance  float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// SelectClosest returns the candidate nearest to ref. The first candidate wins
// when several share the minimum distance. ok is false for an empty slice.
func SelectClosest(ref Point, candidates []Candidate) (sel Selection, ok bool) {
	closest := math.Inf(1)

	for _, c := range candidates {
		dist := Distance(c.Center, ref)
		if dist < closest {
			closest = dist
			sel = Selection{Candidate: c, Distance: dist}
			ok = true
		}
	}

	return sel, ok
}
