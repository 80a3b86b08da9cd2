package particles

import (
	"cmp"
	"slices"
)

// Point is one control point: a normalized x in [0, 1] and a value.
type Point struct {
	X     float64 `toml:"x"`
	Value float64 `toml:"value"`
}

// Curve is a sequence of control points ordered by X. Editors keep at least
// two points; evaluation interpolates linearly between neighbours.
type Curve struct {
	Points []Point `toml:"points"`
}

// FlatCurve returns a two-point curve holding v over the whole range.
func FlatCurve(v float64) Curve {
	return Curve{Points: []Point{{X: 0, Value: v}, {X: 1, Value: v}}}
}

// Clone returns a deep copy.
func (c Curve) Clone() Curve {
	return Curve{Points: slices.Clone(c.Points)}
}

// Sort orders the points by X, keeping the relative order of equal X.
func (c *Curve) Sort() {
	slices.SortStableFunc(c.Points, func(a, b Point) int { return cmp.Compare(a.X, b.X) })
}

// Sorted reports whether the points are non-decreasing in X.
func (c Curve) Sorted() bool {
	return slices.IsSortedFunc(c.Points, func(a, b Point) int { return cmp.Compare(a.X, b.X) })
}

// Eval returns the curve value at x by linear interpolation. Outside the
// first and last points the end values are held. An empty curve yields 1.
func (c Curve) Eval(x float64) float64 {
	n := len(c.Points)
	switch {
	case n == 0:
		return 1
	case x <= c.Points[0].X:
		return c.Points[0].Value
	case x >= c.Points[n-1].X:
		return c.Points[n-1].Value
	}
	for i := 1; i < n; i++ {
		p0, p1 := c.Points[i-1], c.Points[i]
		if x > p1.X {
			continue
		}
		if p1.X == p0.X {
			return p1.Value
		}
		t := (x - p0.X) / (p1.X - p0.X)
		return p0.Value + (p1.Value-p0.Value)*t
	}
	return c.Points[n-1].Value
}
