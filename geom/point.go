// Package geom provides the computational-geometry primitives the Voronoi
// core is built on: points, lines, parabolas, circumcircles and the
// tolerance predicate used throughout to treat numerically-close quantities
// as equal.
package geom

import "math"

// Epsilon is the absolute tolerance used by Approx. Sized for the scale of
// Voronoi site coordinates and circumcircle computations, not for general
// purpose float comparison.
const Epsilon = 1e-8

// Point is an immutable 2-D point with float64 coordinates. Equality is
// exact on both components; use Approx for tolerant comparisons.
type Point struct {
	X, Y float64
}

// New returns the point (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// DistSqr returns the squared Euclidean distance between p and q.
func (p Point) DistSqr(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.DistSqr(q))
}

// Equal reports whether p and q are exactly equal, componentwise.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Approx reports whether x and y are within Epsilon of each other, using an
// absolute tolerance. This is the shared "≈" predicate used by the
// collinearity test and the beachline tie-break; the BVH merge check uses
// its own radius instead.
func Approx(x, y float64) bool {
	return math.Abs(x-y) < Epsilon
}

// ApproxEpsilon is Approx with a caller supplied tolerance, mirroring
// math32.ApproxEpsilon but over float64 (the pack has no double-precision
// tolerance helper to reuse directly).
func ApproxEpsilon(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}
