package geom

// Line holds the coefficients of a·x + b·y = c.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line a·x + b·y = c passing through both p and q.
//
//	see PerpendicularBisector
func LineThrough(p, q Point) Line {
	a := q.Y - p.Y
	b := p.X - q.X
	c := a*p.X + b*p.Y
	return Line{A: a, B: b, C: c}
}

// PerpendicularBisector returns the line through the midpoint of p and q,
// perpendicular to the segment pq. It is LineThrough rotated 90°: the
// direction vector (a, b) of LineThrough(p, q) becomes the normal of the
// bisector, and vice versa.
func PerpendicularBisector(p, q Point) Line {
	mid := Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
	dx := q.X - p.X
	dy := q.Y - p.Y
	// Bisector direction is (-dy, dx); its coefficients are the normal to
	// that direction, i.e. (dx, dy) itself.
	a := dx
	b := dy
	c := a*mid.X + b*mid.Y
	return Line{A: a, B: b, C: c}
}

// IsLeft reports whether r lies strictly to the left of the directed line
// p->q, using the sign of det(p-r, q-r). Collinear triples (determinant
// within Epsilon of zero) return false, matching IsRight.
func IsLeft(p, q, r Point) bool {
	return determinant(p, q, r) > Epsilon
}

// IsRight reports whether r lies strictly to the right of the directed line
// p->q. Collinear triples return false, matching IsLeft.
func IsRight(p, q, r Point) bool {
	return determinant(p, q, r) < -Epsilon
}

// IsCollinear reports whether p, q, r are collinear within tolerance.
func IsCollinear(p, q, r Point) bool {
	return Approx(determinant(p, q, r), 0)
}

// determinant computes det(p-r, q-r): the signed area of triangle pqr
// (twice), the same quantity go-detour's TriArea2D computes for its xz
// plane but here directly in the 2-D site plane.
func determinant(p, q, r Point) float64 {
	px, py := p.X-r.X, p.Y-r.Y
	qx, qy := q.X-r.X, q.Y-r.Y
	return px*qy - py*qx
}
