package geom

// Circle is a circumcircle: a center and a radius.
type Circle struct {
	Center Point
	Radius float64
}

// Circumcircle returns the circle through p, q and r, or (Circle{}, false)
// if the three points are collinear (determinant magnitude within
// Epsilon of zero). Solved as the intersection of the perpendicular
// bisectors of pq and qr.
func Circumcircle(p, q, r Point) (Circle, bool) {
	if IsCollinear(p, q, r) {
		return Circle{}, false
	}

	bpq := PerpendicularBisector(p, q)
	bqr := PerpendicularBisector(q, r)

	// Solve the 2x2 linear system:
	//   bpq.A*x + bpq.B*y = bpq.C
	//   bqr.A*x + bqr.B*y = bqr.C
	det := bpq.A*bqr.B - bqr.A*bpq.B
	if Approx(det, 0) {
		return Circle{}, false
	}
	cx := (bpq.C*bqr.B - bqr.C*bpq.B) / det
	cy := (bpq.A*bqr.C - bqr.A*bpq.C) / det

	center := Point{cx, cy}
	return Circle{Center: center, Radius: center.Dist(p)}, true
}
