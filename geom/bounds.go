package geom

import "math"

// Bounds is an axis-aligned rectangle, used by the driver's postprocess step
// to close unbounded Voronoi edges against a finite boundary.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// EmptyBounds returns a bounds value that UnionPoint absorbs unconditionally,
// the same +Inf/-Inf sentinel convention the BVH's AABB uses.
func EmptyBounds() Bounds {
	return Bounds{MinX: math.Inf(1), MaxX: math.Inf(-1), MinY: math.Inf(1), MaxY: math.Inf(-1)}
}

// UnionPoint returns the smallest bounds containing both b and p.
func (b Bounds) UnionPoint(p Point) Bounds {
	return Bounds{
		MinX: min(b.MinX, p.X), MaxX: max(b.MaxX, p.X),
		MinY: min(b.MinY, p.Y), MaxY: max(b.MaxY, p.Y),
	}
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, o.MinX), MaxX: max(b.MaxX, o.MaxX),
		MinY: min(b.MinY, o.MinY), MaxY: max(b.MaxY, o.MaxY),
	}
}

// Inflate scales b about its center by factor, clamped to a minimum of 1.1 --
// below that, unbounded edges can be closed against a rectangle too tight to
// actually contain the diagram's vertices.
func (b Bounds) Inflate(factor float64) Bounds {
	if factor < 1.1 {
		factor = 1.1
	}
	cx, cy := (b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2
	dx := (b.MaxX - b.MinX) * factor / 2
	dy := (b.MaxY - b.MinY) * factor / 2
	return Bounds{MinX: cx - dx, MaxX: cx + dx, MinY: cy - dy, MaxY: cy + dy}
}

// BoundaryIntersection closes a breakpoint's open edge against b: it picks
// the ray of the perpendicular bisector of p0 and p1 whose direction matches
// the relative position of the two foci, and returns where that ray crosses
// b. The three branches cover a vertical bisector (foci share an x), a
// horizontal one (foci share a y), and the general oblique case, clamping
// the oblique solution to whichever edge of b it actually exits through.
func BoundaryIntersection(p0, p1 Point, b Bounds) Point {
	switch {
	case Approx(p0.X, p1.X):
		x := b.MinX
		if p0.Y > p1.Y {
			x = b.MaxX
		}
		return Point{X: x, Y: (p0.Y + p1.Y) / 2}
	case Approx(p0.Y, p1.Y):
		y := b.MaxY
		if p0.X > p1.X {
			y = b.MinY
		}
		return Point{X: (p0.X + p1.X) / 2, Y: y}
	default:
		line := PerpendicularBisector(p0, p1)
		y := b.MinY
		if p0.X < p1.X {
			y = b.MaxY
		}
		x := (line.C - line.B*y) / line.A
		switch {
		case x > b.MaxX:
			x = b.MaxX
			y = (line.C - line.A*x) / line.B
		case x < b.MinX:
			x = b.MinX
			y = (line.C - line.A*x) / line.B
		}
		return Point{X: x, Y: y}
	}
}
