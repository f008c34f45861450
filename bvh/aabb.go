// Package bvh implements the vertex index described in the Voronoi core
// design: a 2-D axis-aligned bounding-volume hierarchy used to deduplicate
// numerically-close Voronoi vertices. The AABB type is a 2-D, cost-aware
// descendant of gobj.AABB: it keeps that type's empty-box sentinel
// convention (pmin = +Inf, pmax = -Inf until the first Extend) but adds the
// surface-area and proposed-surface-area methods the SAH insertion needs.
package bvh

import (
	"fmt"
	"math"

	"github.com/arl/go-voronoi/geom"
)

// skin is the fixed positive padding added to each axis extent before it
// enters the surface-area formula, keeping degenerate (zero-width) boxes
// from contributing zero cost and starving the SAH search of a gradient.
const skin = 1e-12

// AABB is a 2-D axis-aligned bounding box.
type AABB struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Empty returns the empty box sentinel: pmin = +Inf, pmax = -Inf. Union-ing
// anything into it yields exactly that thing, the same convention
// gobj.NewAABB uses for its 3-D box.
func Empty() AABB {
	return AABB{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
}

// FromPoint returns the degenerate box containing only p.
func FromPoint(p geom.Point) AABB {
	return AABB{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
}

func (b AABB) String() string {
	return fmt.Sprintf("x[%f, %f], y[%f, %f]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// Union returns the smallest box containing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		MinX: math.Min(b.MinX, other.MinX),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Intersect returns the componentwise overlap of b and other. The result
// may be an invalid box (Min > Max on some axis) when they don't overlap;
// callers that care should check that themselves.
func (b AABB) Intersect(other AABB) AABB {
	return AABB{
		MinX: math.Max(b.MinX, other.MinX),
		MaxX: math.Min(b.MaxX, other.MaxX),
		MinY: math.Max(b.MinY, other.MinY),
		MaxY: math.Min(b.MaxY, other.MaxY),
	}
}

// Contains reports whether p lies within b, componentwise inclusive.
func (b AABB) Contains(p geom.Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Overlaps reports whether b and other share any point.
func (b AABB) Overlaps(other AABB) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY
}

// SurfaceArea returns 2*Sum_i Prod_{j!=i}(max_j - min_j + 2*skin), the
// perimeter-like cost used by the SAH insertion and the balanced-rotation
// cost function.
func (b AABB) SurfaceArea() float64 {
	dx := b.MaxX - b.MinX + 2*skin
	dy := b.MaxY - b.MinY + 2*skin
	return 2 * (dx + dy)
}

// ProposedSurfaceArea returns the surface area b would have if p were
// unioned into it, without mutating b.
func (b AABB) ProposedSurfaceArea(p geom.Point) float64 {
	return b.Union(FromPoint(p)).SurfaceArea()
}

// Expand returns b inflated by r on every side, used by radius queries to
// bound the search to candidates that could possibly fall within r.
func (b AABB) Expand(r float64) AABB {
	return AABB{
		MinX: b.MinX - r, MaxX: b.MaxX + r,
		MinY: b.MinY - r, MaxY: b.MaxY + r,
	}
}
