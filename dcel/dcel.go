// Package dcel implements the doubly-connected edge list that the driver
// materializes: vertices indexed by a BVH for near-coincident merging, and
// half-edges linked into next/prev/twin rings once every edge has been
// created.
package dcel

import (
	"math"
	"sort"

	"github.com/arl/go-voronoi/bvh"
	"github.com/arl/go-voronoi/geom"
)

// Vertex is a Voronoi diagram vertex. Edge is the most recently created
// half-edge with this vertex as its source; before Postprocess runs it
// doubles as the head of a temporary linked list of every such half-edge
// (walked via HalfEdge.Next), the same field reused for two purposes the
// way the doubly-connected edge list it's grounded on does.
type Vertex struct {
	Point geom.Point
	Edge  *HalfEdge
}

// HalfEdge is one direction of an edge between two vertices. Twin is its
// opposite direction; Next and Prev link it into the ring of half-edges
// bounding the cell to its left.
type HalfEdge struct {
	Src, Dest        *Vertex
	Twin, Next, Prev *HalfEdge
}

// DCEL owns every vertex (via a BVH keyed on position) and every half-edge
// of the diagram. Half-edges reference vertices without owning them.
type DCEL struct {
	vertices *bvh.Tree[*Vertex]

	Vertices []*Vertex
	Edges    []*HalfEdge

	ShortestEdgeLength float64
	LongestEdgeLength  float64
}

// New returns an empty DCEL. balanced selects the vertex BVH's variant, per
// the same Config.Balanced knob the driver exposes.
func New(balanced bool) *DCEL {
	return &DCEL{
		vertices:           bvh.New[*Vertex](balanced),
		ShortestEdgeLength: math.Inf(1),
	}
}

// ClosestVertex reports the vertex within radius of p, if any.
func (d *DCEL) ClosestVertex(p geom.Point, radius float64) (*Vertex, bool) {
	n, ok := d.vertices.Query(p, radius)
	if !ok {
		return nil, false
	}
	return n.Value, true
}

// VertexAt returns the existing vertex within radius of p, or creates and
// indexes a new one there.
func (d *DCEL) VertexAt(p geom.Point, radius float64) (v *Vertex, created bool) {
	if existing, ok := d.ClosestVertex(p, radius); ok {
		return existing, false
	}
	v = &Vertex{Point: p}
	d.vertices.Insert(p, v)
	d.Vertices = append(d.Vertices, v)
	return v, true
}

// Bounds returns the union of every indexed vertex's position.
func (d *DCEL) Bounds() geom.Bounds {
	b := geom.EmptyBounds()
	for _, v := range d.Vertices {
		b = b.UnionPoint(v.Point)
	}
	return b
}

// CreateEdge links src to dest with a pair of twinned half-edges. It
// returns (nil, false) without creating anything when src and dest are the
// same vertex -- which happens when more than three sites are cocircular
// and a circle event's triple collapses onto an already-recorded vertex.
func (d *DCEL) CreateEdge(src, dest *Vertex) (*HalfEdge, bool) {
	if src == dest {
		return nil, false
	}

	e01 := &HalfEdge{Src: src, Dest: dest}
	e10 := &HalfEdge{Src: dest, Dest: src}
	e01.Twin = e10
	e10.Twin = e01

	if src.Edge != nil {
		e01.Next = src.Edge
	}
	src.Edge = e01

	if dest.Edge != nil {
		e10.Next = dest.Edge
	}
	dest.Edge = e10

	d.Edges = append(d.Edges, e01, e10)

	length := src.Point.Dist(dest.Point)
	d.ShortestEdgeLength = min(d.ShortestEdgeLength, length)
	d.LongestEdgeLength = max(d.LongestEdgeLength, length)

	return e01, true
}

// Postprocess finalizes every half-edge's Prev and Next. For each vertex
// it collects outgoing half-edges from the temporary Next chain, sorts
// them counterclockwise around the vertex, and sets each edge's Prev to
// the twin of the edge that follows it in that order (the last one wraps to
// the first's twin). A second pass then assigns Next as the reverse of
// Prev; a half-edge still without a Prev after the first pass takes its
// own twin as Prev.
func (d *DCEL) Postprocess() {
	for _, v := range d.Vertices {
		edge := v.Edge
		if edge == nil {
			continue
		}
		var outgoing []*HalfEdge
		for edge.Next != nil {
			outgoing = append(outgoing, edge)
			edge = edge.Next
		}
		outgoing = append(outgoing, edge)

		center := v.Point
		sort.Slice(outgoing, func(i, j int) bool {
			return angleAround(center, outgoing[i].Dest.Point) < angleAround(center, outgoing[j].Dest.Point)
		})

		for i := 0; i < len(outgoing)-1; i++ {
			outgoing[i].Prev = outgoing[i+1].Twin
		}
		outgoing[len(outgoing)-1].Prev = outgoing[0].Twin
	}

	for _, e := range d.Edges {
		if e.Prev == nil {
			e.Prev = e.Twin
		}
		e.Prev.Next = e
	}
}

// angleAround returns the counterclockwise angle from the positive x-axis
// to p as seen from center, in [0, 2π).
func angleAround(center, p geom.Point) float64 {
	radius := center.Dist(p)
	dx := p.X - center.X
	dy := p.Y - center.Y
	cosine := dx / radius
	if dy > 0 || geom.Approx(dy, 0) {
		return math.Acos(cosine)
	}
	return 2*math.Pi - math.Acos(cosine)
}
