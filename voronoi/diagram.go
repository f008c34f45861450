// Package voronoi drives Fortune's sweepline algorithm end to end:
// preprocess snaps near-coincident site coordinates, run empties the event
// queue into the beachline and DCEL, and postprocess closes unbounded
// edges and finalizes the DCEL's half-edge rings.
package voronoi

import (
	"sort"

	"github.com/arl/go-voronoi/beachline"
	"github.com/arl/go-voronoi/dcel"
	"github.com/arl/go-voronoi/event"
	"github.com/arl/go-voronoi/geom"
)

// Diagram builds and owns a Voronoi diagram's beachline, event queue, DCEL
// and site list. None of it is safe for concurrent use -- the event loop
// is the only thing that ever touches these structures, per design.
type Diagram struct {
	cfg Config

	sites []geom.Point
	beach *beachline.Beachline
	queue *event.Queue
	d     *dcel.DCEL

	bounds   geom.Bounds
	nSites   int
	nVerts   int
	nEdges   int
	status   Status
	validate *ValidationReport
}

// New returns a diagram ready for Preprocess. It copies cfg.Sites so later
// mutation by the caller does not alias the diagram's working copy.
func New(cfg Config) *Diagram {
	cfg.setDefaults()
	sites := make([]geom.Point, len(cfg.Sites))
	copy(sites, cfg.Sites)

	return &Diagram{
		cfg:    cfg,
		sites:  sites,
		beach:  beachline.New(),
		queue:  event.NewQueue(),
		d:      dcel.New(cfg.Balanced),
		bounds: geom.EmptyBounds(),
	}
}

// NSites, NVertices and NEdges report the diagram's size once Run has
// completed (duplicates are excluded from NSites).
func (d *Diagram) NSites() int    { return d.nSites }
func (d *Diagram) NVertices() int { return d.nVerts }
func (d *Diagram) NEdges() int    { return d.nEdges }

// DCEL returns the diagram's doubly-connected edge list.
func (d *Diagram) DCEL() *dcel.DCEL { return d.d }

// Validation returns the report from the most recent Postprocess call, if
// Config.ValidateEuler was set.
func (d *Diagram) Validation() *ValidationReport { return d.validate }

// Preprocess snaps coordinates that are within Epsilon of each other to a
// single shared value, first across y then across x. This absorbs the
// numerical noise that would otherwise make two sites intended to be
// exactly level (or exactly aligned) fall on opposite sides of a
// collinearity test deep in the beachline.
func (d *Diagram) Preprocess() {
	snapCoordinate(d.sites, func(p geom.Point) float64 { return p.Y }, func(p *geom.Point, v float64) { p.Y = v })
	snapCoordinate(d.sites, func(p geom.Point) float64 { return p.X }, func(p *geom.Point, v float64) { p.X = v })
}

func snapCoordinate(pts []geom.Point, get func(geom.Point) float64, set func(*geom.Point, float64)) {
	if len(pts) == 0 {
		return
	}
	sort.Slice(pts, func(i, j int) bool { return get(pts[i]) < get(pts[j]) })

	n := len(pts)
	i, j := 0, 0
	value := get(pts[0])
	for {
		for i < n && geom.Approx(get(pts[i]), value) {
			i++
		}
		for j < i {
			set(&pts[j], value)
			j++
		}
		if i == n {
			break
		}
		value = get(pts[i])
	}
}

// Run drains the event queue, inserting each site into the beachline and
// materializing a DCEL vertex at every circle event that survives to the
// front of the queue active. Sites that snapped to an exact duplicate of
// the immediately preceding site are skipped.
func (d *Diagram) Run() Status {
	for _, s := range d.sites {
		d.queue.Push(beachline.SiteEvent{Site: s})
	}

	var prevSite geom.Point
	havePrev := false

	for !d.queue.Empty() {
		switch e := d.queue.Pop().(type) {
		case *beachline.CircleEvent:
			d.handleCircleEvent(e)
		case beachline.SiteEvent:
			if havePrev && prevSite.Equal(e.Site) {
				d.status |= DuplicateSite
				d.cfg.Logf("voronoi: skipping duplicate site %v", e.Site)
				continue
			}
			d.handleSiteEvent(e)
			prevSite, havePrev = e.Site, true
			d.nSites++
		}
	}

	if d.beach == nil || (d.nSites > 0 && d.beach.Root == nil) {
		d.status |= Failure | OutOfNodes
		return d.status
	}
	d.status |= Success
	return d.status
}

func (d *Diagram) handleSiteEvent(ev beachline.SiteEvent) {
	node := d.beach.Insert(ev.Site)

	left := beachline.LeftArc(node)
	right := beachline.RightArc(node)
	var leftLeft, rightRight *beachline.ArcNode
	if left != nil {
		leftLeft = beachline.LeftArc(left)
	}
	if right != nil {
		rightRight = beachline.RightArc(right)
	}

	beachline.TryEnqueueCircleEvent(d.queue, leftLeft, left, node)
	beachline.TryEnqueueCircleEvent(d.queue, node, right, rightRight)

	d.bounds = d.bounds.UnionPoint(ev.Site)
}

func (d *Diagram) handleCircleEvent(ev *beachline.CircleEvent) {
	if !ev.Active {
		return
	}
	node := ev.Leaf

	left := beachline.LeftArc(node)
	right := beachline.RightArc(node)
	var leftLeft, rightRight *beachline.ArcNode
	if left != nil {
		leftLeft = beachline.LeftArc(left)
	}
	if right != nil {
		rightRight = beachline.RightArc(right)
	}

	vertex, created := d.d.VertexAt(ev.Center, d.cfg.MergeRadius)
	if created {
		d.nVerts++
	}

	newInternal, leftInternal, rightInternal := d.beach.Delete(node)
	leftInternal.Internal.Edge.AddEndpoint(vertex)
	rightInternal.Internal.Edge.AddEndpoint(vertex)
	newInternal.Internal.Edge.AddEndpoint(vertex)

	if leftInternal.Internal.Edge.Closed() {
		if _, ok := d.d.CreateEdge(leftInternal.Internal.Edge.P0, leftInternal.Internal.Edge.P1); ok {
			d.nEdges++
		}
	}
	if rightInternal.Internal.Edge.Closed() {
		if _, ok := d.d.CreateEdge(rightInternal.Internal.Edge.P0, rightInternal.Internal.Edge.P1); ok {
			d.nEdges++
		}
	}

	beachline.TryEnqueueCircleEvent(d.queue, leftLeft, left, right)
	beachline.TryEnqueueCircleEvent(d.queue, left, right, rightRight)
}

// Postprocess closes every breakpoint still open once the sweepline has
// passed every site, against a rectangle bounding every site and vertex
// inflated by Config.BoundsScale, then finalizes the DCEL's half-edge
// rings. If Config.ValidateEuler is set, it must run before this call
// returns reads Validation -- validation happens after bounding but before
// DCEL.Postprocess, since it needs every edge created but not yet linked.
func (d *Diagram) Postprocess() Status {
	d.boundVoronoiDiagram()

	if d.cfg.ValidateEuler {
		d.runValidation()
	}

	d.d.Postprocess()
	return d.status
}

func (d *Diagram) boundVoronoiDiagram() {
	combined := d.bounds.Union(d.d.Bounds()).Inflate(d.cfg.BoundsScale)

	for _, n := range d.beach.InOrderInternals() {
		d.closeBreakpointEdge(n.Internal, combined)
	}
	for _, n := range d.beach.ColinearNodes {
		d.closeBreakpointEdge(n.Internal, combined)
	}
}

func (d *Diagram) closeBreakpointEdge(bp beachline.Breakpoint, bounds geom.Bounds) {
	if bp.Edge.Closed() {
		return
	}
	center := bp.Edge.P0
	if center == nil {
		d.cfg.Logf("voronoi: breakpoint (%v, %v) never recorded a vertex, leaving it open", bp.Left, bp.Right)
		return
	}

	far := geom.BoundaryIntersection(bp.Left, bp.Right, bounds)
	farVertex, _ := d.d.VertexAt(far, d.cfg.MergeRadius)
	if _, ok := d.d.CreateEdge(center, farVertex); ok {
		d.nEdges++
	}
}

func (d *Diagram) runValidation() {
	satisfied := (d.nVerts+1)-d.nEdges+d.nSites == 2
	d.validate = &ValidationReport{
		Vertices:           d.nVerts,
		Edges:              d.nEdges,
		Faces:              d.nSites,
		Satisfied:          satisfied,
		ShortestEdgeLength: d.d.ShortestEdgeLength,
		LongestEdgeLength:  d.d.LongestEdgeLength,
	}
	if satisfied {
		d.cfg.Logf("voronoi: Euler's identity satisfied (V=%d E=%d F=%d)", d.nVerts, d.nEdges, d.nSites)
		return
	}
	d.status |= EulerMismatch
	d.cfg.Logf("voronoi: Euler's identity NOT satisfied: (V+1)-E+F = %d, want 2 (V=%d E=%d F=%d, shortest edge %g, longest edge %g)",
		(d.nVerts+1)-d.nEdges+d.nSites, d.nVerts, d.nEdges, d.nSites, d.d.ShortestEdgeLength, d.d.LongestEdgeLength)
}
