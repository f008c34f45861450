package beachline

import (
	"github.com/arl/go-voronoi/event"
	"github.com/arl/go-voronoi/geom"
)

// SiteEvent is the sweepline event raised for each input site.
type SiteEvent struct {
	Site geom.Point
}

// Key implements event.Event.
func (e SiteEvent) Key() event.Key { return event.Key{Y: e.Site.Y, X: e.Site.X} }

// CircleEvent predicts that an arc will vanish when the sweepline reaches
// the topmost point of the circle through it and its two neighbors. It is
// created eagerly whenever three consecutive arcs converge and may be
// superseded by a later, tighter prediction for the same arc -- in which
// case it is marked inactive rather than removed from the queue, and
// discarded lazily when popped.
type CircleEvent struct {
	Center geom.Point
	Radius float64
	Active bool

	// Leaf is the arc this event was raised against. The back-reference is
	// mutual: Leaf.Value.Circle points back to this event.
	Leaf *ArcNode
}

// Key implements event.Event: the topmost point of the circle, since that
// is when the sweepline first reaches it and the arc actually vanishes.
func (e *CircleEvent) Key() event.Key {
	return event.Key{Y: e.Center.Y + e.Radius, X: e.Center.X}
}

// Deactivate marks the event as superseded. The caller is responsible for
// not deactivating an already-inactive event.
func (e *CircleEvent) Deactivate() { e.Active = false }

// Contains reports whether p lies within (or on) the circle.
func (e *CircleEvent) Contains(p geom.Point) bool {
	return p.Dist(e.Center) <= e.Radius
}

// TryEnqueueCircleEvent raises a circle event for mid if left, mid and
// right converge: right, mid, left must turn clockwise (equivalently, left,
// mid, right turn counterclockwise with y pointing up; mid's arc is the one
// that will be squeezed out), and they must not be collinear. If mid
// already has a pending circle event, the new one replaces it only when
// its topmost point is lower (a tighter, sooner prediction); otherwise the
// existing prediction stands and this call is a no-op.
func TryEnqueueCircleEvent(q *event.Queue, left, mid, right *ArcNode) {
	if left == nil || mid == nil || right == nil {
		return
	}
	if !geom.IsRight(right.Value.Focus, mid.Value.Focus, left.Value.Focus) {
		return
	}
	circle, ok := geom.Circumcircle(left.Value.Focus, mid.Value.Focus, right.Value.Focus)
	if !ok {
		return
	}
	ce := &CircleEvent{Center: circle.Center, Radius: circle.Radius, Active: true, Leaf: mid}

	if existing := mid.Value.Circle; existing != nil {
		if ce.Key().Less(existing.Key()) {
			existing.Deactivate()
		} else {
			return
		}
	}

	mid.Value.Circle = ce
	q.Push(ce)
}
