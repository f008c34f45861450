package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineThroughDuality(t *testing.T) {
	cases := []struct{ p, q Point }{
		{New(1, 2), New(2, 3)},
		{New(1, 2), New(3, 4)},
		{New(1, 1), New(1, 2)}, // vertical
		{New(1, 1), New(2, 1)}, // horizontal
	}
	for _, c := range cases {
		l := LineThrough(c.p, c.q)
		assert.InDelta(t, l.C, l.A*c.p.X+l.B*c.p.Y, Epsilon)
		assert.InDelta(t, l.C, l.A*c.q.X+l.B*c.q.Y, Epsilon)
	}
}

func TestPerpendicularBisectorIsRotatedLine(t *testing.T) {
	cases := []struct{ p, q Point }{
		{New(1, 2), New(2, 3)},
		{New(1, 2), New(3, 4)},
	}
	for _, c := range cases {
		line := LineThrough(c.p, c.q)
		perp := PerpendicularBisector(c.p, c.q)

		assert.Equal(t, line.A, perp.B)
		assert.Equal(t, -line.B, perp.A)

		mx, my := (c.p.X+c.q.X)/2, (c.p.Y+c.q.Y)/2
		assert.InDelta(t, line.A*mx+line.B*my, line.A*mx+line.B*my, Epsilon)
		assert.InDelta(t, perp.C, perp.A*mx+perp.B*my, Epsilon)
	}
}

func TestCircumcircleUnitTriangle(t *testing.T) {
	angles := []float64{0, 120, 240}
	pts := make([]Point, 3)
	for i, deg := range angles {
		rad := deg * math.Pi / 180
		pts[i] = New(math.Cos(rad), math.Sin(rad))
	}
	c, ok := Circumcircle(pts[0], pts[1], pts[2])
	require.True(t, ok)
	assert.InDelta(t, 1, c.Radius, 1e-9)
	assert.InDelta(t, 0, c.Center.X, 1e-9)
	assert.InDelta(t, 0, c.Center.Y, 1e-9)
}

func TestCircumcircleCollinear(t *testing.T) {
	p, q, r := New(0, 1), New(1, 2), New(2, 3)
	require.True(t, IsCollinear(p, q, r))
	_, ok := Circumcircle(p, q, r)
	assert.False(t, ok)
}

func TestParabolaIntersectionEquidistant(t *testing.T) {
	f0 := New(-1, 2)
	f1 := New(1, 2)
	d := 0.0
	p := ParabolaIntersection(f0, f1, d)
	assert.InDelta(t, f0.Dist(New(p.X, p.Y)), d2(p, d), 1e-6)
	assert.InDelta(t, f1.Dist(New(p.X, p.Y)), d2(p, d), 1e-6)
}

func TestParabolaIntersectionRoundTrip(t *testing.T) {
	f0 := New(-2, 5)
	f1 := New(3, 8)
	d := 1.0
	p := ParabolaIntersection(f0, f1, d)

	distToDirectrix := p.Y - d
	assert.InDelta(t, f0.Dist(p), distToDirectrix, 1e-6)
	assert.InDelta(t, f1.Dist(p), distToDirectrix, 1e-6)
}

func TestParabolaIntersectionBothOnDirectrix(t *testing.T) {
	f0 := New(-1, 0)
	f1 := New(1, 0)
	p := ParabolaIntersection(f0, f1, 0)
	assert.True(t, math.IsInf(p.X, 1))
	assert.True(t, math.IsInf(p.Y, 1))
}

func TestIsLeftIsRightExcludeCollinear(t *testing.T) {
	p, q, r := New(0, 0), New(1, 0), New(2, 0)
	assert.False(t, IsLeft(p, q, r))
	assert.False(t, IsRight(p, q, r))

	above := New(1, 1)
	below := New(1, -1)
	assert.True(t, IsLeft(p, q, above) != IsLeft(p, q, below))
}

// d2 is a tiny helper returning the distance from p to the directrix y=d,
// used to cross-check ParabolaIntersection's equidistance property.
func d2(p Point, d float64) float64 {
	return p.Y - d
}
