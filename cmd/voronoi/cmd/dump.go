package cmd

import (
	"github.com/arl/go-voronoi/dcel"
)

// plotEdge is one drawable segment of the finished diagram: a vertex pair,
// src always the half-edge's source so a plotting tool can orient arrows
// if it wants to.
type plotEdge struct {
	SrcX  float64 `yaml:"src_x"`
	SrcY  float64 `yaml:"src_y"`
	DestX float64 `yaml:"dest_x"`
	DestY float64 `yaml:"dest_y"`
}

// plotData is the YAML dump handed to external plotting tools: every
// vertex once, every half-edge once (not its twin, to avoid drawing each
// segment twice).
type plotData struct {
	Vertices []site     `yaml:"vertices"`
	Edges    []plotEdge `yaml:"edges"`
}

func newPlotData(d *dcel.DCEL) plotData {
	pd := plotData{Vertices: make([]site, len(d.Vertices))}
	for i, v := range d.Vertices {
		pd.Vertices[i] = site{X: v.Point.X, Y: v.Point.Y}
	}

	seen := make(map[*dcel.HalfEdge]bool, len(d.Edges)/2)
	for _, e := range d.Edges {
		if seen[e.Twin] {
			continue
		}
		seen[e] = true
		pd.Edges = append(pd.Edges, plotEdge{
			SrcX: e.Src.Point.X, SrcY: e.Src.Point.Y,
			DestX: e.Dest.Point.X, DestY: e.Dest.Point.Y,
		})
	}
	return pd
}
