package cmd

import "github.com/arl/go-voronoi/geom"

// site is the YAML-serializable form of a geom.Point, since geom.Point
// carries no struct tags of its own.
type site struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func readSites(path string) ([]geom.Point, error) {
	var sites []site
	if err := unmarshalYAMLFile(path, &sites); err != nil {
		return nil, err
	}
	pts := make([]geom.Point, len(sites))
	for i, s := range sites {
		pts[i] = geom.New(s.X, s.Y)
	}
	return pts, nil
}

func writeSites(path string, pts []geom.Point) error {
	sites := make([]site, len(pts))
	for i, p := range pts {
		sites[i] = site{X: p.X, Y: p.Y}
	}
	return marshalYAMLFile(path, sites)
}
