package cover

import (
	"github.com/pkg/errors"

	"github.com/osuushi/reveal/delaunay"
	"github.com/osuushi/reveal/geom"
	"github.com/osuushi/reveal/sample"
)

// Triangles covers the canvas with the Delaunay triangulation of n jittered
// points plus the four canvas corners. The corners pin the hull to the canvas,
// so the triangles tile it exactly. With no sampled point on the canvas
// border the result has 2n+2 triangles.
func Triangles(n int, w, h float64, src sample.Source) ([]geom.Polygon, error) {
	if err := validate(n, w, h); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if src == nil {
		return nil, errors.Wrap(ErrInvalidInput, "triangle coverings need a random source")
	}

	points := sample.Points(n, w, h, src)
	points = append(points,
		geom.Point{X: 0, Y: 0},
		geom.Point{X: w, Y: 0},
		geom.Point{X: 0, Y: h},
		geom.Point{X: w, Y: h},
	)

	triples, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, errors.Wrapf(err, "triangulating %d points", len(points))
	}

	polygons := make([]geom.Polygon, len(triples))
	for i, t := range triples {
		polygons[i] = geom.Polygon{Points: []geom.Point{points[t[0]], points[t[1]], points[t[2]]}}
	}
	return polygons, nil
}
