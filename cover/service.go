// Package cover generates coverings: sets of non-overlapping polygons whose
// union is exactly a rectangular canvas.
//
// Two strategies are available. Rectangles is a deterministic square grid.
// Triangles is a Delaunay triangulation of a jittered point cloud and draws
// from a caller supplied random source. Neither keeps state between calls,
// so concurrent use is safe as long as each caller brings its own source.
package cover

import (
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/reveal/geom"
	"github.com/osuushi/reveal/sample"
)

// Request is a single covering request as the presentation layer makes it.
type Request struct {
	Kind   Kind
	Count  int
	Width  float64
	Height float64
}

func (r Request) Validate() error {
	if _, ok := kindNames[r.Kind]; !ok {
		return errors.Wrapf(ErrInvalidKind, "%d", int(r.Kind))
	}
	return validate(r.Count, r.Width, r.Height)
}

func (r Request) Canvas() geom.Rect {
	return geom.Canvas(r.Width, r.Height)
}

// Generate dispatches the request to the strategy its kind names. src is
// only drawn from by Triangles and may be nil for Rectangles.
func (r Request) Generate(src sample.Source) ([]geom.Polygon, error) {
	return Generate(r.Kind, r.Count, r.Width, r.Height, src)
}

func Generate(kind Kind, n int, w, h float64, src sample.Source) ([]geom.Polygon, error) {
	switch kind {
	case KindRectangles:
		return Rectangles(n, w, h)
	case KindTriangles:
		return Triangles(n, w, h, src)
	default:
		return nil, errors.Wrapf(ErrInvalidKind, "%d", int(kind))
	}
}

func validate(n int, w, h float64) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidCount, "got %d", n)
	}
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return errors.Wrapf(ErrInvalidCanvas, "got %vx%v", w, h)
	}
	return nil
}
