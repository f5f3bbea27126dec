// Coverings for an image reveal game.
//
// An image is hidden behind a set of opaque shapes that are removed one at a
// time. This package produces those shapes: non-overlapping polygons whose
// union is exactly the canvas, either as a square grid of rectangles or as a
// Delaunay triangulation of jittered points.
//
// Everything here is a pure function of its inputs and the random source the
// caller passes in. See the cover, delaunay and sample packages for the
// individual pieces.
package reveal

import (
	"math/rand"

	"github.com/osuushi/reveal/cover"
	"github.com/osuushi/reveal/geom"
	"github.com/osuushi/reveal/sample"
)

type Point = geom.Point
type Polygon = geom.Polygon
type Kind = cover.Kind
type Request = cover.Request

const (
	Rectangles = cover.KindRectangles
	Triangles  = cover.KindTriangles
)

// Source feeds both point sampling and the reveal order. *rand.Rand
// satisfies it.
type Source interface {
	sample.Source
	cover.Shuffler
}

// NewSource returns a seeded source. Equal seeds give equal coverings.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// LoadCovering generates the covering for req and, if shuffle is set,
// randomizes the order the shapes will be removed in.
func LoadCovering(req Request, src Source, shuffle bool) ([]Polygon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var sampleSource sample.Source
	if src != nil {
		sampleSource = src
	}
	polygons, err := req.Generate(sampleSource)
	if err != nil {
		return nil, err
	}
	if shuffle && src != nil {
		cover.Shuffle(polygons, src)
	}
	return polygons, nil
}
