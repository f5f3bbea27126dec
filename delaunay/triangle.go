package delaunay

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/reveal/dbg"
	"github.com/osuushi/reveal/geom"
)

// Triangulation pairs a point set with its triangles, for callers that want
// geometry rather than indices.
type Triangulation struct {
	Points  []geom.Point
	Triples []Triple
}

func New(points []geom.Point) (*Triangulation, error) {
	triples, err := Triangulate(points)
	if err != nil {
		return nil, err
	}
	return &Triangulation{Points: points, Triples: triples}, nil
}

// A triangle whose corners point into the triangulation's point slice. The
// pointers double as identities in debug output.
type Triangle struct {
	A, B, C *geom.Point
	Indices Triple
}

func (tr *Triangulation) Triangles() []*Triangle {
	result := make([]*Triangle, len(tr.Triples))
	for i, t := range tr.Triples {
		result[i] = &Triangle{
			A:       &tr.Points[t[0]],
			B:       &tr.Points[t[1]],
			C:       &tr.Points[t[2]],
			Indices: t,
		}
	}
	return result
}

func (tr *Triangulation) Polygons() []geom.Polygon {
	result := make([]geom.Polygon, len(tr.Triples))
	for i, t := range tr.Triples {
		result[i] = geom.Polygon{Points: []geom.Point{tr.Points[t[0]], tr.Points[t[1]], tr.Points[t[2]]}}
	}
	return result
}

func (t *Triangle) Geom() geom.Triangle {
	return geom.Triangle{A: *t.A, B: *t.B, C: *t.C}
}

func (t *Triangle) SignedArea() float64 {
	return t.Geom().SignedArea()
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle %s %v <A: %s %v, B: %s %v, C: %s %v>",
		t.DbgName(),
		t.Indices,
		dbg.Name(t.A), *t.A,
		dbg.Name(t.B), *t.B,
		dbg.Name(t.C), *t.C,
	)
}

func (t *Triangle) DbgName() string {
	name := dbg.Name(t)
	if t.SignedArea() > 0 {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Red(name).String()
	}
	return name
}
