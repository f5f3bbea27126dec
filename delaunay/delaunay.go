// Package delaunay computes Delaunay triangulations of planar point sets.
//
// The triangulation is built in two passes. A sweep over the points in
// lexicographic order produces some triangulation of their convex hull, and
// Lawson edge flips then turn it into a Delaunay one. Results are index
// triples into the caller's point slice, so the caller's points are never
// copied or modified.
//
// Degenerate input is not an error. Fewer than three distinct points, or a
// collinear set, yields an empty result. Coincident and near-coincident points
// are merged before triangulating, and zero area triangles are filtered out.
// Both tolerances are relative to the bounding box, axis by axis, so results
// do not depend on the scale or aspect ratio of the input.
package delaunay

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/osuushi/reveal/geom"
)

// Three distinct indices into the triangulated point slice, positively
// oriented (geom.Orient > 0). In canvas coordinates, where y grows down, that
// is a clockwise turn on screen.
type Triple [3]int

// Triangulate the points, returning index triples.
func Triangulate(points []geom.Point) (result []Triple, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	for i, p := range points {
		if !p.IsFinite() {
			return nil, errors.Errorf("point %d is not finite: %v", i, p)
		}
	}

	bounds := geom.Bounds(points)
	extent := math.Max(bounds.Width(), bounds.Height())
	if extent == 0 {
		return nil, nil
	}
	if math.IsInf(extent, 0) {
		return nil, errors.Errorf("points span more than the float64 range: %v", bounds)
	}

	// Work in the unit box so that cross products cannot overflow, whatever
	// the scale of the input. The map is a translation and a uniform scale,
	// which keeps orientations and circumcircles.
	unit := make([]geom.Point, len(points))
	for i, p := range points {
		unit[i] = geom.Point{X: (p.X - bounds.Min.X) / extent, Y: (p.Y - bounds.Min.Y) / extent}
	}
	spanX, spanY := bounds.Width()/extent, bounds.Height()/extent

	// Tolerances are relative to each axis, so a long thin point set keeps
	// its short side.
	order := distinct(unit, geom.Point{X: geom.Tolerance * spanX, Y: geom.Tolerance * spanY})
	if len(order) < 3 {
		return nil, nil
	}

	m := newMesh(unit)
	if !m.sweep(order) {
		return nil, nil
	}
	m.legalize()

	// Twice the smallest area we are willing to call a triangle
	minOrient := geom.Tolerance * geom.Tolerance * spanX * spanY
	result = make([]Triple, 0, len(m.triangles))
	for _, t := range m.triangles {
		if geom.Orient(unit[t[0]], unit[t[1]], unit[t[2]]) <= minOrient {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// Sort point indices lexicographically and drop any point within tolerance of
// one already kept, on both axes. The first occurrence in sorted order wins.
func distinct(points []geom.Point, tolerance geom.Point) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return points[order[i]].Less(points[order[j]])
	})

	kept := make([]int, 0, len(order))
	for _, i := range order {
		duplicate := false
		for j := len(kept) - 1; j >= 0; j-- {
			q := points[kept[j]]
			if points[i].X-q.X > tolerance.X {
				break
			}
			if math.Abs(points[i].Y-q.Y) <= tolerance.Y {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, i)
		}
	}
	return kept
}
