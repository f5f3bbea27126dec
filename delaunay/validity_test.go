package delaunay

// This contains no actual tests. It is just a helper for checking
// triangulation validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/reveal/geom"
)

// Rules checked:
// 1. Every triple references three distinct, in range points.
// 2. Every triangle is positively oriented, so none has zero area.
// 3. Every edge is shared by at most two triangles, and the counts obey
//    Euler's formula for a triangulated disk: T = 2V - 2 - B.
// 4. No point lies strictly inside any triangle's circumcircle.
func AssertValidTriangulation(t *testing.T, points []geom.Point, triples []Triple) {
	type undirected struct{ lo, hi int }
	key := func(a, b int) undirected {
		if a > b {
			a, b = b, a
		}
		return undirected{a, b}
	}

	edgeUse := make(map[undirected]int)
	vertices := make(map[int]struct{})
	for _, tri := range triples {
		for _, i := range tri {
			require.True(t, i >= 0 && i < len(points), "index out of range: %v", tri)
			vertices[i] = struct{}{}
		}
		require.True(t, tri[0] != tri[1] && tri[1] != tri[2] && tri[0] != tri[2], "repeated index: %v", tri)
		require.Greater(t, geom.Orient(points[tri[0]], points[tri[1]], points[tri[2]]), 0.0, "triangle is not positive: %v", tri)
		for i := 0; i < 3; i++ {
			edgeUse[key(tri[i], tri[(i+1)%3])]++
		}
	}

	boundary := 0
	for e, uses := range edgeUse {
		require.LessOrEqual(t, uses, 2, "edge %v used by more than two triangles", e)
		if uses == 1 {
			boundary++
		}
	}
	if len(triples) > 0 {
		assert.Equal(t, 2*len(vertices)-2-boundary, len(triples), "Euler's formula does not hold")
	}

	for _, tri := range triples {
		center, radius, ok := geom.Triangle{A: points[tri[0]], B: points[tri[1]], C: points[tri[2]]}.Circumcircle()
		require.True(t, ok)
		for i, p := range points {
			if i == tri[0] || i == tri[1] || i == tri[2] {
				continue
			}
			assert.GreaterOrEqual(t, center.Dist(p), radius*(1-1e-9), "point %d %v is inside circumcircle of %v", i, p, tri)
		}
	}
}

func totalArea(points []geom.Point, triples []Triple) float64 {
	var area float64
	for _, tri := range triples {
		area += geom.Triangle{A: points[tri[0]], B: points[tri[1]], C: points[tri[2]]}.SignedArea()
	}
	return area
}
