package cover

// This contains no actual tests. It holds helpers for checking that a set of
// polygons is a covering of a canvas.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/reveal/geom"
)

// Checks the properties shared by both strategies: every polygon has positive
// signed area and lies inside the canvas, the areas sum to the canvas area,
// and sampling finds every interior point in exactly one polygon.
func AssertValidCovering(t *testing.T, polygons []geom.Polygon, w, h float64) {
	canvas := geom.Canvas(w, h)
	var total float64
	for _, poly := range polygons {
		require.GreaterOrEqual(t, len(poly.Points), 3)
		area := poly.SignedArea()
		require.Greater(t, area, 0.0, "polygon does not have positive area: %v", poly)
		total += area
		for _, p := range poly.Points {
			require.True(t, canvas.Contains(p), "vertex %v outside %vx%v canvas", p, w, h)
		}
	}
	assert.InDelta(t, w*h, total, 1e-9*w*h, "areas do not sum to the canvas area")

	validateCoveringBySampling(t, polygons, w, h)
}

// Sample points on an offset grid so they avoid the polygon edges, and check
// each one lands in exactly one polygon. No gaps, no overlaps.
func validateCoveringBySampling(t *testing.T, polygons []geom.Polygon, w, h float64) {
	const steps = 40
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			p := geom.Point{
				X: (float64(i) + 0.3711) * w / steps,
				Y: (float64(j) + 0.6173) * h / steps,
			}
			hits := 0
			for _, poly := range polygons {
				if poly.ContainsPointByEvenOdd(p) {
					hits++
				}
			}
			if !assert.Equal(t, 1, hits, "point %v is covered %d times", p, hits) {
				return
			}
		}
	}
}
