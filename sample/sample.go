// Package sample produces jittered point clouds over a canvas.
package sample

import (
	"math"

	"github.com/osuushi/reveal/geom"
)

// Source is the random number source the samplers draw from. *rand.Rand from
// math/rand satisfies it, so callers seed their own generator and nothing
// touches the global one.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// Grid describes the jitter grid used for n points.
type Grid struct {
	Cols, Rows   int
	CellW, CellH float64
}

// GridFor computes the jitter grid for n points on a w by h canvas. The grid
// has at least n cells.
func GridFor(n int, w, h float64) Grid {
	if n <= 0 {
		return Grid{}
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	return Grid{
		Cols:  cols,
		Rows:  rows,
		CellW: w / float64(cols),
		CellH: h / float64(rows),
	}
}

// Points returns n points inside [0,w) x [0,h), one per grid cell in row-major
// order, each placed uniformly within its cell. Sampling stops after n points,
// so the last row may be partially filled.
//
// Non-positive n or canvas sizes yield no points.
func Points(n int, w, h float64, src Source) []geom.Point {
	if n <= 0 || !(w > 0) || !(h > 0) {
		return nil
	}
	grid := GridFor(n, w, h)
	points := make([]geom.Point, 0, n)
	for row := 0; row < grid.Rows && len(points) < n; row++ {
		for col := 0; col < grid.Cols && len(points) < n; col++ {
			points = append(points, geom.Point{
				X: float64(col)*grid.CellW + uniform(src, 0, grid.CellW),
				Y: float64(row)*grid.CellH + uniform(src, 0, grid.CellH),
			})
		}
	}

	// The grid always has enough cells, but keep the count exact regardless.
	for len(points) < n {
		points = append(points, geom.Point{
			X: uniform(src, 0, w),
			Y: uniform(src, 0, h),
		})
	}
	return points
}

// Uniform draw from [a, b).
func uniform(src Source, a, b float64) float64 {
	return a + src.Float64()*(b-a)
}
