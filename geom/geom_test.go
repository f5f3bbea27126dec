package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := Triangle{
				A: Point{0, -1},
				B: Point{1, 0},
				C: Point{0, 1},
			}
			// Clockwise triangles will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			if cwI == 1 {
				tri.A, tri.B = tri.B, tri.A
			}
			assert.InDelta(t, sign*1, tri.SignedArea(), Tolerance)
			assert.InDelta(t, sign*1, tri.Polygon().SignedArea(), Tolerance)

			// Rotate the triangle repeatedly by a weird angle
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				tri.A = rotatePoint(tri.A, angle)
				tri.B = rotatePoint(tri.B, angle)
				tri.C = rotatePoint(tri.C, angle)
				assert.InDelta(t, sign*1, tri.SignedArea(), 1e-12)
			}
		})
	}
}

func TestPolygonArea(t *testing.T) {
	square := Polygon{Points: []Point{{0, 0}, {2, 0}, {2, 3}, {0, 3}}}
	assert.Equal(t, 6.0, square.SignedArea())
	assert.True(t, square.IsCCW())
	assert.Equal(t, -6.0, square.Reverse().SignedArea())
	assert.Equal(t, 6.0, square.Reverse().Area())
	assert.Equal(t, Rect{Min: Point{0, 0}, Max: Point{2, 3}}, square.Bounds())
}

func TestContainsPointByEvenOdd(t *testing.T) {
	square := Polygon{Points: []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}}
	assert.True(t, square.ContainsPointByEvenOdd(Point{1, 1}))
	assert.True(t, square.ContainsPointByEvenOdd(Point{0.01, 1.99}))
	assert.False(t, square.ContainsPointByEvenOdd(Point{3, 1}))
	assert.False(t, square.ContainsPointByEvenOdd(Point{-1, 1}))
	assert.False(t, square.ContainsPointByEvenOdd(Point{1, 5}))

	tri := Polygon{Points: []Point{{0, 0}, {4, 0}, {0, 4}}}
	assert.True(t, tri.ContainsPointByEvenOdd(Point{1, 1}))
	assert.False(t, tri.ContainsPointByEvenOdd(Point{3, 3}))
}

func TestCircumcircle(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{2, 0}, Point{0, 2}}
	center, radius, ok := tri.Circumcircle()
	require.True(t, ok)
	assert.InDelta(t, 1.0, center.X, Tolerance)
	assert.InDelta(t, 1.0, center.Y, Tolerance)
	assert.InDelta(t, math.Sqrt2, radius, Tolerance)

	_, _, ok = Triangle{Point{0, 0}, Point{1, 1}, Point{2, 2}}.Circumcircle()
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	assert.Equal(t, Rect{}, Bounds(nil))
	r := Bounds([]Point{{3, -1}, {-2, 4}, {0, 0}})
	assert.Equal(t, Rect{Min: Point{-2, -1}, Max: Point{3, 4}}, r)
	assert.Equal(t, 25.0, r.Area())
	assert.True(t, r.Contains(Point{3, 4}))
	assert.False(t, r.Contains(Point{3.1, 4}))
}

func TestPointHelpers(t *testing.T) {
	assert.True(t, Point{1, 2}.Less(Point{1, 3}))
	assert.True(t, Point{0, 9}.Less(Point{1, 0}))
	assert.False(t, Point{1, 2}.Less(Point{1, 2}))
	assert.True(t, Point{1, 2}.IsFinite())
	assert.False(t, Point{math.NaN(), 2}.IsFinite())
	assert.False(t, Point{1, math.Inf(-1)}.IsFinite())
	assert.True(t, RelEqual(30000, 30000+1e-8))
	assert.False(t, Equal(1, 1.001))
}

// Helpers

func rotatePoint(point Point, angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: point.X*cos - point.Y*sin,
		Y: point.X*sin + point.Y*cos,
	}
}
