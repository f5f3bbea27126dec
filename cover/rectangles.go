package cover

import (
	"math"

	"github.com/osuushi/reveal/geom"
)

// Rectangles partitions the canvas into a k by k grid of quads, where k is the
// integer square root of n. Cells are emitted in row-major order with corners
// top-left, top-right, bottom-right, bottom-left. A count below one cell
// yields an empty covering.
func Rectangles(n int, w, h float64) ([]geom.Polygon, error) {
	if err := validate(n, w, h); err != nil {
		return nil, err
	}
	k := isqrt(n)
	if k == 0 {
		return nil, nil
	}

	polygons := make([]geom.Polygon, 0, k*k)
	for row := 0; row < k; row++ {
		top, bottom := gridLine(row, k, h), gridLine(row+1, k, h)
		for col := 0; col < k; col++ {
			left, right := gridLine(col, k, w), gridLine(col+1, k, w)
			polygons = append(polygons, geom.Polygon{Points: []geom.Point{
				{X: left, Y: top},
				{X: right, Y: top},
				{X: right, Y: bottom},
				{X: left, Y: bottom},
			}})
		}
	}
	return polygons, nil
}

// Position of the i-th of k+1 grid lines across length. Neighbouring cells
// share the value exactly, and the last line lands on length itself.
func gridLine(i, k int, length float64) float64 {
	if i == k {
		return length
	}
	return float64(i) * (length / float64(k))
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	k := int(math.Sqrt(float64(n)))
	for k*k > n {
		k--
	}
	for (k+1)*(k+1) <= n {
		k++
	}
	return k
}
