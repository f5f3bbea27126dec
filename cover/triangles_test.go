package cover

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/reveal/geom"
)

func TestTriangles_Scenario(t *testing.T) {
	polygons, err := Triangles(10, 200, 150, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Len(t, polygons, 22)
	assert.InDelta(t, 30000.0, Summarize(polygons).TotalArea, 1e-6)
	AssertValidCovering(t, polygons, 200, 150)
}

func TestTriangles_Counts(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1234} {
		for _, n := range []int{1, 2, 3, 5, 10, 25, 60} {
			t.Run(fmt.Sprintf("n=%d seed=%d", n, seed), func(t *testing.T) {
				polygons, err := Triangles(n, 640, 480, rand.New(rand.NewSource(seed)))
				require.NoError(t, err)
				assert.Len(t, polygons, 2*n+2)
				for _, poly := range polygons {
					assert.Len(t, poly.Points, 3)
				}
				AssertValidCovering(t, polygons, 640, 480)
			})
		}
	}
}

func TestTriangles_ThinCanvas(t *testing.T) {
	for _, size := range [][2]float64{{1e6, 1e-3}, {1e-3, 1e6}, {1e9, 1e-9}} {
		w, h := size[0], size[1]
		t.Run(fmt.Sprintf("%gx%g", w, h), func(t *testing.T) {
			polygons, err := Triangles(10, w, h, rand.New(rand.NewSource(1)))
			require.NoError(t, err)
			assert.Len(t, polygons, 22)
			AssertValidCovering(t, polygons, w, h)
		})
	}
}

func TestTriangles_HugeCanvas(t *testing.T) {
	// Areas overflow at this size, so only the shape of the result is checked.
	const size = 1e160
	polygons, err := Triangles(10, size, size, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, polygons, 22)
	canvas := geom.Canvas(size, size)
	for _, poly := range polygons {
		for _, p := range poly.Points {
			assert.True(t, canvas.Contains(p))
		}
	}
}

func TestTriangles_Corners(t *testing.T) {
	polygons, err := Triangles(6, 90, 30, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	corners := map[geom.Point]bool{{X: 0, Y: 0}: false, {X: 90, Y: 0}: false, {X: 0, Y: 30}: false, {X: 90, Y: 30}: false}
	for _, poly := range polygons {
		for _, p := range poly.Points {
			if _, ok := corners[p]; ok {
				corners[p] = true
			}
		}
	}
	for corner, seen := range corners {
		assert.True(t, seen, "corner %v is not a vertex", corner)
	}
}

func TestTriangles_Deterministic(t *testing.T) {
	a, err := Triangles(30, 800, 600, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := Triangles(30, 800, 600, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	c, err := Triangles(30, 800, 600, rand.New(rand.NewSource(100)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestTriangles_Zero(t *testing.T) {
	polygons, err := Triangles(0, 10, 10, rand.New(rand.NewSource(1)))
	assert.NoError(t, err)
	assert.Empty(t, polygons)
}

func TestTriangles_NoSource(t *testing.T) {
	_, err := Triangles(3, 10, 10, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
