// Package geom holds the planar value types shared by the triangulator and
// the covering generators. Coordinates are canvas space: origin at the top
// left, x growing right and y growing down.
package geom

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// A Polygon is a closed loop. The edge from the last point back to the first
// is implied.
type Polygon struct {
	Points []Point `json:"pnts" yaml:"pnts"`
}

type Triangle struct {
	A, B, C Point
}

// Rect is an axis aligned box, used for canvases and bounds.
type Rect struct {
	Min, Max Point
}
