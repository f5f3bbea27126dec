package geom

func (t Triangle) SignedArea() float64 {
	return Orient(t.A, t.B, t.C) / 2
}

func (t Triangle) Polygon() Polygon {
	return Polygon{Points: []Point{t.A, t.B, t.C}}
}

// Circumcircle of the triangle. ok is false for degenerate triangles.
func (t Triangle) Circumcircle() (center Point, radius float64, ok bool) {
	d := 2 * Orient(t.A, t.B, t.C)
	if d == 0 {
		return Point{}, 0, false
	}
	b := t.B.Sub(t.A)
	c := t.C.Sub(t.A)
	bl := b.X*b.X + b.Y*b.Y
	cl := c.X*c.X + c.Y*c.Y
	ux := (c.Y*bl - b.Y*cl) / d
	uy := (b.X*cl - c.X*bl) / d
	center = Point{t.A.X + ux, t.A.Y + uy}
	return center, center.Dist(t.A), true
}
