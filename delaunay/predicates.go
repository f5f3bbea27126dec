package delaunay

import (
	"math"

	"github.com/osuushi/reveal/geom"
)

// Relative error bound for the in-circle determinant. Anything closer to zero
// than this is treated as cocircular, which keeps the flip loop from cycling
// on grids and on points sampled from a circle.
const inCircleEpsilon = 1e-12

// Reports whether d lies strictly inside the circumcircle of the positively
// oriented triangle abc.
func inCircle(a, b, c, d geom.Point) bool {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdx*cdy-cdx*bdy) +
		blift*(cdx*ady-adx*cdy) +
		clift*(adx*bdy-bdx*ady)

	permanent := alift*(math.Abs(bdx*cdy)+math.Abs(cdx*bdy)) +
		blift*(math.Abs(cdx*ady)+math.Abs(adx*cdy)) +
		clift*(math.Abs(adx*bdy)+math.Abs(bdx*ady))

	return det > inCircleEpsilon*permanent
}

// Strict left turn a->b->c.
func ccw(a, b, c geom.Point) bool {
	return geom.Orient(a, b, c) > 0
}
