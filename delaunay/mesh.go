package delaunay

import (
	"github.com/osuushi/reveal/geom"
)

// A directed edge between two point indices. Every triangle owns its three
// directed edges, so an interior edge appears twice, once in each direction.
type edge struct {
	from, to int
}

func (e edge) reverse() edge {
	return edge{e.to, e.from}
}

type edgeStack []edge

func (s *edgeStack) Push(e edge) {
	*s = append(*s, e)
}

func (s *edgeStack) Pop() (edge, bool) {
	if len(*s) == 0 {
		return edge{}, false
	}
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e, true
}

func (s *edgeStack) Empty() bool {
	return len(*s) == 0
}

// The working triangulation. Triangles are index triples into points, always
// positively oriented (geom.Orient > 0).
type mesh struct {
	points    []geom.Point
	triangles []Triple
	edges     map[edge]int
	hull      []int
}

func newMesh(points []geom.Point) *mesh {
	return &mesh{
		points: points,
		edges:  make(map[edge]int),
	}
}

func (m *mesh) addTriangle(a, b, c int) {
	if !ccw(m.points[a], m.points[b], m.points[c]) {
		fatalf("triangle %d,%d,%d is not positively oriented", a, b, c)
	}
	m.triangles = append(m.triangles, Triple{a, b, c})
	m.claimEdges(len(m.triangles) - 1)
}

func (m *mesh) claimEdges(ti int) {
	t := m.triangles[ti]
	for i := 0; i < 3; i++ {
		m.edges[edge{t[i], t[(i+1)%3]}] = ti
	}
}

// The vertex of triangle ti that is not on edge e.
func (m *mesh) opposite(ti int, e edge) int {
	for _, v := range m.triangles[ti] {
		if v != e.from && v != e.to {
			return v
		}
	}
	fatalf("triangle %v has no vertex opposite %v", m.triangles[ti], e)
	return -1
}

// Sweep construction. order holds distinct point indices sorted
// lexicographically, which guarantees every new point lies outside the hull
// built so far. Returns false if all points are collinear.
func (m *mesh) sweep(order []int) bool {
	p := m.points

	// The first points may lie on a common line. Find the first one that
	// doesn't, and fan the chain out to it.
	apexAt := -1
	for i := 2; i < len(order); i++ {
		if geom.Orient(p[order[0]], p[order[1]], p[order[i]]) != 0 {
			apexAt = i
			break
		}
	}
	if apexAt < 0 {
		return false
	}
	chain := order[:apexAt]
	apex := order[apexAt]

	if ccw(p[chain[0]], p[chain[1]], p[apex]) {
		for i := 0; i+1 < len(chain); i++ {
			m.addTriangle(chain[i], chain[i+1], apex)
		}
		m.hull = append(m.hull, chain...)
	} else {
		for i := 0; i+1 < len(chain); i++ {
			m.addTriangle(chain[i+1], chain[i], apex)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			m.hull = append(m.hull, chain[i])
		}
	}
	m.hull = append(m.hull, apex)

	for _, v := range order[apexAt+1:] {
		m.addToHull(v)
	}
	return true
}

// Connect v to every hull edge it can see, then splice it into the hull.
func (m *mesh) addToHull(v int) {
	p := m.points
	n := len(m.hull)
	visible := func(i int) bool {
		a := m.hull[geom.CircularIndex(i, n)]
		b := m.hull[geom.CircularIndex(i+1, n)]
		// Same expression addTriangle checks for the triangle (b, a, v)
		return geom.Orient(p[b], p[a], p[v]) > 0
	}

	first := -1
	for i := 0; i < n; i++ {
		if visible(i) {
			first = i
			break
		}
	}
	if first < 0 {
		fatalf("point %d (%v) sees no hull edge", v, p[v])
	}

	// Grow the visible run in both directions. The run is contiguous for a
	// point outside a convex hull.
	start, end := first, first
	for end-start+1 < n && visible(start-1) {
		start--
	}
	for end-start+1 < n && visible(end+1) {
		end++
	}
	if end-start+1 >= n {
		fatalf("point %d (%v) sees the entire hull", v, p[v])
	}

	for i := start; i <= end; i++ {
		a := m.hull[geom.CircularIndex(i, n)]
		b := m.hull[geom.CircularIndex(i+1, n)]
		m.addTriangle(b, a, v)
	}

	// Walk the part of the hull that stays, from just after the visible run
	// around to its start, then close with v.
	hull := make([]int, 0, n-(end-start)+1)
	for i := end + 1; i <= start+n; i++ {
		hull = append(hull, m.hull[geom.CircularIndex(i, n)])
	}
	m.hull = append(hull, v)
}

// Lawson flips until every interior edge is locally Delaunay. Returns the
// number of flips performed.
func (m *mesh) legalize() int {
	p := m.points
	var stack edgeStack
	for ti, t := range m.triangles {
		for i := 0; i < 3; i++ {
			e := edge{t[i], t[(i+1)%3]}
			// Push each interior edge once, from the lower numbered triangle
			if other, ok := m.edges[e.reverse()]; ok && other > ti {
				stack.Push(e)
			}
		}
	}

	// Bounded so rounding can never keep the loop alive forever. Lawson's
	// algorithm needs O(n^2) flips in the worst case.
	limit := 4*len(p)*len(p) + 64
	flips := 0
	for flips < limit {
		e, ok := stack.Pop()
		if !ok {
			break
		}
		t1, ok1 := m.edges[e]
		t2, ok2 := m.edges[e.reverse()]
		if !ok1 || !ok2 {
			// Hull edge, or an edge that a flip already removed
			continue
		}
		a, b := e.from, e.to
		c := m.opposite(t1, e)
		d := m.opposite(t2, e.reverse())
		if !inCircle(p[a], p[b], p[c], p[d]) {
			continue
		}
		if !ccw(p[a], p[d], p[c]) || !ccw(p[d], p[b], p[c]) {
			continue
		}

		delete(m.edges, e)
		delete(m.edges, e.reverse())
		m.triangles[t1] = Triple{a, d, c}
		m.triangles[t2] = Triple{d, b, c}
		m.claimEdges(t1)
		m.claimEdges(t2)

		stack.Push(edge{a, d})
		stack.Push(edge{d, b})
		stack.Push(edge{b, c})
		stack.Push(edge{c, a})
		flips++
	}
	return flips
}
