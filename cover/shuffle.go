package cover

import "github.com/osuushi/reveal/geom"

// Shuffler is satisfied by *rand.Rand.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffle reorders the covering in place, giving a random reveal order.
func Shuffle(polygons []geom.Polygon, s Shuffler) {
	s.Shuffle(len(polygons), func(i, j int) {
		polygons[i], polygons[j] = polygons[j], polygons[i]
	})
}
