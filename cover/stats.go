package cover

import (
	"github.com/samber/lo"

	"github.com/osuushi/reveal/geom"
)

type Stats struct {
	Count     int
	TotalArea float64
	MinArea   float64
	MaxArea   float64
}

func Summarize(polygons []geom.Polygon) Stats {
	if len(polygons) == 0 {
		return Stats{}
	}
	areas := lo.Map(polygons, func(p geom.Polygon, _ int) float64 {
		return p.Area()
	})
	return Stats{
		Count:     len(polygons),
		TotalArea: lo.Sum(areas),
		MinArea:   lo.Min(areas),
		MaxArea:   lo.Max(areas),
	}
}
