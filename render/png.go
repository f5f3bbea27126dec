package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/reveal/geom"
)

func WritePNG(w io.Writer, polygons []geom.Polygon, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	scale := opts.scale()
	width := int(math.Ceil(opts.Width * scale))
	height := int(math.Ceil(opts.Height * scale))
	c := gg.NewContext(width, height)
	c.SetHexColor(background)
	c.Clear()
	c.Scale(scale, scale)

	c.SetLineWidth(1)
	remaining, offset := opts.covering(polygons)
	for i, poly := range remaining {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetHexColor(fill(offset + i))
		c.FillPreserve()
		c.SetHexColor(outline)
		c.Stroke()
	}

	if err := c.EncodePNG(w); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

// Preview prints a PNG file inline in terminals that support it (iTerm).
func Preview(path string, out io.Writer) {
	imgcat.CatFile(path, out)
}
