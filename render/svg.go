package render

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/osuushi/reveal/geom"
)

func WriteSVG(w io.Writer, polygons []geom.Polygon, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	// svgo swallows write errors, so build in memory and write once.
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+background)
	remaining, offset := opts.covering(polygons)
	for i, poly := range remaining {
		xs := make([]float64, len(poly.Points))
		ys := make([]float64, len(poly.Points))
		for j, p := range poly.Points {
			xs[j], ys[j] = p.X, p.Y
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", fill(offset + i), outline))
	}
	canvas.End()
	_, err := w.Write(buf.Bytes())
	return err
}
