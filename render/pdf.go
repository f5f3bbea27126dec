package render

import (
	"io"
	"math"

	"github.com/llgcode/draw2d/draw2dpdf"
	"github.com/pkg/errors"

	"github.com/osuushi/reveal/geom"
)

// A4 landscape, in millimetres.
const (
	pageWidth  = 297.0
	pageHeight = 210.0
	pageMargin = 10.0
)

// WritePDF fits the canvas onto a single A4 landscape page.
func WritePDF(w io.Writer, polygons []geom.Polygon, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	dest := draw2dpdf.NewPdf("L", "mm", "A4")
	gc := draw2dpdf.NewGraphicContext(dest)

	scale := math.Min((pageWidth-2*pageMargin)/opts.Width, (pageHeight-2*pageMargin)/opts.Height)
	// draw2dpdf only accepts transforms between Save and Restore
	gc.Save()
	gc.Translate(pageMargin, pageMargin)
	gc.Scale(scale, scale)

	gc.SetLineWidth(0.5 / scale)
	gc.SetStrokeColor(parseHex(outline))
	remaining, offset := opts.covering(polygons)
	for i, poly := range remaining {
		if len(poly.Points) == 0 {
			continue
		}
		gc.SetFillColor(parseHex(fill(offset + i)))
		gc.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			gc.LineTo(p.X, p.Y)
		}
		gc.Close()
		gc.FillStroke()
	}
	gc.Restore()

	if err := dest.Output(w); err != nil {
		return errors.Wrap(err, "writing pdf")
	}
	return nil
}
