// Package render writes coverings out as pictures or data files.
//
// Raster and vector output draws every polygon still covering the canvas in
// a palette colour. Options.Reveal skips the first polygons, which previews
// the canvas part way through a game.
package render

import (
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/reveal/geom"
)

type Format string

const (
	PNG  Format = "png"
	SVG  Format = "svg"
	PDF  Format = "pdf"
	JSON Format = "json"
	YAML Format = "yaml"
)

var Formats = []Format{PNG, SVG, PDF, JSON, YAML}

func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if s == "yml" {
		return YAML, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown output format %q", s)
}

// Palette cycles over the polygons.
var Palette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

const (
	background = "#FFFFFF"
	outline    = "#202020"
)

type Options struct {
	// Canvas size in covering units
	Width, Height float64
	// Pixels per covering unit for PNG output. Zero means 1.
	Scale float64
	// Number of leading polygons already removed
	Reveal int
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// The polygons still covering the canvas, and the index of the first one in
// the full covering.
func (o Options) covering(polygons []geom.Polygon) ([]geom.Polygon, int) {
	if o.Reveal <= 0 {
		return polygons, 0
	}
	if o.Reveal >= len(polygons) {
		return nil, len(polygons)
	}
	return polygons[o.Reveal:], o.Reveal
}

func (o Options) validate() error {
	if !(o.Width > 0) || !(o.Height > 0) {
		return errors.Errorf("render: canvas must be positive, got %vx%v", o.Width, o.Height)
	}
	return nil
}

// Colour for the polygon at index i of the full covering, so colours don't
// shift as polygons are revealed.
func fill(i int) string {
	return Palette[i%len(Palette)]
}

// Write dispatches on the format.
func Write(w io.Writer, f Format, polygons []geom.Polygon, opts Options) error {
	switch f {
	case PNG:
		return WritePNG(w, polygons, opts)
	case SVG:
		return WriteSVG(w, polygons, opts)
	case PDF:
		return WritePDF(w, polygons, opts)
	case JSON:
		return WriteJSON(w, polygons)
	case YAML:
		return WriteYAML(w, polygons)
	default:
		return errors.Errorf("unknown output format %q", f)
	}
}

func parseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
