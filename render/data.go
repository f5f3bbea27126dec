package render

import (
	"io"

	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/reveal/geom"
)

// JSON shape matches what the game front end consumes:
// [{"pnts": [{"x": 0, "y": 0}, ...]}, ...]
func WriteJSON(w io.Writer, polygons []geom.Polygon) error {
	if polygons == nil {
		polygons = []geom.Polygon{}
	}
	var h codec.JsonHandle
	h.Indent = 2
	if err := codec.NewEncoder(w, &h).Encode(polygons); err != nil {
		return errors.Wrap(err, "encoding json")
	}
	return nil
}

func ReadJSON(r io.Reader) ([]geom.Polygon, error) {
	var h codec.JsonHandle
	var polygons []geom.Polygon
	if err := codec.NewDecoder(r, &h).Decode(&polygons); err != nil {
		return nil, errors.Wrap(err, "decoding json")
	}
	return polygons, nil
}

func WriteYAML(w io.Writer, polygons []geom.Polygon) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(polygons); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return enc.Close()
}
