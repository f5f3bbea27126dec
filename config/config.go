// Package config reads and writes the covering settings file.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/reveal/cover"
)

// Settings mirrors what the game persists between sessions. Only the
// covering fields reach the generator.
type Settings struct {
	ImageSource        string  `yaml:"image_source,omitempty"`
	CoveringType       string  `yaml:"covering_type"`
	CoveringCount      int     `yaml:"covering_object_count"`
	CanvasWidth        float64 `yaml:"canvas_width"`
	CanvasHeight       float64 `yaml:"canvas_height"`
	Seed               int64   `yaml:"seed"`
	Shuffle            bool    `yaml:"shuffle"`
	ShowControlButtons bool    `yaml:"show_control_buttons"`
}

func Default() Settings {
	return Settings{
		CoveringType:       cover.KindRectangles.String(),
		CoveringCount:      10,
		CanvasWidth:        800,
		CanvasHeight:       600,
		Shuffle:            true,
		ShowControlButtons: true,
	}
}

// Parse overlays the YAML document on the defaults, so missing keys keep
// their default values.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrap(err, "parsing settings")
	}
	if _, err := s.Request(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "reading settings %q", path)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "in %q", path)
	}
	return s, nil
}

func (s Settings) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "writing settings")
	}
	return enc.Close()
}

// Request converts the settings into a validated covering request.
func (s Settings) Request() (cover.Request, error) {
	kind, err := cover.ParseKind(s.CoveringType)
	if err != nil {
		return cover.Request{}, err
	}
	req := cover.Request{
		Kind:   kind,
		Count:  s.CoveringCount,
		Width:  s.CanvasWidth,
		Height: s.CanvasHeight,
	}
	if err := req.Validate(); err != nil {
		return cover.Request{}, err
	}
	return req, nil
}
