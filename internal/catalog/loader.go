package catalog

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Config describes a set of named shapes in JSON or YAML, e.g. the static
// geometry of a level.
type Config struct {
	Shapes []Definition `json:"shapes" yaml:"shapes"`
}

// Point is a vector literal in a config file.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Definition is a single shape. Which fields are read depends on Kind.
type Definition struct {
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`

	Center   *Point  `json:"center,omitempty" yaml:"center,omitempty"`
	TopLeft  *Point  `json:"top_left,omitempty" yaml:"top_left,omitempty"`
	Corners  []Point `json:"corners,omitempty" yaml:"corners,omitempty"`
	Vertices []Point `json:"vertices,omitempty" yaml:"vertices,omitempty"`

	Radius float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Sides  int     `json:"sides,omitempty" yaml:"sides,omitempty"`
	// Angle is the start angle of a regular polygon, in degrees.
	Angle float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
