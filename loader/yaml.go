package loader

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/isoline"
)

// ErrMalformedPoint indicates a fixture vertex did not decode to exactly
// two coordinates.
var ErrMalformedPoint = errors.New("loader: vertex must have exactly two coordinates")

// FromYAML implements Source by reading a fixture file of the shape:
//
//	isolines:
//	  - closed: false
//	    points:
//	      - [0, 0]
//	      - [1, 0.2]
//	      - [2, 0]
type FromYAML struct {
	Path string
}

type yamlFile struct {
	Isolines []yamlIsoline `yaml:"isolines"`
}

type yamlIsoline struct {
	Closed bool        `yaml:"closed"`
	Points [][]float64 `yaml:"points"`
}

// LoadIsolines reads and decodes the YAML file at Path.
func (f FromYAML) LoadIsolines() ([]isoline.Input, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}

	var doc yamlFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	inputs := make([]isoline.Input, 0, len(doc.Isolines))
	for _, iso := range doc.Isolines {
		pts := make([]geomkernel.Point, 0, len(iso.Points))
		for _, coords := range iso.Points {
			if len(coords) != 2 {
				return nil, ErrMalformedPoint
			}
			pts = append(pts, geomkernel.Point{X: coords[0], Y: coords[1]})
		}
		inputs = append(inputs, isoline.Input{Points: pts, Closed: iso.Closed})
	}

	return inputs, nil
}
