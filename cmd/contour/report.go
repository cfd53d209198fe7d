package main

import (
	"fmt"
	"io"

	"cogentcore.org/core/base/errors"
	"gopkg.in/yaml.v3"
	"honnef.co/go/contour"
)

type measureReport struct {
	Length   float64         `yaml:"length"`
	Contours []contourReport `yaml:"contours"`
}

type contourReport struct {
	Closed   bool       `yaml:"closed"`
	Segments int        `yaml:"segments"`
	Length   float64    `yaml:"length"`
	Bounds   [4]float64 `yaml:"bounds,flow"`
	Commands []string   `yaml:"commands"`
	SVG      string     `yaml:"svg"`
}

func newContourReport(m *contour.ContourMeasure) contourReport {
	ct := m.Contour()
	b := ct.Bounds()
	rep := contourReport{
		Closed:   m.IsClosed(),
		Segments: ct.Len(),
		Length:   m.Length(),
		Bounds:   [4]float64{b.X0, b.Y0, b.X1, b.Y1},
		SVG:      ct.SVG(),
	}
	for _, cmd := range ct.ToCommands() {
		rep.Commands = append(rep.Commands, cmd.String())
	}
	return rep
}

type sampleReport struct {
	Contours []sampleContour `yaml:"contours"`
}

type sampleContour struct {
	Index   int          `yaml:"index"`
	Length  float64      `yaml:"length"`
	Samples []sampleItem `yaml:"samples"`
}

type sampleItem struct {
	Distance float64    `yaml:"distance"`
	Pos      [2]float64 `yaml:"pos,flow"`
	Tan      [2]float64 `yaml:"tan,flow"`
}

// sampleMeasure samples n points spaced evenly by distance, including both
// ends of the contour.
func sampleMeasure(index int, m *contour.ContourMeasure, n int) sampleContour {
	out := sampleContour{Index: index, Length: m.Length()}
	for i := range n {
		var d float64
		if n > 1 {
			d = m.Length() * float64(i) / float64(n-1)
		}
		pos, tan, ok := m.PosTan(d)
		if !ok {
			break
		}
		out.Samples = append(out.Samples, sampleItem{
			Distance: d,
			Pos:      [2]float64{pos.X, pos.Y},
			Tan:      [2]float64{tan.X, tan.Y},
		})
	}
	return out
}

type flattenReport struct {
	Contours []flattenContour `yaml:"contours"`
}

type flattenContour struct {
	Closed bool         `yaml:"closed"`
	Points [][2]float64 `yaml:"points,flow"`
}

// writeYAML encodes v to w as a YAML document.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Log(fmt.Errorf("encoding report: %w", err))
	}
	return errors.Log(enc.Close())
}
