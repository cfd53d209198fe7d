// Command contour measures, trims, samples and flattens SVG path data.
//
// The path data is given as the first argument or read from a file:
//
//	contour measure "M0 0 L10 0 Q20 0 20 10 Z"
//	contour trim -start 0.25 -stop 0.75 -file path.txt
//	contour sample -n 5 "M0 0 C10 0 10 10 20 10"
//	contour flatten -scale 4 "M0 0 Q10 10 20 0"
//
// Reports are written to standard output as YAML.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"honnef.co/go/contour"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the contour cli.
type Config struct {

	// Path is the SVG path data to process.
	Path string `posarg:"0" required:"-"`

	// File is a file to read the SVG path data from, used
	// when no path data is given as an argument.
	File string `flag:"f,file"`

	// ForceClosed measures and samples open contours
	// as if they were closed by a line.
	ForceClosed bool `flag:"closed"`

	// Start is the normalized distance at which the trimmed path starts.
	Start float64 `cmd:"trim" default:"0"`

	// Stop is the normalized distance at which the trimmed path stops.
	Stop float64 `cmd:"trim" default:"1"`

	// Samples is the number of evenly spaced points sampled per contour.
	Samples int `cmd:"sample" flag:"n,samples" default:"10"`

	// Scale is the scale factor at which the path will be drawn.
	// Polylines are flattened with a tolerance of 1/Scale.
	Scale float64 `cmd:"flatten" default:"1"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("contour", "Contour measures, trims, samples and flattens SVG path data.")
	cli.Run(opts, &Config{}, Measure, Trim, Sample, Flatten)
}

// Measure reports the length, bounds and serialized forms of every contour.
func Measure(c *Config) error { //cli:cmd -root
	return measure(c, os.Stdout)
}

// Trim prints the part of the path between the normalized
// distances Start and Stop as SVG path data.
func Trim(c *Config) error {
	return trim(c, os.Stdout)
}

// Sample reports positions and unit tangents at evenly
// spaced distances along every contour.
func Sample(c *Config) error {
	return sample(c, os.Stdout)
}

// Flatten reports the polyline approximation of every contour.
func Flatten(c *Config) error {
	return flatten(c, os.Stdout)
}

// readPath parses the path data named by the config.
func readPath(c *Config) (*contour.Path, error) {
	d := c.Path
	if d == "" && c.File != "" {
		b, err := os.ReadFile(c.File)
		if err != nil {
			return nil, errors.Log(err)
		}
		d = string(b)
	}
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, errors.Log(errors.New("no path data given; pass it as an argument or use -file"))
	}
	p, err := contour.FromSVG(d)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("parsing path data: %w", err))
	}
	slog.Debug("parsed path", "contours", len(p.Contours()), "length", p.Length())
	return p, nil
}

func measure(c *Config, w io.Writer) error {
	p, err := readPath(c)
	if err != nil {
		return err
	}
	rep := measureReport{Length: p.Length()}
	for m := range p.Measures(c.ForceClosed) {
		rep.Contours = append(rep.Contours, newContourReport(m))
	}
	return writeYAML(w, rep)
}

func trim(c *Config, w io.Writer) error {
	p, err := readPath(c)
	if err != nil {
		return err
	}
	t := p.Trim(c.Start, c.Stop)
	if len(t.Contours()) == 0 {
		slog.Warn("trimmed path is empty", "start", c.Start, "stop", c.Stop)
	}
	_, err = fmt.Fprintln(w, t.SVG())
	return errors.Log(err)
}

func sample(c *Config, w io.Writer) error {
	p, err := readPath(c)
	if err != nil {
		return err
	}
	if c.Samples < 1 {
		return errors.Log(fmt.Errorf("invalid sample count %d", c.Samples))
	}
	var rep sampleReport
	i := 0
	for m := range p.Measures(c.ForceClosed) {
		rep.Contours = append(rep.Contours, sampleMeasure(i, m, c.Samples))
		i++
	}
	return writeYAML(w, rep)
}

func flatten(c *Config, w io.Writer) error {
	p, err := readPath(c)
	if err != nil {
		return err
	}
	if !(c.Scale > 0) {
		return errors.Log(fmt.Errorf("invalid scale factor %g", c.Scale))
	}
	var rep flattenReport
	for _, ct := range p.Contours() {
		pts := ct.Polyline(c.Scale)
		cr := flattenContour{Closed: ct.Closed(), Points: make([][2]float64, len(pts))}
		for i, pt := range pts {
			cr.Points[i] = [2]float64{pt.X, pt.Y}
		}
		rep.Contours = append(rep.Contours, cr)
	}
	return writeYAML(w, rep)
}
