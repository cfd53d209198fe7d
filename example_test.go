package contour_test

import (
	"fmt"

	"honnef.co/go/contour"
)

func Example() {
	p, err := contour.FromSVG("M0 0 L30 0 L30 40 Z")
	if err != nil {
		panic(err)
	}
	c := p.Contours()[0]
	fmt.Println(c.Length())

	var out [4]float64
	c.PosTanAtLength(45, &out)
	fmt.Println(out)

	fmt.Println(c.Trim(0, 0.5).SVG())
	fmt.Println(c.SVG())
	// Output:
	// 120
	// [30 15 0 1]
	// M0 0 L30 0 L30 30
	// M0 0 L30 0 L30 40 Z
}

func ExampleEncodeCommands() {
	p := contour.NewPath()
	p.MoveTo(contour.Pt(0, 0))
	p.LineTo(contour.Pt(10, 0))
	p.QuadTo(contour.Pt(20, 0), contour.Pt(20, 10))
	p.Close()
	fmt.Println(p.ToCommands())
	fmt.Println(contour.EncodeCommands(p.ToCommands()))
	// Output:
	// [Move(0, 0) Line(10, 0) Quad(20, 0, 20, 10) Close]
	// [0 0 0 1 10 0 2 20 0 20 10 5]
}

func ExampleContourMeasure() {
	p, err := contour.FromSVG("M0 0 h30 v40")
	if err != nil {
		panic(err)
	}
	for m := range p.Measures(true) {
		pos, tan, _ := m.PosTan(95)
		fmt.Println(m.Length(), m.IsClosed(), pos, tan)
	}
	// Output:
	// 120 true (15, 20) ⟨-0.6, -0.8⟩
}
