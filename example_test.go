package grapher_test

import (
	"fmt"

	"honnef.co/go/grapher"
)

func ExampleEditor() {
	e, err := grapher.NewEditor(grapher.DefaultChartParams(), nil)
	if err != nil {
		panic(err)
	}
	e.Create(2)
	e.Select(0)
	for _, pt := range []grapher.Point{grapher.Pt(3, 9), grapher.Pt(1, 1), grapher.Pt(2, 4)} {
		e.PointerDown(pt)
	}

	e.SetMode(grapher.ModeMove)
	e.PointerDown(grapher.Pt(2.1, 4.2))
	e.PointerMove(grapher.Pt(2, 5))
	e.PointerUp()

	for i := range e.Len() {
		sum, _ := e.Summary(i)
		fmt.Println(sum)
	}
	for _, pt := range e.Render("").Series[0].Points {
		fmt.Println(pt)
	}

	// Output:
	// 1. Curve 1 (3 points)
	// 2. Curve 2 (0 points)
	// (1, 1)
	// (2, 5)
	// (3, 9)
}

func ExampleSampleFormula() {
	pts, err := grapher.SampleFormula("x ** 2 - 1", 4, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(pts)

	_, err = grapher.SampleFormula("log(x)", 4, 3)
	fmt.Println(err)

	// Output:
	// [(0, -1) (2, 3) (4, 15)]
	// formula error: log at x=0: logarithm of non-positive number 0
}
