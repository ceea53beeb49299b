package anchor_test

import (
	"fmt"

	"github.com/anpham6/squared-sub012/pkg/anchor"
	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

func ExampleResolve() {
	// logo sits in the top-left corner, title shares only the top edge,
	// and badge shares neither, so it is placed on a circle around logo.
	logo := tree.NewElement("logo", "frame", geom.Rect{Top: 0, Right: 40, Bottom: 40, Left: 0}, geom.Edges{})
	title := tree.NewElement("title", "frame", geom.Rect{Top: 0, Right: 200, Bottom: 20, Left: 60}, geom.Edges{})
	badge := tree.NewElement("badge", "frame", geom.Rect{Top: 100, Right: 120, Bottom: 120, Left: 100}, geom.Edges{})

	res := anchor.Resolve(anchor.Group{
		Parent:  "frame",
		Members: []*tree.Element{&logo, &title, &badge},
	}, anchor.DefaultOptions())

	fmt.Println("Pivot:", res.Pivot)
	for _, d := range res.Directives {
		fmt.Println(d)
	}
	// Output:
	// Pivot: logo
	// logo horizontal edge(frame.left+0)
	// logo vertical edge(frame.top+0)
	// title vertical edge(frame.top+0)
	// title horizontal offset(frame.left+60)
	// badge circle(logo r=127 a=135)
}

func ExamplePolar() {
	origin := geom.Point{X: 0, Y: 0}

	r, a := anchor.Polar(origin, geom.Point{X: 3, Y: -4})
	fmt.Println(r, a)

	// Same row, to the left.
	r, a = anchor.Polar(origin, geom.Point{X: -10, Y: 0})
	fmt.Println(r, a)
	// Output:
	// 5 37
	// 10 270
}
