package gravity_test

import (
	"fmt"

	"github.com/anpham6/squared-sub012/pkg/geom"
	"github.com/anpham6/squared-sub012/pkg/gravity"
	"github.com/anpham6/squared-sub012/pkg/tree"
)

func ExampleResolve() {
	// A back button 8px from the left of a 360x56 toolbar, vertically
	// centered.
	bar := gravity.Target{ID: "toolbar", Box: geom.Rect{Top: 0, Right: 360, Bottom: 56, Left: 0}}
	back := tree.NewElement("back", "toolbar", geom.Rect{Top: 8, Right: 48, Bottom: 48, Left: 8}, geom.Edges{})
	back.Position = tree.PositionAbsolute

	d, ann := gravity.Resolve(&back, bar, gravity.Options{})
	fmt.Println(d.Gravity)
	fmt.Println(d.Margins)
	fmt.Printf("%+v\n", d.Bias)
	fmt.Println("positioned:", ann.Positioned)

	d, _ = gravity.Resolve(&back, bar, gravity.Options{SupportRTL: true})
	fmt.Println(d.Gravity)
	// Output:
	// left|center_vertical
	// map[left:8]
	// {Horizontal:0.025 Vertical:0.5}
	// positioned: true
	// start|center_vertical
}

func ExampleBias() {
	parent := geom.Rect{Top: 0, Right: 100, Bottom: 100, Left: 0}
	e := tree.NewElement("e", "p", geom.Rect{Top: 10, Right: 80, Bottom: 30, Left: 60}, geom.Edges{})

	fmt.Println(gravity.Bias(&e, parent, geom.Horizontal))
	fmt.Println(gravity.Bias(&e, parent, geom.Vertical))

	e.Float = tree.FloatLeft
	fmt.Println(gravity.Bias(&e, parent, geom.Horizontal))
	// Output:
	// 0.75
	// 0.125
	// 0
}
