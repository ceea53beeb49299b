package chain_test

import (
	"fmt"

	"github.com/anpham6/squared-sub012/pkg/chain"
)

func ExampleBuilder() {
	// toolbar was wrapped by a collapsing bar, which was wrapped by an app bar.
	var b chain.Builder
	_ = b.Wrap("toolbar", "collapsing")
	_ = b.Wrap("collapsing", "appbar")

	t, err := b.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t.Resolve("toolbar"))
	fmt.Println(t.Resolve("collapsing"))
	fmt.Println(t.Resolve("content"))
	// Output:
	// appbar
	// appbar
	// content
}

func ExampleFromMap() {
	_, err := chain.FromMap(map[string]string{"a": "b", "b": "a"})
	fmt.Println(err != nil)
	// Output:
	// true
}
