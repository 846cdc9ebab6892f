package treemap_test

import (
	"fmt"

	"github.com/matzehuels/treemap/pkg/treemap"
)

func ExampleTreemapLayout_LayoutItems() {
	// Seven weighted items laid out into a 6x4 frame.
	items := []treemap.Mappable{
		treemap.NewMapItem(6),
		treemap.NewMapItem(6),
		treemap.NewMapItem(4),
		treemap.NewMapItem(3),
		treemap.NewMapItem(2),
		treemap.NewMapItem(2),
		treemap.NewMapItem(1),
	}

	engine := treemap.New()
	if err := engine.LayoutItems(items, treemap.NewRectXYWH(0, 0, 6, 4)); err != nil {
		fmt.Println("layout failed:", err)
		return
	}

	for _, item := range items[:3] {
		b := item.Bounds()
		fmt.Printf("%.3f %.3f %.3f %.3f\n", b.X, b.Y, b.W, b.H)
	}
	// Output:
	// 0.000 0.000 3.130 2.000
	// 0.000 2.000 3.130 2.000
	// 3.130 0.000 2.870 1.455
}

func ExampleTreemapLayout_Layout() {
	// A single item fills the whole frame.
	item := treemap.NewMapItem(5)
	model := treemap.SliceModel{item}

	engine := treemap.New()
	_ = engine.Layout(model, treemap.NewRectXYWH(0, 0, 6, 4))

	b := item.Bounds()
	fmt.Printf("x=%g y=%g w=%g h=%g\n", b.X, b.Y, b.W, b.H)
	// Output:
	// x=0 y=0 w=6 h=4
}

func ExampleSortDescending() {
	items := []treemap.Mappable{
		treemap.NewMapItem(1),
		treemap.NewMapItem(3),
		treemap.NewMapItem(2),
	}

	treemap.SortDescending(items)

	for _, item := range items {
		fmt.Println(item.Size())
	}
	// Output:
	// 3
	// 2
	// 1
}

func ExampleRect_AspectRatio() {
	fmt.Println(treemap.NewRect().AspectRatio())
	fmt.Println(treemap.NewRectXYWH(1, 1, 1, 5).AspectRatio())
	// Output:
	// 1
	// 5
}
