package wingededge_test

import (
	"fmt"
	"sort"

	"github.com/mikenye/voronoi"
	"github.com/mikenye/voronoi/point"
	"github.com/mikenye/voronoi/rectangle"
	"github.com/mikenye/voronoi/wingededge"
)

func ExamplePolygon_ClippedVertices() {
	diagram, err := voronoi.Compute([]point.Point{
		point.New(0, 0),
		point.New(1, 0),
		point.New(0, 1),
		point.New(1, 1),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	// Clip the cell of the first generator to a viewport around the sites.
	var vertices []point.Point
	var cells []*wingededge.Polygon = diagram.Polygons()
	for _, cell := range cells {
		if cell.Index() == 0 {
			vertices, err = cell.ClippedVertices(rectangle.New(-1, -1, 2, 2))
			if err != nil {
				fmt.Println(err)
				return
			}
		}
	}

	sort.Slice(vertices, func(i, j int) bool {
		if vertices[i].X() != vertices[j].X() {
			return vertices[i].X() < vertices[j].X()
		}
		return vertices[i].Y() < vertices[j].Y()
	})
	for _, v := range vertices {
		fmt.Println(v.String())
	}

	// Output:
	// (-1, -1)
	// (-1, 0.5)
	// (0.5, -1)
	// (0.5, 0.5)
}
