// Command genvoronoi generates random generator points in a plane,
// computes their Voronoi diagram, and writes the result to stdout as
// JSON: one record per cell with its generator and its vertices clipped
// to the generation bounds.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/google/btree"
	"github.com/urfave/cli/v3"

	"github.com/mikenye/voronoi"
	"github.com/mikenye/voronoi/options"
	"github.com/mikenye/voronoi/point"
	"github.com/mikenye/voronoi/rectangle"
)

func main() {
	cmd := &cli.Command{
		Name:      "genvoronoi",
		Usage:     "Generates random points in a plane and outputs their Voronoi diagram to stdout as JSON",
		UsageText: "genvoronoi --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of points to create",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// cellJSON is one output record: a generator and its cell clipped to the
// generation bounds.
type cellJSON struct {
	Index    int           `json:"index"`
	Site     point.Point   `json:"site"`
	Vertices []point.Point `json:"vertices"`
}

func app(_ context.Context, cmd *cli.Command) error {

	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")

	// sanity checks
	if minx >= maxx {
		return fmt.Errorf("minx must be less than maxx")
	}
	if miny >= maxy {
		return fmt.Errorf("miny must be less than maxy")
	}
	if n > (maxx-minx+1)*(maxy-miny+1) {
		return fmt.Errorf("number of points exceeds the distinct positions in the plane")
	}

	// Draw distinct random points; the btree set rejects repeats so the
	// diagram has exactly n cells.
	seen := btree.NewG(2, func(a, b point.Point) bool {
		if a.X() != b.X() {
			return a.X() < b.X()
		}
		return a.Y() < b.Y()
	})
	points := make([]point.Point, 0, n)
	for int64(len(points)) < n {
		p := point.New(
			float64(randomIntInRange(minx, maxx)),
			float64(randomIntInRange(miny, maxy)),
		)
		if seen.Has(p) {
			continue
		}
		seen.ReplaceOrInsert(p)
		points = append(points, p)
	}

	diagram, err := voronoi.Compute(points, options.WithValidation())
	if err != nil {
		return err
	}

	viewport := rectangle.New(float64(minx), float64(miny), float64(maxx), float64(maxy))
	cells := make([]cellJSON, 0, len(diagram.Polygons()))
	for _, cell := range diagram.Polygons() {
		site, ok := cell.Generator()
		if !ok {
			continue
		}
		vertices, err := cell.ClippedVertices(viewport)
		if err != nil {
			return err
		}
		cells = append(cells, cellJSON{
			Index:    cell.Index(),
			Site:     site,
			Vertices: vertices,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cells)
}
