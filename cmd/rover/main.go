package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/rover/model"
)

func main() {
	var (
		obstacles = flag.Int("obstacles", 20, "random obstacles scattered on top of the layout")
		seed      = flag.Int64("seed", 0, "obstacle placement seed, 0 means time-based")
		layout    = flag.String("layout", "", "layout file, empty for the built-in fixed layout")
		through   = flag.Bool("through", false, "when cut off, drive over the fewest obstacles instead of giving up")
	)
	flag.Parse()

	var grid *model.Grid
	if *layout != "" {
		var err error
		grid, err = model.Load(*layout)
		if err != nil {
			log.Fatalf("loading layout %s: %v", *layout, err)
		}
	} else {
		grid = model.NewGrid()
		grid.PlaceFixed()
	}

	if *obstacles > 0 {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		log.Printf("scattering %d obstacles, seed %d", *obstacles, s)
		placed := grid.Scatter(*obstacles, rand.New(rand.NewSource(s)))
		fmt.Printf("More obstacles were placed at:\n%s\n\n", coords(placed))
	}

	route, ok := model.FindRoute(grid)
	switch {
	case ok:
		fmt.Println("This is a path from the start to the destination")
	case *through:
		route = model.FindRouteThrough(grid)
		fmt.Println("Unable to reach the destination on a clear path")
		fmt.Printf("This is a path from the start to the destination traversing %d obstacle(s)\n", len(route.Crossed))
	default:
		fmt.Print(grid)
		fmt.Println("Could not find a path from start to destination.")
		return
	}

	fmt.Println()
	fmt.Print(model.RenderRoute(grid, route))
	fmt.Println()
	fmt.Println(coords(route.Cells))
	fmt.Printf("This is %d steps\n", route.Steps())
	if len(route.Crossed) > 0 {
		fmt.Printf("Obstacles were traversed at:\n%s\n", coords(route.Crossed))
	}
}

func coords(cells []model.Cell) string {
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		parts = append(parts, fmt.Sprintf("(%d,%d)", c.Row, c.Col))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
