package model

import "math/rand"

// the four obstacles of the original delivery scenario
var fixedLayout = [4]Cell{
	{Row: 7, Col: 9},
	{Row: 7, Col: 8},
	{Row: 7, Col: 6},
	{Row: 8, Col: 6},
}

// PlaceFixed puts the predetermined obstacles on the grid.
func (g *Grid) PlaceFixed() {
	for _, c := range fixedLayout {
		g.blocked[c] = true
	}
}

// Scatter blocks n cells picked uniformly without replacement from the free
// cells, never touching Start or Target. When fewer than n cells are free it
// blocks all of them. The placed cells are returned in placement order.
func (g *Grid) Scatter(n int, rnd *rand.Rand) []Cell {
	options := make([]Cell, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := Cell{Row: r, Col: c}
			if cell == Start || cell == Target || g.blocked[cell] {
				continue
			}
			options = append(options, cell)
		}
	}
	if n > len(options) {
		n = len(options)
	}

	placed := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		k := rnd.Intn(len(options))
		cell := options[k]
		g.blocked[cell] = true
		placed = append(placed, cell)
		options[k] = options[len(options)-1]
		options = options[:len(options)-1]
	}
	return placed
}
