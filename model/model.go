package model

import "errors"

// Size is the fixed edge length of the grid. The rover always starts in one
// corner and delivers to the opposite one.
const Size = 10

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrEndpoint    = errors.New("cell is a route endpoint")
)

// Cell is a single square of the grid, comparable so it can key maps.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

var (
	Start  = Cell{Row: 0, Col: 0}
	Target = Cell{Row: Size - 1, Col: Size - 1}
)

// Manhattan is the 4-directional step distance between two cells.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// neighbor order is fixed so searches stay deterministic
var directions = [4]Cell{
	{Row: 1},
	{Row: -1},
	{Col: -1},
	{Col: 1},
}

// Grid is a Size x Size board with a set of blocked cells. Start and Target
// are never blocked.
type Grid struct {
	blocked map[Cell]bool
}

func NewGrid() *Grid {
	return &Grid{blocked: make(map[Cell]bool)}
}

// Blocked reports whether an obstacle sits on c.
func (g *Grid) Blocked(c Cell) bool {
	return g.blocked[c]
}

// Block places an obstacle on c. Start and Target stay open.
func (g *Grid) Block(c Cell) error {
	if !InBounds(c) {
		return ErrOutOfBounds
	}
	if c == Start || c == Target {
		return ErrEndpoint
	}
	g.blocked[c] = true
	return nil
}

// Neighbors returns the in-bounds 4-neighbors of c, always in the same order.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range directions {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Obstacles lists the blocked cells in row-major order.
func (g *Grid) Obstacles() []Cell {
	out := make([]Cell, 0, len(g.blocked))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := Cell{Row: r, Col: c}
			if g.blocked[cell] {
				out = append(out, cell)
			}
		}
	}
	return out
}
