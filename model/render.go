package model

import "strings"

// Text rendering of grids and routes. Row Size-1 is printed first so the
// start corner ends up bottom left, matching the layout file orientation.

const (
	glyphFree     = ' '
	glyphObstacle = 'X'
	glyphRoute    = 'O'
	glyphCrossed  = '+'
)

func (g *Grid) String() string {
	return render(g, nil)
}

// RenderRoute draws the route over the grid, marking crossed obstacles.
func RenderRoute(g *Grid, r *Route) string {
	onRoute := make(map[Cell]bool, len(r.Cells))
	for _, c := range r.Cells {
		onRoute[c] = true
	}
	return render(g, onRoute)
}

func render(g *Grid, onRoute map[Cell]bool) string {
	var b strings.Builder
	for r := Size - 1; r >= 0; r-- {
		for c := 0; c < Size; c++ {
			cell := Cell{Row: r, Col: c}
			glyph := glyphFree
			switch {
			case onRoute[cell] && g.Blocked(cell):
				glyph = glyphCrossed
			case onRoute[cell]:
				glyph = glyphRoute
			case g.Blocked(cell):
				glyph = glyphObstacle
			}
			b.WriteByte('[')
			b.WriteRune(glyph)
			b.WriteString("] ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
