package model

// Route is an ordered walk from Start to Target, each cell 4-adjacent to the
// previous one. Crossed holds the obstacle cells the route enters, in route
// order; it is empty for an obstacle-free route.
type Route struct {
	Cells   []Cell `json:"cells"`
	Crossed []Cell `json:"crossed,omitempty"`
}

// Steps is the number of moves, one less than the number of cells.
func (r *Route) Steps() int {
	return len(r.Cells) - 1
}

// FindRoute runs a breadth-first search from Start and returns a shortest
// obstacle-free route to Target. The second result is false when the
// obstacles cut Target off completely; that is a normal outcome, not an
// error.
func FindRoute(g *Grid) (*Route, bool) {
	frontier := []Cell{Start}
	visited := map[Cell]bool{Start: true}
	parents := make(map[Cell]Cell)

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur == Target {
			return &Route{Cells: walkBack(parents)}, true
		}
		for _, n := range g.Neighbors(cur) {
			if visited[n] || g.Blocked(n) {
				continue
			}
			visited[n] = true
			parents[n] = cur
			frontier = append(frontier, n)
		}
	}
	return nil, false
}

// cost orders routes by obstacles crossed first, then by length.
type cost struct {
	crossed int
	steps   int
}

func (c cost) better(o cost) bool {
	return c.crossed < o.crossed || c.crossed == o.crossed && c.steps < o.steps
}

// FindRouteThrough finds the route crossing the fewest obstacles, and the
// shortest one among those. Entering a blocked cell costs one crossing,
// movement itself is never blocked, so the grid stays connected and a route
// always exists.
//
// Dijkstra over (crossings, steps) pairs: the open cell with the fewest
// crossings, then the fewest steps, is expanded next, so a cell leaves the
// open list with its final cost. The linear scan keeps the first best cell,
// which together with the fixed neighbor order makes the result
// deterministic.
func FindRouteThrough(g *Grid) *Route {
	open := []Cell{Start}
	inOpen := map[Cell]bool{Start: true}
	dist := map[Cell]cost{Start: {}}
	parents := make(map[Cell]Cell)

	for len(open) > 0 {
		best := 0
		for i := 1; i < len(open); i++ {
			if dist[open[i]].better(dist[open[best]]) {
				best = i
			}
		}
		cur := open[best]
		open = append(open[:best], open[best+1:]...)
		delete(inOpen, cur)
		if cur == Target {
			break
		}

		for _, n := range g.Neighbors(cur) {
			next := cost{crossed: dist[cur].crossed, steps: dist[cur].steps + 1}
			if g.Blocked(n) {
				next.crossed++
			}
			if d, seen := dist[n]; seen && !next.better(d) {
				continue
			}
			dist[n] = next
			parents[n] = cur
			if !inOpen[n] {
				open = append(open, n)
				inOpen[n] = true
			}
		}
	}

	route := &Route{Cells: walkBack(parents)}
	for _, c := range route.Cells {
		if g.Blocked(c) {
			route.Crossed = append(route.Crossed, c)
		}
	}
	return route
}

// Solve prefers a clear route and falls back to the least-obstacle one.
func Solve(g *Grid) *Route {
	if route, ok := FindRoute(g); ok {
		return route
	}
	return FindRouteThrough(g)
}

func walkBack(parents map[Cell]Cell) []Cell {
	cells := []Cell{Target}
	for cur := Target; cur != Start; {
		cur = parents[cur]
		cells = append(cells, cur)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}
