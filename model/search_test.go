package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireValidRoute checks the walk invariants: endpoints, bounds, 4-adjacency
// and no repeated cell.
func requireValidRoute(t *testing.T, r *Route) {
	t.Helper()
	require.NotEmpty(t, r.Cells)
	require.Equal(t, Start, r.Cells[0])
	require.Equal(t, Target, r.Cells[len(r.Cells)-1])

	seen := make(map[Cell]bool)
	for i, c := range r.Cells {
		require.True(t, InBounds(c), "cell %v out of bounds", c)
		require.False(t, seen[c], "cell %v repeated", c)
		seen[c] = true
		if i > 0 {
			require.Equal(t, 1, c.Manhattan(r.Cells[i-1]), "cells %v and %v not adjacent", r.Cells[i-1], c)
		}
	}
}

// blockRow walls off a full row. Never call it with the start or target row.
func blockRow(t *testing.T, g *Grid, row int) {
	t.Helper()
	for col := 0; col < Size; col++ {
		require.NoError(t, g.Block(Cell{Row: row, Col: col}))
	}
}

func TestFindRoute(t *testing.T) {
	t.Run("empty grid goes straight", func(t *testing.T) {
		route, ok := FindRoute(NewGrid())
		require.True(t, ok)
		requireValidRoute(t, route)
		assert.Equal(t, Start.Manhattan(Target), route.Steps())
	})

	t.Run("fixed layout does not force a detour", func(t *testing.T) {
		g := NewGrid()
		g.PlaceFixed()
		route, ok := FindRoute(g)
		require.True(t, ok)
		requireValidRoute(t, route)
		assert.Equal(t, 18, route.Steps())
		assert.Len(t, route.Cells, 19)
		for _, c := range route.Cells {
			assert.False(t, g.Blocked(c), "route passes through obstacle %v", c)
		}
	})

	t.Run("detour around a gap", func(t *testing.T) {
		// row 5 is walled except for one gap at col 9, so every shortest
		// route must pass through it
		g := NewGrid()
		for col := 0; col < Size-1; col++ {
			require.NoError(t, g.Block(Cell{Row: 5, Col: col}))
		}
		route, ok := FindRoute(g)
		require.True(t, ok)
		requireValidRoute(t, route)
		assert.Contains(t, route.Cells, Cell{Row: 5, Col: 9})
		assert.Equal(t, 18, route.Steps())
	})

	t.Run("cut off target reports no route", func(t *testing.T) {
		g := NewGrid()
		blockRow(t, g, 5)
		route, ok := FindRoute(g)
		assert.False(t, ok)
		assert.Nil(t, route)
	})

	t.Run("deterministic", func(t *testing.T) {
		g := NewGrid()
		g.PlaceFixed()
		first, ok := FindRoute(g)
		require.True(t, ok)
		second, ok := FindRoute(g)
		require.True(t, ok)
		assert.Equal(t, first, second)
	})
}

func TestFindRouteThrough(t *testing.T) {
	t.Run("clear grid crosses nothing", func(t *testing.T) {
		route := FindRouteThrough(NewGrid())
		requireValidRoute(t, route)
		assert.Empty(t, route.Crossed)
		assert.Equal(t, 18, route.Steps())
	})

	t.Run("single wall costs one crossing", func(t *testing.T) {
		g := NewGrid()
		blockRow(t, g, 5)
		route := FindRouteThrough(g)
		requireValidRoute(t, route)
		assert.Len(t, route.Crossed, 1)
		assert.Equal(t, 18, route.Steps())
	})

	t.Run("two walls cost two crossings", func(t *testing.T) {
		g := NewGrid()
		blockRow(t, g, 3)
		blockRow(t, g, 6)
		route := FindRouteThrough(g)
		requireValidRoute(t, route)
		assert.Len(t, route.Crossed, 2)
		assert.Equal(t, 18, route.Steps())
	})

	t.Run("shortest among equal-crossing routes", func(t *testing.T) {
		// row 5 walled with a gap at col 9: crossing the wall anywhere
		// costs one obstacle, so the cheapest route is the clear one
		// through the gap, and it must not wander
		g := NewGrid()
		for col := 0; col < Size-1; col++ {
			require.NoError(t, g.Block(Cell{Row: 5, Col: col}))
		}
		route := FindRouteThrough(g)
		requireValidRoute(t, route)
		assert.Empty(t, route.Crossed)
		assert.Equal(t, 18, route.Steps())
		assert.Contains(t, route.Cells, Cell{Row: 5, Col: 9})
	})

	t.Run("crossed lists exactly the blocked route cells in order", func(t *testing.T) {
		g := NewGrid()
		blockRow(t, g, 4)
		route := FindRouteThrough(g)
		var blocked []Cell
		for _, c := range route.Cells {
			if g.Blocked(c) {
				blocked = append(blocked, c)
			}
		}
		assert.Equal(t, blocked, route.Crossed)
	})

	t.Run("deterministic", func(t *testing.T) {
		g := NewGrid()
		blockRow(t, g, 5)
		assert.Equal(t, FindRouteThrough(g), FindRouteThrough(g))
	})
}

func TestSolve(t *testing.T) {
	t.Run("prefers a clear route", func(t *testing.T) {
		g := NewGrid()
		g.PlaceFixed()
		route := Solve(g)
		requireValidRoute(t, route)
		assert.Empty(t, route.Crossed)
	})

	t.Run("falls back when cut off", func(t *testing.T) {
		g := NewGrid()
		blockRow(t, g, 5)
		route := Solve(g)
		requireValidRoute(t, route)
		assert.NotEmpty(t, route.Crossed)
	})
}
