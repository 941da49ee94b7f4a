package world

import (
	"log"
	"math/rand"
)

// Neighbour offsets two cells away; the cell in between is the wall slot.
var carveSteps = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// carveFrame is one cell on the backtracking stack together with its
// shuffled neighbour order and how far through it we are.
type carveFrame struct {
	cell   Point
	order  [4]int
	cursor int
}

// Carve turns the all-wall ground truth into a spanning tree of floor cells
// using a randomized depth-first backtracker. Only odd coordinates are visited;
// even coordinates are the walls between them. An even start coordinate is
// moved up by one. Carve returns the number of cells visited.
func Carve(m *Map, start Point, rng *rand.Rand) int {
	if start.X%2 == 0 {
		log.Printf("Warning: carve start x=%d is even, using %d", start.X, start.X+1)
		start.X++
	}
	if start.Y%2 == 0 {
		log.Printf("Warning: carve start y=%d is even, using %d", start.Y, start.Y+1)
		start.Y++
	}
	if !m.isCarvable(start) {
		start = Point{1, 1}
	}

	m.Tiles.MustSet(start.X, start.Y, TileFloor)
	visited := 1
	stack := []*carveFrame{newCarveFrame(start, rng)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.cursor >= len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}

		step := carveSteps[top.order[top.cursor]]
		top.cursor++

		next := top.cell.Add(step)
		if !m.isCarvable(next) || m.Tiles.MustGet(next.X, next.Y) != TileWall {
			continue
		}

		wall := top.cell.Add(Point{step.X / 2, step.Y / 2})
		m.Tiles.MustSet(wall.X, wall.Y, TileFloor)
		m.Tiles.MustSet(next.X, next.Y, TileFloor)
		visited++
		stack = append(stack, newCarveFrame(next, rng))
	}

	return visited
}

func newCarveFrame(cell Point, rng *rand.Rand) *carveFrame {
	f := &carveFrame{cell: cell, order: [4]int{0, 1, 2, 3}}
	rng.Shuffle(len(f.order), func(i, j int) {
		f.order[i], f.order[j] = f.order[j], f.order[i]
	})
	return f
}

// isCarvable reports whether p is an interior cell, leaving the boundary
// ring solid.
func (m *Map) isCarvable(p Point) bool {
	return p.X > 0 && p.X < m.Width-1 && p.Y > 0 && p.Y < m.Height-1
}
