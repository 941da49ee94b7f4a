package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Reachable returns every passable cell connected to from by 4-directional
// movement through non-wall tiles.
func Reachable(m *Map, from Point) mapset.Set[Point] {
	seen := mapset.New[Point]()
	if !m.Tile(from).IsPassable() {
		return seen
	}

	queue := []Point{from}
	seen.Put(from)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range cardinals {
			next := cur.Add(d)
			if seen.Has(next) || !m.Tile(next).IsPassable() {
				continue
			}
			seen.Put(next)
			queue = append(queue, next)
		}
	}
	return seen
}

// FloorRegions counts the connected groups of passable cells.
func FloorRegions(m *Map) int {
	visited := mapset.New[Point]()
	regions := 0
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			p := Point{x, y}
			if visited.Has(p) || !m.Tile(p).IsPassable() {
				continue
			}
			regions++
			Reachable(m, p).Each(func(q Point) {
				visited.Put(q)
			})
		}
	}
	return regions
}

// Validate checks the structural invariants of a generated floor: one start
// door on the boundary, at most one exit door on a different edge, and every
// passable cell reachable from the entry.
func Validate(m *Map) error {
	starts := m.Find(TileStartDoor)
	if len(starts) != 1 || starts[0] != m.Entry || !m.OnBoundary(m.Entry) {
		return fmt.Errorf("%w: expected one start door at %v, found %v", ErrDisconnected, m.Entry, starts)
	}

	exits := m.Find(TileExitDoor)
	switch {
	case len(exits) > 1:
		return fmt.Errorf("%w: %d exit doors", ErrDisconnected, len(exits))
	case len(exits) == 1:
		startEdge, _ := m.EdgeOf(m.Entry)
		exitEdge, ok := m.EdgeOf(exits[0])
		if !ok || exitEdge == startEdge || m.ExitDoor() != exits[0] {
			return fmt.Errorf("%w: exit door %v misplaced", ErrDisconnected, exits[0])
		}
	case m.Exit != NoPoint:
		return fmt.Errorf("%w: exit %v has no door", ErrDisconnected, m.Exit)
	}

	passable := 0
	for _, t := range m.Tiles.Cells() {
		if t == TileHidden {
			return fmt.Errorf("%w: hidden tile in ground truth", ErrDisconnected)
		}
		if t.IsPassable() {
			passable++
		}
	}
	if reached := Reachable(m, m.Entry).Size(); reached != passable {
		return fmt.Errorf("%w: %d of %d passable cells reachable from entry", ErrDisconnected, reached, passable)
	}
	return nil
}
