package world

import "math/rand"

// LoopTarget returns how many extra openings InjectLoops tries to make on a
// floor of the given size.
func LoopTarget(width, height int) int {
	return (width*height)/100 + 1
}

// InjectLoops knocks down interior walls that separate two floor cells in a
// straight line, turning the carved tree into a graph with cycles. Each
// attempt samples one interior wall; it gives up after ten attempts per
// requested loop and returns how many walls it removed. Fewer loops than
// requested is not an error.
func InjectLoops(m *Map, rng *rand.Rand) int {
	walls := m.interiorWalls()
	if len(walls) == 0 {
		return 0
	}

	target := LoopTarget(m.Width, m.Height)
	attempts := target * 10
	made := 0

	for i := 0; i < attempts && made < target; i++ {
		p := walls[rng.Intn(len(walls))]
		// Already knocked down by an earlier attempt.
		if m.Tile(p) != TileWall {
			continue
		}
		if m.bridgesStraight(p) {
			m.Tiles.MustSet(p.X, p.Y, TileFloor)
			made++
		}
	}

	return made
}

// interiorWalls lists the wall cells off the boundary ring, ordered by x then y.
func (m *Map) interiorWalls() []Point {
	var out []Point
	for x := 1; x < m.Width-1; x++ {
		for y := 1; y < m.Height-1; y++ {
			if m.Tiles.MustGet(x, y) == TileWall {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// bridgesStraight reports whether exactly two cardinal neighbours of p are
// floor and they sit on opposite sides.
func (m *Map) bridgesStraight(p Point) bool {
	up := m.Tile(p.Add(cardinals[0])) == TileFloor
	down := m.Tile(p.Add(cardinals[1])) == TileFloor
	left := m.Tile(p.Add(cardinals[2])) == TileFloor
	right := m.Tile(p.Add(cardinals[3])) == TileFloor

	switch {
	case up && down:
		return !left && !right
	case left && right:
		return !up && !down
	default:
		return false
	}
}
