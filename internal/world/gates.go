package world

import (
	"fmt"
	"math/rand"
)

// Edge identifies one side of the map boundary.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	edgeCount
)

// String returns a human-readable edge name.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// EdgeOf returns the boundary edge p lies on. Corners report the horizontal
// edge. ok is false for interior or off-map points.
func (m *Map) EdgeOf(p Point) (e Edge, ok bool) {
	if !m.OnBoundary(p) {
		return 0, false
	}
	switch {
	case p.Y == 0:
		return EdgeTop, true
	case p.Y == m.Height-1:
		return EdgeBottom, true
	case p.X == 0:
		return EdgeLeft, true
	default:
		return EdgeRight, true
	}
}

// edgeLength returns the number of cells along e.
func (m *Map) edgeLength(e Edge) int {
	if e == EdgeTop || e == EdgeBottom {
		return m.Width
	}
	return m.Height
}

// edgeCell returns the boundary cell at offset along e, and the direction
// pointing into the map from it.
func (m *Map) edgeCell(e Edge, along int) (cell, inward Point, err error) {
	switch e {
	case EdgeTop:
		return Point{along, 0}, Point{0, 1}, nil
	case EdgeRight:
		return Point{m.Width - 1, along}, Point{-1, 0}, nil
	case EdgeBottom:
		return Point{along, m.Height - 1}, Point{0, -1}, nil
	case EdgeLeft:
		return Point{0, along}, Point{1, 0}, nil
	default:
		return NoPoint, NoPoint, fmt.Errorf("%w: %d", ErrInvalidEdge, int(e))
	}
}

// PlaceStart picks a random edge and an odd, non-corner position on it, marks
// that boundary cell as the start door and puts the player there.
func PlaceStart(m *Map, rng *rand.Rand) (Edge, error) {
	e := Edge(rng.Intn(int(edgeCount)))
	return e, placeStartOn(m, e, rng)
}

func placeStartOn(m *Map, e Edge, rng *rand.Rand) error {
	if e < 0 || e >= edgeCount {
		return fmt.Errorf("%w: %d", ErrInvalidEdge, int(e))
	}
	// Odd offsets in [1, length-2].
	along := 1 + 2*rng.Intn((m.edgeLength(e)-1)/2)
	door, _, err := m.edgeCell(e, along)
	if err != nil {
		return err
	}

	m.Tiles.MustSet(door.X, door.Y, TileStartDoor)
	m.Entry = door
	m.Player = door
	return nil
}

// PlaceExit picks an edge other than start and samples positions along it
// until the cell just inside the boundary is floor. The boundary cell becomes
// the exit door and Exit records the inside cell.
func PlaceExit(m *Map, start Edge, rng *rand.Rand) (Edge, error) {
	if start < 0 || start >= edgeCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidEdge, int(start))
	}
	e := Edge((int(start) + 1 + rng.Intn(int(edgeCount)-1)) % int(edgeCount))
	length := m.edgeLength(e)

	for i := 0; i < m.placementAttempts(); i++ {
		door, inward, err := m.edgeCell(e, 1+rng.Intn(length-2))
		if err != nil {
			return 0, err
		}
		inside := door.Add(inward)
		if m.Tile(inside) != TileFloor {
			continue
		}
		m.Tiles.MustSet(door.X, door.Y, TileExitDoor)
		m.Exit = inside
		return e, nil
	}

	return 0, fmt.Errorf("%w: exit on %s edge", ErrPlacementExhausted, e)
}

// placementAttempts bounds every rejection-sampling loop on the map.
func (m *Map) placementAttempts() int {
	return m.Width * m.Height * 4
}
