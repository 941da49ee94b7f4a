package world

import (
	"fmt"
	"log"
)

const (
	// Default floor dimensions, used when the requested size is too small.
	DefaultWidth  = 39
	DefaultHeight = 19

	// MinDimension is the smallest accepted width or height.
	MinDimension = 13

	// DefaultEnemyCount is used when a map asks for no enemies.
	DefaultEnemyCount = 5
)

// Map is a single dungeon floor. Tiles holds the ground truth; Known holds
// what the player has discovered so far.
type Map struct {
	Floor        int
	Width        int
	Height       int
	Entry        Point
	Exit         Point
	Player       Point
	ExitUnlocked bool
	EnemyCount   int

	Tiles *Grid[Tile]
	Known *Grid[Tile]
}

// NewMap creates an unallocated floor description. Dimensions and enemy count
// are corrected by Generate.
func NewMap(floor, width, height, enemies int) *Map {
	return &Map{
		Floor:      floor,
		Width:      width,
		Height:     height,
		EnemyCount: enemies,
		Entry:      NoPoint,
		Exit:       NoPoint,
		Player:     NoPoint,
	}
}

// normalize applies the silent corrections to size and enemy count and
// returns a description of each correction made.
func (m *Map) normalize() []string {
	var fixes []string

	if m.Width%2 == 0 {
		fixes = append(fixes, fmt.Sprintf("width %d is even, using %d", m.Width, m.Width+1))
		m.Width++
	}
	if m.Height%2 == 0 {
		fixes = append(fixes, fmt.Sprintf("height %d is even, using %d", m.Height, m.Height+1))
		m.Height++
	}
	if m.Width < MinDimension || m.Height < MinDimension {
		fixes = append(fixes, fmt.Sprintf("size %dx%d below minimum %d, using %dx%d",
			m.Width, m.Height, MinDimension, DefaultWidth, DefaultHeight))
		m.Width, m.Height = DefaultWidth, DefaultHeight
	}
	if m.EnemyCount <= 0 {
		fixes = append(fixes, fmt.Sprintf("enemy count %d, using %d", m.EnemyCount, DefaultEnemyCount))
		m.EnemyCount = DefaultEnemyCount
	}

	for _, f := range fixes {
		log.Printf("Warning: floor %d: %s", m.Floor, f)
	}
	return fixes
}

// allocate creates both tile layers: ground truth all wall, known all hidden.
func (m *Map) allocate() error {
	if m.Width < MinDimension || m.Height < MinDimension || m.Width%2 == 0 || m.Height%2 == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, m.Width, m.Height)
	}
	m.Tiles = NewGrid(m.Width, m.Height, TileWall)
	m.Known = NewGrid(m.Width, m.Height, TileHidden)
	m.Entry, m.Exit, m.Player = NoPoint, NoPoint, NoPoint
	m.ExitUnlocked = false
	return nil
}

// InBounds reports whether p lies on the map.
func (m *Map) InBounds(p Point) bool {
	return m.Tiles != nil && m.Tiles.InBounds(p.X, p.Y)
}

// OnBoundary reports whether p lies on the outer ring of the map.
func (m *Map) OnBoundary(p Point) bool {
	return m.InBounds(p) && (p.X == 0 || p.Y == 0 || p.X == m.Width-1 || p.Y == m.Height-1)
}

// Tile returns the ground-truth tile at p, or TileWall off the map.
func (m *Map) Tile(p Point) Tile {
	if t, ok := m.Tiles.Get(p.X, p.Y); ok {
		return t
	}
	return TileWall
}

// KnownTile returns what the player knows about p, or TileHidden off the map.
func (m *Map) KnownTile(p Point) Tile {
	if t, ok := m.Known.Get(p.X, p.Y); ok {
		return t
	}
	return TileHidden
}

// IsRevealed reports whether the player has discovered p.
func (m *Map) IsRevealed(p Point) bool {
	return m.KnownTile(p) != TileHidden
}

// SetTile replaces the ground-truth tile at p. If the player already knows
// the cell, the known layer is updated as well so it keeps mirroring the
// ground truth. TileHidden is rejected.
func (m *Map) SetTile(p Point, t Tile) bool {
	if t == TileHidden || !t.Valid() {
		return false
	}
	if !m.Tiles.Set(p.X, p.Y, t) {
		return false
	}
	if m.IsRevealed(p) {
		m.Known.MustSet(p.X, p.Y, t)
	}
	return true
}

// Consume downgrades a pickup or enemy at p to floor in both layers and
// returns the tile that was there.
func (m *Map) Consume(p Point) Tile {
	t := m.Tile(p)
	if !t.IsPickup() {
		return t
	}
	m.SetTile(p, TileFloor)
	return t
}

// ExitDoor returns the boundary cell holding the exit door, or NoPoint when
// the floor has no exit.
func (m *Map) ExitDoor() Point {
	if m.Exit == NoPoint {
		return NoPoint
	}
	for _, d := range cardinals {
		q := m.Exit.Add(d)
		if m.OnBoundary(q) && m.Tile(q) == TileExitDoor {
			return q
		}
	}
	return NoPoint
}

// Count returns the number of ground-truth cells holding t.
func (m *Map) Count(t Tile) int {
	n := 0
	for _, c := range m.Tiles.Cells() {
		if c == t {
			n++
		}
	}
	return n
}

// Find returns every ground-truth position holding t, ordered by x then y.
func (m *Map) Find(t Tile) []Point {
	var out []Point
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if m.Tiles.MustGet(x, y) == t {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// IsDeadEnd reports whether p is a floor cell with exactly one non-wall
// cardinal neighbour.
func (m *Map) IsDeadEnd(p Point) bool {
	if m.Tile(p) != TileFloor {
		return false
	}
	open := 0
	for _, d := range cardinals {
		if m.Tile(p.Add(d)) != TileWall {
			open++
		}
	}
	return open == 1
}
