package world

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// EnemySpacing is the minimum box distance between two enemies, and between
// an enemy and the start door.
const EnemySpacing = 3

// Populate places the key and the life and mana fountains on dead ends, then
// spreads EnemyCount enemies across the floor. Only the ground truth is
// touched. Each placement re-reads the current tile, so later placements
// never overwrite earlier ones.
func Populate(m *Map, rng *rand.Rand) error {
	for _, t := range []Tile{TileDoorKey, TileLifeFountain, TileManaFountain} {
		p, err := m.sample(rng, m.spareDeadEnd())
		if err != nil {
			return fmt.Errorf("place %s: %w", t, err)
		}
		m.Tiles.MustSet(p.X, p.Y, t)
	}

	enemies := mapset.New[Point]()
	for i := 0; i < m.EnemyCount; i++ {
		p, err := m.sample(rng, func(p Point) bool {
			return m.Tile(p) == TileFloor && m.clearOfEnemies(p, enemies)
		})
		if err != nil {
			return fmt.Errorf("place enemy %d of %d: %w", i+1, m.EnemyCount, err)
		}
		m.Tiles.MustSet(p.X, p.Y, TileEnemy)
		enemies.Put(p)
	}

	return nil
}

// spareDeadEnd returns the acceptance test for dead-end placements. The cell
// the player first steps onto is never used.
func (m *Map) spareDeadEnd() func(Point) bool {
	step := m.entryStep()
	return func(p Point) bool {
		return p != step && m.IsDeadEnd(p)
	}
}

// clearOfEnemies reports whether p keeps EnemySpacing from the start door and
// from every enemy placed so far.
func (m *Map) clearOfEnemies(p Point, enemies mapset.Set[Point]) bool {
	if m.Entry != NoPoint && p.Chebyshev(m.Entry) < EnemySpacing {
		return false
	}
	ok := true
	enemies.Each(func(e Point) {
		if p.Chebyshev(e) < EnemySpacing {
			ok = false
		}
	})
	return ok
}

// sample draws interior cells until accept returns true, giving up after
// placementAttempts draws.
func (m *Map) sample(rng *rand.Rand, accept func(Point) bool) (Point, error) {
	for i := 0; i < m.placementAttempts(); i++ {
		p := Point{1 + rng.Intn(m.Width-2), 1 + rng.Intn(m.Height-2)}
		if accept(p) {
			return p, nil
		}
	}
	return NoPoint, ErrPlacementExhausted
}

// entryStep returns the interior cell next to the start door.
func (m *Map) entryStep() Point {
	if m.Entry == NoPoint {
		return NoPoint
	}
	for _, d := range cardinals {
		q := m.Entry.Add(d)
		if m.isCarvable(q) {
			return q
		}
	}
	return NoPoint
}
