package world

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmaze/internal/telemetry"
)

// sweep describes one of the four lighting directions.
type sweep struct {
	forward Point // direction the bands extend in
	side    Point // direction bands are offset in
	// corners holds, for the positive and negative side, the two diagonal
	// neighbours of a swept cell that lie toward the sweep axis.
	corners [2][2]Point
}

var sweeps = [4]sweep{
	newSweep(Point{0, -1}, Point{1, 0}),
	newSweep(Point{0, 1}, Point{1, 0}),
	newSweep(Point{-1, 0}, Point{0, 1}),
	newSweep(Point{1, 0}, Point{0, 1}),
}

func newSweep(forward, side Point) sweep {
	s := sweep{forward: forward, side: side}
	for i, sign := range [2]int{1, -1} {
		back := side.Scale(-sign)
		s.corners[i] = [2]Point{back.Add(forward), back.Add(forward.Scale(-1))}
	}
	return s
}

// Reveal copies ground-truth tiles into the known layer for every cell lit
// by a diamond of the given radius around the player, and returns how many
// cells were newly discovered. Cells are never hidden again. A radius of
// zero or less does nothing.
//
// Each direction is swept in bands offset sideways from the player; band j
// reaches radius-j cells forward. A band stops at the map edge, at a cell
// whose two diagonal neighbours toward the axis are both walls (from band 2
// on), and at a wall lying at the same depth as a wall already met in this
// direction. Band 0 stops at its first wall.
func Reveal(m *Map, radius int) int {
	if radius <= 0 || m == nil || m.Known == nil {
		return 0
	}
	n := 0
	for _, sw := range sweeps {
		n += m.revealSweep(sw, radius)
	}
	return n
}

func (m *Map) revealSweep(sw sweep, radius int) int {
	// Depths at which walls were met, per side.
	streaks := [2]mapset.Set[int]{mapset.New[int](), mapset.New[int]()}
	n := 0

	for band := 0; band <= radius; band++ {
		for side, sign := range [2]int{1, -1} {
			if band == 0 && side > 0 {
				break
			}
			origin := m.Player.Add(sw.side.Scale(sign * band))

			for depth := 0; depth <= radius-band; depth++ {
				p := origin.Add(sw.forward.Scale(depth))
				if !m.InBounds(p) {
					break
				}
				if band > 1 && m.cornerBlocked(p, sw.corners[side]) {
					break
				}

				t := m.Tile(p)
				if !m.IsRevealed(p) {
					m.Known.MustSet(p.X, p.Y, t)
					n++
				}
				if t != TileWall {
					continue
				}

				if band == 0 {
					streaks[0].Put(depth)
					streaks[1].Put(depth)
					break
				}
				if streaks[side].Has(depth) {
					break
				}
				streaks[side].Put(depth)
			}
		}
	}

	return n
}

func (m *Map) cornerBlocked(p Point, corners [2]Point) bool {
	return m.Tile(p.Add(corners[0])) == TileWall && m.Tile(p.Add(corners[1])) == TileWall
}

// RevealMap is the per-move entry point for fog of war. It fails only when the
// map has not been generated.
func RevealMap(ctx context.Context, m *Map, radius int) error {
	if m == nil {
		return ErrNilMap
	}
	if radius <= 0 {
		return nil
	}
	if m.Known == nil || m.Tiles == nil {
		return fmt.Errorf("%w: floor %d not generated", ErrInvalidDimensions, m.Floor)
	}

	_, span := telemetry.Tracer("world").Start(ctx, "floor.reveal")
	defer span.End()

	n := Reveal(m, radius)

	span.SetAttributes(
		attribute.Int("reveal.radius", radius),
		attribute.Int("reveal.new_tiles", n),
		attribute.Int("player.x", m.Player.X),
		attribute.Int("player.y", m.Player.Y),
	)
	return nil
}
