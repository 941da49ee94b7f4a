package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revealedSet(m *Map) map[Point]bool {
	out := map[Point]bool{}
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if m.IsRevealed(Point{x, y}) {
				out[Point{x, y}] = true
			}
		}
	}
	return out
}

func TestRevealZeroRadius(t *testing.T) {
	m := generate(t, 5, DefaultWidth, DefaultHeight, true)

	require.NoError(t, RevealMap(context.Background(), m, 0))
	require.NoError(t, RevealMap(context.Background(), m, -3))

	assert.Empty(t, revealedSet(m))
}

func TestRevealMapErrors(t *testing.T) {
	assert.ErrorIs(t, RevealMap(context.Background(), nil, 3), ErrNilMap)
	assert.ErrorIs(t, RevealMap(context.Background(), NewMap(1, 13, 13, 1), 3), ErrInvalidDimensions)
	assert.NoError(t, RevealMap(context.Background(), NewMap(1, 13, 13, 1), 0))
}

func TestRevealIncludesPlayerCell(t *testing.T) {
	m := generate(t, 5, DefaultWidth, DefaultHeight, true)
	require.NoError(t, RevealMap(context.Background(), m, 1))

	assert.Equal(t, TileStartDoor, m.KnownTile(m.Player))
}

func TestRevealStaysInsideDiamond(t *testing.T) {
	m := openRoom(31, 31)
	m.Player = Point{15, 15}
	radius := 6

	n := Reveal(m, radius)

	revealed := revealedSet(m)
	assert.Len(t, revealed, n)
	for p := range revealed {
		d := abs(p.X-m.Player.X) + abs(p.Y-m.Player.Y)
		assert.LessOrEqual(t, d, radius, "cell %v outside the light", p)
	}
	// In an open room the whole diamond is lit.
	assert.Equal(t, 2*radius*radius+2*radius+1, n)
}

func TestRevealIsIdempotent(t *testing.T) {
	m := generate(t, 11, DefaultWidth, DefaultHeight, true)
	rng := rand.New(rand.NewSource(1))
	floors := m.Find(TileFloor)

	for i := 0; i < 25; i++ {
		m.Player = floors[rng.Intn(len(floors))]
		Reveal(m, 5)
		before := m.Known.Clone()

		assert.Zero(t, Reveal(m, 5), "second reveal at %v found new tiles", m.Player)
		assert.Equal(t, before.Cells(), m.Known.Cells())
	}
}

func TestRevealIsMonotonicAndMirrorsGroundTruth(t *testing.T) {
	m := generate(t, 21, DefaultWidth, DefaultHeight, true)
	rng := rand.New(rand.NewSource(2))
	seen := map[Point]bool{}

	for step := 0; step < 300; step++ {
		require.NoError(t, RevealMap(context.Background(), m, 4))

		now := revealedSet(m)
		for p := range seen {
			require.True(t, now[p], "step %d: %v went back to hidden", step, p)
		}
		for p := range now {
			require.Equal(t, m.Tile(p), m.KnownTile(p), "step %d: %v", step, p)
		}
		seen = now

		d := cardinals[rng.Intn(len(cardinals))]
		if next := m.Player.Add(d); m.Tile(next).IsPassable() {
			m.Player = next
		}
	}
}

func TestRevealCornerOcclusion(t *testing.T) {
	m := openRoom(13, 13)
	for _, p := range []Point{{7, 5}, {7, 6}, {7, 7}} {
		m.Tiles.MustSet(p.X, p.Y, TileWall)
	}
	m.Player = Point{6, 6}

	Reveal(m, 5)

	assert.Equal(t, TileWall, m.KnownTile(Point{7, 6}), "the wall itself is seen")
	assert.Equal(t, TileHidden, m.KnownTile(Point{8, 6}), "cell behind the corner must stay hidden")
}

func TestRevealWithoutCornerSeesThrough(t *testing.T) {
	m := openRoom(13, 13)
	m.Player = Point{6, 6}

	Reveal(m, 5)

	assert.Equal(t, TileFloor, m.KnownTile(Point{8, 6}))
}

func TestRevealWallStreak(t *testing.T) {
	// An L-shaped wall with its corner diagonal to the player encloses the
	// area up and to the right.
	m := openRoom(13, 13)
	for y := 1; y <= 5; y++ {
		m.Tiles.MustSet(7, y, TileWall)
	}
	for x := 7; x <= 11; x++ {
		m.Tiles.MustSet(x, 5, TileWall)
	}
	m.Player = Point{6, 6}

	Reveal(m, 5)

	for x := 8; x <= 11; x++ {
		for y := 1; y <= 4; y++ {
			assert.Equal(t, TileHidden, m.KnownTile(Point{x, y}), "(%d,%d) is behind the corner", x, y)
		}
	}
	assert.Equal(t, TileWall, m.KnownTile(Point{7, 5}))
	assert.Equal(t, TileWall, m.KnownTile(Point{8, 5}))
	assert.Equal(t, TileWall, m.KnownTile(Point{7, 4}))
	assert.Equal(t, TileFloor, m.KnownTile(Point{6, 1}))
}

func TestRevealStopsAtMapEdge(t *testing.T) {
	m := openRoom(13, 13)
	m.Player = Point{0, 6}
	m.Tiles.MustSet(0, 6, TileStartDoor)

	assert.NotPanics(t, func() { Reveal(m, 8) })
	assert.Equal(t, TileStartDoor, m.KnownTile(m.Player))
	assert.Equal(t, TileFloor, m.KnownTile(Point{1, 6}))
}
