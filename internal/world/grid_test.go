package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(5, 3, TileWall)

	tests := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{4, 2, true},
		{5, 0, false},
		{0, 3, false},
		{-1, 1, false},
		{2, -1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.in, g.InBounds(tt.x, tt.y), "InBounds(%d,%d)", tt.x, tt.y)
		_, ok := g.Get(tt.x, tt.y)
		assert.Equal(t, tt.in, ok, "Get(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.in, g.Set(tt.x, tt.y, TileFloor), "Set(%d,%d)", tt.x, tt.y)
	}
}

func TestGridColumnMajorStorage(t *testing.T) {
	g := NewGrid(4, 3, 0)
	g.MustSet(2, 1, 7)

	assert.Equal(t, 7, g.Cells()[2*3+1])
	assert.Equal(t, 7, g.MustGet(2, 1))
	assert.Len(t, g.Cells(), 12)
}

func TestGridMustPanicsOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, TileFloor)
	assert.Panics(t, func() { g.MustGet(3, 0) })
	assert.Panics(t, func() { g.MustSet(0, -1, TileWall) })
}

func TestGridClone(t *testing.T) {
	g := NewGrid(3, 3, TileFloor)
	c := g.Clone()
	c.MustSet(1, 1, TileWall)

	require.Equal(t, TileFloor, g.MustGet(1, 1))
	assert.Equal(t, TileWall, c.MustGet(1, 1))
}

func TestPointChebyshev(t *testing.T) {
	assert.Equal(t, 3, Point{1, 1}.Chebyshev(Point{4, 2}))
	assert.Equal(t, 2, Point{5, 5}.Chebyshev(Point{3, 6}))
	assert.Equal(t, 0, Point{2, 2}.Chebyshev(Point{2, 2}))
}

func TestTileIDsAreUnique(t *testing.T) {
	seen := map[string]Tile{}
	for _, tile := range AllTiles() {
		id := tile.ID()
		require.NotEmpty(t, id)
		prev, dup := seen[id]
		require.False(t, dup, "tiles %d and %d share id %q", prev, tile, id)
		seen[id] = tile
	}
	assert.Len(t, seen, 11)
	assert.Equal(t, "unknown", Tile(99).ID())
}

func TestTilePassability(t *testing.T) {
	assert.False(t, TileWall.IsPassable())
	assert.False(t, TileHidden.IsPassable())
	assert.True(t, TileFloor.IsPassable())
	assert.True(t, TileExitDoor.IsPassable())
	assert.True(t, TileEnemy.IsPassable())
	assert.False(t, Tile(42).IsPassable())
}
