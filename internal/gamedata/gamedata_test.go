package gamedata

import (
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonmaze/internal/world"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies(nil)
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 3 {
		t.Errorf("Expected 3 enemies, got %d", len(enemies))
	}

	expectedIDs := map[string]bool{"goblin": false, "orc": false, "skeleton": false}
	for _, e := range enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry(nil)
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	// Every definition is reachable through weighted spawning.
	seen := map[string]bool{}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		seen[registry.SpawnRandom(rng).ID] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected all 3 enemy types to spawn, got %v", seen)
	}

	// Weighted spawning is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		a, b := registry.SpawnRandom(rng1).ID, registry.SpawnRandom(rng2).ID
		if a != b {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestEnemyRegistryEmptyFile(t *testing.T) {
	fsys := fstest.MapFS{"enemies.json": {Data: []byte(`{"enemies": []}`)}}
	_, err := LoadEnemyRegistry(fsys)
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, err := ParseHexColor("#FF8000")
	require.NoError(t, err)
	r, g, b := c.RGB()
	assert.Equal(t, []int32{255, 128, 0}, []int32{r, g, b})
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{ID: "test", Glyph: "T", Color: "#FF0000"}

	assert.Equal(t, 'T', def.GlyphRune())
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), def.TCellColor())

	bad := EnemyDef{Color: "nope"}
	assert.Equal(t, '?', bad.GlyphRune())
	assert.Equal(t, tcell.ColorWhite, bad.TCellColor())
}

func TestTileStyleRegistryCoversEveryTile(t *testing.T) {
	registry, err := LoadTileStyleRegistry(nil)
	require.NoError(t, err)

	symbols := map[rune]world.Tile{}
	for _, tile := range world.AllTiles() {
		style := registry.Lookup(tile)
		assert.NotEmpty(t, style.Name, "%s", tile)
		if prev, dup := symbols[style.Symbol]; dup {
			t.Errorf("tiles %s and %s share symbol %q", prev, tile, style.Symbol)
		}
		symbols[style.Symbol] = tile
	}

	assert.Equal(t, '#', registry.Lookup(world.TileWall).Symbol)
	assert.Equal(t, registry.Lookup(world.TileHidden), registry.Lookup(world.Tile(77)))
}

func TestTileStyleRegistryRejectsIncompleteTable(t *testing.T) {
	defs := []TileStyleDef{{ID: "wall", Name: "Wall", Symbol: "#", FG: "#FFFFFF", BG: "#000000"}}
	_, err := NewTileStyleRegistry(defs)
	assert.ErrorContains(t, err, "missing tile style")
}

func TestTileStyleRegistryRejectsBadEntries(t *testing.T) {
	file, err := LoadFS[TilesFile](Source(nil), "tiles.json")
	require.NoError(t, err)

	dup := append([]TileStyleDef{}, file.Tiles...)
	dup = append(dup, file.Tiles[0])
	_, err = NewTileStyleRegistry(dup)
	assert.ErrorContains(t, err, "duplicate")

	wide := append([]TileStyleDef{}, file.Tiles...)
	wide[1].Symbol = ".."
	_, err = NewTileStyleRegistry(wide)
	assert.ErrorContains(t, err, "one character")

	color := append([]TileStyleDef{}, file.Tiles...)
	color[2].FG = "#12"
	_, err = NewTileStyleRegistry(color)
	assert.Error(t, err)
}

func TestLoadFromOverrideFS(t *testing.T) {
	fsys := fstest.MapFS{"enemies.json": {Data: []byte(
		`{"enemies": [{"id": "rat", "name": "Rat", "glyph": "r", "color": "#AAAAAA", "attack": 1, "spawnWeight": 1}]}`)}}

	registry, err := LoadEnemyRegistry(fsys)
	require.NoError(t, err)
	assert.Equal(t, "Rat", registry.SpawnRandom(rand.New(rand.NewSource(1))).Name)

	_, err = LoadTileStyleRegistry(fsys)
	assert.Error(t, err, "tiles.json is missing from the override")
}
