// Package world provides dungeon floor generation and fog-of-war tracking.
package world

// Tile represents a single map tile. The numeric values are persisted in
// save files and must not be reordered.
type Tile int32

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = iota
	// TileFloor represents a passable floor tile.
	TileFloor
	// TileStartDoor is the boundary door the player enters through.
	TileStartDoor
	// TileExitDoor is the boundary door that leads to the next floor.
	TileExitDoor
	// TileDoorKey unlocks the exit door.
	TileDoorKey
	TileLifeFountain
	TileManaFountain
	TileStaminaFountain
	// TilePlayer is only used for rendering the player's own cell.
	TilePlayer
	TileEnemy
	// TileHidden marks an undiscovered cell in the known layer. It never
	// appears in the ground-truth layer.
	TileHidden

	tileCount
)

var tileIDs = [tileCount]string{
	TileWall:            "wall",
	TileFloor:           "floor",
	TileStartDoor:       "start_door",
	TileExitDoor:        "exit_door",
	TileDoorKey:         "door_key",
	TileLifeFountain:    "life_fountain",
	TileManaFountain:    "mana_fountain",
	TileStaminaFountain: "stamina_fountain",
	TilePlayer:          "player",
	TileEnemy:           "enemy",
	TileHidden:          "hidden",
}

// AllTiles returns every tile variant in code order.
func AllTiles() []Tile {
	tiles := make([]Tile, 0, tileCount)
	for t := Tile(0); t < tileCount; t++ {
		tiles = append(tiles, t)
	}
	return tiles
}

// Valid reports whether t is a known tile code.
func (t Tile) Valid() bool {
	return t >= 0 && t < tileCount
}

// ID returns the stable identifier used by the tile lookup table.
func (t Tile) ID() string {
	if !t.Valid() {
		return "unknown"
	}
	return tileIDs[t]
}

// String returns the tile identifier.
func (t Tile) String() string {
	return t.ID()
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall && t != TileHidden && t.Valid()
}

// IsPickup reports whether stepping on the tile consumes it.
func (t Tile) IsPickup() bool {
	switch t {
	case TileDoorKey, TileLifeFountain, TileManaFountain, TileStaminaFountain, TileEnemy:
		return true
	default:
		return false
	}
}
