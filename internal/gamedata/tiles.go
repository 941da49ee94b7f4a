package gamedata

import (
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonmaze/internal/world"
)

// TileStyleDef is one entry of the tile lookup table.
type TileStyleDef struct {
	ID     string `json:"id"`     // Matches world.Tile.ID()
	Name   string `json:"name"`   // Display name for status messages
	Symbol string `json:"symbol"` // Single character for rendering
	FG     string `json:"fg"`     // Foreground hex color
	BG     string `json:"bg"`     // Background hex color
	Bold   bool   `json:"bold,omitempty"`
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileStyleDef `json:"tiles"`
}

// TileStyle is a resolved lookup table entry ready for drawing.
type TileStyle struct {
	Name   string
	Symbol rune
	Style  tcell.Style
}

// TileStyleRegistry maps every world tile to its symbol and colors. It is
// built once at startup and shared read-only.
type TileStyleRegistry struct {
	styles map[world.Tile]TileStyle
}

// NewTileStyleRegistry resolves definitions into styles. Every world tile
// must have exactly one entry.
func NewTileStyleRegistry(defs []TileStyleDef) (*TileStyleRegistry, error) {
	byID := make(map[string]TileStyleDef, len(defs))
	for _, d := range defs {
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate tile style %q", d.ID)
		}
		byID[d.ID] = d
	}

	r := &TileStyleRegistry{styles: make(map[world.Tile]TileStyle, len(defs))}
	for _, t := range world.AllTiles() {
		d, ok := byID[t.ID()]
		if !ok {
			return nil, fmt.Errorf("missing tile style for %q", t.ID())
		}
		style, err := d.resolve()
		if err != nil {
			return nil, fmt.Errorf("tile style %q: %w", d.ID, err)
		}
		r.styles[t] = style
	}
	return r, nil
}

func (d TileStyleDef) resolve() (TileStyle, error) {
	runes := []rune(d.Symbol)
	if len(runes) != 1 {
		return TileStyle{}, fmt.Errorf("symbol %q must be one character", d.Symbol)
	}
	fg, err := ParseHexColor(d.FG)
	if err != nil {
		return TileStyle{}, err
	}
	bg, err := ParseHexColor(d.BG)
	if err != nil {
		return TileStyle{}, err
	}
	return TileStyle{
		Name:   d.Name,
		Symbol: runes[0],
		Style:  tcell.StyleDefault.Foreground(fg).Background(bg).Bold(d.Bold),
	}, nil
}

// LoadTileStyleRegistry loads tiles.json from fsys (nil for the embedded
// data) and builds the lookup table.
func LoadTileStyleRegistry(fsys fs.FS) (*TileStyleRegistry, error) {
	file, err := LoadFS[TilesFile](Source(fsys), "tiles.json")
	if err != nil {
		return nil, err
	}
	return NewTileStyleRegistry(file.Tiles)
}

// Lookup returns the style for t. Unknown tiles fall back to the hidden style.
func (r *TileStyleRegistry) Lookup(t world.Tile) TileStyle {
	if s, ok := r.styles[t]; ok {
		return s
	}
	return r.styles[world.TileHidden]
}
