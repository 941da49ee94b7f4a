// Package save persists dungeon floors.
//
// A floor is stored as a flat sequence of big-endian int32 values: floor,
// width, height, enemy count, exit unlocked (0 or 1), entry x and y, exit x
// and y, player x and y, then width*height ground-truth tile codes followed
// by width*height known tile codes, both in grid storage order.
package save

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/samdwyer/dungeonmaze/internal/world"
)

var (
	// ErrCorrupt is returned when a blob does not decode to a valid floor.
	ErrCorrupt = errors.New("save: corrupt floor data")
	// ErrNotFound is returned when a slot holds no save.
	ErrNotFound = errors.New("save: slot not found")
)

const (
	headerFields = 11
	fieldSize    = 4

	// maxDimension bounds the width and height a blob may declare.
	maxDimension = 4095
)

// Encode serializes m into the persisted layout.
func Encode(m *world.Map) []byte {
	cells := m.Width * m.Height
	buf := make([]byte, 0, (headerFields+2*cells)*fieldSize)

	put := func(v int) {
		buf = binary.BigEndian.AppendUint32(buf, uint32(int32(v)))
	}

	put(m.Floor)
	put(m.Width)
	put(m.Height)
	put(m.EnemyCount)
	if m.ExitUnlocked {
		put(1)
	} else {
		put(0)
	}
	for _, p := range []world.Point{m.Entry, m.Exit, m.Player} {
		put(p.X)
		put(p.Y)
	}
	for _, t := range m.Tiles.Cells() {
		put(int(t))
	}
	for _, t := range m.Known.Cells() {
		put(int(t))
	}

	return buf
}

// Decode parses a blob produced by Encode.
func Decode(data []byte) (*world.Map, error) {
	if len(data) < headerFields*fieldSize || len(data)%fieldSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorrupt, len(data))
	}

	pos := 0
	next := func() int {
		v := int(int32(binary.BigEndian.Uint32(data[pos:])))
		pos += fieldSize
		return v
	}

	m := &world.Map{}
	m.Floor = next()
	m.Width = next()
	m.Height = next()
	m.EnemyCount = next()
	switch next() {
	case 0:
	case 1:
		m.ExitUnlocked = true
	default:
		return nil, fmt.Errorf("%w: bad exit flag", ErrCorrupt)
	}
	m.Entry = world.Point{X: next(), Y: next()}
	m.Exit = world.Point{X: next(), Y: next()}
	m.Player = world.Point{X: next(), Y: next()}

	if m.Width < world.MinDimension || m.Height < world.MinDimension ||
		m.Width > maxDimension || m.Height > maxDimension {
		return nil, fmt.Errorf("%w: size %dx%d", ErrCorrupt, m.Width, m.Height)
	}
	cells := m.Width * m.Height
	if want := (headerFields + 2*cells) * fieldSize; len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrCorrupt, len(data), want)
	}

	m.Tiles = world.NewGrid(m.Width, m.Height, world.TileWall)
	m.Known = world.NewGrid(m.Width, m.Height, world.TileHidden)
	if err := readTiles(m.Tiles.Cells(), next, false); err != nil {
		return nil, err
	}
	if err := readTiles(m.Known.Cells(), next, true); err != nil {
		return nil, err
	}

	for _, p := range []world.Point{m.Entry, m.Player} {
		if !m.InBounds(p) {
			return nil, fmt.Errorf("%w: position %v off the map", ErrCorrupt, p)
		}
	}
	if m.Exit != world.NoPoint && !m.InBounds(m.Exit) {
		return nil, fmt.Errorf("%w: exit %v off the map", ErrCorrupt, m.Exit)
	}
	return m, nil
}

func readTiles(dst []world.Tile, next func() int, allowHidden bool) error {
	for i := range dst {
		t := world.Tile(next())
		if !t.Valid() || (t == world.TileHidden && !allowHidden) {
			return fmt.Errorf("%w: tile code %d at %d", ErrCorrupt, int(t), i)
		}
		dst[i] = t
	}
	return nil
}
