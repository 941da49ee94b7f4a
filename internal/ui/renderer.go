package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonmaze/internal/entity"
	"github.com/samdwyer/dungeonmaze/internal/gamedata"
	"github.com/samdwyer/dungeonmaze/internal/world"
)

// Message is a line of text for the message row. A zero Color draws white.
type Message struct {
	Text  string
	Color tcell.Color
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles *gamedata.TileStyleRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, styles *gamedata.TileStyleRegistry) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// Render draws what the player knows of the floor, the player on top, and
// a status line with the message below the map.
func (r *Renderer) Render(m *world.Map, player *entity.Player, msg Message) {
	r.screen.Clear()

	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			ts := r.styles.Lookup(m.KnownTile(world.Point{X: x, Y: y}))
			r.screen.SetContent(x, y, ts.Symbol, ts.Style)
		}
	}

	ps := r.styles.Lookup(world.TilePlayer)
	r.screen.SetContent(player.Pos.X, player.Pos.Y, ps.Symbol, ps.Style)

	r.RenderMessage(StatusLine(m, player), m.Height, tcell.ColorWhite)
	r.RenderMessage(msg.Text, m.Height+1, msg.Color)

	r.screen.Show()
}

// StatusLine summarises the floor number and the player's pools.
func StatusLine(m *world.Map, player *entity.Player) string {
	key := "-"
	if player.HasKey {
		key = "K"
	}
	return fmt.Sprintf("Floor %d  HP %d/%d  MP %d/%d  ST %d/%d  Key %s",
		m.Floor, player.HP, player.MaxHP, player.MP, player.MaxMP,
		player.Stamina, player.MaxStamina, key)
}

// RenderMessage displays a message at the given row in color fg.
func (r *Renderer) RenderMessage(msg string, y int, fg tcell.Color) {
	if fg == tcell.ColorDefault {
		fg = tcell.ColorWhite
	}
	style := tcell.StyleDefault.Foreground(fg)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
