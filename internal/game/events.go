package game

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonmaze/internal/entity"
	"github.com/samdwyer/dungeonmaze/internal/gamedata"
	"github.com/samdwyer/dungeonmaze/internal/world"
)

// EventKind identifies what happened when the player entered a tile.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventLifeFountain
	EventManaFountain
	EventStaminaFountain
	EventEnemy
	EventExitBlocked
	EventExitUnlocked
	EventEscaped
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventKey:
		return "key"
	case EventLifeFountain:
		return "life_fountain"
	case EventManaFountain:
		return "mana_fountain"
	case EventStaminaFountain:
		return "stamina_fountain"
	case EventEnemy:
		return "enemy"
	case EventExitBlocked:
		return "exit_blocked"
	case EventExitUnlocked:
		return "exit_unlocked"
	case EventEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Event is the outcome of entering a tile.
type Event struct {
	Kind EventKind
	// Amount is the damage taken or the pool restored.
	Amount int
	// Enemy names the enemy met in an encounter, drawn with Glyph and Color.
	Enemy string
	Glyph rune
	Color tcell.Color

	Message string
}

// Blocked reports whether the player must stay where they are.
func (e Event) Blocked() bool {
	return e.Kind == EventExitBlocked
}

// ConsumeTile applies the effect of the player entering p. Pickups and
// enemies are turned into floor. The caller moves the player unless the
// event is blocked.
func ConsumeTile(m *world.Map, p world.Point, player *entity.Player, enemies *gamedata.EnemyRegistry, rng *rand.Rand) Event {
	switch t := m.Tile(p); t {
	case world.TileDoorKey:
		m.Consume(p)
		player.HasKey = true
		return Event{Kind: EventKey, Message: "You pick up the key."}

	case world.TileLifeFountain:
		m.Consume(p)
		n := player.Heal(player.MaxHP)
		return Event{Kind: EventLifeFountain, Amount: n, Message: fmt.Sprintf("The fountain restores %d HP.", n)}

	case world.TileManaFountain:
		m.Consume(p)
		n := player.RestoreMP(player.MaxMP)
		return Event{Kind: EventManaFountain, Amount: n, Message: fmt.Sprintf("The fountain restores %d MP.", n)}

	case world.TileStaminaFountain:
		m.Consume(p)
		n := player.RestoreStamina(player.MaxStamina)
		return Event{Kind: EventStaminaFountain, Amount: n, Message: fmt.Sprintf("The fountain restores %d stamina.", n)}

	case world.TileEnemy:
		m.Consume(p)
		return encounter(player, enemies, rng)

	case world.TileExitDoor:
		if m.ExitUnlocked {
			return Event{Kind: EventExitUnlocked, Message: "You descend."}
		}
		if !player.HasKey {
			return Event{Kind: EventExitBlocked, Message: "The exit is locked."}
		}
		player.HasKey = false
		m.ExitUnlocked = true
		return Event{Kind: EventExitUnlocked, Message: "You unlock the exit and descend."}

	case world.TileStartDoor:
		if m.Exit == world.NoPoint {
			return Event{Kind: EventEscaped, Message: "You escape the dungeon!"}
		}
		return Event{Kind: EventNone}

	default:
		return Event{Kind: EventNone}
	}
}

// encounter fights the enemy met on the tile to the finish. The player
// strikes first for attack minus the enemy's defense; the enemy answers
// each strike it survives with its attack minus the player's defense.
// Every blow deals at least 1.
func encounter(player *entity.Player, enemies *gamedata.EnemyRegistry, rng *rand.Rand) Event {
	def := &gamedata.EnemyDef{Name: "Monster", Glyph: "?", HP: 1, Attack: 1}
	if enemies != nil {
		if d := enemies.SpawnRandom(rng); d != nil {
			def = d
		}
	}

	strike := max(1, player.Attack-def.Defense)
	answer := max(1, def.Attack-player.Defense)

	hp, taken := def.HP, 0
	for hp > 0 && player.IsAlive() {
		hp -= strike
		if hp > 0 {
			taken += player.TakeDamage(answer)
		}
	}

	ev := Event{
		Kind:   EventEnemy,
		Amount: taken,
		Enemy:  def.Name,
		Glyph:  def.GlyphRune(),
		Color:  def.TCellColor(),
	}
	if player.IsAlive() {
		ev.Message = fmt.Sprintf("%c You slay the %s, taking %d damage.", ev.Glyph, def.Name, taken)
	} else {
		ev.Message = fmt.Sprintf("%c The %s strikes you down.", ev.Glyph, def.Name)
	}
	return ev
}
