// Package entity provides the player character.
package entity

import "github.com/samdwyer/dungeonmaze/internal/world"

// Default starting stats.
const (
	DefaultMaxHP      = 30
	DefaultMaxMP      = 10
	DefaultMaxStamina = 20
	DefaultAttack     = 6
	DefaultDefense    = 1

	// FloorStaminaCost is spent each time the player leaves a floor.
	FloorStaminaCost = 5
)

// Player is the adventurer exploring the dungeon.
type Player struct {
	Pos world.Point

	HP, MaxHP           int
	MP, MaxMP           int
	Stamina, MaxStamina int
	Attack, Defense     int

	// HasKey is set while the player carries the current floor's key.
	HasKey bool
}

// NewPlayer creates a player with full resource pools at pos.
func NewPlayer(pos world.Point) *Player {
	return &Player{
		Pos:        pos,
		HP:         DefaultMaxHP,
		MaxHP:      DefaultMaxHP,
		MP:         DefaultMaxMP,
		MaxMP:      DefaultMaxMP,
		Stamina:    DefaultMaxStamina,
		MaxStamina: DefaultMaxStamina,
		Attack:     DefaultAttack,
		Defense:    DefaultDefense,
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.Pos = p.Pos.Add(world.Point{X: dx, Y: dy})
}

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, p.HP)
	p.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	return restore(&p.HP, p.MaxHP, amount)
}

// RestoreMP restores MP and returns actual amount restored.
func (p *Player) RestoreMP(amount int) int {
	return restore(&p.MP, p.MaxMP, amount)
}

// RestoreStamina restores stamina and returns actual amount restored.
func (p *Player) RestoreStamina(amount int) int {
	return restore(&p.Stamina, p.MaxStamina, amount)
}

// SpendStamina reduces stamina, never below zero, and returns false if the
// player did not have enough.
func (p *Player) SpendStamina(amount int) bool {
	if p.Stamina < amount {
		p.Stamina = 0
		return false
	}
	p.Stamina -= amount
	return true
}

func restore(pool *int, limit, amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, limit-*pool)
	*pool += actual
	return actual
}
