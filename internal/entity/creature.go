package entity

import (
	"rogue-engine/internal/buff"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/id"
)

// AIKind tags which behavior variant drives a creature, replacing the C++
// Ai unique_ptr hierarchy with a discriminated sum type per spec.md §9.
type AIKind int

const (
	AINone AIKind = iota
	AIPlayer
	AIMelee
	AIRanged
	AIShopkeeper
	AISpider
	AIWebSpinner
	AIMimic
)

// Display bundles the glyph/name/color a renderer needs; the core never
// draws, it only reports these fields per spec.md §1.
type Display struct {
	Glyph string
	Name  string
	Color int
}

// Creature is a tagged-union entity: every owned sub-component is an
// optional pointer, replacing the C++ unique_ptr<Ai>/<Destructible>/... tree.
type Creature struct {
	ID       id.ID
	Display  Display
	Position geom.Vec2

	Abilities Abilities
	Level     int
	XP        int
	Gold      int
	Gender    string

	States StateSet

	Destructible *Destructible
	Attacker     *Attacker
	AI           AIKind
	Inventory    *Inventory

	Buffs buff.List

	// Player-only fields; nil/zero for monsters.
	MemorizedSpells []string
	Equipment       *Equipment
}

func NewCreature(gen *id.Generator, display Display, pos geom.Vec2) *Creature {
	return &Creature{
		ID:       gen.Next(),
		Display:  display,
		Position: pos,
		States:   NewStateSet(),
	}
}

func (c *Creature) IsDead() bool {
	return c.Destructible != nil && c.Destructible.IsDead()
}

func (c *Creature) CanSwim() bool { return c.States.Has(CanSwim) }

// TileDistance is the Chebyshev distance used throughout combat/AI range
// checks, per spec.md §3.
func (c *Creature) TileDistance(pos geom.Vec2) int {
	return c.Position.Chebyshev(pos)
}

// SyncRangedState scans equipped items and keeps IS_RANGED in sync, per
// spec.md §4.13 ("synced after every equip change by scanning all equipped
// items").
func (c *Creature) SyncRangedState(equippedIsRanged func(itemID id.ID) bool) {
	if c.Equipment == nil {
		c.States.Remove(IsRanged)
		return
	}
	for _, itemID := range c.Equipment.Slots {
		if itemID != 0 && equippedIsRanged(itemID) {
			c.States.Add(IsRanged)
			return
		}
	}
	c.States.Remove(IsRanged)
}
