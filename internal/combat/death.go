package combat

import (
	"rogue-engine/internal/entity"
	"rogue-engine/internal/id"
)

// DeathResult reports what Die produced, for the caller to splice into the
// world's floor inventory / message log / player xp total.
type DeathResult struct {
	Corpse      *entity.Item
	XPAward     int
	PlayerLevel bool // true if the xp award pushed the player across a level threshold
}

// xpForLevel is the cumulative XP at which a creature of the given level
// advances to the next one; level-up is "player xp crosses the next
// threshold", a coarse AD&D-flavored curve.
func xpForLevel(level int) int {
	return level * level * 500
}

// Die produces a corpse item (display '%', CorpseFood pickable with 0
// nutrition to be rolled later) per spec.md §4.5, and reports the xp award
// for the killer. Every dead creature with a Destructible leaves a corpse;
// the xp award is skipped when killer is nil or has no display name.
func Die(dead *entity.Creature, killer *entity.Creature, gen *id.Generator) DeathResult {
	res := DeathResult{}
	if dead.Destructible == nil {
		return res
	}

	if killer != nil && killer.Display.Name != "" {
		killer.XP += dead.Destructible.XPAward
		res.XPAward = dead.Destructible.XPAward
		before := killer.Level
		for xpForLevel(killer.Level) <= killer.XP {
			killer.Level++
		}
		res.PlayerLevel = killer.Level > before
	}

	res.Corpse = &entity.Item{
		ID:       gen.Next(),
		Display:  entity.Display{Glyph: "%", Name: dead.Destructible.CorpseName, Color: dead.Display.Color},
		Class:    entity.ClassFood,
		ItemID:   "corpse",
		Pickable: entity.PickableCorpseFood,
		Position: dead.Position,
	}
	return res
}
