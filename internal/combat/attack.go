// Package combat resolves THAC0 attacks and armor class aggregation,
// grounded on original_source/src/Actor/Attacker.cpp and Destructible.cpp.
package combat

import (
	"rogue-engine/internal/dice"
	"rogue-engine/internal/entity"
)

// Outcome describes what happened on an attack attempt, for the caller to
// turn into a message-log entry (the core never formats UI strings itself
// beyond plain data, per spec.md §1's renderer boundary).
type Outcome int

const (
	OutcomeInVain Outcome = iota // attacker has 0 strength, or target already dead
	OutcomeTradeRedirect          // target is a shopkeeper and attacker isn't ranged
	OutcomeMiss
	OutcomeNoEffect // hit, but damage <= 0 after reductions
	OutcomeHit
)

// AttackResult is the structured outcome of one Attack call.
type AttackResult struct {
	Outcome  Outcome
	ToHit    int
	Needed   int
	Damage   int
}

// Attack resolves a to-hit and damage roll from attacker against target,
// following spec.md §4.4 step by step.
func Attack(attacker, target *entity.Creature, d *dice.Dice) AttackResult {
	if target.AI == entity.AIShopkeeper && !attacker.States.Has(entity.IsRanged) {
		return AttackResult{Outcome: OutcomeTradeRedirect}
	}

	if target.IsDead() || attacker.Abilities.STR <= 0 {
		return AttackResult{Outcome: OutcomeInVain}
	}

	roll := d.D20()
	needed := attacker.Destructible.Thac0 - target.Destructible.ArmorClass

	strength := StrengthAdjustment(attacker.Abilities.STR)
	hitBonus := strength.HitAdj
	if attacker.States.Has(entity.IsRanged) {
		hitBonus = DexterityAdjustment(attacker.Abilities.DEX).MissileAttackAdj
	}
	hitBonus += attacker.Buffs.HitModifier()
	needed -= hitBonus

	autoMiss := roll == 1
	autoHit := roll == 20
	hit := autoHit || (!autoMiss && roll >= needed)

	res := AttackResult{ToHit: roll, Needed: needed}
	if !hit {
		res.Outcome = OutcomeMiss
		return res
	}

	dmg := d.Roll(attacker.Attacker.Min, attacker.Attacker.Max)
	dmg += strength.DmgAdj
	dmg -= target.Destructible.DamageReduction
	if dmg <= 0 {
		res.Outcome = OutcomeNoEffect
		return res
	}

	actual := TakeDamage(target, dmg, attacker.Attacker.DamageType)
	res.Outcome = OutcomeHit
	res.Damage = actual

	if attacker.States.Has(entity.IsInvisible) {
		for _, st := range attacker.Buffs.RemoveBrokenByAttacking() {
			attacker.States.Remove(st)
		}
	} else {
		attacker.Buffs.RemoveBrokenByAttacking()
	}

	return res
}

// TakeDamage applies raw damage to target per spec.md §4.5: resistance,
// then temp_hp absorption, then real hp, clamping hp at 0. It returns the
// damage dealt to real hp; death is left to the caller (see Die).
func TakeDamage(target *entity.Creature, raw int, dt entity.DamageType) int {
	if raw <= 0 {
		return 0
	}
	d := target.Destructible

	resistPct := target.Buffs.ResistancePct(dt)
	remaining := raw - (raw * resistPct / 100)
	if remaining < 0 {
		remaining = 0
	}

	absorbed := remaining
	if d.TempHP < absorbed {
		absorbed = d.TempHP
	}
	d.TempHP -= absorbed
	remaining -= absorbed

	dealtToHP := remaining
	d.HP -= remaining
	if d.HP <= 0 {
		d.HP = 0
	}
	d.Clamp()
	return dealtToHP
}
