package ai

import (
	"rogue-engine/internal/buff"
	"rogue-engine/internal/entity"
)

// Mimic AI constants, ported verbatim from the private constexpr block in
// original_source/src/Ai/AiMimic.h (the class that implements
// AiMimic::update/consume_nearby_items/check_revealing/
// transform_to_greater_mimic, all present in full at
// original_source/src/Ai/AiMimic.cpp).
const (
	DisguiseChangeRate       = 200 // DISGUISE_CHANGE_RATE
	ConsumptionCooldownTurns = 3   // CONSUMPTION_COOLDOWN_TURNS
	ConsumptionRadius        = 1   // CONSUMPTION_RADIUS
	MaxConfusionDuration     = 5   // MAX_CONFUSION_DURATION
	MaxGoldDRBonus           = 2   // MAX_GOLD_DR_BONUS
	MaxWeaponDamage          = 6   // MAX_WEAPON_DAMAGE
	MaxArmorDRBonus          = 3   // MAX_ARMOR_DR_BONUS
	ItemsForTransformation   = 5   // ITEMS_FOR_TRANSFORMATION
	HealthBonus              = 1   // HEALTH_BONUS
	DRBonus                  = 1   // DR_BONUS
	ConfusionBonus           = 1   // CONFUSION_BONUS
	RevealDistance           = 1   // revealDistance's default
	defaultConfusionDuration = 3   // confusionDuration's default
)

// MimicPhase is the disguise/reveal/attack state machine described in
// spec.md §4.9 and original_source/src/Ai/AiMimic.cpp.
type MimicPhase int

const (
	MimicDisguised MimicPhase = iota
	MimicRevealed
)

// MimicState tracks the disguise/reveal transition, item-consumption
// bookkeeping, and greater-mimic transform progress, mirroring
// AiMimic's serialized runtime fields (disguiseChangeCounter,
// consumptionCooldown, confusionDuration, itemsConsumed).
type MimicState struct {
	Phase MimicPhase
	Melee MeleeState

	DisguiseCounter     int
	ConsumptionCooldown int
	ConfusionDuration   int
	ItemsConsumed       int
	IsGreater           bool
}

// UpdateMimic runs AiMimic::update: while disguised it advances its
// DisguiseCounter (wrapping at DisguiseChangeRate; the displayed disguise
// itself does not change) and checks whether the player has come close
// enough to reveal;
// once revealed it tries to consume a nearby item each turn (forfeiting
// movement that turn if it does), falling back to melee tracking otherwise.
func UpdateMimic(owner *entity.Creature, st *MimicState, env Env) {
	if owner.IsDead() {
		return
	}
	if st.ConfusionDuration < 1 {
		st.ConfusionDuration = defaultConfusionDuration
	}

	if st.Phase == MimicDisguised {
		st.DisguiseCounter++
		if st.DisguiseCounter >= DisguiseChangeRate {
			st.DisguiseCounter = 0
		}
		checkRevealing(owner, st, env)
		return
	}

	if consumeNearbyItem(owner, st, env) {
		return
	}
	UpdateMelee(owner, &st.Melee, env)
}

// checkRevealing ports AiMimic::check_revealing: once the player is within
// RevealDistance tiles the mimic reveals permanently and rolls a d20 against
// the player's WIS to land a confusion effect, lasting ConfusionDuration
// turns (grown by consumed scrolls, see applyItemBonus).
func checkRevealing(owner *entity.Creature, st *MimicState, env Env) {
	if owner.TileDistance(env.Player.Position) > RevealDistance {
		return
	}
	st.Phase = MimicRevealed
	st.Melee.MoveCount = TrackingTurns

	if env.Dice.D20() > env.Player.Abilities.WIS {
		env.Player.Buffs.Add(buff.Buff{Type: buff.Confusion, Value: 1, TurnsRemaining: st.ConfusionDuration})
		env.Player.States.Add(entity.IsConfused)
	}
}

// consumeNearbyItem ports AiMimic::consume_nearby_items: gated by
// ConsumptionCooldownTurns, it eats the first floor item within
// ConsumptionRadius tiles, applies that item class's bonus, and checks for
// the greater-mimic transform. Returns whether an item was consumed (which
// consumes the mimic's action for the turn, per the original's
// itemConsumed-suppresses-movement branch).
func consumeNearbyItem(owner *entity.Creature, st *MimicState, env Env) bool {
	if env.FloorItems == nil {
		return false
	}
	st.ConsumptionCooldown++
	if st.ConsumptionCooldown < ConsumptionCooldownTurns {
		return false
	}
	st.ConsumptionCooldown = 0

	items := *env.FloorItems
	for i, it := range items {
		if it == nil || owner.TileDistance(it.Position) > ConsumptionRadius {
			continue
		}
		applyItemBonus(owner, st, it.Class)
		st.ItemsConsumed++
		if st.ItemsConsumed >= ItemsForTransformation {
			transformToGreaterMimic(owner, st)
		}
		*env.FloorItems = append(items[:i:i], items[i+1:]...)
		return true
	}
	return false
}

// applyItemBonus ports AiMimic::apply_item_bonus's data-driven item-class ->
// bonus mapping.
func applyItemBonus(owner *entity.Creature, st *MimicState, class entity.ItemClass) {
	switch class {
	case entity.ClassPotion, entity.ClassFood:
		boostHealth(owner)
	case entity.ClassScroll:
		boostConfusionPower(st)
	case entity.ClassGold:
		boostDefense(owner, MaxGoldDRBonus)
	case entity.ClassArmor:
		boostDefense(owner, MaxArmorDRBonus)
	case entity.ClassWeapon:
		boostAttack(owner)
	}
}

func boostHealth(owner *entity.Creature) {
	if owner.Destructible == nil {
		return
	}
	owner.Destructible.HPMax += HealthBonus
	owner.Destructible.HP += HealthBonus
	owner.Destructible.Clamp()
}

func boostDefense(owner *entity.Creature, maxDR int) {
	if owner.Destructible == nil || owner.Destructible.DamageReduction >= maxDR {
		return
	}
	owner.Destructible.DamageReduction += DRBonus
}

func boostAttack(owner *entity.Creature) {
	if owner.Attacker == nil || owner.Attacker.Max >= MaxWeaponDamage {
		return
	}
	owner.Attacker.Max++
}

func boostConfusionPower(st *MimicState) {
	st.ConfusionDuration += ConfusionBonus
	if st.ConfusionDuration > MaxConfusionDuration {
		st.ConfusionDuration = MaxConfusionDuration
	}
}

// transformToGreaterMimic ports AiMimic::transform_to_greater_mimic.
func transformToGreaterMimic(owner *entity.Creature, st *MimicState) {
	st.IsGreater = true
	owner.Display.Name = "greater mimic"
	owner.Display.Glyph = "W"
}

// IsDisguised reports whether owner should currently render as its item
// disguise rather than a creature glyph.
func (st *MimicState) IsDisguised() bool {
	return st.Phase == MimicDisguised
}
