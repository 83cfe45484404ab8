package combat

import "rogue-engine/internal/entity"

// EquipmentBonus is the pre-summed equipment contribution to armor class,
// computed by the inventory package (best ring only, no stacking) and passed
// in here so combat stays independent of inventory's slot layout.
type EquipmentBonus struct {
	Body, Shield, Helm, BestRing int
}

func (e EquipmentBonus) total() int {
	return e.Body + e.Shield + e.Helm + e.BestRing
}

// RecomputeArmorClass applies spec.md §4.6: base_ac + dex_defensive_adj +
// equipment_bonus + buff_bonus. Idempotent: calling it twice with unchanged
// inputs yields the same result (it is a pure function of current state).
func RecomputeArmorClass(c *entity.Creature, equip EquipmentBonus) {
	dex := DexterityAdjustment(c.Abilities.DEX).DefensiveAdj
	c.Destructible.ArmorClass = c.Destructible.BaseArmorClass + dex + equip.total() + c.Buffs.ACBonus()
}
