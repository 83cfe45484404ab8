package registry

import (
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/id"
)

// InstantiateMonster builds a live entity.Creature at pos from a registry
// definition, mirroring the stat-block assignment original_source's monster
// factory does inline when it reads a JSON template.
func InstantiateMonster(gen *id.Generator, d MonsterDefinition, pos geom.Vec2) *entity.Creature {
	c := entity.NewCreature(gen, entity.Display{Glyph: d.Glyph, Name: d.Name, Color: d.Color}, pos)
	c.Abilities = entity.Abilities{STR: d.STR, DEX: d.DEX, CON: d.CON, INT: d.INT, WIS: d.WIS, CHA: d.CHA}
	c.Destructible = &entity.Destructible{
		HP: d.HP, HPMax: d.HP, HPBase: d.HP,
		Thac0: d.Thac0, ArmorClass: d.AC, BaseArmorClass: d.AC,
		CorpseName: d.CorpseName, XPAward: d.XPAward,
	}
	c.Attacker = &entity.Attacker{Min: d.DamageMin, Max: d.DamageMax, DamageType: d.DamageType}
	c.AI = d.AIKind
	return c
}

// InstantiateItem builds a floor/inventory entity.Item from a registry
// definition, mirroring the same field-by-field template expansion.
func InstantiateItem(gen *id.Generator, d ItemDefinition, pos geom.Vec2) *entity.Item {
	return &entity.Item{
		ID:          gen.Next(),
		Display:     entity.Display{Glyph: d.Glyph, Name: d.Name, Color: d.Color},
		Position:    pos,
		Class:       d.Class,
		ItemID:      d.ID,
		Value:       d.Value,
		Pickable:    d.Pickable,
		Nutrition:   d.Nutrition,
		HealAmount:  d.HealAmount,
		RangeTiles:  d.RangeTiles,
		Damage:      d.Damage,
		DurationTr:  d.DurationTr,
		GoldAmount:  d.GoldAmount,
		ACBonus:     d.ACBonus,
		WeaponMin:   d.WeaponMin,
		WeaponMax:   d.WeaponMax,
		IsRangedWpn: d.IsRangedWpn,
	}
}
