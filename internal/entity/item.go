package entity

import (
	"rogue-engine/internal/geom"
	"rogue-engine/internal/id"
)

// ItemClass enumerates spec.md §3's item_class values.
type ItemClass int

const (
	ClassPotion ItemClass = iota
	ClassScroll
	ClassWeapon
	ClassArmor
	ClassFood
	ClassGold
	ClassRing
	ClassHelmet
	ClassShield
	ClassGirdle
	ClassGauntlets
	ClassAmulet
	ClassMisc
)

// PickableKind tags which effect an item grants when used/picked up,
// replacing the C++ Pickable unique_ptr hierarchy with a sum type.
type PickableKind int

const (
	PickableNone PickableKind = iota
	PickableHealer
	PickableLightningBolt
	PickableFireball
	PickableConfusion
	PickableTeleport
	PickableCorpseFood
	PickableFood
	PickableGold
	PickableWeapon
	PickableArmor
	PickableMagicalHelm
	PickableMagicalRing
	PickableStatBoost
	PickableAmulet
)

// Enhancement is an optional prefix/suffix modifier on an item.
type Enhancement struct {
	Prefix string
	Suffix string
	Bonus  int
}

// Item is a pickable/equippable object, owned either by a creature's
// inventory or by the floor's shared inventory (keyed by Position).
type Item struct {
	ID       id.ID
	Display  Display
	Position geom.Vec2 // meaningful only while the item sits on the floor
	Class    ItemClass
	ItemID   string // registry key, e.g. "dagger", "potion_healing"
	Value    int
	Enhance  *Enhancement
	Pickable PickableKind

	// Pickable-specific parameters, populated per Pickable kind.
	Nutrition   int
	HealAmount  int
	RangeTiles  int
	Damage      int
	DurationTr  int
	GoldAmount  int
	ACBonus     int
	WeaponMin   int
	WeaponMax   int
	IsRangedWpn bool
}

// EffectiveValue returns the item's base value plus ten per point of its
// enhancement bonus (used by shop pricing), never below zero.
func (it *Item) EffectiveValue() int {
	v := it.Value
	if it.Enhance != nil {
		v += it.Enhance.Bonus * 10
	}
	if v < 0 {
		return 0
	}
	return v
}
