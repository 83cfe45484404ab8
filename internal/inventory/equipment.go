package inventory

import (
	"rogue-engine/internal/entity"
	"rogue-engine/internal/id"
)

// slotForClass maps a non-ring item class to its single equipment slot.
var slotForClass = map[entity.ItemClass]entity.Slot{
	entity.ClassArmor:     entity.SlotBody,
	entity.ClassShield:    entity.SlotLeftHand,
	entity.ClassHelmet:    entity.SlotHead,
	entity.ClassGirdle:    entity.SlotGirdle,
	entity.ClassGauntlets: entity.SlotGauntlets,
	entity.ClassAmulet:    entity.SlotNeck,
	entity.ClassWeapon:    entity.SlotRightHand,
}

// Equip places item into its slot, unequipping any item already there first
// and returning the item id that was displaced (0 if none). Rings pick the
// first free ring slot; when both ring slots are full, equipping a third
// ring fails with ErrSlotFilled rather than unequipping both existing rings
// — the explicit resolution of spec.md §9's ring-swap Open Question (see
// DESIGN.md).
func Equip(c *entity.Creature, item *entity.Item) (id.ID, error) {
	if c.Equipment == nil {
		c.Equipment = &entity.Equipment{}
	}

	var slot entity.Slot
	if item.Class == entity.ClassRing {
		switch {
		case c.Equipment.Slots[entity.SlotRightRing] == 0:
			slot = entity.SlotRightRing
		case c.Equipment.Slots[entity.SlotLeftRing] == 0:
			slot = entity.SlotLeftRing
		default:
			return 0, ErrSlotFilled
		}
	} else if item.IsRangedWpn {
		slot = entity.SlotMissileWeapon
	} else {
		s, ok := slotForClass[item.Class]
		if !ok {
			return 0, ErrNotFound
		}
		slot = s
	}

	prev := c.Equipment.Slots[slot]
	c.Equipment.Slots[slot] = item.ID
	return prev, nil
}

// Unequip clears slot, returning the item id that was equipped there (0 if
// the slot was empty).
func Unequip(c *entity.Creature, slot entity.Slot) id.ID {
	if c.Equipment == nil {
		return 0
	}
	prev := c.Equipment.Slots[slot]
	c.Equipment.Slots[slot] = 0
	return prev
}

// SlotOf reports which slot currently holds itemID, if any.
func SlotOf(c *entity.Creature, itemID id.ID) (entity.Slot, bool) {
	if c.Equipment == nil {
		return 0, false
	}
	for s, v := range c.Equipment.Slots {
		if v == itemID {
			return entity.Slot(s), true
		}
	}
	return 0, false
}
