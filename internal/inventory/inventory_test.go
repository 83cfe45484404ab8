package inventory

import (
	"testing"

	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/id"
)

func TestAddFiresEventAndFillsSlot(t *testing.T) {
	inv := entity.NewInventory(2)
	var got []Event
	bus := &Bus{}
	bus.Subscribe(func(e Event) { got = append(got, e) })

	item := &entity.Item{ID: 1}
	if err := Add(inv, item, bus); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if inv.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", inv.Len())
	}
	if len(got) != 1 || got[0].Kind != EventItemAdded {
		t.Fatalf("events = %v, want one ItemAdded", got)
	}
}

func TestAddToFullInventoryFails(t *testing.T) {
	inv := entity.NewInventory(1)
	bus := &Bus{}
	var kinds []EventKind
	bus.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	Add(inv, &entity.Item{ID: 1}, bus)
	err := Add(inv, &entity.Item{ID: 2}, bus)
	if err != ErrFull {
		t.Fatalf("err = %v, want ErrFull", err)
	}
	if kinds[len(kinds)-1] != EventInventoryFull {
		t.Fatalf("last event = %v, want InventoryFull", kinds[len(kinds)-1])
	}
}

func TestRemoveByIDNotFound(t *testing.T) {
	inv := entity.NewInventory(5)
	_, err := RemoveByID(inv, 99, nil)
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRingsFillRightThenLeft(t *testing.T) {
	gen := id.NewGenerator()
	c := entity.NewCreature(gen, entity.Display{}, geom.Vec2{})
	ring1 := &entity.Item{ID: gen.Next(), Class: entity.ClassRing}
	ring2 := &entity.Item{ID: gen.Next(), Class: entity.ClassRing}

	if _, err := Equip(c, ring1); err != nil {
		t.Fatalf("equip ring1: %v", err)
	}
	if c.Equipment.Slots[entity.SlotRightRing] != ring1.ID {
		t.Fatal("ring1 should land in right ring slot")
	}

	if _, err := Equip(c, ring2); err != nil {
		t.Fatalf("equip ring2: %v", err)
	}
	if c.Equipment.Slots[entity.SlotLeftRing] != ring2.ID {
		t.Fatal("ring2 should land in left ring slot")
	}
}

func TestThirdRingFailsWhenBothSlotsFull(t *testing.T) {
	gen := id.NewGenerator()
	c := entity.NewCreature(gen, entity.Display{}, geom.Vec2{})
	Equip(c, &entity.Item{ID: gen.Next(), Class: entity.ClassRing})
	Equip(c, &entity.Item{ID: gen.Next(), Class: entity.ClassRing})
	_, err := Equip(c, &entity.Item{ID: gen.Next(), Class: entity.ClassRing})
	if err != ErrSlotFilled {
		t.Fatalf("err = %v, want ErrSlotFilled", err)
	}
}

func TestEquipArmorDisplacesPrevious(t *testing.T) {
	gen := id.NewGenerator()
	c := entity.NewCreature(gen, entity.Display{}, geom.Vec2{})
	armor1 := &entity.Item{ID: gen.Next(), Class: entity.ClassArmor}
	armor2 := &entity.Item{ID: gen.Next(), Class: entity.ClassArmor}

	Equip(c, armor1)
	prev, err := Equip(c, armor2)
	if err != nil {
		t.Fatalf("equip armor2: %v", err)
	}
	if prev != armor1.ID {
		t.Fatalf("displaced = %d, want armor1 id %d", prev, armor1.ID)
	}
	if c.Equipment.Slots[entity.SlotBody] != armor2.ID {
		t.Fatal("armor2 should now occupy the body slot")
	}
}
