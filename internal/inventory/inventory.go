// Package inventory implements add/remove/equip operations over
// entity.Inventory and entity.Equipment, grounded on the teacher's
// inventory.go event-callback registry and equipment.go slot-displacement
// logic, retyped onto the fully-specified entity model.
package inventory

import (
	"errors"

	"rogue-engine/internal/entity"
	"rogue-engine/internal/id"
)

// EventKind mirrors the teacher's ITEM_ADDED/ITEM_REMOVED/INVENTORY_FULL/
// CAPACITY_CHANGED callback registry.
type EventKind int

const (
	EventItemAdded EventKind = iota
	EventItemRemoved
	EventInventoryFull
	EventCapacityChanged
)

// Event is fired on every mutating inventory operation.
type Event struct {
	Kind EventKind
	Item *entity.Item
}

var (
	ErrFull       = errors.New("inventory: full")
	ErrNotFound   = errors.New("inventory: item not found")
	ErrSlotFilled = errors.New("inventory: both ring slots occupied")
)

// Listener receives inventory events; Bus owns zero or more of them.
type Listener func(Event)

type Bus struct {
	listeners []Listener
}

func (b *Bus) Subscribe(l Listener) { b.listeners = append(b.listeners, l) }

func (b *Bus) emit(e Event) {
	for _, l := range b.listeners {
		l(e)
	}
}

// Add appends item to inv, firing ITEM_ADDED, or returns ErrFull (firing
// INVENTORY_FULL instead) per spec.md §4.13.
func Add(inv *entity.Inventory, item *entity.Item, bus *Bus) error {
	if inv.Full() {
		if bus != nil {
			bus.emit(Event{Kind: EventInventoryFull, Item: item})
		}
		return ErrFull
	}
	inv.Items = append(inv.Items, item)
	if bus != nil {
		bus.emit(Event{Kind: EventItemAdded, Item: item})
	}
	return nil
}

// RemoveByID finds and removes an item by id, firing ITEM_REMOVED.
func RemoveByID(inv *entity.Inventory, itemID id.ID, bus *Bus) (*entity.Item, error) {
	for i, it := range inv.Items {
		if it.ID != itemID {
			continue
		}
		inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
		if bus != nil {
			bus.emit(Event{Kind: EventItemRemoved, Item: it})
		}
		return it, nil
	}
	return nil, ErrNotFound
}

// RemoveAt removes the item at index, firing ITEM_REMOVED.
func RemoveAt(inv *entity.Inventory, index int, bus *Bus) (*entity.Item, error) {
	if index < 0 || index >= len(inv.Items) {
		return nil, ErrNotFound
	}
	it := inv.Items[index]
	inv.Items = append(inv.Items[:index], inv.Items[index+1:]...)
	if bus != nil {
		bus.emit(Event{Kind: EventItemRemoved, Item: it})
	}
	return it, nil
}

// SetCapacity changes inv's capacity, firing CAPACITY_CHANGED.
func SetCapacity(inv *entity.Inventory, capacity int, bus *Bus) {
	inv.Capacity = capacity
	if bus != nil {
		bus.emit(Event{Kind: EventCapacityChanged})
	}
}
