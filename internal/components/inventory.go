package components

import "github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"

// DefaultInventoryCapacity matches the a..z slot letters
const DefaultInventoryCapacity = 26

// Inventory is a fixed array of item slots. Slots are never compacted; a nil
// handle marks an empty slot. Names keeps each item's name beside its
// handle, since a carried item's arena slot may be reused once it leaves
// the level.
type Inventory struct {
	Slots []handle.Ref
	Names []string
}

// NewInventory creates an inventory with capacity empty slots. A
// non-positive capacity gets the default.
func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultInventoryCapacity
	}
	return &Inventory{
		Slots: make([]handle.Ref, capacity),
		Names: make([]string, capacity),
	}
}

// Capacity returns the number of slots
func (inv *Inventory) Capacity() int {
	return len(inv.Slots)
}

// Add stores item in the first empty slot. It returns the slot and false
// when the inventory is full, leaving the contents unchanged.
func (inv *Inventory) Add(item handle.Ref, name string) (int, bool) {
	for i, slot := range inv.Slots {
		if slot.IsNil() {
			inv.Slots[i] = item
			inv.Names[i] = name
			return i, true
		}
	}
	return -1, false
}

// Name returns the name recorded for an occupied slot
func (inv *Inventory) Name(slot int) (string, bool) {
	if slot < 0 || slot >= len(inv.Slots) || inv.Slots[slot].IsNil() {
		return "", false
	}
	return inv.Names[slot], true
}

// Remove empties a slot and returns what was in it
func (inv *Inventory) Remove(slot int) (handle.Ref, bool) {
	if slot < 0 || slot >= len(inv.Slots) || inv.Slots[slot].IsNil() {
		return handle.Nil, false
	}
	item := inv.Slots[slot]
	inv.Slots[slot] = handle.Nil
	inv.Names[slot] = ""
	return item, true
}

// Count returns the number of occupied slots
func (inv *Inventory) Count() int {
	n := 0
	for _, slot := range inv.Slots {
		if !slot.IsNil() {
			n++
		}
	}
	return n
}

// Items returns the occupied slots in slot order
func (inv *Inventory) Items() []handle.Ref {
	items := make([]handle.Ref, 0, len(inv.Slots))
	for _, slot := range inv.Slots {
		if !slot.IsNil() {
			items = append(items, slot)
		}
	}
	return items
}

// Letter maps a slot index to its display letter. Slots past 'z' have none.
func Letter(slot int) (rune, bool) {
	if slot < 0 || slot >= DefaultInventoryCapacity {
		return 0, false
	}
	return rune('a' + slot), true
}
