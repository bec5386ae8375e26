package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/components"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
)

// View is a read-only copy of an active entity for rendering
type View struct {
	Ref            handle.Ref
	Kind           entities.Kind
	Name           string
	Glyph          rune
	Color          entities.RGB
	X, Y           int
	Visible        bool
	BlocksMovement bool
}

var _ core.Entity = View{}

// GetID returns the entity handle as a string
func (v View) GetID() string {
	return v.Ref.String()
}

// GetType returns the entity kind for rpg-toolkit
func (v View) GetType() string {
	return v.Kind.String()
}

// Entities returns views of the active set in insertion order
func (e *Engine) Entities() []View {
	views := make([]View, 0, len(e.active))
	for _, ref := range e.active {
		if v, ok := e.view(ref); ok {
			views = append(views, v)
		}
	}
	return views
}

func (e *Engine) view(ref handle.Ref) (View, bool) {
	ent, ok := e.store.Get(ref)
	if !ok {
		return View{}, false
	}
	return View{
		Ref:            ref,
		Kind:           ent.Kind,
		Name:           ent.Name,
		Glyph:          ent.Glyph,
		Color:          ent.Color,
		X:              ent.Pos.X,
		Y:              ent.Pos.Y,
		Visible:        ent.Visible,
		BlocksMovement: ent.BlocksMovement,
	}, true
}

// Stats is a fighter snapshot for a HUD
type Stats struct {
	HP      int
	MaxHP   int
	Defense int
	Power   int
	Effects map[string]int
	Pos     components.Pos
}

// PlayerStats returns the player's fighter snapshot
func (e *Engine) PlayerStats() (Stats, bool) {
	return e.StatsOf(e.player)
}

// StatsOf returns the fighter snapshot of any active entity
func (e *Engine) StatsOf(ref handle.Ref) (Stats, bool) {
	if !e.isActive(ref) {
		return Stats{}, false
	}
	ent, ok := e.store.Get(ref)
	if !ok || ent.Fighter == nil {
		return Stats{}, false
	}
	f := ent.Fighter
	stats := Stats{
		HP:      f.HP,
		MaxHP:   f.MaxHP,
		Defense: f.Defense,
		Power:   f.Power,
		Effects: make(map[string]int, len(f.Effects)),
		Pos:     ent.Pos,
	}
	for name, effect := range f.Effects {
		stats.Effects[name] = effect.Duration
	}
	return stats, true
}

// InventoryEntry is one occupied inventory slot
type InventoryEntry struct {
	Slot   int
	Letter rune
	Name   string
}

// Inventory lists the player's occupied slots in slot order. Names come
// from the inventory itself, so entries survive the arena reusing a
// carried item's slot.
func (e *Engine) Inventory() []InventoryEntry {
	player, ok := e.store.Get(e.player)
	if !ok || player.Inventory == nil {
		return nil
	}

	var entries []InventoryEntry
	for slot := range player.Inventory.Slots {
		name, ok := player.Inventory.Name(slot)
		if !ok {
			continue
		}
		letter, _ := components.Letter(slot)
		entries = append(entries, InventoryEntry{Slot: slot, Letter: letter, Name: name})
	}
	return entries
}
