package entities

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/components"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
)

// Kind classifies what an entity is in the level
type Kind int

const (
	KindMonster Kind = iota
	KindPlayer
	KindItem
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindItem:
		return "item"
	default:
		return "monster"
	}
}

// RGB is a presentation color passed through to front ends
type RGB struct {
	R, G, B uint8
}

// Entity is one arena record. Components are optional; a nil field means
// the capability is absent.
type Entity struct {
	Ref            handle.Ref
	Kind           Kind
	Name           string
	Glyph          rune
	Color          RGB
	Pos            components.Pos
	BlocksMovement bool
	Visible        bool

	Fighter   *components.Fighter
	Inventory *components.Inventory
	AI        *components.AI
}

// Spec describes an entity to create
type Spec struct {
	Kind           Kind
	Name           string
	Glyph          rune
	Color          RGB
	X, Y           int
	BlocksMovement bool
	Hidden         bool

	Fighter   *components.Fighter
	Inventory *components.Inventory
	AI        *components.AI
}

// At reports whether the entity stands on (x, y)
func (e *Entity) At(x, y int) bool {
	return e.Pos.X == x && e.Pos.Y == y
}

// MoveTo places the entity on (x, y)
func (e *Entity) MoveTo(x, y int) {
	e.Pos = components.Pos{X: x, Y: y}
}

// Alive reports whether the entity can still fight. Entities without a
// fighter are never considered dead.
func (e *Entity) Alive() bool {
	return e.Fighter == nil || !e.Fighter.IsDead()
}
