// Package entities is the level's entity arena. Slots are issued in order
// and reused when the index wraps; every reuse bumps the slot generation so
// handles issued before the wrap stop resolving.
package entities

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
)

// DefaultCapacity is the arena size used when none is configured
const DefaultCapacity = 10000

// Store is a fixed-capacity ring of entity records. It is not safe for
// concurrent use.
type Store struct {
	capacity int
	slots    []Entity
	next     int
	issued   uint64
}

// NewStore creates an arena with room for capacity live records. A
// non-positive capacity gets DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		slots:    make([]Entity, 0, min(capacity, 256)),
	}
}

// Create issues the next slot. It never fails: once every slot has been
// issued the oldest one is reset and issued again under a new generation.
func (s *Store) Create(spec Spec) handle.Ref {
	idx := s.next
	s.next = (s.next + 1) % s.capacity
	s.issued++

	var generation uint32 = 1
	if idx < len(s.slots) {
		generation = s.slots[idx].Ref.Generation + 1
		if generation == 0 {
			generation = 1
		}
	} else {
		s.slots = append(s.slots, Entity{})
	}

	ref := handle.New(uint32(idx), generation)
	s.slots[idx] = Entity{
		Ref:            ref,
		Kind:           spec.Kind,
		Name:           spec.Name,
		Glyph:          spec.Glyph,
		Color:          spec.Color,
		BlocksMovement: spec.BlocksMovement,
		Visible:        !spec.Hidden,
		Fighter:        spec.Fighter,
		Inventory:      spec.Inventory,
		AI:             spec.AI,
	}
	s.slots[idx].MoveTo(spec.X, spec.Y)
	if spec.Fighter != nil {
		spec.Fighter.Owner = ref
	}
	return ref
}

// Get resolves ref. Stale or nil handles resolve to nothing.
func (s *Store) Get(ref handle.Ref) (*Entity, bool) {
	if !s.Valid(ref) {
		return nil, false
	}
	return &s.slots[ref.Index], true
}

// Valid reports whether ref still names a live slot generation
func (s *Store) Valid(ref handle.Ref) bool {
	if ref.IsNil() || int(ref.Index) >= len(s.slots) {
		return false
	}
	return s.slots[ref.Index].Ref == ref
}

// Cap returns the arena capacity
func (s *Store) Cap() int {
	return s.capacity
}

// Issued returns how many handles have been issued in total
func (s *Store) Issued() uint64 {
	return s.issued
}
