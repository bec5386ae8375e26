// Package engine owns a level: the grid, the entity arena and the active
// set. A turn is the player's move followed by Update, which decays status
// effects, runs every monster once and prunes the dead.
package engine

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/ai"
	"github.com/KirkDiggler/rpg-dungeon/internal/components"
	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"
)

// Config holds the engine dependencies
type Config struct {
	// Level defaults to config.Default when nil
	Level  *config.Level
	Source *random.Source
	// Roller resolves attacks; defaults to Source
	Roller dice.Roller
	// Generator defaults to one drawing from Source
	Generator *dungeon.Generator
	// Grid skips generation and plays on a fixed layout
	Grid *dungeon.Grid
	// EventBus receives combat and pickup events; defaults to a private bus
	EventBus events.EventBus
	// ID names the level on published events
	ID string
}

// Validate checks the engine configuration
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	if cfg.Level != nil {
		if err := cfg.Level.Validate(); err != nil {
			vb.InvalidField("Level", errors.GetMessage(err))
		}
	}
	return vb.Build()
}

// Engine is one running level. It is not safe for concurrent use.
type Engine struct {
	level      *config.Level
	grid       *dungeon.Grid
	rooms      []dungeon.Rect
	store      *entities.Store
	effects    *components.EffectRegistry
	controller *ai.Controller
	roller     dice.Roller
	rng        *random.Source
	bus        events.EventBus
	index      *occupancy

	id     string
	player handle.Ref
	active []handle.Ref
	turn   int
}

var _ ai.World = (*Engine)(nil)

// New generates the grid and populates it with the player, monsters and
// items.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := cfg.Level
	if level == nil {
		level = config.Default()
	}
	roller := cfg.Roller
	if roller == nil {
		roller = cfg.Source
	}
	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	e := &Engine{
		level:      level,
		store:      entities.NewStore(level.PoolCapacity),
		effects:    components.NewEffectRegistry(),
		controller: ai.NewController(roller, cfg.Source),
		roller:     roller,
		rng:        cfg.Source,
		bus:        bus,
		id:         cfg.ID,
	}

	if cfg.Grid != nil {
		e.grid = cfg.Grid
	} else {
		gen := cfg.Generator
		if gen == nil {
			gen = dungeon.NewGenerator(cfg.Source)
		}
		result, err := gen.Generate(dungeon.Config{
			Width:       level.Width,
			Height:      level.Height,
			MinRoomSize: level.MinRoomSize,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate dungeon")
		}
		e.grid = result.Grid
		e.rooms = result.Rooms
	}
	e.index = newOccupancy(e.id, e.grid.Width(), e.grid.Height(), bus)

	if err := e.spawnPlayer(); err != nil {
		return nil, err
	}
	if err := e.populate(); err != nil {
		return nil, err
	}

	return e, nil
}

// Grid returns the level layout
func (e *Engine) Grid() *dungeon.Grid {
	return e.grid
}

// Rooms returns the generated rooms, empty for fixed layouts
func (e *Engine) Rooms() []dungeon.Rect {
	return e.rooms
}

// Store exposes the entity arena
func (e *Engine) Store() *entities.Store {
	return e.store
}

// Player returns the player handle
func (e *Engine) Player() handle.Ref {
	return e.player
}

// ActiveRefs returns a copy of the active set in insertion order
func (e *Engine) ActiveRefs() []handle.Ref {
	return slices.Clone(e.active)
}

// Turn returns the number of completed Update calls
func (e *Engine) Turn() int {
	return e.turn
}

// Events returns the bus combat and pickup events are published on
func (e *Engine) Events() events.EventBus {
	return e.bus
}

// Effects returns the level's status effect registry
func (e *Engine) Effects() *components.EffectRegistry {
	return e.effects
}

// BlockerAt finds an active movement-blocking entity on (x, y) other than
// except.
func (e *Engine) BlockerAt(x, y int, except handle.Ref) (handle.Ref, bool) {
	for _, occ := range e.index.at(x, y) {
		if occ.blocks && occ.ref != except && e.store.Valid(occ.ref) {
			return occ.ref, true
		}
	}
	return handle.Nil, false
}

// Spawn creates an entity and adds it to the active set. The cell must be
// on the grid and must not already hold a blocker.
func (e *Engine) Spawn(spec entities.Spec) (handle.Ref, error) {
	if !e.grid.InBounds(spec.X, spec.Y) {
		return handle.Nil, errors.OutOfRangef("cannot spawn %s at (%d,%d): outside the level", spec.Name, spec.X, spec.Y)
	}
	occ := occupant{kind: spec.Kind, blocks: spec.BlocksMovement}
	if !e.index.canPlace(occ, spec.X, spec.Y) {
		return handle.Nil, errors.AlreadyExistsf("cannot spawn %s at (%d,%d): cell is taken", spec.Name, spec.X, spec.Y)
	}

	occ.ref = e.store.Create(spec)
	if err := e.index.place(occ, spec.X, spec.Y); err != nil {
		return handle.Nil, err
	}
	e.active = append(e.active, occ.ref)
	return occ.ref, nil
}

// MoveEntity relocates an active entity onto a walkable cell. A blocker
// cannot enter a cell that already holds another blocker.
func (e *Engine) MoveEntity(ref handle.Ref, x, y int) error {
	if !e.isActive(ref) {
		return errors.NotFoundf("entity %s is not active", ref)
	}
	ent, ok := e.store.Get(ref)
	if !ok {
		return errors.NotFoundf("entity %s not found", ref)
	}
	if !e.grid.IsWalkable(x, y) {
		return errors.InvalidArgumentf("cannot move %s to (%d,%d): not floor", ent.Name, x, y)
	}
	if err := e.index.move(ref, x, y); err != nil {
		return err
	}
	ent.MoveTo(x, y)
	return nil
}

// ApplyEffect puts a status effect on an active entity's fighter. It
// reports false when the target cannot carry effects; evicted is the
// instance the registry dropped to make room, if any.
func (e *Engine) ApplyEffect(target handle.Ref, effect *components.StatusEffect) (evicted *components.StatusEffect, ok bool) {
	if !e.isActive(target) {
		return nil, false
	}
	ent, found := e.store.Get(target)
	if !found || ent.Fighter == nil {
		return nil, false
	}
	return e.effects.Apply(ent.Fighter, effect), true
}

func (e *Engine) isActive(ref handle.Ref) bool {
	return slices.Contains(e.active, ref)
}

// remove drops ref from the active set and releases its effects
func (e *Engine) remove(ref handle.Ref) {
	if ent, ok := e.store.Get(ref); ok && ent.Fighter != nil {
		e.effects.ReleaseAll(ent.Fighter)
	}
	e.index.remove(ref)
	e.active = slices.DeleteFunc(e.active, func(r handle.Ref) bool {
		return r == ref
	})
}

// occupied reports whether any active entity stands on (x, y)
func (e *Engine) occupied(x, y int) bool {
	return e.index.occupied(x, y)
}
