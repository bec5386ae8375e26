// Package ai runs the monster state machine. Each turn the state is picked
// fresh from health and distance to the player (flee, then alert, then
// idle) and the matching behavior moves or attacks.
package ai

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/components"
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/navigation"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"
)

const (
	// FleeThreshold is the health ratio below which a monster runs
	FleeThreshold = 0.30

	wanderSkipChance   = 0.3
	cardinalBiasChance = 0.5
	cardinalAxisChance = 0.5
)

// World is the level state a controller reads and mutates
type World interface {
	Grid() *dungeon.Grid
	Store() *entities.Store
	Player() handle.Ref
	ActiveRefs() []handle.Ref
	BlockerAt(x, y int, except handle.Ref) (handle.Ref, bool)
	// MoveEntity relocates ref and keeps the world's occupancy in step
	MoveEntity(ref handle.Ref, x, y int) error
}

// ActionKind is what a monster did with its turn
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionAttack
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	default:
		return "none"
	}
}

// Action reports one monster turn
type Action struct {
	Actor  handle.Ref
	Name   string
	State  components.State
	Kind   ActionKind
	From   components.Pos
	To     components.Pos
	Target handle.Ref
	Damage int
}

// Controller decides and applies monster turns
type Controller struct {
	roller dice.Roller
	rng    *random.Source
}

// NewController creates a controller. roller resolves attacks and rng
// drives wandering.
func NewController(roller dice.Roller, rng *random.Source) *Controller {
	return &Controller{roller: roller, rng: rng}
}

// Perform runs one turn for self. Entities without an AI, or a level
// without a live player, do nothing.
func (c *Controller) Perform(world World, self handle.Ref) (Action, error) {
	store := world.Store()
	e, ok := store.Get(self)
	if !ok || e.AI == nil {
		return Action{Actor: self}, nil
	}
	player, ok := store.Get(world.Player())
	if !ok {
		return Action{Actor: self, Name: e.Name, State: e.AI.State}, nil
	}

	c.updateState(e, player)

	action := Action{
		Actor: self,
		Name:  e.Name,
		State: e.AI.State,
		From:  e.Pos,
		To:    e.Pos,
	}

	var err error
	switch e.AI.State {
	case components.StateFlee:
		err = c.flee(world, e, player, &action)
	case components.StateAlert:
		err = c.chase(world, e, player, &action)
	default:
		err = c.wander(world, e, &action)
	}
	return action, err
}

// updateState leaves the state untouched for monsters without a fighter
func (c *Controller) updateState(e, player *entities.Entity) {
	if e.Fighter == nil {
		return
	}

	dx := float64(player.Pos.X - e.Pos.X)
	dy := float64(player.Pos.Y - e.Pos.Y)
	distance := math.Sqrt(dx*dx + dy*dy)

	switch {
	case e.Fighter.HealthRatio() < FleeThreshold:
		e.AI.State = components.StateFlee
		e.AI.Remember(player.Pos.X, player.Pos.Y)
	case distance <= float64(e.AI.AwarenessDistance):
		e.AI.State = components.StateAlert
		e.AI.Remember(player.Pos.X, player.Pos.Y)
	default:
		e.AI.State = components.StateIdle
	}
}

func (c *Controller) wander(world World, e *entities.Entity, action *Action) error {
	if c.rng.Float64() < wanderSkipChance {
		return nil
	}

	dx := c.rng.IntRange(-1, 1)
	dy := c.rng.IntRange(-1, 1)
	if dx != 0 && dy != 0 && c.rng.Float64() < cardinalBiasChance {
		if c.rng.Float64() < cardinalAxisChance {
			dx = 0
		} else {
			dy = 0
		}
	}
	if dx == 0 && dy == 0 {
		return nil
	}

	nx, ny := e.Pos.X+dx, e.Pos.Y+dy
	if !world.Grid().IsWalkable(nx, ny) {
		return nil
	}
	if _, blocked := world.BlockerAt(nx, ny, e.Ref); blocked {
		return nil
	}
	return c.move(world, e, nx, ny, action)
}

func (c *Controller) chase(world World, e, player *entities.Entity, action *Action) error {
	cost := costField(world, e.Ref)
	if !cost.Passable(e.Pos.X, e.Pos.Y) {
		return nil
	}

	field := navigation.Compute(cost, player.Pos.X, player.Pos.Y)
	nx, ny, ok := field.FirstStep(e.Pos.X, e.Pos.Y)
	if !ok {
		return nil
	}

	if !player.At(nx, ny) {
		return c.move(world, e, nx, ny, action)
	}
	if e.Fighter == nil || player.Fighter == nil {
		return nil
	}

	damage, err := components.CalculateDamage(c.roller, e.Fighter, player.Fighter)
	if err != nil {
		return err
	}
	player.Fighter.TakeDamage(damage)

	action.Kind = ActionAttack
	action.To = player.Pos
	action.Target = player.Ref
	action.Damage = damage
	return nil
}

func (c *Controller) flee(world World, e, player *entities.Entity, action *Action) error {
	cost := costField(world, e.Ref)
	field := navigation.Compute(cost, player.Pos.X, player.Pos.Y)
	nx, ny, ok := field.FleeStep(cost, e.Pos.X, e.Pos.Y)
	if !ok {
		return nil
	}
	return c.move(world, e, nx, ny, action)
}

func (c *Controller) move(world World, e *entities.Entity, x, y int, action *Action) error {
	if err := world.MoveEntity(e.Ref, x, y); err != nil {
		return err
	}
	action.Kind = ActionMove
	action.To = e.Pos
	return nil
}

// costField marks terrain plus every blocking occupant other than self
func costField(world World, self handle.Ref) *navigation.CostField {
	cost := navigation.NewCostField(world.Grid())
	store := world.Store()
	for _, ref := range world.ActiveRefs() {
		if ref == self {
			continue
		}
		other, ok := store.Get(ref)
		if !ok || !other.BlocksMovement {
			continue
		}
		cost.Block(other.Pos.X, other.Pos.Y)
	}
	return cost
}
