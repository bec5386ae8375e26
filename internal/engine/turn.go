package engine

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-dungeon/internal/ai"
	"github.com/KirkDiggler/rpg-dungeon/internal/components"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
)

// Outcome is what a move request turned into
type Outcome int

const (
	// OutcomeBlocked means the target was out of bounds or a wall
	OutcomeBlocked Outcome = iota
	// OutcomeAttacked means a fighter stood on the target and was hit
	OutcomeAttacked
	// OutcomeBumped means a blocking entity without a fighter was in the way
	OutcomeBumped
	// OutcomeMoved means the player stepped onto the target
	OutcomeMoved
	// OutcomeDead means the player can no longer act
	OutcomeDead
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAttacked:
		return "attacked"
	case OutcomeBumped:
		return "bumped"
	case OutcomeMoved:
		return "moved"
	case OutcomeDead:
		return "dead"
	default:
		return "blocked"
	}
}

// MoveResult describes one player move request
type MoveResult struct {
	Outcome    Outcome
	Target     handle.Ref
	TargetName string
	Damage     int
	Killed     bool

	PickedUp      []string
	InventoryFull bool

	Messages []string
}

func (r *MoveResult) say(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

// TurnReport describes one Update
type TurnReport struct {
	Turn       int
	Actions    []ai.Action
	Defeated   []string
	PlayerDead bool
	Messages   []string
}

func (r *TurnReport) say(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

// MovePlayer moves the player by (dx, dy), attacking a fighter standing on
// the target instead. A defender killed here leaves the level at once.
// Items on the new cell are picked up while the inventory has room.
func (e *Engine) MovePlayer(ctx context.Context, dx, dy int) (MoveResult, error) {
	var result MoveResult

	player, ok := e.store.Get(e.player)
	if !ok || !player.Alive() {
		result.Outcome = OutcomeDead
		result.say("You are dead.")
		return result, nil
	}

	nx, ny := player.Pos.X+dx, player.Pos.Y+dy
	if !e.grid.IsWalkable(nx, ny) {
		result.Outcome = OutcomeBlocked
		result.say("You bump into a wall.")
		return result, nil
	}

	if ref, blocked := e.BlockerAt(nx, ny, e.player); blocked {
		target, _ := e.store.Get(ref)
		result.Target = ref
		result.TargetName = target.Name
		if target.Fighter == nil || player.Fighter == nil {
			result.Outcome = OutcomeBumped
			result.say("%s blocks the way.", target.Name)
			return result, nil
		}

		damage, err := components.CalculateDamage(e.roller, player.Fighter, target.Fighter)
		if err != nil {
			return result, errors.Wrapf(err, "failed to resolve attack on %s", target.Name)
		}
		target.Fighter.TakeDamage(damage)

		result.Outcome = OutcomeAttacked
		result.Damage = damage
		result.say("You hit %s for %d damage!", target.Name, damage)
		e.publish(ctx, EventAttack, e.player, ref, map[string]any{KeyDamage: damage})
		if target.Fighter.IsDead() {
			result.Killed = true
			result.say("You killed %s!", target.Name)
			e.publish(ctx, EventDefeated, e.player, ref, nil)
			e.remove(ref)
		}
		return result, nil
	}

	if err := e.MoveEntity(e.player, nx, ny); err != nil {
		return result, errors.Wrapf(err, "failed to move %s", player.Name)
	}
	result.Outcome = OutcomeMoved
	e.pickUp(ctx, player.Inventory, nx, ny, &result)
	return result, nil
}

// pickUp moves every non-blocking entity on (x, y) into inv, in the order
// they arrived on the cell, while there is room. Items that do not fit
// stay on the ground.
func (e *Engine) pickUp(ctx context.Context, inv *components.Inventory, x, y int, result *MoveResult) {
	if inv == nil {
		return
	}

	for _, occ := range e.index.at(x, y) {
		if occ.blocks || occ.ref == e.player {
			continue
		}
		item, ok := e.store.Get(occ.ref)
		if !ok {
			continue
		}
		slot, added := inv.Add(occ.ref, item.Name)
		if !added {
			result.InventoryFull = true
			result.say("Your inventory is full!")
			continue
		}
		result.PickedUp = append(result.PickedUp, item.Name)
		result.say("You picked up %s!", item.Name)
		e.publish(ctx, EventPickup, e.player, occ.ref, map[string]any{KeySlot: slot})
		e.remove(occ.ref)
	}
}

// Update advances one turn. The player's effects decay first; then every
// other entity in a snapshot of the active set decays its effects, acts
// once if it has an AI, and is pruned if its HP reached zero.
func (e *Engine) Update(ctx context.Context) (*TurnReport, error) {
	e.turn++
	report := &TurnReport{Turn: e.turn}

	player, hasPlayer := e.store.Get(e.player)
	wasAlive := hasPlayer && player.Alive()
	killer := handle.Nil
	if hasPlayer && player.Fighter != nil {
		player.Fighter.UpdateStatusEffects(e.effects)
	}

	for _, ref := range slices.Clone(e.active) {
		if ref == e.player || !e.isActive(ref) {
			continue
		}
		ent, ok := e.store.Get(ref)
		if !ok {
			e.remove(ref)
			continue
		}

		if ent.Fighter != nil {
			ent.Fighter.UpdateStatusEffects(e.effects)
		}

		if ent.AI != nil {
			action, err := e.controller.Perform(e, ref)
			if err != nil {
				return report, errors.Wrapf(err, "%s failed to act", ent.Name)
			}
			if action.Kind != ai.ActionNone {
				report.Actions = append(report.Actions, action)
				slog.Debug("Monster acted",
					"turn", e.turn,
					"name", action.Name,
					"state", action.State.String(),
					"action", action.Kind.String(),
					"x", action.To.X,
					"y", action.To.Y,
				)
			}
			if action.Kind == ai.ActionAttack {
				report.say("%s attacks you for %d damage!", ent.Name, action.Damage)
				e.publish(ctx, EventAttack, ref, action.Target, map[string]any{KeyDamage: action.Damage})
				if killer.IsNil() && wasAlive && !player.Alive() {
					killer = ref
				}
			}
		}

		if !ent.Alive() {
			report.Defeated = append(report.Defeated, ent.Name)
			report.say("%s has been defeated!", ent.Name)
			e.publish(ctx, EventDefeated, handle.Nil, ref, nil)
			e.remove(ref)
		}
	}

	if hasPlayer && !player.Alive() {
		report.PlayerDead = true
		if wasAlive {
			e.publish(ctx, EventPlayerDied, killer, e.player, nil)
		}
	}
	return report, nil
}
