package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
)

// Event types published on the engine's bus. Source and target are Views.
const (
	// EventAttack fires after a hit lands; damage may be zero
	EventAttack = "dungeon.attack"
	// EventDefeated fires when a non-player fighter leaves the level
	EventDefeated = "dungeon.defeated"
	// EventPickup fires for each item moved into the player's inventory
	EventPickup = "dungeon.pickup"
	// EventPlayerDied fires once, on the turn the player's HP reaches zero
	EventPlayerDied = "dungeon.player_died"
)

// Context keys set on published events
const (
	KeyDamage  = "damage"
	KeyTurn    = "turn"
	KeyLevelID = "level_id"
	KeySlot    = "slot"
)

// entity returns the view of ref as a core.Entity, or nil when ref is not
// in the store
func (e *Engine) entity(ref handle.Ref) core.Entity {
	v, ok := e.view(ref)
	if !ok {
		return nil
	}
	return v
}

// publish sends one event. Subscriber failures are logged and do not undo
// the turn.
func (e *Engine) publish(ctx context.Context, eventType string, source, target handle.Ref, data map[string]any) {
	event := events.NewGameEvent(eventType, e.entity(source), e.entity(target))
	event.Context().Set(KeyTurn, e.turn)
	event.Context().Set(KeyLevelID, e.id)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := e.bus.Publish(ctx, event); err != nil {
		slog.Warn("Event subscriber failed",
			"event", eventType,
			"level_id", e.id,
			"error", err,
		)
	}
}
