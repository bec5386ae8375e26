package components

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
)

const (
	// varianceDie is rolled once per attack; the result is shifted by
	// varianceShift so the spread is -2..+2.
	varianceDie   = 5
	varianceShift = 3

	minDamage = 1
)

// Fighter holds combat stats and the status effects currently on the owner
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	Effects map[string]*StatusEffect
	Owner   handle.Ref
}

// NewFighter creates a fighter at full health
func NewFighter(hp, defense, power int) *Fighter {
	return &Fighter{
		MaxHP:   hp,
		HP:      hp,
		Defense: defense,
		Power:   power,
		Effects: make(map[string]*StatusEffect),
	}
}

// TakeDamage always removes at least one hit point and never drops HP
// below zero.
func (f *Fighter) TakeDamage(amount int) {
	f.HP = max(0, f.HP-max(minDamage, amount))
}

// Heal restores hit points up to MaxHP. Non-positive amounts do nothing.
func (f *Fighter) Heal(amount int) {
	if amount <= 0 {
		return
	}
	f.HP = min(f.MaxHP, f.HP+amount)
}

// IsDead reports whether the fighter is out of hit points
func (f *Fighter) IsDead() bool {
	return f.HP <= 0
}

// HealthRatio returns HP/MaxHP, or 0 when MaxHP is not positive
func (f *Fighter) HealthRatio() float64 {
	if f.MaxHP <= 0 {
		return 0
	}
	return float64(f.HP) / float64(f.MaxHP)
}

// UpdateStatusEffects ticks every effect down by one turn and drops the ones
// that ran out. Expired effects are released from reg when it is non-nil.
func (f *Fighter) UpdateStatusEffects(reg *EffectRegistry) {
	for name, effect := range f.Effects {
		effect.Duration--
		if effect.Duration > 0 {
			continue
		}
		delete(f.Effects, name)
		if reg != nil {
			reg.release(effect)
		}
	}
}

// CalculateDamage resolves one melee hit: attacker power minus defender
// defense plus a fresh -2..+2 roll, floored at 1.
func CalculateDamage(roller dice.Roller, attacker, defender *Fighter) (int, error) {
	if attacker == nil || defender == nil {
		return 0, errors.InvalidArgument("attacker and defender are required")
	}

	roll, err := roller.Roll(varianceDie)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInternal, "failed to roll damage variance")
	}

	damage := attacker.Power - defender.Defense + (roll - varianceShift)
	return max(minDamage, damage), nil
}
