package components

import "github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"

// DefaultMaxStacks caps both the stacks on one target and the live
// instances of one effect kind across all targets.
const DefaultMaxStacks = 3

// StatusEffect is a timed buff or debuff living on a fighter
type StatusEffect struct {
	Name      string
	Duration  int
	Stacks    int
	MaxStacks int
	Target    handle.Ref

	holder *Fighter
}

// NewStatusEffect creates an effect with the default stack cap
func NewStatusEffect(name string, duration, stacks int) *StatusEffect {
	return &StatusEffect{
		Name:      name,
		Duration:  duration,
		Stacks:    max(1, stacks),
		MaxStacks: DefaultMaxStacks,
	}
}

func (e *StatusEffect) maxStacks() int {
	if e.MaxStacks <= 0 {
		return DefaultMaxStacks
	}
	return e.MaxStacks
}

// EffectRegistry tracks the live instances of every effect kind. When a kind
// would exceed its stack cap the instance with the least duration left is
// evicted from whichever fighter carries it.
type EffectRegistry struct {
	live map[string][]*StatusEffect
}

// NewEffectRegistry creates an empty registry
func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{live: make(map[string][]*StatusEffect)}
}

// Apply puts effect on target. A same-named effect already on the target
// gains the incoming stacks, capped, and takes the incoming duration.
// Otherwise the effect is inserted and tracked, evicting first if the kind
// is at its cap. The evicted effect is returned, or nil.
func (r *EffectRegistry) Apply(target *Fighter, effect *StatusEffect) *StatusEffect {
	if target == nil || effect == nil {
		return nil
	}
	if target.Effects == nil {
		target.Effects = make(map[string]*StatusEffect)
	}

	if existing, ok := target.Effects[effect.Name]; ok {
		existing.Stacks = min(existing.Stacks+effect.Stacks, effect.maxStacks())
		existing.Duration = effect.Duration
		return nil
	}

	var evicted *StatusEffect
	if live := r.live[effect.Name]; len(live) >= effect.maxStacks() {
		evicted = shortest(live)
		r.release(evicted)
		if evicted.holder != nil && evicted.holder.Effects[evicted.Name] == evicted {
			delete(evicted.holder.Effects, evicted.Name)
		}
		evicted.holder = nil
	}

	effect.Stacks = min(max(1, effect.Stacks), effect.maxStacks())
	effect.Target = target.Owner
	effect.holder = target
	target.Effects[effect.Name] = effect
	r.live[effect.Name] = append(r.live[effect.Name], effect)
	return evicted
}

// Live returns how many instances of the named kind are tracked
func (r *EffectRegistry) Live(name string) int {
	return len(r.live[name])
}

// ReleaseAll stops tracking every effect carried by f, used when its owner
// leaves the level.
func (r *EffectRegistry) ReleaseAll(f *Fighter) {
	for _, effect := range f.Effects {
		r.release(effect)
	}
}

func (r *EffectRegistry) release(effect *StatusEffect) {
	live := r.live[effect.Name]
	for i, e := range live {
		if e != effect {
			continue
		}
		live = append(live[:i], live[i+1:]...)
		break
	}
	if len(live) == 0 {
		delete(r.live, effect.Name)
		return
	}
	r.live[effect.Name] = live
}

// shortest returns the first instance with the least duration left
func shortest(live []*StatusEffect) *StatusEffect {
	best := live[0]
	for _, e := range live[1:] {
		if e.Duration < best.Duration {
			best = e
		}
	}
	return best
}
