package components_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/components"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
)

type StatusEffectTestSuite struct {
	suite.Suite
	reg *components.EffectRegistry
}

func (s *StatusEffectTestSuite) SetupTest() {
	s.reg = components.NewEffectRegistry()
}

func TestStatusEffectSuite(t *testing.T) {
	suite.Run(t, new(StatusEffectTestSuite))
}

func (s *StatusEffectTestSuite) TestRefreshCapsStacks() {
	f := components.NewFighter(10, 0, 0)

	s.Nil(s.reg.Apply(f, components.NewStatusEffect("poison", 5, 2)))
	s.Nil(s.reg.Apply(f, components.NewStatusEffect("poison", 3, 2)))

	effect := f.Effects["poison"]
	s.Require().NotNil(effect)
	s.Equal(3, effect.Stacks)
	s.Equal(3, effect.Duration)
	s.Equal(1, s.reg.Live("poison"))
}

func (s *StatusEffectTestSuite) TestTargetRecorded() {
	f := components.NewFighter(10, 0, 0)
	f.Owner = handle.New(4, 2)

	s.reg.Apply(f, components.NewStatusEffect("haste", 4, 1))
	s.Equal(handle.New(4, 2), f.Effects["haste"].Target)
}

func (s *StatusEffectTestSuite) TestEvictsShortestAcrossTargets() {
	fighters := make([]*components.Fighter, 4)
	durations := []int{6, 2, 9}
	for i := range fighters {
		fighters[i] = components.NewFighter(10, 0, 0)
	}
	for i, d := range durations {
		s.Nil(s.reg.Apply(fighters[i], components.NewStatusEffect("slow", d, 1)))
	}
	s.Equal(3, s.reg.Live("slow"))

	evicted := s.reg.Apply(fighters[3], components.NewStatusEffect("slow", 4, 1))
	s.Require().NotNil(evicted)
	s.Equal(2, evicted.Duration)
	s.NotContains(fighters[1].Effects, "slow")
	s.Contains(fighters[0].Effects, "slow")
	s.Contains(fighters[3].Effects, "slow")
	s.Equal(3, s.reg.Live("slow"))
}

func (s *StatusEffectTestSuite) TestKindsCountedSeparately() {
	for i := 0; i < 3; i++ {
		s.reg.Apply(components.NewFighter(5, 0, 0), components.NewStatusEffect("slow", 3, 1))
	}
	s.Nil(s.reg.Apply(components.NewFighter(5, 0, 0), components.NewStatusEffect("burn", 3, 1)))
	s.Equal(1, s.reg.Live("burn"))
}

func (s *StatusEffectTestSuite) TestDecayRemovesExpired() {
	f := components.NewFighter(10, 0, 0)
	s.reg.Apply(f, components.NewStatusEffect("stun", 1, 1))
	s.reg.Apply(f, components.NewStatusEffect("regen", 3, 1))

	f.UpdateStatusEffects(s.reg)
	s.NotContains(f.Effects, "stun")
	s.Equal(0, s.reg.Live("stun"))
	s.Equal(2, f.Effects["regen"].Duration)

	f.UpdateStatusEffects(s.reg)
	f.UpdateStatusEffects(s.reg)
	s.Empty(f.Effects)
	s.Equal(0, s.reg.Live("regen"))
}

func (s *StatusEffectTestSuite) TestDecayWithoutRegistry() {
	f := components.NewFighter(10, 0, 0)
	f.Effects["bless"] = components.NewStatusEffect("bless", 1, 1)
	f.UpdateStatusEffects(nil)
	s.Empty(f.Effects)
}

func (s *StatusEffectTestSuite) TestReleaseAll() {
	f := components.NewFighter(10, 0, 0)
	s.reg.Apply(f, components.NewStatusEffect("slow", 3, 1))
	s.reg.Apply(f, components.NewStatusEffect("burn", 3, 1))

	s.reg.ReleaseAll(f)
	s.Equal(0, s.reg.Live("slow"))
	s.Equal(0, s.reg.Live("burn"))
}
