package components_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/components"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	dicemock "github.com/KirkDiggler/rpg-dungeon/internal/pkg/random/mock"
)

type FighterTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	roller *dicemock.MockRoller
}

func (s *FighterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roller = dicemock.NewMockRoller(s.ctrl)
}

func (s *FighterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFighterSuite(t *testing.T) {
	suite.Run(t, new(FighterTestSuite))
}

func (s *FighterTestSuite) TestTakeDamageNeverBelowZero() {
	for _, amount := range []int{-50, -1, 0, 1, 7, 29, 30, 31, 1000} {
		f := components.NewFighter(30, 2, 5)
		f.TakeDamage(amount)
		s.GreaterOrEqual(f.HP, 0, "amount %d", amount)
		s.LessOrEqual(f.HP, 29, "amount %d applies at least one point", amount)
	}

	f := components.NewFighter(10, 0, 3)
	f.TakeDamage(-4)
	s.Equal(9, f.HP)
	f.TakeDamage(100)
	s.Equal(0, f.HP)
	s.True(f.IsDead())
}

func (s *FighterTestSuite) TestHealCapsAtMax() {
	f := components.NewFighter(20, 0, 0)
	f.TakeDamage(15)
	f.Heal(4)
	s.Equal(9, f.HP)
	f.Heal(100)
	s.Equal(20, f.HP)
	f.Heal(-5)
	s.Equal(20, f.HP)
	s.InDelta(1.0, f.HealthRatio(), 1e-9)
}

func (s *FighterTestSuite) TestKoboldHitsPlayer() {
	player := components.NewFighter(30, 2, 5)
	kobold := components.NewFighter(10, 0, 3)

	expected := map[int]int{1: 1, 2: 1, 3: 1, 4: 2, 5: 3}
	for roll, want := range expected {
		s.roller.EXPECT().Roll(5).Return(roll, nil)
		got, err := components.CalculateDamage(s.roller, kobold, player)
		s.Require().NoError(err)
		s.Equal(want, got, "roll %d", roll)
	}
}

func (s *FighterTestSuite) TestDamageFloor() {
	for power := 0; power <= 10; power++ {
		for defense := 0; defense <= 10; defense++ {
			for roll := 1; roll <= 5; roll++ {
				s.roller.EXPECT().Roll(5).Return(roll, nil)
				got, err := components.CalculateDamage(s.roller,
					components.NewFighter(1, 0, power),
					components.NewFighter(1, defense, 0))
				s.Require().NoError(err)
				s.GreaterOrEqual(got, 1)
				s.Equal(max(1, power-defense+roll-3), got)
			}
		}
	}
}

func (s *FighterTestSuite) TestRollerFailure() {
	s.roller.EXPECT().Roll(5).Return(0, errors.Internal("dice jammed"))

	_, err := components.CalculateDamage(s.roller,
		components.NewFighter(10, 0, 3), components.NewFighter(10, 0, 3))
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *FighterTestSuite) TestMissingFighter() {
	_, err := components.CalculateDamage(s.roller, nil, components.NewFighter(1, 0, 0))
	s.True(errors.IsInvalidArgument(err))
}

func (s *FighterTestSuite) TestHealthRatio() {
	f := components.NewFighter(10, 0, 0)
	f.TakeDamage(8)
	s.InDelta(0.2, f.HealthRatio(), 1e-9)
	s.Equal(0.0, (&components.Fighter{}).HealthRatio())
}
