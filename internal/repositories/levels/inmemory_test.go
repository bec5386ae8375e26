package levels_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/engine"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

type InMemoryTestSuite struct {
	suite.Suite
	repo *levels.InMemoryRepository
	ctx  context.Context
}

func (s *InMemoryTestSuite) SetupTest() {
	s.repo = levels.NewInMemory()
	s.ctx = context.Background()
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) level(id string) *levels.Level {
	e, err := engine.New(&engine.Config{Source: random.New(1)})
	s.Require().NoError(err)
	return &levels.Level{ID: id, Seed: 1, Engine: e}
}

func (s *InMemoryTestSuite) TestSaveGetDelete() {
	lvl := s.level("level-1")
	_, err := s.repo.Save(s.ctx, &levels.SaveInput{Level: lvl})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &levels.GetInput{LevelID: "level-1"})
	s.Require().NoError(err)
	s.Same(lvl, got.Level)

	deleted, err := s.repo.Delete(s.ctx, &levels.DeleteInput{LevelID: "level-1"})
	s.Require().NoError(err)
	s.Same(lvl, deleted.Level)

	_, err = s.repo.Get(s.ctx, &levels.GetInput{LevelID: "level-1"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestList() {
	for _, id := range []string{"b", "a", "c"} {
		_, err := s.repo.Save(s.ctx, &levels.SaveInput{Level: s.level(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &levels.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, out.LevelIDs)
}

func (s *InMemoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &levels.SaveInput{Level: &levels.Level{ID: "x"}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &levels.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, &levels.DeleteInput{LevelID: "missing"})
	s.True(errors.IsNotFound(err))
}
