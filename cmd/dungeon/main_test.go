package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dungeon/internal/components"
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/level"
	levelmock "github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/level/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

type CLITestSuite struct {
	suite.Suite
	grid *dungeon.Grid
}

func (s *CLITestSuite) SetupTest() {
	var err error
	s.grid, err = dungeon.ParseGrid([]string{
		"#########",
		"#.......#",
		"#.#####.#",
		"#.......#",
		"#########",
	})
	s.Require().NoError(err)
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func snapshotWith(px, py int, views ...engine.View) *level.Snapshot {
	player := engine.View{Kind: entities.KindPlayer, Name: "Player", Glyph: '@', X: px, Y: py, Visible: true, BlocksMovement: true}
	return &level.Snapshot{
		Player:   engine.Stats{HP: 30, MaxHP: 30, Pos: components.Pos{X: px, Y: py}},
		Entities: append([]engine.View{player}, views...),
	}
}

func (s *CLITestSuite) TestChooseStep_TowardMonster() {
	orc := engine.View{Kind: entities.KindMonster, Name: "Orc", Glyph: 'o', X: 7, Y: 1, Visible: true, BlocksMovement: true}

	dx, dy, ok := chooseStep(s.grid, snapshotWith(1, 1, orc))
	s.Require().True(ok)
	s.Equal(1, dx)
	s.Equal(0, dy)
}

func (s *CLITestSuite) TestChooseStep_AttacksAdjacentMonster() {
	orc := engine.View{Kind: entities.KindMonster, Name: "Orc", Glyph: 'o', X: 2, Y: 1, Visible: true, BlocksMovement: true}

	dx, dy, ok := chooseStep(s.grid, snapshotWith(1, 1, orc))
	s.Require().True(ok)
	s.Equal(1, dx)
	s.Equal(0, dy)
}

func (s *CLITestSuite) TestChooseStep_PrefersMonstersOverItems() {
	potion := engine.View{Kind: entities.KindItem, Name: "Health Potion", Glyph: '!', X: 1, Y: 3, Visible: true}
	orc := engine.View{Kind: entities.KindMonster, Name: "Orc", Glyph: 'o', X: 7, Y: 1, Visible: true, BlocksMovement: true}

	dx, dy, ok := chooseStep(s.grid, snapshotWith(1, 1, potion, orc))
	s.Require().True(ok)
	s.Equal(1, dx)
	s.Equal(0, dy)
}

func (s *CLITestSuite) TestChooseStep_FallsBackToItems() {
	potion := engine.View{Kind: entities.KindItem, Name: "Health Potion", Glyph: '!', X: 1, Y: 3, Visible: true}

	dx, dy, ok := chooseStep(s.grid, snapshotWith(1, 1, potion))
	s.Require().True(ok)
	s.Equal(0, dx)
	s.Equal(1, dy)
}

func (s *CLITestSuite) TestChooseStep_NothingLeft() {
	_, _, ok := chooseStep(s.grid, snapshotWith(1, 1))
	s.False(ok)
}

func (s *CLITestSuite) TestOverlay() {
	potion := engine.View{Kind: entities.KindItem, Glyph: '!', X: 3, Y: 1, Visible: true}
	hidden := engine.View{Kind: entities.KindMonster, Glyph: 'T', X: 5, Y: 1}

	got := overlay(s.grid, snapshotWith(1, 1, potion, hidden).Entities)
	s.Equal("#########\n#@.!....#\n#.#####.#\n#.......#\n#########\n", got)
}

func (s *CLITestSuite) TestParseMapRoundTrip() {
	g, err := parseMap(s.grid.Render())
	s.Require().NoError(err)
	s.Equal(s.grid.Render(), g.Render())
}

func (s *CLITestSuite) TestSurvey() {
	samples, err := survey(context.Background(), dungeon.Config{Width: 40, Height: 30, MinRoomSize: 6}, 1, 6, 3)
	s.Require().NoError(err)
	s.Len(samples, 6)
	for _, sm := range samples {
		s.LessOrEqual(sm.walls, dungeon.MaxWallFraction)
		s.Greater(sm.reachable, 0.0)
	}
}

func (s *CLITestSuite) TestSurvey_InvalidConfig() {
	_, err := survey(context.Background(), dungeon.Config{Width: 2, Height: 2}, 1, 2, 1)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestSimulate() {
	lvl := testutils.SmallLevel()

	svc, err := level.NewOrchestrator(&level.Config{
		Repository:  levels.NewInMemory(),
		IDGenerator: idgen.NewSequential("sim"),
		Level:       lvl,
	})
	s.Require().NoError(err)

	var out bytes.Buffer
	err = simulate(context.Background(), svc, &out, &level.StartLevelInput{SeedPhrase: "smoke"}, 20, true)
	s.Require().NoError(err)
	s.Contains(out.String(), "level sim_1")
	s.Contains(out.String(), "turns=")

	list, err := svc.ListLevels(context.Background(), &level.ListLevelsInput{})
	s.Require().NoError(err)
	s.Empty(list.LevelIDs)
}

func (s *CLITestSuite) TestSetupLogging() {
	s.NoError(setupLogging("debug"))
	s.NoError(setupLogging("WARN"))
	s.True(errors.IsInvalidArgument(setupLogging("loud")))
	s.NoError(setupLogging("warn"))
}

func (s *CLITestSuite) TestSimulate_StopsOnServiceError() {
	ctrl := gomock.NewController(s.T())
	svc := levelmock.NewMockService(ctrl)

	start := &level.StartLevelInput{Seed: 9}
	svc.EXPECT().
		StartLevel(gomock.Any(), start).
		Return(&level.StartLevelOutput{
			LevelID: "level_1",
			Snapshot: &level.Snapshot{
				Map:    "#####\n#...#\n#####\n",
				Player: engine.Stats{HP: 30, MaxHP: 30, Pos: components.Pos{X: 1, Y: 1}},
				Entities: []engine.View{
					{Kind: entities.KindMonster, Name: "Orc", X: 3, Y: 1, BlocksMovement: true},
				},
			},
		}, nil)
	svc.EXPECT().
		MovePlayer(gomock.Any(), &level.MovePlayerInput{LevelID: "level_1", DX: 1}).
		Return(nil, errors.NotFound("level level_1 not found"))

	var out bytes.Buffer
	err := simulate(context.Background(), svc, &out, start, 10, false)
	s.True(errors.IsNotFound(err))
}
