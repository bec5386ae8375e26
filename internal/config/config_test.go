package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaultIsValid() {
	level := config.Default()
	s.Require().NoError(level.Validate())

	s.Equal(20, level.MonsterBudget())
	s.Equal(15, level.ItemBudget())
	s.Len(level.Monsters, 5)
	s.Len(level.Items, 4)
	s.Equal(config.FighterStats{HP: 30, Defense: 2, Power: 5}, level.Player.Stats)
	s.Equal('@', config.Rune(level.Player.Glyph))
}

func (s *ConfigTestSuite) TestBudgetsShrinkWithArea() {
	level := config.Default()
	level.Width, level.Height = 20, 12
	s.Equal(8, level.MonsterBudget())
	s.Equal(6, level.ItemBudget())

	level.MonsterArea = 0
	s.Equal(20, level.MonsterBudget())
}

func (s *ConfigTestSuite) TestEmptyDocumentYieldsDefaults() {
	level, err := config.LoadYAML(strings.NewReader(""))
	s.Require().NoError(err)
	s.Equal(config.Default(), level)
}

func (s *ConfigTestSuite) TestOverridesKeepOtherDefaults() {
	doc := `
width: 40
height: 30
player:
  name: Hero
  glyph: "@"
  stats:
    hp: 50
    defense: 1
    power: 7
monsters:
  - name: Slime
    glyph: s
    weight: 1
    color: {g: 200}
    stats: {hp: 4, defense: 0, power: 1}
`
	level, err := config.LoadYAML(strings.NewReader(doc))
	s.Require().NoError(err)

	s.Equal(40, level.Width)
	s.Equal(30, level.Height)
	s.Equal(6, level.MinRoomSize)
	s.Equal("Hero", level.Player.Name)
	s.Equal(50, level.Player.Stats.HP)
	s.Require().Len(level.Monsters, 1)
	s.Equal(uint8(200), level.Monsters[0].Color.G)
	s.Len(level.Items, 4)
}

func (s *ConfigTestSuite) TestRejectsBadValues() {
	testCases := []struct {
		name string
		doc  string
	}{
		{"tiny width", "width: 3"},
		{"long glyph", "player: {name: P, glyph: ab, stats: {hp: 3}}"},
		{"zero weights", "monsters: [{name: a, glyph: a, weight: 0, stats: {hp: 1}}]"},
		{"negative weight", "monsters: [{name: a, glyph: a, weight: -0.5, stats: {hp: 1}}]"},
		{"weight above one", "monsters: [{name: a, glyph: a, weight: 3, stats: {hp: 1}}]"},
		{"big inventory", "inventory_capacity: 40"},
		{"not yaml", "width: [unclosed"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.LoadYAML(strings.NewReader(tc.doc))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *ConfigTestSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "level.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("max_items: 0\nitems: []\n"), 0o600))

	level, err := config.LoadFile(path)
	s.Require().NoError(err)
	s.Equal(0, level.ItemBudget())
	s.Empty(level.Items)

	_, err = config.LoadFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.True(errors.IsNotFound(err))
}
