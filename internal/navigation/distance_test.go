package navigation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/navigation"
)

// asciiTerrain reads '#' as wall and anything else as floor
type asciiTerrain []string

func parse(rows string) asciiTerrain {
	return asciiTerrain(strings.Split(strings.TrimSpace(rows), "\n"))
}

func (t asciiTerrain) Width() int  { return len(t[0]) }
func (t asciiTerrain) Height() int { return len(t) }
func (t asciiTerrain) IsWalkable(x, y int) bool {
	if x < 0 || y < 0 || y >= len(t) || x >= len(t[y]) {
		return false
	}
	return t[y][x] != '#'
}

type DistanceTestSuite struct {
	suite.Suite
}

func TestDistanceSuite(t *testing.T) {
	suite.Run(t, new(DistanceTestSuite))
}

func (s *DistanceTestSuite) TestWeightedDistances() {
	cost := navigation.NewCostField(parse(`
.....
.....
.....
`))
	field := navigation.Compute(cost, 0, 0)

	d, ok := field.Distance(0, 0)
	s.True(ok)
	s.Equal(0, d)

	d, _ = field.Distance(1, 0)
	s.Equal(2, d)
	d, _ = field.Distance(1, 1)
	s.Equal(3, d)
	d, _ = field.Distance(4, 2)
	s.Equal(3+3+2+2, d)

	_, ok = field.Distance(9, 9)
	s.False(ok)
}

func (s *DistanceTestSuite) TestBlockedRootStillSeeds() {
	cost := navigation.NewCostField(parse(`
...
...
`))
	cost.Block(1, 0)
	s.False(cost.Passable(1, 0))

	field := navigation.Compute(cost, 1, 0)
	d, ok := field.Distance(1, 1)
	s.True(ok)
	s.Equal(2, d)
}

func (s *DistanceTestSuite) TestWallsSplitRegions() {
	cost := navigation.NewCostField(parse(`
..#..
..#..
..#..
`))
	field := navigation.Compute(cost, 0, 0)
	_, ok := field.Distance(4, 2)
	s.False(ok)
	_, _, ok = field.FirstStep(4, 2)
	s.False(ok)
}

func (s *DistanceTestSuite) TestFirstStepReducesDistance() {
	cost := navigation.NewCostField(parse(`
..........
.####.....
.#........
.#..####..
..........
`))
	cost.Block(0, 0)
	field := navigation.Compute(cost, 0, 0)

	for y := 0; y < cost.Height; y++ {
		for x := 0; x < cost.Width; x++ {
			own, ok := field.Distance(x, y)
			if !ok || own == 0 || !cost.Passable(x, y) {
				continue
			}
			nx, ny, ok := field.FirstStep(x, y)
			s.Require().True(ok, "(%d,%d)", x, y)
			next, _ := field.Distance(nx, ny)
			s.Less(next, own)
			s.LessOrEqual(max(abs(nx-x), abs(ny-y)), 1)
			s.Equal(own, next+stepCost(nx-x, ny-y), "(%d,%d) steps off the shortest path", x, y)
		}
	}
}

func stepCost(dx, dy int) int {
	if dx != 0 && dy != 0 {
		return 3
	}
	return 2
}

func (s *DistanceTestSuite) TestFirstStepPrefersCheaperStep() {
	// From (5,3) the SW and W neighbors both sit at 12, but only the
	// cardinal step keeps the path at 14.
	cost := navigation.NewCostField(parse(`
..####
.#.###
.##.##
...#..
.##..#
`))
	field := navigation.Compute(cost, 0, 1)

	own, ok := field.Distance(5, 3)
	s.Require().True(ok)
	s.Equal(14, own)
	sw, _ := field.Distance(4, 4)
	w, _ := field.Distance(4, 3)
	s.Equal(12, sw)
	s.Equal(12, w)

	x, y, ok := field.FirstStep(5, 3)
	s.Require().True(ok)
	s.Equal([2]int{4, 3}, [2]int{x, y})
}

func (s *DistanceTestSuite) TestFirstStepAtRoot() {
	cost := navigation.NewCostField(parse(`
...
`))
	field := navigation.Compute(cost, 1, 0)
	_, _, ok := field.FirstStep(1, 0)
	s.False(ok)

	x, y, ok := field.FirstStep(2, 0)
	s.True(ok)
	s.Equal([2]int{1, 0}, [2]int{x, y})
}

func (s *DistanceTestSuite) TestFleeMovesAway() {
	cost := navigation.NewCostField(parse(`
...........
...........
...........
...........
...........
`))
	cost.Block(2, 2)
	field := navigation.Compute(cost, 2, 2)

	own, _ := field.Distance(4, 2)
	x, y, ok := field.FleeStep(cost, 4, 2)
	s.Require().True(ok)
	next, _ := field.Distance(x, y)
	s.Greater(next, own)
	s.Equal(5, x)
}

func (s *DistanceTestSuite) TestFleeFirstMaximumWins() {
	cost := navigation.NewCostField(parse(`
...
...
...
`))
	cost.Block(1, 1)
	field := navigation.Compute(cost, 1, 1)

	// (0,0) and (2,0) tie at 3; the dx=-1 column is scanned first.
	x, y, ok := field.FleeStep(cost, 1, 0)
	s.Require().True(ok)
	s.Equal([2]int{0, 0}, [2]int{x, y})
}

func (s *DistanceTestSuite) TestFleeBoxedIn() {
	cost := navigation.NewCostField(parse(`
###
#.#
###
`))
	field := navigation.Compute(cost, 0, 0)
	_, _, ok := field.FleeStep(cost, 1, 1)
	s.False(ok)
}

func TestCostFieldBounds(t *testing.T) {
	cost := navigation.NewCostField(parse(`
.#
`))
	require.Equal(t, 2, cost.Width)
	assert.True(t, cost.Passable(0, 0))
	assert.False(t, cost.Passable(1, 0))
	assert.False(t, cost.Passable(-1, 0))
	cost.Block(5, 5)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
