package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils/builders"
)

func openEngine(t *testing.T, attempts int) *Engine {
	t.Helper()
	rows := make([]string, 8)
	for i := range rows {
		rows[i] = strings.Repeat(".", 8)
	}
	grid, err := dungeon.ParseGrid(rows)
	require.NoError(t, err)

	level := builders.NewLevelBuilder().WithSize(8, 8).WithoutPopulation().Build()
	level.PlacementAttempts = attempts

	e, err := New(&Config{Level: level, Source: random.New(5), Grid: grid})
	require.NoError(t, err)
	return e
}

func TestCellFindersKeepSeparateBudgets(t *testing.T) {
	e := openEngine(t, 4)

	var fillers []handle.Ref
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if e.occupied(x, y) {
				continue
			}
			ref, err := e.Spawn(entities.Spec{Name: "Crate", X: x, Y: y, BlocksMovement: true})
			require.NoError(t, err)
			fillers = append(fillers, ref)
		}
	}

	first, firstSpent := e.cellFinder()
	_, _, ok := first()
	assert.False(t, ok, "every cell is taken")
	assert.Equal(t, 4, firstSpent())

	for _, ref := range fillers {
		e.remove(ref)
	}
	_, _, ok = first()
	assert.False(t, ok, "an exhausted finder stays exhausted")
	assert.Equal(t, 4, firstSpent())

	second, secondSpent := e.cellFinder()
	x, y, ok := second()
	require.True(t, ok, "a new phase starts with a fresh budget")
	assert.True(t, e.grid.IsWalkable(x, y))
	assert.False(t, e.occupied(x, y))
	assert.LessOrEqual(t, secondSpent(), 4)
}

func TestOccupancyFollowsRemoval(t *testing.T) {
	e := openEngine(t, 10)

	crate, err := e.Spawn(entities.Spec{Name: "Crate", X: 1, Y: 1, BlocksMovement: true})
	require.NoError(t, err)
	coin, err := e.Spawn(entities.Spec{Kind: entities.KindItem, Name: "Coin", X: 1, Y: 1})
	require.Error(t, err, "nothing lands on a blocker")
	assert.True(t, coin.IsNil())

	got, ok := e.BlockerAt(1, 1, handle.Nil)
	require.True(t, ok)
	assert.Equal(t, crate, got)
	_, ok = e.BlockerAt(1, 1, crate)
	assert.False(t, ok)

	e.remove(crate)
	assert.False(t, e.occupied(1, 1))
	_, err = e.Spawn(entities.Spec{Kind: entities.KindItem, Name: "Coin", X: 1, Y: 1})
	require.NoError(t, err)
	assert.True(t, e.occupied(1, 1))
}
