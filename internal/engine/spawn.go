package engine

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-dungeon/internal/components"
	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

const (
	// spawnWindow is the edge of the square checked around a player spawn
	spawnWindow = 5
	// spawnMargin keeps player spawn samples away from the map border
	spawnMargin = 5
)

func (e *Engine) spawnPlayer() error {
	x, y, err := e.findPlayerSpawn()
	if err != nil {
		return err
	}

	p := e.level.Player
	ref, err := e.Spawn(entities.Spec{
		Kind:           entities.KindPlayer,
		Name:           p.Name,
		Glyph:          config.Rune(p.Glyph),
		Color:          rgb(p.Color),
		X:              x,
		Y:              y,
		BlocksMovement: true,
		Fighter:        components.NewFighter(p.Stats.HP, p.Stats.Defense, p.Stats.Power),
		Inventory:      components.NewInventory(e.level.InventoryCapacity),
	})
	if err != nil {
		return errors.Wrap(err, "failed to spawn player")
	}
	e.player = ref
	return nil
}

// findPlayerSpawn samples random floor cells for a fully open 5x5 window.
// Without one it settles for the most open window seen, then for the first
// floor cell in scan order.
func (e *Engine) findPlayerSpawn() (int, int, error) {
	loX, hiX := spawnSpan(e.grid.Width())
	loY, hiY := spawnSpan(e.grid.Height())
	full := spawnWindow * spawnWindow

	bestX, bestY, bestOpen := 0, 0, -1
	for i := 0; i < e.level.PlacementAttempts; i++ {
		x := e.rng.IntRange(loX, hiX)
		y := e.rng.IntRange(loY, hiY)
		if !e.grid.IsWalkable(x, y) {
			continue
		}

		open := e.openAround(x, y)
		if open == full {
			return x, y, nil
		}
		if open > bestOpen {
			bestX, bestY, bestOpen = x, y, open
		}
	}

	if bestOpen >= 0 {
		slog.Warn("No fully open spawn found, using best candidate",
			"x", bestX,
			"y", bestY,
			"open_cells", bestOpen,
		)
		return bestX, bestY, nil
	}

	x, y, ok := e.grid.FirstFloor()
	if !ok {
		return 0, 0, errors.FailedPrecondition("grid has no floor to spawn on")
	}
	slog.Warn("Spawn samples found no floor, using first floor cell", "x", x, "y", y)
	return x, y, nil
}

// openAround counts floor cells in the 5x5 window centered on (x, y),
// clipped to the grid.
func (e *Engine) openAround(x, y int) int {
	half := spawnWindow / 2
	n := 0
	for cy := y - half; cy <= y+half; cy++ {
		for cx := x - half; cx <= x+half; cx++ {
			if e.grid.IsWalkable(cx, cy) {
				n++
			}
		}
	}
	return n
}

// spawnSpan returns [5, dim-5], or the whole axis on small maps
func spawnSpan(dim int) (int, int) {
	lo, hi := spawnMargin, dim-spawnMargin
	if hi < lo {
		return 0, dim - 1
	}
	return lo, min(hi, dim-1)
}

// cellFinder returns a sampler of free floor cells with its own budget of
// PlacementAttempts random draws, and a counter of draws spent so far.
func (e *Engine) cellFinder() (func() (int, int, bool), func() int) {
	w, h := e.grid.Width(), e.grid.Height()
	attempts := 0
	find := func() (int, int, bool) {
		for attempts < e.level.PlacementAttempts {
			attempts++
			x, y := e.rng.IntN(w), e.rng.IntN(h)
			if e.grid.IsWalkable(x, y) && !e.occupied(x, y) {
				return x, y, true
			}
		}
		return 0, 0, false
	}
	return find, func() int { return attempts }
}

// populate places monsters, then items, on free floor cells. Each phase
// gets its own budget of random draws.
func (e *Engine) populate() error {
	weights := make([]float64, len(e.level.Monsters))
	for i, m := range e.level.Monsters {
		weights[i] = m.Weight
	}

	freeForMonster, monsterAttempts := e.cellFinder()
	monsters := 0
	for want := e.level.MonsterBudget(); monsters < want && len(weights) > 0; monsters++ {
		x, y, ok := freeForMonster()
		if !ok {
			break
		}
		m := e.level.Monsters[e.rng.WeightedIndex(weights)]
		_, err := e.Spawn(entities.Spec{
			Kind:           entities.KindMonster,
			Name:           m.Name,
			Glyph:          config.Rune(m.Glyph),
			Color:          rgb(m.Color),
			X:              x,
			Y:              y,
			BlocksMovement: true,
			Fighter:        components.NewFighter(m.Stats.HP, m.Stats.Defense, m.Stats.Power),
			AI:             components.NewAI(m.Name),
		})
		if err != nil {
			return errors.Wrapf(err, "failed to place %s", m.Name)
		}
	}

	freeForItem, itemAttempts := e.cellFinder()
	items := 0
	for want := e.level.ItemBudget(); items < want && len(e.level.Items) > 0; items++ {
		x, y, ok := freeForItem()
		if !ok {
			break
		}
		it := e.level.Items[e.rng.IntN(len(e.level.Items))]
		_, err := e.Spawn(entities.Spec{
			Kind:  entities.KindItem,
			Name:  it.Name,
			Glyph: config.Rune(it.Glyph),
			Color: rgb(it.Color),
			X:     x,
			Y:     y,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to place %s", it.Name)
		}
	}

	slog.Debug("Level populated",
		"monsters", monsters,
		"items", items,
		"monster_attempts", monsterAttempts(),
		"item_attempts", itemAttempts(),
	)
	return nil
}

func rgb(c config.Color) entities.RGB {
	return entities.RGB{R: c.R, G: c.G, B: c.B}
}
