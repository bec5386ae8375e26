package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/navigation"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/level"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

var (
	simTurns      int
	simSeed       uint64
	simSeedPhrase string
	simShowMap    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a level headless",
	Long: `Start a level and let a greedy player walk toward the nearest monster,
falling back to the nearest item, until the turn limit, death or an empty level.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simTurns, "turns", 200, "turn limit")
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "random seed (derived from the level ID when 0)")
	simulateCmd.Flags().StringVar(&simSeedPhrase, "seed-phrase", "", "derive the seed from a phrase")
	simulateCmd.Flags().BoolVar(&simShowMap, "map", false, "print the final map with entities")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	lvl, err := loadLevel()
	if err != nil {
		return err
	}

	svc, err := level.NewOrchestrator(&level.Config{
		Repository:  levels.NewInMemory(),
		IDGenerator: idgen.NewUUID("level"),
		Clock:       clock.New(),
		Level:       lvl,
	})
	if err != nil {
		return err
	}

	return simulate(ctx, svc, cmd.OutOrStdout(), &level.StartLevelInput{
		Seed:       simSeed,
		SeedPhrase: simSeedPhrase,
	}, simTurns, simShowMap)
}

func simulate(ctx context.Context, svc level.Service, out io.Writer, start *level.StartLevelInput, turns int, showMap bool) error {
	started, err := svc.StartLevel(ctx, start)
	if err != nil {
		return err
	}
	snap := started.Snapshot
	fmt.Fprintf(out, "level %s seed=%d entities=%d\n", started.LevelID, snap.Seed, len(snap.Entities))

	grid, err := parseMap(snap.Map)
	if err != nil {
		return err
	}

	for snap.Turn < turns && !snap.PlayerDead {
		if err := ctx.Err(); err != nil {
			break
		}

		dx, dy, ok := chooseStep(grid, snap)
		if !ok {
			fmt.Fprintln(out, "nothing left to chase")
			break
		}

		moved, err := svc.MovePlayer(ctx, &level.MovePlayerInput{
			LevelID: started.LevelID,
			DX:      dx,
			DY:      dy,
		})
		if err != nil {
			return err
		}
		printMessages(out, snap.Turn, moved.Result.Messages)

		ended, err := svc.EndTurn(ctx, &level.EndTurnInput{LevelID: started.LevelID})
		if err != nil {
			return err
		}
		printMessages(out, ended.Report.Turn, ended.Report.Messages)
		snap = ended.Snapshot
	}

	if showMap {
		fmt.Fprint(out, overlay(grid, snap.Entities))
	}

	ended, err := svc.EndLevel(ctx, &level.EndLevelInput{LevelID: started.LevelID})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "turns=%d hp=%d/%d items=%d dead=%t elapsed=%s\n",
		ended.Turns, snap.Player.HP, snap.Player.MaxHP, len(snap.Inventory),
		snap.PlayerDead, ended.Duration)
	return nil
}

func printMessages(out io.Writer, turn int, messages []string) {
	for _, m := range messages {
		fmt.Fprintf(out, "[%d] %s\n", turn, m)
	}
}

func parseMap(m string) (*dungeon.Grid, error) {
	return dungeon.ParseGrid(strings.Split(strings.TrimSuffix(m, "\n"), "\n"))
}

// chooseStep returns the player's first step toward the nearest reachable
// monster, or the nearest item when no monster is reachable.
func chooseStep(grid *dungeon.Grid, snap *level.Snapshot) (int, int, bool) {
	px, py := snap.Player.Pos.X, snap.Player.Pos.Y

	for _, kind := range []entities.Kind{entities.KindMonster, entities.KindItem} {
		cost := navigation.NewCostField(grid)
		for _, v := range snap.Entities {
			if v.BlocksMovement && v.Kind != entities.KindPlayer {
				cost.Block(v.X, v.Y)
			}
		}

		// Monsters block their own cells, so distances are measured from
		// the player and the target is approached through a neighbor.
		field := navigation.Compute(cost, px, py)
		target, found := nearest(field, snap.Entities, kind)
		if !found {
			continue
		}

		toTarget := navigation.Compute(cost, target.X, target.Y)
		nx, ny, ok := toTarget.FirstStep(px, py)
		if ok {
			return nx - px, ny - py, true
		}
	}
	return 0, 0, false
}

// nearest picks the closest entity of kind by path distance. Blocking
// targets are scored through their cheapest open neighbor.
func nearest(field *navigation.DistanceField, views []engine.View, kind entities.Kind) (engine.View, bool) {
	var best engine.View
	bestDist, found := 0, false
	for _, v := range views {
		if v.Kind != kind {
			continue
		}
		d, ok := field.Distance(v.X, v.Y)
		if !ok {
			d, ok = neighborDistance(field, v.X, v.Y)
		}
		if !ok {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = v, d, true
		}
	}
	return best, found
}

func neighborDistance(field *navigation.DistanceField, x, y int) (int, bool) {
	best, found := 0, false
	for _, dir := range navigation.DirVectors {
		d, ok := field.Distance(x+dir[0], y+dir[1])
		if ok && (!found || d < best) {
			best, found = d, true
		}
	}
	return best, found
}

// overlay draws visible entities over the map: items, then monsters, then
// the player on top.
func overlay(grid *dungeon.Grid, views []engine.View) string {
	rows := make([][]rune, grid.Height())
	for y := range rows {
		rows[y] = make([]rune, grid.Width())
		for x := range rows[y] {
			rows[y][x] = '#'
			if grid.IsWalkable(x, y) {
				rows[y][x] = '.'
			}
		}
	}

	for _, pass := range []entities.Kind{entities.KindItem, entities.KindMonster, entities.KindPlayer} {
		for _, v := range views {
			if v.Kind == pass && v.Visible && grid.InBounds(v.X, v.Y) {
				rows[v.Y][v.X] = v.Glyph
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
