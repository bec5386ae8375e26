package dungeon

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"
)

const (
	// DefaultMinRoomSize is the BSP minimum region edge
	DefaultMinRoomSize = 6
	// MinDimension is the smallest accepted width or height
	MinDimension = 8
	// MaxWallFraction is the wall density every generated grid stays under
	MaxWallFraction = 0.60

	// maxCorrectionRounds bounds the extra open-up rounds before forceOpen
	maxCorrectionRounds = 8
)

// Config holds the generation parameters
type Config struct {
	Width       int
	Height      int
	MinRoomSize int
}

// Validate checks the generation parameters
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMinimum("width", c.Width, MinDimension, vb)
	errors.ValidateMinimum("height", c.Height, MinDimension, vb)
	errors.ValidateMinimum("min_room_size", c.MinRoomSize, 1, vb)
	return vb.Build()
}

// Result is a finished grid plus the rooms it was carved from
type Result struct {
	Grid  *Grid
	Rooms []Rect

	CavePasses       int
	CorrectionRounds int
}

// Generator builds grids from an injected random source
type Generator struct {
	rng *random.Source
}

// NewGenerator creates a generator drawing from rng
func NewGenerator(rng *random.Source) *Generator {
	return &Generator{rng: rng}
}

// Generate lays out BSP rooms, links them with corridors, erodes caves into
// the remaining rock and opens the map up until the wall fraction is at most
// MaxWallFraction. A zero MinRoomSize means DefaultMinRoomSize.
func (g *Generator) Generate(cfg Config) (*Result, error) {
	if cfg.MinRoomSize == 0 {
		cfg.MinRoomSize = DefaultMinRoomSize
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generator config")
	}

	grid := newGrid(cfg.Width, cfg.Height)

	root := &bspNode{x: 0, y: 0, w: cfg.Width, h: cfg.Height}
	root.split(g.rng, cfg.MinRoomSize)
	rooms := root.collectRooms(nil)

	for _, r := range rooms {
		grid.carveRoom(r)
	}
	grid.connectRooms(g.rng, rooms)

	result := &Result{
		Grid:  grid,
		Rooms: rooms,
	}
	result.CavePasses = grid.erodeCaves(g.rng)

	before := grid.WallFraction()
	result.CorrectionRounds = g.correctDensity(grid)

	slog.Debug("Dungeon generated",
		"width", cfg.Width,
		"height", cfg.Height,
		"rooms", len(rooms),
		"cave_passes", result.CavePasses,
		"wall_fraction_before", before,
		"wall_fraction", grid.WallFraction(),
		"correction_rounds", result.CorrectionRounds,
	)

	return result, nil
}

// correctDensity opens up an over-dense grid. The first round mirrors the
// classic pass (three open-ups plus ten corridors); further rounds repeat it
// and a final forceOpen makes the bound hold. Returns the rounds used.
func (g *Generator) correctDensity(grid *Grid) int {
	rounds := 0
	for grid.WallFraction() > MaxWallFraction && rounds < maxCorrectionRounds {
		rounds++
		for i := 0; i < openPasses; i++ {
			grid.openUp()
		}
		grid.randomCorridors(g.rng, extraCorridors)
	}

	if grid.WallFraction() > MaxWallFraction {
		total := grid.width * grid.height
		grid.forceOpen(int(math.Floor(MaxWallFraction * float64(total))))
	}
	return rounds
}
