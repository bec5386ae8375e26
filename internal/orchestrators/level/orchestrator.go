// Package level implements the level orchestrator: it starts levels, routes
// player intents to the right engine and serializes turns per level.
package level

//go:generate mockgen -destination=mock/mock_service.go -package=levelmock github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/level Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

// Service defines the interface for level operations
type Service interface {
	// StartLevel generates and populates a new level
	StartLevel(ctx context.Context, input *StartLevelInput) (*StartLevelOutput, error)

	// MovePlayer moves or attacks with the player
	MovePlayer(ctx context.Context, input *MovePlayerInput) (*MovePlayerOutput, error)

	// EndTurn lets every monster act once
	EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error)

	// GetLevel returns the current level state
	GetLevel(ctx context.Context, input *GetLevelInput) (*GetLevelOutput, error)

	// EndLevel closes a level
	EndLevel(ctx context.Context, input *EndLevelInput) (*EndLevelOutput, error)

	// ListLevels returns the running level IDs
	ListLevels(ctx context.Context, input *ListLevelsInput) (*ListLevelsOutput, error)
}

// Config holds the dependencies for the level orchestrator
type Config struct {
	Repository  levels.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// Level is the default level config; config.Default when nil
	Level *config.Level
	// EventBus is shared by every level; events carry the level ID.
	// Each level gets a private bus when nil.
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	if c.Level != nil {
		if err := c.Level.Validate(); err != nil {
			vb.InvalidField("Level", errors.GetMessage(err))
		}
	}

	return vb.Build()
}

type orchestrator struct {
	repo  levels.Repository
	idGen idgen.Generator
	clock clock.Clock
	level *config.Level
	bus   events.EventBus
}

// NewOrchestrator creates a new level orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	lvl := cfg.Level
	if lvl == nil {
		lvl = config.Default()
	}

	return &orchestrator{
		repo:  cfg.Repository,
		idGen: cfg.IDGenerator,
		clock: clk,
		level: lvl,
		bus:   cfg.EventBus,
	}, nil
}

// StartLevel generates and populates a new level
func (o *orchestrator) StartLevel(ctx context.Context, input *StartLevelInput) (*StartLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	lvlConfig := o.level
	if input.Level != nil {
		if err := input.Level.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid level config")
		}
		lvlConfig = input.Level
	}

	levelID := o.idGen.Generate()

	seed := input.Seed
	switch {
	case input.SeedPhrase != "":
		seed = random.SeedFromPhrase(input.SeedPhrase)
	case seed == 0:
		seed = random.SeedFromPhrase(levelID)
	}

	eng, err := engine.New(&engine.Config{
		Level:    lvlConfig,
		Source:   random.New(seed),
		EventBus: o.bus,
		ID:       levelID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build level %s", levelID)
	}

	lvl := &levels.Level{
		ID:        levelID,
		Seed:      seed,
		StartedAt: o.clock.Now(),
		Engine:    eng,
	}
	if _, err := o.repo.Save(ctx, &levels.SaveInput{Level: lvl}); err != nil {
		return nil, errors.Wrapf(err, "failed to save level %s", levelID)
	}

	slog.Info("Level started",
		"level_id", levelID,
		"seed", seed,
		"width", eng.Grid().Width(),
		"height", eng.Grid().Height(),
		"rooms", len(eng.Rooms()),
		"entities", len(eng.ActiveRefs()),
	)

	return &StartLevelOutput{
		LevelID:  levelID,
		Snapshot: snapshot(lvl),
	}, nil
}

// MovePlayer moves or attacks with the player
func (o *orchestrator) MovePlayer(ctx context.Context, input *MovePlayerInput) (*MovePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("level_id", input.LevelID, vb)
	errors.ValidateRange("dx", input.DX, -1, 1, vb)
	errors.ValidateRange("dy", input.DY, -1, 1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	lvl, err := o.get(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}

	lvl.Lock()
	defer lvl.Unlock()

	if err := playerAlive(lvl); err != nil {
		return nil, err
	}

	result, err := lvl.Engine.MovePlayer(ctx, input.DX, input.DY)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to move player in level %s", lvl.ID)
	}

	slog.Debug("Player moved",
		"level_id", lvl.ID,
		"outcome", result.Outcome.String(),
		"damage", result.Damage,
		"picked_up", len(result.PickedUp),
	)

	return &MovePlayerOutput{
		Result:   result,
		Snapshot: snapshot(lvl),
	}, nil
}

// EndTurn lets every monster act once
func (o *orchestrator) EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	lvl, err := o.get(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}

	lvl.Lock()
	defer lvl.Unlock()

	if err := playerAlive(lvl); err != nil {
		return nil, err
	}

	report, err := lvl.Engine.Update(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to advance level %s", lvl.ID)
	}

	if report.PlayerDead {
		slog.Info("Player died",
			"level_id", lvl.ID,
			"turn", report.Turn,
		)
	}

	return &EndTurnOutput{
		Report:   report,
		Snapshot: snapshot(lvl),
	}, nil
}

// GetLevel returns the current level state
func (o *orchestrator) GetLevel(ctx context.Context, input *GetLevelInput) (*GetLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	lvl, err := o.get(ctx, input.LevelID)
	if err != nil {
		return nil, err
	}

	lvl.Lock()
	defer lvl.Unlock()

	return &GetLevelOutput{Snapshot: snapshot(lvl)}, nil
}

// EndLevel closes a level
func (o *orchestrator) EndLevel(ctx context.Context, input *EndLevelInput) (*EndLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LevelID == "" {
		return nil, errors.InvalidArgument("level ID is required")
	}

	out, err := o.repo.Delete(ctx, &levels.DeleteInput{LevelID: input.LevelID})
	if err != nil {
		return nil, err
	}

	lvl := out.Level
	lvl.Lock()
	defer lvl.Unlock()

	duration := o.clock.Now().Sub(lvl.StartedAt)
	slog.Info("Level ended",
		"level_id", lvl.ID,
		"turns", lvl.Engine.Turn(),
		"duration", duration,
	)

	return &EndLevelOutput{
		Turns:    lvl.Engine.Turn(),
		Duration: duration,
	}, nil
}

// ListLevels returns the running level IDs
func (o *orchestrator) ListLevels(ctx context.Context, input *ListLevelsInput) (*ListLevelsOutput, error) {
	out, err := o.repo.List(ctx, &levels.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}
	return &ListLevelsOutput{LevelIDs: out.LevelIDs}, nil
}

func (o *orchestrator) get(ctx context.Context, levelID string) (*levels.Level, error) {
	if levelID == "" {
		return nil, errors.InvalidArgument("level ID is required")
	}

	out, err := o.repo.Get(ctx, &levels.GetInput{LevelID: levelID})
	if err != nil {
		return nil, err
	}
	return out.Level, nil
}

func playerAlive(lvl *levels.Level) error {
	if stats, ok := lvl.Engine.PlayerStats(); ok && stats.HP > 0 {
		return nil
	}
	return errors.FailedPreconditionf("player is dead in level %s", lvl.ID)
}

// snapshot must be called with the level lock held
func snapshot(lvl *levels.Level) *Snapshot {
	eng := lvl.Engine
	stats, _ := eng.PlayerStats()
	return &Snapshot{
		LevelID:    lvl.ID,
		Seed:       lvl.Seed,
		StartedAt:  lvl.StartedAt,
		Turn:       eng.Turn(),
		Width:      eng.Grid().Width(),
		Height:     eng.Grid().Height(),
		Map:        eng.Grid().Render(),
		Entities:   eng.Entities(),
		Player:     stats,
		Inventory:  eng.Inventory(),
		PlayerDead: stats.HP <= 0,
	}
}
