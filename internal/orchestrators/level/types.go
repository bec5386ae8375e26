package level

import (
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine"
)

// Snapshot is the read-only state of a level after an operation
type Snapshot struct {
	LevelID    string
	Seed       uint64
	StartedAt  time.Time
	Turn       int
	Width      int
	Height     int
	Map        string
	Entities   []engine.View
	Player     engine.Stats
	Inventory  []engine.InventoryEntry
	PlayerDead bool
}

// StartLevelInput defines the request for starting a level. A zero Seed
// with no SeedPhrase derives the seed from the level ID.
type StartLevelInput struct {
	Seed       uint64
	SeedPhrase string
	// Level overrides the service default
	Level *config.Level
}

// StartLevelOutput defines the response for starting a level
type StartLevelOutput struct {
	LevelID  string
	Snapshot *Snapshot
}

// MovePlayerInput defines the request for moving the player one step
type MovePlayerInput struct {
	LevelID string
	DX      int
	DY      int
}

// MovePlayerOutput defines the response for a move
type MovePlayerOutput struct {
	Result   engine.MoveResult
	Snapshot *Snapshot
}

// EndTurnInput defines the request for advancing a level one turn
type EndTurnInput struct {
	LevelID string
}

// EndTurnOutput defines the response for a finished turn
type EndTurnOutput struct {
	Report   *engine.TurnReport
	Snapshot *Snapshot
}

// GetLevelInput defines the request for reading a level
type GetLevelInput struct {
	LevelID string
}

// GetLevelOutput defines the response for reading a level
type GetLevelOutput struct {
	Snapshot *Snapshot
}

// EndLevelInput defines the request for closing a level
type EndLevelInput struct {
	LevelID string
}

// EndLevelOutput defines the response for closing a level
type EndLevelOutput struct {
	Turns    int
	Duration time.Duration
}

// ListLevelsInput defines the request for listing running levels
type ListLevelsInput struct{}

// ListLevelsOutput defines the response for listing running levels
type ListLevelsOutput struct {
	LevelIDs []string
}
