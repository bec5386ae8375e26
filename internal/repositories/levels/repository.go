// Package levels keeps the live levels of a process keyed by level ID.
// Levels hold running engines and are never serialized.
package levels

//go:generate mockgen -destination=mock/mock_repository.go -package=levelsmock github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels Repository

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/engine"
)

// Repository defines the storage interface for live levels
type Repository interface {
	// Save stores a level, replacing any level with the same ID
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a level by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a level
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns the stored level IDs in sorted order
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// Level is one running level. Callers hold the embedded mutex while they
// drive the engine so turns never interleave.
type Level struct {
	sync.Mutex

	ID        string
	Seed      uint64
	StartedAt time.Time
	Engine    *engine.Engine
}

// SaveInput defines the request for saving a level
type SaveInput struct {
	Level *Level
}

// SaveOutput defines the response for saving a level
type SaveOutput struct{}

// GetInput defines the request for retrieving a level
type GetInput struct {
	LevelID string
}

// GetOutput defines the response for retrieving a level
type GetOutput struct {
	Level *Level
}

// DeleteInput defines the request for deleting a level
type DeleteInput struct {
	LevelID string
}

// DeleteOutput defines the response for deleting a level
type DeleteOutput struct {
	Level *Level
}

// ListInput defines the request for listing levels
type ListInput struct{}

// ListOutput defines the response for listing levels
type ListOutput struct {
	LevelIDs []string
}
