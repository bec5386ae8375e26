package levels

import (
	"context"
	"slices"
	"sync"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// InMemoryRepository implements Repository with a guarded map
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Level
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*Level),
	}
}

// Save stores a level
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Level == nil {
		return nil, errors.InvalidArgument("level is required")
	}

	if input.Level.ID == "" {
		return nil, errors.InvalidArgument("level ID is required")
	}

	if input.Level.Engine == nil {
		return nil, errors.InvalidArgument("level engine is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Level.ID] = input.Level

	return &SaveOutput{}, nil
}

// Get retrieves a level by ID. The returned level is shared, not a copy.
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.LevelID == "" {
		return nil, errors.InvalidArgument("level ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	level, exists := r.store[input.LevelID]
	if !exists {
		return nil, errors.NotFoundf("level %s not found", input.LevelID)
	}

	return &GetOutput{Level: level}, nil
}

// Delete removes a level and returns it
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.LevelID == "" {
		return nil, errors.InvalidArgument("level ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	level, exists := r.store[input.LevelID]
	if !exists {
		return nil, errors.NotFoundf("level %s not found", input.LevelID)
	}

	delete(r.store, input.LevelID)

	return &DeleteOutput{Level: level}, nil
}

// List returns every stored level ID
func (r *InMemoryRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return &ListOutput{LevelIDs: ids}, nil
}
