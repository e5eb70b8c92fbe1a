package combat

import (
	"context"
	"sort"
	"sync"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
)

// inMemoryRepository keeps the archive in process memory.
// It serves deployments without a database and tests.
type inMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*entities.CombatRecord
	// order preserves insertion for stable listing of equal timestamps
	order []string
}

// NewInMemory creates an empty in-memory combat archive
func NewInMemory() Repository {
	return &inMemoryRepository{
		records: make(map[string]*entities.CombatRecord),
	}
}

func clone(rec *entities.CombatRecord, withActions bool) *entities.CombatRecord {
	out := *rec
	out.Actions = nil
	if withActions && len(rec.Actions) > 0 {
		out.Actions = append(out.Actions, rec.Actions...)
	}
	return &out
}

func (r *inMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[input.Record.ID]; exists {
		return nil, errors.AlreadyExistsf("combat %s already archived", input.Record.ID)
	}

	r.records[input.Record.ID] = clone(input.Record, true)
	r.order = append(r.order, input.Record.ID)

	return &SaveOutput{Record: input.Record}, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("combat ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[input.ID]
	if !ok {
		return nil, errors.NotFoundf("combat %s not found", input.ID).
			WithMeta("combat_id", input.ID)
	}

	return &GetOutput{Record: clone(rec, true)}, nil
}

func (r *inMemoryRepository) ListByCharacter(_ context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*entities.CombatRecord, 0)
	// newest inserted first, then a stable sort by time keeps that order for ties
	for i := len(r.order) - 1; i >= 0; i-- {
		rec := r.records[r.order[i]]
		if rec.CharacterID == input.CharacterID {
			records = append(records, clone(rec, false))
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit := listLimit(input.Limit); len(records) > limit {
		records = records[:limit]
	}

	return &ListByCharacterOutput{Records: records}, nil
}
