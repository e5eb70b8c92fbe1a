package stage

import (
	"context"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
)

// Config holds the catalog served by the in-memory repository
type Config struct {
	Catalog *Catalog
}

// Validate validates the Config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

type inMemoryRepository struct {
	stages  map[int]*entities.Stage
	enemies map[string]*entities.Enemy
	ordered []Entry
}

// NewInMemory indexes a validated catalog
func NewInMemory(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog")
	}

	repo := &inMemoryRepository{
		stages:  make(map[int]*entities.Stage, len(cfg.Catalog.Stages)),
		enemies: make(map[string]*entities.Enemy, len(cfg.Catalog.Enemies)),
	}

	for i := range cfg.Catalog.Enemies {
		e := cfg.Catalog.Enemies[i]
		repo.enemies[e.ID] = &e
	}
	for i := range cfg.Catalog.Stages {
		s := cfg.Catalog.Stages[i]
		repo.stages[s.ID] = &s
	}
	for id := 1; id <= len(repo.stages); id++ {
		s := repo.stages[id]
		repo.ordered = append(repo.ordered, Entry{Stage: s, Enemy: repo.enemies[s.EnemyID]})
	}

	return repo, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	s, ok := r.stages[input.StageID]
	if !ok {
		return nil, errors.NotFoundf("stage %d not found", input.StageID).
			WithMeta("stage", input.StageID)
	}

	return &GetOutput{Entry: Entry{Stage: s, Enemy: r.enemies[s.EnemyID]}}, nil
}

func (r *inMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	entries := make([]Entry, len(r.ordered))
	copy(entries, r.ordered)
	return &ListOutput{Entries: entries}, nil
}
