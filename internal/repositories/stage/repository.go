// Package stage serves the read-only catalog of stages and enemy templates
package stage

//go:generate mockgen -destination=mock/mock_repository.go -package=stagemock github.com/Hagni1/jurney/internal/repositories/stage Repository

import (
	"context"

	"github.com/Hagni1/jurney/internal/entities"
)

// Repository reads the stage catalog
type Repository interface {
	// Get returns a stage and the enemy fought there
	// Returns errors.NotFound for unknown stages
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every stage in ascending order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// Entry is a stage with its resolved enemy
type Entry struct {
	Stage *entities.Stage
	Enemy *entities.Enemy
}

// GetInput defines the input for getting a stage
type GetInput struct {
	StageID int
}

// GetOutput defines the output for getting a stage
type GetOutput struct {
	Entry
}

// ListInput defines the input for listing stages
type ListInput struct{}

// ListOutput defines the output for listing stages
type ListOutput struct {
	Entries []Entry
}
