// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/Hagni1/jurney/internal/repositories/character Repository

import (
	"context"

	"github.com/Hagni1/jurney/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character and claims its nickname
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the ID or nickname is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character and refreshes its ranking score.
	// ClearedStage and EndTraining are applied in the same transaction.
	// Returns errors.NotFound if character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListRanking returns the top characters ordered by completed stage,
	// level and experience, all descending
	ListRanking(ctx context.Context, input ListRankingInput) (*ListRankingOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
	// ClearedStage adds one clear to that stage's completion count when positive
	ClearedStage int
	// EndTraining removes the character's training session
	EndTraining bool
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// ListRankingInput defines the input for listing the ranking
type ListRankingInput struct {
	Limit int
}

// ListRankingOutput defines the output for listing the ranking
type ListRankingOutput struct {
	Characters []*entities.Character
}
