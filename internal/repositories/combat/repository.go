// Package combat archives fight results and their action logs
package combat

//go:generate mockgen -destination=mock/mock_repository.go -package=combatmock github.com/Hagni1/jurney/internal/repositories/combat Repository

import (
	"context"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
)

// DefaultListLimit is used when ListByCharacter is called without a limit
const DefaultListLimit = 20

// Repository stores archived fights
type Repository interface {
	// Save stores the record and its actions atomically
	// Returns errors.AlreadyExists when the ID is taken
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get returns a record with its full action log
	// Returns errors.NotFound when the ID is unknown
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByCharacter returns a character's most recent fights, newest first,
	// without action logs
	ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error)
}

// SaveInput defines the input for archiving a fight
type SaveInput struct {
	Record *entities.CombatRecord
}

// SaveOutput defines the output for archiving a fight
type SaveOutput struct {
	Record *entities.CombatRecord
}

// GetInput defines the input for getting a fight
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a fight
type GetOutput struct {
	Record *entities.CombatRecord
}

// ListByCharacterInput defines the input for listing a character's fights
type ListByCharacterInput struct {
	CharacterID string
	Limit       int
}

// ListByCharacterOutput defines the output for listing a character's fights
type ListByCharacterOutput struct {
	Records []*entities.CombatRecord
}

func validateSave(input SaveInput) error {
	if input.Record == nil {
		return errors.InvalidArgument("record cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.Record.ID, vb)
	errors.ValidateRequired("character_id", input.Record.CharacterID, vb)
	return vb.Build()
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
