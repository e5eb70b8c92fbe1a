// Package training provides persistence for active training sessions
package training

//go:generate mockgen -destination=mock/mock_repository.go -package=trainingmock github.com/Hagni1/jurney/internal/repositories/training Repository

import (
	"context"

	"github.com/Hagni1/jurney/internal/entities"
)

// Repository stores at most one training session per character
type Repository interface {
	// Upsert stores the session, replacing any previous one
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// Get returns the character's session
	// Returns errors.NotFound when the character is not training
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// UpsertInput defines the input for storing a session
type UpsertInput struct {
	Session *entities.TrainingSession
}

// UpsertOutput defines the output for storing a session
type UpsertOutput struct {
	Session *entities.TrainingSession
	// Replaced is true when an unclaimed session was overwritten
	Replaced bool
}

// GetInput defines the input for getting a session
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *entities.TrainingSession
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct {
	Deleted bool
}
