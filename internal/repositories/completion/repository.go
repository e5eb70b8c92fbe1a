// Package completion tracks how many times each character cleared each stage
package completion

//go:generate mockgen -destination=mock/mock_repository.go -package=completionmock github.com/Hagni1/jurney/internal/repositories/completion Repository

import "context"

// Repository stores per-character stage clear counts
type Repository interface {
	// Get returns the clear count, zero when the stage was never cleared
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Increment adds one clear and returns the new count
	Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error)
}

// GetInput defines the input for reading a clear count
type GetInput struct {
	CharacterID string
	Stage       int
}

// GetOutput defines the output for reading a clear count
type GetOutput struct {
	Count int
}

// IncrementInput defines the input for recording a clear
type IncrementInput struct {
	CharacterID string
	Stage       int
}

// IncrementOutput defines the output for recording a clear
type IncrementOutput struct {
	Count int
}
