package training

import (
	"github.com/Hagni1/jurney/internal/entities"
	gametraining "github.com/Hagni1/jurney/internal/game/training"
)

// GetTrainingInput defines the request for a character's training
type GetTrainingInput struct {
	CharacterID string
}

// GetTrainingOutput defines the response for a character's training.
// Session and Accrual are nil when the character is not training.
type GetTrainingOutput struct {
	Session *entities.TrainingSession
	Accrual *gametraining.Accrual
}

// StartTrainingInput defines the request for starting to train a stat
type StartTrainingInput struct {
	CharacterID string
	Stat        string
}

// StartTrainingOutput defines the response for starting to train
type StartTrainingOutput struct {
	Session *entities.TrainingSession
	// Replaced is true when an unclaimed session was discarded
	Replaced bool
}

// ClaimTrainingInput defines the request for claiming training gains
type ClaimTrainingInput struct {
	CharacterID string
}

// ClaimTrainingOutput defines the response for a claim
type ClaimTrainingOutput struct {
	Character *entities.Character
	Stat      gametraining.Stat
	Accrual   gametraining.Accrual
}
