package character

import (
	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/game/stats"
)

// Profile is a character with the numbers derived from it
type Profile struct {
	Character      *entities.Character
	Stats          stats.Block
	ExpToNextLevel int
	MaxAFKMinutes  int
}

// NewProfile derives a Profile from a stored character
func NewProfile(c *entities.Character) *Profile {
	return &Profile{
		Character:      c,
		Stats:          c.Derived(),
		ExpToNextLevel: c.ExpToNextLevel(),
		MaxAFKMinutes:  c.MaxAFKMinutes(),
	}
}

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Nickname string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Profile *Profile
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Profile *Profile
}

// GetRankingInput defines the request for the leaderboard
type GetRankingInput struct {
	// Limit defaults to the configured ranking limit when zero
	Limit int
}

// RankingEntry is one leaderboard row, Rank starts at 1
type RankingEntry struct {
	Rank    int
	Profile *Profile
}

// GetRankingOutput defines the response for the leaderboard
type GetRankingOutput struct {
	Entries []*RankingEntry
}

// ListStagesInput defines the request for listing stages.
// CharacterID is optional and fills in the per-character flags.
type ListStagesInput struct {
	CharacterID string
}

// StageInfo describes a stage as seen by a character
type StageInfo struct {
	ID         int
	EnemyID    string
	EnemyName  string
	EnemyLevel int
	IsBoss     bool
	// ExpReward is the first-clear reward
	ExpReward int
	Cleared   bool
	Unlocked  bool
}

// ListStagesOutput defines the response for listing stages
type ListStagesOutput struct {
	Stages []*StageInfo
}
