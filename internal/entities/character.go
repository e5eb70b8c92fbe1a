// Package entities provides the core data structures of journey.
package entities

import (
	"time"

	"github.com/Hagni1/jurney/internal/game/stats"
)

// Starting values for a freshly created character
const (
	StartingLevel     = 1
	StartingAttribute = 5
)

// Character is a player's persistent progression state
type Character struct {
	ID             string    `json:"id"`
	Nickname       string    `json:"nickname"`
	Level          int       `json:"level"`
	Exp            int       `json:"exp"`
	Strength       int       `json:"strength"`
	Dexterity      int       `json:"dexterity"`
	Intelligence   int       `json:"intelligence"`
	CompletedStage int       `json:"completed_stage"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewCharacter returns a level 1 character with 5 in every attribute
func NewCharacter(id, nickname string, now time.Time) *Character {
	return &Character{
		ID:           id,
		Nickname:     nickname,
		Level:        StartingLevel,
		Strength:     StartingAttribute,
		Dexterity:    StartingAttribute,
		Intelligence: StartingAttribute,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Attributes returns the inputs to the stat formulas
func (c *Character) Attributes() stats.Attributes {
	return stats.Attributes{
		Level:        c.Level,
		Strength:     c.Strength,
		Dexterity:    c.Dexterity,
		Intelligence: c.Intelligence,
	}
}

// Derived returns the character's combat stats
func (c *Character) Derived() stats.Block {
	return stats.Derive(c.Attributes(), stats.PlayerBaseSpeed)
}

// ExpToNextLevel is the experience needed to reach the next level
func (c *Character) ExpToNextLevel() int {
	return stats.ExpToNextLevel(c.Level)
}

// MaxAFKMinutes is the training accrual cap for the character's level
func (c *Character) MaxAFKMinutes() int {
	return stats.MaxAFKMinutes(c.Level)
}
