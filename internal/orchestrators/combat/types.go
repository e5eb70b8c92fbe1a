package combat

import (
	"github.com/Hagni1/jurney/internal/entities"
	gamecombat "github.com/Hagni1/jurney/internal/game/combat"
)

// FightInput defines the request for fighting a stage
type FightInput struct {
	CharacterID string
	Stage       int
}

// FightOutput defines the response for a fight
type FightOutput struct {
	// Record is the archived fight including its action log
	Record *entities.CombatRecord
	// Character is the character after progression was applied
	Character     *entities.Character
	Result        *gamecombat.Result
	LevelsGained  int
	StageUnlocked bool
	// Archived is false when the record could not be stored. The fight still counts.
	Archived bool
}

// GetCombatInput defines the request for an archived fight
type GetCombatInput struct {
	CombatID string
}

// GetCombatOutput defines the response for an archived fight
type GetCombatOutput struct {
	Record *entities.CombatRecord
}

// ListCombatsInput defines the request for a character's fight history
type ListCombatsInput struct {
	CharacterID string
	Limit       int
}

// ListCombatsOutput defines the response for a character's fight history
type ListCombatsOutput struct {
	Records []*entities.CombatRecord
}
