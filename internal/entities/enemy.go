package entities

import "github.com/Hagni1/jurney/internal/game/stats"

// BossInterval makes every n-th stage a boss stage
const BossInterval = 10

// Enemy is a catalog template whose attributes scale with level
type Enemy struct {
	ID                   string `json:"id" yaml:"id"`
	Name                 string `json:"name" yaml:"name"`
	StrengthPerLevel     int    `json:"strength_per_level" yaml:"strength_per_level"`
	DexterityPerLevel    int    `json:"dexterity_per_level" yaml:"dexterity_per_level"`
	IntelligencePerLevel int    `json:"intelligence_per_level" yaml:"intelligence_per_level"`
	BaseSpeed            int    `json:"base_speed" yaml:"base_speed"`
}

// AtLevel resolves the template's flat attributes for a level
func (e *Enemy) AtLevel(level int) stats.Attributes {
	return stats.Attributes{
		Level:        level,
		Strength:     e.StrengthPerLevel * level,
		Dexterity:    e.DexterityPerLevel * level,
		Intelligence: e.IntelligencePerLevel * level,
	}
}

// Stage pairs an enemy with the level it is fought at
type Stage struct {
	ID         int    `json:"id" yaml:"id"`
	EnemyID    string `json:"enemy_id" yaml:"enemy_id"`
	EnemyLevel int    `json:"enemy_level" yaml:"enemy_level"`
}

// IsBoss reports whether the stage is a boss stage
func (s *Stage) IsBoss() bool {
	return s.ID > 0 && s.ID%BossInterval == 0
}
