package entities

import (
	"time"

	"github.com/Hagni1/jurney/internal/game/combat"
)

// CombatRecord is an archived fight. Seed replays it with combat.Replay.
type CombatRecord struct {
	ID          string          `json:"id"`
	CharacterID string          `json:"character_id"`
	Stage       int             `json:"stage"`
	EnemyID     string          `json:"enemy_id"`
	EnemyLevel  int             `json:"enemy_level"`
	IsWin       bool            `json:"is_win"`
	FirstClear  bool            `json:"first_clear"`
	Seed        int64           `json:"seed"`
	ExpGained   int             `json:"exp_gained"`
	ExpLost     int             `json:"exp_lost"`
	LeveledUp   bool            `json:"leveled_up"`
	NewLevel    int             `json:"new_level"`
	Iterations  int             `json:"iterations"`
	CreatedAt   time.Time       `json:"created_at"`
	Actions     []combat.Action `json:"actions,omitempty"`
}
