package v1alpha1

import "time"

// Stats are a character's derived combat numbers
type Stats struct {
	HP          int     `json:"hp"`
	Shield      int     `json:"shield"`
	Damage      int     `json:"damage"`
	AttackSpeed int     `json:"attack_speed"`
	DodgeChance float64 `json:"dodge_chance"`
}

// Character is the wire form of a character with its derived stats
type Character struct {
	ID             string    `json:"id"`
	Nickname       string    `json:"nickname"`
	Level          int       `json:"level"`
	Exp            int       `json:"exp"`
	ExpToNextLevel int       `json:"exp_to_next_level"`
	Strength       int       `json:"strength"`
	Dexterity      int       `json:"dexterity"`
	Intelligence   int       `json:"intelligence"`
	CompletedStage int       `json:"completed_stage"`
	MaxAFKMinutes  int       `json:"max_afk_minutes"`
	Stats          *Stats    `json:"stats"`
	CreatedAt      time.Time `json:"created_at"`
}

// Stage is a catalog stage
type Stage struct {
	ID         int    `json:"id"`
	EnemyID    string `json:"enemy_id"`
	EnemyName  string `json:"enemy_name"`
	EnemyLevel int    `json:"enemy_level"`
	IsBoss     bool   `json:"is_boss"`
	ExpReward  int    `json:"exp_reward"`
	Cleared    bool   `json:"cleared"`
	Unlocked   bool   `json:"unlocked"`
}

// Action is one attack in a fight log
type Action struct {
	Attacker         string `json:"attacker"`
	Defender         string `json:"defender"`
	AttackerIsPlayer bool   `json:"attacker_is_player"`
	Damage           int    `json:"damage"`
	AttackerDamage   int    `json:"attacker_damage"`
	Dodged           bool   `json:"dodged"`
	HPBefore         int    `json:"hp_before"`
	HPAfter          int    `json:"hp_after"`
	ShieldBefore     int    `json:"shield_before"`
	ShieldAfter      int    `json:"shield_after"`
}

// Combat is an archived fight
type Combat struct {
	ID          string `json:"id"`
	CharacterID string `json:"character_id"`
	Stage       int    `json:"stage"`
	EnemyID     string `json:"enemy_id"`
	EnemyLevel  int    `json:"enemy_level"`
	IsWin       bool   `json:"is_win"`
	FirstClear  bool   `json:"first_clear"`
	// Seed is a string on the wire so 64-bit values survive JavaScript clients
	Seed       int64     `json:"seed,string"`
	ExpGained  int       `json:"exp_gained"`
	ExpLost    int       `json:"exp_lost"`
	LeveledUp  bool      `json:"leveled_up"`
	NewLevel   int       `json:"new_level"`
	Iterations int       `json:"iterations"`
	CreatedAt  time.Time `json:"created_at"`
	Actions    []*Action `json:"actions,omitempty"`
}

// Training is an active session and what it has accrued
type Training struct {
	Stat           string    `json:"stat"`
	StartTime      time.Time `json:"start_time"`
	LastClaimTime  time.Time `json:"last_claim_time"`
	ElapsedMinutes int       `json:"elapsed_minutes"`
	CappedMinutes  int       `json:"capped_minutes"`
	StatGains      int       `json:"stat_gains"`
	MaxAFKMinutes  int       `json:"max_afk_minutes"`
}

// RankingEntry is one leaderboard row
type RankingEntry struct {
	Rank      int        `json:"rank"`
	Character *Character `json:"character"`
}

type CreateCharacterRequest struct {
	Nickname string `json:"nickname"`
}

type CreateCharacterResponse struct {
	Character *Character `json:"character"`
}

type GetCharacterRequest struct {
	CharacterID string `json:"character_id"`
}

type GetCharacterResponse struct {
	Character *Character `json:"character"`
}

// ListStagesRequest may name a character to fill the cleared and unlocked flags
type ListStagesRequest struct {
	CharacterID string `json:"character_id,omitempty"`
}

type ListStagesResponse struct {
	Stages []*Stage `json:"stages"`
}

type FightRequest struct {
	CharacterID string `json:"character_id"`
	Stage       int    `json:"stage"`
}

type FightResponse struct {
	Combat        *Combat    `json:"combat"`
	Character     *Character `json:"character"`
	LevelsGained  int        `json:"levels_gained"`
	StageUnlocked bool       `json:"stage_unlocked"`
	Archived      bool       `json:"archived"`
}

type GetCombatRequest struct {
	CombatID string `json:"combat_id"`
}

type GetCombatResponse struct {
	Combat *Combat `json:"combat"`
}

type ListCombatsRequest struct {
	CharacterID string `json:"character_id"`
	Limit       int    `json:"limit,omitempty"`
}

type ListCombatsResponse struct {
	Combats []*Combat `json:"combats"`
}

type GetTrainingRequest struct {
	CharacterID string `json:"character_id"`
}

// GetTrainingResponse has a nil Training when the character is idle
type GetTrainingResponse struct {
	Training *Training `json:"training"`
}

type StartTrainingRequest struct {
	CharacterID string `json:"character_id"`
	Stat        string `json:"stat"`
}

type StartTrainingResponse struct {
	Training *Training `json:"training"`
	Replaced bool      `json:"replaced"`
}

type ClaimTrainingRequest struct {
	CharacterID string `json:"character_id"`
}

type ClaimTrainingResponse struct {
	Character      *Character `json:"character"`
	Stat           string     `json:"stat"`
	Gains          int        `json:"gains"`
	ElapsedMinutes int        `json:"elapsed_minutes"`
	CappedMinutes  int        `json:"capped_minutes"`
}

type GetRankingRequest struct {
	Limit int `json:"limit,omitempty"`
}

type GetRankingResponse struct {
	Entries []*RankingEntry `json:"entries"`
}
