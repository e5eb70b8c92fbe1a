package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/Hagni1/jurney/internal/game/stats"
)

const (
	// EntityTypeCharacter identifies the player side of a fight
	EntityTypeCharacter = "character"
	// EntityTypeEnemy identifies the enemy side of a fight
	EntityTypeEnemy = "enemy"
)

// Fighter is the input snapshot of one side of a fight
type Fighter struct {
	ID         string
	Name       string
	IsPlayer   bool
	Attributes stats.Attributes
	// BaseSpeed is stats.PlayerBaseSpeed for players and template defined for enemies
	BaseSpeed int
	// Exp is the pre-combat experience, only meaningful for the player
	Exp int
}

// GetID returns the fighter's ID
func (f *Fighter) GetID() string {
	return f.ID
}

// GetType returns the entity type for rpg-toolkit
func (f *Fighter) GetType() string {
	if f.IsPlayer {
		return EntityTypeCharacter
	}
	return EntityTypeEnemy
}

var _ core.Entity = (*Fighter)(nil)

// Action is one resolved attack. Damage is the raw attack value before the
// shield/HP split, zero when dodged. AttackerDamage is the attacker's damage
// stat and is kept on dodges too.
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

// Result is the outcome of a single simulation.
// LeveledUp and NewLevel are left at their defaults by Simulate; the
// progression package fills them in.
type Result struct {
	IsWin             bool
	Died              bool
	Actions           []Action
	ExpGained         int
	ExpLost           int
	LeveledUp         bool
	NewLevel          int
	PlayerAttackSpeed int
	EnemyAttackSpeed  int
	Iterations        int
}

// combatant is the per-simulation state of one side
type combatant struct {
	name        string
	isPlayer    bool
	hp          int
	maxHP       int
	shield      int
	maxShield   int
	damage      int
	attackSpeed int
	dodgeChance float64
	meter       int
}

func newCombatant(f Fighter) *combatant {
	block := stats.Derive(f.Attributes, f.BaseSpeed)
	return &combatant{
		name:        f.Name,
		isPlayer:    f.IsPlayer,
		hp:          block.HP,
		maxHP:       block.HP,
		shield:      block.Shield,
		maxShield:   block.Shield,
		damage:      block.Damage,
		attackSpeed: block.AttackSpeed,
		dodgeChance: block.DodgeChance,
	}
}
