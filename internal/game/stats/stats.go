// Package stats maps base attributes to derived combat stats.
//
// Every function is total over non-negative attributes and level >= 1.
// Inputs outside that domain are a caller bug and are not checked.
package stats

const (
	// PlayerBaseSpeed is the fixed base attack speed of every player character.
	// Enemies carry their own base speed in the enemy template.
	PlayerBaseSpeed = 10

	// MaxDodgeChance caps dodge chance in percentage points.
	MaxDodgeChance = 60.0

	// MinAFKMinutes is the training cap for characters below level 10.
	MinAFKMinutes = 10
)

// Attributes are the persistent numbers a combatant is built from
type Attributes struct {
	Level        int
	Strength     int
	Dexterity    int
	Intelligence int
}

// Block is the full set of derived combat stats for one combatant
type Block struct {
	HP          int
	Shield      int
	Damage      int
	AttackSpeed int
	DodgeChance float64
}

// HP returns maximum hit points
func HP(level, strength int) int {
	return 100 + 10*level + strength
}

// Shield returns the maximum shield
func Shield(intelligence int) int {
	return 5 * intelligence
}

// Damage returns the flat damage of a single attack
func Damage(level, strength int) int {
	return 10 + level + strength
}

// AttackSpeed returns how much the turn meter fills per tick
func AttackSpeed(dexterity, baseSpeed int) int {
	return baseSpeed + dexterity
}

// DodgeChance returns the chance to dodge in percentage points, capped at 60.
// The result is always a multiple of 0.5.
func DodgeChance(dexterity int) float64 {
	return min(0.5*float64(dexterity), MaxDodgeChance)
}

// ExpToNextLevel returns the experience needed to leave the given level
func ExpToNextLevel(level int) int {
	return 100 * level * level
}

// StageExp returns the base experience reward for a stage
func StageExp(stage int) int {
	return 50 * stage
}

// MaxAFKMinutes returns how many minutes of offline training count towards a claim
func MaxAFKMinutes(level int) int {
	return max(MinAFKMinutes, level)
}

// Derive computes every derived stat for a combatant
func Derive(attrs Attributes, baseSpeed int) Block {
	return Block{
		HP:          HP(attrs.Level, attrs.Strength),
		Shield:      Shield(attrs.Intelligence),
		Damage:      Damage(attrs.Level, attrs.Strength),
		AttackSpeed: AttackSpeed(attrs.Dexterity, baseSpeed),
		DodgeChance: DodgeChance(attrs.Dexterity),
	}
}
