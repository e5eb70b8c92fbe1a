// Package combat runs the turn-meter battle between a character and an enemy.
//
// A simulation owns all of its state and performs no I/O. Given the same
// fighters and a roller producing the same sequence, it produces the same
// action log.
package combat

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Hagni1/jurney/internal/game/stats"
)

const (
	// MaxIterations bounds the turn-meter loop. A fight where both sides are
	// still standing after this many ticks is a loss for the player.
	MaxIterations = 1000

	// MeterThreshold is the turn-meter value that grants an attack
	MeterThreshold = 100

	// RepeatClearExpRate scales the stage reward for stages already cleared
	RepeatClearExpRate = 0.2

	// DeathExpLossRate is the share of current experience lost on defeat
	DeathExpLossRate = 0.1

	// dodgeDie maps a die roll onto [0,100) in steps of 0.5, which is exact
	// because every dodge chance is a multiple of 0.5
	dodgeDie = 200
)

// Simulate runs a fight to completion.
//
// Preconditions: all attributes are non-negative and both levels are >= 1.
// Errors come only from the roller, which must not be nil.
func Simulate(player, enemy Fighter, firstClear bool, roller dice.Roller) (*Result, error) {
	if roller == nil {
		return nil, errNilRoller
	}

	p := newCombatant(player)
	e := newCombatant(enemy)

	var actions []Action
	iterations := 0

	for iterations < MaxIterations && p.hp > 0 && e.hp > 0 {
		iterations++

		p.meter += p.attackSpeed
		e.meter += e.attackSpeed

		attacker, defender := nextAttacker(p, e)
		if attacker == nil {
			continue
		}

		action, err := resolveAttack(attacker, defender, roller)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iterations, err)
		}
		actions = append(actions, action)

		attacker.meter = 0
	}

	result := &Result{
		// reaching MaxIterations with both sides standing is a loss
		IsWin:             p.hp > 0 && e.hp <= 0,
		Actions:           actions,
		NewLevel:          player.Attributes.Level,
		PlayerAttackSpeed: p.attackSpeed,
		EnemyAttackSpeed:  e.attackSpeed,
		Iterations:        iterations,
	}

	if result.IsWin {
		result.ExpGained = RewardExp(enemy.Attributes.Level, firstClear)
	} else {
		result.Died = true
		result.ExpLost = LostExp(player.Exp)
	}

	return result, nil
}

// RewardExp returns the experience granted for beating an enemy of the given level
func RewardExp(enemyLevel int, firstClear bool) int {
	base := stats.StageExp(enemyLevel)
	if firstClear {
		return base
	}
	return int(float64(base) * RepeatClearExpRate)
}

// LostExp returns the experience lost on defeat
func LostExp(exp int) int {
	return int(float64(exp) * DeathExpLossRate)
}

// nextAttacker applies the turn-meter rule: the player acts when ready and at
// least as charged as the enemy, otherwise the enemy acts when ready.
func nextAttacker(p, e *combatant) (attacker, defender *combatant) {
	switch {
	case p.meter >= MeterThreshold && p.meter >= e.meter:
		return p, e
	case e.meter >= MeterThreshold:
		return e, p
	default:
		return nil, nil
	}
}

func resolveAttack(attacker, defender *combatant, roller dice.Roller) (Action, error) {
	draw, err := rollPercent(roller)
	if err != nil {
		return Action{}, err
	}

	dodged := draw < defender.dodgeChance
	damage := attacker.damage
	if dodged {
		damage = 0
	}

	action := Action{
		Attacker:         attacker.name,
		Defender:         defender.name,
		AttackerIsPlayer: attacker.isPlayer,
		Damage:           damage,
		AttackerDamage:   attacker.damage,
		Dodged:           dodged,
		HPBefore:         defender.hp,
		ShieldBefore:     defender.shield,
	}

	remaining := damage
	if defender.shield > 0 {
		absorbed := min(defender.shield, remaining)
		defender.shield -= absorbed
		remaining -= absorbed
	}
	if remaining > 0 {
		defender.hp -= remaining
	}

	action.HPAfter = defender.hp
	action.ShieldAfter = defender.shield

	return action, nil
}

// rollPercent draws a uniform value in [0,100) with 0.5 resolution
func rollPercent(roller dice.Roller) (float64, error) {
	n, err := roller.Roll(dodgeDie)
	if err != nil {
		return 0, fmt.Errorf("failed to roll dodge: %w", err)
	}
	return float64(n-1) / 2, nil
}
