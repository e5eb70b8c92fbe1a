// Package progression applies fight outcomes to a character's persistent numbers.
package progression

import (
	"github.com/Hagni1/jurney/internal/game/combat"
	"github.com/Hagni1/jurney/internal/game/stats"
)

// Progress is the numeric part of a character that progression reads and writes.
// After any call in this package Exp < stats.ExpToNextLevel(Level).
type Progress struct {
	Level          int
	Exp            int
	Strength       int
	Dexterity      int
	Intelligence   int
	CompletedStage int
}

// Outcome describes what a fight changed
type Outcome struct {
	Progress      Progress
	LevelsGained  int
	LeveledUp     bool
	StageUnlocked bool
}

// ApplyExp adds experience and levels up as many times as the total allows
func ApplyExp(currentExp, currentLevel, gained int) (exp, level int, leveledUp bool) {
	exp = currentExp + gained
	level = currentLevel

	// thresholds grow with level, so this always terminates for level >= 1
	for threshold := stats.ExpToNextLevel(level); exp >= threshold; threshold = stats.ExpToNextLevel(level) {
		exp -= threshold
		level++
		leveledUp = true
	}

	return exp, level, leveledUp
}

// ApplyLoss removes experience without ever leveling down
func ApplyLoss(exp, lost int) int {
	return max(0, exp-lost)
}

// GrowAttributes adds one point to every attribute per level gained
func GrowAttributes(p Progress, levelsGained int) Progress {
	if levelsGained <= 0 {
		return p
	}
	p.Strength += levelsGained
	p.Dexterity += levelsGained
	p.Intelligence += levelsGained
	return p
}

// UnlockStage returns the highest completed stage after clearing stage.
// It never decreases.
func UnlockStage(completedStage, stage int) int {
	if stage > completedStage {
		return stage
	}
	return completedStage
}

// ApplyCombat applies a simulation result to p for the given stage.
// It also fills result.LeveledUp and result.NewLevel.
func ApplyCombat(p Progress, stage int, result *combat.Result) Outcome {
	out := Outcome{Progress: p}

	if !result.IsWin {
		out.Progress.Exp = ApplyLoss(p.Exp, result.ExpLost)
		result.LeveledUp = false
		result.NewLevel = p.Level
		return out
	}

	exp, level, leveledUp := ApplyExp(p.Exp, p.Level, result.ExpGained)
	out.Progress.Exp = exp
	out.Progress.Level = level
	out.LeveledUp = leveledUp
	out.LevelsGained = level - p.Level
	out.Progress = GrowAttributes(out.Progress, out.LevelsGained)

	out.Progress.CompletedStage = UnlockStage(p.CompletedStage, stage)
	out.StageUnlocked = out.Progress.CompletedStage != p.CompletedStage

	result.LeveledUp = leveledUp
	result.NewLevel = level

	return out
}
