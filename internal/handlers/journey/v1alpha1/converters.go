package v1alpha1

import (
	"github.com/Hagni1/jurney/internal/entities"
	gamecombat "github.com/Hagni1/jurney/internal/game/combat"
	gametraining "github.com/Hagni1/jurney/internal/game/training"
	"github.com/Hagni1/jurney/internal/orchestrators/character"
)

func convertProfile(p *character.Profile) *Character {
	if p == nil || p.Character == nil {
		return nil
	}
	c := p.Character
	return &Character{
		ID:             c.ID,
		Nickname:       c.Nickname,
		Level:          c.Level,
		Exp:            c.Exp,
		ExpToNextLevel: p.ExpToNextLevel,
		Strength:       c.Strength,
		Dexterity:      c.Dexterity,
		Intelligence:   c.Intelligence,
		CompletedStage: c.CompletedStage,
		MaxAFKMinutes:  p.MaxAFKMinutes,
		Stats: &Stats{
			HP:          p.Stats.HP,
			Shield:      p.Stats.Shield,
			Damage:      p.Stats.Damage,
			AttackSpeed: p.Stats.AttackSpeed,
			DodgeChance: p.Stats.DodgeChance,
		},
		CreatedAt: c.CreatedAt,
	}
}

func convertCharacter(c *entities.Character) *Character {
	if c == nil {
		return nil
	}
	return convertProfile(character.NewProfile(c))
}

func convertStages(stages []*character.StageInfo) []*Stage {
	result := make([]*Stage, 0, len(stages))
	for _, s := range stages {
		result = append(result, &Stage{
			ID:         s.ID,
			EnemyID:    s.EnemyID,
			EnemyName:  s.EnemyName,
			EnemyLevel: s.EnemyLevel,
			IsBoss:     s.IsBoss,
			ExpReward:  s.ExpReward,
			Cleared:    s.Cleared,
			Unlocked:   s.Unlocked,
		})
	}
	return result
}

func convertActions(actions []gamecombat.Action) []*Action {
	if len(actions) == 0 {
		return nil
	}
	result := make([]*Action, 0, len(actions))
	for _, a := range actions {
		result = append(result, &Action{
			Attacker:         a.Attacker,
			Defender:         a.Defender,
			AttackerIsPlayer: a.AttackerIsPlayer,
			Damage:           a.Damage,
			AttackerDamage:   a.AttackerDamage,
			Dodged:           a.Dodged,
			HPBefore:         a.HPBefore,
			HPAfter:          a.HPAfter,
			ShieldBefore:     a.ShieldBefore,
			ShieldAfter:      a.ShieldAfter,
		})
	}
	return result
}

func convertCombat(r *entities.CombatRecord) *Combat {
	if r == nil {
		return nil
	}
	return &Combat{
		ID:          r.ID,
		CharacterID: r.CharacterID,
		Stage:       r.Stage,
		EnemyID:     r.EnemyID,
		EnemyLevel:  r.EnemyLevel,
		IsWin:       r.IsWin,
		FirstClear:  r.FirstClear,
		Seed:        r.Seed,
		ExpGained:   r.ExpGained,
		ExpLost:     r.ExpLost,
		LeveledUp:   r.LeveledUp,
		NewLevel:    r.NewLevel,
		Iterations:  r.Iterations,
		CreatedAt:   r.CreatedAt,
		Actions:     convertActions(r.Actions),
	}
}

func convertCombats(records []*entities.CombatRecord) []*Combat {
	result := make([]*Combat, 0, len(records))
	for _, r := range records {
		result = append(result, convertCombat(r))
	}
	return result
}

func convertTraining(s *entities.TrainingSession, a *gametraining.Accrual) *Training {
	if s == nil {
		return nil
	}
	t := &Training{
		Stat:          s.Stat,
		StartTime:     s.StartTime,
		LastClaimTime: s.LastClaimTime,
	}
	if a != nil {
		t.ElapsedMinutes = a.ElapsedMinutes
		t.CappedMinutes = a.CappedMinutes
		t.StatGains = a.StatGains
		t.MaxAFKMinutes = a.MaxAFKMinutes
	}
	return t
}
