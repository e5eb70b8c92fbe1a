// Package combat runs stage fights and serves the fight archive
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/Hagni1/jurney/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	gamecombat "github.com/Hagni1/jurney/internal/game/combat"
	"github.com/Hagni1/jurney/internal/game/progression"
	"github.com/Hagni1/jurney/internal/game/stats"
	"github.com/Hagni1/jurney/internal/metrics"
	"github.com/Hagni1/jurney/internal/pkg/clock"
	"github.com/Hagni1/jurney/internal/pkg/idgen"
	characterrepo "github.com/Hagni1/jurney/internal/repositories/character"
	combatrepo "github.com/Hagni1/jurney/internal/repositories/combat"
	"github.com/Hagni1/jurney/internal/repositories/completion"
	"github.com/Hagni1/jurney/internal/repositories/lock"
	"github.com/Hagni1/jurney/internal/repositories/stage"
)

// DefaultLockTTL bounds a single fight
const DefaultLockTTL = 5 * time.Second

// Service defines the interface for combat operations
type Service interface {
	// Fight simulates the character against a stage and applies the outcome
	// Returns errors.FailedPrecondition when the stage is not unlocked yet
	// Returns errors.Aborted when the character is already fighting or claiming
	Fight(ctx context.Context, input *FightInput) (*FightOutput, error)

	// GetCombat returns an archived fight with its action log
	GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error)

	// ListCombats returns a character's recent fights, newest first
	ListCombats(ctx context.Context, input *ListCombatsInput) (*ListCombatsOutput, error)
}

// SeedFunc produces the seed for a new fight
type SeedFunc func() (int64, error)

// Config holds the dependencies for the combat orchestrator
type Config struct {
	CharacterRepo  characterrepo.Repository
	StageRepo      stage.Repository
	CompletionRepo completion.Repository
	CombatRepo     combatrepo.Repository
	Locker         lock.Locker
	IDGenerator    idgen.Generator
	Clock          clock.Clock
	Metrics        *metrics.Manager
	LockTTL        time.Duration
	// Seeds defaults to gamecombat.NewSeed
	Seeds SeedFunc
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.StageRepo == nil {
		vb.RequiredField("StageRepo")
	}
	if c.CompletionRepo == nil {
		vb.RequiredField("CompletionRepo")
	}
	if c.CombatRepo == nil {
		vb.RequiredField("CombatRepo")
	}
	if c.Locker == nil {
		vb.RequiredField("Locker")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.LockTTL < 0 {
		vb.InvalidField("LockTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo  characterrepo.Repository
	stageRepo      stage.Repository
	completionRepo completion.Repository
	combatRepo     combatrepo.Repository
	locker         lock.Locker
	idGen          idgen.Generator
	clock          clock.Clock
	metrics        *metrics.Manager
	lockTTL        time.Duration
	seeds          SeedFunc
}

// NewOrchestrator creates a combat orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		characterRepo:  cfg.CharacterRepo,
		stageRepo:      cfg.StageRepo,
		completionRepo: cfg.CompletionRepo,
		combatRepo:     cfg.CombatRepo,
		locker:         cfg.Locker,
		idGen:          cfg.IDGenerator,
		clock:          cfg.Clock,
		metrics:        cfg.Metrics,
		lockTTL:        cfg.LockTTL,
		seeds:          cfg.Seeds,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.lockTTL == 0 {
		o.lockTTL = DefaultLockTTL
	}
	if o.seeds == nil {
		o.seeds = gamecombat.NewSeed
	}

	return o, nil
}

func (o *orchestrator) Fight(ctx context.Context, input *FightInput) (*FightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	errors.ValidateMin("stage", input.Stage, 1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var output *FightOutput
	err := lock.WithLock(ctx, o.locker, lock.CharacterKey(input.CharacterID), o.lockTTL, func(ctx context.Context) error {
		var err error
		output, err = o.fight(ctx, input)
		return err
	})
	if err != nil {
		if errors.IsAborted(err) {
			o.metrics.RecordLockConflict("fight")
		}
		return nil, err
	}

	return output, nil
}

// fight runs with the character lock held
func (o *orchestrator) fight(ctx context.Context, input *FightInput) (*FightOutput, error) {
	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}
	c := charOut.Character

	if input.Stage > c.CompletedStage+1 {
		return nil, errors.FailedPreconditionf("stage %d is locked", input.Stage).
			WithMeta("completed_stage", c.CompletedStage).
			WithMeta("stage", input.Stage)
	}

	stageOut, err := o.stageRepo.Get(ctx, stage.GetInput{StageID: input.Stage})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get stage %d", input.Stage)
	}

	clears, err := o.completionRepo.Get(ctx, completion.GetInput{CharacterID: c.ID, Stage: input.Stage})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stage completions")
	}
	firstClear := clears.Count == 0

	seed, err := o.seeds()
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed fight")
	}

	player := gamecombat.Fighter{
		ID:         c.ID,
		Name:       c.Nickname,
		IsPlayer:   true,
		Attributes: c.Attributes(),
		BaseSpeed:  stats.PlayerBaseSpeed,
		Exp:        c.Exp,
	}
	enemy := gamecombat.Fighter{
		ID:         stageOut.Enemy.ID,
		Name:       stageOut.Enemy.Name,
		Attributes: stageOut.Enemy.AtLevel(stageOut.Stage.EnemyLevel),
		BaseSpeed:  stageOut.Enemy.BaseSpeed,
	}

	result, err := gamecombat.Simulate(player, enemy, firstClear, gamecombat.NewSeededRoller(seed))
	if err != nil {
		return nil, errors.Wrap(err, "failed to simulate fight")
	}

	outcome := progression.ApplyCombat(progression.Progress{
		Level:          c.Level,
		Exp:            c.Exp,
		Strength:       c.Strength,
		Dexterity:      c.Dexterity,
		Intelligence:   c.Intelligence,
		CompletedStage: c.CompletedStage,
	}, input.Stage, result)

	updated := *c
	updated.Level = outcome.Progress.Level
	updated.Exp = outcome.Progress.Exp
	updated.Strength = outcome.Progress.Strength
	updated.Dexterity = outcome.Progress.Dexterity
	updated.Intelligence = outcome.Progress.Intelligence
	updated.CompletedStage = outcome.Progress.CompletedStage

	// progress and the clear count are written in one transaction
	update := characterrepo.UpdateInput{Character: &updated}
	if result.IsWin {
		update.ClearedStage = input.Stage
	}
	saved, err := o.characterRepo.Update(ctx, update)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", c.ID)
	}

	record := &entities.CombatRecord{
		ID:          o.idGen.Generate(),
		CharacterID: c.ID,
		Stage:       input.Stage,
		EnemyID:     stageOut.Enemy.ID,
		EnemyLevel:  stageOut.Stage.EnemyLevel,
		IsWin:       result.IsWin,
		FirstClear:  firstClear,
		Seed:        seed,
		ExpGained:   result.ExpGained,
		ExpLost:     result.ExpLost,
		LeveledUp:   result.LeveledUp,
		NewLevel:    result.NewLevel,
		Iterations:  result.Iterations,
		CreatedAt:   o.clock.Now(),
		Actions:     result.Actions,
	}

	archived := true
	if _, err := o.combatRepo.Save(ctx, combatrepo.SaveInput{Record: record}); err != nil {
		archived = false
		slog.ErrorContext(ctx, "failed to archive fight",
			"combat_id", record.ID,
			"character_id", c.ID,
			"error", err.Error())
	}

	o.metrics.RecordFight(result.IsWin, firstClear, result.Iterations, result.ExpGained)
	o.metrics.RecordLevelUps(outcome.LevelsGained)
	if outcome.StageUnlocked {
		o.metrics.RecordStageUnlocked()
	}

	slog.InfoContext(ctx, "fight resolved",
		"combat_id", record.ID,
		"character_id", c.ID,
		"stage", input.Stage,
		"is_win", result.IsWin,
		"first_clear", firstClear,
		"exp_gained", result.ExpGained,
		"exp_lost", result.ExpLost,
		"new_level", result.NewLevel,
		"iterations", result.Iterations)

	return &FightOutput{
		Record:        record,
		Character:     saved.Character,
		Result:        result,
		LevelsGained:  outcome.LevelsGained,
		StageUnlocked: outcome.StageUnlocked,
		Archived:      archived,
	}, nil
}

func (o *orchestrator) GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error) {
	if input == nil || input.CombatID == "" {
		return nil, errors.InvalidArgument("combat ID is required")
	}

	out, err := o.combatRepo.Get(ctx, combatrepo.GetInput{ID: input.CombatID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get combat %s", input.CombatID)
	}

	return &GetCombatOutput{Record: out.Record}, nil
}

func (o *orchestrator) ListCombats(ctx context.Context, input *ListCombatsInput) (*ListCombatsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	out, err := o.combatRepo.ListByCharacter(ctx, combatrepo.ListByCharacterInput{
		CharacterID: input.CharacterID,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list combats for %s", input.CharacterID)
	}

	return &ListCombatsOutput{Records: out.Records}, nil
}
