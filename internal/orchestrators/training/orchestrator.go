// Package training implements offline stat training
package training

//go:generate mockgen -destination=mock/mock_service.go -package=trainingmock github.com/Hagni1/jurney/internal/orchestrators/training Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	gametraining "github.com/Hagni1/jurney/internal/game/training"
	"github.com/Hagni1/jurney/internal/metrics"
	"github.com/Hagni1/jurney/internal/pkg/clock"
	characterrepo "github.com/Hagni1/jurney/internal/repositories/character"
	"github.com/Hagni1/jurney/internal/repositories/lock"
	trainingrepo "github.com/Hagni1/jurney/internal/repositories/training"
)

// DefaultLockTTL bounds a start or claim
const DefaultLockTTL = 5 * time.Second

// Service defines the interface for training operations
type Service interface {
	// GetTraining returns the active session and what it has accrued so far
	GetTraining(ctx context.Context, input *GetTrainingInput) (*GetTrainingOutput, error)

	// StartTraining begins training a stat, discarding any unclaimed session
	StartTraining(ctx context.Context, input *StartTrainingInput) (*StartTrainingOutput, error)

	// ClaimTraining adds the accrued points to the trained stat and ends the session
	// Returns errors.FailedPrecondition when the character is not training
	ClaimTraining(ctx context.Context, input *ClaimTrainingInput) (*ClaimTrainingOutput, error)
}

// Config holds the dependencies for the training orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	TrainingRepo  trainingrepo.Repository
	Locker        lock.Locker
	Clock         clock.Clock
	Metrics       *metrics.Manager
	LockTTL       time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.TrainingRepo == nil {
		vb.RequiredField("TrainingRepo")
	}
	if c.Locker == nil {
		vb.RequiredField("Locker")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	trainingRepo  trainingrepo.Repository
	locker        lock.Locker
	clock         clock.Clock
	metrics       *metrics.Manager
	lockTTL       time.Duration
}

// NewOrchestrator creates a training orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		characterRepo: cfg.CharacterRepo,
		trainingRepo:  cfg.TrainingRepo,
		locker:        cfg.Locker,
		clock:         cfg.Clock,
		metrics:       cfg.Metrics,
		lockTTL:       cfg.LockTTL,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.lockTTL <= 0 {
		o.lockTTL = DefaultLockTTL
	}

	return o, nil
}

func (o *orchestrator) GetTraining(ctx context.Context, input *GetTrainingInput) (*GetTrainingOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	c, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	out, err := o.trainingRepo.Get(ctx, trainingrepo.GetInput{CharacterID: c.ID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &GetTrainingOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to get training")
	}

	accrual := gametraining.Accrue(c.Level, out.Session.LastClaimTime, o.clock.Now())

	return &GetTrainingOutput{
		Session: out.Session,
		Accrual: &accrual,
	}, nil
}

func (o *orchestrator) StartTraining(ctx context.Context, input *StartTrainingInput) (*StartTrainingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	stat, statErr := gametraining.ParseStat(input.Stat)
	if statErr != nil {
		vb.InvalidField("stat", statErr.Error())
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var output *StartTrainingOutput
	err := o.withCharacterLock(ctx, "start_training", input.CharacterID, func(ctx context.Context) error {
		c, err := o.getCharacter(ctx, input.CharacterID)
		if err != nil {
			return err
		}

		now := o.clock.Now()
		out, err := o.trainingRepo.Upsert(ctx, trainingrepo.UpsertInput{
			Session: &entities.TrainingSession{
				CharacterID:   c.ID,
				Stat:          stat.String(),
				StartTime:     now,
				LastClaimTime: now,
			},
		})
		if err != nil {
			return errors.Wrap(err, "failed to start training")
		}

		output = &StartTrainingOutput{Session: out.Session, Replaced: out.Replaced}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.metrics.RecordTrainingStarted(stat.String())

	slog.InfoContext(ctx, "training started",
		"character_id", input.CharacterID,
		"stat", stat.String(),
		"replaced", output.Replaced)

	return output, nil
}

func (o *orchestrator) ClaimTraining(ctx context.Context, input *ClaimTrainingInput) (*ClaimTrainingOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	var output *ClaimTrainingOutput
	err := o.withCharacterLock(ctx, "claim_training", input.CharacterID, func(ctx context.Context) error {
		var err error
		output, err = o.claim(ctx, input.CharacterID)
		return err
	})
	if err != nil {
		return nil, err
	}

	o.metrics.RecordTrainingClaim(output.Stat.String(), output.Accrual.StatGains)

	slog.InfoContext(ctx, "training claimed",
		"character_id", input.CharacterID,
		"stat", output.Stat.String(),
		"elapsed_minutes", output.Accrual.ElapsedMinutes,
		"stat_gains", output.Accrual.StatGains)

	return output, nil
}

// claim runs with the character lock held
func (o *orchestrator) claim(ctx context.Context, characterID string) (*ClaimTrainingOutput, error) {
	c, err := o.getCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	sessionOut, err := o.trainingRepo.Get(ctx, trainingrepo.GetInput{CharacterID: c.ID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPreconditionf("character %s is not training", c.ID)
		}
		return nil, errors.Wrap(err, "failed to get training")
	}
	session := sessionOut.Session

	stat, err := gametraining.ParseStat(session.Stat)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored training has an unknown stat")
	}

	accrual := gametraining.Accrue(c.Level, session.LastClaimTime, o.clock.Now())

	if accrual.StatGains > 0 {
		updated := *c
		switch stat {
		case gametraining.StatStrength:
			updated.Strength += accrual.StatGains
		case gametraining.StatDexterity:
			updated.Dexterity += accrual.StatGains
		case gametraining.StatIntelligence:
			updated.Intelligence += accrual.StatGains
		}

		// the gains and the session delete land together or not at all
		saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: &updated, EndTraining: true})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to update character %s", c.ID)
		}
		c = saved.Character
	} else if _, err := o.trainingRepo.Delete(ctx, trainingrepo.DeleteInput{CharacterID: c.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to end training")
	}

	return &ClaimTrainingOutput{
		Character: c,
		Stat:      stat,
		Accrual:   accrual,
	}, nil
}

func (o *orchestrator) getCharacter(ctx context.Context, id string) (*entities.Character, error) {
	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	return out.Character, nil
}

func (o *orchestrator) withCharacterLock(ctx context.Context, operation, characterID string, fn func(ctx context.Context) error) error {
	err := lock.WithLock(ctx, o.locker, lock.CharacterKey(characterID), o.lockTTL, fn)
	if errors.IsAborted(err) {
		o.metrics.RecordLockConflict(operation)
	}
	return err
}
