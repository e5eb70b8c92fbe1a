// Package character implements character creation, lookup and the leaderboard
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/Hagni1/jurney/internal/orchestrators/character Service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	"github.com/Hagni1/jurney/internal/game/combat"
	"github.com/Hagni1/jurney/internal/metrics"
	"github.com/Hagni1/jurney/internal/pkg/clock"
	"github.com/Hagni1/jurney/internal/pkg/idgen"
	characterrepo "github.com/Hagni1/jurney/internal/repositories/character"
	"github.com/Hagni1/jurney/internal/repositories/stage"
)

const (
	// MaxNicknameLength is counted in runes
	MaxNicknameLength = 32

	// DefaultRankingLimit is used when the config leaves it unset
	DefaultRankingLimit = 100
)

// Service defines the interface for character operations
type Service interface {
	// CreateCharacter creates a level 1 character
	// Returns errors.AlreadyExists when the nickname is taken
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// GetCharacter returns a character with its derived stats
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// GetRanking returns the leaderboard
	GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error)

	// ListStages returns the stage catalog
	ListStages(ctx context.Context, input *ListStagesInput) (*ListStagesOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	StageRepo     stage.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	Metrics       *metrics.Manager
	RankingLimit  int
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
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.RankingLimit < 0 {
		vb.InvalidField("RankingLimit", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
	stageRepo     stage.Repository
	idGen         idgen.Generator
	clock         clock.Clock
	metrics       *metrics.Manager
	rankingLimit  int
}

// NewOrchestrator creates a character orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		characterRepo: cfg.CharacterRepo,
		stageRepo:     cfg.StageRepo,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		metrics:       cfg.Metrics,
		rankingLimit:  cfg.RankingLimit,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.rankingLimit == 0 {
		o.rankingLimit = DefaultRankingLimit
	}

	return o, nil
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	nickname := strings.TrimSpace(input.Nickname)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("nickname", nickname, vb)
	errors.ValidateMaxLength("nickname", nickname, MaxNicknameLength, vb)
	if !utf8.ValidString(nickname) {
		vb.InvalidField("nickname", "must be valid UTF-8")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := entities.NewCharacter(o.idGen.Generate(), nickname, o.clock.Now())

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	o.metrics.RecordCharacterCreated()

	slog.InfoContext(ctx, "character created",
		"character_id", out.Character.ID,
		"nickname", out.Character.Nickname)

	return &CreateCharacterOutput{Profile: NewProfile(out.Character)}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}

	return &GetCharacterOutput{Profile: NewProfile(out.Character)}, nil
}

func (o *orchestrator) GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error) {
	limit := o.rankingLimit
	if input != nil && input.Limit != 0 {
		if input.Limit < 0 {
			return nil, errors.InvalidArgument("limit cannot be negative")
		}
		limit = min(input.Limit, o.rankingLimit)
	}

	out, err := o.characterRepo.ListRanking(ctx, characterrepo.ListRankingInput{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ranking")
	}

	entries := make([]*RankingEntry, 0, len(out.Characters))
	for i, c := range out.Characters {
		entries = append(entries, &RankingEntry{
			Rank:    i + 1,
			Profile: NewProfile(c),
		})
	}

	return &GetRankingOutput{Entries: entries}, nil
}

func (o *orchestrator) ListStages(ctx context.Context, input *ListStagesInput) (*ListStagesOutput, error) {
	completed := -1
	if input != nil && input.CharacterID != "" {
		out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
		}
		completed = out.Character.CompletedStage
	}

	listed, err := o.stageRepo.List(ctx, stage.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stages")
	}

	stages := make([]*StageInfo, 0, len(listed.Entries))
	for _, entry := range listed.Entries {
		info := &StageInfo{
			ID:         entry.Stage.ID,
			EnemyID:    entry.Enemy.ID,
			EnemyName:  entry.Enemy.Name,
			EnemyLevel: entry.Stage.EnemyLevel,
			IsBoss:     entry.Stage.IsBoss(),
			ExpReward:  combat.RewardExp(entry.Stage.EnemyLevel, true),
		}
		// without a character only the first stage is open
		info.Cleared = entry.Stage.ID <= completed
		info.Unlocked = entry.Stage.ID <= max(completed, 0)+1
		stages = append(stages, info)
	}

	return &ListStagesOutput{Stages: stages}, nil
}
