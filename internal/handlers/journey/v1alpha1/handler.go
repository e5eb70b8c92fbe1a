// Package v1alpha1 serves the journey gRPC API
package v1alpha1

import (
	"context"

	"github.com/Hagni1/jurney/internal/errors"
	"github.com/Hagni1/jurney/internal/orchestrators/character"
	"github.com/Hagni1/jurney/internal/orchestrators/combat"
	"github.com/Hagni1/jurney/internal/orchestrators/training"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
	CombatService    combat.Service
	TrainingService  training.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.CombatService == nil {
		vb.RequiredField("CombatService")
	}
	if c.TrainingService == nil {
		vb.RequiredField("TrainingService")
	}
	return vb.Build()
}

// Handler implements JourneyServiceServer
type Handler struct {
	UnimplementedJourneyServiceServer
	characterService character.Service
	combatService    combat.Service
	trainingService  training.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
		combatService:    cfg.CombatService,
		trainingService:  cfg.TrainingService,
	}, nil
}

// CreateCharacter creates a level 1 character
func (h *Handler) CreateCharacter(ctx context.Context, req *CreateCharacterRequest) (*CreateCharacterResponse, error) {
	output, err := h.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{
		Nickname: req.Nickname,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreateCharacterResponse{Character: convertProfile(output.Profile)}, nil
}

// GetCharacter returns a character with its derived stats
func (h *Handler) GetCharacter(ctx context.Context, req *GetCharacterRequest) (*GetCharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetCharacterResponse{Character: convertProfile(output.Profile)}, nil
}

// ListStages returns the stage catalog
func (h *Handler) ListStages(ctx context.Context, req *ListStagesRequest) (*ListStagesResponse, error) {
	output, err := h.characterService.ListStages(ctx, &character.ListStagesInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListStagesResponse{Stages: convertStages(output.Stages)}, nil
}

// Fight fights a stage and applies the outcome
func (h *Handler) Fight(ctx context.Context, req *FightRequest) (*FightResponse, error) {
	output, err := h.combatService.Fight(ctx, &combat.FightInput{
		CharacterID: req.CharacterID,
		Stage:       req.Stage,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &FightResponse{
		Combat:        convertCombat(output.Record),
		Character:     convertCharacter(output.Character),
		LevelsGained:  output.LevelsGained,
		StageUnlocked: output.StageUnlocked,
		Archived:      output.Archived,
	}, nil
}

// GetCombat returns an archived fight with its action log
func (h *Handler) GetCombat(ctx context.Context, req *GetCombatRequest) (*GetCombatResponse, error) {
	if req.CombatID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("combat_id is required"))
	}

	output, err := h.combatService.GetCombat(ctx, &combat.GetCombatInput{CombatID: req.CombatID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetCombatResponse{Combat: convertCombat(output.Record)}, nil
}

// ListCombats returns a character's recent fights
func (h *Handler) ListCombats(ctx context.Context, req *ListCombatsRequest) (*ListCombatsResponse, error) {
	output, err := h.combatService.ListCombats(ctx, &combat.ListCombatsInput{
		CharacterID: req.CharacterID,
		Limit:       req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListCombatsResponse{Combats: convertCombats(output.Records)}, nil
}

// GetTraining returns the active training session
func (h *Handler) GetTraining(ctx context.Context, req *GetTrainingRequest) (*GetTrainingResponse, error) {
	output, err := h.trainingService.GetTraining(ctx, &training.GetTrainingInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetTrainingResponse{Training: convertTraining(output.Session, output.Accrual)}, nil
}

// StartTraining starts training a stat
func (h *Handler) StartTraining(ctx context.Context, req *StartTrainingRequest) (*StartTrainingResponse, error) {
	output, err := h.trainingService.StartTraining(ctx, &training.StartTrainingInput{
		CharacterID: req.CharacterID,
		Stat:        req.Stat,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartTrainingResponse{
		Training: convertTraining(output.Session, nil),
		Replaced: output.Replaced,
	}, nil
}

// ClaimTraining claims accrued training points
func (h *Handler) ClaimTraining(ctx context.Context, req *ClaimTrainingRequest) (*ClaimTrainingResponse, error) {
	output, err := h.trainingService.ClaimTraining(ctx, &training.ClaimTrainingInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClaimTrainingResponse{
		Character:      convertCharacter(output.Character),
		Stat:           output.Stat.String(),
		Gains:          output.Accrual.StatGains,
		ElapsedMinutes: output.Accrual.ElapsedMinutes,
		CappedMinutes:  output.Accrual.CappedMinutes,
	}, nil
}

// GetRanking returns the leaderboard
func (h *Handler) GetRanking(ctx context.Context, req *GetRankingRequest) (*GetRankingResponse, error) {
	output, err := h.characterService.GetRanking(ctx, &character.GetRankingInput{Limit: req.Limit})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]*RankingEntry, 0, len(output.Entries))
	for _, e := range output.Entries {
		entries = append(entries, &RankingEntry{
			Rank:      e.Rank,
			Character: convertProfile(e.Profile),
		})
	}

	return &GetRankingResponse{Entries: entries}, nil
}
