package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	gamecombat "github.com/Hagni1/jurney/internal/game/combat"
	gametraining "github.com/Hagni1/jurney/internal/game/training"
	"github.com/Hagni1/jurney/internal/handlers/journey/v1alpha1"
	"github.com/Hagni1/jurney/internal/orchestrators/character"
	charactermock "github.com/Hagni1/jurney/internal/orchestrators/character/mock"
	"github.com/Hagni1/jurney/internal/orchestrators/combat"
	combatmock "github.com/Hagni1/jurney/internal/orchestrators/combat/mock"
	"github.com/Hagni1/jurney/internal/orchestrators/training"
	trainingmock "github.com/Hagni1/jurney/internal/orchestrators/training/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharacter *charactermock.MockService
	mockCombat    *combatmock.MockService
	mockTraining  *trainingmock.MockService
	handler       *v1alpha1.Handler
	ctx           context.Context
	now           time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacter = charactermock.NewMockService(s.ctrl)
	s.mockCombat = combatmock.NewMockService(s.ctrl)
	s.mockTraining = trainingmock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: s.mockCharacter,
		CombatService:    s.mockCombat,
		TrainingService:  s.mockTraining,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_MissingServices() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "CharacterService")
	s.Contains(err.Error(), "CombatService")
	s.Contains(err.Error(), "TrainingService")
}

func (s *HandlerTestSuite) TestCreateCharacter() {
	c := entities.NewCharacter("char_1", "Aria", s.now)
	s.mockCharacter.EXPECT().
		CreateCharacter(s.ctx, &character.CreateCharacterInput{Nickname: "Aria"}).
		Return(&character.CreateCharacterOutput{Profile: character.NewProfile(c)}, nil)

	resp, err := s.handler.CreateCharacter(s.ctx, &v1alpha1.CreateCharacterRequest{Nickname: "Aria"})
	s.Require().NoError(err)
	s.Equal("char_1", resp.Character.ID)
	s.Equal(1, resp.Character.Level)
	s.Equal(100, resp.Character.ExpToNextLevel)
	s.Equal(10, resp.Character.MaxAFKMinutes)
	s.Equal(&v1alpha1.Stats{HP: 115, Shield: 25, Damage: 16, AttackSpeed: 15, DodgeChance: 2.5}, resp.Character.Stats)
}

func (s *HandlerTestSuite) TestCreateCharacter_AlreadyExists() {
	s.mockCharacter.EXPECT().
		CreateCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("nickname Aria is taken").WithMeta("nickname", "Aria"))

	_, err := s.handler.CreateCharacter(s.ctx, &v1alpha1.CreateCharacterRequest{Nickname: "Aria"})
	s.Equal(codes.AlreadyExists, status.Code(err))

	back := errors.FromGRPCError(err)
	s.True(errors.IsAlreadyExists(back))
	s.Equal("Aria", errors.GetMeta(back)["nickname"])
}

func (s *HandlerTestSuite) TestGetCharacter_RequiresID() {
	_, err := s.handler.GetCharacter(s.ctx, &v1alpha1.GetCharacterRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetCharacter_NotFound() {
	s.mockCharacter.EXPECT().
		GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "missing"}).
		Return(nil, errors.NotFound("character missing not found"))

	_, err := s.handler.GetCharacter(s.ctx, &v1alpha1.GetCharacterRequest{CharacterID: "missing"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestListStages() {
	s.mockCharacter.EXPECT().
		ListStages(s.ctx, &character.ListStagesInput{CharacterID: "char_1"}).
		Return(&character.ListStagesOutput{Stages: []*character.StageInfo{
			{ID: 1, EnemyID: "slime", EnemyName: "Slime", EnemyLevel: 1, ExpReward: 50, Unlocked: true},
			{ID: 10, EnemyID: "ogre_chief", EnemyName: "Ogre Chieftain", EnemyLevel: 6, IsBoss: true, ExpReward: 300},
		}}, nil)

	resp, err := s.handler.ListStages(s.ctx, &v1alpha1.ListStagesRequest{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(resp.Stages, 2)
	s.True(resp.Stages[0].Unlocked)
	s.True(resp.Stages[1].IsBoss)
	s.Equal("Ogre Chieftain", resp.Stages[1].EnemyName)
}

func (s *HandlerTestSuite) TestFight() {
	after := entities.NewCharacter("char_1", "Aria", s.now)
	after.Exp = 50
	after.CompletedStage = 1

	record := &entities.CombatRecord{
		ID:          "combat_1",
		CharacterID: "char_1",
		Stage:       1,
		EnemyID:     "slime",
		EnemyLevel:  1,
		IsWin:       true,
		FirstClear:  true,
		Seed:        -42,
		ExpGained:   50,
		NewLevel:    1,
		Iterations:  49,
		CreatedAt:   s.now,
		Actions: []gamecombat.Action{
			{Attacker: "Aria", Defender: "Slime", AttackerIsPlayer: true, Damage: 16, AttackerDamage: 16, HPBefore: 110, HPAfter: 94},
			{Attacker: "Slime", Defender: "Aria", AttackerDamage: 11, Dodged: true, HPBefore: 115, HPAfter: 115, ShieldBefore: 25, ShieldAfter: 25},
		},
	}

	s.mockCombat.EXPECT().
		Fight(s.ctx, &combat.FightInput{CharacterID: "char_1", Stage: 1}).
		Return(&combat.FightOutput{
			Record:        record,
			Character:     after,
			StageUnlocked: true,
			Archived:      true,
		}, nil)

	resp, err := s.handler.Fight(s.ctx, &v1alpha1.FightRequest{CharacterID: "char_1", Stage: 1})
	s.Require().NoError(err)
	s.Equal("combat_1", resp.Combat.ID)
	s.Equal(int64(-42), resp.Combat.Seed)
	s.Require().Len(resp.Combat.Actions, 1)
	s.Equal(94, resp.Combat.Actions[0].HPAfter)
	s.Require().Len(resp.Combat.Actions, 2)
	s.True(resp.Combat.Actions[1].Dodged)
	s.Zero(resp.Combat.Actions[1].Damage)
	s.Equal(11, resp.Combat.Actions[1].AttackerDamage)
	s.Equal(50, resp.Character.Exp)
	s.True(resp.StageUnlocked)
	s.True(resp.Archived)
}

func (s *HandlerTestSuite) TestFight_Locked() {
	s.mockCombat.EXPECT().
		Fight(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("stage 5 is locked").WithMeta("completed_stage", 1))

	_, err := s.handler.Fight(s.ctx, &v1alpha1.FightRequest{CharacterID: "char_1", Stage: 5})
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestFight_Busy() {
	s.mockCombat.EXPECT().
		Fight(s.ctx, gomock.Any()).
		Return(nil, errors.Aborted("character is busy"))

	_, err := s.handler.Fight(s.ctx, &v1alpha1.FightRequest{CharacterID: "char_1", Stage: 1})
	s.Equal(codes.Aborted, status.Code(err))
}

func (s *HandlerTestSuite) TestGetAndListCombats() {
	_, err := s.handler.GetCombat(s.ctx, &v1alpha1.GetCombatRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	record := &entities.CombatRecord{ID: "combat_1", CharacterID: "char_1", CreatedAt: s.now}
	s.mockCombat.EXPECT().
		GetCombat(s.ctx, &combat.GetCombatInput{CombatID: "combat_1"}).
		Return(&combat.GetCombatOutput{Record: record}, nil)
	s.mockCombat.EXPECT().
		ListCombats(s.ctx, &combat.ListCombatsInput{CharacterID: "char_1", Limit: 5}).
		Return(&combat.ListCombatsOutput{Records: []*entities.CombatRecord{record}}, nil)

	got, err := s.handler.GetCombat(s.ctx, &v1alpha1.GetCombatRequest{CombatID: "combat_1"})
	s.Require().NoError(err)
	s.Equal("combat_1", got.Combat.ID)
	s.Nil(got.Combat.Actions)

	listed, err := s.handler.ListCombats(s.ctx, &v1alpha1.ListCombatsRequest{CharacterID: "char_1", Limit: 5})
	s.Require().NoError(err)
	s.Len(listed.Combats, 1)
}

func (s *HandlerTestSuite) TestGetTraining_Idle() {
	s.mockTraining.EXPECT().
		GetTraining(s.ctx, &training.GetTrainingInput{CharacterID: "char_1"}).
		Return(&training.GetTrainingOutput{}, nil)

	resp, err := s.handler.GetTraining(s.ctx, &v1alpha1.GetTrainingRequest{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Nil(resp.Training)
}

func (s *HandlerTestSuite) TestGetTraining_Active() {
	session := &entities.TrainingSession{CharacterID: "char_1", Stat: "strength", StartTime: s.now, LastClaimTime: s.now}
	s.mockTraining.EXPECT().
		GetTraining(s.ctx, &training.GetTrainingInput{CharacterID: "char_1"}).
		Return(&training.GetTrainingOutput{
			Session: session,
			Accrual: &gametraining.Accrual{ElapsedMinutes: 12, CappedMinutes: 10, StatGains: 3, MaxAFKMinutes: 10},
		}, nil)

	resp, err := s.handler.GetTraining(s.ctx, &v1alpha1.GetTrainingRequest{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(&v1alpha1.Training{
		Stat:           "strength",
		StartTime:      s.now,
		LastClaimTime:  s.now,
		ElapsedMinutes: 12,
		CappedMinutes:  10,
		StatGains:      3,
		MaxAFKMinutes:  10,
	}, resp.Training)
}

func (s *HandlerTestSuite) TestStartAndClaimTraining() {
	session := &entities.TrainingSession{CharacterID: "char_1", Stat: "dexterity", StartTime: s.now, LastClaimTime: s.now}
	s.mockTraining.EXPECT().
		StartTraining(s.ctx, &training.StartTrainingInput{CharacterID: "char_1", Stat: "dexterity"}).
		Return(&training.StartTrainingOutput{Session: session, Replaced: true}, nil)

	started, err := s.handler.StartTraining(s.ctx, &v1alpha1.StartTrainingRequest{CharacterID: "char_1", Stat: "dexterity"})
	s.Require().NoError(err)
	s.True(started.Replaced)
	s.Equal("dexterity", started.Training.Stat)

	c := entities.NewCharacter("char_1", "Aria", s.now)
	c.Dexterity = 8
	s.mockTraining.EXPECT().
		ClaimTraining(s.ctx, &training.ClaimTrainingInput{CharacterID: "char_1"}).
		Return(&training.ClaimTrainingOutput{
			Character: c,
			Stat:      gametraining.StatDexterity,
			Accrual:   gametraining.Accrual{ElapsedMinutes: 9, CappedMinutes: 9, StatGains: 3, MaxAFKMinutes: 10},
		}, nil)

	claimed, err := s.handler.ClaimTraining(s.ctx, &v1alpha1.ClaimTrainingRequest{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal("dexterity", claimed.Stat)
	s.Equal(3, claimed.Gains)
	s.Equal(8, claimed.Character.Dexterity)
}

func (s *HandlerTestSuite) TestClaimTraining_NotTraining() {
	s.mockTraining.EXPECT().
		ClaimTraining(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("character char_1 is not training"))

	_, err := s.handler.ClaimTraining(s.ctx, &v1alpha1.ClaimTrainingRequest{CharacterID: "char_1"})
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestGetRanking() {
	first := entities.NewCharacter("char_1", "Aria", s.now)
	first.CompletedStage = 7
	s.mockCharacter.EXPECT().
		GetRanking(s.ctx, &character.GetRankingInput{Limit: 3}).
		Return(&character.GetRankingOutput{Entries: []*character.RankingEntry{
			{Rank: 1, Profile: character.NewProfile(first)},
		}}, nil)

	resp, err := s.handler.GetRanking(s.ctx, &v1alpha1.GetRankingRequest{Limit: 3})
	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.Equal(1, resp.Entries[0].Rank)
	s.Equal(7, resp.Entries[0].Character.CompletedStage)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
