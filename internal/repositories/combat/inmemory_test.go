package combat_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	gamecombat "github.com/Hagni1/jurney/internal/game/combat"
	"github.com/Hagni1/jurney/internal/repositories/combat"
)

var archiveStart = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

func newRecord(id, characterID string, at time.Time) *entities.CombatRecord {
	return &entities.CombatRecord{
		ID:          id,
		CharacterID: characterID,
		Stage:       1,
		EnemyID:     "slime",
		EnemyLevel:  1,
		IsWin:       true,
		FirstClear:  true,
		Seed:        42,
		ExpGained:   50,
		NewLevel:    1,
		Iterations:  49,
		CreatedAt:   at,
		Actions: []gamecombat.Action{
			{Attacker: "zed", Defender: "Slime", AttackerIsPlayer: true, Damage: 16, AttackerDamage: 16, HPBefore: 110, HPAfter: 94},
			{Attacker: "Slime", Defender: "zed", Damage: 11, AttackerDamage: 11, HPBefore: 115, HPAfter: 115, ShieldBefore: 25, ShieldAfter: 14},
			{Attacker: "zed", Defender: "Slime", AttackerIsPlayer: true, AttackerDamage: 16, Dodged: true, HPBefore: 94, HPAfter: 94},
		},
	}
}

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo combat.Repository
	ctx  context.Context
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = combat.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TestSaveAndGet() {
	rec := newRecord("combat_1", "char_1", archiveStart)
	_, err := s.repo.Save(s.ctx, combat.SaveInput{Record: rec})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, combat.GetInput{ID: "combat_1"})
	s.Require().NoError(err)
	s.Equal(rec, got.Record)

	// the archive holds its own copy
	got.Record.Actions[0].Damage = 999
	again, err := s.repo.Get(s.ctx, combat.GetInput{ID: "combat_1"})
	s.Require().NoError(err)
	s.Equal(16, again.Record.Actions[0].Damage)
}

func (s *InMemoryRepositoryTestSuite) TestSaveDuplicate() {
	_, err := s.repo.Save(s.ctx, combat.SaveInput{Record: newRecord("combat_1", "char_1", archiveStart)})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, combat.SaveInput{Record: newRecord("combat_1", "char_1", archiveStart)})
	s.True(errors.IsAlreadyExists(err))
}

func (s *InMemoryRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, combat.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, combat.SaveInput{Record: &entities.CombatRecord{ID: "combat_1"}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, combat.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, combat.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.ListByCharacter(s.ctx, combat.ListByCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestListByCharacter() {
	for i := 0; i < 25; i++ {
		rec := newRecord(fmt.Sprintf("combat_%02d", i), "char_1", archiveStart.Add(time.Duration(i)*time.Minute))
		_, err := s.repo.Save(s.ctx, combat.SaveInput{Record: rec})
		s.Require().NoError(err)
	}
	_, err := s.repo.Save(s.ctx, combat.SaveInput{Record: newRecord("other", "char_2", archiveStart)})
	s.Require().NoError(err)

	out, err := s.repo.ListByCharacter(s.ctx, combat.ListByCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, combat.DefaultListLimit)
	s.Equal("combat_24", out.Records[0].ID)
	s.Equal("combat_05", out.Records[len(out.Records)-1].ID)
	for _, rec := range out.Records {
		s.Nil(rec.Actions)
	}

	out, err = s.repo.ListByCharacter(s.ctx, combat.ListByCharacterInput{CharacterID: "char_2", Limit: 5})
	s.Require().NoError(err)
	s.Len(out.Records, 1)

	out, err = s.repo.ListByCharacter(s.ctx, combat.ListByCharacterInput{CharacterID: "nobody"})
	s.Require().NoError(err)
	s.Empty(out.Records)
}
