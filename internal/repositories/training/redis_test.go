package training_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	"github.com/Hagni1/jurney/internal/repositories/training"
	"github.com/Hagni1/jurney/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo training.Repository
	ctx  context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedis(s.T())

	repo, err := training.NewRedis(&training.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func session(stat string, start time.Time) *entities.TrainingSession {
	return &entities.TrainingSession{
		CharacterID:   "char_1",
		Stat:          stat,
		StartTime:     start,
		LastClaimTime: start,
	}
}

func (s *RedisRepositoryTestSuite) TestUpsertGetDelete() {
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	out, err := s.repo.Upsert(s.ctx, training.UpsertInput{Session: session("strength", start)})
	s.Require().NoError(err)
	s.False(out.Replaced)

	got, err := s.repo.Get(s.ctx, training.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal("strength", got.Session.Stat)
	s.True(start.Equal(got.Session.LastClaimTime))

	deleted, err := s.repo.Delete(s.ctx, training.DeleteInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.True(deleted.Deleted)

	_, err = s.repo.Get(s.ctx, training.GetInput{CharacterID: "char_1"})
	s.True(errors.IsNotFound(err))

	deleted, err = s.repo.Delete(s.ctx, training.DeleteInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.False(deleted.Deleted)
}

func (s *RedisRepositoryTestSuite) TestUpsertOverwrites() {
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	_, err := s.repo.Upsert(s.ctx, training.UpsertInput{Session: session("strength", start)})
	s.Require().NoError(err)

	later := start.Add(time.Hour)
	out, err := s.repo.Upsert(s.ctx, training.UpsertInput{Session: session("dexterity", later)})
	s.Require().NoError(err)
	s.True(out.Replaced)

	got, err := s.repo.Get(s.ctx, training.GetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal("dexterity", got.Session.Stat)
	s.True(later.Equal(got.Session.LastClaimTime))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Upsert(s.ctx, training.UpsertInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, training.UpsertInput{Session: &entities.TrainingSession{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, training.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, training.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}
