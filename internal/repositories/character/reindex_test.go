package character_test

import (
	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	"github.com/Hagni1/jurney/internal/repositories/character"
)

func (s *RedisRepositoryTestSuite) TestReindexRebuildsIndexes() {
	s.create("char_1", "Aria")
	second := s.create("char_2", "Bram")
	second.CompletedStage = 4
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: second})
	s.Require().NoError(err)

	s.Require().NoError(s.client.Del(s.ctx, "character:ranking", "character:nickname").Err())

	out, err := character.Reindex(s.ctx, s.client, character.ReindexInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Checked)
	s.Equal(2, out.Indexed)
	s.Empty(out.Corrupted)

	ranking, err := s.repo.ListRanking(s.ctx, character.ListRankingInput{Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(ranking.Characters, 2)
	s.Equal("char_2", ranking.Characters[0].ID)

	// the nickname index is back, so the name is taken again
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: entities.NewCharacter("char_3", "Aria", testNow)})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestReindexReportsCorrupted() {
	s.create("char_1", "Aria")
	s.Require().NoError(s.client.Set(s.ctx, "character:char_bad", "{not json", 0).Err())
	s.Require().NoError(s.client.Set(s.ctx, "character:char_moved", `{"id":"char_other","nickname":"Cid"}`, 0).Err())

	out, err := character.Reindex(s.ctx, s.client, character.ReindexInput{})
	s.Require().NoError(err)
	s.Equal(3, out.Checked)
	s.Equal(1, out.Indexed)
	s.ElementsMatch([]string{"character:char_bad", "character:char_moved"}, out.Corrupted)
	s.Empty(out.Deleted)

	exists, err := s.client.Exists(s.ctx, "character:char_bad").Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)
}

func (s *RedisRepositoryTestSuite) TestReindexDeletesCorrupted() {
	s.Require().NoError(s.client.Set(s.ctx, "character:char_bad", "{not json", 0).Err())

	out, err := character.Reindex(s.ctx, s.client, character.ReindexInput{DeleteCorrupted: true})
	s.Require().NoError(err)
	s.Equal([]string{"character:char_bad"}, out.Deleted)
	s.Equal(0, out.Indexed)

	exists, err := s.client.Exists(s.ctx, "character:char_bad").Result()
	s.Require().NoError(err)
	s.Equal(int64(0), exists)
}

func (s *RedisRepositoryTestSuite) TestReindexNilClient() {
	_, err := character.Reindex(s.ctx, nil, character.ReindexInput{})
	s.True(errors.IsInvalidArgument(err))
}
