package lock_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/Hagni1/jurney/internal/errors"
	"github.com/Hagni1/jurney/internal/pkg/idgen"
	"github.com/Hagni1/jurney/internal/repositories/lock"
	"github.com/Hagni1/jurney/internal/testutils"
)

type RedisLockerTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	locker lock.Locker
	ctx    context.Context
}

func TestRedisLockerSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerTestSuite))
}

func (s *RedisLockerTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedis(s.T())
	s.mr = mr

	locker, err := lock.NewRedis(&lock.RedisConfig{
		Client: client,
		IDGen:  idgen.NewSequential("token"),
	})
	s.Require().NoError(err)
	s.locker = locker
	s.ctx = context.Background()
}

func (s *RedisLockerTestSuite) TestAcquireIsExclusive() {
	key := lock.CharacterKey("char_1")

	first, err := s.locker.Acquire(s.ctx, lock.AcquireInput{Key: key, TTL: time.Second})
	s.Require().NoError(err)
	s.Equal("token_1", first.Token)

	_, err = s.locker.Acquire(s.ctx, lock.AcquireInput{Key: key, TTL: time.Second})
	s.True(errors.IsAborted(err))

	// a different character is unaffected
	_, err = s.locker.Acquire(s.ctx, lock.AcquireInput{Key: lock.CharacterKey("char_2")})
	s.NoError(err)

	released, err := s.locker.Release(s.ctx, lock.ReleaseInput{Key: key, Token: first.Token})
	s.Require().NoError(err)
	s.True(released.Released)

	_, err = s.locker.Acquire(s.ctx, lock.AcquireInput{Key: key, TTL: time.Second})
	s.NoError(err)
}

func (s *RedisLockerTestSuite) TestReleaseIgnoresForeignToken() {
	key := lock.CharacterKey("char_1")
	_, err := s.locker.Acquire(s.ctx, lock.AcquireInput{Key: key, TTL: time.Second})
	s.Require().NoError(err)

	released, err := s.locker.Release(s.ctx, lock.ReleaseInput{Key: key, Token: "someone-else"})
	s.Require().NoError(err)
	s.False(released.Released)
	s.True(s.mr.Exists("lock:" + key))
}

func (s *RedisLockerTestSuite) TestLeaseExpires() {
	key := lock.CharacterKey("char_1")
	_, err := s.locker.Acquire(s.ctx, lock.AcquireInput{Key: key, TTL: 500 * time.Millisecond})
	s.Require().NoError(err)

	s.mr.FastForward(time.Second)

	_, err = s.locker.Acquire(s.ctx, lock.AcquireInput{Key: key, TTL: time.Second})
	s.NoError(err)
}

func (s *RedisLockerTestSuite) TestWithLock() {
	key := lock.CharacterKey("char_1")

	s.Run("runs fn and releases", func() {
		ran := false
		err := lock.WithLock(s.ctx, s.locker, key, time.Second, func(ctx context.Context) error {
			ran = true
			s.True(s.mr.Exists("lock:" + key))
			return nil
		})
		s.Require().NoError(err)
		s.True(ran)
		s.False(s.mr.Exists("lock:" + key))
	})

	s.Run("returns fn error and still releases", func() {
		err := lock.WithLock(s.ctx, s.locker, key, time.Second, func(ctx context.Context) error {
			return fmt.Errorf("fight failed")
		})
		s.EqualError(err, "fight failed")
		s.False(s.mr.Exists("lock:" + key))
	})

	s.Run("busy lock skips fn", func() {
		_, err := s.locker.Acquire(s.ctx, lock.AcquireInput{Key: key, TTL: time.Second})
		s.Require().NoError(err)

		err = lock.WithLock(s.ctx, s.locker, key, time.Second, func(ctx context.Context) error {
			s.Fail("fn must not run")
			return nil
		})
		s.True(errors.IsAborted(err))
	})
}
