package lock

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Hagni1/jurney/internal/errors"
	"github.com/Hagni1/jurney/internal/pkg/idgen"
	redisclient "github.com/Hagni1/jurney/internal/redis"
)

const (
	lockKeyPrefix = "lock:"
	defaultTTL    = 10 * time.Second
)

// releaseScript deletes the key only if it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig contains configuration for the Redis locker
type RedisConfig struct {
	Client redisclient.Client
	// IDGen creates lease tokens, defaults to random UUIDs
	IDGen idgen.Generator
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisLocker struct {
	client redisclient.Client
	idGen  idgen.Generator
}

// NewRedis creates a Redis-backed locker using SET NX PX
func NewRedis(cfg *RedisConfig) (Locker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID("")
	}

	return &redisLocker{client: cfg.Client, idGen: gen}, nil
}

func (l *redisLocker) Acquire(ctx context.Context, input AcquireInput) (*AcquireOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument("lock key cannot be empty")
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	token := l.idGen.Generate()
	ok, err := l.client.SetNX(ctx, lockKeyPrefix+input.Key, token, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to acquire lock")
	}
	if !ok {
		return nil, errors.Abortedf("%s is busy, try again", input.Key).
			WithMeta("lock_key", input.Key)
	}

	return &AcquireOutput{Token: token}, nil
}

func (l *redisLocker) Release(ctx context.Context, input ReleaseInput) (*ReleaseOutput, error) {
	if input.Key == "" || input.Token == "" {
		return nil, errors.InvalidArgument("lock key and token are required")
	}

	n, err := releaseScript.Run(ctx, l.client, []string{lockKeyPrefix + input.Key}, input.Token).Int()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to release lock")
	}

	return &ReleaseOutput{Released: n == 1}, nil
}
