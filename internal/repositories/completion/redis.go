package completion

import (
	"context"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/Hagni1/jurney/internal/errors"
	redisclient "github.com/Hagni1/jurney/internal/redis"
)

// Key pattern: completion:{character_id}, one hash field per stage
const completionKeyPrefix = "completion:"

// Key returns the hash holding a character's clear counts
func Key(characterID string) string {
	return completionKeyPrefix + characterID
}

// Field returns the hash field for a stage
func Field(stage int) string {
	return strconv.Itoa(stage)
}

// RedisConfig contains configuration for the Redis completion repository
type RedisConfig struct {
	Client redisclient.Client
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

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed completion repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func validate(characterID string, stage int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", characterID, vb)
	errors.ValidateMin("stage", stage, 1, vb)
	return vb.Build()
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validate(input.CharacterID, input.Stage); err != nil {
		return nil, err
	}

	count, err := r.client.HGet(ctx, Key(input.CharacterID), Field(input.Stage)).Int()
	if err != nil {
		if err == redis.Nil {
			return &GetOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get completion count")
	}

	return &GetOutput{Count: count}, nil
}

func (r *redisRepository) Increment(ctx context.Context, input IncrementInput) (*IncrementOutput, error) {
	if err := validate(input.CharacterID, input.Stage); err != nil {
		return nil, err
	}

	count, err := r.client.HIncrBy(ctx, Key(input.CharacterID), Field(input.Stage), 1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to increment completion count")
	}

	return &IncrementOutput{Count: int(count)}, nil
}
