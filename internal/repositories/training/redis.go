package training

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	redisclient "github.com/Hagni1/jurney/internal/redis"
)

const (
	trainingKeyPrefix = "training:"

	errCharacterIDEmpty = "character ID cannot be empty"
)

// Key returns the session key for a character
func Key(characterID string) string {
	return trainingKeyPrefix + characterID
}

// RedisConfig contains configuration for the Redis training repository
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

// NewRedis creates a Redis-backed training repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument("session cannot be nil")
	}
	if input.Session.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal training session")
	}

	// SET ... GET returns the previous value, redis.Nil when there was none
	key := Key(input.Session.CharacterID)
	replaced := true
	if err := r.client.SetArgs(ctx, key, data, redis.SetArgs{Get: true}).Err(); err != nil {
		if err != redis.Nil {
			return nil, errors.Wrapf(err, "failed to store training session")
		}
		replaced = false
	}

	if replaced {
		slog.InfoContext(ctx, "replaced unclaimed training session",
			"character_id", input.Session.CharacterID,
			"stat", input.Session.Stat)
	}

	return &UpsertOutput{Session: input.Session, Replaced: replaced}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	raw, err := r.client.Get(ctx, Key(input.CharacterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character %s is not training", input.CharacterID).
				WithMeta("character_id", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get training session")
	}

	var session entities.TrainingSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal training session")
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	n, err := r.client.Del(ctx, Key(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete training session")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}
