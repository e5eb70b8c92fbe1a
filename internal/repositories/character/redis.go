package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	"github.com/Hagni1/jurney/internal/game/stats"
	"github.com/Hagni1/jurney/internal/pkg/clock"
	redisclient "github.com/Hagni1/jurney/internal/redis"
	"github.com/Hagni1/jurney/internal/repositories/completion"
	"github.com/Hagni1/jurney/internal/repositories/training"
)

const (
	characterKeyPrefix = "character:"
	nicknameIndexKey   = "character:nickname"
	rankingKey         = "character:ranking"

	// stageWeight keeps the stage component above any level value
	stageWeight = 1 << 20

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errNicknameEmpty    = "nickname cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// RankingScore orders characters by completed stage, then level, then
// progress towards the next level. The exp fraction is below 1 because exp
// never reaches the level threshold.
func RankingScore(c *entities.Character) float64 {
	score := float64(c.CompletedStage)*stageWeight + float64(c.Level)
	if threshold := stats.ExpToNextLevel(c.Level); threshold > 0 {
		score += float64(c.Exp) / float64(threshold)
	}
	return score
}

func redisZ(c *entities.Character) redis.Z {
	return redis.Z{Score: RankingScore(c), Member: c.ID}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	char := input.Character
	if char == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if char.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if char.Nickname == "" {
		return nil, errors.InvalidArgument(errNicknameEmpty)
	}

	key := characterKeyPrefix + char.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", char.ID)
	}

	// HSETNX claims the nickname atomically, the character is written after
	claimed, err := r.client.HSetNX(ctx, nicknameIndexKey, char.Nickname, char.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to claim nickname")
	}
	if !claimed {
		return nil, errors.AlreadyExistsf("nickname %s is taken", char.Nickname).
			WithMeta("nickname", char.Nickname)
	}

	data, err := json.Marshal(char)
	if err != nil {
		r.releaseNickname(ctx, char)
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, rankingKey, redisZ(char))
	if _, err := pipe.Exec(ctx); err != nil {
		r.releaseNickname(ctx, char)
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.DebugContext(ctx, "created character",
		"character_id", char.ID,
		"nickname", char.Nickname)

	return &CreateOutput{Character: char}, nil
}

func (r *redisRepository) releaseNickname(ctx context.Context, char *entities.Character) {
	if err := r.client.HDel(ctx, nicknameIndexKey, char.Nickname).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to release nickname",
			"nickname", char.Nickname,
			"error", err.Error())
	}
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	char, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: char}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*entities.Character, error) {
	result, err := r.client.Get(ctx, characterKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", id).
				WithMeta("character_id", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var char entities.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	return &char, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	char := input.Character
	if char == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if char.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.ClearedStage < 0 {
		return nil, errors.InvalidArgument("cleared stage cannot be negative")
	}

	existing, err := r.load(ctx, char.ID)
	if err != nil {
		return nil, err
	}
	if existing.Nickname != char.Nickname {
		return nil, errors.InvalidArgument("nickname cannot be changed")
	}

	char.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+char.ID, data, 0)
	pipe.ZAdd(ctx, rankingKey, redisZ(char))
	if input.ClearedStage > 0 {
		pipe.HIncrBy(ctx, completion.Key(char.ID), completion.Field(input.ClearedStage), 1)
	}
	if input.EndTraining {
		pipe.Del(ctx, training.Key(char.ID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: char}, nil
}

func (r *redisRepository) ListRanking(ctx context.Context, input ListRankingInput) (*ListRankingOutput, error) {
	if input.Limit <= 0 {
		return nil, errors.InvalidArgument("limit must be positive")
	}

	ids, err := r.client.ZRevRange(ctx, rankingKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ranking")
	}
	if len(ids) == 0 {
		return &ListRankingOutput{Characters: []*entities.Character{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = characterKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ranked characters")
	}

	characters := make([]*entities.Character, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "ranking references missing character",
				"character_id", ids[i])
			continue
		}

		var char entities.Character
		if err := json.Unmarshal([]byte(raw), &char); err != nil {
			slog.ErrorContext(ctx, "failed to unmarshal ranked character",
				"character_id", ids[i],
				"error", err.Error())
			continue
		}
		characters = append(characters, &char)
	}

	slog.DebugContext(ctx, "listed ranking",
		"limit", input.Limit,
		"count", len(characters))

	return &ListRankingOutput{Characters: characters}, nil
}
