package character

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	redisclient "github.com/Hagni1/jurney/internal/redis"
)

const reindexScanCount = 500

// ReindexInput controls a ranking and nickname rebuild
type ReindexInput struct {
	// DeleteCorrupted removes character keys that no longer decode
	DeleteCorrupted bool
}

// ReindexOutput reports what a rebuild found
type ReindexOutput struct {
	Checked   int
	Indexed   int
	Corrupted []string
	Deleted   []string
}

// Reindex rebuilds the ranking and nickname indexes from the stored characters.
// Writers are not blocked, so run it while the server is stopped.
func Reindex(ctx context.Context, client redisclient.Client, input ReindexInput) (*ReindexOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	out := &ReindexOutput{}
	var scores []redis.Z
	nicknames := make(map[string]any)

	iter := client.Scan(ctx, 0, characterKeyPrefix+"*", reindexScanCount).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == nicknameIndexKey || key == rankingKey {
			continue
		}
		out.Checked++

		raw, err := client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var char entities.Character
		if err := json.Unmarshal([]byte(raw), &char); err != nil || char.ID == "" || char.Nickname == "" ||
			characterKeyPrefix+char.ID != key {
			slog.WarnContext(ctx, "corrupted character entry", "key", key)
			out.Corrupted = append(out.Corrupted, key)
			continue
		}

		if owner, taken := nicknames[char.Nickname]; taken {
			slog.WarnContext(ctx, "duplicate nickname",
				"nickname", char.Nickname,
				"character_id", char.ID,
				"kept_character_id", owner)
		} else {
			nicknames[char.Nickname] = char.ID
		}
		scores = append(scores, redisZ(&char))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan characters")
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, rankingKey, nicknameIndexKey)
	if len(scores) > 0 {
		pipe.ZAdd(ctx, rankingKey, scores...)
		pipe.HSet(ctx, nicknameIndexKey, nicknames)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to write indexes")
	}
	out.Indexed = len(scores)

	if input.DeleteCorrupted {
		for _, key := range out.Corrupted {
			if err := client.Del(ctx, key).Err(); err != nil {
				return out, errors.Wrapf(err, "failed to delete %s", key)
			}
			out.Deleted = append(out.Deleted, key)
		}
	}

	slog.InfoContext(ctx, "reindexed characters",
		"checked", out.Checked,
		"indexed", out.Indexed,
		"corrupted", len(out.Corrupted),
		"deleted", len(out.Deleted))

	return out, nil
}
