// Package lock provides short-lived per-character mutual exclusion across
// server instances.
package lock

//go:generate mockgen -destination=mock/mock_locker.go -package=lockmock github.com/Hagni1/jurney/internal/repositories/lock Locker

import (
	"context"
	"log/slog"
	"time"
)

// Locker acquires and releases named leases
type Locker interface {
	// Acquire takes the lease for Key
	// Returns errors.Aborted when someone else holds it
	Acquire(ctx context.Context, input AcquireInput) (*AcquireOutput, error)

	// Release gives the lease back. Releasing an expired or foreign lease is a no-op.
	Release(ctx context.Context, input ReleaseInput) (*ReleaseOutput, error)
}

// AcquireInput defines the input for taking a lease
type AcquireInput struct {
	Key string
	TTL time.Duration
}

// AcquireOutput defines the output for taking a lease
type AcquireOutput struct {
	Token string
}

// ReleaseInput defines the input for releasing a lease
type ReleaseInput struct {
	Key   string
	Token string
}

// ReleaseOutput defines the output for releasing a lease
type ReleaseOutput struct {
	Released bool
}

// CharacterKey is the lease name guarding a character's progression
func CharacterKey(characterID string) string {
	return "character:" + characterID
}

// WithLock runs fn while holding the lease for key.
// The lease is released with a background context so a cancelled request
// does not leave it held until the TTL.
func WithLock(ctx context.Context, locker Locker, key string, ttl time.Duration, fn func(ctx context.Context) error) error {
	acquired, err := locker.Acquire(ctx, AcquireInput{Key: key, TTL: ttl})
	if err != nil {
		return err
	}

	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()

		out, err := locker.Release(releaseCtx, ReleaseInput{Key: key, Token: acquired.Token})
		if err != nil {
			slog.ErrorContext(ctx, "failed to release lock",
				"key", key,
				"error", err.Error())
			return
		}
		if !out.Released {
			slog.WarnContext(ctx, "lock expired before release",
				"key", key,
				"ttl", ttl)
		}
	}()

	return fn(ctx)
}
