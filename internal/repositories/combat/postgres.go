package combat

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Hagni1/jurney/internal/entities"
	"github.com/Hagni1/jurney/internal/errors"
	"github.com/Hagni1/jurney/internal/game/combat"
)

const uniqueViolation = "23505"

// DB is the part of *pgxpool.Pool the repository uses
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresConfig contains configuration for the Postgres combat repository
type PostgresConfig struct {
	DB DB
}

// Validate validates the PostgresConfig
func (cfg *PostgresConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

type postgresRepository struct {
	db DB
}

// NewPostgres creates a Postgres-backed combat archive
func NewPostgres(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &postgresRepository{db: cfg.DB}, nil
}

const (
	insertCombatSQL = `
INSERT INTO combats (id, character_id, stage, enemy_id, enemy_level, is_win, first_clear,
                     seed, exp_gained, exp_lost, leveled_up, new_level, iterations, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	insertActionSQL = `
INSERT INTO combat_actions (combat_id, seq, attacker, defender, attacker_is_player, damage,
                            attacker_damage, dodged, hp_before, hp_after, shield_before, shield_after)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	combatColumns = `id, character_id, stage, enemy_id, enemy_level, is_win, first_clear,
       seed, exp_gained, exp_lost, leveled_up, new_level, iterations, created_at`

	selectCombatSQL = `SELECT ` + combatColumns + ` FROM combats WHERE id = $1`

	selectActionsSQL = `
SELECT attacker, defender, attacker_is_player, damage, attacker_damage, dodged,
       hp_before, hp_after, shield_before, shield_after
FROM combat_actions WHERE combat_id = $1 ORDER BY seq`

	listCombatsSQL = `SELECT ` + combatColumns + `
FROM combats WHERE character_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`
)

func (r *postgresRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}
	rec := input.Record

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "rollback failed",
				"combat_id", rec.ID,
				"error", err.Error())
		}
	}()

	_, err = tx.Exec(ctx, insertCombatSQL,
		rec.ID, rec.CharacterID, rec.Stage, rec.EnemyID, rec.EnemyLevel, rec.IsWin, rec.FirstClear,
		rec.Seed, rec.ExpGained, rec.ExpLost, rec.LeveledUp, rec.NewLevel, rec.Iterations, rec.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, errors.AlreadyExistsf("combat %s already archived", rec.ID)
		}
		return nil, errors.Wrapf(err, "failed to insert combat")
	}

	if len(rec.Actions) > 0 {
		batch := &pgx.Batch{}
		for i, a := range rec.Actions {
			batch.Queue(insertActionSQL,
				rec.ID, i, a.Attacker, a.Defender, a.AttackerIsPlayer, a.Damage,
				a.AttackerDamage, a.Dodged, a.HPBefore, a.HPAfter, a.ShieldBefore, a.ShieldAfter)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return nil, errors.Wrapf(err, "failed to insert combat actions")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to commit combat")
	}

	slog.DebugContext(ctx, "archived combat",
		"combat_id", rec.ID,
		"character_id", rec.CharacterID,
		"actions", len(rec.Actions))

	return &SaveOutput{Record: rec}, nil
}

func (r *postgresRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("combat ID cannot be empty")
	}

	rec, err := scanRecord(r.db.QueryRow(ctx, selectCombatSQL, input.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NotFoundf("combat %s not found", input.ID).
				WithMeta("combat_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get combat")
	}

	rows, err := r.db.Query(ctx, selectActionsSQL, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query combat actions")
	}
	actions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (combat.Action, error) {
		var a combat.Action
		err := row.Scan(&a.Attacker, &a.Defender, &a.AttackerIsPlayer, &a.Damage,
			&a.AttackerDamage, &a.Dodged, &a.HPBefore, &a.HPAfter, &a.ShieldBefore, &a.ShieldAfter)
		return a, err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan combat actions")
	}
	rec.Actions = actions

	return &GetOutput{Record: rec}, nil
}

func (r *postgresRepository) ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	rows, err := r.db.Query(ctx, listCombatsSQL, input.CharacterID, listLimit(input.Limit))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list combats")
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.CombatRecord, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan combats")
	}

	return &ListByCharacterOutput{Records: records}, nil
}

func scanRecord(row pgx.Row) (*entities.CombatRecord, error) {
	var rec entities.CombatRecord
	err := row.Scan(&rec.ID, &rec.CharacterID, &rec.Stage, &rec.EnemyID, &rec.EnemyLevel, &rec.IsWin,
		&rec.FirstClear, &rec.Seed, &rec.ExpGained, &rec.ExpLost, &rec.LeveledUp, &rec.NewLevel,
		&rec.Iterations, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}
