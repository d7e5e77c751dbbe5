package repository

import (
	"context"

	"mr-notifier/internal/models"
	"mr-notifier/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QueueRepository persists the single reviewer rotation record with
// optimistic concurrency: Save is a compare-and-set on the version.
type QueueRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewQueueRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *QueueRepository {
	return &QueueRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

func (r *QueueRepository) Fetch(ctx context.Context) (*models.ReviewerQueue, error) {
	query := r.psql.Select("queue", "version", "updated_at").
		From("reviewer_queue").
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	q := &models.ReviewerQueue{}

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&q.Queue, &q.Version, &q.UpdatedAt)
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return q, nil
}

// Save stores the queue remainder if nobody else has written since
// expectedVersion; otherwise ErrVersionConflict.
func (r *QueueRepository) Save(ctx context.Context, queue []string, expectedVersion int64) error {
	query := r.psql.Update("reviewer_queue").
		Set("queue", queue).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"version": expectedVersion})

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	saved := false

	err = r.retrier.Do(ctx, func() error {
		tag, retryErr := conn.Exec(ctx, sql, args...)
		if retryErr != nil {
			return retryErr
		}
		saved = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return wrapDBError(err)
	}
	if !saved {
		return ErrVersionConflict
	}

	return nil
}

// Replace unconditionally installs a freshly refilled queue and returns the
// stored record with its new version.
func (r *QueueRepository) Replace(ctx context.Context, queue []string) (*models.ReviewerQueue, error) {
	query := r.psql.Insert("reviewer_queue").
		Columns("id", "queue").
		Values(true, queue).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			queue = EXCLUDED.queue,
			version = reviewer_queue.version + 1,
			updated_at = now()
		RETURNING queue, version, updated_at`)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	q := &models.ReviewerQueue{}

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(&q.Queue, &q.Version, &q.UpdatedAt)
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return q, nil
}
