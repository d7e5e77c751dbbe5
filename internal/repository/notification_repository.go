package repository

import (
	"context"
	"time"

	"mr-notifier/internal/models"
	"mr-notifier/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewNotificationRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *NotificationRepository {
	return &NotificationRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

// Enqueue persists an undelivered envelope. This always happens before any
// network attempt so a crash between persistence and send is retried.
func (r *NotificationRepository) Enqueue(ctx context.Context, n *models.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	query := r.psql.Insert("notifications").
		Columns("id", "chat_id", "text", "telegram_username", "gitlab_username", "created_at").
		Values(n.ID, n.ChatID, n.Text, n.TelegramUsername, n.GitlabUsername, n.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)

	err = r.retrier.Do(ctx, func() error {
		_, retryErr := conn.Exec(ctx, sql, args...)
		return retryErr
	})

	return wrapDBError(err)
}

// ListUndelivered loads the oldest not-yet-delivered envelopes.
func (r *NotificationRepository) ListUndelivered(ctx context.Context, limit int) ([]*models.Notification, error) {
	query := r.psql.Select("id", "chat_id", "text", "telegram_username", "gitlab_username", "created_at", "delivered_at").
		From("notifications").
		Where("delivered_at IS NULL").
		OrderBy("created_at ASC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	items := make([]*models.Notification, 0)

	err = r.retrier.Do(ctx, func() error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			n := &models.Notification{}
			if err := rows.Scan(
				&n.ID, &n.ChatID, &n.Text,
				&n.TelegramUsername, &n.GitlabUsername,
				&n.CreatedAt, &n.DeliveredAt,
			); err != nil {
				return err
			}
			items = append(items, n)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return items, nil
}

// MarkDelivered claims the envelope. Only one caller observes true; an
// envelope is never re-sent after a successful claim and delivered_at is
// never cleared.
func (r *NotificationRepository) MarkDelivered(ctx context.Context, id uuid.UUID) (bool, error) {
	query := r.psql.Update("notifications").
		Set("delivered_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where("delivered_at IS NULL")

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	claimed := false

	err = r.retrier.Do(ctx, func() error {
		tag, retryErr := conn.Exec(ctx, sql, args...)
		if retryErr != nil {
			return retryErr
		}
		claimed = tag.RowsAffected() > 0
		return nil
	})

	return claimed, wrapDBError(err)
}
