package repository

import (
	"context"

	"mr-notifier/internal/models"
	"mr-notifier/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewUserRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *UserRepository {
	return &UserRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

var userColumns = []string{
	"gitlab_username", "telegram_username", "telegram_user_id", "chat_id",
	"name", "is_allowed", "is_active", "is_lead",
	"work_start", "work_end", "work_timezone", "ignore_work_hours",
}

// Only allowed users are visible through lookups; everyone else is treated
// as unknown.

func (r *UserRepository) GetByGitlabUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, sq.And{
		sq.Expr("lower(gitlab_username) = lower(?)", username),
		sq.Eq{"is_allowed": true},
	})
}

func (r *UserRepository) GetByTelegramUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, sq.And{
		sq.Expr("lower(telegram_username) = lower(?)", username),
		sq.Eq{"is_allowed": true},
	})
}

func (r *UserRepository) GetByTelegramUserID(ctx context.Context, telegramUserID int64) (*models.User, error) {
	return r.getBy(ctx, sq.Eq{"telegram_user_id": telegramUserID, "is_allowed": true})
}

func (r *UserRepository) getBy(ctx context.Context, where sq.Sqlizer) (*models.User, error) {
	query := r.psql.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	u := &models.User{}
	var workStart, workEnd, workTimezone *string

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(
			&u.GitlabUsername, &u.TelegramUsername, &u.TelegramUserID, &u.ChatID,
			&u.Name, &u.IsAllowed, &u.IsActive, &u.IsLead,
			&workStart, &workEnd, &workTimezone, &u.IgnoreWorkHours,
		)
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	u.WorkHours = workHours(workStart, workEnd, workTimezone)

	return u, nil
}

func (r *UserRepository) ListLeads(ctx context.Context) ([]*models.User, error) {
	return r.listBy(ctx, sq.Eq{"is_lead": true, "is_allowed": true})
}

// ListActiveReviewers returns the eligible rotation source: allowed,
// active, not a lead.
func (r *UserRepository) ListActiveReviewers(ctx context.Context) ([]string, error) {
	users, err := r.listBy(ctx, sq.Eq{
		"is_allowed": true,
		"is_active":  true,
		"is_lead":    false,
	})
	if err != nil {
		return nil, err
	}

	reviewers := make([]string, 0, len(users))
	for _, u := range users {
		if u.GitlabUsername != "" {
			reviewers = append(reviewers, u.GitlabUsername)
		}
	}

	return reviewers, nil
}

func (r *UserRepository) listBy(ctx context.Context, where sq.Sqlizer) ([]*models.User, error) {
	query := r.psql.Select(userColumns...).
		From("users").
		Where(where).
		OrderBy("gitlab_username")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	users := make([]*models.User, 0)

	err = r.retrier.Do(ctx, func() error {
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			u := &models.User{}
			var workStart, workEnd, workTimezone *string
			if err := rows.Scan(
				&u.GitlabUsername, &u.TelegramUsername, &u.TelegramUserID, &u.ChatID,
				&u.Name, &u.IsAllowed, &u.IsActive, &u.IsLead,
				&workStart, &workEnd, &workTimezone, &u.IgnoreWorkHours,
			); err != nil {
				return err
			}
			u.WorkHours = workHours(workStart, workEnd, workTimezone)
			users = append(users, u)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return users, nil
}

// UpsertProfile refreshes the display name captured from webhook actors.
// Unknown (not allowed) identities are ignored.
func (r *UserRepository) UpsertProfile(ctx context.Context, gitlabUsername, name string) error {
	if gitlabUsername == "" || name == "" {
		return nil
	}

	query := r.psql.Update("users").
		Set("name", name).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Expr("lower(gitlab_username) = lower(?)", gitlabUsername),
			sq.Eq{"is_allowed": true},
		})

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

// PersistChatID stores the delivery address captured from a /start command.
func (r *UserRepository) PersistChatID(ctx context.Context, telegramUsername string, telegramUserID, chatID int64) error {
	if telegramUsername == "" {
		return nil
	}

	query := r.psql.Update("users").
		Set("telegram_user_id", telegramUserID).
		Set("chat_id", chatID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Expr("lower(telegram_username) = lower(?)", telegramUsername),
			sq.Eq{"is_allowed": true},
		})

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

func workHours(start, end, timezone *string) *models.WorkHours {
	if start == nil || end == nil {
		return nil
	}

	wh := &models.WorkHours{Start: *start, End: *end}
	if timezone != nil {
		wh.Timezone = *timezone
	}

	return wh
}
