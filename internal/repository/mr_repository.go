package repository

import (
	"context"

	"mr-notifier/internal/models"
	"mr-notifier/internal/retry"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MRRepository struct {
	db      *pgxpool.Pool
	getter  *trmpgx.CtxGetter
	psql    sq.StatementBuilderType
	retrier retry.Retrier
}

func NewMRRepository(db *pgxpool.Pool, c *trmpgx.CtxGetter, r retry.Retrier) *MRRepository {
	return &MRRepository{
		db:      db,
		getter:  c,
		psql:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		retrier: r,
	}
}

var mrColumns = []string{
	"project_id", "iid", "mr_id", "project_path", "title", "description",
	"source_branch", "target_branch", "url", "task_key", "task_url",
	"author_username", "author_name", "state", "merge_status",
	"detailed_merge_status", "approvals_required", "approvals_left",
	"approved_by", "reviewers", "last_lint_status", "final_review_notified",
	"created_at", "updated_at",
}

// Upsert creates the record or refreshes its mutable fields. Reviewers,
// approvers, the lint status, the final-review latch and the author are
// insert-only here: retried or later events never overwrite them.
func (r *MRRepository) Upsert(ctx context.Context, mr *models.MergeRequest) error {
	query := r.psql.Insert("merge_requests").
		Columns(mrColumns...).
		Values(
			mr.ProjectID, mr.IID, mr.MRID, mr.ProjectPath, mr.Title, mr.Description,
			mr.SourceBranch, mr.TargetBranch, mr.URL, mr.TaskKey, mr.TaskURL,
			mr.AuthorUsername, mr.AuthorName, mr.State, mr.MergeStatus,
			mr.DetailedMergeStatus, mr.ApprovalsRequired, mr.ApprovalsLeft,
			mr.ApprovedBy, mr.Reviewers, mr.LastLintStatus, mr.FinalReviewNotified,
			mr.CreatedAt, mr.UpdatedAt,
		).
		Suffix(`ON CONFLICT (project_id, iid) DO UPDATE SET
			mr_id = EXCLUDED.mr_id,
			project_path = EXCLUDED.project_path,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			source_branch = EXCLUDED.source_branch,
			target_branch = EXCLUDED.target_branch,
			url = EXCLUDED.url,
			task_key = EXCLUDED.task_key,
			task_url = EXCLUDED.task_url,
			state = EXCLUDED.state,
			merge_status = EXCLUDED.merge_status,
			detailed_merge_status = EXCLUDED.detailed_merge_status,
			approvals_required = COALESCE(EXCLUDED.approvals_required, merge_requests.approvals_required),
			approvals_left = COALESCE(EXCLUDED.approvals_left, merge_requests.approvals_left),
			created_at = COALESCE(EXCLUDED.created_at, merge_requests.created_at),
			updated_at = COALESCE(EXCLUDED.updated_at, merge_requests.updated_at)`)

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

func (r *MRRepository) Find(ctx context.Context, projectID, iid int64) (*models.MergeRequest, error) {
	return r.findBy(ctx, sq.Eq{"project_id": projectID, "iid": iid})
}

// FindByBranch resolves the record a push event references. The branch is
// matched against the source branch of the stored record.
func (r *MRRepository) FindByBranch(ctx context.Context, projectPath, sourceBranch string) (*models.MergeRequest, error) {
	return r.findBy(ctx, sq.Eq{"project_path": projectPath, "source_branch": sourceBranch})
}

func (r *MRRepository) findBy(ctx context.Context, where sq.Eq) (*models.MergeRequest, error) {
	query := r.psql.Select(mrColumns...).
		From("merge_requests").
		Where(where).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.db)
	mr := &models.MergeRequest{}

	err = r.retrier.Do(ctx, func() error {
		return conn.QueryRow(ctx, sql, args...).Scan(
			&mr.ProjectID, &mr.IID, &mr.MRID, &mr.ProjectPath, &mr.Title, &mr.Description,
			&mr.SourceBranch, &mr.TargetBranch, &mr.URL, &mr.TaskKey, &mr.TaskURL,
			&mr.AuthorUsername, &mr.AuthorName, &mr.State, &mr.MergeStatus,
			&mr.DetailedMergeStatus, &mr.ApprovalsRequired, &mr.ApprovalsLeft,
			&mr.ApprovedBy, &mr.Reviewers, &mr.LastLintStatus, &mr.FinalReviewNotified,
			&mr.CreatedAt, &mr.UpdatedAt,
		)
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return mr, nil
}

// SetReviewers assigns the reviewer set exactly once. The guard on an empty
// stored set makes a racing duplicate open event lose silently.
func (r *MRRepository) SetReviewers(ctx context.Context, projectID, iid int64, reviewers []string) (bool, error) {
	query := r.psql.Update("merge_requests").
		Set("reviewers", reviewers).
		Where(sq.Eq{"project_id": projectID, "iid": iid}).
		Where("reviewers = '{}'")

	return r.execClaim(ctx, query)
}

// AddApprover records an explicit approval. Re-adding a present actor is a
// no-op, which keeps the operation idempotent per actor.
func (r *MRRepository) AddApprover(ctx context.Context, projectID, iid int64, username string) error {
	query := r.psql.Update("merge_requests").
		Set("approved_by", sq.Expr(
			"CASE WHEN ? = ANY(approved_by) THEN approved_by ELSE array_append(approved_by, ?) END",
			username, username,
		)).
		Where(sq.Eq{"project_id": projectID, "iid": iid})

	return r.exec(ctx, query)
}

// RemoveApprover drops an explicit approval; removing an absent actor is a
// no-op.
func (r *MRRepository) RemoveApprover(ctx context.Context, projectID, iid int64, username string) error {
	query := r.psql.Update("merge_requests").
		Set("approved_by", sq.Expr("array_remove(approved_by, ?)", username)).
		Where(sq.Eq{"project_id": projectID, "iid": iid})

	return r.exec(ctx, query)
}

func (r *MRRepository) SetLintStatus(ctx context.Context, projectID, iid int64, status string) error {
	query := r.psql.Update("merge_requests").
		Set("last_lint_status", status).
		Where(sq.Eq{"project_id": projectID, "iid": iid})

	claimed, err := r.execClaim(ctx, query)
	if err != nil {
		return err
	}
	if !claimed {
		return ErrNotFound
	}
	return nil
}

// ClaimFinalReview flips the final-review latch. Exactly one caller observes
// true for a given key; concurrent duplicates lose the conditional update.
func (r *MRRepository) ClaimFinalReview(ctx context.Context, projectID, iid int64) (bool, error) {
	query := r.psql.Update("merge_requests").
		Set("final_review_notified", true).
		Where(sq.Eq{"project_id": projectID, "iid": iid}).
		Where("NOT final_review_notified")

	return r.execClaim(ctx, query)
}

func (r *MRRepository) exec(ctx context.Context, query sq.UpdateBuilder) error {
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

func (r *MRRepository) execClaim(ctx context.Context, query sq.UpdateBuilder) (bool, error) {
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
