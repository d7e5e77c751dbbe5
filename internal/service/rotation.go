//go:generate mockgen -source=rotation.go -destination=../mocks/rotation.go -package=mocks .

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"mr-notifier/internal/models"
	"mr-notifier/internal/repository"

	"go.uber.org/zap"
)

type QueueStore interface {
	// Загрузить текущую очередь ротации
	Fetch(ctx context.Context) (*models.ReviewerQueue, error)

	// Сохранить остаток очереди (compare-and-set по версии)
	Save(ctx context.Context, queue []string, expectedVersion int64) error

	// Перезаписать очередь свежим списком
	Replace(ctx context.Context, queue []string) (*models.ReviewerQueue, error)
}

type ReviewerSource interface {
	// Список логинов, участвующих в ротации
	ListActiveReviewers(ctx context.Context) ([]string, error)
}

// Rotation maintains the fair-ish round-robin reviewer order. Selections
// pop from the head; skipped entries are not re-queued in the same pass, so
// fairness holds in expectation across many calls, not per call.
type Rotation struct {
	queue QueueStore
	users ReviewerSource

	log *zap.Logger
}

const pullAttempts = 5

func NewRotation(queue QueueStore, users ReviewerSource, log *zap.Logger) *Rotation {
	return &Rotation{
		queue: queue,
		users: users,
		log:   log,
	}
}

// PullReviewers selects up to n reviewers, skipping excluded identities
// (case-insensitively) and duplicates within the call. The queue is
// refilled from the eligible set at most once per attempt when exhausted;
// the remainder is persisted before returning. A concurrent writer triggers
// a fresh attempt.
func (r *Rotation) PullReviewers(ctx context.Context, exclude []string, n int) ([]string, error) {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		if name != "" {
			excluded[strings.ToLower(name)] = struct{}{}
		}
	}

	var lastErr error
	for attempt := 0; attempt < pullAttempts; attempt++ {
		selected, err := r.pullOnce(ctx, excluded, n)
		if err == nil {
			return selected, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
		r.log.Info("rotation queue conflict, retrying",
			zap.Int("attempt", attempt+1),
		)
	}

	return nil, fmt.Errorf("pull reviewers: %w", lastErr)
}

func (r *Rotation) pullOnce(ctx context.Context, excluded map[string]struct{}, n int) ([]string, error) {
	rec, err := r.queue.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		rec, err = r.refill(ctx)
		if err != nil {
			return nil, err
		}
	}

	queue := slices.Clone(rec.Queue)
	version := rec.Version
	selected := make([]string, 0, n)
	refilled := false

	for len(selected) < n {
		if len(queue) == 0 {
			if refilled {
				break
			}
			refilled = true

			// Refill excludes nothing: exclusions apply at selection
			// time only. A just-refilled queue is consumed in order.
			rec, err = r.refill(ctx)
			if err != nil {
				return nil, err
			}
			queue = slices.Clone(rec.Queue)
			version = rec.Version
			if len(queue) == 0 {
				break
			}
		}

		next := queue[0]
		queue = queue[1:]

		lower := strings.ToLower(next)
		if _, skip := excluded[lower]; skip {
			continue
		}
		if slices.ContainsFunc(selected, func(s string) bool {
			return strings.EqualFold(s, next)
		}) {
			continue
		}

		selected = append(selected, next)
	}

	if err := r.queue.Save(ctx, queue, version); err != nil {
		return nil, err
	}

	return selected, nil
}

// Refresh reloads the rotation from the eligible reviewer source and
// returns the new order.
func (r *Rotation) Refresh(ctx context.Context) ([]string, error) {
	rec, err := r.refill(ctx)
	if err != nil {
		return nil, err
	}
	return rec.Queue, nil
}

func (r *Rotation) refill(ctx context.Context) (*models.ReviewerQueue, error) {
	reviewers, err := r.users.ListActiveReviewers(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := r.queue.Replace(ctx, reviewers)
	if err != nil {
		return nil, err
	}

	r.log.Info("reviewer rotation refilled",
		zap.Int("size", len(rec.Queue)),
	)

	return rec, nil
}
