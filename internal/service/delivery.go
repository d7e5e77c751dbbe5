//go:generate mockgen -source=delivery.go -destination=../mocks/delivery.go -package=mocks .

package service

import (
	"context"
	"errors"

	"mr-notifier/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationStore interface {
	// Сохранить конверт до любой попытки отправки
	Enqueue(ctx context.Context, n *models.Notification) error

	// Загрузить недоставленные конверты (старые первыми)
	ListUndelivered(ctx context.Context, limit int) ([]*models.Notification, error)

	// Пометить конверт доставленным (однократно)
	MarkDelivered(ctx context.Context, id uuid.UUID) (bool, error)
}

type Sender interface {
	// Отправить сообщение в чат
	Send(ctx context.Context, chatID int64, text string) error
}

type AvailabilityResolver interface {
	// Пересчитать доступность получателя по тегам конверта
	ResolveByTags(ctx context.Context, telegramUsername, gitlabUsername string) (*models.Recipient, error)
}

// Delivery is the durable outbound queue. Every notification is persisted
// before any network attempt; failed or deferred envelopes are retried by
// the periodic sweep, giving at-least-once delivery.
type Delivery struct {
	store     NotificationStore
	sender    Sender
	directory AvailabilityResolver

	log *zap.Logger
}

func NewDelivery(store NotificationStore, sender Sender, directory AvailabilityResolver, log *zap.Logger) *Delivery {
	return &Delivery{
		store:     store,
		sender:    sender,
		directory: directory,
		log:       log,
	}
}

// Notify persists one envelope and attempts immediate delivery when the
// recipient is currently within their availability window. A failed send is
// logged and left for the sweep; a failed enqueue is a hard error.
func (d *Delivery) Notify(ctx context.Context, rcpt *models.Recipient, text string) error {
	n := &models.Notification{
		ChatID:           rcpt.ChatID,
		Text:             text,
		TelegramUsername: rcpt.TelegramUsername,
		GitlabUsername:   rcpt.GitlabUsername,
	}

	if err := d.store.Enqueue(ctx, n); err != nil {
		d.log.Error("failed to enqueue notification",
			zap.Error(err),
			zap.Int64("chat_id", rcpt.ChatID),
		)
		return err
	}

	if !rcpt.WithinHours {
		d.log.Info("recipient outside working hours, deferred",
			zap.String("notification_id", n.ID.String()),
			zap.String("gitlab_username", rcpt.GitlabUsername),
		)
		return nil
	}

	d.attempt(ctx, n)
	return nil
}

// NotifyAll fans a message out to every recipient independently: one
// recipient's enqueue or send failure never blocks the others. Enqueue
// failures are aggregated and returned since those envelopes were lost.
func (d *Delivery) NotifyAll(ctx context.Context, rcpts []*models.Recipient, text string) error {
	var errs []error
	for _, rcpt := range rcpts {
		if err := d.Notify(ctx, rcpt, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Sweep retries undelivered envelopes oldest-first, re-resolving each
// recipient's availability by identity tags. Unavailable or failing
// envelopes stay untouched for the next cycle.
func (d *Delivery) Sweep(ctx context.Context, limit int) error {
	queued, err := d.store.ListUndelivered(ctx, limit)
	if err != nil {
		return err
	}
	if len(queued) == 0 {
		return nil
	}

	delivered := 0
	for _, n := range queued {
		rcpt, err := d.directory.ResolveByTags(ctx, n.TelegramUsername, n.GitlabUsername)
		if err != nil && !errors.Is(err, ErrNoRecipient) {
			d.log.Warn("failed to re-resolve recipient",
				zap.Error(err),
				zap.String("notification_id", n.ID.String()),
			)
			continue
		}
		// Envelopes whose tags no longer resolve keep their stored
		// address; availability gating only applies when resolution
		// succeeds.
		if rcpt != nil && !rcpt.WithinHours {
			continue
		}

		if d.attempt(ctx, n) {
			delivered++
		}
	}

	d.log.Info("notification sweep finished",
		zap.Int("loaded", len(queued)),
		zap.Int("delivered", delivered),
	)

	return nil
}

// attempt sends and, on success, claims the envelope. The conditional
// claim keeps an already-delivered envelope from being re-sent by later
// sweeps even when two sweeps raced on the same batch.
func (d *Delivery) attempt(ctx context.Context, n *models.Notification) bool {
	if err := d.sender.Send(ctx, n.ChatID, n.Text); err != nil {
		d.log.Warn("failed to send notification, will retry on sweep",
			zap.Error(err),
			zap.String("notification_id", n.ID.String()),
			zap.Int64("chat_id", n.ChatID),
		)
		return false
	}

	claimed, err := d.store.MarkDelivered(ctx, n.ID)
	if err != nil {
		d.log.Error("failed to mark notification delivered",
			zap.Error(err),
			zap.String("notification_id", n.ID.String()),
		)
		return false
	}
	if !claimed {
		d.log.Info("notification already delivered elsewhere",
			zap.String("notification_id", n.ID.String()),
		)
		return false
	}

	return true
}
