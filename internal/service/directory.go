//go:generate mockgen -source=directory.go -destination=../mocks/directory.go -package=mocks .

package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"mr-notifier/internal/config"
	"mr-notifier/internal/message"
	"mr-notifier/internal/models"
	"mr-notifier/internal/repository"

	"go.uber.org/zap"
)

type UserStore interface {
	// Найти пользователя по GitLab-логину (без учёта регистра)
	GetByGitlabUsername(ctx context.Context, username string) (*models.User, error)

	// Найти пользователя по Telegram-логину (без учёта регистра)
	GetByTelegramUsername(ctx context.Context, username string) (*models.User, error)

	// Получить всех лидов
	ListLeads(ctx context.Context) ([]*models.User, error)

	// Обновить отображаемое имя пользователя
	UpsertProfile(ctx context.Context, gitlabUsername, name string) error
}

// Directory resolves stable identities to delivery addresses and computes
// availability at the instant of the call.
type Directory struct {
	users    UserStore
	defaults config.WorkHours

	// now is swapped in tests.
	now func() time.Time

	log *zap.Logger
}

func NewDirectory(users UserStore, defaults config.WorkHours, log *zap.Logger) *Directory {
	return &Directory{
		users:    users,
		defaults: defaults,
		now:      time.Now,
		log:      log,
	}
}

// Resolve maps a GitLab identity to a recipient. ErrNoRecipient covers both
// unknown identities and known users without a captured chat id.
func (d *Directory) Resolve(ctx context.Context, gitlabUsername string) (*models.Recipient, error) {
	if gitlabUsername == "" {
		return nil, ErrNoRecipient
	}

	u, err := d.users.GetByGitlabUsername(ctx, gitlabUsername)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoRecipient
		}
		return nil, err
	}

	return d.recipient(u)
}

// ResolveByTags re-resolves an envelope's recipient from its identity tags.
// The telegram tag wins; the gitlab tag is the fallback.
func (d *Directory) ResolveByTags(ctx context.Context, telegramUsername, gitlabUsername string) (*models.Recipient, error) {
	if telegramUsername != "" {
		u, err := d.users.GetByTelegramUsername(ctx, telegramUsername)
		if err == nil {
			return d.recipient(u)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	return d.Resolve(ctx, gitlabUsername)
}

// Leads returns every resolvable lead; leads without a chat id are skipped
// with a log.
func (d *Directory) Leads(ctx context.Context) ([]*models.Recipient, error) {
	users, err := d.users.ListLeads(ctx)
	if err != nil {
		return nil, err
	}

	recipients := make([]*models.Recipient, 0, len(users))
	for _, u := range users {
		r, err := d.recipient(u)
		if err != nil {
			d.log.Warn("lead has no delivery address",
				zap.String("gitlab_username", u.GitlabUsername),
			)
			continue
		}
		recipients = append(recipients, r)
	}

	return recipients, nil
}

// Label renders a person reference for message bodies, falling back to the
// given name when the identity is unknown.
func (d *Directory) Label(ctx context.Context, gitlabUsername, fallbackName string) string {
	if gitlabUsername == "" {
		return message.UserLabel(fallbackName, "")
	}

	u, err := d.users.GetByGitlabUsername(ctx, gitlabUsername)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			d.log.Warn("failed to resolve user label",
				zap.Error(err),
				zap.String("gitlab_username", gitlabUsername),
			)
		}
		name := fallbackName
		if name == "" {
			name = gitlabUsername
		}
		return message.UserLabel(name, "")
	}

	name := u.Name
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		name = gitlabUsername
	}

	return message.UserLabel(name, u.TelegramUsername)
}

func (d *Directory) UpsertProfile(ctx context.Context, gitlabUsername, name string) error {
	return d.users.UpsertProfile(ctx, gitlabUsername, name)
}

func (d *Directory) recipient(u *models.User) (*models.Recipient, error) {
	if u == nil || u.ChatID == nil {
		return nil, ErrNoRecipient
	}

	return &models.Recipient{
		ChatID:           *u.ChatID,
		TelegramUsername: u.TelegramUsername,
		GitlabUsername:   u.GitlabUsername,
		Name:             u.Name,
		WithinHours:      d.withinHours(u, d.now()),
	}, nil
}

// withinHours applies the availability policy: inactive users are never
// available, opted-out users always are, everyone else gets their window
// (or the configured default) checked in its timezone. A window whose start
// equals its end means always available; start after end wraps midnight.
func (d *Directory) withinHours(u *models.User, now time.Time) bool {
	if !u.IsActive {
		return false
	}
	if u.IgnoreWorkHours {
		return true
	}

	wh := u.WorkHours
	if wh == nil {
		wh = &models.WorkHours{
			Start:    d.defaults.Start,
			End:      d.defaults.End,
			Timezone: d.defaults.Timezone,
		}
	}

	tz := wh.Timezone
	if tz == "" {
		tz = d.defaults.Timezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		d.log.Warn("unknown timezone, using UTC",
			zap.String("timezone", tz),
			zap.String("gitlab_username", u.GitlabUsername),
		)
		loc = time.UTC
	}

	start, okStart := parseClock(wh.Start)
	end, okEnd := parseClock(wh.End)
	if !okStart || !okEnd {
		d.log.Warn("invalid work hours, treating user as available",
			zap.String("start", wh.Start),
			zap.String("end", wh.End),
			zap.String("gitlab_username", u.GitlabUsername),
		)
		return true
	}

	local := now.In(loc)
	minute := local.Hour()*60 + local.Minute()

	switch {
	case start == end:
		return true
	case start < end:
		return minute >= start && minute < end
	default:
		return minute >= start || minute < end
	}
}

// parseClock turns "HH:MM" into minutes since midnight.
func parseClock(value string) (int, bool) {
	h, m, ok := strings.Cut(value, ":")
	if !ok {
		return 0, false
	}

	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}
