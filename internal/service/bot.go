//go:generate mockgen -source=bot.go -destination=../mocks/bot.go -package=mocks .

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mr-notifier/internal/models"
	"mr-notifier/internal/repository"

	"go.uber.org/zap"
)

type BotUserStore interface {
	// Найти пользователя по Telegram-логину
	GetByTelegramUsername(ctx context.Context, username string) (*models.User, error)

	// Сохранить chat id пользователя
	PersistChatID(ctx context.Context, telegramUsername string, telegramUserID, chatID int64) error
}

// Bot is the thin command surface: start/whoami/help over a chat message.
// It exists so allowed users can register their delivery address.
type Bot struct {
	users BotUserStore
	log   *zap.Logger
}

func NewBot(users BotUserStore, log *zap.Logger) *Bot {
	return &Bot{users: users, log: log}
}

const helpText = "Commands:\n/start — register this chat for notifications\n/whoami — show your linked accounts\n/help — this message"

// HandleCommand executes one inbound command and returns the reply text.
func (b *Bot) HandleCommand(ctx context.Context, username string, telegramUserID, chatID int64, text string) (string, error) {
	cmd, _, _ := strings.Cut(strings.TrimSpace(text), " ")
	cmd, _, _ = strings.Cut(cmd, "@")

	user, err := b.users.GetByTelegramUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "You are not on the allowed user list.", nil
		}
		return "", err
	}

	switch cmd {
	case "/start":
		if err := b.users.PersistChatID(ctx, username, telegramUserID, chatID); err != nil {
			return "", fmt.Errorf("persist chat id: %w", err)
		}
		b.log.Info("chat registered",
			zap.String("telegram_username", username),
			zap.Int64("chat_id", chatID),
		)
		return "Registered. You will receive merge request notifications here.", nil
	case "/whoami":
		return fmt.Sprintf("Telegram: @%s\nGitLab: %s", user.TelegramUsername, user.GitlabUsername), nil
	case "/help":
		return helpText, nil
	default:
		return helpText, nil
	}
}
