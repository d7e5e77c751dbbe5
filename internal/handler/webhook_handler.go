//go:generate mockgen -source=webhook_handler.go -destination=../mocks/webhook_handler.go -package=mocks .

package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"mr-notifier/internal/event"
	"mr-notifier/internal/telegram"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const gitlabTokenHeader = "X-Gitlab-Token"

// dispatchTimeout bounds the detached processing of one webhook event.
const dispatchTimeout = 30 * time.Second

type EventSink interface {
	Reconcile(ctx context.Context, ev event.Event) error
}

type CommandHandler interface {
	HandleCommand(ctx context.Context, username string, telegramUserID, chatID int64, text string) (string, error)
}

type Replier interface {
	Send(ctx context.Context, chatID int64, text string) error
}

type WebhookHandler struct {
	dispatcher EventSink
	bot        CommandHandler
	replier    Replier

	gitlabToken string

	log *zap.Logger
}

func NewWebhookHandler(dispatcher EventSink, bot CommandHandler, replier Replier, gitlabToken string, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		dispatcher:  dispatcher,
		bot:         bot,
		replier:     replier,
		gitlabToken: gitlabToken,
		log:         log,
	}
}

func (h *WebhookHandler) Register(e *echo.Echo) {
	e.POST("/gitlab/webhook", h.GitlabWebhook)
	e.POST("/telegram/webhook", h.TelegramWebhook)
}

// GitlabWebhook accepts one source-control event. The response never waits
// for notification delivery: the event is parsed, handed to a detached
// reconcile task and acknowledged immediately.
func (h *WebhookHandler) GitlabWebhook(c echo.Context) error {
	if h.gitlabToken != "" && c.Request().Header.Get(gitlabTokenHeader) != h.gitlabToken {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"status":  "error",
			"message": "invalid token",
		})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "error"})
	}

	ev, err := event.Parse(body)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrUnknownKind):
			h.log.Info("ignoring unsupported webhook event", zap.Error(err))
		default:
			h.log.Warn("dropping malformed webhook event", zap.Error(err))
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}

	h.log.Info("webhook event accepted", zap.String("kind", string(ev.Kind())))

	go h.reconcile(ev)

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *WebhookHandler) reconcile(ev event.Event) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("panic while processing event", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	if err := h.dispatcher.Reconcile(ctx, ev); err != nil {
		h.log.Error("failed to process event",
			zap.Error(err),
			zap.String("kind", string(ev.Kind())),
		)
	}
}

// TelegramWebhook serves the bot command surface.
func (h *WebhookHandler) TelegramWebhook(c echo.Context) error {
	upd := &telegram.Update{}
	if err := c.Bind(upd); err != nil {
		return c.JSON(http.StatusBadRequest, "bad request")
	}

	msg := upd.Message
	if msg == nil || msg.From == nil || msg.Text == "" {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}

	reply, err := h.bot.HandleCommand(
		c.Request().Context(),
		msg.From.Username,
		msg.From.ID,
		msg.Chat.ID,
		msg.Text,
	)
	if err != nil {
		h.log.Error("failed to handle command", zap.Error(err))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}

	if reply != "" {
		if err := h.replier.Send(c.Request().Context(), msg.Chat.ID, reply); err != nil {
			h.log.Warn("failed to send reply", zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
