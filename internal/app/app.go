package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mr-notifier/internal/config"
	"mr-notifier/internal/database"
	"mr-notifier/internal/handler"
	"mr-notifier/internal/repository"
	"mr-notifier/internal/service"
	"mr-notifier/internal/telegram"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NotifierApp represents the application with its dependencies.
type NotifierApp struct {
	cfg *config.Config

	db *pgxpool.Pool
	r  *echo.Echo

	delivery *service.Delivery

	log *zap.Logger
}

// NewNotifierApp initializes the database, services, handlers and routes.
func NewNotifierApp(cfg *config.Config, log *zap.Logger) *NotifierApp {
	db, err := database.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	r := echo.New()

	retrier := newRepoRetrier(cfg.Retry, isRetryableFunc)

	userRepo := repository.NewUserRepository(db, trmpgx.DefaultCtxGetter, retrier)
	mrRepo := repository.NewMRRepository(db, trmpgx.DefaultCtxGetter, retrier)
	queueRepo := repository.NewQueueRepository(db, trmpgx.DefaultCtxGetter, retrier)
	notificationRepo := repository.NewNotificationRepository(db, trmpgx.DefaultCtxGetter, retrier)

	sender := telegram.NewClient(cfg.Telegram.BaseURL, cfg.Telegram.Token, log)

	directory := service.NewDirectory(userRepo, cfg.WorkHours, log)
	rotation := service.NewRotation(queueRepo, userRepo, log)
	delivery := service.NewDelivery(notificationRepo, sender, directory, log)

	dispatcher := service.NewDispatcher(
		mrRepo,
		rotation,
		directory,
		delivery,
		manager.Must(trmpgx.NewDefaultFactory(db)),
		service.DispatcherConfig{
			DefaultRequiredApprovals: cfg.Approvals.DefaultRequired,
			ReviewersPerMR:           2,
			JiraBaseURL:              cfg.Jira.BaseURL,
		},
		log,
	)

	bot := service.NewBot(userRepo, log)

	webhookHandler := handler.NewWebhookHandler(dispatcher, bot, sender, cfg.Gitlab.WebhookToken, log)
	webhookHandler.Register(r)

	r.Use(middleware.Recover())

	return &NotifierApp{
		cfg:      cfg,
		db:       db,
		r:        r,
		delivery: delivery,
		log:      log,
	}
}

// Run starts the HTTP server and the notification sweep, then waits for
// context cancellation.
func (a *NotifierApp) Run(ctx context.Context) error {
	go func() {
		if err := a.r.Start(":" + a.cfg.App.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	go a.runSweep(ctx)

	<-ctx.Done()
	return a.Shutdown()
}

// runSweep retries deferred notifications on a fixed interval, independent
// of event arrival.
func (a *NotifierApp) runSweep(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.Sweep.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.delivery.Sweep(ctx, a.cfg.Sweep.Limit); err != nil {
				a.log.Error("notification sweep failed", zap.Error(err))
			}
		case <-ctx.Done():
			a.log.Info("stopping notification sweep")
			return
		}
	}
}

// Shutdown closes the HTTP server and database connections.
func (a *NotifierApp) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.App.ShutdownTimeout)
	defer cancel()

	if err := a.r.Shutdown(ctx); err != nil {
		a.log.Error("failed to shutdown server", zap.Error(err))
		return err
	}

	a.db.Close()

	return nil
}
