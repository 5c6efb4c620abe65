package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/BookingWebhook/internal/config"
	"github.com/stpnv0/BookingWebhook/internal/fragment"
	"github.com/stpnv0/BookingWebhook/internal/handler"
	"github.com/stpnv0/BookingWebhook/internal/idempotency"
	"github.com/stpnv0/BookingWebhook/internal/ledger"
	"github.com/stpnv0/BookingWebhook/internal/middleware"
	"github.com/stpnv0/BookingWebhook/internal/notification"
	"github.com/stpnv0/BookingWebhook/internal/router"
	"github.com/stpnv0/BookingWebhook/internal/service"
	"github.com/stpnv0/BookingWebhook/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	guard      *idempotency.RedisGuard
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BookingWebhook",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

// initRedis is optional: without an address redelivered webhooks are not
// deduplicated.
func (a *App) initRedis() error {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis address is empty, delivery deduplication disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ReadTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// The guard fails open, so an unreachable Redis only loses deduplication.
		a.log.LogAttrs(ctx, logger.WarnLevel, "redis ping failed",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.String("error", err.Error()),
		)
	} else {
		a.log.LogAttrs(ctx, logger.InfoLevel, "redis connected",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.Int("db", a.cfg.Redis.DB),
		)
	}

	a.guard = idempotency.NewRedisGuard(client, a.cfg.Redis.TTL)
	return nil
}

func (a *App) initServices() error {
	ledgerClient, err := ledger.NewClient(ledger.Options{
		BaseURL:          a.cfg.Ledger.BaseURL,
		Token:            a.cfg.Ledger.Token,
		Timeout:          a.cfg.Ledger.Timeout,
		FailureThreshold: a.cfg.Ledger.FailureThreshold,
		OpenTimeout:      a.cfg.Ledger.OpenTimeout,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	tg, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.APIEndpoint,
		a.cfg.Telegram.Timeout,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init telegram notifier: %w", err)
	}
	sl := notification.NewSlackNotifier(a.cfg.Slack.BotToken, a.cfg.Slack.APIURL, a.cfg.Slack.Timeout, a.log)
	n := notification.NewNotifier(sl, tg, a.log)

	composer := fragment.NewComposer(fragment.Options{
		ImageURL:     a.cfg.Branding.ImageURL,
		ViewURL:      a.cfg.Ledger.ViewURL,
		LanguageCode: a.cfg.Branding.LanguageCode,
	})

	// A nil *RedisGuard must not reach the service as a non-nil interface.
	var guard ports.DeliveryGuard
	if a.guard != nil {
		guard = a.guard
	}

	fulfillmentService := service.NewFulfillmentService(ledgerClient, n, guard, composer, a.log)

	h := handler.NewHandler(fulfillmentService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.guard != nil {
		if err := a.guard.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
