// Package magazinesubscriptions собирает все зависимости приложения и запускает HTTP-сервер.
package magazinesubscriptions

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/cache"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/config"
	jwtlib "github.com/magabrotheeeer/magazine-subscriptions/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/migrations"
	authservice "github.com/magabrotheeeer/magazine-subscriptions/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/magazine-subscriptions/internal/services/catalog"
	subservice "github.com/magabrotheeeer/magazine-subscriptions/internal/services/subscription"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/storage/repository"
)

const notificationExchange = "notifications"

// App хранит собранный HTTP-сервер и ресурсы, которые нужно закрыть при остановке.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *repository.Storage
	rabbitConn *amqp.Connection
}

// New собирает приложение: хранилище, миграции, кэш, брокер, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	rabbitConn, rabbitCh, err := rabbitmq.Connect(cfg.AddressRabbit)
	if err != nil {
		return nil, err
	}
	if err = rabbitmq.SetupQueues(rabbitCh, notificationExchange); err != nil {
		return nil, err
	}
	notifier := rabbitmq.NewNotifier(rabbitCh, notificationExchange)

	jwtMaker := jwtlib.NewJWTMaker(cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authService := authservice.New(db, jwtMaker, notifier, logger)
	catalogService := catalogservice.New(db, cacheRedis, logger)
	subscriptionService := subservice.New(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, catalogService, subscriptionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		db:         db,
		rabbitConn: rabbitConn,
	}, nil
}

// Run запускает сервер и блокируется до отмены контекста или ошибки сервера.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		a.rabbitConn.Close()
		return err
	}
}
