package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/garageworks/garage-service/internal/api"
	"github.com/garageworks/garage-service/internal/api/handler"
	"github.com/garageworks/garage-service/internal/core/ports"
	"github.com/garageworks/garage-service/internal/core/service"
	"github.com/garageworks/garage-service/internal/infrastructure/db/memory"
	"github.com/garageworks/garage-service/internal/infrastructure/db/mongo"
	"github.com/garageworks/garage-service/internal/infrastructure/db/redis"
	"github.com/garageworks/garage-service/internal/pkg/config"
	"github.com/garageworks/garage-service/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Connects the configured store, mounts the REST API and the client app, and serves until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

// stores is the persistence wiring chosen by STORE_DRIVER.
type stores struct {
	tasks     ports.TaskRepository
	customers ports.CustomerRepository
	workers   ports.WorkerRepository
	tx        ports.Transactor
	pingers   map[string]handler.Pinger
	closers   []func(context.Context) error
}

func (s *stores) close(ctx context.Context, log zerolog.Logger) {
	for _, c := range s.closers {
		if err := c(ctx); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn().Msg("using in-memory store; data is lost on exit")
		m := memory.NewStore()
		return &stores{
			tasks:     m.Tasks(),
			customers: m.Customers(),
			workers:   m.Workers(),
			tx:        m.Transactor(),
			pingers:   map[string]handler.Pinger{},
		}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.OpTimeout,
	})
	if err != nil {
		return nil, err
	}
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Bool("transactions", cfg.Mongo.Transactions).Msg("connected to mongo")

	return &stores{
		tasks:     mongo.NewTaskRepository(db, cfg.Mongo.OpTimeout),
		customers: mongo.NewCustomerRepository(db, cfg.Mongo.OpTimeout),
		workers:   mongo.NewWorkerRepository(db, cfg.Mongo.OpTimeout),
		tx:        mongo.NewTransactor(client, cfg.Mongo.Transactions),
		pingers:   map[string]handler.Pinger{"mongo": mongo.NewPinger(db)},
		closers:   []func(context.Context) error{client.Disconnect},
	}, nil
}

func serve(ctx context.Context) error {
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	taskOpts := []service.TaskServiceOption{service.WithLinkAttempts(cfg.Intake.LinkAttempts)}
	if cfg.RedisEnabled() {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			st.close(context.Background(), log)
			return fmt.Errorf("open idempotency cache: %w", err)
		}
		st.closers = append(st.closers, func(context.Context) error { return client.Close() })
		st.pingers["redis"] = redis.NewPinger(client)
		taskOpts = append(taskOpts, service.WithIdempotencyStore(redis.NewIdempotencyStore(client, cfg.Redis.IdempotencyTTL)))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	tasks := service.NewTaskService(st.tasks, st.customers, st.workers, st.tx, logger.Component("tasks"), taskOpts...)
	auth := service.NewAuthService(st.customers, st.workers, service.NewBcryptHasher(cfg.Auth.BcryptCost),
		cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger.Component("auth"))
	stats := service.NewStatsService(st.tasks, st.customers, st.workers, logger.Component("stats"))

	e := api.NewRouter(api.Options{
		ClientDir:    cfg.HTTP.ClientDir,
		CORSOrigins:  cfg.HTTP.CORSOrigins,
		ExposeErrors: cfg.HTTP.ExposeErrors,
		EnforceAuth:  cfg.Auth.Enforce,
		JWTSecret:    cfg.Auth.JWTSecret,
	}, api.Handlers{
		Tasks:  handler.NewTaskHandler(tasks),
		Stats:  handler.NewStatsHandler(stats),
		Auth:   handler.NewAuthHandler(auth),
		Health: handler.NewHealthHandler(st.pingers),
	}, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTP.Port).Str("store", cfg.StoreDriver).Msg("HTTP server listening")
		if err := e.Start(":" + cfg.HTTP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			st.close(context.Background(), log)
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	st.close(shutdownCtx, log)

	log.Info().Msg("server shut down gracefully")
	return nil
}
