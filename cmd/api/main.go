package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"petplus/internal/adapters/storage/bolt"
	"petplus/internal/adapters/storage/memory"
	"petplus/internal/adapters/storage/postgres"
	"petplus/internal/adapters/storage/redis"
	"petplus/internal/config"
	"petplus/internal/domain/pets"
	"petplus/internal/platform/lifecycle"
	"petplus/internal/platform/logger"
	"petplus/internal/ports/kvstore"
	"petplus/internal/router"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.NewFromEnv()
		boot.Error("invalid configuration", zap.Error(err))
		_ = boot.Sync()
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lc := lifecycle.New(cfg.ShutdownTimeout, log.Named("lifecycle"))
	lc.Listen(cancel)

	store, err := openStore(ctx, cfg.Storage, lc, log)
	if err != nil {
		_ = lc.Shutdown(context.Background())
		return err
	}
	log.Info("storage ready", zap.String("driver", cfg.Storage.Driver))

	policy := pets.KeepTasks
	if cfg.Pets.CascadeDelete {
		policy = pets.CascadeTasks
	}

	r := router.NewRouter(router.Options{
		Store:        store,
		Logger:       log,
		DeletePolicy: policy,
	})

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
	lc.Register("http", srv.Shutdown)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	return errors.Join(serveErr, lc.Shutdown(context.Background()))
}

// openStore abre el backend elegido y registra su cierre.
func openStore(ctx context.Context, cfg config.StorageConfig, lc *lifecycle.Manager, log *zap.Logger) (kvstore.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewStore(), nil

	case config.DriverBolt:
		s, err := bolt.Open(cfg.BoltPath, "")
		if err != nil {
			return nil, fmt.Errorf("open bolt %q: %w", cfg.BoltPath, err)
		}
		lc.Register("bolt", func(context.Context) error {
			st := s.Stats()
			log.Debug("bolt stats",
				zap.Int("tx", st.TxN),
				zap.Int("open_tx", st.OpenTxN),
				zap.Int("free_pages", st.FreePageN),
			)
			return s.Close()
		})
		return s, nil

	case config.DriverRedis:
		client, err := redis.NewClient(redis.Config{
			URL:      cfg.RedisURL,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		s := redis.NewStore(client, cfg.RedisPrefix)
		lc.Register("redis", func(context.Context) error { return s.Close() })
		return s, nil

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		s := postgres.NewKVStore(db)
		lc.Register("postgres", func(context.Context) error { return s.Close() })

		schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := postgres.EnsureSchema(schemaCtx, db); err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return s, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
