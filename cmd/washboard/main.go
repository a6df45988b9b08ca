package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/washboard/internal/api"
	"github.com/wellywell/washboard/internal/config"
	"github.com/wellywell/washboard/internal/db"
	"github.com/wellywell/washboard/internal/handlers"
	"github.com/wellywell/washboard/internal/router"
	"github.com/wellywell/washboard/internal/session"
	"github.com/wellywell/washboard/internal/storage"
)

const sessionCleanupInterval = 10 * time.Minute

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}
	if err := config.SetupLogger(conf.LogLevel, conf.LogFormat); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, conf)
	if err != nil {
		panic(err)
	}
	defer closeStore()

	client := api.NewClient(conf.BackendURL, conf.RequestTimeout)
	manager := session.NewManager(store, conf.SecretKey(), conf.SessionTTL)
	handlerSet := handlers.NewHandlerSet(client)

	r := router.NewRouter(conf.RunAddress, handlerSet, manager)

	logger.Infof("Serving dashboard on %s, backend %s", conf.RunAddress, conf.BackendURL)
	err = r.Run(ctx)
	if err != nil {
		panic(err)
	}

}

func openStore(ctx context.Context, conf *config.ServerConfig) (session.Store, func(), error) {
	switch conf.Store() {
	case config.RedisStore:
		client := storage.NewRedisClient(storage.RedisConfig{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})
		store, err := storage.NewRedis(ctx, client, conf.SessionTTL)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		logger.Infof("Sessions stored in Redis at %s", conf.RedisAddr)
		return store, func() { store.Close() }, nil

	case config.PostgresStore:
		database, err := db.NewDatabase(conf.DatabaseDSN, conf.SessionTTL)
		if err != nil {
			return nil, nil, err
		}
		database.RunCleanup(ctx, sessionCleanupInterval)
		logger.Info("Sessions stored in Postgres")
		return database, database.Close, nil

	default:
		logger.Warn("No session store configured, keeping sessions in memory")
		return storage.NewMemory(), func() {}, nil
	}
}
