package db_fx

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/config"
	"globetrotter/internal/infra"
	"globetrotter/pkg/logger"
)

var Module = fx.Provide(
	provideDB, provideRedis)

func provideDB(lc fx.Lifecycle, cfg config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}

// provideRedis yields a nil client when REDIS_ADDR is unset.
func provideRedis(lc fx.Lifecycle, cfg config.Config, log *logger.Logger) (*goredis.Client, error) {
	rdb, err := infra.InitRedis(cfg)
	if err != nil || rdb == nil {
		return rdb, err
	}
	log.Info("Connected to redis", "addr", cfg.RedisAddr)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return rdb.Close() },
	})
	return rdb, nil
}
