package memcache_fx

import (
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"globetrotter/internal/config"
	"globetrotter/internal/infra"
	"globetrotter/pkg/logger"
	mem "globetrotter/pkg/memcache"
)

var Module = fx.Provide(provideResetTokens, provideTripLocker)

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideTripLocker(cfg config.Config, rdb *goredis.Client, log *logger.Logger) mem.TripLocker {
	if rdb != nil {
		return infra.NewRedisTripLocker(rdb, cfg.TripLockTTL, log)
	}
	log.Info("Using in-process trip locks")
	return mem.NewKeyedLocks(cfg.TripLockTTL)
}
