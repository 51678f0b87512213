package infra

import (
	"context"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"globetrotter/pkg/logger"
)

const tripLockPrefix = "globetrotter:itinerary-lock:"

// Deletes the key only if it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// lockStore is the part of the redis client the locker needs. *goredis.Client satisfies it.
type lockStore interface {
	goredis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.BoolCmd
}

// RedisTripLocker is a TripLocker shared by every API replica.
type RedisTripLocker struct {
	rdb lockStore
	ttl time.Duration
	log *logger.Logger
}

func NewRedisTripLocker(rdb lockStore, ttl time.Duration, log *logger.Logger) *RedisTripLocker {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisTripLocker{rdb: rdb, ttl: ttl, log: log.With("component", "RedisTripLocker")}
}

func (l *RedisTripLocker) TryLock(ctx context.Context, tripID string) (func(), bool, error) {
	key := tripLockPrefix + tripID
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// the request context may already be cancelled
		rctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := releaseScript.Run(rctx, l.rdb, []string{key}, token).Err(); err != nil {
			l.log.Warn("Failed to release trip lock", "trip_id", tripID, "error", err)
		}
	}
	return release, true, nil
}
