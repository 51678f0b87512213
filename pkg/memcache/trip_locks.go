package mem

import (
	"context"
	"sync"
	"time"
)

// TripLocker guards at most one itinerary generation per trip.
// TryLock returns a release func and true when the lock was taken.
type TripLocker interface {
	TryLock(ctx context.Context, tripID string) (release func(), ok bool, err error)
}

type lockEntry struct {
	token     uint64
	expiresAt time.Time
}

// KeyedLocks is the in-process TripLocker. Entries expire after ttl so a crashed holder
// cannot wedge a trip forever.
type KeyedLocks struct {
	mu    sync.Mutex
	held  map[string]lockEntry
	ttl   time.Duration
	next  uint64
	nowFn func() time.Time
}

func NewKeyedLocks(ttl time.Duration) *KeyedLocks {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &KeyedLocks{
		held:  make(map[string]lockEntry),
		ttl:   ttl,
		nowFn: time.Now,
	}
}

func (k *KeyedLocks) TryLock(_ context.Context, tripID string) (func(), bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.nowFn()
	if e, ok := k.held[tripID]; ok && now.Before(e.expiresAt) {
		return nil, false, nil
	}

	k.next++
	token := k.next
	k.held[tripID] = lockEntry{token: token, expiresAt: now.Add(k.ttl)}

	var once sync.Once
	release := func() {
		once.Do(func() {
			k.mu.Lock()
			defer k.mu.Unlock()
			// only the holder that set the entry may clear it
			if e, ok := k.held[tripID]; ok && e.token == token {
				delete(k.held, tripID)
			}
		})
	}
	return release, true, nil
}
