package mem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLocks_BusyUntilReleased(t *testing.T) {
	ctx := context.Background()
	locks := NewKeyedLocks(time.Minute)

	release, ok, err := locks.TryLock(ctx, "trip-1")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = locks.TryLock(ctx, "trip-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// other trips are independent
	releaseOther, ok, _ := locks.TryLock(ctx, "trip-2")
	require.True(t, ok)
	releaseOther()

	release()
	release()

	again, ok, _ := locks.TryLock(ctx, "trip-1")
	require.True(t, ok)
	again()
}

func TestKeyedLocks_ExpiredEntryIsReclaimed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	locks := NewKeyedLocks(time.Minute)
	locks.nowFn = func() time.Time { return now }

	staleRelease, ok, _ := locks.TryLock(ctx, "trip-1")
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	freshRelease, ok, _ := locks.TryLock(ctx, "trip-1")
	require.True(t, ok)

	// the stale holder must not clear the fresh holder's entry
	staleRelease()
	_, ok, _ = locks.TryLock(ctx, "trip-1")
	assert.False(t, ok)

	freshRelease()
	_, ok, _ = locks.TryLock(ctx, "trip-1")
	assert.True(t, ok)
}

func TestNewKeyedLocks_DefaultTTL(t *testing.T) {
	assert.Equal(t, 2*time.Minute, NewKeyedLocks(0).ttl)
}
