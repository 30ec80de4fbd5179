package redis

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/ports"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newCache(t *testing.T) *DriverStatusCache {
	t.Helper()
	client := getRedisClient(t)
	namespace := "test-" + uuid.NewString()
	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, namespace+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})
	return NewDriverStatusCache(client, namespace)
}

func record(id string, online bool, zone string) driver.StatusRecord {
	rec := driver.StatusRecord{
		DriverID:   id,
		DriverName: "Driver " + id,
		IsOnline:   online,
		Status:     driver.StatusAvailable,
		UpdatedAt:  time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC),
	}
	if zone != "" {
		rec.CurrentZoneID = &zone
	}
	return rec
}

func TestDriverStatusCache_SaveAndList(t *testing.T) {
	cache := newCache(t)
	ctx := t.Context()

	require.NoError(t, cache.Save(ctx, record("D2", true, "south")))
	require.NoError(t, cache.Save(ctx, record("D1", false, "")))

	recs, err := cache.List(ctx)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, record("D1", false, ""), recs[0])
	assert.Equal(t, record("D2", true, "south"), recs[1])
}

func TestDriverStatusCache_SaveReplaces(t *testing.T) {
	cache := newCache(t)
	ctx := t.Context()
	require.NoError(t, cache.Save(ctx, record("D1", true, "south")))

	moved := record("D1", true, "north")
	moved.Status = driver.StatusDelivering
	require.NoError(t, cache.Save(ctx, moved))

	recs, err := cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, moved, recs[0])
}

func TestDriverStatusCache_EmptyList(t *testing.T) {
	cache := newCache(t)

	recs, err := cache.List(t.Context())

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func durable(recs ...driver.StatusRecord) (LoadFunc, *atomic.Int32) {
	var calls atomic.Int32
	return func(context.Context) ([]driver.StatusRecord, error) {
		calls.Add(1)
		return recs, nil
	}, &calls
}

func TestDriverStatusCache_Resync(t *testing.T) {
	t.Run("replaces the cached drivers with the store contents", func(t *testing.T) {
		cache := newCache(t)
		require.NoError(t, cache.Save(t.Context(), record("D9", true, "gone")))
		load, _ := durable(record("D1", true, "south"))

		n, err := cache.Resync(t.Context(), load, time.Minute)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		recs, err := cache.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []driver.StatusRecord{record("D1", true, "south")}, recs)
	})

	t.Run("store failure leaves the cache untouched", func(t *testing.T) {
		cache := newCache(t)
		require.NoError(t, cache.Save(t.Context(), record("D1", true, "")))
		load := func(context.Context) ([]driver.StatusRecord, error) {
			return nil, errors.New("db down")
		}

		_, err := cache.Resync(t.Context(), load, time.Minute)

		require.EqualError(t, err, "db down")
		recs, err := cache.List(t.Context())
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	})
}

func TestDriverStatusCache_ListSynced(t *testing.T) {
	t.Run("serves from the cache while in sync", func(t *testing.T) {
		cache := newCache(t)
		load, calls := durable(record("D1", true, "south"))
		_, err := cache.Resync(t.Context(), load, time.Minute)
		require.NoError(t, err)
		require.NoError(t, cache.Save(t.Context(), record("D2", true, "north")))

		recs, err := cache.ListSynced(t.Context(), load, time.Minute)

		require.NoError(t, err)
		assert.Len(t, recs, 2)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("reloads from the store after a failed write was invalidated", func(t *testing.T) {
		cache := newCache(t)
		stale := record("D1", true, "south")
		load, _ := durable(stale)
		_, err := cache.Resync(t.Context(), load, time.Minute)
		require.NoError(t, err)

		// the store moved D1 offline but the cache write did not happen
		current := record("D1", false, "south")
		load, calls := durable(current)
		require.NoError(t, cache.Invalidate(t.Context()))

		recs, err := cache.ListSynced(t.Context(), load, time.Minute)

		require.NoError(t, err)
		assert.Equal(t, []driver.StatusRecord{current}, recs)
		assert.Equal(t, int32(1), calls.Load())

		cached, err := cache.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []driver.StatusRecord{current}, cached)
	})

	t.Run("reloads once the sync marker expires", func(t *testing.T) {
		cache := newCache(t)
		load, _ := durable(record("D1", true, "south"))
		_, err := cache.Resync(t.Context(), load, 50*time.Millisecond)
		require.NoError(t, err)

		current := record("D1", false, "")
		load, _ = durable(current)

		require.Eventually(t, func() bool {
			recs, err := cache.ListSynced(t.Context(), load, time.Minute)
			return err == nil && len(recs) == 1 && !recs[0].IsOnline
		}, 2*time.Second, 20*time.Millisecond)
	})

	t.Run("an empty cache is never treated as in sync", func(t *testing.T) {
		cache := newCache(t)
		load, calls := durable(record("D1", true, ""))

		recs, err := cache.ListSynced(t.Context(), load, time.Minute)

		require.NoError(t, err)
		assert.Len(t, recs, 1)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestDriverStatusCache_Capabilities(t *testing.T) {
	cache := NewDriverStatusCache(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "")
	load, _ := durable()

	caps := cache.Capabilities(load, time.Minute)

	assert.Equal(t, []ports.Capability{ports.CapListDriverStatuses}, caps.Supported())
}

func TestDriverStatusCache_FallsBackWhenRedisIsDown(t *testing.T) {
	cache := NewDriverStatusCache(redis.NewClient(&redis.Options{Addr: "localhost:0", MaxRetries: -1}), "")
	load, calls := durable(record("D1", true, "south"))

	recs, err := cache.Capabilities(load, time.Minute).ListDriverStatuses(t.Context())

	require.NoError(t, err)
	assert.Equal(t, []driver.StatusRecord{record("D1", true, "south")}, recs)
	assert.Equal(t, int32(1), calls.Load())
}

func TestParseRecord(t *testing.T) {
	t.Run("valid fields", func(t *testing.T) {
		rec, err := parseRecord("D1", map[string]string{
			fieldName: "Avi", fieldOnline: "true", fieldStatus: "on_break", fieldZone: "", fieldUpdatedAt: "2025-04-02T09:00:00Z",
		})

		require.NoError(t, err)
		assert.Equal(t, driver.StatusOnBreak, rec.Status)
		assert.True(t, rec.IsOnline)
		assert.Nil(t, rec.CurrentZoneID)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := parseRecord("D1", map[string]string{
			fieldOnline: "true", fieldStatus: "asleep", fieldUpdatedAt: "2025-04-02T09:00:00Z",
		})

		assert.Error(t, err)
	})
}
