// Package redis keeps live driver statuses in Redis: one hash per driver plus
// a set of known driver ids. Statuses are written on every report, so the
// cache answers ListDriverStatuses without touching Postgres.
//
// A sync marker with a TTL records that the cache matches the durable store.
// Once it expires or is invalidated, the next read reloads every status from
// the store, so a missed write is served for at most one TTL.
package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	driverKeyPrefix = "driver:status:"
	driverSetKey    = "drivers:known"
	syncedMarkerKey = "drivers:synced"
)

// LoadFunc reads every driver status from the durable store.
type LoadFunc func(ctx context.Context) ([]driver.StatusRecord, error)

const (
	fieldName      = "name"
	fieldOnline    = "online"
	fieldStatus    = "status"
	fieldZone      = "zone"
	fieldUpdatedAt = "updated_at"
)

type DriverStatusCache struct {
	client    *redis.Client
	namespace string
}

// NewDriverStatusCache stores keys under namespace, e.g. "logistics:driver:status:D1".
func NewDriverStatusCache(client *redis.Client, namespace string) *DriverStatusCache {
	if namespace != "" {
		namespace += ":"
	}
	return &DriverStatusCache{client: client, namespace: namespace}
}

func (c *DriverStatusCache) driverKey(id string) string {
	return c.namespace + driverKeyPrefix + id
}

func (c *DriverStatusCache) setKey() string {
	return c.namespace + driverSetKey
}

func (c *DriverStatusCache) syncedKey() string {
	return c.namespace + syncedMarkerKey
}

func (c *DriverStatusCache) save(ctx context.Context, pipe redis.Pipeliner, rec driver.StatusRecord) {
	zone := ""
	if rec.CurrentZoneID != nil {
		zone = *rec.CurrentZoneID
	}
	pipe.HSet(ctx, c.driverKey(rec.DriverID), map[string]any{
		fieldName:      rec.DriverName,
		fieldOnline:    strconv.FormatBool(rec.IsOnline),
		fieldStatus:    rec.Status.String(),
		fieldZone:      zone,
		fieldUpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	pipe.SAdd(ctx, c.setKey(), rec.DriverID)
}

// Save replaces the cached status of rec.DriverID.
func (c *DriverStatusCache) Save(ctx context.Context, rec driver.StatusRecord) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		c.save(ctx, pipe, rec)
		return nil
	})
	return err
}

// Invalidate drops the sync marker. The next synced read reloads the cache.
func (c *DriverStatusCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.syncedKey()).Err()
}

// List returns every cached status ordered by driver id.
func (c *DriverStatusCache) List(ctx context.Context) ([]driver.StatusRecord, error) {
	ids, err := c.client.SMembers(ctx, c.setKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)

	pipe := c.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, c.driverKey(id))
	}
	if len(ids) > 0 {
		if _, err = pipe.Exec(ctx); err != nil {
			return nil, err
		}
	}

	out := make([]driver.StatusRecord, 0, len(ids))
	for i, id := range ids {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			continue
		}
		rec, err := parseRecord(id, fields)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Resync replaces the cache contents with the statuses in the durable store
// and marks the cache in sync for ttl. It returns the number of cached drivers.
func (c *DriverStatusCache) Resync(ctx context.Context, load LoadFunc, ttl time.Duration) (int, error) {
	recs, err := load(ctx)
	if err != nil {
		return 0, err
	}
	if err = c.replace(ctx, recs, ttl); err != nil {
		return 0, err
	}
	return len(recs), nil
}

// ListSynced serves statuses from the cache while the sync marker is set and
// reloads them from load otherwise. When the reload cannot be written to Redis
// the loaded statuses are still returned; the marker stays unset and the next
// read retries.
func (c *DriverStatusCache) ListSynced(ctx context.Context, load LoadFunc, ttl time.Duration) ([]driver.StatusRecord, error) {
	synced, err := c.client.Exists(ctx, c.syncedKey()).Result()
	if err == nil && synced == 1 {
		return c.List(ctx)
	}

	recs, err := load(ctx)
	if err != nil {
		return nil, err
	}
	recs = append(make([]driver.StatusRecord, 0, len(recs)), recs...)
	sort.Slice(recs, func(i, j int) bool { return recs[i].DriverID < recs[j].DriverID })

	_ = c.replace(ctx, recs, ttl)
	return recs, nil
}

// replace drops every cached driver, stores recs and sets the sync marker in one transaction.
func (c *DriverStatusCache) replace(ctx context.Context, recs []driver.StatusRecord, ttl time.Duration) error {
	known, err := c.client.SMembers(ctx, c.setKey()).Result()
	if err != nil {
		return err
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		stale := make([]string, 0, len(known)+1)
		for _, id := range known {
			stale = append(stale, c.driverKey(id))
		}
		stale = append(stale, c.setKey())
		pipe.Del(ctx, stale...)
		for _, rec := range recs {
			c.save(ctx, pipe, rec)
		}
		pipe.Set(ctx, c.syncedKey(), time.Now().UTC().Format(time.RFC3339Nano), ttl)
		return nil
	})
	return err
}

// Capabilities serves driver statuses from the cache, falling back to load
// whenever the cache is out of sync. Merge it over the durable store capabilities.
func (c *DriverStatusCache) Capabilities(load LoadFunc, ttl time.Duration) ports.Capabilities {
	return ports.Capabilities{
		ListDriverStatusesFunc: func(ctx context.Context) ([]driver.StatusRecord, error) {
			return c.ListSynced(ctx, load, ttl)
		},
	}
}

func parseRecord(id string, fields map[string]string) (driver.StatusRecord, error) {
	status, err := driver.ParseStatus(fields[fieldStatus])
	if err != nil {
		return driver.StatusRecord{}, fmt.Errorf("driver %s: %w", id, err)
	}
	online, err := strconv.ParseBool(fields[fieldOnline])
	if err != nil {
		return driver.StatusRecord{}, fmt.Errorf("driver %s online flag: %w", id, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields[fieldUpdatedAt])
	if err != nil {
		return driver.StatusRecord{}, fmt.Errorf("driver %s updated at: %w", id, err)
	}

	rec := driver.StatusRecord{
		DriverID:   id,
		DriverName: fields[fieldName],
		IsOnline:   online,
		Status:     status,
		UpdatedAt:  updatedAt,
	}
	if zone := fields[fieldZone]; zone != "" {
		rec.CurrentZoneID = &zone
	}
	return rec, nil
}
