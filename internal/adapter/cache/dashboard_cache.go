package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/internal/core/ports"
)

const (
	keyDashboardPrefix    = "dashboard:stats:"
	keyDashboardGenPrefix = "dashboard:gen:"
)

// setIfGeneration stores ARGV[2] at KEYS[2] only while KEYS[1] still holds
// the generation ARGV[1]. A missing generation counts as 0.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
  return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// DashboardCache keeps per-user dashboard stats in Redis, next to a
// generation counter bumped by every invalidation.
type DashboardCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ ports.DashboardCache = (*DashboardCache)(nil)

func NewDashboardCache(rdb redis.Cmdable, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardCache{rdb: rdb, ttl: ttl}
}

func (c *DashboardCache) Get(ctx context.Context, userID uint64) (domain.DashboardStats, bool, error) {
	b, err := c.rdb.Get(ctx, dashboardKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DashboardStats{}, false, nil
	}
	if err != nil {
		return domain.DashboardStats{}, false, err
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(b, &stats); err != nil {
		return domain.DashboardStats{}, false, err
	}
	return stats, true, nil
}

func (c *DashboardCache) Generation(ctx context.Context, userID uint64) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *DashboardCache) SetIfGeneration(ctx context.Context, userID uint64, generation int64, stats domain.DashboardStats) (bool, error) {
	b, err := json.Marshal(stats)
	if err != nil {
		return false, err
	}

	stored, err := setIfGeneration.Run(ctx, c.rdb,
		[]string{generationKey(userID), dashboardKey(userID)},
		strconv.FormatInt(generation, 10), string(b), strconv.FormatInt(c.ttl.Milliseconds(), 10),
	).Int64()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// Invalidate bumps the generation before deleting the entry, so a reader
// that computed its stats earlier can no longer store them.
func (c *DashboardCache) Invalidate(ctx context.Context, userID uint64) error {
	if err := c.rdb.Incr(ctx, generationKey(userID)).Err(); err != nil {
		return err
	}
	return c.rdb.Del(ctx, dashboardKey(userID)).Err()
}

func dashboardKey(userID uint64) string {
	return keyDashboardPrefix + strconv.FormatUint(userID, 10)
}

func generationKey(userID uint64) string {
	return keyDashboardGenPrefix + strconv.FormatUint(userID, 10)
}
