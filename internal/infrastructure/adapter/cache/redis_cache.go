package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	cacheport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
)

const availableSlotsKey = "cache:slots:available"

// Config represents redis connection settings
type Config struct {
	Addr       string        `mapstructure:"redis_addr"`
	Password   string        `mapstructure:"redis_password"`
	DB         int           `mapstructure:"redis_db"`
	ListingTTL time.Duration `mapstructure:"redis_listing_ttl"`
}

// RedisCache implements the slot cache port. Slot locks use SETNX with a
// TTL so a crashed booking attempt never leaves a slot locked forever.
type RedisCache struct {
	client     *redis.Client
	listingTTL time.Duration
	logger     coreport.Logger
}

// NewRedisCache creates a redis-backed slot cache
func NewRedisCache(cfg Config, logger coreport.Logger) *RedisCache {
	listingTTL := cfg.ListingTTL
	if listingTTL <= 0 {
		listingTTL = time.Minute
	}

	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		listingTTL: listingTTL,
		logger:     logger,
	}
}

// Ping verifies the redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the redis client
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// AcquireSlotLock takes a short exclusive hold on a slot
func (c *RedisCache) AcquireSlotLock(ctx context.Context, slotID string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, slotLockKey(slotID), "locked", ttl).Result()
}

// ReleaseSlotLock drops the hold on a slot
func (c *RedisCache) ReleaseSlotLock(ctx context.Context, slotID string) error {
	return c.client.Del(ctx, slotLockKey(slotID)).Err()
}

// GetAvailableSlots returns the cached available-slot listing, or nil on miss
func (c *RedisCache) GetAvailableSlots(ctx context.Context) ([]entity.Slot, error) {
	data, err := c.client.Get(ctx, availableSlotsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var slots []entity.Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		c.logger.Warn("Dropping undecodable slot listing from cache", map[string]any{
			"error": err.Error(),
		})
		_ = c.client.Del(ctx, availableSlotsKey).Err()
		return nil, nil
	}
	return slots, nil
}

// SetAvailableSlots stores the available-slot listing with the configured TTL
func (c *RedisCache) SetAvailableSlots(ctx context.Context, slots []entity.Slot) error {
	payload, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availableSlotsKey, payload, c.listingTTL).Err()
}

// InvalidateAvailableSlots drops the cached listing after a write
func (c *RedisCache) InvalidateAvailableSlots(ctx context.Context) error {
	return c.client.Del(ctx, availableSlotsKey).Err()
}

func slotLockKey(slotID string) string {
	return fmt.Sprintf("lock:slot:%s", slotID)
}

var _ cacheport.SlotCache = (*RedisCache)(nil)
