package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotCache caches derived open slots per (photographer, service, date)
// with a short TTL. Every write path for a photographer invalidates all of
// that photographer's entries, so stale slot lists never outlive the TTL
// and never survive a booking or template change.
type SlotCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSlotCache constructs a slot cache around a Redis client.
func NewSlotCache(client *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{Client: client, TTL: ttl}
}

func slotKey(photographerID, serviceID, date string) string {
	return fmt.Sprintf("slots:%s:%s:%s", photographerID, serviceID, date)
}

// Get returns the cached slot list, if present.
func (c *SlotCache) Get(ctx context.Context, photographerID, serviceID, date string) ([]string, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, slotKey(photographerID, serviceID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// Set stores a derived slot list.
func (c *SlotCache) Set(ctx context.Context, photographerID, serviceID, date string, slots []string) {
	if c == nil || c.Client == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.Client.Set(ctx, slotKey(photographerID, serviceID, date), raw, c.TTL)
}

// InvalidatePhotographer removes every cached slot list for a photographer.
func (c *SlotCache) InvalidatePhotographer(ctx context.Context, photographerID string) {
	if c == nil || c.Client == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%s:*", photographerID)
	iter := c.Client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		c.Client.Del(ctx, iter.Val())
	}
}
