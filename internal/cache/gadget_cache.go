package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"imf-gadget-api/internal/model"
)

// GadgetCache is a short-TTL read-through cache for gadget list queries,
// keyed by the status filter. Only raw records are cached; mission
// success probabilities are appended after the cache so they stay random
// per call.
type GadgetCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewGadgetCache(client *redisv9.Client, ttl time.Duration) *GadgetCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &GadgetCache{client: client, ttl: ttl}
}

func (c *GadgetCache) GetList(ctx context.Context, status *model.GadgetStatus) ([]model.Gadget, bool, error) {
	raw, err := c.client.Get(ctx, c.listKey(status)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get gadget list failed: %w", err)
	}

	var gadgets []model.Gadget
	if err := json.Unmarshal([]byte(raw), &gadgets); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached gadget list failed: %w", err)
	}
	return gadgets, true, nil
}

func (c *GadgetCache) SetList(ctx context.Context, status *model.GadgetStatus, gadgets []model.Gadget) error {
	payload, err := json.Marshal(gadgets)
	if err != nil {
		return fmt.Errorf("marshal gadget list cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.listKey(status), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set gadget list failed: %w", err)
	}
	return nil
}

// Invalidate drops every list key. The status filter is a closed enum,
// so the full key set is known up front.
func (c *GadgetCache) Invalidate(ctx context.Context) error {
	available := model.GadgetAvailable
	decommissioned := model.GadgetDecommissioned
	keys := []string{
		c.listKey(nil),
		c.listKey(&available),
		c.listKey(&decommissioned),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis invalidate gadget lists failed: %w", err)
	}
	return nil
}

func (c *GadgetCache) listKey(status *model.GadgetStatus) string {
	if status == nil {
		return "gadgets:list:all"
	}
	return fmt.Sprintf("gadgets:list:status:%s", *status)
}
