package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
)

const (
	motelKeyPrefix = "motel:"
	approvedKey    = "motels:approved"
	ttl            = 1 * time.Hour
)

// MotelCache keeps per-motel entries and the approved-directory list in
// Redis. A nil cache is a no-op, and read errors behave like misses; the
// cache can never fail a request.
type MotelCache struct {
	client *redis.Client
}

func NewMotelCache(addr string) (*MotelCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &MotelCache{client: client}, nil
}

func (c *MotelCache) GetMotel(ctx context.Context, id domain.MotelID) (*domain.Motel, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, motelKeyPrefix+string(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var motel domain.Motel
	if err := json.Unmarshal(data, &motel); err != nil {
		return nil, err
	}
	return &motel, nil
}

func (c *MotelCache) SetMotel(ctx context.Context, motel *domain.Motel) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(motel)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, motelKeyPrefix+string(motel.ID), data, ttl).Err()
}

func (c *MotelCache) DeleteMotel(ctx context.Context, id domain.MotelID) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, motelKeyPrefix+string(id)).Err()
}

func (c *MotelCache) GetApproved(ctx context.Context) ([]*domain.Motel, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, approvedKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var motels []*domain.Motel
	if err := json.Unmarshal(data, &motels); err != nil {
		return nil, err
	}
	return motels, nil
}

func (c *MotelCache) SetApproved(ctx context.Context, motels []*domain.Motel) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(motels)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, approvedKey, data, ttl).Err()
}

// InvalidateApproved drops the directory list after any mutation that can
// change it (create, status change, delete, photo change).
func (c *MotelCache) InvalidateApproved(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, approvedKey).Err()
}
