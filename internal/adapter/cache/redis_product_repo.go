package cache

import (
	"context"
	"encoding/json"

	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix = "product:"
	productIndexKey  = "products:ids"
)

// RedisProductRepo is the redis-backed product store. Records live in
// per-id string keys; an RPUSH list preserves insertion order for List.
// SETNX makes the strict-insert check atomic per id.
type RedisProductRepo struct {
	rdb *redis.Client
}

func NewRedisProductRepo(rdb *redis.Client) *RedisProductRepo {
	return &RedisProductRepo{rdb: rdb}
}

func (r *RedisProductRepo) Create(ctx context.Context, p *domain.Product) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	ok, err := r.rdb.SetNX(ctx, productKeyPrefix+p.ID, body, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return usecase.ErrProductExists
	}
	// only the winning SetNX appends, so the index stays duplicate-free
	return r.rdb.RPush(ctx, productIndexKey, p.ID).Err()
}

func (r *RedisProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	raw, err := r.rdb.Get(ctx, productKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, usecase.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RedisProductRepo) List(ctx context.Context, skip, limit int) ([]domain.Product, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		return []domain.Product{}, nil
	}
	ids, err := r.rdb.LRange(ctx, productIndexKey, int64(skip), int64(skip+limit-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			if err == usecase.ErrProductNotFound {
				continue
			}
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

var _ usecase.ProductRepo = (*RedisProductRepo)(nil)
