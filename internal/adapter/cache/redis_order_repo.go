package cache

import (
	"context"
	"encoding/json"

	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/redis/go-redis/v9"
)

const orderKeyPrefix = "order:"

type RedisOrderRepo struct {
	rdb *redis.Client
}

func NewRedisOrderRepo(rdb *redis.Client) *RedisOrderRepo {
	return &RedisOrderRepo{rdb: rdb}
}

func (r *RedisOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}
	ok, err := r.rdb.SetNX(ctx, orderKeyPrefix+o.ID, body, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return usecase.ErrOrderExists
	}
	return nil
}

func (r *RedisOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	raw, err := r.rdb.Get(ctx, orderKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, usecase.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	var o domain.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *RedisOrderRepo) UpdateStatus(ctx context.Context, id string, to domain.Status) error {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	o.Status = to
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, orderKeyPrefix+id, body, 0).Err()
}

var _ usecase.OrderRepo = (*RedisOrderRepo)(nil)
