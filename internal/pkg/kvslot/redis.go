package kvslot

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Redis struct {
	key    string
	client *redis.Client
}

func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{key: key, client: client}
}

func (r *Redis) Get(ctx context.Context) ([]byte, error) {
	value, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, errors.Wrap(err, "kvslot: redis: get")
	}
	return value, nil
}

func (r *Redis) Put(ctx context.Context, value []byte) error {
	return errors.Wrap(r.client.Set(ctx, r.key, value, 0).Err(), "kvslot: redis: put")
}

func (r *Redis) Delete(ctx context.Context) error {
	return errors.Wrap(r.client.Del(ctx, r.key).Err(), "kvslot: redis: delete")
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
