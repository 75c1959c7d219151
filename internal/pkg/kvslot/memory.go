package kvslot

import (
	"context"

	"github.com/patrickmn/go-cache"
)

type Memory struct {
	key string
	c   *cache.Cache
}

func NewMemory(key string) *Memory {
	return &Memory{
		key: key,
		c:   cache.New(cache.NoExpiration, 0),
	}
}

func (m *Memory) Get(ctx context.Context) ([]byte, error) {
	v, ok := m.c.Get(m.key)
	if !ok {
		return nil, ErrEmpty
	}
	return append([]byte(nil), v.([]byte)...), nil
}

func (m *Memory) Put(ctx context.Context, value []byte) error {
	m.c.Set(m.key, append([]byte(nil), value...), cache.NoExpiration)
	return nil
}

func (m *Memory) Delete(ctx context.Context) error {
	m.c.Delete(m.key)
	return nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}
