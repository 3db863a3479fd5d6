package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	platform "github.com/Ignition-ceo/RaffleFox/internal/platform/redis"
)

// redisStore keeps one JSON document per key ("<collection>:<id>") and a
// membership set ("<collection>:ids") so a collection can be scanned
// without KEYS.
type redisStore struct {
	client *platform.Client
}

func NewRedis(client *platform.Client) Store {
	return &redisStore{client: client}
}

func docKey(collection, id string) string {
	return collection + ":" + id
}

func idsKey(collection string) string {
	return collection + ":ids"
}

func (s *redisStore) List(ctx context.Context, collection string) ([]Doc, error) {
	ids, err := s.client.SMembers(ctx, idsKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	if len(ids) == 0 {
		return []Doc{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(collection, id)
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	docs := make([]Doc, 0, len(ids))
	for i, v := range vals {
		// A member with no document is a torn delete; skip it.
		raw, ok := v.(string)
		if !ok {
			continue
		}
		docs = append(docs, Doc{ID: ids[i], Data: []byte(raw)})
	}
	return docs, nil
}

func (s *redisStore) Get(ctx context.Context, collection, id string) (*Doc, error) {
	data, err := s.client.Get(ctx, docKey(collection, id)).Bytes()
	if err == goredis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return &Doc{ID: id, Data: data}, nil
}

func (s *redisStore) Add(ctx context.Context, collection string, data []byte) (string, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *redisStore) Set(ctx context.Context, collection, id string, data []byte) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, docKey(collection, id), data, 0)
	pipe.SAdd(ctx, idsKey(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, collection, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, docKey(collection, id))
	pipe.SRem(ctx, idsKey(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}
