package dailyoutfit

import (
	"context"
	"time"
)

// JSONCache is the subset of the Redis wrapper the store needs.
type JSONCache interface {
	Available() bool
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisStore struct {
	cache JSONCache
}

func NewRedisStore(c JSONCache) *RedisStore {
	return &RedisStore{cache: c}
}

func (s *RedisStore) Get(ctx context.Context, owner, date string) (Entry, bool, error) {
	var e Entry
	ok, err := s.cache.GetJSON(ctx, Key(owner, date), &e)
	if err != nil || !ok {
		return Entry{}, false, err
	}
	return e, true, nil
}

func (s *RedisStore) Put(ctx context.Context, e Entry, ttl time.Duration) error {
	return s.cache.SetJSON(ctx, Key(e.OwnerID, e.Date), e, ttl)
}

func (s *RedisStore) Delete(ctx context.Context, owner, date string) error {
	return s.cache.Delete(ctx, Key(owner, date))
}

func (s *RedisStore) GetLocation(ctx context.Context, owner string) (Location, bool, error) {
	var loc Location
	ok, err := s.cache.GetJSON(ctx, LocationKey(owner), &loc)
	if err != nil || !ok {
		return Location{}, false, err
	}
	return loc, true, nil
}

func (s *RedisStore) PutLocation(ctx context.Context, owner string, loc Location) error {
	return s.cache.SetJSON(ctx, LocationKey(owner), loc, locationTTL)
}

// NewStore prefers Redis and falls back to process memory when Redis is
// disabled or was unreachable at startup.
func NewStore(c JSONCache, size int) Store {
	if c != nil && c.Available() {
		return NewRedisStore(c)
	}
	return NewMemoryStore(size)
}
