package dailyoutfit

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore is the in-process Store used when Redis is not configured.
// Entry expiry is enforced by ExpiresAt; the LRU ttl only bounds memory.
type MemoryStore struct {
	entries   *expirable.LRU[string, Entry]
	locations *expirable.LRU[string, Location]
}

func NewMemoryStore(size int) *MemoryStore {
	if size <= 0 {
		size = 1024
	}
	return &MemoryStore{
		entries:   expirable.NewLRU[string, Entry](size, nil, 24*time.Hour),
		locations: expirable.NewLRU[string, Location](size, nil, locationTTL),
	}
}

func (m *MemoryStore) Get(_ context.Context, owner, date string) (Entry, bool, error) {
	e, ok := m.entries.Get(Key(owner, date))
	return e, ok, nil
}

func (m *MemoryStore) Put(_ context.Context, e Entry, _ time.Duration) error {
	m.entries.Add(Key(e.OwnerID, e.Date), e)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, owner, date string) error {
	m.entries.Remove(Key(owner, date))
	return nil
}

func (m *MemoryStore) GetLocation(_ context.Context, owner string) (Location, bool, error) {
	loc, ok := m.locations.Get(LocationKey(owner))
	return loc, ok, nil
}

func (m *MemoryStore) PutLocation(_ context.Context, owner string, loc Location) error {
	m.locations.Add(LocationKey(owner), loc)
	return nil
}

func (m *MemoryStore) Len() int {
	return m.entries.Len()
}
