package cards

import (
	"context"

	"github.com/cardforge/cardforge/internal/sheet"
	"github.com/patrickmn/go-cache"
)

// MemoryRepository is the in-process fallback tier. Entries never expire and
// live until the process exits; they are invisible to other instances.
type MemoryRepository struct {
	store *cache.Cache
}

func NewMemoryRepository() *MemoryRepository {
	// no default expiration and no janitor goroutine
	return &MemoryRepository{store: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryRepository) Put(_ context.Context, id string, card *sheet.SharedCard) error {
	m.store.Set(id, card.Clone(), cache.NoExpiration)
	return nil
}

func (m *MemoryRepository) Get(_ context.Context, id string) (*sheet.SharedCard, error) {
	v, ok := m.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	c := v.(sheet.SharedCard).Clone()
	return &c, nil
}

// Len returns the number of cards held.
func (m *MemoryRepository) Len() int {
	return m.store.ItemCount()
}
