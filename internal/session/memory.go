package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"hvsrweb/internal/config"
	"hvsrweb/internal/model"
)

// Expired entries are swept this often; lookups already treat expired
// entries as gone, the sweep only reclaims memory.
const janitorInterval = time.Minute

// MemoryStore implements Store on top of two TTL caches, one for
// records and one for calculations.
type MemoryStore struct {
	records    *gocache.Cache
	calcs      *gocache.Cache
	maxEntries int
}

// NewMemoryStore builds a session store bounded by cfg. A MaxEntries
// of zero or less leaves the store unbounded.
func NewMemoryStore(cfg config.SessionConfig) *MemoryStore {
	return &MemoryStore{
		records:    gocache.New(cfg.TTL, janitorInterval),
		calcs:      gocache.New(cfg.TTL, janitorInterval),
		maxEntries: cfg.MaxEntries,
	}
}

func (s *MemoryStore) PutRecord(_ context.Context, rec *model.Record) error {
	if err := s.checkCapacity(s.records, rec.ID); err != nil {
		return err
	}
	s.records.Set(rec.ID, rec, gocache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Record(_ context.Context, id string) (*model.Record, error) {
	v, ok := s.records.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*model.Record), nil
}

func (s *MemoryStore) DeleteRecord(_ context.Context, id string) error {
	s.records.Delete(id)
	return nil
}

func (s *MemoryStore) PutCalculation(_ context.Context, calc *model.Calculation) error {
	if err := s.checkCapacity(s.calcs, calc.ID); err != nil {
		return err
	}
	s.calcs.Set(calc.ID, calc, gocache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Calculation(_ context.Context, id string) (*model.Calculation, error) {
	v, ok := s.calcs.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*model.Calculation), nil
}

// checkCapacity rejects new keys once the cache is at capacity.
// Overwriting an existing key is always allowed.
func (s *MemoryStore) checkCapacity(c *gocache.Cache, key string) error {
	if s.maxEntries <= 0 {
		return nil
	}
	if _, exists := c.Get(key); exists {
		return nil
	}
	if c.ItemCount() >= s.maxEntries {
		// ItemCount includes expired entries the janitor has not swept
		// yet, so reclaim those before giving up.
		c.DeleteExpired()
		if c.ItemCount() >= s.maxEntries {
			return ErrFull
		}
	}
	return nil
}
