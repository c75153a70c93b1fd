package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/touchdown/internal/entity"
	"github.com/futig/touchdown/internal/form"
	"github.com/patrickmn/go-cache"
)

// ApplicationRepository keeps live application forms by id
type ApplicationRepository interface {
	Create(ctx context.Context, id string, f *form.ApplicationForm) error
	Get(ctx context.Context, id string) (*form.ApplicationForm, error)
	Count() int
}

var _ ApplicationRepository = &ApplicationCache{}

// ApplicationCache implements ApplicationRepository in memory.
// Entries expire after ttl without access; nothing survives a restart.
type ApplicationCache struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewApplicationCache(ttl, cleanupInterval time.Duration) *ApplicationCache {
	return &ApplicationCache{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

func (r *ApplicationCache) Create(ctx context.Context, id string, f *form.ApplicationForm) error {
	if err := r.cache.Add(id, f, r.ttl); err != nil {
		return fmt.Errorf("store application %s: %w", id, err)
	}
	return nil
}

// Get returns the form and extends its lifetime
func (r *ApplicationCache) Get(ctx context.Context, id string) (*form.ApplicationForm, error) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, entity.ErrApplicationNotFound
	}

	f := v.(*form.ApplicationForm)
	r.cache.Set(id, f, r.ttl)
	return f, nil
}

func (r *ApplicationCache) Count() int {
	return r.cache.ItemCount()
}
