package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"clinic-cms/internal/domains/content/model"
	"clinic-cms/pkg/cache"
)

const documentCacheKey = "cms:document:" + model.DocumentKey

// CachedStrategy wraps a Strategy with a cache-aside read path.
// Writes go to the inner strategy first and then drop the cached copy.
// Cache failures never fail a request.
type CachedStrategy struct {
	inner Strategy
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedStrategy(inner Strategy, c cache.Cache, ttl time.Duration) *CachedStrategy {
	return &CachedStrategy{inner: inner, cache: c, ttl: ttl}
}

func (s *CachedStrategy) Name() string { return s.inner.Name() + "+cache" }

func (s *CachedStrategy) Load(ctx context.Context) (*model.Document, error) {
	var doc model.Document
	found, err := s.cache.Get(ctx, documentCacheKey, &doc)
	if err == nil && found {
		return &doc, nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("content cache read failed")
	}

	loaded, err := s.inner.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, documentCacheKey, loaded, s.ttl); err != nil {
		log.Warn().Err(err).Msg("content cache write failed")
	}
	return loaded, nil
}

func (s *CachedStrategy) Store(ctx context.Context, doc *model.Document) error {
	if err := s.inner.Store(ctx, doc); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, documentCacheKey); err != nil {
		log.Warn().Err(err).Msg("content cache invalidation failed")
	}
	return nil
}

func (s *CachedStrategy) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}
