// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package topic

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aman-SINGH7999/the-world/internal/platform/constants"
)

// # Read-through Cache

// CachedRepository decorates a [Repository] with a Redis read cache for
// single-topic lookups.
//
// Writes go to the inner store first; the affected keys are then dropped.
// Any Redis failure is logged and the call falls through to the store, so the
// cache can only make reads faster, never fail them.
type CachedRepository struct {
	Repository
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps inner with a cache.
func NewCachedRepository(inner Repository, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: inner,
		client:     client,
		ttl:        ttl,
		logger:     logger,
	}
}

func idKey(id string) string     { return constants.RedisPrefixTopicID + id }
func slugKey(slug string) string { return constants.RedisPrefixTopicSlug + slug }

// FindByID reads through the id key.
func (cache *CachedRepository) FindByID(ctx context.Context, id string) (*Topic, error) {
	return cache.readThrough(ctx, idKey(id), func() (*Topic, error) {
		return cache.Repository.FindByID(ctx, id)
	})
}

// FindBySlug reads through the slug key.
func (cache *CachedRepository) FindBySlug(ctx context.Context, slug string) (*Topic, error) {
	return cache.readThrough(ctx, slugKey(slug), func() (*Topic, error) {
		return cache.Repository.FindBySlug(ctx, slug)
	})
}

// Update writes through and drops the id key plus the old and new slug keys.
func (cache *CachedRepository) Update(ctx context.Context, id string, changes *Changes) (*Topic, error) {
	keys := []string{idKey(id)}
	if previous, err := cache.Repository.FindByID(ctx, id); err == nil {
		keys = append(keys, slugKey(previous.Slug))
	}

	updated, err := cache.Repository.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	cache.invalidate(ctx, append(keys, slugKey(updated.Slug))...)
	return updated, nil
}

// Delete removes from the store, then drops both keys.
func (cache *CachedRepository) Delete(ctx context.Context, id string) error {
	keys := []string{idKey(id)}
	if previous, err := cache.Repository.FindByID(ctx, id); err == nil {
		keys = append(keys, slugKey(previous.Slug))
	}

	if err := cache.Repository.Delete(ctx, id); err != nil {
		return err
	}

	cache.invalidate(ctx, keys...)
	return nil
}

func (cache *CachedRepository) readThrough(ctx context.Context, key string, load func() (*Topic, error)) (*Topic, error) {
	raw, err := cache.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		topic := &Topic{}
		if decodeErr := json.Unmarshal(raw, topic); decodeErr == nil {
			return topic, nil
		}
		cache.logger.WarnContext(ctx, "topic_cache_decode_failed", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		cache.logger.WarnContext(ctx, "topic_cache_read_failed", slog.String("key", key), slog.Any("error", err))
	}

	topic, err := load()
	if err != nil {
		return nil, err
	}

	if encoded, encodeErr := json.Marshal(topic); encodeErr == nil {
		if setErr := cache.client.Set(ctx, key, encoded, cache.ttl).Err(); setErr != nil {
			cache.logger.WarnContext(ctx, "topic_cache_write_failed", slog.String("key", key), slog.Any("error", setErr))
		}
	}

	return topic, nil
}

func (cache *CachedRepository) invalidate(ctx context.Context, keys ...string) {
	if err := cache.client.Del(ctx, keys...).Err(); err != nil {
		cache.logger.WarnContext(ctx, "topic_cache_invalidate_failed",
			slog.Any("keys", keys),
			slog.Any("error", err),
		)
	}
}
