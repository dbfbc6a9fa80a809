// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// project.go provides a Valkey-backed read cache for saved projects.
// Projects are stored as JSON so a cache hit skips the database lookup.
// Errors are logged and treated as misses; the cache is never authoritative.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"flexiui/internal/models"
)

const (
	// projectKeyPrefix is the Valkey key prefix for cached projects.
	projectKeyPrefix = "project:"

	// DefaultProjectTTL is how long a project stays cached.
	DefaultProjectTTL = 10 * time.Minute
)

// ProjectCache manages project caching in Valkey.
type ProjectCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProjectCache creates a new project cache backed by the given Valkey client.
func NewProjectCache(client *redis.Client, ttl time.Duration) *ProjectCache {
	if ttl == 0 {
		ttl = DefaultProjectTTL
	}
	return &ProjectCache{client: client, ttl: ttl}
}

// ProjectKey returns the cache key for a project ID.
func ProjectKey(id uuid.UUID) string {
	return projectKeyPrefix + id.String()
}

// Get retrieves a cached project. The bool is false on a miss.
func (pc *ProjectCache) Get(ctx context.Context, id uuid.UUID) (*models.Project, bool) {
	val, err := pc.client.Get(ctx, ProjectKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("project cache get error", "id", id, "error", err)
		return nil, false
	}

	var p models.Project
	if err := json.Unmarshal(val, &p); err != nil {
		slog.Warn("project cache decode error", "id", id, "error", err)
		pc.Invalidate(ctx, id)
		return nil, false
	}
	slog.Debug("project cache hit", "id", id)
	return &p, true
}

// Set stores a project with the configured TTL.
func (pc *ProjectCache) Set(ctx context.Context, p *models.Project) {
	data, err := json.Marshal(p)
	if err != nil {
		slog.Warn("project cache encode error", "id", p.ID, "error", err)
		return
	}
	if err := pc.client.Set(ctx, ProjectKey(p.ID), data, pc.ttl).Err(); err != nil {
		slog.Warn("project cache set error", "id", p.ID, "error", err)
	}
}

// Invalidate removes a single project from the cache.
func (pc *ProjectCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := pc.client.Del(ctx, ProjectKey(id)).Err(); err != nil {
		slog.Warn("project cache invalidate error", "id", id, "error", err)
		return
	}
	slog.Debug("project cache invalidated", "id", id)
}

// InvalidateAll removes every cached project by scanning for the prefix.
// Called at startup after migrations, since the cached shape may have changed.
func (pc *ProjectCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, projectKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("project cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("project cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("project cache cleared", "deleted", deleted)
	}
}
