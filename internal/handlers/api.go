// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON HTTP handlers for the FlexiUI API.
// Handlers receive their dependencies through the API struct; persistence,
// caching and storage are reached through small interfaces so tests can
// substitute in-memory versions.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"flexiui/internal/generator"
	"flexiui/internal/models"
	"flexiui/internal/preview"
)

// Query limits for list endpoints.
const (
	defaultProjectLimit = 50
	maxProjectLimit     = 200
	defaultLogLimit     = 50
	maxLogLimit         = 200
)

// ProjectRepository persists projects. *store.ProjectStore satisfies it.
type ProjectRepository interface {
	List(limit int) ([]models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Create(p *models.Project) (*models.Project, error)
	Update(p *models.Project) (*models.Project, error)
	IncrementViews(id uuid.UUID) (int, error)
	Delete(id uuid.UUID) (bool, error)
	Count() (int, error)
}

// LogRepository persists generation logs. *store.GenerationLogStore
// satisfies it.
type LogRepository interface {
	Log(entry *models.GenerationLog)
	Recent(limit int) ([]models.GenerationLog, error)
	Stats() (*models.GenerationStats, error)
}

// ProjectCache is the optional read cache for single projects.
// *cache.ProjectCache satisfies it.
type ProjectCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Project, bool)
	Set(ctx context.Context, p *models.Project)
	Invalidate(ctx context.Context, id uuid.UUID)
}

// Publisher uploads exported projects. *storage.Client satisfies it.
type Publisher interface {
	Publish(ctx context.Context, id uuid.UUID, filename string, html []byte) (string, error)
	Unpublish(ctx context.Context, id uuid.UUID) error
}

// ProviderInfo describes the active completion provider.
// *ai.Registry satisfies it.
type ProviderInfo interface {
	ActiveName() string
	Configured() bool
}

// Deps holds the dependencies of the API handlers. Cache and Publisher may
// be nil when Valkey or S3 are not configured.
type Deps struct {
	Generator *generator.Service
	Provider  ProviderInfo
	Projects  ProjectRepository
	Logs      LogRepository
	Cache     ProjectCache
	Publisher Publisher
	Renderer  *preview.Renderer
}

// API groups all JSON API handlers and their dependencies.
type API struct {
	gen       *generator.Service
	provider  ProviderInfo
	projects  ProjectRepository
	logs      LogRepository
	cache     ProjectCache
	publisher Publisher
	renderer  *preview.Renderer
}

// NewAPI creates the API handler group. A nil Renderer is replaced with a
// fresh one.
func NewAPI(d Deps) *API {
	renderer := d.Renderer
	if renderer == nil {
		renderer = preview.NewRenderer()
	}
	return &API{
		gen:       d.Generator,
		provider:  d.Provider,
		projects:  d.Projects,
		logs:      d.Logs,
		cache:     d.Cache,
		publisher: d.Publisher,
		renderer:  renderer,
	}
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError sends {"error": msg} with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads the request body into dst. An oversized body or invalid
// JSON produces a message suitable for a 400 response.
func decodeJSON(r *http.Request, dst any) string {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "Request body is too large."
		}
		return "Invalid JSON body."
	}
	return ""
}

// queryLimit parses ?limit, falling back to def and clamping to [1, max].
func queryLimit(r *http.Request, def, max int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// projectID parses the {id} URL parameter.
func projectID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
