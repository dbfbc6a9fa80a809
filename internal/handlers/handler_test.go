// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests:
// in-memory repositories, a fake publisher and a mock AI provider.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"flexiui/internal/ai"
	"flexiui/internal/generator"
	"flexiui/internal/middleware"
	"flexiui/internal/models"
)

// mockAIProvider implements ai.Provider for handler tests.
type mockAIProvider struct {
	mu       sync.Mutex
	name     string
	response string
	err      error
	calls    [][]ai.Message
}

func (m *mockAIProvider) Name() string { return m.name }

func (m *mockAIProvider) Complete(_ context.Context, messages []ai.Message, _ ai.CompletionOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, messages)
	return m.response, m.err
}

func (m *mockAIProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// memProjects is an in-memory ProjectRepository.
type memProjects struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*models.Project
	err      error
	now      time.Time
}

func newMemProjects() *memProjects {
	return &memProjects{
		projects: make(map[uuid.UUID]*models.Project),
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memProjects) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *memProjects) List(limit int) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memProjects) FindByID(id uuid.UUID) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProjects) Create(p *models.Project) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	cp := *p
	cp.ID = uuid.New()
	cp.CreatedAt = m.tick()
	cp.UpdatedAt = cp.CreatedAt
	m.projects[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memProjects) Update(p *models.Project) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	existing, ok := m.projects[p.ID]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Views = existing.Views
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = m.tick()
	m.projects[p.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memProjects) IncrementViews(id uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	p, ok := m.projects[id]
	if !ok {
		return 0, nil
	}
	p.Views++
	return p.Views, nil
}

func (m *memProjects) Delete(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.projects[id]; !ok {
		return false, nil
	}
	delete(m.projects, id)
	return true, nil
}

func (m *memProjects) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return len(m.projects), nil
}

// memLogs is an in-memory LogRepository.
type memLogs struct {
	mu      sync.Mutex
	entries []models.GenerationLog
	err     error
}

func (m *memLogs) Log(entry *models.GenerationLog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := *entry
	e.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, e)
}

func (m *memLogs) Recent(limit int) ([]models.GenerationLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.GenerationLog, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *memLogs) Stats() (*models.GenerationStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	s := &models.GenerationStats{Total: len(m.entries)}
	var sum float64
	for _, e := range m.entries {
		if e.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
		sum += e.GenerationTime
	}
	if s.Total > 0 {
		s.AvgGenerationTime = sum / float64(s.Total)
	}
	return s, nil
}

// memCache is an in-memory ProjectCache that records invalidations.
type memCache struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]models.Project
	hits        int
	invalidated []uuid.UUID
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[uuid.UUID]models.Project)}
}

func (c *memCache) Get(_ context.Context, id uuid.UUID) (*models.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	c.hits++
	return &p, true
}

func (c *memCache) Set(_ context.Context, p *models.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[p.ID] = *p
}

func (c *memCache) Invalidate(_ context.Context, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
}

// fakePublisher records uploads in memory.
type fakePublisher struct {
	mu          sync.Mutex
	uploads     map[uuid.UUID][]byte
	filenames   map[uuid.UUID]string
	unpublished []uuid.UUID
	err         error
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{
		uploads:   make(map[uuid.UUID][]byte),
		filenames: make(map[uuid.UUID]string),
	}
}

func (f *fakePublisher) Publish(_ context.Context, id uuid.UUID, filename string, html []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.uploads[id] = html
	f.filenames[id] = filename
	return "https://cdn.example.com/projects/" + id.String() + ".html", nil
}

func (f *fakePublisher) Unpublish(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unpublished = append(f.unpublished, id)
	return f.err
}

var errStoreDown = errors.New("connection refused")

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	api       *API
	router    chi.Router
	provider  *mockAIProvider
	registry  *ai.Registry
	projects  *memProjects
	logs      *memLogs
	cache     *memCache
	publisher *fakePublisher
}

// envOption customizes a testEnv before the API is built.
type envOption func(*Deps)

func withoutCache() envOption { return func(d *Deps) { d.Cache = nil } }

func withoutPublisher() envOption { return func(d *Deps) { d.Publisher = nil } }

// newTestEnv builds an API over in-memory dependencies and a mock provider
// registered as the active "groq" provider.
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	provider := &mockAIProvider{name: "groq", response: "Hello from the assistant"}
	registry := ai.NewRegistry("groq", nil)
	registry.Register("groq", provider)

	env := &testEnv{
		provider:  provider,
		registry:  registry,
		projects:  newMemProjects(),
		logs:      &memLogs{},
		cache:     newMemCache(),
		publisher: newFakePublisher(),
	}

	deps := Deps{
		Generator: generator.NewService(registry),
		Provider:  registry,
		Projects:  env.projects,
		Logs:      env.logs,
		Cache:     env.cache,
		Publisher: env.publisher,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	env.api = NewAPI(deps)
	env.router = env.routes()
	return env
}

// routes mirrors the API routes registered by the router package.
func (e *testEnv) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.MaxBodySize(1 << 20))
	r.Get("/", e.api.Home)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", e.api.Health)
		r.Post("/chat", e.api.Chat)
		r.Post("/help", e.api.Help)
		r.Post("/generate-ui", e.api.GenerateUI)
		r.Post("/modify-ui", e.api.ModifyUI)
		r.Post("/prompt-preview", e.api.PromptPreview)
		r.Post("/preview", e.api.Preview)
		r.Get("/options", e.api.Options)
		r.Get("/projects", e.api.ListProjects)
		r.Post("/projects", e.api.CreateProject)
		r.Get("/projects/{id}", e.api.GetProject)
		r.Put("/projects/{id}", e.api.UpdateProject)
		r.Delete("/projects/{id}", e.api.DeleteProject)
		r.Get("/projects/{id}/export", e.api.ExportProject)
		r.Post("/projects/{id}/publish", e.api.PublishProject)
		r.Get("/logs", e.api.Logs)
		r.Get("/stats", e.api.Stats)
	})
	return r
}

// do sends a request through the router. body may be nil, a string sent
// verbatim, or any value encoded as JSON.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// seedProject stores a project directly in the in-memory repository.
func (e *testEnv) seedProject(t *testing.T, name string) *models.Project {
	t.Helper()
	p, err := e.projects.Create(&models.Project{
		Name:          name,
		Prompt:        "a " + name,
		HTMLCode:      `<nav class="navbar">Brand</nav>`,
		CSSCode:       ".navbar { color: white; }",
		JSCode:        "console.log('ready');",
		ComponentType: "navbar",
	})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

// decodeBody decodes a JSON response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// expectStatus fails the test when the recorder has an unexpected status.
func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

// expectJSON checks the JSON content type set by writeJSON.
func expectJSON(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q, want JSON", ct)
	}
}
