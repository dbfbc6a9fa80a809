// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"flexiui/internal/models"
	"flexiui/internal/slug"
)

// projectRequest is the body of project create and update requests.
type projectRequest struct {
	Name          string `json:"name"`
	Prompt        string `json:"prompt"`
	HTMLCode      string `json:"html_code"`
	CSSCode       string `json:"css_code"`
	JSCode        string `json:"js_code"`
	ComponentType string `json:"component_type"`
}

func (req projectRequest) project() *models.Project {
	return &models.Project{
		Name:          req.Name,
		Prompt:        req.Prompt,
		HTMLCode:      req.HTMLCode,
		CSSCode:       req.CSSCode,
		JSCode:        req.JSCode,
		ComponentType: req.ComponentType,
	}
}

// ListProjects returns saved projects, newest first.
func (a *API) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := a.projects.List(queryLimit(r, defaultProjectLimit, maxProjectLimit))
	if err != nil {
		slog.Error("list projects", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load projects.")
		return
	}
	total, err := a.projects.Count()
	if err != nil {
		slog.Error("count projects", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load projects.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"projects": projects,
		"count":    len(projects),
		"total":    total,
	})
}

// CreateProject saves a new project.
func (a *API) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	p := req.project()
	if msg := validateProject(p); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.projects.Create(p)
	if err != nil {
		slog.Error("create project", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save project.")
		return
	}

	slog.Info("project created", "id", created.ID, "name", created.Name)
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"project": created,
	})
}

// GetProject returns a single project and counts the view. The project
// body may come from the read cache; the view count always comes from the
// database.
func (a *API) GetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := a.loadProject(w, r)
	if !ok {
		return
	}

	views, err := a.projects.IncrementViews(p.ID)
	if err != nil {
		slog.Warn("increment project views", "id", p.ID, "error", err)
	} else if views > 0 {
		p.Views = views
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"project": p,
	})
}

// UpdateProject replaces the editable fields of a project.
func (a *API) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid project ID.")
		return
	}

	var req projectRequest
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	p := req.project()
	p.ID = id
	if msg := validateProject(p); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := a.projects.Update(p)
	if err != nil {
		slog.Error("update project", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update project.")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Project not found.")
		return
	}

	if a.cache != nil {
		a.cache.Invalidate(r.Context(), id)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"project": updated,
	})
}

// DeleteProject removes a project along with its cached copies and any
// published export.
func (a *API) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid project ID.")
		return
	}

	deleted, err := a.projects.Delete(id)
	if err != nil {
		slog.Error("delete project", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete project.")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Project not found.")
		return
	}

	if a.cache != nil {
		a.cache.Invalidate(r.Context(), id)
	}
	a.renderer.Invalidate(id.String())

	if a.publisher != nil {
		if err := a.publisher.Unpublish(r.Context(), id); err != nil {
			slog.Warn("unpublish deleted project", "id", id, "error", err)
		}
	}

	slog.Info("project deleted", "id", id)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// ExportProject serves the project as a standalone HTML download.
func (a *API) ExportProject(w http.ResponseWriter, r *http.Request) {
	p, ok := a.loadProject(w, r)
	if !ok {
		return
	}

	doc, err := a.renderer.RenderProject(p)
	if err != nil {
		slog.Error("export project", "id", p.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to export project.")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", slug.Filename(p.Name)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

// PublishProject uploads the exported document to object storage and
// returns its public URL.
func (a *API) PublishProject(w http.ResponseWriter, r *http.Request) {
	if a.publisher == nil {
		writeError(w, http.StatusServiceUnavailable, "Publishing is not configured.")
		return
	}

	p, ok := a.loadProject(w, r)
	if !ok {
		return
	}

	doc, err := a.renderer.RenderProject(p)
	if err != nil {
		slog.Error("render project for publish", "id", p.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render project.")
		return
	}

	url, err := a.publisher.Publish(r.Context(), p.ID, slug.Filename(p.Name), doc)
	if err != nil {
		slog.Error("publish project", "id", p.ID, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to publish project.")
		return
	}

	slog.Info("project published", "id", p.ID, "url", url)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"url":     url,
	})
}

// loadProject resolves the {id} parameter through the read cache and the
// database. On failure it writes the response and returns false.
func (a *API) loadProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	id, ok := projectID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid project ID.")
		return nil, false
	}

	if a.cache != nil {
		if p, hit := a.cache.Get(r.Context(), id); hit {
			return p, true
		}
	}

	p, err := a.projects.FindByID(id)
	if err != nil {
		slog.Error("find project", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load project.")
		return nil, false
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "Project not found.")
		return nil, false
	}

	if a.cache != nil {
		a.cache.Set(r.Context(), p)
	}
	return p, true
}

// Logs returns the most recent generation logs.
func (a *API) Logs(w http.ResponseWriter, r *http.Request) {
	logs, err := a.logs.Recent(queryLimit(r, defaultLogLimit, maxLogLimit))
	if err != nil {
		slog.Error("recent generation logs", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load logs.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"logs":  logs,
		"count": len(logs),
	})
}

// Stats returns aggregate generation statistics.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.logs.Stats()
	if err != nil {
		slog.Error("generation stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load stats.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":               stats.Total,
		"succeeded":           stats.Succeeded,
		"failed":              stats.Failed,
		"success_rate":        stats.SuccessRate(),
		"avg_generation_time": stats.AvgGenerationTime,
		"projects":            stats.Projects,
	})
}
