// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"flexiui/internal/generator"
	"flexiui/internal/models"
	"flexiui/internal/preview"
)

// generateRequest is the body of POST /api/generate-ui and
// POST /api/prompt-preview.
type generateRequest struct {
	Prompt        string `json:"prompt"`
	ComponentType string `json:"component_type"`
}

func (req *generateRequest) componentType() string {
	ct := strings.ToLower(strings.TrimSpace(req.ComponentType))
	if ct == "" {
		return models.DefaultComponentType
	}
	return ct
}

// GenerateUI generates a component from a prompt and records the attempt in
// the generation log.
func (a *API) GenerateUI(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validatePrompt(req.Prompt); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	componentType := req.componentType()
	theme := generator.DetectTheme(req.Prompt)

	start := time.Now()
	code := a.gen.GenerateComponent(r.Context(), req.Prompt, componentType)
	elapsed := time.Since(start).Seconds()

	a.logs.Log(&models.GenerationLog{
		Prompt:         req.Prompt,
		ComponentType:  componentType,
		Theme:          theme,
		Provider:       a.provider.ActiveName(),
		Success:        code.Error == "",
		ErrorMessage:   code.Error,
		GenerationTime: elapsed,
	})

	slog.Info("component generated",
		"component_type", componentType,
		"theme", theme,
		"success", code.Error == "",
		"seconds", elapsed,
	)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"code":    code,
		"prompt":  req.Prompt,
		"theme":   theme,
	})
}

// modifyRequest is the body of POST /api/modify-ui.
type modifyRequest struct {
	CurrentCode  generator.GeneratedCode `json:"current_code"`
	Modification string                  `json:"modification"`
}

// ModifyUI rewrites existing component code according to a request.
func (a *API) ModifyUI(w http.ResponseWriter, r *http.Request) {
	var req modifyRequest
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	cur := req.CurrentCode
	if msg := validateModification(cur.HTML, cur.CSS, cur.JS, req.Modification); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	code := a.gen.ModifyComponent(r.Context(), cur, req.Modification)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"code":    code,
	})
}

// PromptPreview returns the prompt that would be sent for a generation
// request without calling the model.
func (a *API) PromptPreview(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validatePrompt(req.Prompt); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	componentType := req.componentType()
	writeJSON(w, http.StatusOK, map[string]any{
		"prompt":         generator.BuildGenerationPrompt(req.Prompt, componentType),
		"theme":          generator.DetectTheme(req.Prompt),
		"component_type": componentType,
	})
}

// previewRequest is the body of POST /api/preview.
type previewRequest struct {
	Title         string                  `json:"title"`
	ComponentType string                  `json:"component_type"`
	Code          generator.GeneratedCode `json:"code"`
}

// Preview renders unsaved code into a standalone HTML document.
func (a *API) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	c := req.Code
	if len(c.HTML)+len(c.CSS)+len(c.JS) > maxCodeLen {
		writeError(w, http.StatusBadRequest, "Code is too large.")
		return
	}

	doc, err := preview.Render(preview.NewDocument(strings.TrimSpace(req.Title), req.ComponentType, c))
	if err != nil {
		slog.Error("render preview", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render preview.")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
