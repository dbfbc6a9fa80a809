// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"flexiui/internal/ai"
	"flexiui/internal/generator"
	"flexiui/internal/markdown"
)

// pingTimeout bounds the provider round trip of a deep health check.
const pingTimeout = 15 * time.Second

// Home returns the API banner with the list of endpoints.
func (a *API) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "FlexiUI Chatbot API is running! 🚀",
		"status":  "success",
		"endpoints": map[string]string{
			"chat":           "/api/chat",
			"help":           "/api/help",
			"generate":       "/api/generate-ui",
			"modify":         "/api/modify-ui",
			"prompt_preview": "/api/prompt-preview",
			"preview":        "/api/preview",
			"options":        "/api/options",
			"projects":       "/api/projects",
			"logs":           "/api/logs",
			"stats":          "/api/stats",
			"health":         "/api/health",
		},
	})
}

// Health reports whether the active provider has credentials. With
// ?deep=1 it also sends a short completion to the provider.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":        "healthy",
		"ai_configured": a.provider.Configured(),
		"provider":      a.provider.ActiveName(),
	}

	if deep := r.URL.Query().Get("deep"); deep == "1" || deep == "true" {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := a.gen.Ping(ctx); err != nil {
			slog.Warn("provider ping failed", "provider", a.provider.ActiveName(), "error", err)
			resp["status"] = "degraded"
			resp["ai_reachable"] = false
			resp["ai_error"] = err.Error()
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp["ai_reachable"] = true
	}

	writeJSON(w, http.StatusOK, resp)
}

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Message             string       `json:"message"`
	ConversationHistory []ai.Message `json:"conversation_history"`
}

// Chat answers a user message. Completion failures come back as text in
// response, never as an HTTP error.
func (a *API) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validateChat(req.Message, req.ConversationHistory); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	reply := a.gen.Chat(r.Context(), req.Message, req.ConversationHistory)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"response":      reply,
		"response_html": renderReply(reply),
		"timestamp":     float64(time.Now().UnixMicro()) / 1e6,
	})
}

// helpRequest is the body of POST /api/help.
type helpRequest struct {
	Question string `json:"question"`
}

// Help answers a question about FlexiUI or UI design.
func (a *API) Help(w http.ResponseWriter, r *http.Request) {
	var req helpRequest
	if msg := decodeJSON(r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "Please provide a question")
		return
	}
	if msg := validateChat(req.Question, nil); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	reply := a.gen.Help(r.Context(), req.Question)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"response":      reply,
		"response_html": renderReply(reply),
	})
}

// Options lists the component types and themes the generator knows.
func (a *API) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"component_types": generator.ComponentTypes(),
		"themes":          generator.Themes(),
	})
}

// renderReply converts a Markdown reply to HTML. A conversion failure
// leaves the HTML empty; the raw text is always returned alongside it.
func renderReply(reply string) string {
	out, err := markdown.ToHTML(reply)
	if err != nil {
		slog.Warn("markdown render failed", "error", err)
		return ""
	}
	return out
}
