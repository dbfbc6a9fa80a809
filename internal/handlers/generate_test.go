// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"flexiui/internal/generator"
)

func TestGenerateUI(t *testing.T) {
	t.Run("json reply", func(t *testing.T) {
		env := newTestEnv(t)
		env.provider.response = "```json\n{\"html\": \"<nav></nav>\", \"css\": \"nav{}\", \"js\": \"\"}\n```"

		rec := env.do(t, http.MethodPost, "/api/generate-ui", map[string]string{
			"prompt":         "A neon navbar",
			"component_type": "Navbar",
		})
		expectStatus(t, rec, http.StatusOK)
		expectJSON(t, rec)

		body := decodeBody(t, rec)
		if body["success"] != true || body["prompt"] != "A neon navbar" || body["theme"] != "gaming" {
			t.Errorf("unexpected body: %v", body)
		}
		code, ok := body["code"].(map[string]any)
		if !ok {
			t.Fatalf("code missing: %v", body)
		}
		if code["html"] != "<nav></nav>" || code["css"] != "nav{}" || code["js"] != "" {
			t.Errorf("code = %v", code)
		}
		if _, hasErr := code["error"]; hasErr {
			t.Error("successful generation should not carry an error")
		}

		if len(env.logs.entries) != 1 {
			t.Fatalf("logged %d entries, want 1", len(env.logs.entries))
		}
		entry := env.logs.entries[0]
		if !entry.Success || entry.ComponentType != "navbar" || entry.Theme != "gaming" || entry.Provider != "groq" {
			t.Errorf("unexpected log entry: %+v", entry)
		}
		if entry.GenerationTime < 0 {
			t.Errorf("generation time = %v", entry.GenerationTime)
		}
	})

	t.Run("prompt carries the component template", func(t *testing.T) {
		env := newTestEnv(t)
		env.provider.response = `{"html": "<footer></footer>"}`

		env.do(t, http.MethodPost, "/api/generate-ui", map[string]string{
			"prompt":         "a simple footer",
			"component_type": "footer",
		})
		sent := env.provider.calls[0][1].Content
		want := generator.BuildGenerationPrompt("a simple footer", "footer")
		if sent != want {
			t.Errorf("prompt sent to provider differs from BuildGenerationPrompt")
		}
	})

	t.Run("fenced blocks fallback", func(t *testing.T) {
		env := newTestEnv(t)
		env.provider.response = "Here you go:\n```html\n<button>Go</button>\n```\n```css\nbutton { color: red; }\n```"

		body := decodeBody(t, env.do(t, http.MethodPost, "/api/generate-ui", map[string]string{"prompt": "a red button"}))
		code := body["code"].(map[string]any)
		if code["html"] != "<button>Go</button>" || code["css"] != "button { color: red; }" || code["js"] != "" {
			t.Errorf("code = %v", code)
		}
		if env.logs.entries[0].ComponentType != "general" {
			t.Errorf("component type = %q, want general", env.logs.entries[0].ComponentType)
		}
	})

	t.Run("completion failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.provider.err = errors.New("upstream timeout")

		rec := env.do(t, http.MethodPost, "/api/generate-ui", map[string]string{"prompt": "a card"})
		expectStatus(t, rec, http.StatusOK)

		body := decodeBody(t, rec)
		code := body["code"].(map[string]any)
		if body["success"] != true {
			t.Errorf("success = %v", body["success"])
		}
		if code["html"] != generator.ErrorPlaceholderHTML || code["css"] != "" || code["js"] != "" {
			t.Errorf("code = %v", code)
		}
		if !strings.Contains(code["error"].(string), "upstream timeout") {
			t.Errorf("error = %v", code["error"])
		}

		entry := env.logs.entries[0]
		if entry.Success || !strings.Contains(entry.ErrorMessage, "upstream timeout") {
			t.Errorf("unexpected log entry: %+v", entry)
		}
	})

	t.Run("missing prompt", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, http.MethodPost, "/api/generate-ui", map[string]string{"component_type": "card"})
		expectStatus(t, rec, http.StatusBadRequest)
		if body := decodeBody(t, rec); body["error"] != "Please provide a prompt" {
			t.Errorf("error = %v", body["error"])
		}
		if len(env.logs.entries) != 0 || env.provider.callCount() != 0 {
			t.Error("invalid requests must not call the provider or write a log")
		}
	})
}

func TestModifyUI(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		env.provider.response = `{"html": "<button class=\"big\">Go</button>", "css": ".big{}", "js": ""}`

		rec := env.do(t, http.MethodPost, "/api/modify-ui", map[string]any{
			"current_code": map[string]string{"html": "<button>Go</button>", "css": "", "js": ""},
			"modification": "make it bigger",
		})
		expectStatus(t, rec, http.StatusOK)

		body := decodeBody(t, rec)
		code := body["code"].(map[string]any)
		if body["success"] != true || code["css"] != ".big{}" {
			t.Errorf("unexpected body: %v", body)
		}

		sent := env.provider.calls[0][1].Content
		if !strings.Contains(sent, "<button>Go</button>") || !strings.Contains(sent, "make it bigger") {
			t.Errorf("modification prompt missing current code or request:\n%s", sent)
		}
		if len(env.logs.entries) != 0 {
			t.Error("modifications are not logged as generations")
		}
	})

	t.Run("failure keeps the placeholder shape", func(t *testing.T) {
		env := newTestEnv(t)
		env.provider.err = errors.New("boom")

		body := decodeBody(t, env.do(t, http.MethodPost, "/api/modify-ui", map[string]any{
			"current_code": map[string]string{"html": "<p>x</p>"},
			"modification": "bold",
		}))
		code := body["code"].(map[string]any)
		if code["html"] != generator.ErrorPlaceholderHTML || code["error"] != "boom" {
			t.Errorf("code = %v", code)
		}
	})

	for _, tt := range []struct {
		name string
		body any
	}{
		{"missing modification", map[string]any{"current_code": map[string]string{"html": "<p></p>"}}},
		{"missing code", map[string]any{"modification": "bold"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			expectStatus(t, env.do(t, http.MethodPost, "/api/modify-ui", tt.body), http.StatusBadRequest)
		})
	}
}

func TestPromptPreview(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/prompt-preview", map[string]string{
		"prompt":         "a corporate hero",
		"component_type": "HERO",
	})
	expectStatus(t, rec, http.StatusOK)

	body := decodeBody(t, rec)
	if body["theme"] != "corporate" || body["component_type"] != "hero" {
		t.Errorf("unexpected body: %v", body)
	}
	if body["prompt"] != generator.BuildGenerationPrompt("a corporate hero", "hero") {
		t.Errorf("prompt differs from BuildGenerationPrompt")
	}
	if env.provider.callCount() != 0 {
		t.Error("prompt preview must not call the provider")
	}

	t.Run("missing prompt", func(t *testing.T) {
		expectStatus(t, env.do(t, http.MethodPost, "/api/prompt-preview", map[string]string{}), http.StatusBadRequest)
	})
}

func TestPreview(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/preview", map[string]any{
		"title": "Neon Button",
		"code": map[string]string{
			"html": `<button class="neon">Go</button>`,
			"css":  ".neon { color: lime; }",
			"js":   "console.log('hi');",
		},
	})
	expectStatus(t, rec, http.StatusOK)

	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	page := rec.Body.String()
	for _, want := range []string{
		"<title>Neon Button</title>",
		`<button class="neon">Go</button>`,
		".neon { color: lime; }",
		"console.log('hi');",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("preview missing %q", want)
		}
	}

	t.Run("invalid JSON", func(t *testing.T) {
		expectStatus(t, env.do(t, http.MethodPost, "/api/preview", "not json"), http.StatusBadRequest)
	})
}
