package handlers

import (
	"strings"
	"testing"

	"flexiui/internal/ai"
	"flexiui/internal/models"
)

func TestValidateChat(t *testing.T) {
	tooMany := make([]ai.Message, maxHistoryLen+1)
	for i := range tooMany {
		tooMany[i] = ai.Message{Role: ai.RoleUser, Content: "hi"}
	}

	tests := []struct {
		name      string
		message   string
		history   []ai.Message
		wantError bool
	}{
		{"valid", "hello", nil, false},
		{"valid with history", "hello", []ai.Message{
			{Role: ai.RoleUser, Content: "hi"},
			{Role: ai.RoleAssistant, Content: "hello!"},
		}, false},
		{"empty message", "", nil, true},
		{"whitespace message", "   ", nil, true},
		{"message too long", strings.Repeat("a", maxMessageLen+1), nil, true},
		{"invalid role", "hello", []ai.Message{{Role: "robot", Content: "x"}}, true},
		{"empty role", "hello", []ai.Message{{Content: "x"}}, true},
		{"history too long", "hello", tooMany, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateChat(tt.message, tt.history)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidatePrompt(t *testing.T) {
	tests := []struct {
		name      string
		prompt    string
		wantError bool
	}{
		{"valid", "a dark navbar", false},
		{"empty", "", true},
		{"whitespace", "\n\t ", true},
		{"at limit", strings.Repeat("é", maxPromptLen), false},
		{"too long", strings.Repeat("a", maxPromptLen+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validatePrompt(tt.prompt)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateModification(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		css          string
		js           string
		modification string
		wantError    bool
	}{
		{"valid", "<div></div>", "", "", "make it red", false},
		{"css only", "", "a{}", "", "make it red", false},
		{"no modification", "<div></div>", "", "", " ", true},
		{"no code", "", "", "", "make it red", true},
		{"modification too long", "<div></div>", "", "", strings.Repeat("a", maxModificationLen+1), true},
		{"code too large", strings.Repeat("a", maxCodeLen), "b", "", "make it red", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateModification(tt.html, tt.css, tt.js, tt.modification)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateProject(t *testing.T) {
	t.Run("normalizes before validating", func(t *testing.T) {
		p := &models.Project{Name: "  Navbar  ", ComponentType: " NAVBAR "}
		if msg := validateProject(p); msg != "" {
			t.Fatalf("unexpected error: %s", msg)
		}
		if p.Name != "Navbar" || p.ComponentType != "navbar" {
			t.Errorf("got name %q type %q", p.Name, p.ComponentType)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		if msg := validateProject(&models.Project{Name: "  "}); msg == "" {
			t.Error("expected an error for a blank name")
		}
	})

	t.Run("code too large", func(t *testing.T) {
		p := &models.Project{Name: "Big", HTMLCode: strings.Repeat("a", maxCodeLen+1)}
		if msg := validateProject(p); msg == "" {
			t.Error("expected an error for oversized code")
		}
	})
}
