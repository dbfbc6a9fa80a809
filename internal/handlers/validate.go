package handlers

import (
	"strings"
	"unicode/utf8"

	"flexiui/internal/ai"
	"flexiui/internal/models"
)

// Validation limits for request fields.
const (
	maxMessageLen      = 10_000
	maxHistoryLen      = 50
	maxPromptLen       = 5_000
	maxModificationLen = 5_000
	maxCodeLen         = 200_000
)

// validateChat checks a chat request and returns the first error found.
func validateChat(message string, history []ai.Message) string {
	if strings.TrimSpace(message) == "" {
		return "Please provide a message"
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	if len(history) > maxHistoryLen {
		return "Conversation history is too long (max 50 messages)."
	}
	for _, m := range history {
		if !ai.ValidRole(m.Role) {
			return "Invalid role in conversation history: " + m.Role
		}
	}
	return ""
}

// validatePrompt checks a generation prompt.
func validatePrompt(prompt string) string {
	if strings.TrimSpace(prompt) == "" {
		return "Please provide a prompt"
	}
	if utf8.RuneCountInString(prompt) > maxPromptLen {
		return "Prompt is too long (max 5,000 characters)."
	}
	return ""
}

// validateModification checks a modify-ui request.
func validateModification(html, css, js, modification string) string {
	if strings.TrimSpace(modification) == "" {
		return "Please provide a modification"
	}
	if utf8.RuneCountInString(modification) > maxModificationLen {
		return "Modification is too long (max 5,000 characters)."
	}
	if html == "" && css == "" && js == "" {
		return "Please provide the current code"
	}
	if len(html)+len(css)+len(js) > maxCodeLen {
		return "Current code is too large."
	}
	return ""
}

// validateProject normalizes p and checks it for storage.
func validateProject(p *models.Project) string {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err.Error()
	}
	if len(p.HTMLCode)+len(p.CSSCode)+len(p.JSCode) > maxCodeLen {
		return "code is too large"
	}
	return ""
}
