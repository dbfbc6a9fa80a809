// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// claudeDefaultMaxTokens is used when the caller sets no limit; the
// Messages API requires max_tokens on every request.
const claudeDefaultMaxTokens = 4096

// anthropicVersion pins the Messages API version header.
const anthropicVersion = "2023-06-01"

// claudeProvider implements the Provider interface using the Anthropic
// Messages API (POST /v1/messages).
type claudeProvider struct {
	config ProviderConfig
	client *http.Client
}

// newClaude creates a new Anthropic Claude provider.
func newClaude(cfg ProviderConfig) *claudeProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	return &claudeProvider{
		config: cfg,
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (p *claudeProvider) Name() string { return "claude" }

// Complete sends the conversation to the Messages API. System messages are
// lifted into the top-level system field, which is where Claude expects them.
func (p *claudeProvider) Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error) {
	body := claudeRequest{
		Model:     p.config.Model,
		MaxTokens: opts.MaxTokens,
	}
	if body.MaxTokens <= 0 {
		body.MaxTokens = claudeDefaultMaxTokens
	}
	if opts.Temperature > 0 {
		t := opts.Temperature
		body.Temperature = &t
	}

	var system []string
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		body.Messages = append(body.Messages, claudeMessage{Role: m.Role, Content: m.Content})
	}
	body.System = strings.Join(system, "\n\n")

	var result claudeResponse
	err := postJSON(ctx, p.client, "claude", p.config.BaseURL+"/v1/messages", map[string]string{
		"x-api-key":         p.config.APIKey,
		"anthropic-version": anthropicVersion,
	}, body, &result)
	if err != nil {
		return "", err
	}
	if result.StopReason == "max_tokens" {
		slog.Debug("claude reply truncated at max_tokens", "max_tokens", body.MaxTokens)
	}

	for _, block := range result.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", errors.New("claude: no text content in response")
}

// --- Anthropic Messages API types ---

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature *float64        `json:"temperature,omitempty"`
	System      string          `json:"system,omitempty"`
	Messages    []claudeMessage `json:"messages"`
}

type claudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeResponse struct {
	Content    []claudeContentBlock `json:"content"`
	StopReason string               `json:"stop_reason"`
}
