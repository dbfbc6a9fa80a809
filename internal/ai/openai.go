// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// Default endpoints for the OpenAI-compatible providers.
const (
	defaultOpenAIBaseURL  = "https://api.openai.com/v1"
	defaultGroqBaseURL    = "https://api.groq.com/openai/v1"
	defaultMistralBaseURL = "https://api.mistral.ai/v1"
)

// chatProvider implements the Provider interface for any service speaking
// the OpenAI chat completions API (POST {base}/chat/completions). Groq,
// OpenAI and Mistral all share it and differ only in name and base URL.
type chatProvider struct {
	name    string
	model   string
	baseURL string
	client  *openai.Client
}

func newChatProvider(name string, cfg ProviderConfig, defaultBaseURL string) *chatProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	config.HTTPClient = &http.Client{Timeout: requestTimeout}

	return &chatProvider{
		name:    name,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

// newOpenAI creates a new OpenAI provider.
func newOpenAI(cfg ProviderConfig) *chatProvider {
	return newChatProvider("openai", cfg, defaultOpenAIBaseURL)
}

// newGroq creates a Groq provider. Groq exposes an OpenAI-compatible API.
func newGroq(cfg ProviderConfig) *chatProvider {
	return newChatProvider("groq", cfg, defaultGroqBaseURL)
}

// newMistral creates a Mistral provider. Mistral exposes an OpenAI-compatible API.
func newMistral(cfg ProviderConfig) *chatProvider {
	return newChatProvider("mistral", cfg, defaultMistralBaseURL)
}

func (p *chatProvider) Name() string { return p.name }

// Complete sends a chat completion request and returns the first choice's text.
func (p *chatProvider) Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices returned", p.name)
	}

	return resp.Choices[0].Message.Content, nil
}
