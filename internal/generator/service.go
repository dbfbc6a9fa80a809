// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator turns chat messages and UI requests into model prompts
// and reshapes model replies into HTML, CSS and JS fields. The prompt tables
// are read-only package values, so every function here is safe for
// concurrent use.
package generator

import (
	"context"
	"log/slog"

	"flexiui/internal/ai"
)

// Sampling parameters for each kind of request.
var (
	chatOptions     = ai.CompletionOptions{Temperature: 0.7, MaxTokens: 1000}
	generateOptions = ai.CompletionOptions{Temperature: 0.8, MaxTokens: 2000}
	pingOptions     = ai.CompletionOptions{MaxTokens: 10}
)

// ErrorPlaceholderHTML is returned in place of generated markup when the
// completion call fails.
const ErrorPlaceholderHTML = "<p>Error generating code</p>"

const assistantSystemPrompt = `You are FlexiUI Assistant, a helpful AI that helps users create UI components.

Your capabilities:
- Generate HTML, CSS, and JavaScript code
- Answer questions about UI design
- Help with FlexiUI software usage
- Provide code examples and best practices

Guidelines:
- Be friendly and helpful
- Give clear, concise answers
- When providing code, format it properly
- If user asks to create something, suggest they use the "Generate UI" feature`

const codeSystemPrompt = `You are an expert frontend developer.
Generate clean, modern, and responsive HTML/CSS/JS code.

IMPORTANT: Return ONLY valid JSON in this exact format:
{
  "html": "your html code here",
  "css": "your css code here",
  "js": "your javascript code here (or empty string if not needed)"
}

Do not include any explanations, just the JSON.`

// Completer is the completion capability the service depends on.
// *ai.Registry satisfies it.
type Completer interface {
	Complete(ctx context.Context, messages []ai.Message, opts ai.CompletionOptions) (string, error)
}

// Service runs chat and generation requests against a Completer. Each call
// makes exactly one completion round trip and never retries.
type Service struct {
	completer Completer
}

// NewService creates a Service backed by the given completer.
func NewService(c Completer) *Service {
	return &Service{completer: c}
}

// Chat answers a user message in the context of the prior history. A failed
// completion is reported as text prefixed with "Error: ".
func (s *Service) Chat(ctx context.Context, userText string, history []ai.Message) string {
	messages := make([]ai.Message, 0, len(history)+2)
	messages = append(messages, ai.Message{Role: ai.RoleSystem, Content: assistantSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, ai.Message{Role: ai.RoleUser, Content: userText})

	reply, err := s.completer.Complete(ctx, messages, chatOptions)
	if err != nil {
		slog.Error("chat completion failed", "error", err)
		return "Error: " + err.Error()
	}
	return reply
}

// Help answers a free-form question using the help prompt.
func (s *Service) Help(ctx context.Context, question string) string {
	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: assistantSystemPrompt},
		{Role: ai.RoleUser, Content: BuildHelpPrompt(question)},
	}

	reply, err := s.completer.Complete(ctx, messages, chatOptions)
	if err != nil {
		slog.Error("help completion failed", "error", err)
		return "Error: " + err.Error()
	}
	return reply
}

// GenerateComponent asks the model for a new component and normalizes the
// reply. On completion failure the result carries Error and placeholder HTML.
func (s *Service) GenerateComponent(ctx context.Context, userText, componentType string) GeneratedCode {
	return s.generate(ctx, BuildGenerationPrompt(userText, componentType))
}

// ModifyComponent asks the model to rewrite current according to request.
// The result is a new value; current is left untouched.
func (s *Service) ModifyComponent(ctx context.Context, current GeneratedCode, request string) GeneratedCode {
	return s.generate(ctx, BuildModificationPrompt(current, request))
}

func (s *Service) generate(ctx context.Context, prompt string) GeneratedCode {
	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: codeSystemPrompt},
		{Role: ai.RoleUser, Content: prompt},
	}

	reply, err := s.completer.Complete(ctx, messages, generateOptions)
	if err != nil {
		slog.Error("code generation failed", "error", err)
		return GeneratedCode{
			HTML:  ErrorPlaceholderHTML,
			Error: err.Error(),
		}
	}
	return Normalize(reply)
}

// Ping checks that the completion capability answers at all.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.completer.Complete(ctx, []ai.Message{
		{Role: ai.RoleUser, Content: "Say 'hello' if you're working!"},
	}, pingOptions)
	return err
}
