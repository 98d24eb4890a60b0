// Package chat backs the site's assistant widget with a hosted language model.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("chat: assistant not configured")

// Message is one turn of the widget's history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options configures the assistant client.
type Options struct {
	APIKey     string
	BaseURL    string // override for tests
	Model      string
	SystemRole string
	MaxTokens  int
}

// Client forwards widget histories to the model with a fixed system prompt
// and a short reply cap.
type Client struct {
	api        *openai.Client
	model      string
	systemRole string
	maxTokens  int
}

// NewClient builds the assistant client, or nil when no key is configured.
func NewClient(opts Options) *Client {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	model := opts.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 250
	}
	return &Client{
		api:        openai.NewClientWithConfig(cfg),
		model:      model,
		systemRole: opts.SystemRole,
		maxTokens:  maxTokens,
	}
}

// Reply sends the history prefixed by the system prompt and returns the
// generated text.
func (c *Client) Reply(ctx context.Context, history []Message) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: c.systemRole,
	})
	for _, m := range history {
		role := m.Role
		if role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat: completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat: model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
