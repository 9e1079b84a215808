package openrouter

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

var ErrNotConfigured = errors.New("openrouter API key not configured")

// IChat is the extraction model behind text and receipt parsing. OpenRouter
// speaks the OpenAI chat completion wire format, so the stock client works
// with a swapped base URL.
type IChat interface {
	Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error)
}

type chatClient struct {
	client *openai.Client
	model  string
}

func NewClient() (IChat, error) {
	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	baseURL := os.Getenv("OPENROUTER_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := os.Getenv("OPENROUTER_MODEL")
	if model == "" {
		model = "deepseek/deepseek-chat-v3-0324:free"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &chatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (c *chatClient) Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userMessage,
				},
			},
			Temperature: 0.1,
		},
	)

	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openrouter")
	}

	return resp.Choices[0].Message.Content, nil
}
