package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"sellerscope_backend/internal/models"
)

const (
	defaultModel    = openai.GPT4Turbo
	maxAnswerTokens = 1000
	temperature     = 0.7
)

// Completer is the slice of the OpenAI client the Q&A flow uses, extracted so
// tests can substitute a canned completion.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client answers seller questions against an insights payload through a
// chat-completion API.
type Client struct {
	completer Completer
	model     string
}

// NewClient builds a Client backed by the OpenAI API.
func NewClient(apiKey string) *Client {
	return &Client{completer: openai.NewClient(apiKey), model: defaultModel}
}

// NewClientWithCompleter builds a Client over a custom completer (tests).
func NewClientWithCompleter(c Completer) *Client {
	return &Client{completer: c, model: defaultModel}
}

// Ask sends the question with the insights payload as data context and returns
// the schema-validated structured answer.
func (c *Client) Ask(ctx context.Context, insightsJSON, question, language string) (*models.AIResponse, error) {
	resp, err := c.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt(language)},
			{Role: openai.ChatMessageRoleUser, Content: UserPrompt(insightsJSON, question)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: temperature,
		MaxTokens:   maxAnswerTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: completion returned no choices", ErrInvalidResponse)
	}

	return ParseResponse([]byte(resp.Choices[0].Message.Content))
}
