package providers

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Completer produces plan text from a prompt
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// OpenAI is a thin wrapper over the chat-completion API
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a completer using the given API key and model
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends a prompt and returns the first message content
func (o *OpenAI) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 1200,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
