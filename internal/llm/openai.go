package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 1000
)

// OpenAI is a Completer backed by the OpenAI chat-completion API.
type OpenAI struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = DefaultModel
	}
	return &OpenAI{
		client:    openai.NewClient(apiKey),
		model:     model,
		maxTokens: defaultMaxTokens,
	}
}

func (o *OpenAI) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		Messages:  messages,
		Tools:     tools,
	})
	if err != nil {
		return openai.ChatCompletionMessage{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message, nil
}
