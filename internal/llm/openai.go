package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface for OpenAI.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if OpenAI is available.
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	// Try a simple request to check availability
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Summarize turns aggregate sentiment data into a market brief using OpenAI.
func (p *OpenAIProvider) Summarize(ctx context.Context, req BriefRequest) (*Brief, error) {
	prompt := buildBriefPrompt(req)

	response, err := p.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate brief: %w", err)
	}

	var brief Brief
	if err := parseJSONResponse(response, &brief); err != nil {
		return nil, fmt.Errorf("failed to parse brief response: %w", err)
	}

	return &brief, nil
}

// complete sends a prompt to OpenAI and returns the response.
func (p *OpenAIProvider) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: briefSystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
			MaxTokens:   2000,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
