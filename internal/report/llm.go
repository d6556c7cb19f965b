package report

import (
	"context"
	"errors"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPersona = "You are Adenola Adegbesan, The AI Maverick - a strategic AI clarity coach and business advisor. " +
	"Generate comprehensive, actionable AI strategy reports that provide clear direction and strategic insights for business leaders."

const (
	completionMaxTokens   = 3000
	completionTemperature = 0.7
)

// CompletionProvider is the capability the composer needs from a hosted
// model: one prompt in, one document out. Failures are recovered locally
// by the fallback render and never reach callers.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AnthropicMessager is the slice of the Anthropic client the provider
// uses, narrowed so tests can substitute a fake.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicProvider drafts reports through the Anthropic Messages API
// with the fixed coach persona.
type AnthropicProvider struct {
	messages AnthropicMessager
}

func NewAnthropicProvider(apiKey string) (*AnthropicProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("anthropic api key not configured")
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{messages: &c.Messages}, nil
}

func (p *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   completionMaxTokens,
		System:      []anthropic.TextBlockParam{{Text: systemPersona}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(completionTemperature),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("empty completion response")
	}
	return text, nil
}
