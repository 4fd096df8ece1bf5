// Package enhance rewrites listing descriptions through an LLM chat
// completion API.
package enhance

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	apperrors "clearplot/internal/errors"
)

const rewriteInstruction = "Rewrite the following property description to be more detailed yet short like readable max to max 5 lines, professional, and appealing. Focus on key features and location, and make it engaging for potential buyers or renters. Avoid adding any unnecessary feedback, commentary, or filler text. Property Description: "

// Enhancer rewrites free-text property descriptions.
type Enhancer struct {
	client *openai.Client
	model  string
}

// New creates an Enhancer. An empty apiKey yields a client whose calls
// fail, which the handler maps to a 502; submission never depends on it.
func New(apiKey, model string) *Enhancer {
	return &Enhancer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Rewrite returns an enhanced version of the given description.
func (e *Enhancer) Rewrite(ctx context.Context, prompt string) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0.7,
		MaxTokens:   300,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: rewriteInstruction + prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrEnhancementUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", apperrors.ErrEnhancementUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
