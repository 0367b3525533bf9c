package engine

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/voyago/tripagent/errors"
)

func (e *Engine) generateAnthropic(ctx context.Context, model, system, prompt string, maxTokens int64) (string, error) {
	if e.conf.AnthropicAPIKey == "" {
		return "", errors.Wrapf(errors.ErrNoCredential, "ANTHROPIC_API_KEY is required for model %q", model)
	}

	client := anthropic.NewClient(option.WithAPIKey(e.conf.AnthropicAPIKey))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", errors.Wrapf(err, "anthropic message failed for model %q", model)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.Errorf("anthropic returned no text content for model %q", model)
	}

	return sb.String(), nil
}
