package engine

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/voyago/tripagent/errors"
)

func (e *Engine) generateOpenAI(ctx context.Context, model, system, prompt string, maxTokens int64) (string, error) {
	if e.conf.OpenAIAPIKey == "" {
		return "", errors.Wrapf(errors.ErrNoCredential, "OPENAI_API_KEY is required for model %q", model)
	}

	client := openai.NewClient(option.WithAPIKey(e.conf.OpenAIAPIKey))

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(model),
		Messages:  messages,
		MaxTokens: openai.Int(maxTokens),
	})
	if err != nil {
		return "", errors.Wrapf(err, "openai chat completion failed for model %q", model)
	}

	if len(resp.Choices) == 0 {
		return "", errors.Errorf("openai returned no choices for model %q", model)
	}

	return resp.Choices[0].Message.Content, nil
}
