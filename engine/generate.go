package engine

import (
	"context"

	"github.com/voyago/tripagent/errors"
)

type (
	// GenerateRequest describes one chat-style generation call: a system
	// instruction, a user prompt, a provider-prefixed model name and an
	// output token budget.
	GenerateRequest struct {
		System    string
		Prompt    string
		Model     string
		MaxTokens int64
	}
)

// Generate issues a single blocking generation call and returns the raw
// generated text. Failures are wrapped and propagated; no retry is attempted.
func (e *Engine) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	if req == nil {
		return "", errors.Wrapf(errors.ErrInvalidParams, "request is nil")
	}
	if req.Prompt == "" {
		return "", errors.Wrapf(errors.ErrInvalidParams, "prompt is empty")
	}

	model := req.Model
	if model == "" {
		model = e.conf.GenerationModel
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = e.conf.MaxTokens
	}

	provider, name, err := splitModelName(model)
	if err != nil {
		return "", err
	}

	e.logger.Debug("generating", "provider", provider, "model", name, "maxTokens", maxTokens)

	switch provider {
	case ProviderOpenAI:
		return e.generateOpenAI(ctx, name, req.System, req.Prompt, maxTokens)
	case ProviderAnthropic:
		return e.generateAnthropic(ctx, name, req.System, req.Prompt, maxTokens)
	default:
		return "", errors.Wrapf(errors.ErrInvalidParams, "unknown model provider %q", provider)
	}
}
