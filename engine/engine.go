package engine

import (
	"log/slog"
	"strings"

	"github.com/voyago/tripagent/config"
	"github.com/voyago/tripagent/errors"
)

type (
	Engine struct {
		logger *slog.Logger
		conf   *config.ModelConfig
	}
)

func NewEngine(logger *slog.Logger, conf *config.ModelConfig) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger: logger,
		conf:   conf,
	}
}

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// splitModelName resolves a provider-prefixed model name. A bare model name
// defaults to the openai provider, matching "openai/<name>".
func splitModelName(model string) (provider, name string, err error) {
	if model == "" {
		return "", "", errors.Wrapf(errors.ErrInvalidParams, "model name is empty")
	}

	pieces := strings.SplitN(model, "/", 2)
	if len(pieces) == 1 {
		return ProviderOpenAI, pieces[0], nil
	}

	switch pieces[0] {
	case ProviderOpenAI, ProviderAnthropic:
		return pieces[0], pieces[1], nil
	default:
		return "", "", errors.Wrapf(errors.ErrInvalidParams, "unknown model provider %q", pieces[0])
	}
}
