package trip

import (
	"context"
	"log/slog"

	"github.com/voyago/tripagent/engine"
	"github.com/voyago/tripagent/errors"
	"github.com/voyago/tripagent/knowledge"
)

type (
	// Retriever serves top-k knowledge lookups. Satisfied by
	// knowledge.Service.
	Retriever interface {
		Retrieve(ctx context.Context, query string, k int) ([]knowledge.SearchResult, error)
	}

	// Generator issues one text-generation call. Satisfied by engine.Engine.
	Generator interface {
		Generate(ctx context.Context, req *engine.GenerateRequest) (string, error)
	}

	// PlanRequest carries every input of one itinerary generation. Transport
	// mode and accommodation type are plain parameters here; the interactive
	// shell gathers them and the planner stays free of console I/O.
	PlanRequest struct {
		StartDate         string
		EndDate           string
		Budget            string
		Preferences       string
		Interests         []string
		TransportMode     string
		AccommodationType string
	}

	Planner struct {
		retriever Retriever
		generator Generator
		logger    *slog.Logger
		model     string
		maxTokens int64
		topK      int
	}
)

func NewPlanner(retriever Retriever, generator Generator, logger *slog.Logger, model string, maxTokens int64, topK int) (*Planner, error) {
	if retriever == nil {
		return nil, errors.New("retriever is required")
	}
	if generator == nil {
		return nil, errors.New("generator is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		retriever: retriever,
		generator: generator,
		logger:    logger,
		model:     model,
		maxTokens: maxTokens,
		topK:      topK,
	}, nil
}

// Plan retrieves knowledge for the traveler's preferences and each interest,
// renders the retrieved records into the prompt and issues one generation
// call. It returns the raw generated itinerary text.
func (p *Planner) Plan(ctx context.Context, req *PlanRequest) (string, error) {
	if req == nil {
		return "", errors.Wrapf(errors.ErrInvalidParams, "plan request is nil")
	}
	if req.StartDate == "" || req.EndDate == "" {
		return "", errors.Wrapf(errors.ErrInvalidParams, "travel dates are required")
	}
	if _, err := Days(req.StartDate, req.EndDate); err != nil {
		return "", err
	}

	var relevant []knowledge.SearchResult
	if req.Preferences != "" {
		results, err := p.retriever.Retrieve(ctx, req.Preferences, p.topK)
		if err != nil {
			return "", errors.Wrapf(err, "failed to retrieve knowledge for preferences")
		}
		relevant = append(relevant, results...)
	}
	for _, interest := range req.Interests {
		results, err := p.retriever.Retrieve(ctx, interest, p.topK)
		if err != nil {
			return "", errors.Wrapf(err, "failed to retrieve knowledge for interest %q", interest)
		}
		relevant = append(relevant, results...)
	}

	p.logger.Info("generating itinerary",
		"dates", req.StartDate+".."+req.EndDate,
		"interests", len(req.Interests),
		"retrieved", len(relevant))

	text, err := p.generator.Generate(ctx, &engine.GenerateRequest{
		System:    systemPrompt(req),
		Prompt:    userPrompt(req, Digest(relevant)),
		Model:     p.model,
		MaxTokens: p.maxTokens,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to generate itinerary")
	}

	return text, nil
}
