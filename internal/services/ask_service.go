package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sellerscope_backend/internal/ai"
	"sellerscope_backend/internal/models"
)

// ErrAINotConfigured is returned when no LLM API key is configured.
var ErrAINotConfigured = errors.New("ai provider not configured")

// DefaultTimeRange is used when an ask request does not name one.
const DefaultTimeRange = "30d"

// AskService answers natural-language questions about the seller's data.
type AskService interface {
	Ask(ctx context.Context, req models.AskRequest) (*models.AIResponse, error)
}

type askService struct {
	insights InsightsService
	client   *ai.Client // nil when no API key is configured
}

// NewAskService creates a new instance of AskService. A nil client marks the
// feature as unconfigured rather than broken.
func NewAskService(insights InsightsService, client *ai.Client) AskService {
	return &askService{insights: insights, client: client}
}

func (s *askService) Ask(ctx context.Context, req models.AskRequest) (*models.AIResponse, error) {
	if s.client == nil {
		return nil, ErrAINotConfigured
	}

	timeRange := req.TimeRange
	if timeRange == "" {
		timeRange = DefaultTimeRange
	}

	payload, err := s.insights.GetInsights(ctx, timeRange)
	if err != nil {
		return nil, err
	}

	// Pretty-printed so the model reads the payload as a structured block.
	insightsJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing insights payload: %w", err)
	}

	answer, err := s.client.Ask(ctx, string(insightsJSON), req.Question, req.Language)
	if err != nil {
		return nil, fmt.Errorf("answering question: %w", err)
	}
	return answer, nil
}
