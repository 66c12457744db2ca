package ai

import (
	"encoding/json"
	"errors"
	"fmt"

	"sellerscope_backend/internal/models"
)

// ErrInvalidResponse is returned when the LLM reply does not satisfy the
// fixed response schema.
var ErrInvalidResponse = errors.New("invalid model response")

// ParseResponse parses and validates a raw LLM reply against the response
// schema: a non-empty summary, risk/opportunity/action lists, cited numbers
// and a three-tier confidence level, plus an optional English translation of
// the same shape. Nil lists are normalized to empty so consumers never see
// JSON null.
func ParseResponse(raw []byte) (*models.AIResponse, error) {
	var resp models.AIResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidResponse, err)
	}
	if err := validateResponse(&resp); err != nil {
		return nil, err
	}
	if resp.EnglishTranslation != nil {
		if err := validateResponse(resp.EnglishTranslation); err != nil {
			return nil, fmt.Errorf("english_translation: %w", err)
		}
	}
	return &resp, nil
}

func validateResponse(resp *models.AIResponse) error {
	if resp.Summary == "" {
		return fmt.Errorf("%w: summary is required", ErrInvalidResponse)
	}
	switch resp.Confidence {
	case models.ConfidenceHigh, models.ConfidenceMedium, models.ConfidenceLow:
	default:
		return fmt.Errorf("%w: confidence must be high, medium or low, got %q", ErrInvalidResponse, resp.Confidence)
	}
	for i, n := range resp.NumbersUsed {
		if n.Label == "" || n.Value == "" {
			return fmt.Errorf("%w: numbers_used[%d] needs both label and value", ErrInvalidResponse, i)
		}
	}
	if resp.Risks == nil {
		resp.Risks = []string{}
	}
	if resp.Opportunities == nil {
		resp.Opportunities = []string{}
	}
	if resp.Actions == nil {
		resp.Actions = []string{}
	}
	if resp.NumbersUsed == nil {
		resp.NumbersUsed = []models.NumberUsed{}
	}
	return nil
}
